package memory

import "github.com/tusarkanta004/skill-swap-platform/internal/domain"

// SeedUsers returns the demo profiles the marketplace ships with. Inserting
// them in order into a fresh store gives them ids 1 through 6, so the first
// registered user receives id 7.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			Username:      "sarah_chen",
			Password:      "password123",
			Name:          "Sarah Chen",
			Email:         "sarah@example.com",
			Location:      ptr("San Francisco, CA"),
			Avatar:        ptr("https://images.unsplash.com/photo-1494790108755-2616b612b5bc?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=150&h=150"),
			SkillsOffered: []string{"UI/UX Design", "Figma", "Prototyping"},
			SkillsWanted:  []string{"React", "Node.js"},
			Availability:  ptr("weekends"),
			Rating:        48,
			IsPublic:      true,
		},
		{
			Username:      "michael_torres",
			Password:      "password123",
			Name:          "Michael Torres",
			Email:         "michael@example.com",
			Location:      ptr("Austin, TX"),
			Avatar:        ptr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=150&h=150"),
			SkillsOffered: []string{"JavaScript", "Python", "Web Development"},
			SkillsWanted:  []string{"Digital Marketing", "SEO"},
			Availability:  ptr("evenings"),
			Rating:        42,
			IsPublic:      true,
		},
		{
			Username:      "emily_rodriguez",
			Password:      "password123",
			Name:          "Emily Rodriguez",
			Email:         "emily@example.com",
			Location:      ptr("New York, NY"),
			Avatar:        ptr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=150&h=150"),
			SkillsOffered: []string{"Photography", "Photoshop", "Video Editing"},
			SkillsWanted:  []string{"Graphic Design", "Illustration"},
			Availability:  ptr("flexible"),
			Rating:        49,
			IsPublic:      true,
		},
		{
			Username:      "david_kim",
			Password:      "password123",
			Name:          "David Kim",
			Email:         "david@example.com",
			Location:      ptr("Seattle, WA"),
			Avatar:        ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=150&h=150"),
			SkillsOffered: []string{"Data Analysis", "Excel", "SQL"},
			SkillsWanted:  []string{"Machine Learning", "Statistics"},
			Availability:  ptr("weekends"),
			Rating:        46,
			IsPublic:      true,
		},
		{
			Username:      "lisa_johnson",
			Password:      "password123",
			Name:          "Lisa Johnson",
			Email:         "lisa@example.com",
			Location:      ptr("Chicago, IL"),
			Avatar:        ptr("https://images.unsplash.com/photo-1534528741775-53994a69daeb?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=150&h=150"),
			SkillsOffered: []string{"Content Writing", "Copywriting", "Blog Writing"},
			SkillsWanted:  []string{"SEO", "Marketing"},
			Availability:  ptr("evenings"),
			Rating:        47,
			IsPublic:      true,
		},
		{
			Username:      "alex_thompson",
			Password:      "password123",
			Name:          "Alex Thompson",
			Email:         "alex@example.com",
			Location:      ptr("Denver, CO"),
			Avatar:        ptr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=150&h=150"),
			SkillsOffered: []string{"Guitar", "Music Theory", "Audio Production"},
			SkillsWanted:  []string{"Piano", "Singing"},
			Availability:  ptr("flexible"),
			Rating:        43,
			IsPublic:      true,
		},
	}
}

func ptr(s string) *string {
	return &s
}
