package domain

// User represents a marketplace member together with the profile they publish.
//
// Password is stored exactly as supplied; login performs a byte-for-byte
// comparison. Rating is a 0-50 integer (a 0-5 star score scaled by ten) and
// is never set through the registration path.
type User struct {
	ID            int64
	Username      string
	Password      string
	Name          string
	Email         string
	Location      *string
	Avatar        *string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  *string
	Rating        int
	IsPublic      bool
}
