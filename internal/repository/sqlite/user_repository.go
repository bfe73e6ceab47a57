package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tusarkanta004/skill-swap-platform/internal/domain"
	"github.com/tusarkanta004/skill-swap-platform/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	password TEXT NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	location TEXT NULL,
	avatar TEXT NULL,
	skills_offered TEXT NOT NULL DEFAULT '[]',
	skills_wanted TEXT NOT NULL DEFAULT '[]',
	availability TEXT NULL,
	rating INTEGER NOT NULL DEFAULT 0,
	is_public INTEGER NOT NULL DEFAULT 1
);
`

// UserRepository persists users in sqlite behind the same contract as the
// memory backend. Skill lists are stored as JSON arrays in text columns.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	offered, err := marshalSkills(user.SkillsOffered)
	if err != nil {
		return 0, err
	}
	wanted, err := marshalSkills(user.SkillsWanted)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (username, password, name, email, location, avatar, skills_offered, skills_wanted, availability, rating, is_public)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username,
		user.Password,
		user.Name,
		user.Email,
		user.Location,
		user.Avatar,
		offered,
		wanted,
		user.Availability,
		user.Rating,
		user.IsPublic,
	)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user last insert id: %w", err)
	}
	user.ID = id
	return id, nil
}

const selectUserColumns = `
SELECT id, username, password, name, email, location, avatar, skills_offered, skills_wanted, availability, rating, is_public
FROM users`

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUserColumns+` WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUserColumns+` WHERE username = ? ORDER BY id LIMIT 1`, username)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUserColumns+` WHERE email = ?`, email)
	return scanUser(row)
}

func (r *UserRepository) ListPublic(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUserColumns+` WHERE is_public = 1 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query public users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate public users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		user    domain.User
		offered string
		wanted  string
	)
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Name,
		&user.Email,
		&user.Location,
		&user.Avatar,
		&offered,
		&wanted,
		&user.Availability,
		&user.Rating,
		&user.IsPublic,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	if err := json.Unmarshal([]byte(offered), &user.SkillsOffered); err != nil {
		return nil, fmt.Errorf("decode skills offered: %w", err)
	}
	if err := json.Unmarshal([]byte(wanted), &user.SkillsWanted); err != nil {
		return nil, fmt.Errorf("decode skills wanted: %w", err)
	}
	return &user, nil
}

func marshalSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	encoded, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("encode skills: %w", err)
	}
	return string(encoded), nil
}
