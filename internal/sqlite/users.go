package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
)

// User mirrors the compatibility schema for the optional backing store.
// Passwords are stored as given; the local tool does no authentication
// itself.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// CreateUser inserts a user record.
func (s *Store) CreateUser(username, password string) (User, error) {
	res, err := s.db.Exec(
		`INSERT INTO users (username, password) VALUES (?, ?)`, username, password)
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return User{ID: id, Username: username, Password: password}, nil
}

// GetUserByUsername loads a user record by name.
func (s *Store) GetUserByUsername(username string) (User, error) {
	row := s.db.QueryRow(
		`SELECT id, username, password FROM users WHERE username = ?`, username)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}
