package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jerops/prd-generator/internal/form"
)

// ErrNotFound means the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// PRD is one stored document snapshot: a title plus the full form state it
// was generated from.
type PRD struct {
	ID        int64      `json:"id"`
	UserID    *int64     `json:"userId,omitempty"`
	Title     string     `json:"title"`
	Data      form.State `json:"data"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

// Summary is the listing view of a stored PRD, without the data blob.
type Summary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Store wraps the database handle with the PRD and user operations.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SavePRD inserts a snapshot and returns it with its assigned ID.
func (s *Store) SavePRD(title string, userID *int64, data form.State) (PRD, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return PRD{}, fmt.Errorf("encode form state: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO prds (user_id, title, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		userID, title, string(raw), now, now,
	)
	if err != nil {
		return PRD{}, fmt.Errorf("insert prd: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return PRD{}, fmt.Errorf("insert prd: %w", err)
	}
	return PRD{ID: id, UserID: userID, Title: title, Data: data, CreatedAt: now, UpdatedAt: now}, nil
}

// UpdatePRD replaces the data blob of an existing snapshot.
func (s *Store) UpdatePRD(id int64, title string, data form.State) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode form state: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`UPDATE prds SET title = ?, data = ?, updated_at = ? WHERE id = ?`,
		title, string(raw), now, id,
	)
	if err != nil {
		return fmt.Errorf("update prd: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPRD loads one snapshot by ID.
func (s *Store) GetPRD(id int64) (PRD, error) {
	row := s.db.QueryRow(
		`SELECT id, user_id, title, data, created_at, updated_at FROM prds WHERE id = ?`, id)
	var p PRD
	var raw string
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &raw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PRD{}, ErrNotFound
		}
		return PRD{}, fmt.Errorf("load prd: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &p.Data); err != nil {
		return PRD{}, fmt.Errorf("decode prd %d: %w", id, err)
	}
	p.Data = p.Data.Normalize()
	return p, nil
}

// ListPRDs returns summaries of all stored snapshots, newest first.
func (s *Store) ListPRDs() ([]Summary, error) {
	rows, err := s.db.Query(
		`SELECT id, title, created_at, updated_at FROM prds ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list prds: %w", err)
	}
	defer rows.Close()
	summaries := []Summary{}
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.CreatedAt, &sum.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prd summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeletePRD removes a snapshot.
func (s *Store) DeletePRD(id int64) error {
	res, err := s.db.Exec(`DELETE FROM prds WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete prd: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
