// Package sqlite provides the sqlite-backed Store. The schema is created on
// open so a fresh database file works without a migration step.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/skriptor-labs/postwise/internal/model"
	"github.com/skriptor-labs/postwise/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	subtitle TEXT NOT NULL,
	content TEXT NOT NULL,
	short_text TEXT NOT NULL,
	image TEXT NOT NULL,
	category TEXT NOT NULL,
	author_id INTEGER NOT NULL REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_posts_author ON posts(author_id);
`

// Store wraps a sqlite database handle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and bootstraps the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Users() store.UserStore { return &userStore{db: s.db} }
func (s *Store) Posts() store.PostStore { return &postStore{db: s.db} }
func (s *Store) Close() error           { return s.db.Close() }

// mapErr translates driver errors onto the store sentinel errors.
func mapErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return store.ErrConflict
	}
	return err
}

// --- users ---

type userStore struct {
	db *sql.DB
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash FROM users WHERE email = ?", email)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (s *userStore) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash FROM users WHERE id = ?", id)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (s *userStore) Insert(ctx context.Context, u *model.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users(id, name, email, password_hash) VALUES(?, ?, ?, ?)",
		u.ID, u.Name, u.Email, u.Password)
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *userStore) Update(ctx context.Context, u *model.User) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET name = ?, email = ?, password_hash = ? WHERE id = ?",
		u.Name, u.Email, u.Password, u.ID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

// --- posts ---

type postStore struct {
	db *sql.DB
}

const postColumns = "id, title, subtitle, content, short_text, image, category, author_id"

func scanPost(row interface{ Scan(...any) error }) (*model.Post, error) {
	p := &model.Post{}
	err := row.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Content,
		&p.ShortText, &p.Image, &p.Category, &p.AuthorID)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (s *postStore) All(ctx context.Context) ([]model.Post, error) {
	return s.query(ctx, "SELECT "+postColumns+" FROM posts ORDER BY id")
}

func (s *postStore) FindByAuthor(ctx context.Context, authorID int64) ([]model.Post, error) {
	return s.query(ctx,
		"SELECT "+postColumns+" FROM posts WHERE author_id = ? ORDER BY id", authorID)
}

func (s *postStore) query(ctx context.Context, q string, args ...any) ([]model.Post, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (s *postStore) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = ?", id)
	return scanPost(row)
}

func (s *postStore) Insert(ctx context.Context, p *model.Post) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO posts("+postColumns+") VALUES(?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Title, p.Subtitle, p.Content, p.ShortText, p.Image, p.Category, p.AuthorID)
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *postStore) Update(ctx context.Context, p *model.Post) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, subtitle = ?, content = ?, short_text = ?,
			image = ?, category = ? WHERE id = ?`,
		p.Title, p.Subtitle, p.Content, p.ShortText, p.Image, p.Category, p.ID)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

func (s *postStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return mapErr(err)
	}
	return requireRow(res)
}

// requireRow converts a zero-row write into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
