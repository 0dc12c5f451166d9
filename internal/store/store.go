// Package store abstracts the record store behind minimal interfaces so the
// auth and authorization core never touches storage concerns directly.
//
// Two implementations exist: an in-memory store (tests, zero-config runs)
// and a sqlite-backed store. The store is shared mutable state; conflicting
// writes are serialized by the implementation and resolve last-writer-wins.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/skriptor-labs/postwise/internal/model"
)

// ErrNotFound is returned when no record matches the lookup.
var ErrNotFound = errors.New("store: record not found")

// ErrConflict is returned when a write violates a uniqueness constraint.
var ErrConflict = errors.New("store: uniqueness conflict")

// UserStore is the read/write surface over the users collection.
type UserStore interface {
	// FindByEmail returns the user with the exact (case-sensitive) email,
	// or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// FindByID returns the user with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// Insert persists a new user. The caller assigns the id.
	Insert(ctx context.Context, u *model.User) error
	// Update overwrites the record with the user's id. ErrNotFound if absent.
	Update(ctx context.Context, u *model.User) error
}

// PostStore is the read/write surface over the posts collection.
type PostStore interface {
	// All returns every post ordered by id.
	All(ctx context.Context) ([]model.Post, error)
	// FindByID returns the post with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	// FindByAuthor returns the posts whose AuthorID matches, ordered by id.
	FindByAuthor(ctx context.Context, authorID int64) ([]model.Post, error)
	// Insert persists a new post. The caller assigns the id.
	Insert(ctx context.Context, p *model.Post) error
	// Update overwrites the record with the post's id. ErrNotFound if absent.
	Update(ctx context.Context, p *model.Post) error
	// Delete removes the post with the given id. ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// Store bundles both collections.
type Store interface {
	Users() UserStore
	Posts() PostStore
	Close() error
}

// IDGenerator assigns record ids from the millisecond clock, bumped when two
// creations land in the same millisecond so ids stay unique and increasing.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator returns a wall-clock-backed id generator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// NewIDGeneratorWithClock returns a generator on an injected clock for tests.
func NewIDGeneratorWithClock(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now}
}

// Next returns a fresh unique id.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
