// Package memory provides a mutex-guarded in-memory Store. It backs tests
// and the zero-config run mode; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/skriptor-labs/postwise/internal/model"
	"github.com/skriptor-labs/postwise/internal/store"
)

// Store holds both collections behind one lock. The per-request access
// pattern is short critical sections, so a single RWMutex is enough.
type Store struct {
	mu    sync.RWMutex
	users map[int64]*model.User
	posts map[int64]*model.Post
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users: make(map[int64]*model.User),
		posts: make(map[int64]*model.Post),
	}
}

func (s *Store) Users() store.UserStore { return (*userStore)(s) }
func (s *Store) Posts() store.PostStore { return (*postStore)(s) }
func (s *Store) Close() error           { return nil }

// --- users ---

type userStore Store

func (s *userStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) FindByID(_ context.Context, id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u.Clone(), nil
}

func (s *userStore) Insert(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrConflict
		}
	}
	s.users[u.ID] = u.Clone()
	return nil
}

func (s *userStore) Update(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return store.ErrNotFound
	}
	// Email stays unique across updates too, matching the sqlite column.
	for id, existing := range s.users {
		if id != u.ID && existing.Email == u.Email {
			return store.ErrConflict
		}
	}
	s.users[u.ID] = u.Clone()
	return nil
}

// --- posts ---

type postStore Store

func (s *postStore) All(_ context.Context) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *postStore) FindByID(_ context.Context, id int64) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p.Clone(), nil
}

func (s *postStore) FindByAuthor(_ context.Context, authorID int64) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0)
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *postStore) Insert(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[p.ID] = p.Clone()
	return nil
}

func (s *postStore) Update(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID]; !ok {
		return store.ErrNotFound
	}
	s.posts[p.ID] = p.Clone()
	return nil
}

func (s *postStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}
