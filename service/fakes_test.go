package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

type memMazeRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	saveErr error
	sync.Mutex
}

func newMemMazeRepo() *memMazeRepo {
	return &memMazeRepo{records: map[uuid.UUID]*dmn.MazeRecord{}}
}

func (r *memMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[record.ID] = record
	return nil
}

func (r *memMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.Lock()
	defer r.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

func (r *memMazeRepo) ByOwner(_ context.Context, owner uuid.UUID) ([]*dmn.MazeRecord, error) {
	r.Lock()
	defer r.Unlock()
	var out []*dmn.MazeRecord
	for _, record := range r.records {
		if record.OwnerID == owner {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

type memCache struct {
	items  map[string][]byte
	ttls   map[string]time.Duration
	gets   int
	getErr error
	sync.Mutex
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	c.Lock()
	defer c.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	img, ok := c.items[key]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	return img, nil
}

func (c *memCache) Set(_ context.Context, key string, image []byte, ttl time.Duration) error {
	c.Lock()
	defer c.Unlock()
	c.items[key] = image
	c.ttls[key] = ttl
	return nil
}

type memLocker struct {
	locked  []string
	lockErr error
	mu      sync.Mutex
}

func (l *memLocker) Lock(_ context.Context, key string) (func(), error) {
	if l.lockErr != nil {
		return nil, l.lockErr
	}
	l.mu.Lock()
	l.locked = append(l.locked, key)
	l.mu.Unlock()
	return func() {}, nil
}

type captureLogger struct {
	lines []string
	sync.Mutex
}

func (l *captureLogger) add(level, msg string) {
	l.Lock()
	defer l.Unlock()
	l.lines = append(l.lines, level+" "+msg)
}

func (l *captureLogger) Info(msg string)    { l.add("INFO", msg) }
func (l *captureLogger) Warning(msg string) { l.add("WARNING", msg) }
func (l *captureLogger) Error(msg string)   { l.add("ERROR", msg) }

type memUserRepo struct {
	users map[string]*dmn.User
	sync.Mutex
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*dmn.User{}}
}

func (r *memUserRepo) Save(user *dmn.User) error {
	r.Lock()
	defer r.Unlock()
	r.users[user.Username] = user
	return nil
}

func (r *memUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	r.Lock()
	defer r.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memUserRepo) ByUsername(username string) (*dmn.User, error) {
	r.Lock()
	defer r.Unlock()
	u, ok := r.users[username]
	if !ok {
		return nil, dmn.ErrUserNotFound
	}
	return u, nil
}

type stubTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
	err    error
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.claims = claims
	s.ttl = ttl
	return "signed-token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
