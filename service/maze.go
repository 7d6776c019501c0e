package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 1024
	defaultRenderTTL    = 10 * time.Minute

	imageKeyFmt = "maze:%s:png:solution_%t"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension is too large")
	ErrNoOwner           = errors.New("maze needs an owner")
)

// MazeConfig wires a MazeService.
type MazeConfig struct {
	Repo         i.MazeRepo
	Cache        i.ImageCache // optional; nil renders on every request
	Locker       i.Locker     // optional; nil skips the fill lock
	Logger       i.Logger
	MaxDimension int           // largest width or height accepted; defaults to 1024
	RenderTTL    time.Duration // how long rendered images stay cached; defaults to 10m
	Seeds        func() int64  // seed source for requests without one; must be safe for concurrent use
	Now          func() time.Time
}

// MazeService generates mazes, persists how they were made and serves solutions and images.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.ImageCache
	locker       i.Locker
	logger       i.Logger
	maxDimension int
	renderTTL    time.Duration
	seeds        func() int64
	now          func() time.Time
}

var _ i.MazeService = &MazeService{}

// NewMazeService creates a MazeService from its configuration.
func NewMazeService(c MazeConfig) (*MazeService, error) {
	if c.Repo == nil || c.Logger == nil {
		return nil, errors.New("maze service needs a repository and a logger")
	}

	s := &MazeService{
		repo:         c.Repo,
		cache:        c.Cache,
		locker:       c.Locker,
		logger:       c.Logger,
		maxDimension: c.MaxDimension,
		renderTTL:    c.RenderTTL,
		seeds:        c.Seeds,
		now:          c.Now,
	}
	if s.maxDimension <= 0 {
		s.maxDimension = defaultMaxDimension
	}
	if s.renderTTL <= 0 {
		s.renderTTL = defaultRenderTTL
	}
	if s.seeds == nil {
		s.seeds = newSeedSource(time.Now().UnixNano()).next
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

// Generate builds a new maze for owner and stores its generation record.
func (s *MazeService) Generate(ctx context.Context, owner uuid.UUID, req i.GenerateRequest) (*dmn.MazeRecord, *maze.Maze, error) {
	if owner == uuid.Nil {
		return nil, nil, ErrNoOwner
	}
	if req.Width > s.maxDimension || req.Height > s.maxDimension {
		return nil, nil, fmt.Errorf("%w: limit is %d", ErrDimensionTooLarge, s.maxDimension)
	}

	algorithm, err := maze.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, nil, err
	}

	seed := s.seeds()
	if req.Seed != nil {
		seed = *req.Seed
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		OwnerID:   owner,
		Width:     req.Width,
		Height:    req.Height,
		Seed:      seed,
		Algorithm: algorithm,
		CreatedAt: s.now().UTC(),
	}

	m, err := record.Build()
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save maze %s: %s", record.ID, err))
		return nil, nil, err
	}

	s.logger.Info(fmt.Sprintf("Maze generated: ID=%s Size=%dx%d Algorithm=%s Seed=%d", record.ID, record.Width, record.Height, record.Algorithm, record.Seed))
	return record, m, nil
}

// ByID loads a record and rebuilds its maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, *maze.Maze, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	m, err := record.Build()
	if err != nil {
		s.logger.Error(fmt.Sprintf("Stored maze %s cannot be rebuilt: %s", id, err))
		return nil, nil, err
	}
	return record, m, nil
}

// ListByOwner returns the owner's generation records.
func (s *MazeService) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*dmn.MazeRecord, error) {
	return s.repo.ByOwner(ctx, owner)
}

// Solve finds the shortest path through the maze with the given ID.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID) ([]maze.Coordinate, bool, error) {
	_, m, err := s.ByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	path := m.Solve()
	if path == nil {
		s.logger.Warning(fmt.Sprintf("Maze %s has no path between its corners", id))
		return nil, false, nil
	}
	return path, true, nil
}

// Render returns the maze as PNG bytes. Images are served from the cache when possible;
// a miss takes the fill lock so concurrent requests render each image once.
// Cache and lock failures are logged and fall back to rendering directly.
func (s *MazeService) Render(ctx context.Context, id uuid.UUID, withSolution bool) ([]byte, error) {
	key := fmt.Sprintf(imageKeyFmt, id, withSolution)

	if img, ok := s.cached(ctx, key); ok {
		return img, nil
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, key+":render_lock")
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Rendering %s without lock: %s", key, err))
		} else {
			defer unlock()
			// Another instance may have filled the cache while we waited.
			if img, ok := s.cached(ctx, key); ok {
				return img, nil
			}
		}
	}

	_, m, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var solution []maze.Coordinate
	if withSolution {
		solution = m.Solve()
	}

	img, err := render.PNG(m, solution)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to render maze %s: %s", id, err))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, img, s.renderTTL); err != nil {
			s.logger.Warning(fmt.Sprintf("Failed to cache %s: %s", key, err))
		}
	}
	return img, nil
}

func (s *MazeService) cached(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}

	img, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, i.ErrCacheMiss) {
			s.logger.Warning(fmt.Sprintf("Image cache lookup for %s failed: %s", key, err))
		}
		return nil, false
	}
	return img, true
}

// seedSource hands out generation seeds to concurrent requests.
type seedSource struct {
	rng *rand.Rand
	sync.Mutex
}

func newSeedSource(seed int64) *seedSource {
	return &seedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seedSource) next() int64 {
	s.Lock()
	defer s.Unlock()
	return s.rng.Int63()
}
