// Package domain holds the records the maze service persists.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

var ErrMazeNotFound = errors.New("maze not found")

// MazeRecord describes how a maze was generated. The grid itself is never stored:
// generation is deterministic in (Width, Height, Seed, Algorithm), so Build recreates it.
type MazeRecord struct {
	ID        uuid.UUID      `bson:"_id"`
	OwnerID   uuid.UUID      `bson:"ownerId"`
	Width     int            `bson:"width"`
	Height    int            `bson:"height"`
	Seed      int64          `bson:"seed"`
	Algorithm maze.Algorithm `bson:"algorithm"`
	CreatedAt time.Time      `bson:"createdAt"`
}

// Build regenerates the maze the record describes.
func (r *MazeRecord) Build() (*maze.Maze, error) {
	m, err := maze.New(r.Width, r.Height)
	if err != nil {
		return nil, err
	}

	gen := maze.NewGenerator(maze.WithSeed(r.Seed), maze.WithAlgorithm(r.Algorithm))
	if _, err := m.Generate(gen); err != nil {
		return nil, fmt.Errorf("regenerating maze %s: %w", r.ID, err)
	}
	return m, nil
}
