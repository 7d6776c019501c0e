package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// GenerateRequest describes a maze to generate. A nil Seed lets the service pick one.
type GenerateRequest struct {
	Width     int
	Height    int
	Seed      *int64
	Algorithm string
}

// MazeService generates, solves and renders mazes.
type MazeService interface {
	Generate(ctx context.Context, owner uuid.UUID, req GenerateRequest) (*dmn.MazeRecord, *maze.Maze, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, *maze.Maze, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]*dmn.MazeRecord, error)

	// Solve reports found=false, not an error, when the maze has no path.
	Solve(ctx context.Context, id uuid.UUID) (path []maze.Coordinate, found bool, err error)

	// Render returns the maze as PNG bytes, with the solution highlighted when asked.
	Render(ctx context.Context, id uuid.UUID, withSolution bool) ([]byte, error)
}
