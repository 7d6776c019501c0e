// Package mazeapi exposes maze generation, solving and rendering over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// GenerateRequest is the body of POST /mazes. Seed and Algorithm are optional.
type GenerateRequest struct {
	Width     int    `json:"width" binding:"required,min=1"`
	Height    int    `json:"height" binding:"required,min=1"`
	Seed      *int64 `json:"seed"`
	Algorithm string `json:"algorithm"`
}

// SummaryResponse describes a stored maze without its grid.
type SummaryResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Algorithm string    `json:"algorithm"`
	CreatedAt time.Time `json:"created_at"`
}

// MazeResponse is a stored maze with its rows, '#' for walls and ' ' for passages.
type MazeResponse struct {
	SummaryResponse
	Rows []string `json:"rows"`
}

// SolutionResponse is the shortest corner-to-corner path, empty when none exists.
type SolutionResponse struct {
	Found  bool              `json:"found"`
	Length int               `json:"length"`
	Path   []maze.Coordinate `json:"path"`
}

func newSummaryResponse(r *dmn.MazeRecord) SummaryResponse {
	return SummaryResponse{
		ID:        r.ID.String(),
		OwnerID:   r.OwnerID.String(),
		Width:     r.Width,
		Height:    r.Height,
		Seed:      r.Seed,
		Algorithm: string(r.Algorithm),
		CreatedAt: r.CreatedAt,
	}
}

func newMazeResponse(r *dmn.MazeRecord, m *maze.Maze) *MazeResponse {
	return &MazeResponse{
		SummaryResponse: newSummaryResponse(r),
		Rows:            m.Rows(),
	}
}
