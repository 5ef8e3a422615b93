// Package mazeapi exposes maze creation, retrieval and solving over
// HTTP.
package mazeapi

import (
	dmn "github.com/beka-birhanu/labyrinth-api/domain"
)

// CreateMazeRequest carries the parameters of a new maze. Strategy
// names default to "iterative" and "bfs" when omitted.
type CreateMazeRequest struct {
	Width      int    `json:"width" binding:"required"`
	Height     int    `json:"height" binding:"required"`
	Generator  string `json:"generator"`
	Pathfinder string `json:"pathfinder"`
	Seed       int64  `json:"seed"`
}

// MazeResponse is the API view of a stored maze record.
type MazeResponse struct {
	ID         string      `json:"id"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Start      dmn.Point   `json:"start"`
	End        dmn.Point   `json:"end"`
	Rows       []string    `json:"rows"`
	Generator  string      `json:"generator"`
	Pathfinder string      `json:"pathfinder"`
	Solution   []dmn.Point `json:"solution,omitempty"`
}

// SolveResponse carries a computed solution path.
type SolveResponse struct {
	Path []dmn.Point `json:"path"`
}

func newMazeResponse(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:         record.ID.String(),
		Width:      record.Width,
		Height:     record.Height,
		Start:      record.Start,
		End:        record.End,
		Rows:       record.Rows,
		Generator:  record.Generator,
		Pathfinder: record.Pathfinder,
		Solution:   record.Solution,
	}
}
