package domain

import (
	"time"

	"github.com/google/uuid"
)

// Point is the BSON form of a grid position.
type Point struct {
	X int `bson:"x" json:"x"`
	Y int `bson:"y" json:"y"`
}

// MazeRecord is the persisted form of a generated maze: the grid as
// rows of single-character cell codes plus the parameters that
// produced it. Solution is nil until the maze has been solved.
type MazeRecord struct {
	ID         uuid.UUID `bson:"_id"`
	OwnerID    uuid.UUID `bson:"ownerId"`
	Width      int       `bson:"width"`
	Height     int       `bson:"height"`
	Start      Point     `bson:"start"`
	End        Point     `bson:"end"`
	Rows       []string  `bson:"rows"`
	Generator  string    `bson:"generator"`
	Pathfinder string    `bson:"pathfinder"`
	Seed       int64     `bson:"seed"`
	Solution   []Point   `bson:"solution,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
}
