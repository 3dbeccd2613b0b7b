package worldapi

import (
	"github.com/beka-birhanu/vinom-painter/game"
	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/google/uuid"
)

// PositionResponse is a grid coordinate.
type PositionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellResponse lists the kinds present at one cell.
type CellResponse struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Kinds []string `json:"kinds"`
	Agent bool     `json:"agent"`
}

// WorldResponse is a full render frame. Only non-empty cells are listed.
type WorldResponse struct {
	ID       uuid.UUID        `json:"id"`
	Version  int64            `json:"version"`
	Size     int              `json:"size"`
	Agent    PositionResponse `json:"agent"`
	Score    float64          `json:"score"`
	Carrying []string         `json:"carrying"`
	Cells    []CellResponse   `json:"cells"`
	Stats    game.Stats       `json:"stats"`
}

func toPosition(p grid.Position) PositionResponse {
	return PositionResponse{X: p.X, Y: p.Y}
}

func toNames(kinds []grid.Kind) []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

func toCell(x, y int, c grid.Cell, agent grid.Position) CellResponse {
	return CellResponse{
		X:     x,
		Y:     y,
		Kinds: toNames(c.Kinds()),
		Agent: agent == grid.Position{X: x, Y: y},
	}
}
