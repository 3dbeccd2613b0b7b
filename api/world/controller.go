// Package worldapi serves a read-only view of a running painter environment.
package worldapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-painter/api/i"
	"github.com/beka-birhanu/vinom-painter/game"
	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrNilView = errors.New("world view is required")

// WorldView is the subset of game.Environment the controller renders from.
type WorldView interface {
	ID() uuid.UUID
	Version() int64
	GridSize() int
	Cells() [][]grid.Cell
	CellContents(x, y int) grid.Cell
	AgentPosition() grid.Position
	Observation() game.Observation
	Stats() game.Stats
}

var (
	_ WorldView    = &game.Environment{}
	_ i.Controller = &Controller{}
)

// Controller exposes world render queries over HTTP.
type Controller struct {
	view WorldView
}

// NewController initializes a Controller.
func NewController(view WorldView) (*Controller, error) {
	if view == nil {
		return nil, ErrNilView
	}
	return &Controller{view: view}, nil
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	world := route.Group("/world")
	{
		world.GET("", c.world)
		world.GET("/cells/:x/:y", c.cell)
		world.GET("/agent", c.agent)
		world.GET("/stats", c.stats)
	}
}

// world renders the whole grid.
func (c *Controller) world(ctx *gin.Context) {
	obs := c.view.Observation()
	agent := c.view.AgentPosition()

	response := &WorldResponse{
		ID:       c.view.ID(),
		Version:  c.view.Version(),
		Size:     c.view.GridSize(),
		Agent:    toPosition(agent),
		Score:    obs.Score,
		Carrying: toNames(obs.Carrying),
		Cells:    []CellResponse{},
		Stats:    c.view.Stats(),
	}
	for x, column := range c.view.Cells() {
		for y, cell := range column {
			if cell.Empty() {
				continue
			}
			response.Cells = append(response.Cells, toCell(x, y, cell, agent))
		}
	}

	ctx.JSON(http.StatusOK, response)
}

// cell renders a single cell.
func (c *Controller) cell(ctx *gin.Context) {
	x, errX := strconv.Atoi(ctx.Param("x"))
	y, errY := strconv.Atoi(ctx.Param("y"))
	if errX != nil || errY != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must be integers"})
		return
	}

	size := c.view.GridSize()
	if x < 0 || y < 0 || x >= size || y >= size {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "cell out of bounds"})
		return
	}

	ctx.JSON(http.StatusOK, toCell(x, y, c.view.CellContents(x, y), c.view.AgentPosition()))
}

// agent renders the agent position.
func (c *Controller) agent(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, toPosition(c.view.AgentPosition()))
}

// stats renders the episode counters.
func (c *Controller) stats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.view.Stats())
}
