package worldapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-painter/api"
	"github.com/beka-birhanu/vinom-painter/api/i"
	"github.com/beka-birhanu/vinom-painter/game"
	"github.com/beka-birhanu/vinom-painter/game/world"
	"github.com/beka-birhanu/vinom-painter/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *game.Environment) {
	t.Helper()
	l, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)
	w, err := world.New(world.ReferenceLayout(), world.WithSeed(3))
	require.NoError(t, err)
	env, err := game.NewEnvironment(w, game.DefaultOptions(), l)
	require.NoError(t, err)

	c, err := NewController(env)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:     "/api",
		GinMode:     gin.TestMode,
		Controllers: []i.Controller{c},
	})
	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return srv, env
}

func get(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestNewController(t *testing.T) {
	_, err := NewController(nil)
	assert.ErrorIs(t, err, ErrNilView)
}

func TestWorldRoutes(t *testing.T) {
	srv, env := newTestServer(t)

	t.Run("World frame", func(t *testing.T) {
		var frame WorldResponse
		require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/v1/world", &frame))

		assert.Equal(t, env.ID(), frame.ID)
		assert.Equal(t, 5, frame.Size)
		assert.Equal(t, PositionResponse{X: 0, Y: 4}, frame.Agent)
		assert.Empty(t, frame.Carrying)
		// 4 obstacles and 7 objects, each on its own cell.
		assert.Len(t, frame.Cells, 11)
		assert.Contains(t, frame.Cells, CellResponse{X: 0, Y: 0, Kinds: []string{"brush"}})
		assert.Equal(t, 10, frame.Stats.MaxEpisodes)
	})

	t.Run("Single cell", func(t *testing.T) {
		var cell CellResponse
		require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/v1/world/cells/3/0", &cell))
		assert.Equal(t, []string{"obstacle"}, cell.Kinds)
		assert.False(t, cell.Agent)

		require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/v1/world/cells/0/4", &cell))
		assert.Empty(t, cell.Kinds)
		assert.True(t, cell.Agent)
	})

	t.Run("Bad cell requests", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get(t, srv.URL+"/api/v1/world/cells/a/0", nil))
		assert.Equal(t, http.StatusNotFound, get(t, srv.URL+"/api/v1/world/cells/5/0", nil))
		assert.Equal(t, http.StatusNotFound, get(t, srv.URL+"/api/v1/world/cells/-1/0", nil))
	})

	t.Run("Agent follows actions", func(t *testing.T) {
		require.True(t, env.ExecuteLiteral("move_up"))

		var pos PositionResponse
		require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/v1/world/agent", &pos))
		assert.Equal(t, PositionResponse{X: 0, Y: 3}, pos)
	})

	t.Run("Stats", func(t *testing.T) {
		require.True(t, env.ExecuteLiteral("next_episode"))

		var raw map[string]any
		require.Equal(t, http.StatusOK, get(t, srv.URL+"/api/v1/world/stats", &raw))
		assert.EqualValues(t, 1, raw["episode"])
		assert.Equal(t, "running", raw["phase"])
	})
}
