package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-painter/game/grid"
	"github.com/beka-birhanu/vinom-painter/game/world"
	"gopkg.in/yaml.v3"
)

var ErrMalformedPosition = errors.New("position must be [x, y]")

// layoutFile is the YAML shape of a world layout. Objects are keyed by kind name.
type layoutFile struct {
	Size      int              `yaml:"size"`
	Agent     []int            `yaml:"agent"`
	Obstacles [][]int          `yaml:"obstacles"`
	Tools     map[string][]int `yaml:"tools"`
	Furniture map[string][]int `yaml:"furniture"`
}

// LoadLayout reads a YAML layout from path. An empty path selects the reference layout.
// The result is validated before it is returned.
func LoadLayout(path string) (world.Layout, error) {
	if path == "" {
		return world.ReferenceLayout(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return world.Layout{}, err
	}
	return ParseLayout(raw)
}

// ParseLayout decodes a YAML layout document.
func ParseLayout(raw []byte) (world.Layout, error) {
	var f layoutFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return world.Layout{}, fmt.Errorf("layout: %w", err)
	}

	l, err := f.toLayout()
	if err != nil {
		return world.Layout{}, fmt.Errorf("layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return world.Layout{}, err
	}
	return l, nil
}

func (f layoutFile) toLayout() (world.Layout, error) {
	agent, err := position(f.Agent)
	if err != nil {
		return world.Layout{}, fmt.Errorf("agent: %w", err)
	}

	l := world.Layout{
		Size:       f.Size,
		AgentStart: agent,
		Tools:      make(map[grid.Kind]grid.Position, len(f.Tools)),
		Furniture:  make(map[grid.Kind]grid.Position, len(f.Furniture)),
	}

	for _, xy := range f.Obstacles {
		p, err := position(xy)
		if err != nil {
			return world.Layout{}, fmt.Errorf("obstacle: %w", err)
		}
		l.Obstacles = append(l.Obstacles, p)
	}

	if err := objects(f.Tools, l.Tools); err != nil {
		return world.Layout{}, err
	}
	if err := objects(f.Furniture, l.Furniture); err != nil {
		return world.Layout{}, err
	}

	return l, nil
}

func objects(in map[string][]int, out map[grid.Kind]grid.Position) error {
	for name, xy := range in {
		k, err := grid.ParseKind(name)
		if err != nil {
			return err
		}
		p, err := position(xy)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out[k] = p
	}
	return nil
}

func position(xy []int) (grid.Position, error) {
	if len(xy) != 2 {
		return grid.Position{}, ErrMalformedPosition
	}
	return grid.Position{X: xy[0], Y: xy[1]}, nil
}
