// Package level reads the static map description: the waypoint polyline
// enemies follow and the placement tiles buildings can occupy.
package level

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-orc-defense/internal/config"
	"go-orc-defense/internal/logging"
	"go-orc-defense/pkg/geom"
)

var (
	// ErrMissingLayer is returned when the map lacks a required layer.
	ErrMissingLayer = errors.New("missing layer")
	// ErrShortPath is returned when the waypoint polyline has fewer than two points.
	ErrShortPath = errors.New("waypoint path needs at least 2 points")
)

//go:embed maps/meadow.json
var meadowJSON []byte

// Level is an immutable, parsed map.
type Level struct {
	Name      string
	Width     float64 // pixels
	Height    float64 // pixels
	Cell      float64
	Waypoints []geom.Point
	Tiles     []geom.Point // top-left corners, row-major order
}

// Default returns the embedded map.
func Default(cfg config.MapConfig) (*Level, error) {
	lvl, err := Parse(meadowJSON, cfg)
	if err != nil {
		return nil, err
	}
	lvl.Name = "meadow"
	return lvl, nil
}

// LoadFile reads and parses a map file.
func LoadFile(path string, cfg config.MapConfig) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", path, err)
	}
	lvl, err := Parse(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing map %s: %w", path, err)
	}
	lvl.Name = path
	return lvl, nil
}

// Parse builds a Level from a Tiled JSON export.
func Parse(data []byte, cfg config.MapConfig) (*Level, error) {
	var m mapJSON
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal map: %w", err)
	}

	placement, ok := findLayer(m.Layers, layerTypeTiles, cfg.PlacementLayer)
	if !ok {
		return nil, fmt.Errorf("%w: unable to detect %q layer", ErrMissingLayer, cfg.PlacementLayer)
	}
	waypointLayer, ok := findLayer(m.Layers, layerTypeObjects, cfg.WaypointLayer)
	if !ok {
		return nil, fmt.Errorf("%w: unable to detect %q layer", ErrMissingLayer, cfg.WaypointLayer)
	}

	tilesPerRow := placement.Width
	if tilesPerRow <= 0 {
		tilesPerRow = m.Width
	}
	if tilesPerRow <= 0 {
		return nil, fmt.Errorf("layer %q has no width", placement.Name)
	}
	rows := placement.Height
	if rows <= 0 {
		rows = (len(placement.Data) + tilesPerRow - 1) / tilesPerRow
	}

	cell := float64(cfg.Cell)
	lvl := &Level{
		Width:  float64(tilesPerRow) * cell,
		Height: float64(rows) * cell,
		Cell:   cell,
	}

	for i := 0; i < len(placement.Data); i += tilesPerRow {
		end := i + tilesPerRow
		if end > len(placement.Data) {
			end = len(placement.Data)
		}
		row := i / tilesPerRow
		for col, symbol := range placement.Data[i:end] {
			if symbol == cfg.PlacementSymbol {
				lvl.Tiles = append(lvl.Tiles, geom.Point{X: float64(col) * cell, Y: float64(row) * cell})
			}
		}
	}

	lvl.Waypoints = waypointsFrom(waypointLayer)
	if len(lvl.Waypoints) < 2 {
		return nil, fmt.Errorf("%w: layer %q has %d", ErrShortPath, waypointLayer.Name, len(lvl.Waypoints))
	}

	if last := lvl.Waypoints[len(lvl.Waypoints)-1]; last.X <= lvl.Width {
		logging.New("map").Warn("path ends inside the map, enemies will never escape",
			"last_x", last.X, "map_width", lvl.Width)
	}

	return lvl, nil
}

// waypointsFrom returns the first polyline in the object group, in map coordinates.
func waypointsFrom(layer *layerJSON) []geom.Point {
	for _, obj := range layer.Objects {
		if len(obj.Polyline) == 0 {
			continue
		}
		points := make([]geom.Point, 0, len(obj.Polyline))
		for _, p := range obj.Polyline {
			points = append(points, geom.Point{X: obj.X + p.X, Y: obj.Y + p.Y})
		}
		return points
	}
	return nil
}
