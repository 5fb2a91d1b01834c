package level

import (
	"errors"
	"strings"
	"testing"

	"go-orc-defense/internal/config"
	"go-orc-defense/pkg/geom"
)

func mapConfig() config.MapConfig {
	return config.DefaultGameConfig().Map
}

func TestDefaultMap(t *testing.T) {
	lvl, err := Default(mapConfig())
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if lvl.Width != 1280 || lvl.Height != 768 {
		t.Errorf("size = %vx%v, want 1280x768", lvl.Width, lvl.Height)
	}
	if len(lvl.Tiles) != 10 {
		t.Fatalf("got %d placement tiles, want 10", len(lvl.Tiles))
	}
	if lvl.Tiles[0] != (geom.Point{X: 576, Y: 0}) {
		t.Errorf("first tile = %+v, want row-major first (576, 0)", lvl.Tiles[0])
	}
	if lvl.Waypoints[0] != (geom.Point{X: -64, Y: 416}) || lvl.Waypoints[1] != (geom.Point{X: 0, Y: 416}) {
		t.Errorf("polyline not offset by object position: %+v", lvl.Waypoints[:2])
	}
	if last := lvl.Waypoints[len(lvl.Waypoints)-1]; last.X <= lvl.Width {
		t.Errorf("default path should leave the map on the right, ends at %+v", last)
	}
}

func TestParseMissingLayer(t *testing.T) {
	data := `{"width": 2, "height": 1, "layers": [
		{"type": "objectgroup", "name": "Waypoints", "objects": [
			{"x": 0, "y": 0, "polyline": [{"x": 0, "y": 0}, {"x": 10, "y": 0}]}
		]}
	]}`
	_, err := Parse([]byte(data), mapConfig())
	if !errors.Is(err, ErrMissingLayer) {
		t.Fatalf("err = %v, want ErrMissingLayer", err)
	}
	if !strings.Contains(err.Error(), "Placement Tiles") {
		t.Errorf("error should name the layer: %v", err)
	}
}

func TestParseShortPath(t *testing.T) {
	data := `{"layers": [
		{"type": "tilelayer", "name": "Placement Tiles", "width": 2, "height": 1, "data": [14, 0]},
		{"type": "objectgroup", "name": "Waypoints", "objects": [
			{"x": 0, "y": 0, "polyline": [{"x": 0, "y": 0}]}
		]}
	]}`
	if _, err := Parse([]byte(data), mapConfig()); !errors.Is(err, ErrShortPath) {
		t.Fatalf("err = %v, want ErrShortPath", err)
	}
}

func TestParseFindsLayersInsideGroups(t *testing.T) {
	data := `{"layers": [
		{"type": "group", "name": "Gameplay", "layers": [
			{"type": "tilelayer", "name": "Placement Tiles", "width": 3, "height": 2, "data": [0, 14, 0, 14, 0, 0]},
			{"type": "objectgroup", "name": "Waypoints", "objects": [
				{"x": 5, "y": 7, "polyline": [{"x": 0, "y": 0}, {"x": 500, "y": 0}]}
			]}
		]}
	]}`
	lvl, err := Parse([]byte(data), mapConfig())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []geom.Point{{X: 64, Y: 0}, {X: 0, Y: 64}}
	if len(lvl.Tiles) != len(want) {
		t.Fatalf("tiles = %+v, want %+v", lvl.Tiles, want)
	}
	for i := range want {
		if lvl.Tiles[i] != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, lvl.Tiles[i], want[i])
		}
	}
	if lvl.Waypoints[1] != (geom.Point{X: 505, Y: 7}) {
		t.Errorf("waypoint = %+v, want (505, 7)", lvl.Waypoints[1])
	}
}
