// Package camera keeps track of which part of the map is on screen.
// It only does bookkeeping; input is translated by the host.
package camera

import "go-orc-defense/internal/utils"

// Direction of a keyboard step.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Camera is a viewport over the map. X, Y is the world point shown at the
// top-left corner of the screen.
type Camera struct {
	X, Y           float64
	ViewW, ViewH   float64
	WorldW, WorldH float64
	KeyStep        float64

	dragging     bool
	lastX, lastY float64
}

// New returns a camera at the map origin.
func New(viewW, viewH, worldW, worldH, keyStep float64) *Camera {
	return &Camera{
		ViewW:   viewW,
		ViewH:   viewH,
		WorldW:  worldW,
		WorldH:  worldH,
		KeyStep: keyStep,
	}
}

// Move shifts the viewport, keeping it inside the map.
func (c *Camera) Move(dx, dy float64) {
	c.X = utils.Clamp(c.X+dx, 0, maxOffset(c.WorldW, c.ViewW))
	c.Y = utils.Clamp(c.Y+dy, 0, maxOffset(c.WorldH, c.ViewH))
}

// PanTo centers the viewport on a world point.
func (c *Camera) PanTo(x, y float64) {
	c.Move(x-c.ViewW/2-c.X, y-c.ViewH/2-c.Y)
}

// HandlePointer drags the map. pressed is true on press, false on release
// and nil on move. x, y are screen coordinates.
func (c *Camera) HandlePointer(pressed *bool, x, y float64) {
	switch {
	case pressed != nil && *pressed:
		c.dragging = true
	case pressed != nil:
		c.dragging = false
	case c.dragging:
		c.Move(c.lastX-x, c.lastY-y)
	}
	c.lastX, c.lastY = x, y
}

// Dragging reports whether a drag is in progress.
func (c *Camera) Dragging() bool {
	return c.dragging
}

// Step moves the viewport by one KeyStep.
func (c *Camera) Step(d Direction) {
	switch d {
	case Up:
		c.Move(0, -c.KeyStep)
	case Down:
		c.Move(0, c.KeyStep)
	case Left:
		c.Move(-c.KeyStep, 0)
	case Right:
		c.Move(c.KeyStep, 0)
	}
}

// ToWorld converts a screen point to map coordinates.
func (c *Camera) ToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X, sy + c.Y
}

// ToScreen converts a map point to screen coordinates.
func (c *Camera) ToScreen(wx, wy float64) (float64, float64) {
	return wx - c.X, wy - c.Y
}

func maxOffset(world, view float64) float64 {
	if world <= view {
		return 0
	}
	return world - view
}
