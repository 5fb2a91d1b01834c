package camera

import "testing"

func ptr(b bool) *bool { return &b }

func TestMoveClampsToMap(t *testing.T) {
	c := New(640, 480, 1280, 768, 64)

	c.Move(-100, -100)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("moved past origin: (%v, %v)", c.X, c.Y)
	}
	c.Move(10000, 10000)
	if c.X != 640 || c.Y != 288 {
		t.Errorf("moved past far edge: (%v, %v), want (640, 288)", c.X, c.Y)
	}
}

func TestSmallMapDoesNotScroll(t *testing.T) {
	c := New(1280, 768, 1280, 768, 64)
	c.Step(Right)
	c.Step(Down)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("map that fits the screen scrolled to (%v, %v)", c.X, c.Y)
	}
}

func TestDrag(t *testing.T) {
	c := New(640, 480, 1280, 768, 64)

	c.HandlePointer(nil, 300, 300) // move without press
	if c.X != 0 || c.Y != 0 {
		t.Fatal("moved without a drag")
	}

	c.HandlePointer(ptr(true), 300, 300)
	c.HandlePointer(nil, 250, 280)
	if c.X != 50 || c.Y != 20 {
		t.Errorf("after drag = (%v, %v), want (50, 20)", c.X, c.Y)
	}

	c.HandlePointer(ptr(false), 250, 280)
	c.HandlePointer(nil, 0, 0)
	if c.X != 50 || c.Y != 20 || c.Dragging() {
		t.Errorf("moved after release: (%v, %v)", c.X, c.Y)
	}
}

func TestStepPanAndConvert(t *testing.T) {
	c := New(640, 480, 1280, 768, 64)

	c.Step(Right)
	c.Step(Down)
	c.Step(Down)
	c.Step(Up)
	if c.X != 64 || c.Y != 64 {
		t.Errorf("after steps = (%v, %v)", c.X, c.Y)
	}
	c.Step(Left)
	if c.X != 0 {
		t.Errorf("after left step x = %v", c.X)
	}

	c.PanTo(640, 384)
	if c.X != 320 || c.Y != 144 {
		t.Errorf("PanTo = (%v, %v), want (320, 144)", c.X, c.Y)
	}

	wx, wy := c.ToWorld(10, 20)
	if wx != 330 || wy != 164 {
		t.Errorf("ToWorld = (%v, %v)", wx, wy)
	}
	sx, sy := c.ToScreen(wx, wy)
	if sx != 10 || sy != 20 {
		t.Errorf("ToScreen = (%v, %v)", sx, sy)
	}
}
