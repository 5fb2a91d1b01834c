package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestHeadingAndFromAngle(t *testing.T) {
	angle := Heading(Point{0, 0}, Point{0, 10})
	if math.Abs(angle-math.Pi/2) > 1e-9 {
		t.Fatalf("Heading = %v, want pi/2", angle)
	}
	v := FromAngle(angle, 3)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-3) > 1e-9 {
		t.Errorf("FromAngle = %+v, want (0, 3)", v)
	}
}

func TestCheckCollisionMovingBox(t *testing.T) {
	a := BoundsAt(Point{0, 0}, 10, 10)
	b := BoundsAt(Point{15, 0}, 10, 10)

	if CheckCollisionMovingBox(a, Point{}, b) {
		t.Error("boxes 5px apart should not collide without movement")
	}
	if !CheckCollisionMovingBox(a, Point{X: 5}, b) {
		t.Error("touching after move should count as collision")
	}
	if CheckCollisionMovingBox(a, Point{X: 5, Y: 20}, b) {
		t.Error("moving past b vertically should not collide")
	}
}

func TestCircleOverlapIsStrict(t *testing.T) {
	if CircleOverlap(Point{0, 0}, 30, Point{40, 0}, 10) {
		t.Error("circles touching exactly must not overlap")
	}
	if !CircleOverlap(Point{0, 0}, 30, Point{39.9, 0}, 10) {
		t.Error("circles closer than the radius sum must overlap")
	}
}

func TestPointInRect(t *testing.T) {
	b := BoundsAt(Point{64, 128}, 128, 64)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{64, 128}, true},
		{Point{192, 192}, true},
		{Point{100, 150}, true},
		{Point{63, 150}, false},
		{Point{100, 193}, false},
	}
	for _, c := range cases {
		if got := PointInRect(c.p, b); got != c.want {
			t.Errorf("PointInRect(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}
