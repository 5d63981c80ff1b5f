package spatial

import (
	"math"
	"testing"
)

func TestPlanDistance(t *testing.T) {
	if d := PlanDistance(PlanPoint{X: 0, Y: 0}, PlanPoint{X: 3, Y: 4}); d != 5 {
		t.Fatalf("distance=%f, want 5", d)
	}
	if d := PlanDistance(PlanPoint{X: 50, Y: 300}, PlanPoint{X: 450, Y: 300}); d != 400 {
		t.Fatalf("distance=%f, want 400", d)
	}
}

func TestClamp(t *testing.T) {
	b := DefaultPlanBounds
	cases := []struct {
		in, want PlanPoint
	}{
		{PlanPoint{X: 0, Y: 0}, PlanPoint{X: 60, Y: 60}},
		{PlanPoint{X: 1000, Y: 1000}, PlanPoint{X: 540, Y: 340}},
		{PlanPoint{X: 300, Y: 200}, PlanPoint{X: 300, Y: 200}},
		{PlanPoint{X: -50, Y: 200}, PlanPoint{X: 60, Y: 200}},
	}
	for _, tc := range cases {
		if got := b.Clamp(tc.in); got != tc.want {
			t.Fatalf("clamp(%+v)=%+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestGridMapperDeterministic(t *testing.T) {
	m := DefaultGridMapper()
	a := m.MapToPlan(47.6868, -116.7808)
	b := m.MapToPlan(47.6868, -116.7808)
	if a != b {
		t.Fatalf("mapping not deterministic: %+v vs %+v", a, b)
	}
}

func TestGridMapperStaysInBounds(t *testing.T) {
	m := DefaultGridMapper()
	coords := []struct{ lat, lng float64 }{
		{47.6868, -116.7808},
		{47.68689999, -116.78089999},
		{0, 0},
		{-33.8688, 151.2093},
		{89.999, 179.999},
	}
	for _, c := range coords {
		p := m.MapToPlan(c.lat, c.lng)
		if p.X < m.Bounds.MinX || p.X > m.Bounds.MaxX || p.Y < m.Bounds.MinY || p.Y > m.Bounds.MaxY {
			t.Fatalf("mapped point %+v outside bounds for (%f, %f)", p, c.lat, c.lng)
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("NaN coordinate for (%f, %f)", c.lat, c.lng)
		}
	}
}

func TestGridMapperMovesWithTheFix(t *testing.T) {
	m := DefaultGridMapper()
	a := m.MapToPlan(47.68680, -116.78080)
	b := m.MapToPlan(47.68685, -116.78080)
	if a == b {
		t.Fatalf("distinct fixes inside one cell mapped to the same point: %+v", a)
	}
}
