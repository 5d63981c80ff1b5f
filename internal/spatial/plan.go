package spatial

import "math"

// PlanPoint is a position in abstract floor-plan units, distinct from
// geographic coordinates.
type PlanPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlanDistance returns the straight-line distance between two plan points,
// in plan units.
func PlanDistance(a, b PlanPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PlanBounds is the usable area of a floor plan.
type PlanBounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Clamp restricts p to the bounds.
func (b PlanBounds) Clamp(p PlanPoint) PlanPoint {
	return PlanPoint{
		X: math.Max(b.MinX, math.Min(b.MaxX, p.X)),
		Y: math.Max(b.MinY, math.Min(b.MaxY, p.Y)),
	}
}

// DefaultPlanBounds keeps positions inside the drawable area of the standard
// 600x400 unit floor plan.
var DefaultPlanBounds = PlanBounds{MinX: 60, MinY: 60, MaxX: 540, MaxY: 340}

// IndoorMapper translates a geographic fix into floor-plan coordinates. It is
// the replacement boundary for a real indoor positioning source (WiFi
// fingerprinting, BLE beacons, QR check-ins); the mapping policy behind it is
// not a contract.
type IndoorMapper interface {
	MapToPlan(lat, lng float64) PlanPoint
}

// GridMapper is the placeholder mapping: each axis is derived from the
// sub-cell fractional part of the fix, scaled onto the plan and clamped to
// its bounds. Deterministic, so repeated fixes at one spot map to one point.
type GridMapper struct {
	BaseX  float64
	BaseY  float64
	Cell   float64 // degrees per grid cell
	Scale  float64 // plan units per degree within a cell
	Bounds PlanBounds
}

// MapToPlan implements IndoorMapper.
func (m GridMapper) MapToPlan(lat, lng float64) PlanPoint {
	p := PlanPoint{
		X: m.BaseX + math.Mod(lat, m.Cell)*m.Scale,
		Y: m.BaseY + math.Mod(lng, m.Cell)*m.Scale,
	}
	return m.Bounds.Clamp(p)
}

// DefaultGridMapper returns the mapper tuned for the standard floor plan.
func DefaultGridMapper() GridMapper {
	return GridMapper{
		BaseX:  200,
		BaseY:  250,
		Cell:   0.001,
		Scale:  100000,
		Bounds: DefaultPlanBounds,
	}
}
