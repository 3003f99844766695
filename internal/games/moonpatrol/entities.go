package moonpatrol

import (
	"github.com/vovakirdan/moonpatrol/internal/core"
)

// ObstacleKind tags the obstacle variant.
type ObstacleKind int

const (
	KindBoulder ObstacleKind = iota // Destructible rock sitting on the ground
	KindCrater                      // Gap in the ground, only lethal when driven into
)

// String returns the kind name used in logs.
func (k ObstacleKind) String() string {
	switch k {
	case KindBoulder:
		return "boulder"
	case KindCrater:
		return "crater"
	default:
		return "unknown"
	}
}

// Obstacle is a boulder or a crater scrolling towards the vehicle.
//
// For boulders (X, Y) is the top-left corner and Hits counts the projectile
// hits still needed to destroy it. For craters Y is the ground line, Height
// is the crater depth and Hits is unused.
type Obstacle struct {
	Kind   ObstacleKind
	X      int
	Y      int
	Width  int
	Height int
	Hits   int
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// OffScreen reports whether the obstacle has scrolled fully past the left edge.
func (o Obstacle) OffScreen() bool {
	return o.X+o.Width <= 0
}

// CraterTriangle returns the three corners of the crater outline:
// left rim, bottom center, right rim.
func (o Obstacle) CraterTriangle() [3][2]float64 {
	x := float64(o.X)
	y := float64(o.Y)
	w := float64(o.Width)
	return [3][2]float64{
		{x, y},
		{x + w/2, y + float64(o.Height)},
		{x + w, y},
	}
}

// Vehicle is the player's moon buggy. Only Y changes; X is fixed.
type Vehicle struct {
	X        int
	Y        int
	Width    int
	Height   int
	VelY     int
	Airborne bool
}

// Rect returns the vehicle's bounding box.
func (v Vehicle) Rect() core.Rect {
	return core.NewRect(v.X, v.Y, v.Width, v.Height)
}

// Bottom returns the y-coordinate of the vehicle's wheels.
func (v Vehicle) Bottom() int {
	return v.Y + v.Height
}

// Projectile is a cannon shot travelling right.
type Projectile struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect returns the projectile's bounding box.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}
