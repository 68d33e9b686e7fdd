// Package core provides fundamental types and utilities for the block breaker.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Rect represents an axis-aligned bounding box in logical canvas units.
// The same box is used for render placement and for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.CenterX(), r.CenterY()
}

// SetLeft moves the rectangle so its left edge is at x.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rectangle so its right edge is at x.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rectangle so its top edge is at y.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rectangle so its bottom edge is at y.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenterX moves the rectangle so its horizontal center is at x.
func (r *Rect) SetCenterX(x float64) { r.X = x - r.W/2 }

// SetCenterY moves the rectangle so its vertical center is at y.
func (r *Rect) SetCenterY(y float64) { r.Y = y - r.H/2 }

// SetCenter moves the rectangle so its center is at (x, y).
func (r *Rect) SetCenter(x, y float64) {
	r.SetCenterX(x)
	r.SetCenterY(y)
}

// Translate moves the rectangle by (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Resize changes the dimensions while keeping the center in place.
func (r *Rect) Resize(w, h float64) {
	cx, cy := r.Center()
	r.W = w
	r.H = h
	r.SetCenter(cx, cy)
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ClampInside returns a copy of r moved the minimum distance needed to lie
// fully inside bounds. A rect larger than bounds is centered on it.
func (r Rect) ClampInside(bounds Rect) Rect {
	if r.W >= bounds.W {
		r.X = bounds.CenterX() - r.W/2
	} else {
		r.X = ClampF(r.X, bounds.X, bounds.Right()-r.W)
	}
	if r.H >= bounds.H {
		r.Y = bounds.CenterY() - r.H/2
	} else {
		r.Y = ClampF(r.Y, bounds.Y, bounds.Bottom()-r.H)
	}
	return r
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

