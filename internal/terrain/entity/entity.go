// Package entity holds the data types the object-placement layer works
// with: movable entities with free-form data bags and their axis-aligned
// bounding rectangles. These consume generated chunk data; they never
// participate in terrain synthesis or caching.
package entity

import "github.com/google/uuid"

// Rectangle is an axis-aligned rectangle in world space.
type Rectangle struct {
	ID   uuid.UUID
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewRectangle builds a rectangle with a fresh id.
func NewRectangle(minX, minY, maxX, maxY float64) Rectangle {
	return Rectangle{ID: uuid.New(), MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// ContainsPoint reports whether (x, y) lies inside the rectangle, borders
// included.
func (r Rectangle) ContainsPoint(x, y float64) bool {
	return r.MinX <= x && x <= r.MaxX && r.MinY <= y && y <= r.MaxY
}

// Intersects reports whether the two rectangles overlap, touching borders
// included.
func (r Rectangle) Intersects(o Rectangle) bool {
	return !(r.MaxX < o.MinX || r.MinX > o.MaxX || r.MaxY < o.MinY || r.MinY > o.MaxY)
}

// Entity is a movable world object at (X, Y) carrying arbitrary data. Its
// bounds derive from the "size" entry in Data.
type Entity struct {
	ID   uuid.UUID
	X    float64
	Y    float64
	Data map[string]any
}

// New builds an entity at (x, y). A nil data map is replaced with an empty
// one so UpdateData always works.
func New(x, y float64, data map[string]any) *Entity {
	if data == nil {
		data = make(map[string]any)
	}
	return &Entity{ID: uuid.New(), X: x, Y: y, Data: data}
}

// Move places the entity at a new position.
func (e *Entity) Move(newX, newY float64) {
	e.X = newX
	e.Y = newY
}

// UpdateData sets or replaces one data entry.
func (e *Entity) UpdateData(key string, value any) {
	e.Data[key] = value
}

// Position returns the entity's current coordinates.
func (e *Entity) Position() (float64, float64) {
	return e.X, e.Y
}

// Bounds returns the entity's bounding rectangle: position ± size, where
// size comes from the "size" data entry and defaults to 1.
func (e *Entity) Bounds() Rectangle {
	size := e.size()
	return NewRectangle(e.X-size, e.Y-size, e.X+size, e.Y+size)
}

func (e *Entity) size() float64 {
	switch v := e.Data["size"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 1.0
}
