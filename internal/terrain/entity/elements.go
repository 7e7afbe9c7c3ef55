package entity

// Element presets stamp type, health and size into the entity's data bag.

func NewTree(x, y float64, data map[string]any) *Entity {
	return newElement(x, y, data, "tree", 50, 5)
}

func NewRock(x, y float64, data map[string]any) *Entity {
	return newElement(x, y, data, "rock", 100, 2)
}

func NewBush(x, y float64, data map[string]any) *Entity {
	return newElement(x, y, data, "bush", 20, 3)
}

func NewGrass(x, y float64, data map[string]any) *Entity {
	return newElement(x, y, data, "grass", 10, 1)
}

func newElement(x, y float64, data map[string]any, typ string, health int, size float64) *Entity {
	e := New(x, y, data)
	e.Data["type"] = typ
	e.Data["health"] = health
	e.Data["size"] = size
	return e
}
