// component/movement.go
package component

import "go-swarm-shooter/pkg/vecmath"

// Shape selects the collision test used for a body.
type Shape int

const (
	// ShapeBox: Position is the top-left corner, Size is the side length.
	ShapeBox Shape = iota
	// ShapeCircle: Position is the centre, Size is the radius.
	ShapeCircle
)

// Body — кинематика сущности
type Body struct {
	Position  vecmath.Vec2
	Direction vecmath.Vec2 // единичный вектор или ноль
	Speed     float64      // пикселей за тик
	Shape     Shape
	Size      float64
}

// Step advances the body along its direction by Speed*scale.
func (b *Body) Step(scale float64) {
	b.Position = b.Position.Add(b.Direction.Scale(b.Speed * scale))
}

// Center returns the centre of the body's shape.
func (b *Body) Center() vecmath.Vec2 {
	if b.Shape == ShapeBox {
		half := b.Size / 2
		return vecmath.Vec2{X: b.Position.X + half, Y: b.Position.Y + half}
	}
	return b.Position
}

// Radius returns the radius used by circle tests. Boxes use half their side.
func (b *Body) Radius() float64 {
	if b.Shape == ShapeBox {
		return b.Size / 2
	}
	return b.Size
}
