package core

// World is the fixed-size play field. Origin is the top-left corner.
type World struct {
	Width, Height float64
}

func (w World) Center() Vector {
	return Vector{w.Width * 0.5, w.Height * 0.5}
}

// Body carries the physics flags the arcade service reads for a game object.
type Body struct {
	Circle             bool
	Immovable          bool
	CollideWorldBounds bool
	Bounce             Vector // per-axis restitution for world bounds contact
}

// GameObject is anything placed in the world. Position is the centre of the object.
type GameObject struct {
	Position      Vector
	Velocity      Vector
	Width, Height float64
	Visible       bool
	Symbol        rune
	Body          Body
}

func (o *GameObject) HalfWidth() float64 {
	return o.Width * 0.5
}

func (o *GameObject) HalfHeight() float64 {
	return o.Height * 0.5
}

// Radius is only meaningful for circular bodies.
func (o *GameObject) Radius() float64 {
	return o.Width * 0.5
}

func (o *GameObject) Left() float64 {
	return o.Position.X - o.HalfWidth()
}

func (o *GameObject) Right() float64 {
	return o.Position.X + o.HalfWidth()
}

func (o *GameObject) Top() float64 {
	return o.Position.Y - o.HalfHeight()
}

func (o *GameObject) Bottom() float64 {
	return o.Position.Y + o.HalfHeight()
}
