package core

import (
	"time"

	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

const arcadeCellSize = 16

const (
	BallTag   = "ball"
	PaddleTag = "paddle"
)

// BoundsFunc receives the world edges a body was stopped by in one step.
type BoundsFunc func(up, down, left, right bool)

// Arcade moves bodies and keeps them inside the world. Every enabled body
// also gets a resolv object with a matching shape: a circle for the ball and
// a rectangle for each paddle. The space answers the broad phase and the
// shapes give the contact and its MTV.
type Arcade struct {
	world   World
	space   *resolv.Space
	objects map[*GameObject]*resolv.Object
}

func NewArcade(world World) *Arcade {
	return &Arcade{
		world:   world,
		space:   resolv.NewSpace(int(world.Width), int(world.Height), arcadeCellSize, arcadeCellSize),
		objects: make(map[*GameObject]*resolv.Object),
	}
}

// Enable registers the object with the space and gives it a collision shape.
func (a *Arcade) Enable(obj *GameObject, tags ...string) {
	if _, ok := a.objects[obj]; ok {
		return
	}
	o := resolv.NewObject(obj.Left(), obj.Top(), obj.Width, obj.Height, tags...)
	var shape resolv.IShape = resolv.NewRectangle(0, 0, obj.Width, obj.Height)
	if obj.Body.Circle {
		shape = resolv.NewCircle(0, 0, obj.Radius())
	}
	o.SetShape(shape)
	a.space.Add(o)
	a.objects[obj] = o
	a.sync(obj)
}

func (a *Arcade) sync(obj *GameObject) *resolv.Object {
	o, ok := a.objects[obj]
	if !ok {
		return nil
	}
	o.X = obj.Left()
	o.Y = obj.Top()
	o.Update()
	// Update moves the shape to the object's top-left corner, a circle sits on its centre.
	if obj.Body.Circle {
		o.Shape.SetPosition(obj.Position.X, obj.Position.Y)
	}
	return o
}

// Step integrates the object's velocity over elapsed and keeps it inside the
// world. Immovable bodies are driven directly and are skipped.
func (a *Arcade) Step(obj *GameObject, elapsed time.Duration, onBounds BoundsFunc) {
	if obj.Body.Immovable {
		return
	}
	obj.Position = obj.Position.Add(obj.Velocity.Scale(elapsed.Seconds()))
	if obj.Body.CollideWorldBounds {
		a.checkWorldBounds(obj, onBounds)
	}
	a.sync(obj)
}

func (a *Arcade) checkWorldBounds(obj *GameObject, onBounds BoundsFunc) {
	var up, down, left, right bool

	if obj.Left() < 0 {
		obj.Position.X = obj.HalfWidth()
		obj.Velocity.X *= -obj.Body.Bounce.X
		left = true
	} else if obj.Right() > a.world.Width {
		obj.Position.X = a.world.Width - obj.HalfWidth()
		obj.Velocity.X *= -obj.Body.Bounce.X
		right = true
	}

	if obj.Top() < 0 {
		obj.Position.Y = obj.HalfHeight()
		obj.Velocity.Y *= -obj.Body.Bounce.Y
		up = true
	} else if obj.Bottom() > a.world.Height {
		obj.Position.Y = a.world.Height - obj.HalfHeight()
		obj.Velocity.Y *= -obj.Body.Bounce.Y
		down = true
	}

	if (up || down || left || right) && onBounds != nil {
		onBounds(up, down, left, right)
	}
}

// Collide tests a circular mover against an immovable rectangle. On contact
// the mover is pushed out and onCollide runs. Returns whether they touched.
func (a *Arcade) Collide(paddle, ball *GameObject, onCollide func()) bool {
	paddleObj := a.sync(paddle)
	ballObj := a.sync(ball)
	if paddleObj == nil || ballObj == nil {
		return false
	}

	candidates := ballObj.Check(0, 0, PaddleTag)
	if candidates == nil || !containsObject(candidates.Objects, paddleObj) {
		return false
	}

	contact := ballObj.Shape.Intersection(0, 0, paddleObj.Shape)
	if contact == nil {
		return false
	}
	ball.Position = ball.Position.Add(separation(contact, ballObj, paddleObj, ball.Radius()))
	a.sync(ball)

	if onCollide != nil {
		onCollide()
	}
	return true
}

// separation turns a circle/rectangle contact into the push that clears the
// circle. resolv measures the MTV from the nearest contact point towards the
// circle centre, so once the centre is inside the rectangle it points inwards
// and falls short by the depth of the centre.
func separation(contact *resolv.ContactSet, circleObj, rectObj *resolv.Object, radius float64) Vector {
	if len(contact.MTV) < 2 {
		return Vector{}
	}
	push := Vector{contact.MTV.X(), contact.MTV.Y()}

	rect, ok := rectObj.Shape.(*resolv.ConvexPolygon)
	if !ok {
		return push
	}
	cx, cy := circleObj.Shape.Position()
	if rect.PointInside(vector.Vector{cx, cy}) {
		push = push.Normalize().Scale(-(2*radius - push.Length()))
	}
	return push
}

func containsObject(objects []*resolv.Object, target *resolv.Object) bool {
	for _, o := range objects {
		if o == target {
			return true
		}
	}
	return false
}
