package core

import (
	"Pongo/logger"
	"fmt"
	"time"
)

const BallSymbol = 0x25CF // 球符號

const (
	DefaultBallDiameter   = 16.0
	DefaultBallSpeed      = 400.0 // world units per second
	DefaultBallBeginDelay = 1 * time.Second
	DefaultBallResetDelay = 1500 * time.Millisecond
)

// BallState is derived from which timer the ball is waiting on.
type BallState int

const (
	BallIdle BallState = iota
	BallMoving
	BallScoredHidden
)

var ballStateName = map[BallState]string{
	BallIdle:         "idle",
	BallMoving:       "moving",
	BallScoredHidden: "scored",
}

func (s BallState) String() string {
	return ballStateName[s]
}

type ballTimer int

const (
	timerNone ballTimer = iota
	timerLaunch
	timerReset
)

// BoundsListener is told when the ball crosses the left or right edge.
type BoundsListener interface {
	OnHorizontalBoundsHit(side Side)
}

type BallOptions struct {
	Diameter   float64
	Speed      float64
	BeginDelay time.Duration
	ResetDelay time.Duration
}

func DefaultBallOptions() BallOptions {
	return BallOptions{
		Diameter:   DefaultBallDiameter,
		Speed:      DefaultBallSpeed,
		BeginDelay: DefaultBallBeginDelay,
		ResetDelay: DefaultBallResetDelay,
	}
}

// Ball bounces off the top and bottom edges and the paddles. Crossing the
// left or right edge scores, hides the ball and starts the serve cycle again.
type Ball struct {
	GameObject

	world    World
	clock    *Clock
	listener BoundsListener
	opts     BallOptions
	initial  Vector

	hitRightBoundsLast bool
	lastHit            *Side
	pending            ballTimer
}

// NewBall places the ball at (x, y) and schedules the first serve.
func NewBall(world World, clock *Clock, x, y float64, opts BallOptions, listener BoundsListener) *Ball {
	b := &Ball{
		GameObject: GameObject{
			Position: Vector{x, y},
			Width:    opts.Diameter,
			Height:   opts.Diameter,
			Visible:  true,
			Symbol:   BallSymbol,
			Body: Body{
				Circle:             true,
				CollideWorldBounds: true,
				Bounce:             Vector{0, 1},
			},
		},
		world:    world,
		clock:    clock,
		listener: listener,
		opts:     opts,
		initial:  Vector{x, y},
	}
	b.launchWithDelay()
	return b
}

func (b *Ball) Speed() float64 {
	return b.opts.Speed
}

func (b *Ball) Spawn() Vector {
	return b.initial
}

func (b *Ball) State() BallState {
	switch b.pending {
	case timerLaunch:
		return BallIdle
	case timerReset:
		return BallScoredHidden
	default:
		return BallMoving
	}
}

// HitRightBoundsLast reports which edge was crossed most recently.
func (b *Ball) HitRightBoundsLast() bool {
	return b.hitRightBoundsLast
}

// LastBoundsHit returns the side of the latest left/right crossing, if any.
func (b *Ball) LastBoundsHit() (Side, bool) {
	if b.lastHit == nil {
		return Left, false
	}
	return *b.lastHit, true
}

// Update runs once per frame after the physics step.
func (b *Ball) Update() {
	if b.Position.Y < 0 || b.Position.Y > b.world.Height {
		b.WallBounce()
	}
}

// WallBounce flips the vertical direction. The velocity is normalized first,
// so the result always has magnitude 1 (or 0 for a resting ball).
func (b *Ball) WallBounce() {
	dir := b.Velocity.Normalize()
	b.Velocity = Vector{dir.X, -dir.Y}
}

// OnPaddleCollision sends the ball away from the half of the world it is in,
// with a vertical speed that grows the further from the paddle centre it hit.
func (b *Ball) OnPaddleCollision(paddle *Paddle) {
	newXSpeed := -b.opts.Speed
	if b.Position.X < b.world.Width*0.5 {
		newXSpeed = b.opts.Speed
	}
	dir := paddle.Position.Subtract(b.Position).Normalize()
	newYSpeed := -dir.Y * b.opts.Speed
	b.Velocity = Vector{newXSpeed, newYSpeed}
}

// OnWorldBoundsHit receives world contact from the physics step. Top and
// bottom contact is ignored here.
func (b *Ball) OnWorldBoundsHit(up, down, left, right bool) {
	if !left && !right {
		return
	}
	side := Left
	if right {
		side = Right
	}
	if b.listener != nil {
		b.listener.OnHorizontalBoundsHit(side)
	}
	b.lastHit = &side
	b.hitRightBoundsLast = right
	b.Visible = false
	b.pending = timerReset
	b.clock.Add(b.opts.ResetDelay, b.Reset)
	b.Velocity = Vector{}
}

// Reset puts the ball back on its spawn point and schedules the next serve.
func (b *Ball) Reset() {
	b.Position = b.initial
	b.Visible = true
	b.Velocity = Vector{}
	logger.Log.Debug(fmt.Sprintf(logger.BallResetMsg, b.initial.X, b.initial.Y))
	b.launchWithDelay()
}

// Launch serves towards the edge crossed last, so the player who conceded
// the point gets the first touch.
func (b *Ball) Launch() {
	b.pending = timerNone
	speed := -b.opts.Speed
	towards := Left
	if b.hitRightBoundsLast {
		speed = b.opts.Speed
		towards = Right
	}
	b.Velocity = Vector{speed, 0}
	logger.Log.Debug(fmt.Sprintf(logger.BallServeMsg, towards))
}

func (b *Ball) launchWithDelay() {
	b.pending = timerLaunch
	b.clock.Add(b.opts.BeginDelay, b.Launch)
}
