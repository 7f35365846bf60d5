package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boundsRecorder struct {
	sides []Side
}

func (r *boundsRecorder) OnHorizontalBoundsHit(side Side) {
	r.sides = append(r.sides, side)
}

var testWorld = World{Width: 600, Height: 600}

func newTestBall(listener BoundsListener) (*Ball, *Clock) {
	clock := NewClock()
	center := testWorld.Center()
	return NewBall(testWorld, clock, center.X, center.Y, DefaultBallOptions(), listener), clock
}

func TestNewBall(t *testing.T) {
	ball, clock := newTestBall(nil)

	assert.Equal(t, Vector{300, 300}, ball.Position, "Ball should start at its spawn point")
	assert.Equal(t, Vector{}, ball.Velocity, "Ball should be at rest before the first serve")
	assert.True(t, ball.Visible)
	assert.Equal(t, BallIdle, ball.State())
	assert.Equal(t, 1, clock.Pending(), "First serve should be scheduled")
	assert.Equal(t, 8.0, ball.Radius())
}

func TestBallFirstServeAfterDelay(t *testing.T) {
	ball, clock := newTestBall(nil)

	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, Vector{}, ball.Velocity, "Ball should not move before the begin delay")

	clock.Advance(time.Millisecond)
	assert.Equal(t, Vector{-DefaultBallSpeed, 0}, ball.Velocity, "First serve should go left")
	assert.Equal(t, BallMoving, ball.State())
}

func TestBallRightBoundsHitCycle(t *testing.T) {
	recorder := &boundsRecorder{}
	ball, clock := newTestBall(recorder)
	clock.Advance(time.Second)

	ball.Position = Vector{592, 120}
	ball.Velocity = Vector{400, 50}
	ball.OnWorldBoundsHit(false, false, false, true)

	assert.Equal(t, []Side{Right}, recorder.sides, "Listener should be told the right edge was hit")
	assert.Equal(t, Vector{}, ball.Velocity, "Velocity should be zeroed after scoring")
	assert.False(t, ball.Visible, "Ball should be hidden after scoring")
	assert.True(t, ball.HitRightBoundsLast())
	assert.Equal(t, BallScoredHidden, ball.State())
	side, ok := ball.LastBoundsHit()
	require.True(t, ok)
	assert.Equal(t, Right, side)

	clock.Advance(1499 * time.Millisecond)
	assert.False(t, ball.Visible, "Ball should stay hidden until the reset delay elapses")

	clock.Advance(time.Millisecond)
	assert.True(t, ball.Visible, "Ball should be visible after reset")
	assert.Equal(t, ball.Spawn(), ball.Position, "Ball should be back on its spawn point")
	assert.Equal(t, Vector{}, ball.Velocity)
	assert.Equal(t, BallIdle, ball.State())

	clock.Advance(time.Second)
	assert.Equal(t, Vector{DefaultBallSpeed, 0}, ball.Velocity, "Serve should go towards the right edge that was just crossed")
}

func TestBallLeftBoundsHitServesLeft(t *testing.T) {
	recorder := &boundsRecorder{}
	ball, clock := newTestBall(recorder)
	clock.Advance(time.Second)

	ball.OnWorldBoundsHit(false, false, true, false)
	clock.Advance(DefaultBallResetDelay)
	clock.Advance(DefaultBallBeginDelay)

	assert.Equal(t, []Side{Left}, recorder.sides)
	assert.False(t, ball.HitRightBoundsLast())
	assert.Equal(t, Vector{-DefaultBallSpeed, 0}, ball.Velocity, "Serve should go towards the left edge that was just crossed")
}

func TestBallIgnoresTopAndBottomBounds(t *testing.T) {
	recorder := &boundsRecorder{}
	ball, clock := newTestBall(recorder)
	clock.Advance(time.Second)
	ball.Velocity = Vector{-400, 200}

	ball.OnWorldBoundsHit(true, false, false, false)
	ball.OnWorldBoundsHit(false, true, false, false)

	assert.Empty(t, recorder.sides, "Top and bottom contact should not be reported")
	assert.True(t, ball.Visible)
	assert.Equal(t, Vector{-400, 200}, ball.Velocity)
	_, ok := ball.LastBoundsHit()
	assert.False(t, ok)
}

func TestBallWallBounceNormalizes(t *testing.T) {
	ball, _ := newTestBall(nil)
	ball.Velocity = Vector{300, -400}

	ball.WallBounce()

	// The bounce keeps only the direction; the magnitude collapses to 1.
	assert.InDelta(t, 0.6, ball.Velocity.X, 1e-12, "Horizontal sign should be kept")
	assert.InDelta(t, 0.8, ball.Velocity.Y, 1e-12, "Vertical sign should be inverted")
	assert.InDelta(t, 1.0, ball.Velocity.Length(), 1e-12)
}

func TestBallUpdateBouncesOutsideWorld(t *testing.T) {
	ball, _ := newTestBall(nil)

	ball.Velocity = Vector{-300, -400}
	ball.Position.Y = -1
	ball.Update()
	assert.InDelta(t, -0.6, ball.Velocity.X, 1e-12)
	assert.InDelta(t, 0.8, ball.Velocity.Y, 1e-12)

	ball.Velocity = Vector{300, 400}
	ball.Position.Y = 601
	ball.Update()
	assert.InDelta(t, 0.6, ball.Velocity.X, 1e-12)
	assert.InDelta(t, -0.8, ball.Velocity.Y, 1e-12)

	ball.Velocity = Vector{300, 400}
	ball.Position.Y = 300
	ball.Update()
	assert.Equal(t, Vector{300, 400}, ball.Velocity, "Ball inside the world should not bounce")
}

func TestBallOnPaddleCollision(t *testing.T) {
	ball, _ := newTestBall(nil)
	paddle := NewPaddle(testWorld, 32, 300, 16, 90, "Rune[w]", "Rune[s]", DefaultPaddleSpeedFactor)

	ball.Position = Vector{44, 330}
	ball.OnPaddleCollision(paddle)

	assert.Equal(t, DefaultBallSpeed, ball.Velocity.X, "Ball left of centre should go right")
	assert.InDelta(t, 400*30/math.Sqrt(1044), ball.Velocity.Y, 1e-9, "Hit below the paddle centre should send the ball down")
}

func TestBallOnPaddleCollisionPastCentre(t *testing.T) {
	ball, _ := newTestBall(nil)
	left := NewPaddle(testWorld, 32, 300, 16, 90, "Rune[w]", "Rune[s]", DefaultPaddleSpeedFactor)

	// Horizontal direction follows the ball's half, not the paddle struck.
	ball.Position = Vector{310, 300}
	ball.OnPaddleCollision(left)

	assert.Equal(t, -DefaultBallSpeed, ball.Velocity.X)
}

func TestBallPaddleCollisionSpeedBounds(t *testing.T) {
	ball, _ := newTestBall(nil)
	paddle := NewPaddle(testWorld, 568, 300, 16, 90, "Up", "Down", DefaultPaddleSpeedFactor)

	for dy := -60.0; dy <= 60; dy += 7.5 {
		ball.Position = Vector{556, 300 + dy}
		ball.OnPaddleCollision(paddle)

		assert.Equal(t, DefaultBallSpeed, math.Abs(ball.Velocity.X), "|vx| should equal the ball speed")
		assert.LessOrEqual(t, math.Abs(ball.Velocity.Y), float64(DefaultBallSpeed), "|vy| should not exceed the ball speed")
	}
}
