package core

import (
	"math"
	"time"
)

const PaddleSymbol = 0x2588 // 球拍符號

const (
	DefaultPaddleWidth       = 16.0
	DefaultPaddleHeight      = 90.0
	DefaultPaddleMargin      = 32.0
	DefaultPaddleSpeedFactor = 0.4 // world units per millisecond
)

// Keys reports whether a bound key is currently held.
type Keys interface {
	IsDown(key string) bool
}

// HeldKeys is a fixed key snapshot, keyed by tcell key name (e.g. "Rune[w]", "Up").
type HeldKeys map[string]bool

func (k HeldKeys) IsDown(key string) bool {
	return k[key]
}

// Paddle is a player's actor. Its x never changes; y follows the two bound keys.
type Paddle struct {
	GameObject

	UpKey, DownKey string

	startY      float64
	halfHeight  float64
	worldHeight float64
	speedFactor float64
}

func NewPaddle(world World, x, y, width, height float64, upKey, downKey string, speedFactor float64) *Paddle {
	return &Paddle{
		GameObject: GameObject{
			Position: Vector{x, y},
			Width:    width,
			Height:   height,
			Visible:  true,
			Symbol:   PaddleSymbol,
			Body:     Body{Immovable: true},
		},
		UpKey:       upKey,
		DownKey:     downKey,
		startY:      y,
		halfHeight:  height * 0.5,
		worldHeight: world.Height,
		speedFactor: speedFactor,
	}
}

func (p *Paddle) StartY() float64 {
	return p.startY
}

// Update applies player input for one frame. Up wins when both keys are held.
func (p *Paddle) Update(elapsed time.Duration, keys Keys) {
	distance := float64(elapsed) / float64(time.Millisecond) * p.speedFactor
	if keys.IsDown(p.UpKey) {
		p.Position.Y = math.Max(p.halfHeight, p.Position.Y-distance)
	} else if keys.IsDown(p.DownKey) {
		p.Position.Y = math.Min(p.worldHeight-p.halfHeight, p.Position.Y+distance)
	}
}
