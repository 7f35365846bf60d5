package core

import (
	"Pongo/logger"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	separatorSegments = 17
	TitleText         = "PONGO - 2018 Michael Consoli"
)

// Cues is told about moments worth a sound effect.
type Cues interface {
	PaddleHit(index int)
	PointScored(player int)
}

// PlayState is the single play screen: one ball, two paddles and the score.
// Paddle and score index 0 is the left player, 1 the right player.
type PlayState struct {
	ID       string
	World    World
	Clock    *Clock
	Arcade   *Arcade
	Ball     *Ball
	Paddles  []*Paddle
	Scores   []int
	Labels   []*Label // score labels, index-matched with Scores
	InfoText []*Label

	cues  Cues
	frame uint64
}

func NewPlayState(settings *Settings, cues Cues) *PlayState {
	world := World{settings.WorldWidth, settings.WorldHeight}
	s := &PlayState{
		ID:     uuid.NewString(),
		World:  world,
		Clock:  NewClock(),
		Arcade: NewArcade(world),
		Scores: []int{0, 0},
		cues:   cues,
	}

	center := world.Center()
	s.Ball = NewBall(world, s.Clock, center.X, center.Y, settings.BallOptions(), s)
	s.Arcade.Enable(&s.Ball.GameObject, BallTag)

	s.Paddles = []*Paddle{
		NewPaddle(world, settings.PaddleMargin, center.Y, settings.PaddleWidth, settings.PaddleHeight,
			settings.LeftUpKey, settings.LeftDownKey, settings.PaddleSpeedFactor),
		NewPaddle(world, world.Width-settings.PaddleMargin, center.Y, settings.PaddleWidth, settings.PaddleHeight,
			settings.RightUpKey, settings.RightDownKey, settings.PaddleSpeedFactor),
	}
	for _, p := range s.Paddles {
		s.Arcade.Enable(&p.GameObject, PaddleTag)
	}

	s.Labels = createScoreLabels(world)
	s.InfoText = createInfoLabels(world)

	logger.Log.Session(s.ID)
	logger.Log.Info(fmt.Sprintf(logger.PlayStartMsg, s.ID, world.Width, world.Height))
	return s
}

func createScoreLabels(world World) []*Label {
	quarterWidth := world.Width * 0.25
	quarterHeight := world.Height * 0.25
	return []*Label{
		{Position: Vector{quarterWidth, quarterHeight}, Text: "0", Size: LabelLarge},
		{Position: Vector{quarterWidth * 3, quarterHeight}, Text: "0", Size: LabelLarge},
	}
}

func createInfoLabels(world World) []*Label {
	return []*Label{
		{Position: Vector{32, world.Height - 32}, Text: "W / S"},
		{Position: Vector{world.Width - 110, world.Height - 32}, Text: "UP/ DOWN"},
		{Position: Vector{16, 8}, Text: TitleText},
	}
}

// Separator returns the visible segments of the dashed centre line.
func (s *PlayState) Separator() []Segment {
	halfWidth := s.World.Width * 0.5
	lineHeight := s.World.Height / separatorSegments
	segments := make([]Segment, 0, separatorSegments/2+1)
	startY := 0.0
	for i := 0; i < separatorSegments; i++ {
		if i%2 == 0 {
			segments = append(segments, Segment{halfWidth, startY, startY + lineHeight})
		}
		startY += lineHeight
	}
	return segments
}

// Update advances the play state by one frame.
func (s *PlayState) Update(elapsed time.Duration, keys Keys) {
	s.frame++
	s.Clock.Advance(elapsed)

	s.Arcade.Step(&s.Ball.GameObject, elapsed, s.Ball.OnWorldBoundsHit)

	for i, p := range s.Paddles {
		paddle, index := p, i
		s.Arcade.Collide(&paddle.GameObject, &s.Ball.GameObject, func() {
			s.Ball.OnPaddleCollision(paddle)
			logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, index, s.frame))
			if s.cues != nil {
				s.cues.PaddleHit(index)
			}
		})
	}

	s.Ball.Update()
	for _, p := range s.Paddles {
		p.Update(elapsed, keys)
	}
}

func (s *PlayState) Frame() uint64 {
	return s.frame
}

// OnHorizontalBoundsHit gives the point to the player opposite the crossed edge.
func (s *PlayState) OnHorizontalBoundsHit(side Side) {
	player := side.Scorer()
	s.ScorePoint(player)
	logger.Log.Info(fmt.Sprintf(logger.PointScoredMsg, player, side, s.Scores[0], s.Scores[1]))
	if s.cues != nil {
		s.cues.PointScored(player)
	}
}

// ScorePoint increments a player's score. Unknown indexes are ignored.
func (s *PlayState) ScorePoint(index int) {
	if index >= 0 && index < len(s.Scores) {
		s.Scores[index]++
	}
	s.RefreshScoreDisplay()
}

func (s *PlayState) RefreshScoreDisplay() {
	for i := 0; i < len(s.Labels) && i < len(s.Scores); i++ {
		s.Labels[i].Text = strconv.Itoa(s.Scores[i])
	}
}
