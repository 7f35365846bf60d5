package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	paddleHitFreq     = 880
	paddleHitLength   = 50 * time.Millisecond
	pointScoredFreq   = 440
	pointScoredLength = 200 * time.Millisecond
)

// Sound plays short sine tones for paddle hits and points.
type Sound struct{}

func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{}, nil
}

func (s *Sound) PaddleHit(index int) {
	s.tone(paddleHitFreq, paddleHitLength)
}

func (s *Sound) PointScored(player int) {
	s.tone(pointScoredFreq, pointScoredLength)
}

func (s *Sound) tone(freq float64, length time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(length), sine))
}

func (s *Sound) Close() {
	speaker.Close()
}
