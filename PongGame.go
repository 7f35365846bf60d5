package main

import (
	"Pongo/core"
	"Pongo/logger"
	"fmt"
	"time"

	"github.com/gdamore/tcell"
)

// PongGame hosts one play state on a terminal screen.
type PongGame struct {
	screen   tcell.Screen
	settings *core.Settings
	state    *core.PlayState
	input    *KeyTracker
	renderer *Renderer
	lastTick time.Time
}

func NewPongGame(screen tcell.Screen, settings *core.Settings, cues core.Cues) *PongGame {
	state := core.NewPlayState(settings, cues)
	return &PongGame{
		screen:   screen,
		settings: settings,
		state:    state,
		input:    NewKeyTracker(settings.KeyHold, settings.KeyRepeatDelay),
		renderer: NewRenderer(screen, state.World),
	}
}

func (g *PongGame) State() *core.PlayState {
	return g.state
}

// Run drives the frame loop until the player quits.
func (g *PongGame) Run() {
	events := g.initUserInput()
	ticker := time.NewTicker(g.settings.FrameInterval)
	defer ticker.Stop()

	g.lastTick = time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev) {
				logger.Log.Info(fmt.Sprintf(logger.PlayStopMsg, g.state.ID, g.state.Scores[0], g.state.Scores[1]))
				return
			}
		case now := <-ticker.C:
			g.step(now)
		}
	}
}

func (g *PongGame) initUserInput() <-chan tcell.Event {
	//建立一個goroutine去監聽鍵盤的事件
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	return events
}

// handleEvent returns false when the game should stop.
func (g *PongGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.drawView(g.state)
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
		g.input.PressEvent(ev)
	}
	return true
}

// step simulates and draws one frame for the time elapsed since the last one.
func (g *PongGame) step(now time.Time) {
	elapsed := now.Sub(g.lastTick)
	g.lastTick = now

	g.input.Tick(now)
	g.state.Update(elapsed, g.input)
	g.renderer.drawView(g.state)
}
