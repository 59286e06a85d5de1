package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// quitRequested reports whether the operator asked to close the simulation.
// Window close is handled by the Ebiten runtime itself.
func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// handleDebugControls processes the debug overlay hotkeys: +/- adjust the
// time scale, space pauses.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustTimeScale(-timeScaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustTimeScale(timeScaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
}

// adjustTimeScale clamps the dt multiplier within its bounds.
func (g *Game) adjustTimeScale(delta float64) {
	g.timeScale += delta
	if g.timeScale < minTimeScale {
		g.timeScale = minTimeScale
	} else if g.timeScale > maxTimeScale {
		g.timeScale = maxTimeScale
	}
}
