package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas is the drawing surface consumed by the spinner tree's render
// traversal. Keeping it an interface lets the traversal run headless in
// tests.
type canvas interface {
	drawLine(x0, y0, x1, y1 float64, clr color.Color, width float32)
	strokeCircle(cx, cy, r float64, clr color.Color)
	fillCircle(cx, cy, r float64, clr color.Color)
}

// ebitenCanvas adapts an Ebiten image to the canvas interface.
type ebitenCanvas struct {
	screen *ebiten.Image
}

func (c ebitenCanvas) drawLine(x0, y0, x1, y1 float64, clr color.Color, width float32) {
	vector.StrokeLine(c.screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

func (c ebitenCanvas) strokeCircle(cx, cy, r float64, clr color.Color) {
	vector.StrokeCircle(c.screen, float32(cx), float32(cy), float32(r), 1, clr, true)
}

func (c ebitenCanvas) fillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.screen, float32(cx), float32(cy), float32(r), clr, true)
}

// Draw renders every spinner tree, the totals panel, and the optional debug
// overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)
	c := ebitenCanvas{screen: screen}
	for _, sys := range g.systems {
		sys.root.render(c)
	}

	vector.DrawFilledRect(screen, panelX, panelY, panelW, panelH, panelColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Total Particles: %d", g.totalParticles()), panelX+10, panelY+5)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Total Energy: %.2f", g.totalEnergy()), panelX+10, panelY+30)

	if *debugFlag {
		voices := 0
		if g.player != nil {
			voices = g.player.voiceCount()
		}
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTime scale: %.2fx (+/-)\nSim: %.2f ms\nVoices: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.timeScale,
			g.lastSimDuration.Seconds()*1000, voices)
		ebitenutil.DebugPrintAt(screen, debugMsg, panelX, panelY+panelH+10)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return *windowWFlag, *windowHFlag
}
