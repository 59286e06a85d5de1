package main

import (
	"image/color"
	"testing"
)

// recordingCanvas counts draw calls in order, letting the render traversal
// run without a display.
type recordingCanvas struct {
	lines   int
	strokes int
	fills   []color.Color
}

func (c *recordingCanvas) drawLine(x0, y0, x1, y1 float64, clr color.Color, width float32) {
	c.lines++
}

func (c *recordingCanvas) strokeCircle(cx, cy, r float64, clr color.Color) {
	c.strokes++
}

func (c *recordingCanvas) fillCircle(cx, cy, r float64, clr color.Color) {
	c.fills = append(c.fills, clr)
}

// TestRenderPrimitiveCounts checks that the traversal draws one arm line and
// one lobe outline per lobe per node, and one filled circle per particle.
func TestRenderPrimitiveCounts(t *testing.T) {
	root := newTestTree(1, 3, 141)
	c := &recordingCanvas{}
	root.render(c)

	nodes := root.nodeCount()
	if want := nodes * lobeCount; c.lines != want {
		t.Errorf("drew %d arm lines, want %d", c.lines, want)
	}
	if want := nodes * lobeCount; c.strokes != want {
		t.Errorf("drew %d lobe outlines, want %d", c.strokes, want)
	}
	if want := root.totalParticles(); len(c.fills) != want {
		t.Errorf("drew %d particles, want %d", len(c.fills), want)
	}
}

// TestRenderLobeColorKeying checks the first node's particle colors follow
// the lobe index, consistent across the tree.
func TestRenderLobeColorKeying(t *testing.T) {
	root := newTestTree(0, 2, 151)
	c := &recordingCanvas{}
	root.render(c)

	idx := 0
	for lobeIdx := 0; lobeIdx < lobeCount; lobeIdx++ {
		for range root.particles[lobeIdx] {
			if c.fills[idx] != lobeColors[lobeIdx] {
				t.Errorf("particle %d colored %v, want lobe %d color %v", idx, c.fills[idx], lobeIdx, lobeColors[lobeIdx])
			}
			idx++
		}
	}
}
