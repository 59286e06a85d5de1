package main

import (
	"math/rand"
	"testing"
)

// TestBatchGatherCoversTree checks that gather visits every particle exactly
// once and starts with the root's first lobe.
func TestBatchGatherCoversTree(t *testing.T) {
	root := newTestTree(1, 3, 101)
	root.advanceGeometry(16.7)

	b := &particleBatch{}
	b.gather(root)

	if got, want := b.size(), root.totalParticles(); got != want {
		t.Fatalf("gathered %d particles, want %d", got, want)
	}
	if len(b.state) != b.size()*batchStateStride || len(b.lobe) != b.size()*batchLobeStride {
		t.Fatalf("buffer lengths %d/%d inconsistent with %d particles", len(b.state), len(b.lobe), b.size())
	}
	if b.refs[0] != root.particles[0][0] {
		t.Error("gather order does not start at the root's first lobe")
	}

	seen := make(map[*particle]bool, b.size())
	for _, p := range b.refs {
		if seen[p] {
			t.Fatal("particle gathered twice")
		}
		seen[p] = true
	}
}

// TestBatchGatherLobeGeometry verifies the per-particle lobe records carry the
// owning lobe's current center and radius.
func TestBatchGatherLobeGeometry(t *testing.T) {
	root := newTestTree(0, 2, 111)
	root.advanceGeometry(5)

	b := &particleBatch{}
	b.gather(root)

	idx := 0
	for lobeIdx := 0; lobeIdx < lobeCount; lobeIdx++ {
		lx, ly := root.lobeCenter(lobeIdx)
		for range root.particles[lobeIdx] {
			base := idx * batchLobeStride
			if b.lobe[base] != float32(lx) || b.lobe[base+1] != float32(ly) {
				t.Errorf("particle %d: lobe center (%v, %v), want (%v, %v)",
					idx, b.lobe[base], b.lobe[base+1], float32(lx), float32(ly))
			}
			if b.lobe[base+2] != float32(root.lobeRadius) {
				t.Errorf("particle %d: lobe radius %v, want %v", idx, b.lobe[base+2], float32(root.lobeRadius))
			}
			idx++
		}
	}
}

// TestBatchScatterRoundTrip writes modified state back and checks it lands on
// the right particles.
func TestBatchScatterRoundTrip(t *testing.T) {
	root := newTestTree(1, 2, 121)
	b := &particleBatch{}
	b.gather(root)

	rng := rand.New(rand.NewSource(122))
	for i := 0; i < b.size(); i++ {
		base := i * batchStateStride
		b.state[base] = rng.Float32() * 100
		b.state[base+1] = rng.Float32() * 100
		b.state[base+2] = rng.Float32()
		b.state[base+3] = rng.Float32()
	}
	b.scatter()

	for i, p := range b.refs {
		base := i * batchStateStride
		if p.x != float64(b.state[base]) || p.y != float64(b.state[base+1]) ||
			p.vx != float64(b.state[base+2]) || p.vy != float64(b.state[base+3]) {
			t.Fatalf("particle %d state not scattered: %+v", i, *p)
		}
	}
}

// TestBatchResetKeepsCapacity confirms reset empties the batch without
// discarding its buffers.
func TestBatchResetKeepsCapacity(t *testing.T) {
	root := newTestTree(0, 5, 131)
	b := &particleBatch{}
	b.gather(root)

	capState := cap(b.state)
	b.reset()
	if b.size() != 0 || len(b.state) != 0 || len(b.lobe) != 0 {
		t.Error("reset did not empty the batch")
	}
	if cap(b.state) != capState {
		t.Errorf("reset dropped capacity: %d, want %d", cap(b.state), capState)
	}
}
