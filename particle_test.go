package main

import (
	"math"
	"math/rand"
	"testing"
)

// TestKineticEnergy verifies the energy formula and its non-negativity.
func TestKineticEnergy(t *testing.T) {
	p := &particle{vx: 3, vy: -4}
	if got := p.kineticEnergy(); got != 12.5 {
		t.Errorf("kineticEnergy() = %v, want 12.5", got)
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		q := &particle{
			vx: (rng.Float64() - 0.5) * 10,
			vy: (rng.Float64() - 0.5) * 10,
		}
		if q.kineticEnergy() < 0 {
			t.Fatalf("negative kinetic energy %v for velocity (%v, %v)", q.kineticEnergy(), q.vx, q.vy)
		}
	}
}

// TestReflectionReciprocity checks that a particle crossing the lobe boundary
// head-on has its normal velocity component negated and its position clamped
// to exactly lobeRadius-radius along the outward normal.
func TestReflectionReciprocity(t *testing.T) {
	const lobeRadius = 110.0
	p := &particle{x: 100, y: 0, vx: 1, vy: 0, radius: 5}
	rng := rand.New(rand.NewSource(1))

	p.update(0, 0, lobeRadius, 20, rng)

	if p.x != lobeRadius-p.radius {
		t.Errorf("post-reflection x = %v, want exact clamp at %v", p.x, lobeRadius-p.radius)
	}
	if p.y != 0 {
		t.Errorf("post-reflection y = %v, want 0", p.y)
	}
	// Velocity is the elastic reflection plus one jitter draw per component.
	if math.Abs(p.vx+1) > velocityJitter/2 {
		t.Errorf("post-reflection vx = %v, want -1 within jitter %v", p.vx, velocityJitter/2)
	}
	if math.Abs(p.vy) > velocityJitter/2 {
		t.Errorf("post-reflection vy = %v, want 0 within jitter %v", p.vy, velocityJitter/2)
	}
}

// TestReflectionObliqueKeepsTangential verifies that only the normal velocity
// component flips during reflection.
func TestReflectionObliqueKeepsTangential(t *testing.T) {
	// The particle already overlaps the boundary along +x, so the outward
	// normal is exactly (1, 0) and dt of zero isolates the collision response.
	const lobeRadius = 50.0
	p := &particle{x: 49, y: 0, vx: 0.5, vy: 1, radius: 3}
	p.integrate(0, 0, lobeRadius, 0)

	if p.vx != -0.5 {
		t.Errorf("normal component vx = %v, want -0.5", p.vx)
	}
	if p.vy != 1 {
		t.Errorf("tangential component vy = %v, want unchanged 1", p.vy)
	}
	if p.x != lobeRadius-p.radius || p.y != 0 {
		t.Errorf("clamped position = (%v, %v), want (%v, 0)", p.x, p.y, lobeRadius-p.radius)
	}
}

// TestDegenerateCenterSkipsReflection ensures a particle sitting exactly on
// the lobe center never produces a division by zero, even when its radius
// alone exceeds the lobe.
func TestDegenerateCenterSkipsReflection(t *testing.T) {
	p := &particle{x: 0, y: 0, vx: 0, vy: 0, radius: 120}
	rng := rand.New(rand.NewSource(2))

	p.update(0, 0, 110, 16, rng)

	if math.IsNaN(p.x) || math.IsNaN(p.y) || math.IsNaN(p.vx) || math.IsNaN(p.vy) {
		t.Fatalf("degenerate geometry produced NaN state: %+v", p)
	}
	if p.x != 0 || p.y != 0 {
		t.Errorf("position moved to (%v, %v), want (0, 0)", p.x, p.y)
	}
}

// TestContainmentAfterManyTicks runs a particle for many ticks against a
// fixed lobe and checks the containment invariant after every update.
func TestContainmentAfterManyTicks(t *testing.T) {
	const lobeRadius = 110.0
	rng := rand.New(rand.NewSource(3))
	p := &particle{x: 30, y: -20, vx: 0.25, vy: -0.1, radius: 3}

	for tick := 0; tick < 2000; tick++ {
		p.update(12, 34, lobeRadius, 16.7, rng)
		dist := math.Hypot(p.x-12, p.y-34)
		if dist+p.radius > lobeRadius+1e-6 {
			t.Fatalf("tick %d: particle escaped lobe, dist+radius = %v > %v", tick, dist+p.radius, lobeRadius)
		}
	}
}
