package main

import (
	"math"
	"math/rand"
)

// particle is a point mass confined to a circular lobe. Position and velocity
// are in pixel units with dt measured in milliseconds.
type particle struct {
	x, y   float64
	vx, vy float64
	radius float64
}

// kineticEnergy returns the instantaneous kinetic energy, computed on demand.
func (p *particle) kineticEnergy() float64 {
	return 0.5 * (p.vx*p.vx + p.vy*p.vy)
}

// update advances the particle by velocity*dt, reflects it elastically off the
// lobe boundary, and applies a small random velocity perturbation. There is no
// speed cap; slow unbounded energy growth from the perturbation is part of the
// simulation's character.
func (p *particle) update(cx, cy, lobeRadius, dt float64, rng *rand.Rand) {
	p.integrate(cx, cy, lobeRadius, dt)
	p.jitter(rng)
}

// integrate applies the position advance and a single reflective collision
// check against the lobe circle. A particle sitting exactly on the lobe
// center has no defined normal; reflection is skipped for that tick. The
// OpenCL path mirrors this function on the device.
func (p *particle) integrate(cx, cy, lobeRadius, dt float64) {
	p.x += p.vx * dt
	p.y += p.vy * dt

	dx := p.x - cx
	dy := p.y - cy
	dist := math.Hypot(dx, dy)
	if dist+p.radius > lobeRadius && dist > reflectEpsilon {
		nx, ny := dx/dist, dy/dist
		dot := p.vx*nx + p.vy*ny
		p.vx -= 2 * dot * nx
		p.vy -= 2 * dot * ny
		p.x = cx + nx*(lobeRadius-p.radius)
		p.y = cy + ny*(lobeRadius-p.radius)
	}
}

// jitter perturbs each velocity component uniformly within ±velocityJitter/2,
// keeping the system animated even when collisions are rare. Jitter stays on
// the host in every update path so the random source keeps a single draw
// order.
func (p *particle) jitter(rng *rand.Rand) {
	p.vx += (rng.Float64() - 0.5) * velocityJitter
	p.vy += (rng.Float64() - 0.5) * velocityJitter
}
