package main

import (
	"math"
	"math/rand"
)

// toneSink receives fire-and-forget tone requests. A nil sink disables audio.
type toneSink interface {
	play(frequency, volume, pan float64)
}

// spinnerNode is one level of the self-similar spinner tree. Each node owns
// three lobes of particles and, below maxLevel, three child spinners per lobe.
// Child centers are derived state: the parent pushes its current lobe centers
// down every tick.
type spinnerNode struct {
	level      int
	maxLevel   int
	centerX    float64
	centerY    float64
	armLength  float64
	lobeRadius float64
	theta      float64

	particles [lobeCount][]*particle
	children  [lobeCount][]*spinnerNode // empty on leaf nodes
}

// newSpinnerNode builds a spinner and, below maxLevel, its nine children at
// the theta=0 lobe geometry with arm length and lobe radius shrunk per level.
// Children are constructed before the node's own particles so the random draw
// order matches construction depth-first.
func newSpinnerNode(level int, cx, cy, armLength, lobeRadius float64, maxLevel, particlesPerLobe int, rng *rand.Rand) *spinnerNode {
	n := &spinnerNode{
		level:      level,
		maxLevel:   maxLevel,
		centerX:    cx,
		centerY:    cy,
		armLength:  armLength,
		lobeRadius: lobeRadius,
	}
	if level < maxLevel {
		for i := 0; i < lobeCount; i++ {
			lx, ly := n.lobeCenter(i)
			children := make([]*spinnerNode, 0, childrenPerLobe)
			for j := 0; j < childrenPerLobe; j++ {
				child := newSpinnerNode(level+1, lx, ly,
					armLength*childShrinkFactor,
					lobeRadius*childShrinkFactor,
					maxLevel, particlesPerLobe, rng)
				children = append(children, child)
			}
			n.children[i] = children
		}
	}
	n.initParticles(particlesPerLobe, rng)
	return n
}

// lobeCenter returns the current center of lobe idx, derived from theta. It is
// recomputed every tick because theta advances.
func (n *spinnerNode) lobeCenter(idx int) (float64, float64) {
	angle := float64(idx)*2*math.Pi/lobeCount + n.theta
	return n.centerX + math.Cos(angle)*n.armLength,
		n.centerY + math.Sin(angle)*n.armLength
}

// initParticles seeds each lobe with particles on the lobe rim. The initial
// velocity points along the same random angle as the placement, so a particle
// starts moving outward from where it sits.
func (n *spinnerNode) initParticles(count int, rng *rand.Rand) {
	for lobeIdx := 0; lobeIdx < lobeCount; lobeIdx++ {
		lx, ly := n.lobeCenter(lobeIdx)
		group := make([]*particle, 0, count)
		for i := 0; i < count; i++ {
			angle := rng.Float64() * 2 * math.Pi
			speed := rng.Float64() * maxInitialSpeed
			r := minParticleRadius + rng.Float64()*particleRadiusSpread
			group = append(group, &particle{
				x:      lx + math.Cos(angle)*(n.lobeRadius-r),
				y:      ly + math.Sin(angle)*(n.lobeRadius-r),
				vx:     math.Cos(angle) * speed,
				vy:     math.Sin(angle) * speed,
				radius: r,
			})
		}
		n.particles[lobeIdx] = group
	}
}

// maxwellsDemon partitions each lobe's particles by energy class: hot
// particles (energy above the threshold) are mirrored to the +x side of the
// lobe center, cold particles to the -x side. The sort overwrites position
// directly and runs exactly once per node per tick, as the last step of the
// node's own update.
func (n *spinnerNode) maxwellsDemon() {
	for lobeIdx := 0; lobeIdx < lobeCount; lobeIdx++ {
		lx, _ := n.lobeCenter(lobeIdx)
		for _, p := range n.particles[lobeIdx] {
			dx := p.x - lx
			if p.kineticEnergy() > demonEnergyThreshold {
				p.x = lx + math.Abs(dx)
			} else {
				p.x = lx - math.Abs(dx)
			}
		}
	}
}

// update advances one tick: spin, own particle physics (with tone emission
// when a sink is attached), child re-centering and recursion, then the demon
// sort. dt is elapsed milliseconds.
func (n *spinnerNode) update(dt float64, rng *rand.Rand, tones toneSink) {
	n.theta += dt * (1 + float64(n.level)*spinDepthFactor)

	for lobeIdx := 0; lobeIdx < lobeCount; lobeIdx++ {
		lx, ly := n.lobeCenter(lobeIdx)
		for _, p := range n.particles[lobeIdx] {
			p.update(lx, ly, n.lobeRadius, dt, rng)
			if tones != nil {
				n.emitTone(tones, p, lobeIdx)
			}
		}
	}

	for lobeIdx, children := range n.children {
		lx, ly := n.lobeCenter(lobeIdx)
		for _, child := range children {
			child.centerX = lx
			child.centerY = ly
			child.update(dt, rng, tones)
		}
	}

	n.maxwellsDemon()
}

// advanceGeometry spins the node and pushes fresh lobe centers down to its
// children without touching particles. The batch integrator runs between this
// pass and finishTick.
func (n *spinnerNode) advanceGeometry(dt float64) {
	n.theta += dt * (1 + float64(n.level)*spinDepthFactor)
	for lobeIdx, children := range n.children {
		lx, ly := n.lobeCenter(lobeIdx)
		for _, child := range children {
			child.centerX = lx
			child.centerY = ly
			child.advanceGeometry(dt)
		}
	}
}

// finishTick applies jitter and tone emission in the same particle order as
// update, recurses into children, then runs the demon sort. advanceGeometry,
// a batch integration over the whole tree, and finishTick together produce
// the same trajectories as update: integration draws nothing from the random
// source, so the jitter draw order is identical.
func (n *spinnerNode) finishTick(rng *rand.Rand, tones toneSink) {
	for lobeIdx := 0; lobeIdx < lobeCount; lobeIdx++ {
		for _, p := range n.particles[lobeIdx] {
			p.jitter(rng)
			if tones != nil {
				n.emitTone(tones, p, lobeIdx)
			}
		}
	}
	for _, children := range n.children {
		for _, child := range children {
			child.finishTick(rng, tones)
		}
	}
	n.maxwellsDemon()
}

// emitTone maps the particle's kinetic energy onto the lobe's base frequency
// and stereo position and fires a playback request.
func (n *spinnerNode) emitTone(tones toneSink, p *particle, lobeIdx int) {
	freq, vol := toneParams(p.kineticEnergy(), lobeBaseFrequencies[lobeIdx])
	tones.play(freq, vol, float64(lobeIdx)/(lobeCount-1))
}

// totalEnergy sums particle kinetic energy over this node and all
// descendants. Recomputed on demand; nothing is cached.
func (n *spinnerNode) totalEnergy() float64 {
	var energy float64
	for _, group := range n.particles {
		for _, p := range group {
			energy += p.kineticEnergy()
		}
	}
	for _, children := range n.children {
		for _, child := range children {
			energy += child.totalEnergy()
		}
	}
	return energy
}

// totalParticles counts particles over this node and all descendants.
func (n *spinnerNode) totalParticles() int {
	var count int
	for _, group := range n.particles {
		count += len(group)
	}
	for _, children := range n.children {
		for _, child := range children {
			count += child.totalParticles()
		}
	}
	return count
}

// nodeCount returns the number of spinner nodes in this subtree.
func (n *spinnerNode) nodeCount() int {
	count := 1
	for _, children := range n.children {
		for _, child := range children {
			count += child.nodeCount()
		}
	}
	return count
}

// render draws the node's arms, lobe outlines, and particles, then recurses
// into children. The traversal is node-then-children, lobe-major within a
// node.
func (n *spinnerNode) render(c canvas) {
	for i := 0; i < lobeCount; i++ {
		lx, ly := n.lobeCenter(i)
		c.drawLine(n.centerX, n.centerY, lx, ly, armColor, armLineWidth)
		c.strokeCircle(lx, ly, n.lobeRadius, lobeColors[i])
		for _, p := range n.particles[i] {
			c.fillCircle(p.x, p.y, p.radius, lobeColors[i])
		}
	}
	for _, children := range n.children {
		for _, child := range children {
			child.render(c)
		}
	}
}
