package main

// stepSystems advances every spinner system by dt milliseconds. The CPU path
// fans out to the per-system workers; the OpenCL path runs systems in
// sequence because they share one device queue.
func (g *Game) stepSystems(dt float64) error {
	if g.gpu == nil {
		g.stepWorkers(dt)
		return nil
	}
	for _, sys := range g.systems {
		if err := g.stepSystemBatched(sys, dt); err != nil {
			return err
		}
	}
	return nil
}

// stepSystemBatched runs one tick of a system through the batch integrator:
// geometry first, then a flat integrate+reflect pass on the device, then the
// host-side jitter, tone emission, and demon sort.
func (g *Game) stepSystemBatched(sys *spinnerSystem, dt float64) error {
	sys.root.advanceGeometry(dt)
	g.batch.reset()
	g.batch.gather(sys.root)
	if err := g.gpu.Integrate(g.batch, dt); err != nil {
		return err
	}
	g.batch.scatter()
	sys.root.finishTick(sys.rng, g.tones)
	return nil
}

// totalParticles sums the particle counts across every system. Recomputed on
// demand for the overlay.
func (g *Game) totalParticles() int {
	var count int
	for _, sys := range g.systems {
		count += sys.root.totalParticles()
	}
	return count
}

// totalEnergy sums kinetic energy across every system.
func (g *Game) totalEnergy() float64 {
	var energy float64
	for _, sys := range g.systems {
		energy += sys.root.totalEnergy()
	}
	return energy
}
