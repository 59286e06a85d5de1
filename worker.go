package main

import "sync"

// One persistent goroutine steps each spinner system. The systems share no
// state, so a frame is a single broadcast followed by a barrier wait; the
// aggregate totals read afterwards are plain sums and order-independent.

// startWorkers launches the background goroutines that execute system updates.
func (g *Game) startWorkers() {
	if g.workersStarted {
		return
	}
	if g.workerCond == nil {
		g.workerCond = sync.NewCond(&g.workerMu)
	}
	g.workersStarted = true
	for i := range g.systems {
		go g.systemWorkerLoop(i)
	}
}

// systemWorkerLoop waits for a step broadcast, updates its system, and signals
// completion.
func (g *Game) systemWorkerLoop(index int) {
	lastStep := 0
	g.workerMu.Lock()
	for {
		for g.workerStep == lastStep {
			g.workerCond.Wait()
		}
		lastStep = g.workerStep
		dt := g.stepDT
		g.workerMu.Unlock()

		sys := g.systems[index]
		sys.root.update(dt, sys.rng, g.tones)

		g.workerMu.Lock()
		g.workerPending--
		if g.workerPending == 0 {
			g.workerCond.Broadcast()
		}
	}
}

// stepWorkers dispatches one tick to the worker goroutines and blocks until
// every system has been updated.
func (g *Game) stepWorkers(dt float64) {
	g.workerMu.Lock()
	g.stepDT = dt
	g.workerPending = len(g.systems)
	g.workerStep++
	g.workerCond.Broadcast()
	for g.workerPending > 0 {
		g.workerCond.Wait()
	}
	g.workerMu.Unlock()
}
