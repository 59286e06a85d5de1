package main

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// spinnerSystem pairs an independent top-level spinner tree with its own
// random source, so systems never share mutable state and can be stepped in
// parallel.
type spinnerSystem struct {
	root *spinnerNode
	rng  *rand.Rand
}

// Game owns the spinner systems, the audio sink, and the frame timing state.
type Game struct {
	systems []*spinnerSystem

	tones  toneSink    // nil when audio is disabled
	player *tonePlayer // concrete sink, for the voice counter

	gpu   *openCLIntegrator
	batch *particleBatch

	lastTick        time.Time
	timeScale       float64
	paused          bool
	lastSimDuration time.Duration

	workerMu       sync.Mutex
	workerCond     *sync.Cond
	workerStep     int
	workerPending  int
	workersStarted bool
	stepDT         float64

	pgoStop     func()
	pgoDeadline time.Time
}

// newGame constructs the spinner systems and audio pipeline from the parsed
// flags. Backend initialization failures are returned to the caller and are
// fatal.
func newGame() (*Game, error) {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Simulation seed: %d", seed)

	g := &Game{timeScale: 1}
	cx := float64(*windowWFlag) / 2
	cy := float64(*windowHFlag) / 2
	for i := 0; i < *systemsFlag; i++ {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		root := newSpinnerNode(0, cx, cy, *armLengthFlag, *lobeRadiusFlag,
			*maxDepthFlag, *particlesFlag, rng)
		g.systems = append(g.systems, &spinnerSystem{root: root, rng: rng})
	}

	if *enableAudioFlag {
		g.player = newTonePlayer(audioSampleRate, *maxVoicesFlag)
		g.tones = g.player
	}

	if *useOpenCLFlag {
		integ, err := newOpenCLIntegrator()
		if err != nil {
			return nil, fmt.Errorf("OpenCL initialization failed: %w", err)
		}
		log.Printf("OpenCL integrator enabled (device: %s)", integ.DeviceName())
		g.gpu = integ
		g.batch = &particleBatch{}
	} else {
		g.startWorkers()
	}

	return g, nil
}

// Update advances every spinner system by the elapsed wall-clock time and
// handles the quit and debug inputs.
func (g *Game) Update() error {
	if quitRequested() {
		if g.pgoStop != nil {
			g.pgoStop()
		}
		return ebiten.Termination
	}
	if g.pgoStop != nil && time.Now().After(g.pgoDeadline) {
		g.pgoStop()
		return ebiten.Termination
	}

	g.handleDebugControls()

	dt := g.tickDelta()
	if g.paused || dt <= 0 {
		return nil
	}

	simStart := time.Now()
	if err := g.stepSystems(dt); err != nil {
		return err
	}
	g.lastSimDuration = time.Since(simStart)
	return nil
}

// tickDelta returns the elapsed milliseconds since the previous tick, scaled
// by the debug time-scale multiplier. The first tick falls back to the
// nominal frame duration. The millisecond unit is deliberate: dt values
// around 16 at 60 TPS drive the motion's feel, so converting to seconds would
// change the simulation's character.
func (g *Game) tickDelta() float64 {
	now := time.Now()
	if g.lastTick.IsZero() {
		g.lastTick = now
		return 1000.0 / float64(*tpsFlag) * g.timeScale
	}
	dt := now.Sub(g.lastTick).Seconds() * 1000
	g.lastTick = now
	return dt * g.timeScale
}
