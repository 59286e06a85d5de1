package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()
	validateFlags()

	g, err := newGame()
	if err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording("default.pgo")
		if err != nil {
			log.Fatalf("Starting PGO recording failed: %v", err)
		}
		g.pgoStop = stop
		g.pgoDeadline = time.Now().Add(pgoRecordDuration)
		log.Printf("Recording default.pgo for %s", pgoRecordDuration)
	}

	ebiten.SetWindowSize(*windowWFlag, *windowHFlag)
	ebiten.SetWindowTitle("Nested Spinners - Maxwell's Demon")
	ebiten.SetTPS(*tpsFlag)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Simulation terminated: %v", err)
	}
}

// validateFlags rejects configurations the simulation cannot represent.
func validateFlags() {
	if *windowWFlag < 1 || *windowHFlag < 1 {
		log.Fatalf("Window dimensions must be positive (got %dx%d)", *windowWFlag, *windowHFlag)
	}
	if *tpsFlag < 1 {
		log.Fatalf("TPS must be at least 1 (got %d)", *tpsFlag)
	}
	if *systemsFlag < 1 {
		log.Fatalf("At least one spinner system is required (got %d)", *systemsFlag)
	}
	if *lobeRadiusFlag <= 0 || *armLengthFlag <= 0 {
		log.Fatalf("Lobe radius and arm length must be positive (got %.1f, %.1f)", *lobeRadiusFlag, *armLengthFlag)
	}
	if *particlesFlag < 1 {
		log.Fatalf("At least one particle per lobe is required (got %d)", *particlesFlag)
	}
	if *maxDepthFlag < 0 {
		log.Fatalf("Maximum depth cannot be negative (got %d)", *maxDepthFlag)
	}
	if *maxVoicesFlag < 0 {
		log.Fatalf("Voice cap cannot be negative (got %d)", *maxVoicesFlag)
	}
}
