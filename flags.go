package main

import "flag"

// Command-line flags that control simulation layout, rendering, and runtime
// behavior. Every tunable of the simulation is exposed here so runs can be
// reproduced without editing the source.
var (
	// windowWFlag and windowHFlag set the window dimensions in pixels.
	windowWFlag = flag.Int("width", defaultWindowW, "window width in pixels")
	windowHFlag = flag.Int("height", defaultWindowH, "window height in pixels")

	// tpsFlag sets the nominal simulation ticks per second.
	tpsFlag = flag.Int("tps", defaultTPS, "simulation ticks per second")

	// systemsFlag selects how many independent top-level spinner trees run.
	systemsFlag = flag.Int("systems", defaultSystems, "number of independent spinner trees")

	// lobeRadiusFlag and armLengthFlag size the root-level spinner geometry.
	lobeRadiusFlag = flag.Float64("lobe-radius", defaultLobeRadius, "root lobe radius in pixels")
	armLengthFlag  = flag.Float64("arm-length", defaultArmLength, "root arm length in pixels")

	// particlesFlag sets the fixed particle count per lobe.
	particlesFlag = flag.Int("particles", defaultParticlesPerLobe, "particles per lobe")

	// maxDepthFlag bounds the spinner recursion; each level below it adds nine
	// children per node.
	maxDepthFlag = flag.Int("max-depth", defaultMaxDepth, "maximum spinner nesting depth")

	// seedFlag fixes the random sources for reproducible runs; 0 derives a
	// seed from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed (0 = time-based)")

	// enableAudioFlag toggles per-particle tone synthesis.
	enableAudioFlag = flag.Bool("enable-audio", true, "synthesize a tone for every particle update")

	// maxVoicesFlag caps concurrently playing tones; excess requests are
	// silently dropped.
	maxVoicesFlag = flag.Int("max-voices", 0, "maximum simultaneous tone voices (0 = unlimited)")

	// debugFlag enables the FPS overlay and the time-scale hotkeys.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation timing overlay")

	// useOpenCLFlag routes particle integration through the OpenCL solver.
	useOpenCLFlag = flag.Bool("use-opencl", false, "integrate particles on an OpenCL device (requires -tags opencl)")

	// recordDefaultPGO captures a CPU profile to default.pgo for a fixed duration.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "run for 15s while capturing default.pgo")
)
