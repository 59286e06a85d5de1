package main

import (
	"image/color"
	"time"
)

// Simulation, rendering, and audio configuration constants used throughout the
// application. These values define the spinner geometry, timing, and tone
// synthesis behavior for the nested spinner simulation.
const (
	defaultWindowW          = 1200
	defaultWindowH          = 800
	defaultTPS              = 60
	defaultSystems          = 3
	defaultLobeRadius       = 110.0
	defaultArmLength        = 170.0
	defaultParticlesPerLobe = 6
	defaultMaxDepth         = 2
	lobeCount               = 3
	childrenPerLobe         = 3
	childShrinkFactor       = 0.4
	spinDepthFactor         = 0.3
	demonEnergyThreshold    = 0.05
	velocityJitter          = 0.01
	minParticleRadius       = 2.0
	particleRadiusSpread    = 2.0
	maxInitialSpeed         = 0.3
	reflectEpsilon          = 1e-9
	energyFreqScale         = 300.0
	energyVolumeScale       = 8.0
	toneDuration            = 0.05
	audioSampleRate         = 44100
	audioChannels           = 2
	audioBytesPerSample     = 2
	audioFrameBytes         = audioChannels * audioBytesPerSample
	pcm16MaxValue           = 32767
	minTimeScale            = 0.25
	maxTimeScale            = 4.0
	timeScaleStep           = 0.25
	armLineWidth            = 2
	panelX, panelY          = 10, 10
	panelW, panelH          = 280, 60
	pgoRecordDuration       = 15 * time.Second
)

// lobeBaseFrequencies carries the per-lobe tone base pitch in Hz.
var lobeBaseFrequencies = [lobeCount]float64{220, 330, 440}

// lobeColors keys particles and lobe outlines by lobe index, consistent
// across every node of every tree.
var lobeColors = [lobeCount]color.RGBA{
	{255, 107, 107, 255},
	{255, 217, 61, 255},
	{107, 227, 107, 255},
}

var (
	bgColor    = color.RGBA{11, 16, 32, 255}
	panelColor = color.RGBA{20, 30, 45, 255}
	armColor   = color.RGBA{200, 200, 200, 255}
)
