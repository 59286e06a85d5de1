package main

import "math"

// toneParams maps a particle's kinetic energy onto a frequency/volume pair for
// the lobe's base pitch. Pure function; playback is the sink's concern.
func toneParams(energy, baseFreq float64) (freq, vol float64) {
	freq = baseFreq + energy*energyFreqScale
	vol = math.Min(1.0, energy*energyVolumeScale)
	return freq, vol
}

// synthesizeTone renders a short stereo sine burst as interleaved little-endian
// 16-bit PCM. pan in [0,1] splits the signal into (1-pan) left and pan right
// amplitude, scaled by vol.
func synthesizeTone(freq, vol, pan, durationSec float64, sampleRate int) []byte {
	n := int(float64(sampleRate) * durationSec)
	pcm := make([]byte, n*audioFrameBytes)
	phaseInc := 2 * math.Pi * freq / float64(sampleRate)
	leftGain := (1 - pan) * vol
	rightGain := pan * vol
	for i := 0; i < n; i++ {
		s := math.Sin(phaseInc * float64(i))
		left := int16(s * leftGain * pcm16MaxValue)
		right := int16(s * rightGain * pcm16MaxValue)
		base := i * audioFrameBytes
		pcm[base] = byte(left)
		pcm[base+1] = byte(left >> 8)
		pcm[base+2] = byte(right)
		pcm[base+3] = byte(right >> 8)
	}
	return pcm
}
