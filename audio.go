package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// tonePlayer turns tone requests into fire-and-forget Ebiten audio players.
// Playback never blocks the simulation: a request past the voice cap is
// dropped silently. Safe for concurrent use by the system workers.
type tonePlayer struct {
	ctx       *audio.Context
	maxVoices int

	mu     sync.Mutex
	active []*audio.Player
}

// newTonePlayer creates the audio context and sink. maxVoices of 0 means no
// cap: one voice per particle update, however many that is.
func newTonePlayer(sampleRate, maxVoices int) *tonePlayer {
	return &tonePlayer{
		ctx:       audio.NewContext(sampleRate),
		maxVoices: maxVoices,
	}
}

// play synthesizes a tone and starts playback immediately. Implements
// toneSink.
func (tp *tonePlayer) play(frequency, volume, pan float64) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.prune()
	if tp.maxVoices > 0 && len(tp.active) >= tp.maxVoices {
		return
	}
	pcm := synthesizeTone(frequency, volume, pan, toneDuration, audioSampleRate)
	player := tp.ctx.NewPlayerFromBytes(pcm)
	player.Play()
	tp.active = append(tp.active, player)
}

// prune drops references to voices that finished playing. Callers must hold
// mu.
func (tp *tonePlayer) prune() {
	kept := tp.active[:0]
	for _, p := range tp.active {
		if p.IsPlaying() {
			kept = append(kept, p)
		}
	}
	tp.active = kept
}

// voiceCount reports the number of live voices, for the debug overlay.
func (tp *tonePlayer) voiceCount() int {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.prune()
	return len(tp.active)
}
