package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"alien-descent/game"
)

const (
	soundSampleRate = beep.SampleRate(44100)
	soundBlip       = 50 * time.Millisecond
	hitToneHz       = 880
	escapeToneHz    = 220
)

// soundPlayer beeps on kills and escapes. It stays silent when disabled or
// when the audio device cannot be opened.
type soundPlayer struct {
	ready  bool
	logger *log.Logger
}

func newSoundPlayer(enabled bool, logger *log.Logger) *soundPlayer {
	p := &soundPlayer{logger: logger}
	if !enabled {
		return p
	}
	if err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game runs without sound
		logger.Warn("audio init failed", "err", err)
		return p
	}
	p.ready = true
	return p
}

// TickDone plays the tones for what happened in a tick
func (p *soundPlayer) TickDone(res game.TickResult) {
	if res.Kills > 0 {
		p.play(hitToneHz)
	}
	if res.Escaped > 0 {
		p.play(escapeToneHz)
	}
}

func (p *soundPlayer) play(freq float64) {
	if !p.ready {
		return
	}
	sine, err := generators.SineTone(soundSampleRate, freq)
	if err != nil {
		p.logger.Debug("tone", "freq", freq, "err", err)
		return
	}
	speaker.Play(beep.Take(soundSampleRate.N(soundBlip), sine))
}

func (p *soundPlayer) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
