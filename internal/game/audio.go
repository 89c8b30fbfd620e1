package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const audioSampleRate = 44100

// AudioCues plays short synthesized tones for simulation events. Everything
// is generated at startup; there are no sound assets on disk.
type AudioCues struct {
	ctx *audio.Context

	howl     []byte // night transformation: long falling tone
	hurt     []byte // heart lost: harsh low buzz
	heal     []byte // heart gained: quick rising chirp
	pushback []byte // obstacle knockback: dull thud
	rip      []byte // villager despawn: short descending blip
}

// NewAudioCues builds the cue set on the given context, or creates one.
func NewAudioCues(ctx *audio.Context) *AudioCues {
	if ctx == nil {
		ctx = audio.NewContext(audioSampleRate)
	}
	return &AudioCues{
		ctx:      ctx,
		howl:     sweepTone(520, 180, 0.9, 0.35),
		hurt:     sweepTone(140, 110, 0.18, 0.5),
		heal:     sweepTone(440, 880, 0.15, 0.35),
		pushback: sweepTone(120, 80, 0.12, 0.45),
		rip:      sweepTone(660, 220, 0.22, 0.4),
	}
}

func (a *AudioCues) play(pcm []byte) {
	if a == nil || a.ctx == nil {
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.Play()
}

func (a *AudioCues) Howl()     { a.play(a.howl) }
func (a *AudioCues) Hurt()     { a.play(a.hurt) }
func (a *AudioCues) Heal()     { a.play(a.heal) }
func (a *AudioCues) Pushback() { a.play(a.pushback) }
func (a *AudioCues) Rip()      { a.play(a.rip) }

// OnEvents maps simulation events to cues.
func (a *AudioCues) OnEvents(events []Event) {
	for _, e := range events {
		switch e.Kind {
		case EventNightBegin:
			a.Howl()
		case EventPlayerHit:
			a.Hurt()
		case EventPlayerBump:
			a.Pushback()
		case EventCatch:
			a.Rip()
		case EventDespawn:
			a.Heal()
		}
	}
}

// sweepTone renders a sine sweep from startHz to endHz over dur seconds as
// 16-bit LE stereo PCM with a linear fade-out.
func sweepTone(startHz, endHz, dur, vol float64) []byte {
	n := int(dur * audioSampleRate)
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := startHz + (endHz-startHz)*t
		phase += 2 * math.Pi * freq / audioSampleRate
		env := vol * (1 - t)
		s := int16(math.Sin(phase) * env * math.MaxInt16)
		out[i*4] = byte(s)
		out[i*4+1] = byte(s >> 8)
		out[i*4+2] = byte(s)
		out[i*4+3] = byte(s >> 8)
	}
	return out
}
