package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays cues from a Bank through the system speaker. All cues share
// one mixer; requests never block the game loop.
type Player struct {
	bank   *Bank
	volume float64
	mixer  *beep.Mixer

	// Guarded by the speaker lock. The done callback runs on the speaker
	// goroutine while it holds that lock.
	waiting *beep.Ctrl
}

// NewPlayer opens the speaker at the bank's sample rate. volume is linear
// in [0,1].
func NewPlayer(bank *Bank, volume float64) (*Player, error) {
	sr := bank.SampleRate()
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("open speaker: %w", err)
	}
	p := &Player{
		bank:   bank,
		volume: clampVolume(volume),
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts cue c now. The waiting cue is not restarted while it is still
// sounding, so it can be requested every tick.
func (p *Player) Play(c Cue) {
	if c < 0 || c >= cueCount {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if c == CueWaiting {
		if p.waiting != nil {
			return
		}
		ctrl := &beep.Ctrl{Streamer: p.voice(c)}
		p.waiting = ctrl
		p.mixer.Add(beep.Seq(ctrl, beep.Callback(func() {
			if p.waiting == ctrl {
				p.waiting = nil
			}
		})))
		return
	}
	p.mixer.Add(p.voice(c))
}

// Stop silences the waiting cue. Other cues are short and run to the end.
func (p *Player) Stop(c Cue) {
	if c != CueWaiting {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if p.waiting != nil {
		p.waiting.Streamer = nil
		p.waiting = nil
	}
}

// Close stops all sound and releases the audio device.
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
}

func (p *Player) voice(c Cue) beep.Streamer {
	return newVolume(p.bank.Streamer(c), p.volume)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
