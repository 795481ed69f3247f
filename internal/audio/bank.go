package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// resampleQuality is passed to beep.Resample for WAV files recorded at a
// different rate than the speaker.
const resampleQuality = 4

// Bank holds every cue fully decoded in memory so that playback never
// touches the disk.
type Bank struct {
	format  beep.Format
	buffers [cueCount]*beep.Buffer
}

func newBank(sr beep.SampleRate) *Bank {
	return &Bank{format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}}
}

// NewSynthBank renders the built-in cues at sample rate sr.
func NewSynthBank(sr beep.SampleRate) *Bank {
	b := newBank(sr)
	for _, c := range Cues() {
		buf := beep.NewBuffer(b.format)
		buf.Append(Synthesize(c, sr))
		b.buffers[c] = buf
	}
	return b
}

// LoadBank decodes one WAV file per cue from dir (see Cue.FileName),
// resampling to sr where needed. A missing or unreadable file is an error;
// the game cannot start without its sounds.
func LoadBank(dir string, sr beep.SampleRate) (*Bank, error) {
	b := newBank(sr)
	for _, c := range Cues() {
		path := filepath.Join(dir, c.FileName())
		buf, err := b.decodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s cue: %w", c, err)
		}
		b.buffers[c] = buf
	}
	return b, nil
}

func (b *Bank) decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != b.format.SampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, b.format.SampleRate, streamer)
	}
	buf := beep.NewBuffer(b.format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// SampleRate is the rate every buffer in the bank is stored at.
func (b *Bank) SampleRate() beep.SampleRate {
	return b.format.SampleRate
}

// Len returns the length of cue c in samples.
func (b *Bank) Len(c Cue) int {
	if c < 0 || c >= cueCount || b.buffers[c] == nil {
		return 0
	}
	return b.buffers[c].Len()
}

// Streamer returns a fresh stream over cue c from the start.
func (b *Bank) Streamer(c Cue) beep.StreamSeeker {
	buf := b.buffers[c]
	return buf.Streamer(0, buf.Len())
}
