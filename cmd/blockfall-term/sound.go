package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/field"
)

const sampleRate = beep.SampleRate(44100)

// soundCues plays short tones for field events.
type soundCues struct{}

func newSoundCues() (*soundCues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &soundCues{}, nil
}

func (s *soundCues) Close() {
	speaker.Close()
}

// Handle is registered with Field.OnEvent.
func (s *soundCues) Handle(ev field.Event) {
	notes := cueFor(ev)
	if len(notes) == 0 {
		return
	}

	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return
		}
		streamers = append(streamers, beep.Take(sampleRate.N(n.duration), tone))
	}
	speaker.Play(beep.Seq(streamers...))
}

type note struct {
	freq     float64
	duration time.Duration
}

// cueFor maps an event to the notes played for it, in order.
func cueFor(ev field.Event) []note {
	switch ev.Kind {
	case field.EventLocked:
		return []note{{220, 30 * time.Millisecond}}
	case field.EventScoreChanged:
		notes := make([]note, 0, ev.Rows)
		for i := range ev.Rows {
			notes = append(notes, note{660 + float64(i)*110, 60 * time.Millisecond})
		}
		return notes
	case field.EventLevelUp:
		return []note{{880, 80 * time.Millisecond}, {1320, 120 * time.Millisecond}}
	case field.EventGameOver:
		return []note{{330, 150 * time.Millisecond}, {220, 150 * time.Millisecond}, {110, 300 * time.Millisecond}}
	}
	return nil
}
