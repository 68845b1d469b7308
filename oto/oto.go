package oto

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/soitin/soitin"
)

type OtoContext struct {
	context *oto.Context
}

type OtoOutput struct {
	context *oto.Context
}

// NewContext creates and initializes an oto playback context for mono
// 16-bit audio at the engine sample rate, waiting until the audio device
// is ready.
func NewContext() (*OtoContext, error) {
	op := &oto.NewContextOptions{
		SampleRate:   soitin.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	context, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{context: context}, nil
}

func (c *OtoContext) Output() soitin.AudioSink {
	return &OtoOutput{context: c.context}
}

func (c *OtoContext) Close() error {
	// oto v3 contexts cannot be closed; they live until the process exits.
	return nil
}

// PlayTone plays a rendered tone and blocks until playback finishes.
func (o *OtoOutput) PlayTone(tone soitin.Tone) error {
	player := o.context.NewPlayer(bytes.NewReader(ToneTo16BitLE(tone)))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

func (o *OtoOutput) Close() error {
	return nil
}
