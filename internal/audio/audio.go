// Package audio plays one-shot game sounds.
package audio

import (
	"io"
	"sync"
)

// SoundID identifies a one-shot sound effect.
type SoundID uint8

const (
	SoundNewsItem SoundID = iota
	SoundClick
	SoundError
)

// Player plays a sound once. Pan is a horizontal screen position; volume is
// in hundredths of a decibel, 0 being full volume.
type Player interface {
	Play(id SoundID, volume int32, pan int32)
}

// Silent discards every sound.
type Silent struct{}

func (Silent) Play(SoundID, int32, int32) {}

// Bell rings the terminal bell for the news sound and ignores the rest.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play(id SoundID, _ int32, _ int32) {
	if id != SoundNewsItem {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}
