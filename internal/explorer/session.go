// Package explorer drives the interactive pan/zoom loop.
package explorer

import (
	"context"
	"fmt"
	"io"

	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/render"
)

// KeySource blocks until one key is available.
type KeySource interface {
	ReadKey() (rune, error)
}

// Screen is the display surface. Clear is called once before every frame.
type Screen interface {
	io.Writer
	Clear() error
}

// Session owns the mutable viewport for the lifetime of the loop.
type Session struct {
	params mandel.Params
	keys   KeySource
	screen Screen
	frames int
}

func NewSession(p mandel.Params, keys KeySource, screen Screen) *Session {
	return &Session{params: p, keys: keys, screen: screen}
}

// Params returns a copy of the current viewport.
func (s *Session) Params() mandel.Params { return s.params }

// Frames reports how many frames have been drawn.
func (s *Session) Frames() int { return s.frames }

// Run draws a frame, waits for a key and applies it, until 'q' is read.
// The context is checked between frames only; a pending key read cannot be
// interrupted.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.draw(); err != nil {
			return err
		}

		key, err := s.keys.ReadKey()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrKeyRead, err)
		}
		if Apply(&s.params, key) == Quit {
			return nil
		}
	}
}

func (s *Session) draw() error {
	if err := s.screen.Clear(); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	// Compute takes a value copy, so the field never aliases s.params.
	field := mandel.Compute(s.params)
	if err := render.Render(s.screen, field); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	s.frames++
	return nil
}
