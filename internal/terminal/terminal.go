// Package terminal provides the single-key input source and the screen the
// explorer draws on.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ClearScreen erases the visible screen and homes the cursor to row 1, column 1.
const ClearScreen = "\x1b[2J\x1b[1;1H"

var ErrNoInput = errors.New("terminal: input closed")

// Keys reads one byte per key. When the input is a TTY, raw mode is held only
// for the duration of each read so rendered output keeps normal line handling.
type Keys struct {
	in  io.Reader
	fd  int
	tty bool
	buf [1]byte
}

// NewKeys wraps f; TTY detection decides whether raw mode is used.
func NewKeys(f *os.File) *Keys {
	fd := f.Fd()
	return &Keys{
		in:  f,
		fd:  int(fd),
		tty: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// newReaderKeys reads keys from a plain stream with no terminal handling.
func newReaderKeys(r io.Reader) *Keys {
	return &Keys{in: r, fd: -1}
}

func (k *Keys) IsTerminal() bool { return k.tty }

// ReadKey blocks until one byte is available.
func (k *Keys) ReadKey() (rune, error) {
	if k.tty {
		old, err := term.MakeRaw(k.fd)
		if err != nil {
			return 0, fmt.Errorf("terminal: enter raw mode: %w", err)
		}
		defer term.Restore(k.fd, old)
	}

	n, err := io.ReadFull(k.in, k.buf[:])
	if n == 1 {
		return rune(k.buf[0]), nil
	}
	if errors.Is(err, io.EOF) {
		return 0, ErrNoInput
	}
	return 0, err
}

// Screen writes frames to an output stream.
type Screen struct {
	w io.Writer
}

func NewScreen(w io.Writer) *Screen {
	return &Screen{w: w}
}

func (s *Screen) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *Screen) Clear() error {
	_, err := io.WriteString(s.w, ClearScreen)
	return err
}
