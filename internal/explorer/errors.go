package explorer

import "errors"

var (
	// ErrKeyRead indicates the key source failed; the session cannot continue.
	ErrKeyRead = errors.New("explorer: key read failed")

	// ErrRender indicates a frame could not be written to the screen.
	ErrRender = errors.New("explorer: frame write failed")
)
