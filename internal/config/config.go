package config

import "github.com/san-kum/mandelterm/internal/mandel"

const (
	DefaultMaxIterations = 1000
	DefaultWidth         = 100
	DefaultHeight        = 24
	DefaultXMin          = -2.0
	DefaultXMax          = 1.0
	DefaultYMin          = -1.0
	DefaultYMax          = 1.0
	DefaultScale         = 1.0
)

// DefaultParams is the view every session starts from.
func DefaultParams() mandel.Params {
	return mandel.Params{
		MaxIterations: DefaultMaxIterations,
		XMin:          DefaultXMin,
		XMax:          DefaultXMax,
		YMin:          DefaultYMin,
		YMax:          DefaultYMax,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Scale:         DefaultScale,
	}
}
