package explorer

import "github.com/san-kum/mandelterm/internal/mandel"

// Step is the fixed pan distance in plane units and zoom increment in scale units.
const Step = 0.1

type Action int

const (
	Continue Action = iota
	Quit
)

// Apply dispatches a single keystroke against p. Only lowercase keys are
// bound; anything else leaves p unchanged.
//
//	q quit
//	w/s pan up/down
//	a/d pan left/right
//	j/k zoom out/in
func Apply(p *mandel.Params, key rune) Action {
	switch key {
	case 'q':
		return Quit
	case 'w':
		p.Pan(0, -Step)
	case 's':
		p.Pan(0, Step)
	case 'a':
		p.Pan(-Step, 0)
	case 'd':
		p.Pan(Step, 0)
	case 'j':
		p.Zoom(Step)
	case 'k':
		p.Zoom(-Step)
	}
	return Continue
}
