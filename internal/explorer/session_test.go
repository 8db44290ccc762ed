package explorer_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelterm/internal/explorer"
	"github.com/san-kum/mandelterm/internal/mandel"
)

// scriptedKeys replays a fixed key sequence, then returns err (io.EOF by default).
type scriptedKeys struct {
	keys  []rune
	reads int
	err   error
}

func (k *scriptedKeys) ReadKey() (rune, error) {
	if k.reads >= len(k.keys) {
		k.reads++
		if k.err != nil {
			return 0, k.err
		}
		return 0, io.EOF
	}
	r := k.keys[k.reads]
	k.reads++
	return r, nil
}

type recordingScreen struct {
	bytes.Buffer
	clears   int
	clearErr error
}

func (s *recordingScreen) Clear() error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.clears++
	s.WriteString("<clear>")
	return nil
}

func defaults() mandel.Params {
	return mandel.Params{MaxIterations: 1000, XMin: -2, XMax: 1, YMin: -1, YMax: 1, Width: 100, Height: 24, Scale: 1}
}

func small() mandel.Params {
	p := defaults()
	p.Width, p.Height, p.MaxIterations = 10, 4, 50
	return p
}

var _ = Describe("Apply", func() {
	var p mandel.Params

	BeforeEach(func() {
		p = defaults()
	})

	It("pans right on d", func() {
		Expect(explorer.Apply(&p, 'd')).To(Equal(explorer.Continue))
		Expect(p.XMin).To(BeNumerically("~", -1.9, 1e-12))
		Expect(p.XMax).To(BeNumerically("~", 1.1, 1e-12))
		Expect(p.YMin).To(Equal(-1.0))
		Expect(p.YMax).To(Equal(1.0))
	})

	It("pans left on a", func() {
		explorer.Apply(&p, 'a')
		Expect(p.XMin).To(BeNumerically("~", -2.1, 1e-12))
		Expect(p.XMax).To(BeNumerically("~", 0.9, 1e-12))
	})

	It("pans up on w and down on s", func() {
		explorer.Apply(&p, 'w')
		Expect(p.YMin).To(BeNumerically("~", -1.1, 1e-12))
		Expect(p.YMax).To(BeNumerically("~", 0.9, 1e-12))

		explorer.Apply(&p, 's')
		explorer.Apply(&p, 's')
		Expect(p.YMin).To(BeNumerically("~", -0.9, 1e-12))
		Expect(p.YMax).To(BeNumerically("~", 1.1, 1e-12))
	})

	It("zooms out on j and in on k", func() {
		explorer.Apply(&p, 'j')
		Expect(p.Scale).To(BeNumerically("~", 1.1, 1e-12))
		explorer.Apply(&p, 'k')
		explorer.Apply(&p, 'k')
		Expect(p.Scale).To(BeNumerically("~", 0.9, 1e-12))
	})

	It("lets scale go negative", func() {
		for i := 0; i < 12; i++ {
			explorer.Apply(&p, 'k')
		}
		Expect(p.Scale).To(BeNumerically("<", 0))
	})

	It("keeps the step fixed regardless of scale", func() {
		p.Scale = 0.05
		explorer.Apply(&p, 'd')
		Expect(p.XMax - p.XMin).To(BeNumerically("~", 3.0, 1e-12))
		Expect(p.XMin).To(BeNumerically("~", -1.9, 1e-12))
	})

	It("returns Quit on q without touching the viewport", func() {
		Expect(explorer.Apply(&p, 'q')).To(Equal(explorer.Quit))
		Expect(p).To(Equal(defaults()))
	})

	DescribeTable("ignores unbound keys",
		func(key rune) {
			Expect(explorer.Apply(&p, key)).To(Equal(explorer.Continue))
			Expect(p).To(Equal(defaults()))
		},
		Entry("uppercase D", 'D'),
		Entry("uppercase Q", 'Q'),
		Entry("space", ' '),
		Entry("digit", '1'),
		Entry("ctrl-c", rune(3)),
		Entry("escape", rune(27)),
	)
})

var _ = Describe("Session", func() {
	var (
		screen *recordingScreen
		ctx    context.Context
	)

	BeforeEach(func() {
		screen = &recordingScreen{}
		ctx = context.Background()
	})

	It("draws one frame and stops on q", func() {
		keys := &scriptedKeys{keys: []rune{'q'}}
		s := explorer.NewSession(defaults(), keys, screen)

		Expect(s.Run(ctx)).To(Succeed())
		Expect(s.Frames()).To(Equal(1))
		Expect(screen.clears).To(Equal(1))
		Expect(keys.reads).To(Equal(1))
	})

	It("clears before every frame and renders the full raster", func() {
		keys := &scriptedKeys{keys: []rune{'x', 'q'}}
		s := explorer.NewSession(defaults(), keys, screen)

		Expect(s.Run(ctx)).To(Succeed())
		frames := strings.Split(screen.String(), "<clear>")
		Expect(frames).To(HaveLen(3))
		Expect(frames[0]).To(BeEmpty())
		for _, frame := range frames[1:] {
			lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
			Expect(lines).To(HaveLen(24))
			for _, l := range lines {
				Expect([]rune(l)).To(HaveLen(100))
			}
		}
		Expect(frames[1]).To(Equal(frames[2]))
	})

	It("applies navigation between frames", func() {
		keys := &scriptedKeys{keys: []rune{'d', 'd', 'w', 'j', 'q'}}
		s := explorer.NewSession(small(), keys, screen)

		Expect(s.Run(ctx)).To(Succeed())
		Expect(s.Frames()).To(Equal(5))

		p := s.Params()
		Expect(p.XMin).To(BeNumerically("~", -1.8, 1e-12))
		Expect(p.XMax).To(BeNumerically("~", 1.2, 1e-12))
		Expect(p.YMin).To(BeNumerically("~", -1.1, 1e-12))
		Expect(p.Scale).To(BeNumerically("~", 1.1, 1e-12))
	})

	It("does not read further keys after q", func() {
		keys := &scriptedKeys{keys: []rune{'q', 'd', 'd'}}
		s := explorer.NewSession(small(), keys, screen)

		Expect(s.Run(ctx)).To(Succeed())
		Expect(keys.reads).To(Equal(1))
		Expect(s.Params()).To(Equal(small()))
	})

	It("surfaces key read failures as ErrKeyRead", func() {
		boom := errors.New("tty gone")
		keys := &scriptedKeys{keys: []rune{'d'}, err: boom}
		s := explorer.NewSession(small(), keys, screen)

		err := s.Run(ctx)
		Expect(err).To(MatchError(explorer.ErrKeyRead))
		Expect(err.Error()).To(ContainSubstring("tty gone"))
		Expect(s.Frames()).To(Equal(2))
	})

	It("treats end of input as a key read failure", func() {
		s := explorer.NewSession(small(), &scriptedKeys{}, screen)
		Expect(s.Run(ctx)).To(MatchError(explorer.ErrKeyRead))
	})

	It("reports screen failures as ErrRender", func() {
		screen.clearErr = errors.New("closed")
		keys := &scriptedKeys{keys: []rune{'q'}}
		s := explorer.NewSession(small(), keys, screen)

		Expect(s.Run(ctx)).To(MatchError(explorer.ErrRender))
		Expect(keys.reads).To(BeZero())
	})

	It("stops before drawing when the context is cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		keys := &scriptedKeys{keys: []rune{'q'}}
		s := explorer.NewSession(small(), keys, screen)

		Expect(s.Run(cctx)).To(MatchError(context.Canceled))
		Expect(s.Frames()).To(BeZero())
	})
})
