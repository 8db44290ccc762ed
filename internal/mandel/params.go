package mandel

// Params describes the visible region of the complex plane and how it is sampled.
type Params struct {
	MaxIterations int
	XMin, XMax    float64
	YMin, YMax    float64
	Width, Height int
	Scale         float64
}

// Point maps the raster cell (imgX, imgY) onto the complex plane.
//
// Scale multiplies the fractional pixel position before it is stretched over
// the viewport, so values above 1 sample past XMax/YMax and values below 1
// shrink towards (XMin, YMin).
func (p Params) Point(imgX, imgY int) (cx, cy float64) {
	xFrac := (float64(imgX) / float64(p.Width)) * p.Scale
	yFrac := (float64(imgY) / float64(p.Height)) * p.Scale
	cx = p.XMin + (p.XMax-p.XMin)*xFrac
	cy = p.YMin + (p.YMax-p.YMin)*yFrac
	return cx, cy
}

// Pan shifts both bounds of each axis by the given offsets.
func (p *Params) Pan(dx, dy float64) {
	p.XMin += dx
	p.XMax += dx
	p.YMin += dy
	p.YMax += dy
}

// Zoom adds d to the scale. The result is not clamped.
func (p *Params) Zoom(d float64) {
	p.Scale += d
}
