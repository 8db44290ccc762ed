package mandel

// Field holds one escape count per raster cell, indexed [row][col].
type Field [][]int

func (f Field) Rows() int { return len(f) }

func (f Field) Cols() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Compute evaluates the escape-time test for every cell of the raster
// described by p. A fresh Field is allocated on every call.
func Compute(p Params) Field {
	if p.Width <= 0 || p.Height <= 0 {
		return Field{}
	}
	rows := make(Field, p.Height)
	for imgY := 0; imgY < p.Height; imgY++ {
		row := make([]int, p.Width)
		for imgX := 0; imgX < p.Width; imgX++ {
			cx, cy := p.Point(imgX, imgY)
			row[imgX] = EscapeTime(cx, cy, p.MaxIterations)
		}
		rows[imgY] = row
	}
	return rows
}
