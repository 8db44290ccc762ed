package mandel

// escapeRadiusSq is |z| > 2 expressed on the squared norm.
const escapeRadiusSq = 4.0

// EscapeTime returns the first iteration at which the orbit of c = cx + cy*i
// leaves the disc of radius 2, or maxIter if it never does.
//
// Iterations 0 through maxIter inclusive are checked, so a point escaping at
// exactly step maxIter is indistinguishable from a bounded one.
func EscapeTime(cx, cy float64, maxIter int) int {
	var zr, zi float64
	for i := 0; i <= maxIter; i++ {
		if zr*zr+zi*zi > escapeRadiusSq {
			return i
		}
		zr, zi = zr*zr-zi*zi+cx, 2*zr*zi+cy
	}
	return maxIter
}
