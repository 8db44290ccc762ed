// Package mandel computes escape-time fields for a rectangular viewport of the
// complex plane.
//
//   - [Params]: the viewport, raster size, iteration budget and zoom scale
//   - [EscapeTime]: the per-point escape-time test
//   - [Compute]: maps every raster cell onto the plane and builds a [Field]
//
// # Example
//
//	p := config.DefaultParams()
//	field := mandel.Compute(p)
//	_ = render.Render(os.Stdout, field)
//
// Compute receives Params by value, so a frame always sees a consistent
// snapshot even while the caller keeps mutating its own copy.
package mandel
