package strategy

// breakpoint is one (x, y) knot of a piecewise-linear mapping.
type breakpoint struct {
	X, Y float64
}

// interpolate maps x through the breakpoints with linear segments between
// knots, clamped to the first/last y outside the knot range.
func interpolate(x float64, pts []breakpoint) float64 {
	if len(pts) == 0 {
		return 0
	}
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(pts); i++ {
		if x <= pts[i].X {
			lo, hi := pts[i-1], pts[i]
			frac := (x - lo.X) / (hi.X - lo.X)
			return lo.Y + frac*(hi.Y-lo.Y)
		}
	}
	return last.Y
}
