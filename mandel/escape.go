package mandel

// Result is the escape-time outcome for one plane point.
//
// Iterations is in [0, maxIters]. Diverged reports whether the iterate left
// the radius-2 disc; when false the point is taken to belong to the set at
// the given iteration budget and Iterations equals that budget.
type Result struct {
	Iterations uint32
	Diverged   bool
}

// Escape iterates z = z*z + c for c = (re, im), starting from the first
// iterate z1 = c, and stops as soon as the squared magnitude of z reaches 4
// (that is, |z| >= 2) or the budget runs out. The squared-magnitude test
// avoids a square root in the hot loop and is the exact test golden-image
// comparisons rely on: a point such as c = 2, sitting on the escape radius,
// diverges at iteration 0.
func Escape(re, im float64, maxIters uint32) Result {
	zre, zim := re, im
	var n uint32
	for ; n < maxIters && zre*zre+zim*zim < 4; n++ {
		// z = z^2 + c
		zre, zim = zre*zre-zim*zim+re, 2*zre*zim+im
	}
	return Result{Iterations: n, Diverged: zre*zre+zim*zim >= 4}
}
