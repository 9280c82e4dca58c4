package mandel

// Classic landmarks in the set, handy starting points for demos, tests and
// benchmarks.
var (
	// Seahorse Valley - dense filaments and repeating seahorse curls.
	SeahorseValley = Viewport{X0: -0.8, X1: -0.7, Y0: 0.05, Y1: 0.15}

	// Elephant Valley - trunk-like tendrils east of the main cardioid.
	ElephantValley = Viewport{X0: 0.25, X1: 0.35, Y0: -0.04, Y1: 0.04}

	// Spiral Minibrot - small Mandelbrot copy with tight spiral arms.
	SpiralMinibrot = Viewport{X0: -0.7435, X1: -0.7420, Y0: 0.1310, Y1: 0.1325}

	// Triple Spiral - threefold symmetric spiral structure.
	TripleSpiral = Viewport{X0: -0.7480, X1: -0.7450, Y0: 0.0950, Y1: 0.0980}
)
