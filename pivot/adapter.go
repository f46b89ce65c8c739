package pivot

// Diff returns the forward-difference derivative of f with step h:
// (f(t+h) - f(t)) / h. The truncation error is O(h) and one-sided, so the
// result is biased towards the upwind side of t. Smaller steps reduce the
// bias but amplify floating-point cancellation.
func Diff(f Func, h float64) Func {
	return func(t float64) float64 {
		return (f(t+h) - f(t)) / h
	}
}

// Diff2 returns the second derivative of f as two nested forward
// differences. The O(h) bias of Diff compounds; this is the documented
// accuracy limit of position-mode pivots, not a defect.
func Diff2(f Func, h float64) Func {
	return Diff(Diff(f, h), h)
}

// Accelerations converts a pair of pivot motions into acceleration
// functions. When isAcceleration is true the motions already describe
// accelerations and are returned as plain functions; otherwise they describe
// positions and are differentiated twice with step h.
//
// It fails with ErrInvalidStepSize when h <= 0. Construction is pure: no
// state is shared between the returned functions.
func Accelerations(x, y Motion, isAcceleration bool, h float64) (ax, ay Func, err error) {
	if h <= 0 {
		return nil, nil, ErrInvalidStepSize
	}

	if isAcceleration {
		return x.AsFunc(), y.AsFunc(), nil
	}

	return Diff2(x.AsFunc(), h), Diff2(y.AsFunc(), h), nil
}
