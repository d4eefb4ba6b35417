package anim

// Func maps normalized animation time t in [0,1] to eased progress in [0,1].
type Func func(t float64) float64

func Linear(t float64) float64 {
	return t
}

func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
