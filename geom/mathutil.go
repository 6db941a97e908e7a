package geom

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AbsDiff returns |x-y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	if x < y {
		return y - x
	}
	return x - y
}

// Sign returns -1, 0 or +1 according to the sign of x.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
