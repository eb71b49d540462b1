package flow

import "iter"

// Map applies f to the Break payload. Continue passes through untouched.
func Map[B, C any](cf ControlFlow[B], f func(B) C) ControlFlow[C] {
	if cf.isBreak {
		return Break(f(cf.value))
	}
	return Continue[C]()
}

// AndThen evaluates next only if cf is Continue.
func AndThen[B any](cf ControlFlow[B], next func() ControlFlow[B]) ControlFlow[B] {
	if cf.isBreak {
		return cf
	}
	return next()
}

// ForEach calls f for each element of seq until f returns Break.
// It returns that Break, or Continue when seq is exhausted.
func ForEach[T, B any](seq iter.Seq[T], f func(T) ControlFlow[B]) ControlFlow[B] {
	for v := range seq {
		if cf := f(v); cf.isBreak {
			return cf
		}
	}
	return Continue[B]()
}

// ForEach2 is ForEach over a key/value sequence.
func ForEach2[K, V, B any](seq iter.Seq2[K, V], f func(K, V) ControlFlow[B]) ControlFlow[B] {
	for k, v := range seq {
		if cf := f(k, v); cf.isBreak {
			return cf
		}
	}
	return Continue[B]()
}
