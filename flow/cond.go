package flow

// BreakIf returns Break(Unit{}) if cond is true, Continue otherwise.
func BreakIf(cond bool) ControlFlow[Unit] {
	if cond {
		return Break(Unit{})
	}
	return Continue[Unit]()
}

// BreakIfWith returns Break(v) if cond is true, Continue otherwise.
func BreakIfWith[B any](cond bool, v B) ControlFlow[B] {
	if cond {
		return Break(v)
	}
	return Continue[B]()
}

// BreakIfLazy returns Break(f()) if cond is true, Continue otherwise.
// f is only called when cond is true.
func BreakIfLazy[B any](cond bool, f func() B) ControlFlow[B] {
	if cond {
		return Break(f())
	}
	return Continue[B]()
}

// ContinueIf returns Continue if cond is true, Break(Unit{}) otherwise.
func ContinueIf(cond bool) ControlFlow[Unit] {
	if cond {
		return Continue[Unit]()
	}
	return Break(Unit{})
}

// ContinueIfOr returns Continue if cond is true, Break(v) otherwise.
func ContinueIfOr[B any](cond bool, v B) ControlFlow[B] {
	if cond {
		return Continue[B]()
	}
	return Break(v)
}

// ContinueIfOrElse returns Continue if cond is true, Break(f()) otherwise.
// f is only called when cond is false.
func ContinueIfOrElse[B any](cond bool, f func() B) ControlFlow[B] {
	if cond {
		return Continue[B]()
	}
	return Break(f())
}
