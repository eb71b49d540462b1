package boolflow

import "github.com/on-the-ground/tryflow/flow"

// Cond is a boolean condition whose Break payload has type T.
type Cond[T any] bool

// Bool is a condition whose Break carries no value.
type Bool = Cond[flow.Unit]

// Bool returns c as a plain bool.
func (c Cond[T]) Bool() bool {
	return bool(c)
}

// Break returns Break(Unit{}) if c is true, Continue otherwise.
func (c Cond[T]) Break() flow.ControlFlow[flow.Unit] {
	return flow.BreakIf(bool(c))
}

// BreakWith returns Break(v) if c is true, Continue otherwise.
func (c Cond[T]) BreakWith(v T) flow.ControlFlow[T] {
	return flow.BreakIfWith(bool(c), v)
}

// BreakLazy returns Break(f()) if c is true, Continue otherwise.
func (c Cond[T]) BreakLazy(f func() T) flow.ControlFlow[T] {
	return flow.BreakIfLazy(bool(c), f)
}

// Continue returns Continue if c is true, Break(Unit{}) otherwise.
func (c Cond[T]) Continue() flow.ControlFlow[flow.Unit] {
	return flow.ContinueIf(bool(c))
}

// ContinueOr returns Continue if c is true, Break(v) otherwise.
func (c Cond[T]) ContinueOr(v T) flow.ControlFlow[T] {
	return flow.ContinueIfOr(bool(c), v)
}

// ContinueOrElse returns Continue if c is true, Break(f()) otherwise.
func (c Cond[T]) ContinueOrElse(f func() T) flow.ControlFlow[T] {
	return flow.ContinueIfOrElse(bool(c), f)
}
