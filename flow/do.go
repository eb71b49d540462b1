package flow

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/on-the-ground/tryflow/internal/helper"
)

// ErrTryOutsideScope is raised when a Try is called after its Do returned.
var ErrTryOutsideScope = errors.New("try used outside of its Do scope")

// Try propagates a flow inside a Do body.
// On Continue it returns; on Break it leaves the body and the enclosing Do
// returns that Break.
//
// A Try must be called on the goroutine running the Do body. A Break raised on
// any other goroutine is not recovered by Do and crashes the program.
type Try[B any] func(ControlFlow[B])

// Check is shorthand for try(BreakIfWith(cond, v)).
func (try Try[B]) Check(cond bool, v B) {
	try(BreakIfWith(cond, v))
}

type scope struct {
	closed atomic.Bool
}

type breakSignal[B any] struct {
	owner *scope
	value B
}

// Do runs body with a Try bound to this call and returns what body returns,
// or the first Break passed to that Try.
//
// Panics that did not come from this call's Try are re-raised unchanged, so
// nested Do scopes each catch only their own breaks. The body must not hand its
// Try to other goroutines; see Try.
func Do[B any](body func(try Try[B]) ControlFlow[B]) (res ControlFlow[B]) {
	s := &scope{}
	defer func() {
		s.closed.Store(true)
		r := recover()
		if r == nil {
			return
		}
		if sig, ok := helper.AsType[*breakSignal[B]](r); ok && sig.owner == s {
			res = Break(sig.value)
			return
		}
		panic(r)
	}()

	return body(func(cf ControlFlow[B]) {
		if s.closed.Load() {
			panic(fmt.Errorf("%w: %v", ErrTryOutsideScope, cf))
		}
		if cf.isBreak {
			panic(&breakSignal[B]{owner: s, value: cf.value})
		}
	})
}
