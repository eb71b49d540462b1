// Package flow provides a two-state control-flow value for early exit.
//
// A [ControlFlow] is either Continue, meaning "keep going", or Break carrying a
// payload, meaning "stop and hand this value upward". It is the Go rendition of
// a short-circuit signal: code that would otherwise be a ladder of
//
//	if invalid {
//	    return
//	}
//
// checks can build the signal from the condition and propagate it.
//
// # Building a flow from a condition
//
// Two orientations are offered so a condition never has to be negated:
//
//   - [BreakIf], [BreakIfWith], [BreakIfLazy]: Break when the condition holds
//   - [ContinueIf], [ContinueIfOr], [ContinueIfOrElse]: Continue when the condition holds, Break otherwise
//
// The same conversions are available on the condition itself through
// boolflow.Cond; both forms return identical values for identical inputs.
//
// # Propagating
//
// Go has no propagation operator, so the plain idiom is a check and return:
//
//	func validate(n int) flow.ControlFlow[string] {
//	    if cf := flow.BreakIfWith(n < 0, "negative"); cf.IsBreak() {
//	        return cf
//	    }
//	    if cf := flow.ContinueIfOr(n%2 == 0, "odd"); cf.IsBreak() {
//	        return cf
//	    }
//	    return flow.Continue[string]()
//	}
//
// [Do] offers the operator form: inside its body, try(cf) returns on Continue
// and leaves the body immediately on Break.
//
//	cf := flow.Do(func(try flow.Try[string]) flow.ControlFlow[string] {
//	    try(flow.BreakIfWith(n < 0, "negative"))
//	    try.Check(n%2 != 0, "odd")
//	    return flow.Continue[string]()
//	})
//
// # Iteration
//
// [ForEach] and [ForEach2] drive an iterator until the visitor breaks, which is
// the natural home of a Break carrying a found value.
package flow
