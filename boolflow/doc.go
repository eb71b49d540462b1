// Package boolflow converts a boolean condition into a flow.ControlFlow.
//
// The conversions live on the condition:
//
//	boolflow.Bool(n < 0).Break()                  // Break(Unit{}) when n < 0
//	boolflow.Bool(ok).Continue()                  // Continue when ok
//	boolflow.Cond[string](n < 0).BreakWith("neg") // Break("neg") when n < 0
//	boolflow.Cond[string](ok).ContinueOr("bad")   // Continue when ok, Break("bad") otherwise
//
// Go methods cannot declare their own type parameters, so the payload type is
// fixed by the conversion Cond[T](b). Every method returns exactly what the
// matching constructor in package flow returns for the same inputs.
package boolflow
