package flow

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Unit is the payload of a Break that carries no value.
type Unit = struct{}

// ControlFlow is either Continue or Break(B).
// The zero value is Continue.
type ControlFlow[B any] struct {
	isBreak bool
	value   B
}

// Continue returns the Continue variant.
func Continue[B any]() ControlFlow[B] {
	return ControlFlow[B]{}
}

// Break returns the Break variant carrying v.
func Break[B any](v B) ControlFlow[B] {
	return ControlFlow[B]{isBreak: true, value: v}
}

// IsBreak reports whether cf is Break.
func (cf ControlFlow[B]) IsBreak() bool {
	return cf.isBreak
}

// IsContinue reports whether cf is Continue.
func (cf ControlFlow[B]) IsContinue() bool {
	return !cf.isBreak
}

// BreakValue returns the Break payload and true, or zero and false.
func (cf ControlFlow[B]) BreakValue() (B, bool) {
	if cf.isBreak {
		return cf.value, true
	}
	var zero B
	return zero, false
}

// Match calls onContinue or onBreak depending on the variant of cf.
func Match[B, T any](cf ControlFlow[B], onContinue func() T, onBreak func(B) T) T {
	if cf.isBreak {
		return onBreak(cf.value)
	}
	return onContinue()
}

// String returns "Continue" or "Break(<payload>)".
func (cf ControlFlow[B]) String() string {
	if cf.isBreak {
		return fmt.Sprintf("Break(%v)", cf.value)
	}
	return "Continue"
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (cf ControlFlow[B]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if !cf.isBreak {
		enc.AddString("flow", "continue")
		return nil
	}
	enc.AddString("flow", "break")
	return enc.AddReflected("payload", cf.value)
}
