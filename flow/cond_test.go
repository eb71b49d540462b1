package flow_test

import (
	"math/rand/v2"
	"testing"

	"github.com/on-the-ground/tryflow/flow"

	"github.com/stretchr/testify/assert"
)

const propertyN = 1000

func TestBreakIf(t *testing.T) {
	assert.Equal(t, flow.Break(flow.Unit{}), flow.BreakIf(true))
	assert.Equal(t, flow.Continue[flow.Unit](), flow.BreakIf(false))
}

func TestBreakIfWith(t *testing.T) {
	assert.Equal(t, flow.Break(42), flow.BreakIfWith(true, 42))
	assert.Equal(t, flow.Continue[int](), flow.BreakIfWith(false, 42))
}

func TestContinueIf(t *testing.T) {
	assert.Equal(t, flow.Continue[flow.Unit](), flow.ContinueIf(true))
	assert.Equal(t, flow.Break(flow.Unit{}), flow.ContinueIf(false))
}

func TestContinueIfOr(t *testing.T) {
	assert.Equal(t, flow.Continue[string](), flow.ContinueIfOr(true, "ok"))
	assert.Equal(t, flow.Break("ok"), flow.ContinueIfOr(false, "ok"))
}

func TestBreakIfLazy_OnlyEvaluatesOnBreak(t *testing.T) {
	calls := 0
	payload := func() int {
		calls++
		return 9
	}

	assert.Equal(t, flow.Continue[int](), flow.BreakIfLazy(false, payload))
	assert.Equal(t, 0, calls)

	assert.Equal(t, flow.Break(9), flow.BreakIfLazy(true, payload))
	assert.Equal(t, 1, calls)
}

func TestContinueIfOrElse_OnlyEvaluatesOnBreak(t *testing.T) {
	calls := 0
	payload := func() string {
		calls++
		return "fallback"
	}

	assert.Equal(t, flow.Continue[string](), flow.ContinueIfOrElse(true, payload))
	assert.Equal(t, 0, calls)

	assert.Equal(t, flow.Break("fallback"), flow.ContinueIfOrElse(false, payload))
	assert.Equal(t, 1, calls)
}

// BreakIfWith(b, v) is Break(v) iff b; ContinueIfOr(b, v) is Break(v) iff !b.
func TestPropertyConditionPolarity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		b := rng.IntN(2) == 1
		v := rng.IntN(2001) - 1000

		brk := flow.BreakIfWith(b, v)
		if brk.IsBreak() != b {
			t.Fatalf("BreakIfWith(%v, %d) = %v", b, v, brk)
		}
		if got, ok := brk.BreakValue(); ok && got != v {
			t.Fatalf("BreakIfWith(%v, %d) payload = %d", b, v, got)
		}

		cont := flow.ContinueIfOr(b, v)
		if cont.IsContinue() != b {
			t.Fatalf("ContinueIfOr(%v, %d) = %v", b, v, cont)
		}
		if got, ok := cont.BreakValue(); ok && got != v {
			t.Fatalf("ContinueIfOr(%v, %d) payload = %d", b, v, got)
		}

		if flow.BreakIf(b).IsBreak() != b {
			t.Fatalf("BreakIf(%v) has the wrong variant", b)
		}
		if flow.ContinueIf(b).IsContinue() != b {
			t.Fatalf("ContinueIf(%v) has the wrong variant", b)
		}
	}
}

// The two orientations are mirror images: ContinueIfOr(b, v) == BreakIfWith(!b, v).
func TestPropertyOrientationsMirror(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for range propertyN {
		b := rng.IntN(2) == 1
		v := rng.Int64()
		if flow.ContinueIfOr(b, v) != flow.BreakIfWith(!b, v) {
			t.Fatalf("orientation mismatch for b=%v v=%d", b, v)
		}
		if flow.ContinueIf(b) != flow.BreakIf(!b) {
			t.Fatalf("unit orientation mismatch for b=%v", b)
		}
	}
}

func TestPropertyConversionsAreRepeatable(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range propertyN {
		b := rng.IntN(2) == 1
		v := rng.IntN(100)
		if flow.BreakIfWith(b, v) != flow.BreakIfWith(b, v) {
			t.Fatalf("BreakIfWith(%v, %d) not repeatable", b, v)
		}
		if flow.ContinueIfOr(b, v) != flow.ContinueIfOr(b, v) {
			t.Fatalf("ContinueIfOr(%v, %d) not repeatable", b, v)
		}
		lazy := func() int { return v }
		if flow.BreakIfLazy(b, lazy) != flow.BreakIfWith(b, v) {
			t.Fatalf("BreakIfLazy(%v) differs from BreakIfWith", b)
		}
		if flow.ContinueIfOrElse(b, lazy) != flow.ContinueIfOr(b, v) {
			t.Fatalf("ContinueIfOrElse(%v) differs from ContinueIfOr", b)
		}
	}
}

func TestEarlyReturnWithCheck(t *testing.T) {
	classify := func(n int) flow.ControlFlow[string] {
		if cf := flow.BreakIfWith(n < 0, "negative"); cf.IsBreak() {
			return cf
		}
		if cf := flow.ContinueIfOr(n%2 == 0, "odd"); cf.IsBreak() {
			return cf
		}
		return flow.Continue[string]()
	}

	assert.Equal(t, flow.Break("negative"), classify(-3))
	assert.Equal(t, flow.Break("odd"), classify(3))
	assert.Equal(t, flow.Continue[string](), classify(4))
}
