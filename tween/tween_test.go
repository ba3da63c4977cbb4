package tween

import (
	"math"
	"testing"
)

func TestTweenProgress(t *testing.T) {
	var updates []float64
	completed := false
	tw := &Tween{
		Duration:   4,
		OnUpdate:   func(p float64) { updates = append(updates, p) },
		OnComplete: func() { completed = true },
	}

	r := NewRunner()
	r.Start(tw)
	for i := 0; i < 4; i++ {
		r.Update()
	}

	want := []float64{0.25, 0.5, 0.75, 1.0}
	if len(updates) != len(want) {
		t.Fatalf("expected %d updates, got %d", len(want), len(updates))
	}
	for i := range want {
		if math.Abs(updates[i]-want[i]) > 1e-9 {
			t.Fatalf("update %d: expected %v, got %v", i, want[i], updates[i])
		}
	}
	if !completed {
		t.Fatalf("OnComplete never fired")
	}
	if !tw.Done() {
		t.Fatalf("tween should report done")
	}
	if r.Active() != 0 {
		t.Fatalf("completed tween still active")
	}
}

func TestTweenCompletesOnce(t *testing.T) {
	fires := 0
	tw := &Tween{Duration: 2, OnComplete: func() { fires++ }}
	r := NewRunner()
	r.Start(tw)
	for i := 0; i < 5; i++ {
		r.Update()
	}
	if fires != 1 {
		t.Fatalf("expected exactly one completion, got %d", fires)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	var got float64 = -1
	completed := false
	tw := &Tween{Duration: 0, OnUpdate: func(p float64) { got = p }, OnComplete: func() { completed = true }}
	r := NewRunner()
	r.Start(tw)
	r.Update()
	if got != 1 {
		t.Fatalf("zero-duration tween should report progress 1, got %v", got)
	}
	if !completed {
		t.Fatalf("zero-duration tween should complete on its first tick")
	}
}

func TestTweenCancel(t *testing.T) {
	updates := 0
	completed := false
	tw := &Tween{Duration: 10, OnUpdate: func(float64) { updates++ }, OnComplete: func() { completed = true }}
	r := NewRunner()
	r.Start(tw)
	r.Update()
	r.Update()
	tw.Cancel()
	r.Update()
	r.Update()
	if updates != 2 {
		t.Fatalf("canceled tween kept updating, %d updates", updates)
	}
	if completed {
		t.Fatalf("canceled tween fired OnComplete")
	}
	if r.Active() != 0 {
		t.Fatalf("canceled tween still active")
	}
}

func TestRunnerStartFromCallback(t *testing.T) {
	r := NewRunner()
	innerUpdates := 0
	outer := &Tween{
		Duration: 1,
		OnComplete: func() {
			r.Start(&Tween{Duration: 1, OnUpdate: func(float64) { innerUpdates++ }})
		},
	}
	r.Start(outer)

	r.Update()
	if innerUpdates != 0 {
		t.Fatalf("tween started from a callback advanced on the same tick")
	}
	r.Update()
	if innerUpdates != 1 {
		t.Fatalf("tween started from a callback should advance on the next tick, got %d updates", innerUpdates)
	}
}

func TestRunnerNilSafety(t *testing.T) {
	var r *Runner
	r.Start(&Tween{Duration: 1})
	r.Update()
	if r.Active() != 0 {
		t.Fatalf("nil runner reported activity")
	}

	live := NewRunner()
	live.Start(nil)
	live.Update()
}

func TestEasingEndpoints(t *testing.T) {
	cases := []struct {
		name string
		ease Easing
	}{
		{"linear", Linear},
		{"quad-in-out", QuadInOut},
		{"cubic-in-out", CubicInOut},
		{"sine-in-out", SineInOut},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if v := c.ease(0); math.Abs(v) > 1e-9 {
				t.Fatalf("ease(0) = %v, expected 0", v)
			}
			if v := c.ease(1); math.Abs(v-1) > 1e-9 {
				t.Fatalf("ease(1) = %v, expected 1", v)
			}
			if v := c.ease(0.5); math.Abs(v-0.5) > 1e-9 {
				t.Fatalf("ease(0.5) = %v, expected 0.5", v)
			}
		})
	}
}

func TestEasingMonotonic(t *testing.T) {
	for _, c := range []struct {
		name string
		ease Easing
	}{
		{"quad-in-out", QuadInOut},
		{"cubic-in-out", CubicInOut},
		{"sine-in-out", SineInOut},
	} {
		t.Run(c.name, func(t *testing.T) {
			prev := c.ease(0)
			for i := 1; i <= 100; i++ {
				v := c.ease(float64(i) / 100)
				if v < prev {
					t.Fatalf("ease not monotonic at %v: %v < %v", float64(i)/100, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestByName(t *testing.T) {
	if ByName("linear")(0.25) != 0.25 {
		t.Fatalf("linear lookup failed")
	}
	// unknown names fall back to the default curve
	if got := ByName("bogus")(0.25); got != QuadInOut(0.25) {
		t.Fatalf("unknown easing should fall back to quad-in-out, got %v", got)
	}
}
