// Package tween advances fixed-duration interpolations one game tick at a
// time. Callbacks run synchronously on the tick that produced them; nothing
// here blocks or spawns goroutines.
package tween

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

// Tween interpolates for Duration ticks, reporting eased progress through
// OnUpdate and firing OnComplete exactly once at the end.
type Tween struct {
	Duration   int
	Ease       Easing
	OnUpdate   func(progress float64)
	OnComplete func()

	frame    int
	done     bool
	canceled bool
}

// Cancel stops the tween without running its completion callback.
func (t *Tween) Cancel() {
	if t == nil {
		return
	}
	t.canceled = true
}

// Done reports whether the tween finished normally.
func (t *Tween) Done() bool {
	return t != nil && t.done
}

// step advances one tick and returns true when the tween should be retired.
func (t *Tween) step() bool {
	if t == nil || t.canceled {
		return true
	}
	if t.done {
		return true
	}
	t.frame++
	progress := 1.0
	if t.Duration > 0 {
		progress = float64(t.frame) / float64(t.Duration)
	}
	if progress >= 1 {
		progress = 1
	}
	eased := progress
	if t.Ease != nil {
		eased = t.Ease(progress)
	}
	if t.OnUpdate != nil {
		t.OnUpdate(eased)
	}
	if progress >= 1 {
		t.done = true
		if t.OnComplete != nil {
			t.OnComplete()
		}
		return true
	}
	return false
}

// Runner owns the set of in-flight tweens. One Runner lives for the whole
// process so interpolations keep advancing across a scene switch.
type Runner struct {
	active []*Tween
}

func NewRunner() *Runner {
	return &Runner{}
}

// Start schedules a tween. Starting from inside another tween's callback is
// allowed; the new tween first advances on the following tick.
func (r *Runner) Start(t *Tween) {
	if r == nil || t == nil {
		return
	}
	r.active = append(r.active, t)
}

// Update advances every tween scheduled before this tick by one frame.
func (r *Runner) Update() {
	if r == nil || len(r.active) == 0 {
		return
	}
	n := len(r.active)
	for i := 0; i < n; i++ {
		r.active[i].step()
	}
	live := r.active[:0]
	for _, t := range r.active {
		if t != nil && !t.done && !t.canceled {
			live = append(live, t)
		}
	}
	r.active = live
}

// Active returns the number of in-flight tweens.
func (r *Runner) Active() int {
	if r == nil {
		return 0
	}
	return len(r.active)
}
