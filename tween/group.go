package tween

// Group joins several concurrently-running tweens into one completion event.
// The expected total is counted from the tweens actually handed to Add, so
// the join can never wait on an interpolation that was planned but not
// scheduled.
type Group struct {
	members []*Tween
	done    int
	sealed  bool
	fired   bool
	onAll   func()
}

func NewGroup() *Group {
	return &Group{}
}

// Add wires a tween into the group and returns it for scheduling. Must be
// called before Seal.
func (g *Group) Add(t *Tween) *Tween {
	if g == nil || t == nil || g.sealed {
		return t
	}
	g.members = append(g.members, t)
	prev := t.OnComplete
	t.OnComplete = func() {
		if prev != nil {
			prev()
		}
		g.done++
		g.maybeFire()
	}
	return t
}

// Seal fixes the member set and registers the all-complete callback. A group
// sealed with no members fires immediately: a fully degraded phase still has
// to finish.
func (g *Group) Seal(onAll func()) {
	if g == nil || g.sealed {
		return
	}
	g.sealed = true
	g.onAll = onAll
	g.maybeFire()
}

// Cancel stops every member without firing the join.
func (g *Group) Cancel() {
	if g == nil {
		return
	}
	g.fired = true
	for _, t := range g.members {
		t.Cancel()
	}
}

// Members returns the joined tweens for scheduling.
func (g *Group) Members() []*Tween {
	if g == nil {
		return nil
	}
	return g.members
}

// Len returns the number of joined tweens.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.members)
}

func (g *Group) maybeFire() {
	if g == nil || !g.sealed || g.fired || g.done < len(g.members) {
		return
	}
	g.fired = true
	if g.onAll != nil {
		g.onAll()
	}
}
