package session

// Group is a scene-owned container of live entities. The context keeps a
// reference so systems outside the scene (the transition freeze, mainly) can
// reach the current population; scenes replace the contents wholesale on
// every (re)creation.
type Group[T any] struct {
	items []T
}

func NewGroup[T any]() *Group[T] {
	return &Group[T]{}
}

func (g *Group[T]) Add(v T) {
	if g == nil {
		return
	}
	g.items = append(g.items, v)
}

// Items returns the live backing slice; callers must not retain it across a
// scene switch.
func (g *Group[T]) Items() []T {
	if g == nil {
		return nil
	}
	return g.items
}

func (g *Group[T]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.items)
}

// Reset empties the group in place, keeping context references valid.
func (g *Group[T]) Reset() {
	if g == nil {
		return
	}
	g.items = g.items[:0]
}
