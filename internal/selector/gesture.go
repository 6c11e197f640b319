package selector

const DefaultDragThreshold = 20.0

func Drag(baseline, pointer, threshold float64) (delta int, next float64) {
	displacement := baseline - pointer
	if displacement > threshold {
		return 1, pointer
	}
	if -displacement > threshold {
		return -1, pointer
	}
	return 0, baseline
}

type Gesture struct {
	sel       *Selector
	axis      Axis
	threshold float64
	baseline  float64
	active    bool
}

func NewGesture(sel *Selector, axis Axis, threshold float64) *Gesture {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Gesture{sel: sel, axis: axis, threshold: threshold}
}

func (g *Gesture) Axis() Axis { return g.axis }

func (g *Gesture) Active() bool { return g.active }

func (g *Gesture) Begin(y float64) {
	g.baseline = y
	g.active = true
}

func (g *Gesture) Move(y float64) int {
	if !g.active {
		return 0
	}
	delta, next := Drag(g.baseline, y, g.threshold)
	g.baseline = next
	if delta != 0 {
		g.sel.ScrollBy(g.axis, delta)
	}
	return delta
}

func (g *Gesture) End() {
	g.active = false
}
