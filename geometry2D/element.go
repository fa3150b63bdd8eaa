package geometry2D

// Element is one closed or quasi-closed lifting body: an ordered, contiguous
// run of panels carrying a single uniform vortex-sheet strength Gamma. The
// trailing edge is the (first, last) panel pair of the run.
type Element struct {
	Name   string
	Panels []*Panel

	// Solution field
	Gamma float64 // Circulation density
}

// NewElement builds the element's panels from an ordered boundary walk, e.g.
// trailing edge -> upper surface -> leading edge -> lower surface -> trailing
// edge. N+1 points produce N panels.
func NewElement(name string, points []Point) (e *Element, err error) {
	var (
		panels []*Panel
	)
	if panels, err = BuildPanels(points); err != nil {
		return
	}
	e = &Element{
		Name:   name,
		Panels: panels,
	}
	return
}

// BuildPanels pairs consecutive boundary points into panels.
func BuildPanels(points []Point) (panels []*Panel, err error) {
	if len(points) < 2 {
		err = geometryErrorf("need at least 2 boundary points, have %d", len(points))
		return
	}
	panels = make([]*Panel, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		if panels[i], err = NewPanel(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y); err != nil {
			panels = nil
			return
		}
	}
	return
}

// TrailingEdge returns the panel pair the Kutta condition is enforced on.
func (e *Element) TrailingEdge() (first, last *Panel) {
	return e.Panels[0], e.Panels[len(e.Panels)-1]
}

// ChordExtent is the x-extent of the element, used as its contribution to the
// force-normalization reference length.
func (e *Element) ChordExtent() (chord float64) {
	var (
		xmin = e.Panels[0].Xa
		xmax = e.Panels[0].Xa
	)
	for _, p := range e.Panels {
		for _, x := range [2]float64{p.Xa, p.Xb} {
			if x < xmin {
				xmin = x
			}
			if x > xmax {
				xmax = x
			}
		}
	}
	chord = xmax - xmin
	return
}

// Configuration is the full geometry for one solve: an ordered sequence of
// elements. A Configuration is owned by exactly one in-flight solve.
type Configuration struct {
	Elements []*Element
}

func NewConfiguration(elements ...*Element) (c *Configuration) {
	c = &Configuration{Elements: elements}
	return
}

func (c *Configuration) NPanels() (N int) {
	for _, e := range c.Elements {
		N += len(e.Panels)
	}
	return
}

// Panels flattens the per-element panels in element order. Index positions in
// the flattened slice match the source-strength ordering of the linear system.
func (c *Configuration) Panels() (panels []*Panel) {
	panels = make([]*Panel, 0, c.NPanels())
	for _, e := range c.Elements {
		panels = append(panels, e.Panels...)
	}
	return
}

// Ranges gives each element's half-open [start, end) index range within the
// flattened panel ordering. Element panel counts may differ; nothing assumes
// an equal split.
func (c *Configuration) Ranges() (ranges [][2]int) {
	var (
		start int
	)
	ranges = make([][2]int, len(c.Elements))
	for k, e := range c.Elements {
		ranges[k] = [2]int{start, start + len(e.Panels)}
		start += len(e.Panels)
	}
	return
}

// ReferenceChord sums the element chord extents.
func (c *Configuration) ReferenceChord() (chord float64) {
	for _, e := range c.Elements {
		chord += e.ChordExtent()
	}
	return
}
