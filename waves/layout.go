package waves

const (
	// viewShrink is how much smaller the drawable area is than the view.
	viewShrink = 1.3
	// paperRatio is the long/short side ratio of ISO 216 paper.
	paperRatio = 1.4142
)

// Size is the width and height of the view the waves are drawn into.
type Size struct {
	Width, Height float64
}

// Center of the view.
func (s Size) Center() Point {
	return Point{s.Width / 2, s.Height / 2}
}

// Bounds is the drawable rectangle centered inside a view.
type Bounds struct {
	Width, Height    float64
	XMargin, YMargin float64
}

// ComputeBounds shrinks the view by 1.3 and centers the result. With paper set
// the width follows the height so the rectangle has a portrait paper aspect.
func ComputeBounds(view Size, paper bool) Bounds {
	height := view.Height / viewShrink
	width := view.Width / viewShrink
	if paper {
		width = height / paperRatio
	}
	return Bounds{
		Width:   width,
		Height:  height,
		XMargin: (view.Width - width) / 2,
		YMargin: (view.Height - height) / 2,
	}
}
