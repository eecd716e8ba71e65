package waves

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBoundsPaperAspect(t *testing.T) {
	for _, view := range []Size{{400, 400}, {1920, 1080}, {300, 900}, {1, 1}} {
		b := ComputeBounds(view, true)
		assert.InDelta(t, 1/1.4142, b.Width/b.Height, 1e-3, "view %v", view)
	}
}

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name  string
		view  Size
		paper bool
		want  Bounds
	}{
		{
			name: "screen",
			view: Size{1300, 650},
			want: Bounds{Width: 1000, Height: 500, XMargin: 150, YMargin: 75},
		}, {
			name:  "paper",
			view:  Size{1300, 1300},
			paper: true,
			want:  Bounds{Width: 1000 / 1.4142, Height: 1000, XMargin: (1300 - 1000/1.4142) / 2, YMargin: 150},
		},
	}
	for _, tt := range tests {
		got := ComputeBounds(tt.view, tt.paper)
		assert.InDelta(t, tt.want.Width, got.Width, 1e-9, tt.name)
		assert.InDelta(t, tt.want.Height, got.Height, 1e-9, tt.name)
		assert.InDelta(t, tt.want.XMargin, got.XMargin, 1e-9, tt.name)
		assert.InDelta(t, tt.want.YMargin, got.YMargin, 1e-9, tt.name)
	}
}

func TestComputeBoundsCentered(t *testing.T) {
	view := Size{800, 600}
	b := ComputeBounds(view, false)
	assert.InDelta(t, view.Width, 2*b.XMargin+b.Width, 1e-9)
	assert.InDelta(t, view.Height, 2*b.YMargin+b.Height, 1e-9)
}
