package ui

// Base is embedded by component models for their size and focus.
type Base struct {
	w, h    int
	focused bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

// SetSize records the space the parent gave the component. Negative
// values count as zero.
func (b *Base) SetSize(width, height int) {
	b.w, b.h = max(width, 0), max(height, 0)
}

func (b Base) Width() int  { return b.w }
func (b Base) Height() int { return b.h }

// Sized reports whether the component has any room to draw into.
func (b Base) Sized() bool { return b.w > 0 && b.h > 0 }

// InnerWidth and InnerHeight are what is left inside a bordered panel.
func (b Base) InnerWidth() int  { return max(b.w-BorderWidth, 0) }
func (b Base) InnerHeight() int { return max(b.h-BorderHeight, 0) }
