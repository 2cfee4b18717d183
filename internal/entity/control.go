package entity

import "github.com/vovakirdan/tui-tilegame/internal/core"

// ControlDirection names what an on-screen control steers.
type ControlDirection int

const (
	ControlUp ControlDirection = iota
	ControlDown
	ControlLeft
	ControlRight
)

// String returns the lower-case direction name.
func (d ControlDirection) String() string {
	switch d {
	case ControlUp:
		return "up"
	case ControlDown:
		return "down"
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	default:
		return "unknown"
	}
}

// Apply folds the direction into an intent. Only the control's own axis
// changes; the other axis keeps whatever it held.
func (d ControlDirection) Apply(m core.MovementIntent) core.MovementIntent {
	m.Moving = true
	switch d {
	case ControlUp:
		m.Vertical = core.VerticalUp
	case ControlDown:
		m.Vertical = core.VerticalDown
	case ControlLeft:
		m.Horizontal = core.HorizontalLeft
	case ControlRight:
		m.Horizontal = core.HorizontalRight
	}
	return m
}

// UiControl is a tap target drawn over the playfield.
type UiControl struct {
	Sprite
	Direction ControlDirection
	Hidden    bool
}

// Blocking reports false; controls are overlays.
func (c *UiControl) Blocking() bool { return false }

// Visible reports whether the control is drawn.
func (c *UiControl) Visible() bool { return !c.Hidden }

// Hit reports whether (x, y) falls on the control, borders included.
func (c *UiControl) Hit(x, y int) bool {
	return c.Bounds().ContainsInclusive(x, y)
}

// Controls is the four-arrow pad in the bottom-right corner of the screen.
type Controls struct {
	Up, Down, Left, Right UiControl
}

// NewControls builds the pad from one image per direction.
func NewControls(up, down, left, right core.Image) *Controls {
	return &Controls{
		Up:    UiControl{Sprite: NewSprite(up, 0, 0), Direction: ControlUp},
		Down:  UiControl{Sprite: NewSprite(down, 0, 0), Direction: ControlDown},
		Left:  UiControl{Sprite: NewSprite(left, 0, 0), Direction: ControlLeft},
		Right: UiControl{Sprite: NewSprite(right, 0, 0), Direction: ControlRight},
	}
}

// Layout positions the pad for a screen of w x h pixels with the given padding.
func (c *Controls) Layout(w, h, padding int) {
	c.Down.X = w - (c.Down.Width*2 + padding)
	c.Down.Y = h - (c.Down.Height + padding)

	c.Up.X = c.Down.X
	c.Up.Y = c.Down.Y - c.Up.Height*2

	c.Left.X = c.Down.X - c.Left.Width
	c.Left.Y = c.Down.Y - c.Left.Height

	c.Right.X = w - (c.Left.Width + padding)
	c.Right.Y = c.Left.Y
}

// All returns the controls in hit-test order.
func (c *Controls) All() []*UiControl {
	return []*UiControl{&c.Up, &c.Down, &c.Left, &c.Right}
}

// HitTest returns the first control containing (x, y), or nil.
func (c *Controls) HitTest(x, y int) *UiControl {
	for _, ctrl := range c.All() {
		if ctrl.Visible() && ctrl.Hit(x, y) {
			return ctrl
		}
	}
	return nil
}

// Draw paints every visible control.
func (c *Controls) Draw(canvas core.Canvas) {
	for _, ctrl := range c.All() {
		if ctrl.Visible() {
			ctrl.Sprite.Draw(canvas)
		}
	}
}
