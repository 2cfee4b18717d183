package entity

import "github.com/vovakirdan/tui-tilegame/internal/core"

// DefaultSpeed is the player speed in density-independent pixels per frame.
const DefaultSpeed = 3

// Unit is a movable actor. Its Sprite position is where it is displayed;
// UnmodifiedX/Y hold the position before the camera step recentered it.
type Unit struct {
	Sprite
	ID          ID
	UnmodifiedX int
	UnmodifiedY int
	Speed       int
}

// NewUnit creates a unit with a fresh id from gen.
func NewUnit(gen *IDGenerator, img core.Image, speed int) *Unit {
	return &Unit{
		Sprite: NewSprite(img, 0, 0),
		ID:     gen.Next(),
		Speed:  speed,
	}
}

// Blocking reports false; units never block other movement.
func (u *Unit) Blocking() bool { return false }

// Visible reports true; the player is always drawn.
func (u *Unit) Visible() bool { return true }

// Place moves the unit to (x, y) and clears the unmodified position; the
// camera fills it in on its next step.
func (u *Unit) Place(x, y int) {
	u.X, u.Y = x, y
	u.UnmodifiedX, u.UnmodifiedY = 0, 0
}
