package core

import "sync/atomic"

// VerticalDirection is the vertical component of a movement intent.
type VerticalDirection uint8

const (
	VerticalNone VerticalDirection = iota
	VerticalUp
	VerticalDown
)

// HorizontalDirection is the horizontal component of a movement intent.
type HorizontalDirection uint8

const (
	HorizontalNone HorizontalDirection = iota
	HorizontalLeft
	HorizontalRight
)

// Sign returns -1 for up, 1 for down and 0 otherwise.
func (d VerticalDirection) Sign() int {
	switch d {
	case VerticalUp:
		return -1
	case VerticalDown:
		return 1
	default:
		return 0
	}
}

// Sign returns -1 for left, 1 for right and 0 otherwise.
func (d HorizontalDirection) Sign() int {
	switch d {
	case HorizontalLeft:
		return -1
	case HorizontalRight:
		return 1
	default:
		return 0
	}
}

// MovementIntent is the desired direction(s) of player travel.
// Both axes may be active at once for diagonal movement.
type MovementIntent struct {
	Moving     bool
	Vertical   VerticalDirection
	Horizontal HorizontalDirection
}

// String returns a compact description for logs.
func (m MovementIntent) String() string {
	if !m.Moving {
		return "idle"
	}
	s := ""
	switch m.Vertical {
	case VerticalUp:
		s = "up"
	case VerticalDown:
		s = "down"
	}
	switch m.Horizontal {
	case HorizontalLeft:
		s += "left"
	case HorizontalRight:
		s += "right"
	}
	if s == "" {
		return "moving"
	}
	return s
}

func (m MovementIntent) pack() uint32 {
	var moving uint32
	if m.Moving {
		moving = 1
	}
	return moving | uint32(m.Vertical)<<8 | uint32(m.Horizontal)<<16
}

func unpackIntent(v uint32) MovementIntent {
	return MovementIntent{
		Moving:     v&0xff == 1,
		Vertical:   VerticalDirection(v >> 8 & 0xff),
		Horizontal: HorizontalDirection(v >> 16 & 0xff),
	}
}

// IntentBox holds the current MovementIntent as one atomic word.
// The input side writes it, the loop reads a consistent snapshot each frame.
type IntentBox struct {
	v atomic.Uint32
}

// Load returns the current intent.
func (b *IntentBox) Load() MovementIntent {
	return unpackIntent(b.v.Load())
}

// Store replaces the current intent.
func (b *IntentBox) Store(m MovementIntent) {
	b.v.Store(m.pack())
}

// Update applies fn to the current intent atomically.
func (b *IntentBox) Update(fn func(MovementIntent) MovementIntent) MovementIntent {
	for {
		old := b.v.Load()
		next := fn(unpackIntent(old))
		if b.v.CompareAndSwap(old, next.pack()) {
			return next
		}
	}
}

// Clear resets the intent to idle.
func (b *IntentBox) Clear() {
	b.v.Store(0)
}
