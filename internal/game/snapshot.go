package game

import "github.com/vovakirdan/tui-tilegame/internal/core"

// Snapshot captures the session state for tests and debug logging.
type Snapshot struct {
	Stage    int
	Level    int
	PlayerX  int // displayed position
	PlayerY  int
	WorldX   int // position in the frame the grid is stored in
	WorldY   int
	OffsetX  int
	OffsetY  int
	Tiles    int
	Status   string
	Intent   core.MovementIntent
	Surface  [2]int
	Updating bool
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	wx, wy := s.view.Position(s.player)
	ox, oy := s.view.Offset()
	return Snapshot{
		Stage:    s.stage,
		Level:    s.level,
		PlayerX:  s.player.X,
		PlayerY:  s.player.Y,
		WorldX:   wx,
		WorldY:   wy,
		OffsetX:  ox,
		OffsetY:  oy,
		Tiles:    s.grid.Len(),
		Status:   s.status,
		Intent:   s.intent.Load(),
		Surface:  [2]int{s.surfaceW, s.surfaceH},
		Updating: s.updating.Load(),
	}
}
