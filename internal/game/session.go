// Package game implements the play session driven by the frame loop: player
// movement, collision response, the camera step and frame composition.
package game

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tilegame/internal/collision"
	"github.com/vovakirdan/tui-tilegame/internal/config"
	"github.com/vovakirdan/tui-tilegame/internal/core"
	"github.com/vovakirdan/tui-tilegame/internal/entity"
	"github.com/vovakirdan/tui-tilegame/internal/level"
	"github.com/vovakirdan/tui-tilegame/internal/tile"
	"github.com/vovakirdan/tui-tilegame/internal/viewport"
)

// Status text position in pixels.
const (
	StatusX = 30
	StatusY = 50
)

// Status messages.
const (
	StatusDangerous = "collision with dangerous tile"
	StatusExit      = "collision with exit tile"
	StatusRegular   = "collision with regular tile"
)

// Session is one running game. It owns the frame lock: the loop holds it
// across Update and Draw, every other mutating method takes it itself.
type Session struct {
	mu sync.Mutex

	rt     core.RuntimeConfig
	loader *level.Loader
	logger *log.Logger

	ids      entity.IDGenerator
	player   *entity.Unit
	grid     *tile.Grid
	view     *viewport.Viewport
	controls *entity.Controls
	padding  int

	background  core.Image
	bgGlyph     rune
	bgColor     core.Color
	statusColor core.Color
	status      string

	stage, level int
	surfaceW     int
	surfaceH     int

	intent   core.IntentBox
	updating atomic.Bool
}

// NewSession builds a session for a surface described by rt. Player and
// control images are resolved through the loader's image cache. A nil logger
// discards output.
func NewSession(cfg config.GameConfig, rt core.RuntimeConfig, loader *level.Loader, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	images := loader.Images()

	playerImg, err := images.Resolve(cfg.Player.Drawable)
	if err != nil {
		return nil, fmt.Errorf("game: player image: %w", err)
	}

	refs := [4]int{cfg.Controls.Up, cfg.Controls.Down, cfg.Controls.Left, cfg.Controls.Right}
	var ctrl [4]core.Image
	for i, ref := range refs {
		img, err := images.Resolve(ref)
		if err != nil {
			return nil, fmt.Errorf("game: control image: %w", err)
		}
		ctrl[i] = img
	}

	bgGlyph := ' '
	for _, r := range cfg.Display.BackgroundGlyph {
		bgGlyph = r
		break
	}
	bgColor, _ := core.ParseColor(cfg.Display.BackgroundColor)

	s := &Session{
		rt:          rt,
		loader:      loader,
		logger:      logger,
		grid:        tile.NewGrid(),
		view:        viewport.New(cfg.Mode(), 0, 0),
		controls:    entity.NewControls(ctrl[0], ctrl[1], ctrl[2], ctrl[3]),
		padding:     cfg.Controls.Padding,
		bgGlyph:     bgGlyph,
		bgColor:     bgColor,
		statusColor: core.ColorYellow,
	}
	s.player = entity.NewUnit(&s.ids, playerImg, cfg.Player.Speed)
	s.resize(rt.PixelSize())
	return s, nil
}

// Lock acquires the frame lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the frame lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// StartLevel loads a level and places the player on its start tile. While
// the level is parsed tiles are not drawn. On failure the grid is left empty,
// the player sits at the origin and the error is returned.
func (s *Session) StartLevel(ctx context.Context, stage, lvl int) error {
	s.updating.Store(true)
	defer s.updating.Store(false)

	res, err := s.loader.Load(ctx, stage, lvl)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stage, s.level = stage, lvl
	s.intent.Clear()
	s.status = ""

	if err != nil {
		s.grid = tile.NewGrid()
		s.placePlayer(0, 0)
		s.logger.Error("level start failed", "stage", stage, "level", lvl, "err", err)
		return fmt.Errorf("game: starting stage %d level %d: %w", stage, lvl, err)
	}

	s.grid = res.Grid
	x, y := res.Grid.PlayerStart()
	s.placePlayer(x, y)
	s.logger.Info("level started", "stage", stage, "level", lvl, "player_x", x, "player_y", y)
	return nil
}

func (s *Session) placePlayer(x, y int) {
	s.player.Place(x, y)
	s.view.Attach(s.player)
}

// Update advances the player one frame. Both axes move together: one probe
// is made at the fully displaced box and a blocker there rejects the whole
// step. Must be called with the frame lock held.
func (s *Session) Update() {
	in := s.intent.Load()
	if !in.Moving {
		return
	}

	step := s.rt.Scale(s.player.Speed)
	x, y := s.view.Position(s.player)
	nx := x + in.Horizontal.Sign()*step
	ny := y + in.Vertical.Sign()*step

	hit := collision.FindBlockingTile(nx, ny, s.player.Width, s.player.Height, s.grid)
	if hit != nil && hit.IsBlockerTile() {
		s.status = collisionStatus(hit)
		return
	}
	s.view.Move(s.player, nx, ny)
}

func collisionStatus(t *tile.Tile) string {
	switch t.Type {
	case tile.TypeDangerous:
		return StatusDangerous
	case tile.TypeExit:
		return StatusExit
	default:
		return StatusRegular
	}
}

// Draw runs the camera step and composes the frame. The camera step runs
// even when c is nil. Must be called with the frame lock held.
func (s *Session) Draw(c core.Canvas) {
	s.view.Recenter(s.player, s.grid)
	if c == nil {
		return
	}

	c.DrawImage(s.background, 0, 0)

	if !s.updating.Load() {
		for _, t := range s.grid.Tiles {
			if t == nil || !t.Visible() {
				continue
			}
			x, y := s.view.TilePosition(t)
			c.DrawImage(t.Image, x, y)
		}
	}

	s.player.Draw(c)
	s.controls.Draw(c)
	c.DrawText(StatusX, StatusY, s.status, s.statusColor)
}

// SetSurfaceSize regenerates the background, the screen center and the
// control layout for a surface of w x h pixels.
func (s *Session) SetSurfaceSize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resize(w, h)
}

func (s *Session) resize(w, h int) {
	s.surfaceW, s.surfaceH = w, h
	s.background = core.Image{Width: w, Height: h, Glyph: s.bgGlyph, Color: s.bgColor}
	s.view.Resize(w, h)
	s.controls.Layout(w, h, s.rt.Scale(s.padding))
}

// Press hit-tests the on-screen controls at (x, y) in up, down, left, right
// order. A hit steers the player that way and reports true.
func (s *Session) Press(x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctrl := s.controls.HitTest(x, y)
	if ctrl == nil {
		return false
	}
	s.steer(ctrl.Direction)
	return true
}

// Steer applies a direction as if its control had been pressed.
func (s *Session) Steer(d entity.ControlDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steer(d)
}

func (s *Session) steer(d entity.ControlDirection) {
	in := s.intent.Update(d.Apply)
	s.status = "moving " + d.String()
	s.logger.Debug("steer", "direction", d, "intent", in)
}

// Release stops all movement.
func (s *Session) Release() {
	s.intent.Clear()
}

// Intent returns the current movement intent.
func (s *Session) Intent() core.MovementIntent {
	return s.intent.Load()
}

// Status returns the last status message.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Current returns the stage and level last started.
func (s *Session) Current() (stage, lvl int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage, s.level
}

// Updating reports whether a level is being loaded.
func (s *Session) Updating() bool {
	return s.updating.Load()
}

// Controls returns the on-screen control pad.
func (s *Session) Controls() *entity.Controls {
	return s.controls
}
