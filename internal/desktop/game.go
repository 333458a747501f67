// Package desktop hosts the simulation in a native window using ebiten.
package desktop

import (
	"errors"
	"image/color"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/input"
	"github.com/tomz197/asteroids/internal/loop"
	"github.com/tomz197/asteroids/internal/object"
	"github.com/tomz197/asteroids/internal/physics"
)

// ErrGameOver is returned by Run when the player ship was destroyed.
var ErrGameOver = errors.New("game over")

const (
	strokeWidth  = 2
	gameOverHold = 2 * time.Second
)

var lineColor = color.White

// Game adapts a loop.World to ebiten.Game.
type Game struct {
	cfg    config.Config
	world  *loop.World
	logger *log.Logger

	delta    time.Duration // Fixed tick length
	overTime time.Duration // Time spent on the game over screen
}

// NewGame creates a game with a fresh world.
func NewGame(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		world:  loop.NewWorld(cfg, loop.WithLogger(logger)),
		logger: logger,
		delta:  cfg.FrameTime(),
	}
}

// Update advances the world by one fixed tick.
func (g *Game) Update() error {
	in := readInput(ebiten.IsKeyPressed)
	if in.Quit {
		return ebiten.Termination
	}

	if g.world.Tick(g.delta, in) == loop.StatusRunning {
		return nil
	}

	// Keep the final frame up for a moment before leaving.
	g.overTime += g.delta
	if g.overTime >= gameOverHold || (g.overTime > g.delta && in.Space) {
		g.logger.Info("game over")
		return ErrGameOver
	}
	return nil
}

// Draw renders the world and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(surface{dst: screen})

	if g.world.Status() == loop.StatusGameOver {
		x := int(g.cfg.ScreenWidth)/2 - 27
		y := int(g.cfg.ScreenHeight) / 2
		ebitenutil.DebugPrintAt(screen, "GAME OVER", x, y)
		return
	}
	ebitenutil.DebugPrint(screen, "Asteroids: "+strconv.Itoa(len(g.world.Asteroids)))
}

// Layout keeps the logical screen size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

var _ ebiten.Game = (*Game)(nil)

// Run opens a window and plays until the player quits or dies.
// It returns ErrGameOver if the ship was destroyed and nil on quit.
func Run(cfg config.Config, logger *log.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetTPS(cfg.TargetFPS)

	return ebiten.RunGame(NewGame(cfg, logger))
}

// readInput maps the held keys to an input snapshot.
func readInput(pressed func(ebiten.Key) bool) input.Input {
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}

	return input.Input{
		Quit:  held(ebiten.KeyEscape, ebiten.KeyQ),
		Left:  held(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right: held(ebiten.KeyD, ebiten.KeyArrowRight),
		Up:    held(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:  held(ebiten.KeyS, ebiten.KeyArrowDown),
		Space: held(ebiten.KeySpace),
	}
}

// surface draws outlines onto an ebiten image (implements object.Surface).
type surface struct {
	dst *ebiten.Image
}

var _ object.Surface = surface{}

func (s surface) DrawCircle(center physics.Vector, radius float64) {
	vector.StrokeCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), strokeWidth, lineColor, true)
}

func (s surface) DrawPolygon(points []physics.Vector) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := range n {
		a, b := points[i], points[(i+1)%n]
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, lineColor, true)
	}
}

func (s surface) DrawPoint(p physics.Vector) {
	vector.DrawFilledRect(s.dst, float32(p.X)-1, float32(p.Y)-1, 2, 2, lineColor, false)
}
