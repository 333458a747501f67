// Package loop provides the game simulation and the terminal game loop.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/draw"
	"github.com/tomz197/asteroids/internal/input"
)

// Render area limits in terminal cells; larger terminals get a centered viewport.
const (
	maxTermWidth  = 200
	maxTermHeight = 60
)

// defaultGameOverHold is how long the final frame stays up after the player dies.
const defaultGameOverHold = 2 * time.Second

// Result tells the caller how a game session ended.
type Result int

const (
	ResultQuit     Result = iota // Player pressed quit
	ResultGameOver               // Player ship was destroyed
)

func (r Result) String() string {
	switch r {
	case ResultQuit:
		return "quit"
	case ResultGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Options configures a terminal game session.
type Options struct {
	Config       config.Config
	Logger       *log.Logger         // nil discards
	TermSizeFunc draw.TermSizeFunc   // nil uses stdout
	GameOverHold time.Duration       // zero uses the default
	Clock        func() time.Time    // nil uses time.Now
	Sleep        func(time.Duration) // nil uses time.Sleep
}

func (o *Options) setDefaults() {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.GameOverHold == 0 {
		o.GameOverHold = defaultGameOverHold
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the player quits or the ship is destroyed.
func Run(r *bufio.Reader, w io.Writer, opts Options) (Result, error) {
	opts.setDefaults()
	if err := opts.Config.Validate(); err != nil {
		return ResultQuit, fmt.Errorf("invalid config: %w", err)
	}

	cfg := opts.Config
	world := NewWorld(cfg, WithLogger(opts.Logger))
	stream := input.StartStream(r)

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return ResultQuit, fmt.Errorf("get terminal size: %w", err)
	}
	renderWidth, renderHeight, offCol, offRow := viewport(termWidth, termHeight)

	// Create scaled canvas - maps logical coordinates to terminal pixels
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, cfg.ScreenWidth, cfg.ScreenHeight)
	canvas.SetOffset(offCol, offRow)
	cw := draw.NewChunkWriter(w, offCol, offRow)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	opts.Logger.Info("Starting asteroids!", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight, "seed", cfg.Seed)

	frameTime := cfg.FrameTime()
	lastTime := opts.Clock()

	for {
		frameStart := opts.Clock()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			draw.ClearScreen(w)
			opts.Logger.Info("game quit", "asteroids", len(world.Asteroids))
			return ResultQuit, nil
		}

		// ===== UPDATE PHASE =====
		if err := updateScreen(opts.TermSizeFunc, canvas, cw); err != nil {
			return ResultQuit, err
		}
		status := world.Tick(delta, in)

		// ===== DRAW PHASE =====
		if err := drawFrame(world, cw, canvas); err != nil {
			return ResultQuit, err
		}

		if status == StatusGameOver {
			opts.Logger.Info("game over")
			holdGameOver(stream, opts)
			draw.ClearScreen(w)
			return ResultGameOver, nil
		}

		// ===== FRAME TIMING =====
		elapsed := opts.Clock().Sub(frameStart)
		if elapsed < frameTime {
			opts.Sleep(frameTime - elapsed)
		}
	}
}

// viewport clamps the terminal size to the render limits and centers the
// render area inside the terminal.
func viewport(termWidth, termHeight int) (width, height, offCol, offRow int) {
	width = min(termWidth, maxTermWidth)
	height = min(termHeight, maxTermHeight)
	offCol = (termWidth - width) / 2
	offRow = (termHeight - height) / 2
	return width, height, offCol, offRow
}

// updateScreen checks for terminal resize and updates canvas scaling.
func updateScreen(sizeFunc draw.TermSizeFunc, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	width, height, offCol, offRow := viewport(termWidth, termHeight)
	canvas.Resize(width, height)
	canvas.SetOffset(offCol, offRow)
	cw.SetOffset(offCol, offRow)
	return nil
}

// drawFrame clears the screen and draws all objects, then the HUD on top.
func drawFrame(world *World, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	world.Draw(canvas)
	canvas.Render(cw)
	canvas.RenderBorder(cw)

	drawUI(world, cw, canvas)

	if err := cw.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// holdGameOver keeps the final frame up until the hold expires or a key is pressed.
func holdGameOver(stream *input.Stream, opts Options) {
	deadline := opts.Clock().Add(opts.GameOverHold)
	for opts.Clock().Before(deadline) {
		in := input.ReadInput(stream)
		if in.Quit || len(in.Pressed) > 0 {
			return
		}
		opts.Sleep(opts.Config.FrameTime())
	}
}
