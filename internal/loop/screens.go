package loop

import (
	"strconv"

	"github.com/tomz197/asteroids/internal/draw"
	"github.com/tomz197/asteroids/internal/object"
)

// Canvas is the render sink for the terminal host.
var _ object.Surface = (*draw.Canvas)(nil)

const controlsHint = "A/D rotate  W/S thrust  SPACE shoot  Q quit"

// drawUI draws the text overlay for the current world status.
func drawUI(world *World, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()

	switch world.Status() {
	case StatusRunning:
		drawPlayingHUD(world, cw, termWidth, termHeight)
	case StatusGameOver:
		drawGameOverScreen(world, cw, termWidth, termHeight)
	}
}

// drawPlayingHUD draws the asteroid counter and the controls hint.
func drawPlayingHUD(world *World, cw *draw.ChunkWriter, termWidth, termHeight int) {
	cw.WriteAt(2, 1, "Asteroids: "+strconv.Itoa(len(world.Asteroids)))

	if termWidth > len(controlsHint)+2 && termHeight > 2 {
		cw.WriteAt(termWidth-len(controlsHint), termHeight, controlsHint)
	}
}

// drawGameOverScreen draws the game over banner in the middle of the canvas.
func drawGameOverScreen(world *World, cw *draw.ChunkWriter, termWidth, termHeight int) {
	centerY := termHeight / 2
	cw.WriteCentered(max(1, centerY-1), termWidth, "GAME OVER")
	cw.WriteCentered(centerY+1, termWidth, "Asteroids left: "+strconv.Itoa(len(world.Asteroids)))
}
