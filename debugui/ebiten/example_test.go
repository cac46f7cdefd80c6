package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game and draws the inspector windows over the board.
type Game struct {
	scheduler    *loop.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after the deferred windows rendered
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("blockfall inspector", 1280, 720)

	engine := tetris.NewEngine(tetris.DefaultConfig(), tetris.NewBagSource(0), nil)
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.GravitySystem{})
	scheduler.Register(debugui.NewDebugUI(scheduler, engine))
	scheduler.Mailbox().Submit(loop.Command{Op: loop.OpStart})

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
