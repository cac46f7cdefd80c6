package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/session"
)

const (
	ScreenWidth  = 520
	ScreenHeight = 680

	DebugScreenWidth  = 1280
	DebugScreenHeight = 800
)

type Game struct {
	Session  *session.Session
	Renderer *BoardRenderer
	Player   *audio.Player

	imguiBackend *debugui_ebiten.ImguiBackend
	muted        bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = !g.muted
		g.Player.SetMuted(g.muted)
		g.Renderer.muted = g.muted
	}

	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}

	g.Session.Frame(1.0 / float64(ebiten.TPS()))

	if g.imguiBackend != nil {
		g.imguiBackend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Session.Engine.Snapshot())

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	debug := flag.Bool("debug", false, "Show the engine inspector windows.")
	mute := flag.Bool("mute", false, "Start with sound effects off.")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] No .env file found, using environment variables")
	}

	input := &InputSystem{}
	cfg := config.Load()
	s := session.New(context.Background(), cfg, log.Default(), input)
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("[HIGHSCORE] close failed: %v", err)
		}
	}()

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("[AUDIO] initialization failed: %v", err)
	}
	defer player.Close()
	player.SetMuted(*mute)
	s.Engine.Subscribe(player.OnEvent)

	game := &Game{
		Session:  s,
		Renderer: &BoardRenderer{sweep: s.Sweep, muted: *mute},
		Player:   player,
		muted:    *mute,
	}

	if *debug {
		game.imguiBackend = debugui_ebiten.NewImguiBackend("blockfall", DebugScreenWidth, DebugScreenHeight)
		ui := debugui.NewDebugUI(s.Scheduler, s.Engine)
		input.Capture = &ui.InputState
		s.Scheduler.Register(ui)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Printf("[ENGINE] %v", err)
	}
}
