package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/session"
)

type Game struct {
	screen   tcell.Screen
	session  *session.Session
	player   *audio.Player
	renderer *renderer
	muted    bool
}

func NewGame(s *session.Session, mute bool) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	g := &Game{
		screen:   screen,
		session:  s,
		player:   audio.NewPlayer(),
		renderer: &renderer{screen: screen, sweep: s.Sweep},
		muted:    mute,
	}

	// The game runs without sound when no audio device is available.
	if err := g.player.Init(); err != nil {
		log.Printf("[AUDIO] initialization failed: %v", err)
	}
	g.player.SetMuted(mute)
	g.renderer.muted = mute
	s.Engine.Subscribe(g.player.OnEvent)

	return g, nil
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if isMuteToggle(ev) {
			g.muted = !g.muted
			g.player.SetMuted(g.muted)
			g.renderer.muted = g.muted
			return true
		}
		g.session.Do(keyAction(ev))

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

func (g *Game) run(frameInterval time.Duration) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	lastTime := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now

			g.session.Frame(dt)
			g.renderer.draw(g.session.Engine.Snapshot())
		}
	}
}

func (g *Game) cleanup() {
	g.player.Close()
	g.screen.Fini()
}

func main() {
	fps := flag.Int("fps", 60, "Frames per second.")
	mute := flag.Bool("mute", false, "Start with sound effects off.")
	logPath := flag.String("log", "blockfall-term.log", "File receiving log output while the terminal is in use.")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	if err := godotenv.Load(); err != nil {
		log.Println("[CONFIG] No .env file found, using environment variables")
	}

	cfg := config.Load()
	s := session.New(context.Background(), cfg, log.Default())
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("[HIGHSCORE] close failed: %v", err)
		}
	}()

	game, err := NewGame(s, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run(time.Second / time.Duration(max(*fps, 1)))
}
