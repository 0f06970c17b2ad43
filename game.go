package main

import (
	"fmt"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/ecs/system"
	"github.com/milk9111/bossfight/prefabs"
	"golang.design/x/clipboard"
)

type Game struct {
	arena   *arena.Arena
	render  *system.RenderSystem
	watcher *prefabs.Watcher
	log     *slog.Logger

	menu     *ebitenui.UI
	paused   bool
	quitting bool

	clipboardReady bool
}

func NewGame(opts arena.Options, watch bool) (*Game, error) {
	a, err := arena.Load(opts)
	if err != nil {
		return nil, err
	}

	g := &Game{
		arena:  a,
		render: system.NewRenderSystem(),
		log:    opts.Logger,
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	spec := a.Specs().Arena
	g.menu = NewPauseUI(g, int(spec.Width), int(spec.Height))

	if err := clipboard.Init(); err != nil {
		g.log.Warn("clipboard unavailable", "err", err)
	} else {
		g.clipboardReady = true
	}

	if watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			g.log.Warn("prefab hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}
	g.pollReloads()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.resetFight()
	case inpututil.IsKeyJustPressed(ebiten.KeyF6):
		g.copySnapshot()
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.paused = !g.paused
	}

	if g.paused {
		if g.menu != nil {
			g.menu.Update()
		}
		return nil
	}
	g.arena.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) resume() { g.paused = false }
func (g *Game) quit()   { g.quitting = true }

// resetFight restarts the encounter and leaves the pause menu.
func (g *Game) resetFight() {
	g.paused = false
	if err := g.arena.Reset(); err != nil {
		g.setStatus("reset failed: %v", err)
		return
	}
	g.setStatus("")
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.arena.Reload(change); err != nil {
				g.log.Error("reload", "file", change.Name, "err", err)
				g.setStatus("reload %s failed: %v", change.Name, err)
				continue
			}
			g.log.Info("reloaded", "file", change.Name)
			g.setStatus("reloaded %s", change.Name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("prefab watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) copySnapshot() {
	out, err := g.arena.Snapshot().YAML()
	if err != nil {
		g.setStatus("snapshot failed: %v", err)
		return
	}
	if !g.clipboardReady {
		g.log.Info("encounter snapshot", "yaml", string(out))
		g.setStatus("snapshot logged (no clipboard)")
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	g.setStatus("snapshot copied to clipboard")
}

func (g *Game) setStatus(format string, args ...any) {
	if format == "" {
		g.render.Status = ""
		return
	}
	g.render.Status = fmt.Sprintf(format, args...)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.arena.World, screen)
	if g.paused && g.menu != nil {
		g.menu.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	spec := g.arena.Specs().Arena
	return int(spec.Width), int(spec.Height)
}
