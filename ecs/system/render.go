package system

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/combat"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem debug-draws the arena: regions, telegraphs, bodies and a HUD.
type RenderSystem struct {
	// Status is an extra HUD line set by the game, such as reload errors.
	Status string
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}
	screen.Fill(colornames.Black)

	if pw := w.PhysicsWorld(); pw != nil {
		b := pw.Bounds()
		vector.StrokeRect(screen, float32(b.L), float32(b.B), float32(b.R-b.L), float32(b.T-b.B), 2, colornames.Dimgray, false)
	}

	ecs.ForEach(w, component.ArenaNodeComponent.Kind(), func(_ ecs.Entity, n *component.ArenaNode) {
		if !n.Active {
			return
		}
		b := n.Bounds
		vector.FillRect(screen, float32(b.L), float32(b.B), float32(b.R-b.L), float32(b.T-b.B), color.RGBA{R: 40, G: 24, B: 48, A: 80}, false)
	})

	ecs.ForEach(w, component.TelegraphComponent.Kind(), func(_ ecs.Entity, t *component.Telegraph) {
		end := t.Origin.Add(t.Direction.Mult(t.Length))
		width := max(t.Width, 2)
		vector.StrokeLine(screen, float32(t.Origin.X), float32(t.Origin.Y), float32(end.X), float32(end.Y), float32(width), withAlpha(t.Color, t.Alpha), true)
	})

	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		var tint color.Color = colornames.White
		if t, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok && t.Color != nil {
			tint = t.Color
		}
		if b, ok := ecs.Get(w, e, component.BossComponent.Kind()); ok && b.Encounter.State() == boss.ChargeStunned {
			tint = colornames.Gray
		}
		if c, ok := ecs.Get(w, e, component.CombatantComponent.Kind()); ok && c.Invulnerable > 0 {
			tint = withAlpha(tint, 0.4)
		}
		pos := pb.Body.Position()
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(max(pb.Radius, 2)), tint, true)
	})

	ebitenutil.DebugPrintAt(screen, r.hud(w), 8, 8)
}

func (r *RenderSystem) hud(w *ecs.World) string {
	var sb strings.Builder
	ecs.ForEach(w, component.BossComponent.Kind(), func(_ ecs.Entity, b *component.Boss) {
		enc := b.Encounter
		name := enc.Config().DisplayName
		if name == "" {
			name = enc.Config().ID
		}
		fmt.Fprintf(&sb, "%s  phase %d/%d  %s  hp %.0f/%.0f\n", name, enc.Phase(), enc.MaxPhases(), enc.State(), enc.Health(), enc.MaxHealth())
	})
	if ecs.Count(w, component.PlayerComponent.Kind()) > 0 {
		ecs.ForEach2(w, component.PlayerComponent.Kind(), component.CombatantComponent.Kind(), func(_ ecs.Entity, _ *component.Player, c *combat.Combatant) {
			fmt.Fprintf(&sb, "player hp %.0f/%.0f\n", c.Health, c.MaxHealth)
		})
	} else {
		sb.WriteString("player down - F5 to reset\n")
	}
	if r.Status != "" {
		sb.WriteString(r.Status)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		c = colornames.White
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(min(max(alpha, 0), 1) * 255)
	return nrgba
}
