package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// InputSystem reads the keyboard, mouse and first gamepad into the Input of
// every player not on autopilot.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	var move cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y++
	}
	fire := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	cx, cy := ebiten.CursorPosition()
	aim := cp.Vector{X: float64(cx), Y: float64(cy)}
	stickAim := cp.Vector{}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			move = cp.Vector{X: lx, Y: ly}
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			stickAim = cp.Vector{X: rx, Y: ry}
			fire = true
		}
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, input *component.Input, pb *component.PhysicsBody) {
			if ecs.Has(w, e, component.AutoPilotComponent.Kind()) {
				return
			}
			input.Move = move
			input.Fire = fire
			input.Aim = aim
			if stickAim != (cp.Vector{}) {
				input.Aim = pb.Body.Position().Add(stickAim.Mult(100))
			}
		})
}
