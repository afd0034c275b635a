package input

import (
	cfg "github.com/automoto/motioncore/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll fills out with the actions the given player holds this frame. Player 0
// reads the keyboard and every standard gamepad merged together; player n > 0
// reads only the n-th connected gamepad.
func Poll(playerIndex int, out *[cfg.ActionCount]bool) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	pads := gamepadIDs
	if playerIndex > 0 {
		if playerIndex >= len(gamepadIDs) {
			return
		}
		pads = gamepadIDs[playerIndex : playerIndex+1]
	}

	for actionID, binding := range Default.Bindings {
		if playerIndex == 0 {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					out[actionID] = true
				}
			}
		}

		for _, gpID := range pads {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					out[actionID] = true
				}
			}
		}
	}

	pollAnalogStick(pads, out)
}

// pollAnalogStick merges the left stick into the directional actions.
func pollAnalogStick(pads []ebiten.GamepadID, out *[cfg.ActionCount]bool) {
	deadzone := Default.AnalogDeadzone

	for _, gpID := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			out[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			out[cfg.ActionMoveRight] = true
		}
		// Stick up is negative
		if vertical < -deadzone {
			out[cfg.ActionMoveUp] = true
		}
		if vertical > deadzone {
			out[cfg.ActionMoveDown] = true
		}
	}
}

// DebugTogglePressed reports whether the debug overlay key went down this frame.
func DebugTogglePressed() bool {
	return inpututil.IsKeyJustPressed(Default.DebugToggle)
}
