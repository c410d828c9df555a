package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cowviewer/internal/scene"
)

// SceneKey maps a keycode to the scene key it drives.
func SceneKey(k sdl.Keycode) scene.Key {
	switch k {
	case sdl.K_LEFT:
		return scene.KeyLeft
	case sdl.K_RIGHT:
		return scene.KeyRight
	case sdl.K_r:
		return scene.KeyReset
	case sdl.K_p:
		return scene.KeyLightOrbit
	case sdl.K_s:
		return scene.KeySpotPan
	case sdl.K_SPACE:
		return scene.KeyFlick
	}
	return scene.KeyUnknown
}

// SceneButton maps an SDL mouse button to a scene pointer button.
func SceneButton(b uint8) scene.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return scene.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return scene.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return scene.ButtonRight
	}
	return scene.ButtonNone
}

// Apply feeds one event to the controller and reports whether it changed
// the scene. Toggle keys ignore auto-repeat so holding 'p' does not flicker.
func Apply(e Event, c *scene.Controller) bool {
	switch e.Type {
	case EventMouseDown:
		c.PointerDown(SceneButton(e.Button), e.MouseX, e.MouseY)
		return c.Dragging() != scene.ButtonNone
	case EventMouseMove:
		if c.Dragging() == scene.ButtonNone {
			return false
		}
		c.PointerMove(e.MouseX, e.MouseY)
		return true
	case EventMouseUp:
		c.PointerUp(SceneButton(e.Button))
		return false
	case EventMouseWheel:
		c.Scroll(e.WheelY)
		return true
	case EventKeyDown:
		k := SceneKey(e.Keycode)
		if e.Repeat && k != scene.KeyLeft && k != scene.KeyRight {
			return false
		}
		return c.KeyDown(k)
	}
	return false
}
