package scene

// Input scaling.
const (
	DragTranslateScale = 0.01 // units per pixel
	DragRotateScale    = 0.5  // degrees per pixel
	WheelStep          = 0.1  // units per wheel event
	KeyRotateStep      = 5.0  // degrees per arrow press
)

// Button is a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Key is a key the scene reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyReset      // 'r'
	KeyLightOrbit // 'p'
	KeySpotPan    // 's'
	KeyFlick      // space
)

// Controller turns pointer and key input into state changes. A drag starts
// on button press and lasts until that button is released.
type Controller struct {
	state *State

	drag         Button
	lastX, lastY int
}

// NewController creates a controller driving the given state.
func NewController(s *State) *Controller {
	return &Controller{state: s}
}

// Dragging returns the button of the drag in progress, if any.
func (c *Controller) Dragging() Button {
	return c.drag
}

// PointerDown starts a drag with the left (translate) or right (rotate)
// button. Other buttons are ignored.
func (c *Controller) PointerDown(b Button, x, y int) {
	if b != ButtonLeft && b != ButtonRight {
		return
	}
	c.drag = b
	c.lastX, c.lastY = x, y
}

// PointerMove applies the movement since the last pointer position to the
// drag in progress.
func (c *Controller) PointerMove(x, y int) {
	if c.drag == ButtonNone {
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)
	c.lastX, c.lastY = x, y

	t := &c.state.Transform
	switch c.drag {
	case ButtonLeft:
		t.TranslationX += dx * DragTranslateScale
		t.TranslationY -= dy * DragTranslateScale
	case ButtonRight:
		t.RotationY += dx * DragRotateScale
		t.RotationX += dy * DragRotateScale
	}
}

// PointerUp ends the drag started by b.
func (c *Controller) PointerUp(b Button) {
	if b == c.drag {
		c.drag = ButtonNone
	}
}

// Scroll moves the model along Z: scrolling up (positive) pulls it away,
// scrolling down pushes it closer. The magnitude is ignored.
func (c *Controller) Scroll(dy int) {
	switch {
	case dy > 0:
		c.state.Transform.TranslationZ -= WheelStep
	case dy < 0:
		c.state.Transform.TranslationZ += WheelStep
	}
}

// KeyDown applies a key press. It reports whether the key was handled.
func (c *Controller) KeyDown(k Key) bool {
	s := c.state
	switch k {
	case KeyLeft:
		s.Transform.RotationZ += KeyRotateStep
	case KeyRight:
		s.Transform.RotationZ -= KeyRotateStep
	case KeyReset:
		s.Transform.Reset()
	case KeyLightOrbit:
		if s.Desc.PointLight == nil {
			return false
		}
		s.ToggleLightOrbit()
	case KeySpotPan:
		if s.Desc.Spotlight == nil {
			return false
		}
		s.ToggleSpotPan()
	case KeyFlick:
		s.Flick(s.Desc.Spin.FlickSpeed)
	default:
		return false
	}
	return true
}
