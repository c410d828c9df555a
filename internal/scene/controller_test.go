package scene

import (
	"math"
	"testing"
)

func newTestController(b *Builder) (*State, *Controller) {
	s := NewState(b.Build())
	return s, NewController(s)
}

func TestControllerLeftDragTranslates(t *testing.T) {
	s, c := newTestController(NewBuilder("t"))

	c.PointerDown(ButtonLeft, 100, 100)
	c.PointerMove(150, 80)
	c.PointerMove(160, 90)
	c.PointerUp(ButtonLeft)
	c.PointerMove(500, 500) // ignored after release

	if !near(s.Transform.TranslationX, 0.6) {
		t.Errorf("TranslationX = %f, want 0.6", s.Transform.TranslationX)
	}
	if !near(s.Transform.TranslationY, 0.1) {
		t.Errorf("TranslationY = %f, want 0.1", s.Transform.TranslationY)
	}
	if c.Dragging() != ButtonNone {
		t.Errorf("drag still active: %v", c.Dragging())
	}
}

func TestControllerRightDragRotates(t *testing.T) {
	s, c := newTestController(NewBuilder("t"))

	c.PointerDown(ButtonRight, 0, 0)
	c.PointerMove(10, -4)
	c.PointerUp(ButtonRight)

	if !near(s.Transform.RotationY, 5) {
		t.Errorf("RotationY = %f, want 5", s.Transform.RotationY)
	}
	if !near(s.Transform.RotationX, -2) {
		t.Errorf("RotationX = %f, want -2", s.Transform.RotationX)
	}
}

func TestControllerIgnoresMiddleButton(t *testing.T) {
	s, c := newTestController(NewBuilder("t"))
	c.PointerDown(ButtonMiddle, 0, 0)
	c.PointerMove(100, 100)
	if s.Transform != (Transform{}) {
		t.Errorf("middle drag changed transform: %+v", s.Transform)
	}
}

func TestControllerReleaseOtherButtonKeepsDrag(t *testing.T) {
	_, c := newTestController(NewBuilder("t"))
	c.PointerDown(ButtonLeft, 0, 0)
	c.PointerUp(ButtonRight)
	if c.Dragging() != ButtonLeft {
		t.Errorf("left drag ended by right release")
	}
}

func TestControllerScroll(t *testing.T) {
	s, c := newTestController(NewBuilder("t"))
	c.Scroll(1)
	c.Scroll(3)
	c.Scroll(-1)
	c.Scroll(0)
	if !near(s.Transform.TranslationZ, -0.1) {
		t.Errorf("TranslationZ = %f, want -0.1", s.Transform.TranslationZ)
	}
}

func TestControllerArrowKeys(t *testing.T) {
	s, c := newTestController(NewBuilder("t"))
	c.KeyDown(KeyLeft)
	c.KeyDown(KeyLeft)
	c.KeyDown(KeyRight)
	if s.Transform.RotationZ != 5 {
		t.Errorf("RotationZ = %f, want 5", s.Transform.RotationZ)
	}
}

func TestControllerResetZeroesTransform(t *testing.T) {
	s, c := newTestController(NewBuilder("t"))
	s.Transform = Transform{
		TranslationX: 1.5, TranslationY: -3, TranslationZ: 42,
		RotationX: 90, RotationY: -720, RotationZ: 5,
	}
	s.Spin.Angle = 123

	if !c.KeyDown(KeyReset) {
		t.Fatal("reset key not handled")
	}
	if s.Transform != (Transform{}) {
		t.Errorf("transform after reset = %+v, want all zero", s.Transform)
	}
	if s.Spin.Angle != 123 {
		t.Errorf("reset should not touch the spin, angle = %f", s.Spin.Angle)
	}
}

func TestControllerToggles(t *testing.T) {
	s, c := newTestController(NewBuilder("t").
		WithPointLight(DefaultPointLight()).
		WithSpotlight(DefaultSpotlight()))

	if !s.Light.Enabled || !s.Spot.Enabled {
		t.Fatal("default lights should start moving")
	}
	c.KeyDown(KeyLightOrbit)
	c.KeyDown(KeySpotPan)
	if s.Light.Enabled || s.Spot.Enabled {
		t.Error("toggle keys should stop the motion")
	}
	c.KeyDown(KeyLightOrbit)
	if !s.Light.Enabled {
		t.Error("second press should restart the orbit")
	}
}

func TestControllerTogglesWithoutLights(t *testing.T) {
	_, c := newTestController(NewBuilder("t"))
	if c.KeyDown(KeyLightOrbit) {
		t.Error("light toggle handled in a scene without a light")
	}
	if c.KeyDown(KeySpotPan) {
		t.Error("spot toggle handled in a scene without a spotlight")
	}
	if c.KeyDown(KeyUnknown) {
		t.Error("unknown key reported as handled")
	}
}

func TestControllerFlick(t *testing.T) {
	s, c := newTestController(NewBuilder("t"))
	s.Spin.AngularSpeed = 0
	c.KeyDown(KeyFlick)
	if s.Spin.AngularSpeed != DefaultSpin().FlickSpeed {
		t.Errorf("speed after flick = %f", s.Spin.AngularSpeed)
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}
