package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cowviewer/internal/scene"
)

func newController(t *testing.T, preset string) (*scene.State, *scene.Controller) {
	t.Helper()
	b, err := scene.Preset(preset)
	if err != nil {
		t.Fatal(err)
	}
	s := scene.NewState(b.Build())
	return s, scene.NewController(s)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   sdl.Event
		want Event
		ok   bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{
			"key down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_r, Scancode: sdl.SCANCODE_R}},
			Event{Type: EventKeyDown, Keycode: sdl.K_r},
			true,
		},
		{
			"key repeat",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_LEFT}},
			Event{Type: EventKeyDown, Keycode: sdl.K_LEFT, Repeat: true},
			true,
		},
		{
			"button",
			&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, X: 3, Y: 4},
			Event{Type: EventMouseDown, Button: sdl.BUTTON_RIGHT, MouseX: 3, MouseY: 4},
			true,
		},
		{"wheel up", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1}, Event{Type: EventMouseWheel, WheelY: 1}, true},
		{
			"wheel flipped",
			&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			Event{Type: EventMouseWheel, WheelY: -1},
			true,
		},
		{"horizontal wheel", &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 1}, Event{}, false},
		{"window moved", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convert(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSceneKey(t *testing.T) {
	tests := []struct {
		in   sdl.Keycode
		want scene.Key
	}{
		{sdl.K_LEFT, scene.KeyLeft},
		{sdl.K_RIGHT, scene.KeyRight},
		{sdl.K_r, scene.KeyReset},
		{sdl.K_p, scene.KeyLightOrbit},
		{sdl.K_s, scene.KeySpotPan},
		{sdl.K_SPACE, scene.KeyFlick},
		{sdl.K_q, scene.KeyUnknown},
	}
	for _, tt := range tests {
		if got := SceneKey(tt.in); got != tt.want {
			t.Errorf("SceneKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApplyDragAndWheel(t *testing.T) {
	s, c := newController(t, scene.PresetPlain)

	Apply(Event{Type: EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 100, MouseY: 100}, c)
	Apply(Event{Type: EventMouseMove, MouseX: 150, MouseY: 80}, c)
	Apply(Event{Type: EventMouseUp, Button: sdl.BUTTON_LEFT}, c)

	if d := s.Transform.TranslationX - 0.5; d > 1e-6 || d < -1e-6 {
		t.Errorf("tx = %v, want 0.5", s.Transform.TranslationX)
	}
	if d := s.Transform.TranslationY - 0.2; d > 1e-6 || d < -1e-6 {
		t.Errorf("ty = %v, want 0.2", s.Transform.TranslationY)
	}

	if Apply(Event{Type: EventMouseMove, MouseX: 0, MouseY: 0}, c) {
		t.Error("move without a drag should not change the scene")
	}

	Apply(Event{Type: EventMouseWheel, WheelY: 1}, c)
	if d := s.Transform.TranslationZ + 0.1; d > 1e-6 || d < -1e-6 {
		t.Errorf("tz = %v, want -0.1", s.Transform.TranslationZ)
	}
}

func TestApplyKeys(t *testing.T) {
	s, c := newController(t, scene.PresetLightCube)

	if !Apply(Event{Type: EventKeyDown, Keycode: sdl.K_p}, c) {
		t.Fatal("'p' not handled")
	}
	if s.Light.Enabled {
		t.Error("orbit still enabled after 'p'")
	}

	// a held toggle key must not re-toggle
	if Apply(Event{Type: EventKeyDown, Keycode: sdl.K_p, Repeat: true}, c) {
		t.Error("repeated 'p' handled")
	}
	if s.Light.Enabled {
		t.Error("repeat re-enabled orbit")
	}

	// arrows do repeat
	Apply(Event{Type: EventKeyDown, Keycode: sdl.K_LEFT}, c)
	Apply(Event{Type: EventKeyDown, Keycode: sdl.K_LEFT, Repeat: true}, c)
	if s.Transform.RotationZ != 10 {
		t.Errorf("rz = %v, want 10", s.Transform.RotationZ)
	}

	// no spotlight in this preset
	if Apply(Event{Type: EventKeyDown, Keycode: sdl.K_s}, c) {
		t.Error("'s' handled without a spotlight")
	}
}
