// Package app wires the window, renderer and scene into the running viewer.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cowviewer/internal/config"
	"github.com/Faultbox/cowviewer/internal/engine/debug"
	"github.com/Faultbox/cowviewer/internal/engine/frame"
	"github.com/Faultbox/cowviewer/internal/engine/input"
	"github.com/Faultbox/cowviewer/internal/engine/renderer"
	"github.com/Faultbox/cowviewer/internal/engine/window"
	"github.com/Faultbox/cowviewer/internal/logger"
	"github.com/Faultbox/cowviewer/internal/scene"
)

// Title is the window title.
const Title = "Cow Viewer"

// ErrDisplay marks failures to get a window or GL context. The caller
// should tell the user with a dialog since there is nothing to draw into.
var ErrDisplay = errors.New("display unavailable")

// App is the running viewer.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	state      *scene.State
	controller *scene.Controller
	screenshot *debug.ScreenshotCapture

	loop        *frame.Loop
	captureNext bool
	shownFPS    float64
}

// New loads assets, opens the window and uploads the scene.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		cfg:        cfg,
		log:        logger.Named("app"),
		input:      input.New(),
		screenshot: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "cow"),
	}

	desc, err := BuildDescription(cfg.Scene)
	if err != nil {
		return nil, err
	}

	loaded, err := LoadAssets(ctx, cfg.Assets)
	if err != nil {
		return nil, err
	}

	meshes, err := BuildMeshes(loaded.Model, desc)
	if err != nil {
		return nil, err
	}
	size := meshes.Model.Bounds().Size()
	a.log.Info("model built",
		zap.String("name", loaded.Model.Name),
		zap.Int("vertices", meshes.Model.VertexCount()),
		zap.Float32s("size", size[:]),
	)

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDisplay, err)
	}

	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("%w: %w", ErrDisplay, err)
	}

	// A broken shader leaves a running window that only clears.
	if err := a.renderer.LoadProgram(loaded.Shaders.Vertex, loaded.Shaders.Fragment); err != nil {
		a.log.Warn("continuing without a shader program")
	}

	if err := a.renderer.Upload(meshes); err != nil {
		a.Close()
		return nil, fmt.Errorf("uploading meshes: %w", err)
	}

	a.state = scene.NewState(desc)
	a.controller = scene.NewController(a.state)

	a.log.Info("viewer initialized",
		zap.String("scene", desc.Name),
		zap.Bool("shaded", a.renderer.HasProgram()),
		zap.Bool("point_light", desc.PointLight != nil),
		zap.Bool("spotlight", desc.Spotlight != nil),
	)
	return a, nil
}

// Run drives frames until the window closes or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.loop = frame.NewLoop(frame.SystemClock{}, a.cfg.Graphics.FPSLimit)
	err := a.loop.Run(ctx, a.step)
	a.log.Info("frame loop stopped", zap.Uint64("frames", a.loop.Frames()))
	return err
}

func (a *App) step(now time.Time) (bool, error) {
	if a.input.Update() {
		return false, nil
	}

	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.PixelSize(e.Width, e.Height))
			continue
		case input.EventKeyDown:
			switch e.Keycode {
			case sdl.K_ESCAPE:
				return false, nil
			case sdl.K_F12:
				a.captureNext = true
				continue
			}
		}
		input.Apply(e, a.controller)
	}

	a.state.Advance(now)

	w, h := a.renderer.Size()
	f := scene.Compose(a.state, w, h)

	a.renderer.Begin()
	a.renderer.Draw(f)
	if a.captureNext {
		a.captureNext = false
		a.capture()
	}
	a.renderer.End()
	a.window.SwapBuffers()

	if a.cfg.Debug.ShowFPS {
		a.showFPS()
	}
	return true, nil
}

// capture reads the frame just drawn; a failed screenshot is not fatal.
func (a *App) capture() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// showFPS retitles the window whenever the loop publishes a new rate.
func (a *App) showFPS() {
	fps := a.loop.FPS()
	if fps == 0 || fps == a.shownFPS {
		return
	}
	a.shownFPS = fps
	a.window.SetTitle(fmt.Sprintf("%s - %.0f FPS - spin %.0f°/s", Title, fps, a.state.Spin.AngularSpeed))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
