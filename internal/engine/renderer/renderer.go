// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cowviewer/internal/engine/gpu"
	"github.com/Faultbox/cowviewer/internal/engine/lighting"
	"github.com/Faultbox/cowviewer/internal/engine/mesh"
	"github.com/Faultbox/cowviewer/internal/engine/shader"
	"github.com/Faultbox/cowviewer/internal/logger"
	"github.com/Faultbox/cowviewer/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// DefaultClearColor is the dark blue-gray background.
var DefaultClearColor = [4]float32{0.1, 0.1, 0.15, 1.0}

// Meshes are the CPU-side buffers the renderer uploads once.
// Cube and Cone are nil when the scene has no such light.
type Meshes struct {
	Model *mesh.Buffer
	Cube  *mesh.Buffer
	Cone  *mesh.Buffer
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	// nil until a program links; nothing is drawn without one
	program *shader.Program

	model *gpu.VertexArray
	cube  *gpu.VertexArray
	cone  *gpu.VertexArray
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	if c == ([4]float32{}) {
		c = DefaultClearColor
	}
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// LoadProgram compiles and links the scene shaders, replacing any previous
// program. On failure the previous program is dropped too, the info log is
// logged and the error returned; the renderer keeps running and only clears.
func (r *Renderer) LoadProgram(vertexSrc, fragmentSrc string) error {
	r.program.Close()
	r.program = nil

	p, err := shader.NewProgram(vertexSrc, fragmentSrc)
	if err != nil {
		r.log.Error("shader program failed, drawing disabled", zap.Error(err))
		return fmt.Errorf("building shader program: %w", err)
	}
	r.program = p
	return nil
}

// HasProgram reports whether a shader program is bound for drawing.
func (r *Renderer) HasProgram() bool {
	return r.program.Valid()
}

// Upload sends the scene meshes to the GPU.
func (r *Renderer) Upload(m Meshes) error {
	var err error
	if r.model, err = gpu.Upload("model", m.Model); err != nil {
		return err
	}
	if m.Cube != nil {
		if r.cube, err = gpu.Upload("light cube", m.Cube); err != nil {
			return err
		}
	}
	if m.Cone != nil {
		if r.cone, err = gpu.Upload("spot cone", m.Cone); err != nil {
			return err
		}
	}
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.model.Close()
	r.cube.Close()
	r.cone.Close()
	r.program.Close()
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// Draw uploads the composed uniforms and draws every object in the frame.
func (r *Renderer) Draw(f scene.Frame) {
	if !r.program.Valid() {
		return
	}
	p := r.program
	p.Use()

	uniform3(p.Uniform("uEye"), f.Eye)

	uniformBool(p.Uniform("uLightEnabled"), f.Light.Enabled)
	if f.Light.Enabled {
		uniform3(p.Uniform("uLightPos"), f.Light.Position)
		products(p, "", f.Light.Products)
	}

	uniformBool(p.Uniform("uSpotEnabled"), f.Spot.Enabled)
	if f.Spot.Enabled {
		uniform3(p.Uniform("uSpotPos"), f.Spot.Position)
		uniform3(p.Uniform("uSpotDir"), f.Spot.Direction)
		gl.Uniform1f(p.Uniform("uSpotCutoff"), f.Spot.Cutoff)
		gl.Uniform1f(p.Uniform("uSpotExponent"), f.Spot.Exponent)
		products(p, "Spot", f.Spot.Products)
	}

	r.drawObject(r.model, f.Model)
	if f.Cube != nil {
		r.drawObject(r.cube, *f.Cube)
	}
	if f.Cone != nil {
		r.drawObject(r.cone, *f.Cone)
	}
}

func (r *Renderer) drawObject(va *gpu.VertexArray, u scene.DrawUniforms) {
	if va == nil {
		return
	}
	p := r.program
	gl.UniformMatrix4fv(p.Uniform("uTransform"), 1, false, u.Transform.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, u.Model.Ptr())
	gl.UniformMatrix3fv(p.Uniform("uNormalMatrix"), 1, false, &u.Normal[0])
	uniformBool(p.Uniform("uLit"), u.Lit)
	va.Draw()
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// products uploads u<prefix>AmbientProduct and friends.
func products(p *shader.Program, prefix string, pr lighting.Products) {
	uniform4(p.Uniform("u"+prefix+"AmbientProduct"), pr.Ambient)
	uniform4(p.Uniform("u"+prefix+"DiffuseProduct"), pr.Diffuse)
	uniform4(p.Uniform("u"+prefix+"SpecularProduct"), pr.Specular)
	gl.Uniform1f(p.Uniform("u"+prefix+"Shininess"), pr.Shininess)
}

func uniform3(loc int32, v [3]float32) {
	gl.Uniform3f(loc, v[0], v[1], v[2])
}

func uniform4(loc int32, v [4]float32) {
	gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
}

func uniformBool(loc int32, b bool) {
	var i int32
	if b {
		i = 1
	}
	gl.Uniform1i(loc, i)
}
