package raytracer

import (
	"runtime"
	"sync"
)

// LightingMode selects which term of the shading loop contributes to a
// pixel; F3 cycles through these in the interactive demo.
type LightingMode int

const (
	LightingObservedArea LightingMode = iota
	LightingRadiance
	LightingBRDF
	LightingCombined
)

// Cycle returns the next mode in the ObservedArea -> Radiance ->
// BRDF -> Combined -> ObservedArea cycle.
func (m LightingMode) Cycle() LightingMode {
	return (m + 1) % 4
}

// String names the mode, used for the terminal backend's HUD line; the
// names are the same tags ParseLightingMode accepts.
func (m LightingMode) String() string {
	switch m {
	case LightingObservedArea:
		return "observed-area"
	case LightingRadiance:
		return "radiance"
	case LightingBRDF:
		return "brdf"
	case LightingCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// ParseLightingMode parses the CLI's -lighting-mode flag value.
func ParseLightingMode(tag string) (LightingMode, bool) {
	switch tag {
	case "observed-area":
		return LightingObservedArea, true
	case "radiance":
		return LightingRadiance, true
	case "brdf":
		return LightingBRDF, true
	case "combined":
		return LightingCombined, true
	default:
		return 0, false
	}
}

// Renderer owns a framebuffer and the per-frame pixel dispatch. SetScene
// caches pointers into the scene plus the camera-derived constants that
// only change when the scene (or its camera) is swapped in.
type Renderer struct {
	Width, Height int
	Buffer        *Framebuffer
	WorkerCount   int

	scene    *Scene
	camera   *Camera
	fovScale float64
	aspect   float64

	lightingMode   LightingMode
	shadowsEnabled bool

	Logger Logger
}

// NewRenderer allocates a renderer with its own framebuffer. workerCount<=0
// defaults to GOMAXPROCS.
func NewRenderer(width, height, workerCount int) *Renderer {
	if workerCount <= 0 {
		workerCount = runtime.GOMAXPROCS(0)
	}
	return &Renderer{
		Width:          width,
		Height:         height,
		Buffer:         NewFramebuffer(width, height),
		WorkerCount:    workerCount,
		shadowsEnabled: true,
		Logger:         nopLogger{},
	}
}

// SetScene binds the renderer to s, caching its camera and the fovScale/
// aspect constants derived from the camera's current FOV. Per spec this
// cache is stale if FOV changes without a subsequent SetScene call;
// Render always recomputes the camera's basis vectors but not fovScale.
func (r *Renderer) SetScene(s *Scene) {
	r.scene = s
	r.camera = s.Camera
	r.fovScale = r.camera.fovScale()
	r.aspect = float64(r.Width) / float64(r.Height)
}

// CycleLightingMode advances to the next lighting mode.
func (r *Renderer) CycleLightingMode() {
	r.lightingMode = r.lightingMode.Cycle()
}

// SetLightingMode jumps directly to mode, used by the CLI's -lighting-mode
// flag (F3 in the interactive backends still cycles one step at a time).
func (r *Renderer) SetLightingMode(mode LightingMode) {
	r.lightingMode = mode
}

// ToggleShadows flips whether shadow rays are cast.
func (r *Renderer) ToggleShadows() {
	r.shadowsEnabled = !r.shadowsEnabled
}

// LightingMode reports the active lighting mode.
func (r *Renderer) LightingMode() LightingMode {
	return r.lightingMode
}

// ShadowsEnabled reports whether shadow rays are currently cast.
func (r *Renderer) ShadowsEnabled() bool {
	return r.shadowsEnabled
}

// primaryRay builds the ray through the centre of pixel (x,y), following the
// camera's cameraToWorld basis (see 4.7 angle conventions).
func (r *Renderer) primaryRay(x, y int) Ray {
	worldX := (2*((float64(x)+0.5)/float64(r.Width)) - 1) * r.aspect * r.fovScale
	worldY := (1 - 2*((float64(y)+0.5)/float64(r.Height))) * r.fovScale
	direction := r.camera.CameraToWorld.TransformVector(Vec3{X: worldX, Y: worldY, Z: 1}).Normalized()
	return NewPrimaryRay(r.camera.Origin, direction)
}

// shadePixel casts the primary ray for (x,y) and evaluates the full
// shading loop (shadow rays, lighting-mode dispatch, shadow dimming).
func (r *Renderer) shadePixel(x, y int) ColorRGB {
	ray := r.primaryRay(x, y)
	hit := r.scene.ClosestHit(ray)
	if !hit.DidHit {
		return Black
	}
	return r.shadeHit(hit, ray.Direction.Negate())
}

// shadeHit evaluates the shading loop (shadow rays, lighting-mode dispatch,
// shadow dimming) for an already-resolved hit, viewed from viewDir
// (pointing back toward the viewer). Split out from shadePixel so it can be
// exercised directly in tests without precise camera aiming.
func (r *Renderer) shadeHit(hit HitRecord, viewDir Vec3) ColorRGB {
	material := r.scene.Materials[hit.MaterialIndex]

	accumulated := Black
	for _, light := range r.scene.Lights {
		toLight, distance := light.DirectionToLight(hit.Origin)
		l := toLight.Normalized()
		observedArea := hit.Normal.Dot(l)

		shadowRay := Ray{Origin: hit.Origin, Direction: l, TMin: 0.01, TMax: distance}

		if r.shadowsEnabled && r.scene.AnyHit(shadowRay) {
			accumulated = accumulated.Scale(0.5)
			continue
		}

		switch r.lightingMode {
		case LightingObservedArea:
			if observedArea > 0 {
				accumulated = accumulated.Add(White.Scale(observedArea))
			}
		case LightingRadiance:
			accumulated = accumulated.Add(light.Radiance(hit.Origin))
		case LightingBRDF:
			accumulated = accumulated.Add(material.Shade(hit, l, viewDir))
		case LightingCombined:
			if observedArea > 0 {
				accumulated = accumulated.Add(light.Radiance(hit.Origin).Mul(material.Shade(hit, l, viewDir)).Scale(observedArea))
			}
		}
	}
	return accumulated
}

// Render dispatches one task per pixel row across WorkerCount goroutines
// draining a shared row-index channel, and blocks until every row has been
// written. Per-pixel writes are disjoint so no synchronization is needed
// beyond the WaitGroup join.
func (r *Renderer) Render() {
	r.camera.CalculateCameraToWorld()

	rows := make(chan int, r.Height)
	for y := 0; y < r.Height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < r.WorkerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(y)
			}
		}()
	}
	wg.Wait()
}

// RenderSequential performs the identical per-pixel shading as Render, with
// no goroutines, row by row. Exists to support the parallel/sequential
// determinism test (spec scenario 6): the two must produce bit-identical
// framebuffers for the same scene.
func (r *Renderer) RenderSequential() {
	r.camera.CalculateCameraToWorld()
	for y := 0; y < r.Height; y++ {
		r.renderRow(y)
	}
}

func (r *Renderer) renderRow(y int) {
	for x := 0; x < r.Width; x++ {
		r.Buffer.Set(x, y, r.shadePixel(x, y))
	}
}

// SaveBufferToImage writes the current framebuffer to path as a BMP,
// returning false on failure instead of panicking.
func (r *Renderer) SaveBufferToImage(path string) bool {
	ok := r.Buffer.SaveToImage(path)
	if !ok {
		r.Logger.Errorf("failed to save framebuffer to %s", path)
	}
	return ok
}
