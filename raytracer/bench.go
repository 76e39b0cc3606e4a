package raytracer

import (
	"fmt"
	"time"
)

// BenchmarkResult summarizes timing for Render vs RenderSequential over a
// fixed number of frames, condensed from the teacher's benchmark.go /
// profiling.go (BenchmarkResult/Profiler) down to the one comparison this
// ray tracer's concurrency model (5. Concurrency & Resource Model) cares
// about: does the parallel dispatch actually pay for itself, and do the two
// paths agree (spec §8 scenario 6).
type BenchmarkResult struct {
	Frames                int
	ParallelTotal         time.Duration
	SequentialTotal       time.Duration
	Speedup               float64
	FramebuffersIdentical bool
}

// String renders the result as a short single-line report, in the same
// plain fmt.Sprintf style the teacher's Profiler.GetAverageStats uses
// rather than a templating engine.
func (r BenchmarkResult) String() string {
	return fmt.Sprintf(
		"frames=%d parallel=%v sequential=%v speedup=%.2fx identical=%v",
		r.Frames, r.ParallelTotal, r.SequentialTotal, r.Speedup, r.FramebuffersIdentical)
}

// RunBenchmark renders frames frames of scene through renderer using both
// Render (parallel) and RenderSequential, reporting their relative cost and
// whether they produced byte-identical framebuffers — the deterministic
// parallel/sequential equivalence spec §8 scenario 6 requires.
func RunBenchmark(scene *Scene, renderer *Renderer, frames int) BenchmarkResult {
	renderer.SetScene(scene)

	parallelStart := time.Now()
	for i := 0; i < frames; i++ {
		renderer.Render()
	}
	parallelElapsed := time.Since(parallelStart)
	parallelPixels := append([]byte(nil), renderer.Buffer.Pixels...)

	sequentialStart := time.Now()
	for i := 0; i < frames; i++ {
		renderer.RenderSequential()
	}
	sequentialElapsed := time.Since(sequentialStart)

	identical := len(parallelPixels) == len(renderer.Buffer.Pixels)
	if identical {
		for i := range parallelPixels {
			if parallelPixels[i] != renderer.Buffer.Pixels[i] {
				identical = false
				break
			}
		}
	}

	speedup := 0.0
	if parallelElapsed > 0 {
		speedup = float64(sequentialElapsed) / float64(parallelElapsed)
	}

	return BenchmarkResult{
		Frames:                frames,
		ParallelTotal:         parallelElapsed,
		SequentialTotal:       sequentialElapsed,
		Speedup:               speedup,
		FramebuffersIdentical: identical,
	}
}
