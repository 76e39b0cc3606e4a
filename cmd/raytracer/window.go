package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mirstar13/gorayt/raytracer"
)

// quadVertexShaderSource and quadFragmentShaderSource blit a single RGB
// texture across the whole viewport as two triangles, the minimal slice of
// the teacher's createTextureShaderProgram (renderer_opengl.go) needed to
// present a CPU-computed pixel buffer rather than rasterize GL geometry.
const quadVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
out vec2 TexCoord;
void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aUV;
}
` + "\x00"

const quadFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;
uniform sampler2D frameTexture;
void main() {
    FragColor = texture(frameTexture, TexCoord);
}
` + "\x00"

// runWindow opens a GLFW/OpenGL window and drives the render loop described
// in spec.md's frame loop (2. System Overview): poll input, Scene.Update,
// Renderer.Render, present, repeat. Grounded on the teacher's
// renderer_opengl.go (window/shader setup) and input_manager.go's
// GLFWInputManager (key polling contract), generalized from a rasterizer's
// geometry pass to a single textured quad that blits the ray tracer's
// framebuffer.
func runWindow(scene *raytracer.Scene, renderer *raytracer.Renderer, cfg *Config) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, "gorayt", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init opengl: %w", err)
	}

	program, err := linkProgram(quadVertexShaderSource, quadFragmentShaderSource)
	if err != nil {
		return fmt.Errorf("link quad shader: %w", err)
	}
	defer gl.DeleteProgram(program)

	vao, texture := newScreenQuad(cfg.Width, cfg.Height)
	defer gl.DeleteVertexArrays(1, &vao)
	defer gl.DeleteTextures(1, &texture)

	gl.UseProgram(program)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frameTexture\x00")), 0)

	yawSpring := harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0)
	pitchSpring := harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0)
	var yawSmoothed, yawVelocity, pitchSmoothed, pitchVelocity float64

	lastX, lastY := window.GetCursorPos()
	lastFrame := time.Now()
	var f2Was, f3Was, f6Was, xWas bool

	for !window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		moveSpeed := 3.0 * dt
		forward := scene.Camera.Forward
		right := scene.Camera.Right
		if window.GetKey(glfw.KeyW) == glfw.Press {
			scene.Camera.Origin = scene.Camera.Origin.Add(forward.Scale(moveSpeed))
		}
		if window.GetKey(glfw.KeyS) == glfw.Press {
			scene.Camera.Origin = scene.Camera.Origin.Sub(forward.Scale(moveSpeed))
		}
		if window.GetKey(glfw.KeyA) == glfw.Press {
			scene.Camera.Origin = scene.Camera.Origin.Sub(right.Scale(moveSpeed))
		}
		if window.GetKey(glfw.KeyD) == glfw.Press {
			scene.Camera.Origin = scene.Camera.Origin.Add(right.Scale(moveSpeed))
		}

		x, y := window.GetCursorPos()
		dx, dy := x-lastX, y-lastY
		lastX, lastY = x, y
		if window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
			prevYaw, prevPitch := yawSmoothed, pitchSmoothed
			yawSmoothed, yawVelocity = yawSpring.Update(yawSmoothed, yawVelocity, dx*0.003)
			pitchSmoothed, pitchVelocity = pitchSpring.Update(pitchSmoothed, pitchVelocity, dy*0.003)
			scene.Camera.Rotate(yawSmoothed-prevYaw, pitchSmoothed-prevPitch)
		}

		if pressed(window, glfw.KeyF2, &f2Was) {
			renderer.ToggleShadows()
		}
		if pressed(window, glfw.KeyF3, &f3Was) {
			renderer.CycleLightingMode()
		}
		if pressed(window, glfw.KeyF6, &f6Was) {
			result := raytracer.RunBenchmark(scene, renderer, 30)
			fmt.Println(result.String())
		}
		if pressed(window, glfw.KeyX, &xWas) {
			path := cfg.OutPath
			if renderer.SaveBufferToImage(path) {
				fmt.Printf("saved screenshot to %s\n", path)
			}
		}

		scene.Update(dt)
		renderer.Render()

		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(cfg.Width), int32(cfg.Height), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(renderer.Buffer.Pixels))

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(program)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)

		window.SwapBuffers()
	}
	return nil
}

// pressed reports a rising edge on key (pressed this poll, not last poll),
// debouncing the toggle/cycle keys so one key-down fires one action.
func pressed(window *glfw.Window, key glfw.Key, was *bool) bool {
	down := window.GetKey(key) == glfw.Press
	fired := down && !*was
	*was = down
	return fired
}

// newScreenQuad builds the two-triangle NDC quad and an RGB texture sized
// to the framebuffer, returning the VAO and texture handle.
func newScreenQuad(width, height int) (vao, texture uint32) {
	vertices := []float32{
		// positions   // uv (flipped V: framebuffer row 0 is the top)
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}

	var vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, nil)

	return vao, texture
}

// compileShader and linkProgram mirror the teacher's
// OpenGLRenderer.compileShader/createShaderProgram pair.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logMsg))
		return 0, fmt.Errorf("compile shader: %s", logMsg)
	}
	return shader, nil
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logMsg))
		return 0, fmt.Errorf("link program: %s", logMsg)
	}
	return program, nil
}
