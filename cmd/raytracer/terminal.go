package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mirstar13/gorayt/raytracer"
)

// runTerminal previews the render loop directly in the terminal using
// half-block cells (two framebuffer rows per terminal row, top row as
// foreground, bottom row as background — the same trick the teacher's
// renderer_terminal.go plays with its own Charset/ColorBuffer, here driven
// by ultraviolet's raw-mode/alt-screen/event lifecycle instead of a
// hand-rolled bufio writer). Exists as a dependency-free-of-a-GPU fallback
// to the GLFW/GL backend in window.go.
func runTerminal(scene *raytracer.Scene, renderer *raytracer.Renderer, cfg *Config) error {
	term := uv.DefaultTerminal()
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()

	cleanup := func() {
		term.ShowCursor()
		term.ExitAltScreen()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	// Key events arrive on their own goroutine; funnel them into a channel
	// the render loop drains once per frame instead of mutating shared
	// state from two goroutines at once.
	type action int
	const (
		actionNone action = iota
		actionQuit
		actionToggleShadows
		actionCycleLighting
	)
	actions := make(chan action, 8)

	go func() {
		for ev := range term.Events() {
			switch e := ev.(type) {
			case uv.KeyPressEvent:
				switch {
				case e.MatchString("escape"), e.MatchString("ctrl+c"), e.MatchString("q"):
					actions <- actionQuit
				case e.MatchString("f2"):
					actions <- actionToggleShadows
				case e.MatchString("f3"):
					actions <- actionCycleLighting
				}
			}
		}
	}()

	const targetFPS = 24
	frameDuration := time.Second / targetFPS
	last := time.Now()

	quit := false
	for !quit {
	drainActions:
		for {
			select {
			case a := <-actions:
				switch a {
				case actionQuit:
					quit = true
				case actionToggleShadows:
					renderer.ToggleShadows()
				case actionCycleLighting:
					renderer.CycleLightingMode()
				}
			default:
				break drainActions
			}
		}
		if quit {
			break
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		scene.Update(dt)
		renderer.Render()

		var b strings.Builder
		b.WriteString("\x1b[H")
		drawHalfBlocks(&b, renderer.Buffer)
		b.WriteString(fmt.Sprintf("\nshadows=%v mode=%v  (F2 shadows, F3 lighting mode, Esc quit)\x1b[K",
			renderer.ShadowsEnabled(), renderer.LightingMode()))
		fmt.Fprint(os.Stdout, b.String())

		elapsed := time.Since(now)
		if elapsed < frameDuration {
			time.Sleep(frameDuration - elapsed)
		}
	}
	return nil
}

// drawHalfBlocks writes fb as a grid of "▀" cells, one per two framebuffer
// rows, colored via 24-bit ANSI foreground (top pixel) and background
// (bottom pixel) escapes.
func drawHalfBlocks(b *strings.Builder, fb *raytracer.Framebuffer) {
	for row := 0; row+1 < fb.Height; row += 2 {
		for col := 0; col < fb.Width; col++ {
			tr, tg, tb := fb.At(col, row)
			br, bg, bb := fb.At(col, row+1)
			fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		b.WriteString("\x1b[0m\n")
	}
}
