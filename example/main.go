// Example wires two text inputs to a GLFW window: a plain field and a
// password field sharing one focus arbiter, with drag-and-drop between
// them through the in-process broker.
//
// The example skips rendering on purpose; it prints the fields' state to
// stdout whenever it changes, so it runs anywhere GLFW can open a window.
//
//	go run ./example/
//	COSMIC_LOG=debug go run ./example/   # trace focus and DnD transitions
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/cosmic-gui/cosmic"
	"github.com/cosmic-gui/cosmic/backend/glfwshell"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "cosmic text input example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if os.Getenv("COSMIC_LOG") == "debug" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		cosmic.SetLogger(logger)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	// No GL context needed; the example never draws.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	shell := glfwshell.New(window)

	theme := cosmic.DarkTheme()
	if path := os.Getenv("COSMIC_THEME"); path != "" {
		theme, err = cosmic.LoadTheme(path)
		if err != nil {
			return fmt.Errorf("theme: %w", err)
		}
	}

	// In a real application the text measurer comes from the shaping
	// engine; the fixed-advance measurer keeps the example self-contained.
	measurer := cosmic.MonoMeasurer{Advance: 9, LineHeight: 18}
	arbiter := cosmic.NewFocusArbiter()
	broker := cosmic.NewLocalDragDrop()

	name := cosmic.NewTextInput(measurer,
		cosmic.WithTheme(theme),
		cosmic.WithPlaceholder("Name"),
		cosmic.WithClipboard(shell.Clipboard()),
		cosmic.WithDragDrop(broker),
		cosmic.WithFocusArbiter(arbiter),
		cosmic.WithOnInput(func(content string) { fmt.Printf("name: %q\n", content) }),
		cosmic.WithOnSubmit(func(content string) { fmt.Printf("submitted: %q\n", content) }),
	)
	name.SetBounds(cosmic.Rect{X: 40, Y: 40, W: 320, H: 32})

	secret := cosmic.NewTextInput(measurer,
		cosmic.WithTheme(theme),
		cosmic.WithPassword(),
		cosmic.WithPlaceholder("Password"),
		cosmic.WithClipboard(shell.Clipboard()),
		cosmic.WithDragDrop(broker),
		cosmic.WithFocusArbiter(arbiter),
		cosmic.WithOnInput(func(content string) {
			fmt.Printf("password: %d graphemes\n", len([]rune(content)))
		}),
	)
	secret.SetBounds(cosmic.Rect{X: 40, Y: 90, W: 320, H: 32})

	fields := []*cosmic.TextInput{name, secret}
	broker.BindSource(func(ev cosmic.Event) { name.Update(ev, time.Now()) })
	broker.BindTarget(func(ev cosmic.Event) { secret.Update(ev, time.Now()) })

	for !window.ShouldClose() {
		glfw.PollEvents()
		shell.Drain(func(ev cosmic.Event) {
			for _, field := range fields {
				if field.Update(ev, time.Now()) == cosmic.Captured {
					break
				}
			}
		}, time.Now())

		for _, field := range fields {
			if next, ok := field.NextRedraw(time.Now()); ok {
				// A renderer would schedule a frame at next; the
				// headless example just sleeps toward it.
				time.Sleep(time.Until(next) / 4)
				break
			}
		}
	}

	return nil
}
