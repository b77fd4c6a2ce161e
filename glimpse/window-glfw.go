//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw must only be used from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win    *glfw.Window
	events eventQueue

	// framebuffer size as reported by the last size callback
	width, height uint32
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// webgpu brings its own graphics api
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	// framebuffer size may differ from the requested size on high dpi displays
	fbWidth, fbHeight := window.GetFramebufferSize()
	w.width, w.height = pixels(fbWidth, fbHeight)

	slog.Info("Window created",
		slog.String("title", title),
		slog.Int("width", int(w.width)),
		slog.Int("height", int(w.height)),
	)

	configureEvents(w)

	return w, nil
}

func (g *glfwWindow) Size() (uint32, uint32) {
	return g.width, g.height
}

func (g *glfwWindow) SetTitle(title string) {
	g.win.SetTitle(title)
}

func (g *glfwWindow) RequestRedraw() {
	g.events.requestRedraw()
}

func (g *glfwWindow) PollEvents() []Event {
	if g.events.redrawPending() {
		glfw.PollEvents()
	} else {
		glfw.WaitEvents()
	}

	return g.events.drain()
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func configureEvents(w *glfwWindow) {
	w.win.SetCloseCallback(func(_win *glfw.Window) {
		w.events.push(CloseRequested{})
	})

	w.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		w.width, w.height = pixels(width, height)
		w.events.push(Resized{Width: w.width, Height: w.height})
	})

	w.win.SetRefreshCallback(func(_win *glfw.Window) {
		w.events.requestRedraw()
	})

	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		w.events.push(KeyPressed{Key: key})
	})
}

var glfwToKey = func() map[glfw.Key]Key {
	keys := map[glfw.Key]Key{
		glfw.KeyEscape:    KeyEscape,
		glfw.KeyEnter:     KeyEnter,
		glfw.KeySpace:     KeySpace,
		glfw.KeyTab:       KeyTab,
		glfw.KeyBackspace: KeyBackspace,
		glfw.KeyLeft:      KeyLeft,
		glfw.KeyRight:     KeyRight,
		glfw.KeyUp:        KeyUp,
		glfw.KeyDown:      KeyDown,
	}

	for idx := range KeyZ - KeyA + 1 {
		keys[glfw.KeyA+glfw.Key(idx)] = KeyA + idx
	}

	return keys
}()

func keyOf(glfwKey glfw.Key) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug("Unknown key code", slog.Int("code", int(glfwKey)))
	}

	return
}
