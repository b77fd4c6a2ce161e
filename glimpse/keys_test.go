//go:build !js

package glimpse

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Down", KeyDown.String())
	assert.Equal(t, "A", KeyA.String())
	assert.Equal(t, "Z", KeyZ.String())
	assert.Equal(t, "Unknown", Key(200).String())
}

func TestGLFWKeyMapping(t *testing.T) {
	assert.Equal(t, KeyEscape, glfwToKey[glfw.KeyEscape])
	assert.Equal(t, KeyA, glfwToKey[glfw.KeyA])
	assert.Equal(t, KeyQ, glfwToKey[glfw.KeyQ])
	assert.Equal(t, KeyZ, glfwToKey[glfw.KeyZ])

	_, ok := glfwToKey[glfw.KeyF5]
	assert.False(t, ok)
}

func TestUnknownKeyIsLoggedByCode(t *testing.T) {
	var buf bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	_, ok := keyOf(glfw.KeyF5)
	assert.False(t, ok)

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), fmt.Sprintf("code=%d", int(glfw.KeyF5)))

	key, ok := keyOf(glfw.KeyEscape)
	assert.True(t, ok)
	assert.Equal(t, KeyEscape, key)
}
