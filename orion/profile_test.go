package orion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartProfileDisabled(t *testing.T) {
	prof, err := startProfile("")
	require.NoError(t, err)

	assert.Equal(t, noopProfile{}, prof)
	prof.Stop()
}

func TestStartProfileUnknownMode(t *testing.T) {
	prof, err := startProfile("trace")
	assert.ErrorContains(t, err, `unknown profile mode "trace"`)
	assert.Nil(t, prof)
}

func TestRunRejectsUnknownProfileMode(t *testing.T) {
	// fails before any window is created
	err := Run(Options{Profile: "block"})
	assert.ErrorContains(t, err, `unknown profile mode "block"`)
}
