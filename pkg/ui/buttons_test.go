package ui

import (
	"testing"

	"github.com/golangdaddy/cruise/pkg/controls"
	"github.com/stretchr/testify/assert"
)

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, "▲", ButtonLabel(controls.ButtonForward))
	assert.Equal(t, "▼", ButtonLabel(controls.ButtonBackward))
	assert.Empty(t, ButtonLabel(controls.ButtonNone))
}
