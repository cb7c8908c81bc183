package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputDialogRendersTitleFieldAndHint(t *testing.T) {
	out := SanitizeText(InputDialog("Jump to item", "> 42", "enter: jump | esc: cancel"))
	assert.Contains(t, out, "Jump to item")
	assert.Contains(t, out, "> 42")
	assert.Contains(t, out, "enter: jump")
}

func TestInputDialogWithoutHint(t *testing.T) {
	out := SanitizeText(InputDialog("Title", "field", ""))
	assert.Contains(t, out, "field")
	assert.NotContains(t, out, "esc")
}
