package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	out := ToHTML("**Drink water**\nevery day")
	assert.Contains(t, out, "<strong>Drink water</strong>")
	assert.Contains(t, out, "<br")
}

func TestToHTMLEscapesRawHTML(t *testing.T) {
	out := ToHTML("<script>alert(1)</script>")
	assert.NotContains(t, out, "<script>")
}

func TestToHTMLEmpty(t *testing.T) {
	assert.Equal(t, "", ToHTML(""))
}
