package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"fits", "nginx", 10, "nginx"},
		{"exact", "nginx", 5, "nginx"},
		{"truncated", "postgres:16-alpine", 10, "postgre..."},
		{"tiny width", "postgres", 2, "po"},
		{"zero width", "postgres", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateWithEllipsis(tt.text, tt.width))
		})
	}
}

func TestTitleCentered(t *testing.T) {
	view := NewTitleComponent("abcd").WithWidth(10).View()
	assert.Equal(t, "   abcd   ", view)
}

func TestOptionListVisibleRange(t *testing.T) {
	list := NewOptionListComponent(1).
		WithWidth(40).
		SetOptions([]string{"one", "two", "three", "four"}).
		SetSelected(2).
		SetVisibleRange(1, 3)

	lines := strings.Split(list.View(), "\n")
	assert.Equal(t, []string{" two", " three"}, lines)
}

func TestFooterStatus(t *testing.T) {
	footer := NewFooterComponent("Quit: <ctrl+c>", 1).WithWidth(40)
	assert.Equal(t, " Quit: <ctrl+c>", footer.View())

	withStatus := footer.SetStatusMessage("ERROR: exit status 1").View()
	assert.Equal(t, " Quit: <ctrl+c>\n\n ERROR: exit status 1", withStatus)
}

func TestCanvasDrawAt(t *testing.T) {
	canvas := NewCanvasComponent()
	assert.True(t, canvas.Empty())

	canvas = canvas.DrawAt(2, 0, "Running... |")
	assert.Equal(t, "\n\nRunning... |", canvas.View())

	canvas = canvas.DrawAt(2, 0, "Running... /")
	assert.Equal(t, "\n\nRunning... /", canvas.View())

	canvas = canvas.DrawAt(0, 3, "x")
	assert.Equal(t, "   x\n\nRunning... /", canvas.View())
	assert.False(t, canvas.Empty())
}
