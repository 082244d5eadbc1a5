package runner

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Surface is the drawing target of a spinner
type Surface interface {
	DrawAt(row, col int, text string)
	Clear()
}

// Task is the blocking work a spinner waits on
type Task func(ctx context.Context) (Result, error)

// Spinner shows a rotating glyph while a task runs
type Spinner struct {
	Frames   []string
	Interval time.Duration
	Row      int
	Col      int
	Label    string
}

// NewSpinner creates a spinner drawing "Running... <frame>" at row 2, column 0
func NewSpinner(interval time.Duration) *Spinner {
	if interval <= 0 {
		interval = spinner.Line.FPS
	}
	return &Spinner{
		Frames:   spinner.Line.Frames,
		Interval: interval,
		Row:      2,
		Col:      0,
		Label:    "Running... ",
	}
}

// Run executes task on the calling goroutine while a single ticker goroutine repaints the
// surface. The ticker is always stopped and joined, and the surface cleared, before Run
// returns, including when task panics.
func (s *Spinner) Run(ctx context.Context, surface Surface, task Task) (Result, error) {
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		frame := 0
		for {
			surface.DrawAt(s.Row, s.Col, s.Label+s.Frames[frame%len(s.Frames)])
			frame++
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}()

	defer func() {
		close(stop)
		<-done
		surface.Clear()
	}()

	return task(ctx)
}
