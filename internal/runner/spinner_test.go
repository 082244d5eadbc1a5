package runner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSurface struct {
	mu     sync.Mutex
	frames []string
	calls  []string
}

func (s *recordingSurface) DrawAt(row, col int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, text)
	s.calls = append(s.calls, "draw")
}

func (s *recordingSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "clear")
}

func (s *recordingSurface) snapshot() ([]string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.frames...), append([]string(nil), s.calls...)
}

func TestNewSpinnerDefaults(t *testing.T) {
	s := NewSpinner(0)
	assert.Equal(t, []string{"|", "/", "-", "\\"}, s.Frames)
	assert.Equal(t, 100*time.Millisecond, s.Interval)
	assert.Equal(t, 2, s.Row)
	assert.Equal(t, 0, s.Col)
}

func TestSpinnerRotatesFrames(t *testing.T) {
	s := NewSpinner(5 * time.Millisecond)
	surface := &recordingSurface{}

	res, err := s.Run(context.Background(), surface, func(ctx context.Context) (Result, error) {
		time.Sleep(60 * time.Millisecond)
		return Result{ExitCode: 0}, nil
	})
	require.NoError(t, err)
	assert.True(t, res.OK())

	frames, _ := surface.snapshot()
	require.GreaterOrEqual(t, len(frames), 4)
	assert.Equal(t, []string{"Running... |", "Running... /", "Running... -", "Running... \\"}, frames[:4])
}

func TestSpinnerStopsAndClearsBeforeReturning(t *testing.T) {
	s := NewSpinner(2 * time.Millisecond)
	surface := &recordingSurface{}

	_, err := s.Run(context.Background(), surface, func(ctx context.Context) (Result, error) {
		time.Sleep(10 * time.Millisecond)
		return Result{ExitCode: 1, Stderr: "boom"}, errors.New("boom")
	})
	assert.Error(t, err)

	_, calls := surface.snapshot()
	require.NotEmpty(t, calls)
	assert.Equal(t, "clear", calls[len(calls)-1])

	// Nothing may draw once Run has returned.
	time.Sleep(20 * time.Millisecond)
	_, after := surface.snapshot()
	assert.Equal(t, calls, after)
}

func TestSpinnerJoinedOnPanic(t *testing.T) {
	s := NewSpinner(2 * time.Millisecond)
	surface := &recordingSurface{}

	assert.Panics(t, func() {
		_, _ = s.Run(context.Background(), surface, func(ctx context.Context) (Result, error) {
			panic("task failed")
		})
	})

	_, calls := surface.snapshot()
	require.NotEmpty(t, calls)
	assert.Equal(t, "clear", calls[len(calls)-1])
}
