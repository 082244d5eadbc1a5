package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/moby/moby/client"
)

// Timeouts applied to API calls
const (
	TimeoutQuick  = 5 * time.Second  // list, inspect
	TimeoutMedium = 15 * time.Second // start, stop (plus the stop grace period)
	TimeoutLong   = 60 * time.Second // restart
)

const defaultStopTimeout = 10 * time.Second

// Client holds the API connection used by the api backend
type Client struct {
	cli         *client.Client
	stopTimeout time.Duration
}

// NewClient connects using the DOCKER_HOST family of environment variables
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	return &Client{cli: cli, stopTimeout: defaultStopTimeout}, nil
}

// Close releases the API connection
func (c *Client) Close() error {
	if c.cli == nil {
		return nil
	}
	return c.cli.Close()
}

// WithCustomTimeout bounds parent by timeout
func (c *Client) WithCustomTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// SetStopTimeout sets the grace period containers get on stop and restart. Non-positive
// values keep the current setting.
func (c *Client) SetStopTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.stopTimeout = timeout
	}
}
