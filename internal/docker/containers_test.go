package docker

import (
	"testing"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/network"
	"github.com/stretchr/testify/assert"

	"docker-tui/internal/types"
)

func TestParseContainer(t *testing.T) {
	tests := []struct {
		name     string
		summary  container.Summary
		expected types.Container
	}{
		{
			name:     "image used as name",
			summary:  container.Summary{ID: "4f1c2a9e0b7d1234567890", Image: "nginx:latest", Names: []string{"/web"}},
			expected: types.Container{Ordinal: 1, ID: "4f1c2a9e0b7d", Name: "nginx:latest"},
		},
		{
			name:     "falls back to container name",
			summary:  container.Summary{ID: "short", Names: []string{"/web"}},
			expected: types.Container{Ordinal: 1, ID: "short", Name: "web"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseContainer(1, tt.summary))
		})
	}
}

func TestNetworkSignatureSorted(t *testing.T) {
	inspect := container.InspectResponse{
		NetworkSettings: &container.NetworkSettings{
			Networks: map[string]*network.EndpointSettings{
				"web":     {},
				"backend": {},
			},
		},
	}
	assert.Equal(t, "backend, web", networkSignature(inspect))
	assert.Equal(t, "", networkSignature(container.InspectResponse{}))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "123456789012", shortID("1234567890123456"))
	assert.Equal(t, "abc", shortID("abc"))
}
