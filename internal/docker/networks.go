package docker

import (
	"context"
	"fmt"

	"docker-tui/internal/logger"
	"docker-tui/internal/types"
)

// FetchNetworkMembers inspects every container and pairs it with its network signature.
// Containers whose inspection fails are skipped and reported in the returned diagnostics.
func FetchNetworkMembers(ctx context.Context, engine Engine) ([]types.NetworkMember, []string, error) {
	ids, err := engine.AllIDs(ctx)
	if err != nil {
		return nil, nil, err
	}

	var members []types.NetworkMember
	var diagnostics []string
	for index, id := range ids {
		signature, err := engine.NetworkSignature(ctx, id)
		if err != nil {
			logger.Warn("Skipping container", "id", id, "error", err)
			diagnostics = append(diagnostics, fmt.Sprintf("Error inspecting container %s", id))
			continue
		}
		members = append(members, types.NetworkMember{
			Ordinal:   index,
			Signature: signature,
			ID:        id,
		})
	}

	return members, diagnostics, nil
}

// GroupByNetwork keeps the first member of each distinct signature, in first-seen order
func GroupByNetwork(members []types.NetworkMember) []types.NetworkMember {
	seen := make(map[string]bool)
	var groups []types.NetworkMember

	for _, member := range members {
		if seen[member.Signature] {
			continue
		}
		seen[member.Signature] = true
		groups = append(groups, member)
	}

	return groups
}

// MembersOf returns every member sharing signature, in listing order
func MembersOf(members []types.NetworkMember, signature string) []types.NetworkMember {
	var matched []types.NetworkMember
	for _, member := range members {
		if member.Signature == signature {
			matched = append(matched, member)
		}
	}
	return matched
}
