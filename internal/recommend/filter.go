package recommend

import (
	"github.com/soundswipe/soundswipe-backend/internal/types"
)

// FilterSeen drops every track the user already has a verdict on, liked or
// not. Catalog order is preserved. An empty seen list returns the catalog
// as-is.
func FilterSeen(catalog []*types.Track, swipedIDs []string) []*types.Track {
	if len(swipedIDs) == 0 {
		return catalog
	}
	seen := make(map[string]struct{}, len(swipedIDs))
	for _, id := range swipedIDs {
		seen[id] = struct{}{}
	}
	out := make([]*types.Track, 0, len(catalog))
	for _, t := range catalog {
		if t == nil {
			continue
		}
		if _, ok := seen[t.SpotifyID]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}
