package recommend

import (
	"testing"

	"github.com/soundswipe/soundswipe-backend/internal/types"
)

func TestFilterSeen(t *testing.T) {
	catalog := []*types.Track{
		likedTrack("a", nil, nil, nil, nil),
		likedTrack("b", nil, nil, nil, nil),
		likedTrack("c", nil, nil, nil, nil),
	}

	cases := []struct {
		name    string
		swiped  []string
		wantIDs []string
	}{
		{name: "empty_exclude_returns_catalog", swiped: nil, wantIDs: []string{"a", "b", "c"}},
		{name: "drops_swiped", swiped: []string{"b"}, wantIDs: []string{"a", "c"}},
		{name: "all_swiped", swiped: []string{"a", "b", "c"}, wantIDs: []string{}},
		{name: "unknown_ids_ignored", swiped: []string{"zz"}, wantIDs: []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterSeen(catalog, tc.swiped)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("len=%d, want %d", len(got), len(tc.wantIDs))
			}
			for i, want := range tc.wantIDs {
				if got[i].SpotifyID != want {
					t.Fatalf("got[%d]=%s, want %s", i, got[i].SpotifyID, want)
				}
			}
		})
	}
}
