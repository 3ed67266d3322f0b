package recommend

import (
	"testing"

	"github.com/soundswipe/soundswipe-backend/internal/types"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func likedTrack(id string, energy, valence, tempo *float64, genre *string) *types.Track {
	return &types.Track{
		SpotifyID: id,
		Name:      "track " + id,
		Energy:    energy,
		Valence:   valence,
		Tempo:     tempo,
		Genre:     genre,
	}
}

func TestBuildProfileEmptyHistory(t *testing.T) {
	if p := BuildProfile(nil); p != nil {
		t.Fatalf("BuildProfile(nil)=%+v, want nil", p)
	}
	if p := BuildProfile([]*types.Track{}); p != nil {
		t.Fatalf("BuildProfile(empty)=%+v, want nil", p)
	}
}

func TestBuildProfileAverages(t *testing.T) {
	liked := []*types.Track{
		likedTrack("a", f64(0.2), f64(0.1), f64(100), nil),
		likedTrack("b", f64(0.4), f64(0.5), f64(120), nil),
		likedTrack("c", f64(0.6), f64(0.9), f64(140), nil),
	}
	p := BuildProfile(liked)
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if p.AvgEnergy != 0.4 {
		t.Fatalf("AvgEnergy=%v, want 0.4", p.AvgEnergy)
	}
	if p.AvgValence != 0.5 {
		t.Fatalf("AvgValence=%v, want 0.5", p.AvgValence)
	}
	if p.AvgTempo != 120 {
		t.Fatalf("AvgTempo=%v, want 120", p.AvgTempo)
	}
	if p.LikedCount != 3 {
		t.Fatalf("LikedCount=%d, want 3", p.LikedCount)
	}
}

func TestBuildProfileNullFeaturesExcludedFromMean(t *testing.T) {
	// The nil-energy track must not drag the mean toward zero.
	liked := []*types.Track{
		likedTrack("a", f64(0.8), nil, nil, nil),
		likedTrack("b", nil, nil, nil, nil),
	}
	p := BuildProfile(liked)
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if p.AvgEnergy != 0.8 {
		t.Fatalf("AvgEnergy=%v, want 0.8", p.AvgEnergy)
	}
	if p.AvgValence != 0 || p.AvgTempo != 0 {
		t.Fatalf("features with no data should average to 0, got valence=%v tempo=%v", p.AvgValence, p.AvgTempo)
	}
	if p.LikedCount != 2 {
		t.Fatalf("LikedCount=%d, want 2", p.LikedCount)
	}
}

func TestBuildProfileDeduplicatesByTrack(t *testing.T) {
	liked := []*types.Track{
		likedTrack("a", f64(1.0), nil, nil, str("Pop")),
		likedTrack("a", f64(1.0), nil, nil, str("Pop")),
		likedTrack("b", f64(0.0), nil, nil, str("Rock")),
	}
	p := BuildProfile(liked)
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if p.LikedCount != 2 {
		t.Fatalf("LikedCount=%d, want 2 after dedup", p.LikedCount)
	}
	if p.AvgEnergy != 0.5 {
		t.Fatalf("AvgEnergy=%v, want 0.5 (duplicate must not double-count)", p.AvgEnergy)
	}
	if p.GenreCounts["Pop"] != 1 || p.GenreCounts["Rock"] != 1 {
		t.Fatalf("GenreCounts=%v, want Pop:1 Rock:1", p.GenreCounts)
	}
}

func TestBuildProfileGenreDistribution(t *testing.T) {
	liked := []*types.Track{
		likedTrack("a", nil, nil, nil, str("Pop")),
		likedTrack("b", nil, nil, nil, str("Pop")),
		likedTrack("c", nil, nil, nil, str("Rock")),
		likedTrack("d", f64(0.5), nil, nil, nil), // no genre: feature averages only
	}
	p := BuildProfile(liked)
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if p.GenreCounts["Pop"] != 2 || p.GenreCounts["Rock"] != 1 {
		t.Fatalf("GenreCounts=%v, want Pop:2 Rock:1", p.GenreCounts)
	}
	if p.TotalGenreSwipes != 3 {
		t.Fatalf("TotalGenreSwipes=%d, want 3 (genre-less track excluded)", p.TotalGenreSwipes)
	}
	if p.LikedCount != 4 {
		t.Fatalf("LikedCount=%d, want 4", p.LikedCount)
	}
}
