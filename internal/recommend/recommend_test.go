package recommend

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/soundswipe/soundswipe-backend/internal/pkg/errors"
	"github.com/soundswipe/soundswipe-backend/internal/types"
)

// fakeSource serves a fixed catalog plus per-user swipe rows, mirroring what
// the gorm-backed repo returns.
type fakeSource struct {
	catalog []*types.Track
	swipes  map[uuid.UUID][]types.Swipe
	err     error
}

func (f *fakeSource) trackByID(id string) *types.Track {
	for _, t := range f.catalog {
		if t.SpotifyID == id {
			return t
		}
	}
	return nil
}

func (f *fakeSource) ListAll(ctx context.Context) ([]*types.Track, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func (f *fakeSource) ListLikedByUser(ctx context.Context, userID uuid.UUID) ([]*types.Track, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*types.Track
	for _, s := range f.swipes[userID] {
		if !s.Liked {
			continue
		}
		if t := f.trackByID(s.TrackID); t != nil {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeSource) ListSwipedIDsByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[string]struct{}{}
	var out []string
	for _, s := range f.swipes[userID] {
		if _, ok := seen[s.TrackID]; ok {
			continue
		}
		seen[s.TrackID] = struct{}{}
		out = append(out, s.TrackID)
	}
	return out, nil
}

func (f *fakeSource) ListByPopularityDesc(ctx context.Context, excludeIDs []string, limit int) ([]*types.Track, error) {
	if f.err != nil {
		return nil, f.err
	}
	skip := map[string]struct{}{}
	for _, id := range excludeIDs {
		skip[id] = struct{}{}
	}
	var out []*types.Track
	for _, t := range f.catalog {
		if _, ok := skip[t.SpotifyID]; ok {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func catalogTrack(id string, popularity int, energy, valence, tempo *float64, genre *string) *types.Track {
	t := likedTrack(id, energy, valence, tempo, genre)
	t.Popularity = popularity
	return t
}

func TestRecommendRejectsInvalidInput(t *testing.T) {
	e := NewEngine(&fakeSource{}, nil, DefaultConfig())

	_, err := e.Recommend(context.Background(), uuid.Nil, Options{})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("nil user: err=%v, want ErrInvalidArgument", err)
	}

	_, err = e.Recommend(context.Background(), uuid.New(), Options{Limit: -1})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("negative limit: err=%v, want ErrInvalidArgument", err)
	}
}

func TestRecommendPropagatesSourceFailure(t *testing.T) {
	boom := errors.New("connection refused")
	src := &fakeSource{err: boom}
	e := NewEngine(src, nil, DefaultConfig())
	_, err := e.Recommend(context.Background(), uuid.New(), Options{})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want wrapped source error", err)
	}
}

func TestRecommendColdStartOrdersByPopularity(t *testing.T) {
	src := &fakeSource{
		catalog: []*types.Track{
			catalogTrack("low", 10, nil, nil, nil, nil),
			catalogTrack("high", 90, nil, nil, nil, nil),
			catalogTrack("mid", 50, nil, nil, nil, nil),
		},
		swipes: map[uuid.UUID][]types.Swipe{},
	}
	e := NewEngine(src, nil, DefaultConfig())
	res, err := e.Recommend(context.Background(), uuid.New(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.ColdStart {
		t.Fatal("expected cold start path for user with no liked history")
	}
	wantOrder := []string{"high", "mid", "low"}
	if len(res.Tracks) != len(wantOrder) {
		t.Fatalf("len=%d, want %d", len(res.Tracks), len(wantOrder))
	}
	for i, want := range wantOrder {
		if res.Tracks[i].Track.SpotifyID != want {
			t.Fatalf("tracks[%d]=%s, want %s", i, res.Tracks[i].Track.SpotifyID, want)
		}
		if res.Tracks[i].Score != 0 || res.Tracks[i].FeatureScore != 0 || res.Tracks[i].GenreScore != 0 {
			t.Fatalf("cold start entry %d carries scoring artifacts: %+v", i, res.Tracks[i])
		}
	}
}

func TestRecommendColdStartStillExcludesSwiped(t *testing.T) {
	user := uuid.New()
	src := &fakeSource{
		catalog: []*types.Track{
			catalogTrack("seen", 100, nil, nil, nil, nil),
			catalogTrack("fresh", 50, nil, nil, nil, nil),
		},
		swipes: map[uuid.UUID][]types.Swipe{
			// Disliked only: cold start applies, yet the track must not resurface.
			user: {{TrackID: "seen", Liked: false}},
		},
	}
	e := NewEngine(src, nil, DefaultConfig())
	res, err := e.Recommend(context.Background(), user, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.ColdStart {
		t.Fatal("disliked-only history should still be cold start")
	}
	if len(res.Tracks) != 1 || res.Tracks[0].Track.SpotifyID != "fresh" {
		t.Fatalf("got %+v, want only fresh", res.Tracks)
	}
}

func TestRecommendExcludesAllSwipedTracks(t *testing.T) {
	user := uuid.New()
	src := &fakeSource{
		catalog: []*types.Track{
			catalogTrack("liked", 10, f64(0.5), f64(0.5), f64(120), str("Pop")),
			catalogTrack("disliked", 20, f64(0.5), f64(0.5), f64(120), str("Pop")),
			catalogTrack("new1", 30, f64(0.5), f64(0.5), f64(120), str("Pop")),
			catalogTrack("new2", 40, f64(0.1), f64(0.9), f64(80), nil),
		},
		swipes: map[uuid.UUID][]types.Swipe{
			user: {
				{TrackID: "liked", Liked: true},
				{TrackID: "disliked", Liked: false},
			},
		},
	}
	e := NewEngine(src, nil, DefaultConfig())
	res, err := e.Recommend(context.Background(), user, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ColdStart {
		t.Fatal("user with liked history must take the personalized path")
	}
	for _, st := range res.Tracks {
		if st.Track.SpotifyID == "liked" || st.Track.SpotifyID == "disliked" {
			t.Fatalf("swiped track %s resurfaced in recommendations", st.Track.SpotifyID)
		}
	}
	if len(res.Tracks) != 2 {
		t.Fatalf("len=%d, want 2", len(res.Tracks))
	}
	if res.Tracks[0].Track.SpotifyID != "new1" {
		t.Fatalf("closest candidate should rank first, got %s", res.Tracks[0].Track.SpotifyID)
	}
}

func TestRecommendFullySwipedCatalogReturnsEmpty(t *testing.T) {
	user := uuid.New()
	catalog := []*types.Track{
		catalogTrack("a", 1, f64(0.5), nil, nil, nil),
		catalogTrack("b", 2, f64(0.5), nil, nil, nil),
		catalogTrack("c", 3, f64(0.5), nil, nil, nil),
		catalogTrack("d", 4, f64(0.5), nil, nil, nil),
		catalogTrack("e", 5, f64(0.5), nil, nil, nil),
	}
	swipes := make([]types.Swipe, 0, len(catalog))
	for i, tr := range catalog {
		swipes = append(swipes, types.Swipe{TrackID: tr.SpotifyID, Liked: i%2 == 0})
	}
	src := &fakeSource{catalog: catalog, swipes: map[uuid.UUID][]types.Swipe{user: swipes}}
	e := NewEngine(src, nil, DefaultConfig())
	res, err := e.Recommend(context.Background(), user, Options{})
	if err != nil {
		t.Fatalf("exhausted catalog must not be an error, got %v", err)
	}
	if len(res.Tracks) != 0 {
		t.Fatalf("len=%d, want 0", len(res.Tracks))
	}
}

func TestRecommendEmptyCatalogBothPaths(t *testing.T) {
	coldUser := uuid.New()
	warmUser := uuid.New()
	src := &fakeSource{
		catalog: nil,
		swipes: map[uuid.UUID][]types.Swipe{
			// Liked swipe referencing a track that has left the catalog.
			warmUser: {{TrackID: "gone", Liked: true}},
		},
	}
	e := NewEngine(src, nil, DefaultConfig())
	for name, user := range map[string]uuid.UUID{"cold": coldUser, "warm": warmUser} {
		res, err := e.Recommend(context.Background(), user, Options{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(res.Tracks) != 0 {
			t.Fatalf("%s: len=%d, want 0", name, len(res.Tracks))
		}
	}
}

func TestRecommendHonorsLimit(t *testing.T) {
	user := uuid.New()
	catalog := make([]*types.Track, 0, 25)
	for i := 0; i < 25; i++ {
		catalog = append(catalog, catalogTrack(uuid.NewString(), i, f64(0.5), nil, nil, nil))
	}
	liked := catalogTrack("seed", 1, f64(0.5), nil, nil, nil)
	catalog = append(catalog, liked)
	src := &fakeSource{
		catalog: catalog,
		swipes:  map[uuid.UUID][]types.Swipe{user: {{TrackID: "seed", Liked: true}}},
	}
	e := NewEngine(src, nil, DefaultConfig())

	res, err := e.Recommend(context.Background(), user, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Tracks) != 10 {
		t.Fatalf("default limit: len=%d, want 10", len(res.Tracks))
	}

	res, err = e.Recommend(context.Background(), user, Options{Limit: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Tracks) != 3 {
		t.Fatalf("explicit limit: len=%d, want 3", len(res.Tracks))
	}
}
