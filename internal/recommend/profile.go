package recommend

import (
	"github.com/soundswipe/soundswipe-backend/internal/types"
)

// Profile is a user's derived taste vector plus genre distribution, computed
// from liked tracks only.
type Profile struct {
	AvgEnergy  float64
	AvgValence float64
	AvgTempo   float64
	// GenreCounts maps genre label to the number of liked tracks in it.
	// TotalGenreSwipes counts liked tracks that had a genre at all; tracks
	// without one contribute to the feature averages but not here.
	GenreCounts      map[string]int
	TotalGenreSwipes int
	LikedCount       int
}

// BuildProfile aggregates a liked history into a Profile. Returns nil when the
// history is empty, which selects the cold-start path. Duplicate verdicts for
// the same track are collapsed to the first row seen so a repeatedly-liked
// track cannot skew the averages. Tracks missing a feature are left out of
// that feature's mean entirely rather than averaged in as zero.
func BuildProfile(liked []*types.Track) *Profile {
	seen := make(map[string]struct{}, len(liked))
	p := &Profile{GenreCounts: make(map[string]int)}

	var energySum, valenceSum, tempoSum float64
	var energyN, valenceN, tempoN int

	for _, t := range liked {
		if t == nil {
			continue
		}
		if _, dup := seen[t.SpotifyID]; dup {
			continue
		}
		seen[t.SpotifyID] = struct{}{}
		p.LikedCount++

		if t.Energy != nil {
			energySum += *t.Energy
			energyN++
		}
		if t.Valence != nil {
			valenceSum += *t.Valence
			valenceN++
		}
		if t.Tempo != nil {
			tempoSum += *t.Tempo
			tempoN++
		}
		if t.Genre != nil && *t.Genre != "" {
			p.GenreCounts[*t.Genre]++
			p.TotalGenreSwipes++
		}
	}

	if p.LikedCount == 0 {
		return nil
	}
	if energyN > 0 {
		p.AvgEnergy = energySum / float64(energyN)
	}
	if valenceN > 0 {
		p.AvgValence = valenceSum / float64(valenceN)
	}
	if tempoN > 0 {
		p.AvgTempo = tempoSum / float64(tempoN)
	}
	return p
}
