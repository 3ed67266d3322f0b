package recommend

import (
	"math"
	"sort"

	"github.com/soundswipe/soundswipe-backend/internal/types"
)

// scoreOne computes the weighted similarity of one candidate against a
// profile. A missing candidate feature contributes zero difference: absent
// data is treated as neutral, not as distance.
func (e *Engine) scoreOne(p *Profile, t *types.Track) ScoredTrack {
	var energyDiff, valenceDiff, tempoDiff float64
	if t.Energy != nil {
		energyDiff = math.Abs(*t.Energy - p.AvgEnergy)
	}
	if t.Valence != nil {
		valenceDiff = math.Abs(*t.Valence - p.AvgValence)
	}
	if t.Tempo != nil {
		tempoDiff = math.Abs(*t.Tempo-p.AvgTempo) / e.cfg.TempoSpread
	}

	featureDistance := (energyDiff + valenceDiff + tempoDiff) / 3
	featureScore := math.Max(0, 1-featureDistance)

	genreScore := 0.0
	if t.Genre != nil && p.TotalGenreSwipes > 0 {
		if count, ok := p.GenreCounts[*t.Genre]; ok {
			genreScore = float64(count) / float64(p.TotalGenreSwipes)
		}
	}

	return ScoredTrack{
		Track:        t,
		Score:        e.cfg.FeatureWeight*featureScore + e.cfg.GenreWeight*genreScore,
		FeatureScore: featureScore,
		GenreScore:   genreScore,
	}
}

// scoreAndRank scores every candidate, sorts descending and truncates. The
// sort is stable so exact ties keep catalog order.
func (e *Engine) scoreAndRank(p *Profile, candidates []*types.Track, limit int) []ScoredTrack {
	scored := make([]ScoredTrack, 0, len(candidates))
	for _, t := range candidates {
		if t == nil {
			continue
		}
		scored = append(scored, e.scoreOne(p, t))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
