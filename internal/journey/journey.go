// Package journey turns free-form onboarding answers into a ranked
// list of relevant goal templates, so the user never has to browse the
// full catalog.
package journey

import (
	"sort"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
)

// Identity answers: who the user is.
type Identity struct {
	Experience string `json:"experience"`
	Motivation string `json:"motivation"`
}

// Situation answers: where the user is right now.
type Situation struct {
	Challenge         string `json:"challenge"`
	ApproachFrequency string `json:"approachFrequency"`
}

// Vision answers: what success looks like and on what horizon.
type Vision struct {
	SuccessVision string   `json:"successVision"`
	ExtraAreas    []string `json:"extraAreas,omitempty"`
	Timeframe     string   `json:"timeframe"`
}

// RankedGoal is one scored recommendation. Relevance is clamped to
// [0,1]; Reason is the first reason attached to the template during
// scoring, which the single-line UI explanation depends on.
type RankedGoal struct {
	Template  catalog.Template `json:"template"`
	Relevance float64          `json:"relevance"`
	Reason    string           `json:"reason"`
}

// shortTimeframe triggers the input-nature boost: under time pressure
// the model rewards directly-controllable behaviors.
const (
	shortTimeframe       = "3-months"
	inputBoostMultiplier = 1.2
)

// Filtering defaults for the level-scoped helpers, distinct from the
// auto-select thresholds below.
const (
	DefaultL2Threshold = 0.5
	DefaultL3Threshold = 0.4
)

// Auto-select policy the onboarding wizard applies to the ranked list.
// The TopL1 pick is always auto-selected.
const (
	AutoSelectL2Threshold = 0.6
	AutoSelectL3Threshold = 0.5
)

// Recommend scores every catalog template against the answers and
// returns the matches ranked by descending relevance. Scores
// accumulate unclamped; the short-timeframe multiplier applies once
// after accumulation and the clamp to [0,1] happens only here at
// materialization. Scored ids missing from the catalog are dropped.
// Output order is deterministic for identical input: the accumulator
// preserves first-seen template order and the sort is stable.
func Recommend(cat *catalog.Catalog, identity Identity, situation Situation, vision Vision) []RankedGoal {
	answers := []struct{ category, value string }{
		{answerExperience, identity.Experience},
		{answerMotivation, identity.Motivation},
		{answerChallenge, situation.Challenge},
		{answerFrequency, situation.ApproachFrequency},
		{answerVision, vision.SuccessVision},
		{answerTimeframe, vision.Timeframe},
	}

	scores := make(map[string]float64)
	firstReason := make(map[string]string)
	var order []string

	for _, ans := range answers {
		if ans.value == "" {
			continue
		}
		for _, r := range scoringRules {
			if r.category != ans.category || r.answer != ans.value {
				continue
			}
			if _, seen := scores[r.templateID]; !seen {
				order = append(order, r.templateID)
				firstReason[r.templateID] = r.reason
			}
			scores[r.templateID] += r.points
		}
	}

	if vision.Timeframe == shortTimeframe {
		for id := range scores {
			if t, ok := cat.Template(id); ok && t.Nature == catalog.NatureInput {
				scores[id] *= inputBoostMultiplier
			}
		}
	}

	ranked := make([]RankedGoal, 0, len(order))
	for _, id := range order {
		t, ok := cat.Template(id)
		if !ok {
			continue
		}
		ranked = append(ranked, RankedGoal{
			Template:  t,
			Relevance: clamp01(scores[id]),
			Reason:    firstReason[id],
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Relevance > ranked[b].Relevance
	})
	return ranked
}

// TopL1 resolves the coarse success vision to the single canonical
// life goal for that branch. Unset or unknown visions yield nil; the
// engine never assumes every answer is populated.
func TopL1(cat *catalog.Catalog, vision Vision) *catalog.Template {
	id, ok := topL1ByVision[vision.SuccessVision]
	if !ok {
		return nil
	}
	t, ok := cat.Template(id)
	if !ok {
		return nil
	}
	return &t
}

// RecommendedL2s re-runs Recommend and keeps achievement-level results
// at or above the threshold. Pass a non-positive threshold to use the
// default.
func RecommendedL2s(cat *catalog.Catalog, identity Identity, situation Situation, vision Vision, threshold float64) []RankedGoal {
	if threshold <= 0 {
		threshold = DefaultL2Threshold
	}
	return filterByLevel(Recommend(cat, identity, situation, vision), catalog.LevelAchievement, threshold)
}

// RecommendedL3s is RecommendedL2s for trackable actions.
func RecommendedL3s(cat *catalog.Catalog, identity Identity, situation Situation, vision Vision, threshold float64) []RankedGoal {
	if threshold <= 0 {
		threshold = DefaultL3Threshold
	}
	return filterByLevel(Recommend(cat, identity, situation, vision), catalog.LevelAction, threshold)
}

// AutoSelected reports whether the wizard pre-selects a recommendation
// of the given level at the given relevance. L1 picks come from TopL1
// and are always selected.
func AutoSelected(level catalog.Level, relevance float64) bool {
	switch level {
	case catalog.LevelLifeGoal:
		return true
	case catalog.LevelAchievement:
		return relevance >= AutoSelectL2Threshold
	case catalog.LevelAction:
		return relevance >= AutoSelectL3Threshold
	}
	return false
}

func filterByLevel(ranked []RankedGoal, level catalog.Level, threshold float64) []RankedGoal {
	out := make([]RankedGoal, 0, len(ranked))
	for _, rg := range ranked {
		if rg.Template.Level == level && rg.Relevance >= threshold {
			out = append(out, rg)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
