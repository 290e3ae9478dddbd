package analysis

import (
	"sort"
	"strings"

	"JournalGo/models"
)

// SimilarityThreshold is the minimum score for a candidate to count as
// similar. Weights below preserve the ordering semantics of the design:
// situation match dominates, intensity closeness next, then token overlap
// and shared tags.
const SimilarityThreshold = 2.5

// MaxSimilarEntries bounds the retriever's result.
const MaxSimilarEntries = 5

// SimilarityResult pairs a candidate entry with its score against a target.
type SimilarityResult struct {
	Entry   models.Entry
	Context EntryContext
	Score   float64
}

// SimilarityScore scores a candidate entry against a target, both already
// classified. Non-negative; higher is more similar.
func SimilarityScore(target models.Entry, targetCtx EntryContext, candidate models.Entry, candidateCtx EntryContext) float64 {
	var score float64

	if targetCtx.Situation == candidateCtx.Situation {
		score += 3
	}

	intensityDiff := targetCtx.EmotionalIntensity - candidateCtx.EmotionalIntensity
	if intensityDiff < 0 {
		intensityDiff = -intensityDiff
	}
	if intensityDiff <= 1 {
		score += 2
	} else if intensityDiff <= 2 {
		score += 1
	}

	score += ContentSimilarity(target.Content, candidate.Content)

	score += 0.5 * float64(sharedTagCount(target.Tags, candidate.Tags))

	return score
}

// ContentSimilarity is the shared-token ratio scaled to [0,3]: tokens are
// lower-cased whitespace-split words longer than 3 characters, and the
// ratio is shared over union.
func ContentSimilarity(content1, content2 string) float64 {
	words1 := tokenize(content1)
	words2 := tokenize(content2)

	union := make(map[string]struct{}, len(words1)+len(words2))
	for w := range words1 {
		union[w] = struct{}{}
	}
	for w := range words2 {
		union[w] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}

	shared := 0
	for w := range words1 {
		if _, ok := words2[w]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(union)) * 3
}

// FindSimilarEntries scores every other entry against the target, keeps
// those at or above the threshold and returns them ranked descending,
// truncated to MaxSimilarEntries. Pure: inputs are not mutated and the
// target is excluded by identity.
func FindSimilarEntries(target models.Entry, all []models.Entry) []SimilarityResult {
	targetCtx := AnalyzeContext(target.Content)

	var results []SimilarityResult
	for _, candidate := range all {
		if candidate.ID == target.ID {
			continue
		}

		candidateCtx := AnalyzeContext(candidate.Content)
		score := SimilarityScore(target, targetCtx, candidate, candidateCtx)
		if score >= SimilarityThreshold {
			results = append(results, SimilarityResult{
				Entry:   candidate,
				Context: candidateCtx,
				Score:   score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > MaxSimilarEntries {
		results = results[:MaxSimilarEntries]
	}

	return results
}

// SuccessRate is the fraction of similar entries whose mood follow-up
// recorded a positive outcome. The boolean is false when no entries exist.
func SuccessRate(results []SimilarityResult) (float64, bool) {
	if len(results) == 0 {
		return 0, false
	}

	successes := 0
	for _, r := range results {
		if r.Entry.FeelingBetter() {
			successes++
		}
	}

	return float64(successes) / float64(len(results)), true
}

func tokenize(content string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(content)) {
		if len(w) > 3 {
			tokens[w] = struct{}{}
		}
	}
	return tokens
}

func sharedTagCount(tags1, tags2 []string) int {
	if len(tags1) == 0 || len(tags2) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(tags1))
	for _, t := range tags1 {
		set[t] = struct{}{}
	}

	count := 0
	for _, t := range tags2 {
		if _, ok := set[t]; ok {
			count++
		}
	}
	return count
}
