package analysis

import (
	"sort"
	"strings"

	"JournalGo/models"
)

// PersonalPatterns summarises what a user's similar past entries show:
// recurring triggers, how often they recovered, and growth over time.
type PersonalPatterns struct {
	CommonTriggers      map[string]int
	RecoverySuccessful  int
	RecoveryChallenging int
	GrowthIndicators    []string
}

var triggerLeadIns = []string{
	"because", "due to", "since", "when", "after", "before",
	"triggered by", "caused by", "result of",
}

// ExtractTriggers pulls trigger clauses out of entry content, using the
// same lowered-text clause capture as the strategy extractor.
func ExtractTriggers(content string) []string {
	var triggers []string
	lower := strings.ToLower(content)

	for _, leadIn := range triggerLeadIns {
		idx := strings.Index(lower, leadIn)
		if idx < 0 {
			continue
		}
		clause := clauseAfter(lower, idx+len(leadIn))
		if len(clause) >= 6 && len(clause) < 200 {
			triggers = append(triggers, clause)
		}
	}

	return triggers
}

// AnalyzePatterns extracts personal patterns from a set of entries,
// typically the similar-entry result. Inputs are not mutated.
func AnalyzePatterns(entries []models.Entry) PersonalPatterns {
	patterns := PersonalPatterns{
		CommonTriggers: make(map[string]int),
	}

	for _, entry := range entries {
		for _, trigger := range ExtractTriggers(entry.Content) {
			patterns.CommonTriggers[trigger]++
		}

		if entry.FeelingBetter() {
			patterns.RecoverySuccessful++
		} else {
			patterns.RecoveryChallenging++
		}
	}

	if len(entries) > 1 {
		ordered := make([]models.Entry, len(entries))
		copy(ordered, entries)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Timestamp.Before(ordered[j].Timestamp)
		})

		first := ordered[0]
		last := ordered[len(ordered)-1]
		if !first.FeelingBetter() && last.FeelingBetter() {
			patterns.GrowthIndicators = append(patterns.GrowthIndicators, "Improved coping over time")
		}
	}

	return patterns
}

// TopTriggers returns the most frequent triggers, most common first,
// truncated to n. Ties break alphabetically so the order is deterministic.
func (p PersonalPatterns) TopTriggers(n int) []string {
	type counted struct {
		trigger string
		count   int
	}

	ranked := make([]counted, 0, len(p.CommonTriggers))
	for trigger, count := range p.CommonTriggers {
		ranked = append(ranked, counted{trigger, count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].trigger < ranked[j].trigger
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	triggers := make([]string, len(ranked))
	for i, c := range ranked {
		triggers[i] = c.trigger
	}
	return triggers
}
