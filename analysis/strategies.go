package analysis

import (
	"strings"
	"unicode"

	"JournalGo/models"
)

// Canonical coping-strategy names free-text mentions normalize into.
const (
	StrategyPhysicalActivity = "Physical Activity"
	StrategyTalking          = "Talking to Someone"
	StrategyWriting          = "Writing/Journaling"
	StrategyBreathing        = "Breathing/Meditation"
	StrategyRest             = "Taking Breaks/Rest"
	StrategyPlanning         = "Planning/Organizing"
)

// StrategyStat aggregates outcomes for one canonical strategy. A stat only
// exists after a first attempt, so Effectiveness is never a division by zero.
type StrategyStat struct {
	Attempts      int
	Successes     int
	Effectiveness float64 // successes/attempts * 10, in [0,10]
}

// strategyLeadIns are the first-person phrases that introduce a coping
// strategy in entry text.
var strategyLeadIns = []string{
	"i tried", "i did", "i used", "i practiced", "i focused on",
	"i reminded myself", "i told myself", "i decided to",
	"i took a", "i went for a", "i called", "i talked to",
	"i wrote", "i read", "i listened to", "i watched",
	"i exercised", "i meditated", "i prayed", "i took deep breaths",
}

// ExtractStrategies pulls raw strategy clauses out of entry content: the
// text following a lead-in phrase up to the next sentence terminator,
// kept when its length is in [6,200). Matching and capture both run on
// the lowered text, so clauses come back lowercase.
func ExtractStrategies(content string) []string {
	var strategies []string
	lower := strings.ToLower(content)

	for _, leadIn := range strategyLeadIns {
		idx := strings.Index(lower, leadIn)
		if idx < 0 {
			continue
		}
		clause := clauseAfter(lower, idx+len(leadIn))
		if len(clause) >= 6 && len(clause) < 200 {
			strategies = append(strategies, clause)
		}
	}

	return strategies
}

// NormalizeStrategy maps a raw strategy mention into a canonical bucket by
// substring match, or keeps it as its own capitalized label.
func NormalizeStrategy(strategy string) string {
	normalized := strings.ToLower(strings.TrimSpace(strategy))

	switch {
	case containsAny(normalized, []string{"exercise", "workout", "run", "walk"}):
		return StrategyPhysicalActivity
	case containsAny(normalized, []string{"talk", "call", "discuss"}):
		return StrategyTalking
	case containsAny(normalized, []string{"writ", "journal", "note"}):
		return StrategyWriting
	case containsAny(normalized, []string{"breathe", "breath", "meditation", "mindfulness"}):
		return StrategyBreathing
	case containsAny(normalized, []string{"break", "rest", "sleep"}):
		return StrategyRest
	case containsAny(normalized, []string{"plan", "organize", "list"}):
		return StrategyPlanning
	}

	return capitalize(strings.TrimSpace(strategy))
}

// AnalyzeCopingStrategies aggregates attempt and success counts per
// canonical strategy across a collection of entries, typically the
// similar-entry result. The explicit what_helped follow-up answer counts
// as a mention alongside anything extracted from the content.
func AnalyzeCopingStrategies(entries []models.Entry) map[string]StrategyStat {
	stats := make(map[string]StrategyStat)

	for _, entry := range entries {
		mentions := ExtractStrategies(entry.Content)
		if helped := entry.WhatHelped(); helped != "" {
			mentions = append(mentions, helped)
		}

		success := entry.FeelingBetter()
		for _, mention := range mentions {
			name := NormalizeStrategy(mention)
			stat := stats[name]
			stat.Attempts++
			if success {
				stat.Successes++
			}
			stat.Effectiveness = float64(stat.Successes) / float64(stat.Attempts) * 10
			stats[name] = stat
		}
	}

	return stats
}

// clauseAfter returns the text from offset to the next sentence terminator,
// trimmed.
func clauseAfter(content string, offset int) string {
	rest := content[offset:]
	if end := strings.IndexAny(rest, ".!?"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
