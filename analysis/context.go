package analysis

import "strings"

// Situation categories assigned by keyword match.
const (
	SituationWork          = "work"
	SituationRelationships = "relationships"
	SituationHealth        = "health"
	SituationFinancial     = "financial"
	SituationEducation     = "education"
	SituationGeneral       = "general"
)

// Severity levels derived from the classified context.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityModerate = "moderate"
	SeverityLow      = "low"
)

// EntryContext is the classified context of one entry.
type EntryContext struct {
	Situation          string
	Severity           string
	EmotionalIntensity int
	KeyConcerns        string
}

// situationKeywords are tested in order; the first category with a hit wins,
// so "I lost my job and I'm anxious about money" classifies as work, not
// financial.
var situationKeywords = []struct {
	situation string
	keywords  []string
}{
	{SituationWork, []string{"work", "job", "career", "deadline", "boss", "colleague", "layoff", "fired", "unemployment"}},
	{SituationRelationships, []string{"relationship", "friend", "family", "partner", "marriage", "divorce", "breakup"}},
	{SituationHealth, []string{"health", "sick", "pain", "doctor", "hospital", "diagnosis"}},
	{SituationFinancial, []string{"money", "financial", "bill", "debt", "expense", "bankruptcy"}},
	{SituationEducation, []string{"study", "exam", "test", "assignment", "school", "college"}},
}

var intensityWords = []struct {
	word  string
	delta int
}{
	{"very", 1},
	{"extremely", 2},
	{"terribly", 2},
	{"awfully", 2},
	{"completely", 1},
	{"overwhelmed", 2},
	{"devastated", 3},
	{"crushed", 3},
	{"destroyed", 3},
	{"slightly", -1},
	{"a bit", -1},
	{"somewhat", 0},
	{"moderately", 0},
}

var anxietyWords = []string{"anxious", "worried", "scared"}
var despairWords = []string{"depressed", "hopeless", "suicide"}

// AnalyzeContext classifies entry content into a situation category, a
// severity level and an emotional-intensity scalar in [1,5]. Deterministic,
// no side effects.
func AnalyzeContext(content string) EntryContext {
	lower := strings.ToLower(content)

	situation := SituationGeneral
	for _, sk := range situationKeywords {
		if containsAny(lower, sk.keywords) {
			situation = sk.situation
			break
		}
	}

	intensity := 1
	for _, iw := range intensityWords {
		if strings.Contains(lower, iw.word) {
			intensity += iw.delta
		}
	}

	// Emotion words override the adverb arithmetic.
	critical := containsAny(lower, despairWords)
	if critical {
		intensity = 5
	} else if containsAny(lower, anxietyWords) && intensity < 4 {
		intensity = 4
	}

	intensity = clampInt(intensity, 1, 5)

	severity := SeverityModerate
	switch {
	case critical:
		severity = SeverityCritical
	case intensity >= 4 && situation != SituationGeneral:
		severity = SeverityHigh
	case intensity <= 2:
		severity = SeverityLow
	}

	return EntryContext{
		Situation:          situation,
		Severity:           severity,
		EmotionalIntensity: intensity,
		KeyConcerns:        extractKeyConcerns(lower),
	}
}

var concernChecks = []struct {
	label    string
	keywords []string
}{
	{"Career/Job security", []string{"job", "work", "career"}},
	{"Financial stability", []string{"money", "financial", "bill"}},
	{"Relationships", []string{"relationship", "marriage", "family"}},
	{"Health concerns", []string{"health", "sick", "pain"}},
	{"Anxiety/Fear", []string{"anxious", "worried", "scared"}},
	{"Depression/Low mood", []string{"depressed", "hopeless", "sad"}},
}

func extractKeyConcerns(lower string) string {
	var concerns []string
	for _, check := range concernChecks {
		if containsAny(lower, check.keywords) {
			concerns = append(concerns, check.label)
		}
	}
	if len(concerns) == 0 {
		return "General life challenges"
	}
	return strings.Join(concerns, ", ")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
