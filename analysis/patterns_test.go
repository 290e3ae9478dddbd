package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JournalGo/models"
)

func TestExtractTriggers_CapturesClauseAfterLeadIn(t *testing.T) {
	triggers := ExtractTriggers("Felt awful today because my project got cancelled. Went home early.")

	require.Len(t, triggers, 1)
	assert.Equal(t, "my project got cancelled", triggers[0])
}

func TestExtractTriggers_MultiByteContent(t *testing.T) {
	content := strings.Repeat("Ⱥ", 20) + " all this because my manager changed the plan."

	triggers := ExtractTriggers(content)

	require.Len(t, triggers, 1)
	assert.Equal(t, "my manager changed the plan", triggers[0])
}

func TestExtractTriggers_ShortClauseDropped(t *testing.T) {
	assert.Empty(t, ExtractTriggers("Sad because why."))
}

func TestAnalyzePatterns_CountsRecoveryOutcomes(t *testing.T) {
	entries := []models.Entry{
		{ID: "1", Content: "ok", MoodFollowUp: map[string]string{"feeling_better": "yes"}},
		{ID: "2", Content: "ok", MoodFollowUp: map[string]string{"feeling_better": "no"}},
		{ID: "3", Content: "ok"},
	}

	patterns := AnalyzePatterns(entries)

	assert.Equal(t, 1, patterns.RecoverySuccessful)
	assert.Equal(t, 2, patterns.RecoveryChallenging)
}

func TestAnalyzePatterns_RepeatedTriggerCounted(t *testing.T) {
	entries := []models.Entry{
		{ID: "1", Content: "Stressed because my manager changed the plan."},
		{ID: "2", Content: "Upset again because my manager changed the plan."},
	}

	patterns := AnalyzePatterns(entries)

	assert.Equal(t, 2, patterns.CommonTriggers["my manager changed the plan"])
}

func TestAnalyzePatterns_GrowthIndicatorWhenCopingImproves(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		// Deliberately out of chronological order.
		{ID: "2", Content: "later", Timestamp: base.AddDate(0, 1, 0), MoodFollowUp: map[string]string{"feeling_better": "yes"}},
		{ID: "1", Content: "earlier", Timestamp: base, MoodFollowUp: map[string]string{"feeling_better": "no"}},
	}

	patterns := AnalyzePatterns(entries)

	assert.Contains(t, patterns.GrowthIndicators, "Improved coping over time")
}

func TestAnalyzePatterns_NoGrowthIndicatorWhenCopingDeclines(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		{ID: "1", Content: "earlier", Timestamp: base, MoodFollowUp: map[string]string{"feeling_better": "yes"}},
		{ID: "2", Content: "later", Timestamp: base.AddDate(0, 1, 0), MoodFollowUp: map[string]string{"feeling_better": "no"}},
	}

	patterns := AnalyzePatterns(entries)

	assert.Empty(t, patterns.GrowthIndicators)
}

func TestAnalyzePatterns_DoesNotReorderInput(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		{ID: "2", Content: "later", Timestamp: base.AddDate(0, 1, 0)},
		{ID: "1", Content: "earlier", Timestamp: base},
	}

	AnalyzePatterns(entries)

	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "1", entries[1].ID)
}

func TestTopTriggers_RankedWithDeterministicTieBreak(t *testing.T) {
	patterns := PersonalPatterns{
		CommonTriggers: map[string]int{
			"deadline moved up": 3,
			"traffic":           1,
			"bad sleep":         1,
			"argument at home":  2,
		},
	}

	top := patterns.TopTriggers(3)

	assert.Equal(t, []string{"deadline moved up", "argument at home", "bad sleep"}, top)
}

func TestTopTriggers_TruncatesToN(t *testing.T) {
	patterns := PersonalPatterns{
		CommonTriggers: map[string]int{"a little thing": 1, "b little thing": 1, "c little thing": 1},
	}

	assert.Len(t, patterns.TopTriggers(2), 2)
}
