package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"JournalGo/models"
)

func similarWithOutcome(id string, better bool) SimilarityResult {
	answer := "no"
	if better {
		answer = "yes"
	}
	return SimilarityResult{
		Entry: models.Entry{
			ID:           id,
			MoodFollowUp: map[string]string{"feeling_better": answer},
		},
	}
}

func TestCalculateCapabilityScore_NoHistoryIsNeutral(t *testing.T) {
	ctx := EntryContext{
		Situation:          SituationHealth,
		EmotionalIntensity: 5,
	}

	score := CalculateCapabilityScore(ctx, nil)

	assert.InDelta(t, 5.0, score, 1e-9)
}

func TestCalculateCapabilityScore_AllFailuresClampedToTen(t *testing.T) {
	ctx := EntryContext{
		Situation:          SituationHealth,
		EmotionalIntensity: 5,
	}
	history := []SimilarityResult{
		similarWithOutcome("1", false),
		similarWithOutcome("2", false),
	}

	score := CalculateCapabilityScore(ctx, history)

	assert.InDelta(t, 10.0, score, 1e-9)
}

func TestCalculateCapabilityScore_AllSuccessesClampedToOne(t *testing.T) {
	ctx := EntryContext{
		Situation:          SituationGeneral,
		EmotionalIntensity: 1,
	}
	history := []SimilarityResult{
		similarWithOutcome("1", true),
		similarWithOutcome("2", true),
	}

	score := CalculateCapabilityScore(ctx, history)

	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestCalculateCapabilityScore_AlwaysInRange(t *testing.T) {
	histories := [][]SimilarityResult{
		nil,
		{similarWithOutcome("1", true)},
		{similarWithOutcome("1", false)},
		{similarWithOutcome("1", true), similarWithOutcome("2", false)},
	}
	situations := []string{
		SituationWork, SituationRelationships, SituationHealth,
		SituationFinancial, SituationEducation, SituationGeneral,
	}

	for _, history := range histories {
		for _, situation := range situations {
			for intensity := 1; intensity <= 5; intensity++ {
				ctx := EntryContext{Situation: situation, EmotionalIntensity: intensity}
				score := CalculateCapabilityScore(ctx, history)
				assert.GreaterOrEqual(t, score, 1.0)
				assert.LessOrEqual(t, score, 10.0)
			}
		}
	}
}

func TestCalculateCapabilityScore_SituationComplexityOrdering(t *testing.T) {
	// Half the similar history went well, leaving a mid-range base that the
	// situation multiplier can separate without hitting the clamps.
	history := []SimilarityResult{
		similarWithOutcome("1", true),
		similarWithOutcome("2", false),
	}

	score := func(situation string) float64 {
		return CalculateCapabilityScore(EntryContext{Situation: situation, EmotionalIntensity: 3}, history)
	}

	assert.Greater(t, score(SituationHealth), score(SituationRelationships))
	assert.Greater(t, score(SituationRelationships), score(SituationWork))
	assert.Greater(t, score(SituationWork), score(SituationEducation))
	assert.InDelta(t, score(SituationWork), score(SituationFinancial), 1e-9)
}

func TestCalculateCapabilityScore_Deterministic(t *testing.T) {
	ctx := EntryContext{Situation: SituationWork, EmotionalIntensity: 4}
	history := []SimilarityResult{
		similarWithOutcome("1", true),
		similarWithOutcome("2", false),
		similarWithOutcome("3", false),
	}

	first := CalculateCapabilityScore(ctx, history)
	for i := 0; i < 10; i++ {
		assert.InDelta(t, first, CalculateCapabilityScore(ctx, history), 1e-9)
	}
}
