package analysis

// situationMultipliers scale difficulty by how complex a category of
// problem tends to be.
var situationMultipliers = map[string]float64{
	SituationWork:          1.1,
	SituationRelationships: 1.2,
	SituationHealth:        1.3,
	SituationFinancial:     1.1,
	SituationEducation:     1.0,
	SituationGeneral:       1.0,
}

// CalculateCapabilityScore estimates how difficult the current situation is
// for this user given their history with similar entries. History-driven:
// the base is the failure rate of similar past entries scaled to 10, with
// no history giving a neutral 5, adjusted by current intensity and by the
// situation multiplier. Always in [1,10] and deterministic.
func CalculateCapabilityScore(ctx EntryContext, similar []SimilarityResult) float64 {
	rate, ok := SuccessRate(similar)
	if !ok {
		return 5
	}

	score := (1 - rate) * 10

	if ctx.EmotionalIntensity >= 4 {
		score *= 1.2
	} else if ctx.EmotionalIntensity <= 2 {
		score *= 0.8
	}

	if mult, found := situationMultipliers[ctx.Situation]; found {
		score *= mult
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}
