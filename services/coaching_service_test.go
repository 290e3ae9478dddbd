package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"JournalGo/analysis"
	"JournalGo/config"
	"JournalGo/models"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

// stubModel answers every generation call with a fixed reply or error.
type stubModel struct {
	reply string
	err   error
}

func (m *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.reply}},
	}, nil
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return m.reply, m.err
}

func workContext() CoachingContext {
	return CoachingContext{
		Entry: models.Entry{
			ID:      "entry-1",
			Content: "I'm extremely anxious about losing my job after the layoffs.",
			Mood:    "anxious",
		},
		Context: analysis.EntryContext{
			Situation:          analysis.SituationWork,
			Severity:           analysis.SeverityHigh,
			EmotionalIntensity: 4,
			KeyConcerns:        "employment and income",
		},
	}
}

func TestCoachingAdvice_ReturnsModelReplyVerbatim(t *testing.T) {
	service := &CoachingService{model: &stubModel{reply: "Take a breath and make a plan."}}

	advice := service.CoachingAdvice(context.Background(), workContext())

	assert.Equal(t, "Take a breath and make a plan.", advice)
}

func TestCoachingAdvice_FallbackMatchesClassifiedContext(t *testing.T) {
	service := &CoachingService{model: &stubModel{err: errors.New("upstream unavailable")}}
	cc := workContext()

	advice := service.CoachingAdvice(context.Background(), cc)

	require.NotEmpty(t, advice)
	// The fallback must describe the same situation the prompt would have.
	assert.Contains(t, advice, "high work situation")
	assert.Contains(t, coachingPrompt(cc), "high work situation")
}

func TestCoachingAdvice_EmptyChoicesTreatedAsFailure(t *testing.T) {
	service := &CoachingService{model: &stubModel{reply: ""}}

	advice := service.CoachingAdvice(context.Background(), workContext())

	assert.Contains(t, advice, "high work situation")
}

func TestPersonalizedAdvice_FallbackReferencesHistoryCount(t *testing.T) {
	service := &CoachingService{model: &stubModel{err: errors.New("timeout")}}
	cc := workContext()
	cc.Similar = []analysis.SimilarityResult{
		{Entry: models.Entry{ID: "a"}},
		{Entry: models.Entry{ID: "b"}},
		{Entry: models.Entry{ID: "c"}},
	}

	advice := service.PersonalizedAdvice(context.Background(), cc)

	assert.Contains(t, advice, "3 similar challenges")
}

func TestPersonalizedAdvice_FallbackWithoutHistory(t *testing.T) {
	service := &CoachingService{model: &stubModel{err: errors.New("timeout")}}

	advice := service.PersonalizedAdvice(context.Background(), workContext())

	assert.Contains(t, advice, "new type of challenge")
}

func TestFollowUpAnswer_FallbackStillAnswers(t *testing.T) {
	service := &CoachingService{model: &stubModel{err: errors.New("timeout")}}

	answer := service.FollowUpAnswer(context.Background(), workContext(), "What should I do first?")

	require.NotEmpty(t, answer)
	assert.Contains(t, answer, "high work situation")
}

func TestAssessCapability_FallbackEmbedsScore(t *testing.T) {
	service := &CoachingService{model: &stubModel{err: errors.New("timeout")}}

	score, assessment := service.AssessCapability(context.Background(), workContext())

	assert.GreaterOrEqual(t, score, 1.0)
	assert.LessOrEqual(t, score, 10.0)
	assert.Contains(t, assessment, fmt.Sprintf("%.1f/10", score))
}

func TestAssessCapability_ScoreIndependentOfGeneration(t *testing.T) {
	cc := workContext()
	healthy := &CoachingService{model: &stubModel{reply: "You can handle this."}}
	broken := &CoachingService{model: &stubModel{err: errors.New("timeout")}}

	scoreHealthy, _ := healthy.AssessCapability(context.Background(), cc)
	scoreBroken, _ := broken.AssessCapability(context.Background(), cc)

	assert.InDelta(t, scoreHealthy, scoreBroken, 1e-9)
}

func TestBuildCoachingContext_UsesOnlySimilarHistory(t *testing.T) {
	entry := models.Entry{
		ID:        "target",
		Content:   "Deadline stress piling up at work again.",
		Timestamp: time.Now(),
	}
	history := []models.Entry{
		entry,
		{
			ID:           "past-work",
			Content:      "Deadline stress piling up at work again. I tried deep breaths and felt calmer.",
			MoodFollowUp: map[string]string{"feeling_better": "yes"},
		},
		{
			ID:      "unrelated",
			Content: "Lovely quiet picnic by the river, completely unrelated note.",
		},
	}

	cc := BuildCoachingContext(entry, history)

	assert.Equal(t, analysis.SituationWork, cc.Context.Situation)
	require.Len(t, cc.Similar, 1)
	assert.Equal(t, "past-work", cc.Similar[0].Entry.ID)
	assert.Contains(t, cc.Strategies, analysis.StrategyBreathing)
}

func TestContextSummary_RendersAllFields(t *testing.T) {
	summary := workContext().ContextSummary()

	assert.Contains(t, summary, "high work situation")
	assert.Contains(t, summary, "4/5")
	assert.Contains(t, summary, "employment and income")
}

func TestSimilarSummary_EmptyHistory(t *testing.T) {
	assert.Equal(t, "This appears to be a new type of challenge for you.", workContext().SimilarSummary())
}

func TestTopStrategies_FiltersAndRanks(t *testing.T) {
	cc := workContext()
	cc.Strategies = map[string]analysis.StrategyStat{
		analysis.StrategyBreathing:        {Attempts: 4, Successes: 4, Effectiveness: 10},
		analysis.StrategyTalking:          {Attempts: 4, Successes: 3, Effectiveness: 7.5},
		analysis.StrategyRest:             {Attempts: 4, Successes: 1, Effectiveness: 2.5},
		analysis.StrategyPhysicalActivity: {Attempts: 2, Successes: 2, Effectiveness: 10},
	}

	top := cc.TopStrategies(2, 6)

	assert.Equal(t, []string{analysis.StrategyBreathing, analysis.StrategyPhysicalActivity}, top)
}
