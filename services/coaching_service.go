package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"JournalGo/analysis"
	"JournalGo/config"
	"JournalGo/models"
)

// CoachingContext carries everything a coaching request derives from an
// entry and its history. It is built once per request and rendered either
// into a generation prompt or into the deterministic fallback text, so
// both paths always reference the same situation and severity.
type CoachingContext struct {
	Entry      models.Entry
	Context    analysis.EntryContext
	Similar    []analysis.SimilarityResult
	Strategies map[string]analysis.StrategyStat
	Patterns   analysis.PersonalPatterns
}

// BuildCoachingContext classifies the entry and runs the retriever,
// extractor and pattern analysis over the user's entry history.
func BuildCoachingContext(entry models.Entry, allEntries []models.Entry) CoachingContext {
	similar := analysis.FindSimilarEntries(entry, allEntries)

	similarEntries := make([]models.Entry, len(similar))
	for i, r := range similar {
		similarEntries[i] = r.Entry
	}

	return CoachingContext{
		Entry:      entry,
		Context:    analysis.AnalyzeContext(entry.Content),
		Similar:    similar,
		Strategies: analysis.AnalyzeCopingStrategies(similarEntries),
		Patterns:   analysis.AnalyzePatterns(similarEntries),
	}
}

// ContextSummary renders the classified context for prompts and fallbacks.
func (cc CoachingContext) ContextSummary() string {
	return fmt.Sprintf(`This person is dealing with a %s %s situation.
The emotional intensity level is %d/5.
Key concerns mentioned: %s`,
		cc.Context.Severity, cc.Context.Situation,
		cc.Context.EmotionalIntensity, cc.Context.KeyConcerns)
}

// SimilarSummary renders the similar-entry retrieval result.
func (cc CoachingContext) SimilarSummary() string {
	if len(cc.Similar) == 0 {
		return "This appears to be a new type of challenge for you."
	}
	top := cc.Similar[0]
	return fmt.Sprintf("Found %d similar situations in your journal history. Most similar: %s situation with %d/5 emotional intensity.",
		len(cc.Similar), top.Context.Situation, top.Context.EmotionalIntensity)
}

// TopStrategies returns canonical strategies at or above a minimum
// effectiveness, most effective first, truncated to n.
func (cc CoachingContext) TopStrategies(n int, minEffectiveness float64) []string {
	type ranked struct {
		name string
		stat analysis.StrategyStat
	}

	var list []ranked
	for name, stat := range cc.Strategies {
		if stat.Effectiveness >= minEffectiveness {
			list = append(list, ranked{name, stat})
		}
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].stat.Effectiveness != list[j].stat.Effectiveness {
			return list[i].stat.Effectiveness > list[j].stat.Effectiveness
		}
		return list[i].name < list[j].name
	})

	if len(list) > n {
		list = list[:n]
	}

	names := make([]string, len(list))
	for i, r := range list {
		names[i] = r.name
	}
	return names
}

func (cc CoachingContext) tagList() string {
	if len(cc.Entry.Tags) == 0 {
		return "None"
	}
	return strings.Join(cc.Entry.Tags, ", ")
}

// CoachingService composes prompts, performs the generation call and falls
// back to deterministic templates when that call fails.
type CoachingService struct {
	model llms.Model
}

func NewCoachingService(client *GeminiClient) *CoachingService {
	return &CoachingService{model: client.Chat}
}

// generate performs one synchronous generation call. No retries; any error
// is the caller's cue to use the fallback path.
func (s *CoachingService) generate(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	response, err := s.model.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	if len(response.Choices) == 0 || response.Choices[0].Content == "" {
		return "", fmt.Errorf("generation returned no content")
	}

	return response.Choices[0].Content, nil
}

// CoachingAdvice returns coaching text for an entry. Generation failures
// are absorbed by the templated fallback and never surfaced to the caller.
func (s *CoachingService) CoachingAdvice(ctx context.Context, cc CoachingContext) string {
	advice, err := s.generate(ctx, coachingPrompt(cc))
	if err != nil {
		config.Logger.Infow("generation unavailable, using content-based fallback",
			"entryID", cc.Entry.ID,
			"error", err,
		)
		return coachingFallback(cc)
	}
	return advice
}

// PersonalizedAdvice returns coaching text grounded in the user's similar
// past entries.
func (s *CoachingService) PersonalizedAdvice(ctx context.Context, cc CoachingContext) string {
	advice, err := s.generate(ctx, personalizedPrompt(cc))
	if err != nil {
		config.Logger.Infow("generation unavailable, using personalized fallback",
			"entryID", cc.Entry.ID,
			"error", err,
		)
		return personalizedFallback(cc)
	}
	return advice
}

// FollowUpAnswer answers a follow-up question about an existing insight.
func (s *CoachingService) FollowUpAnswer(ctx context.Context, cc CoachingContext, question string) string {
	answer, err := s.generate(ctx, followUpPrompt(cc, question))
	if err != nil {
		config.Logger.Infow("generation unavailable, using follow-up fallback",
			"entryID", cc.Entry.ID,
			"error", err,
		)
		return followUpFallback(cc)
	}
	return answer
}

// AssessCapability computes the capability score and returns it with the
// assessment text.
func (s *CoachingService) AssessCapability(ctx context.Context, cc CoachingContext) (float64, string) {
	score := analysis.CalculateCapabilityScore(cc.Context, cc.Similar)

	assessment, err := s.generate(ctx, capabilityPrompt(cc, score))
	if err != nil {
		config.Logger.Infow("generation unavailable, using capability fallback",
			"entryID", cc.Entry.ID,
			"error", err,
		)
		assessment = capabilityFallback(cc, score)
	}

	return score, assessment
}

func coachingPrompt(cc CoachingContext) string {
	return fmt.Sprintf(`You are a compassionate, professional life coach. The person has shared this journal entry:

"%s"
Mood: %s
Tags: %s

IMPORTANT CONTEXT FROM THEIR JOURNAL HISTORY:
%s

Please provide thoughtful, professional advice that acknowledges the seriousness of their situation. This is NOT a casual conversation - this person is dealing with real life challenges.

Structure your response with:
**Understanding** - Acknowledge the gravity of their situation
**Professional Perspective** - Provide mature, adult-level insight
**Practical Steps** - Give 2-3 specific, actionable steps
**Supportive Message** - End with genuine encouragement

Keep it professional, mature, and genuinely helpful. Avoid generic advice.`,
		cc.Entry.Content, cc.Entry.Mood, cc.tagList(), cc.ContextSummary())
}

func personalizedPrompt(cc CoachingContext) string {
	var effective strings.Builder
	for _, name := range cc.TopStrategies(5, 6) {
		stat := cc.Strategies[name]
		fmt.Fprintf(&effective, "- \"%s\" (%.1f/10 effectiveness, used %d times)\n", name, stat.Effectiveness, stat.Attempts)
	}

	return fmt.Sprintf(`You are a compassionate, professional life coach. The person has shared this journal entry:

"%s"
Mood: %s
Tags: %s

REAL ANALYSIS OF THEIR SITUATION:
%s

SIMILAR SITUATIONS FROM THEIR HISTORY:
%s

PAST SUCCESSFUL STRATEGIES (ranked by effectiveness):
%s
COMMON TRIGGERS: %s

Based on their ACTUAL journal content and history, provide personalized advice that:
1. Acknowledges the specific nature of their current challenge
2. References their real past experiences if relevant
3. Gives practical, adult-level guidance
4. Shows you've actually read and understood their situation

Structure with:
**Personal Recognition** - Show you understand their specific situation
**Historical Context** - Reference their real past experiences if relevant
**Tailored Advice** - Give advice specific to their situation
**Encouragement** - Support based on their real patterns`,
		cc.Entry.Content, cc.Entry.Mood, cc.tagList(),
		cc.ContextSummary(), cc.SimilarSummary(),
		effective.String(), strings.Join(cc.Patterns.TopTriggers(5), ", "))
}

func followUpPrompt(cc CoachingContext, question string) string {
	return fmt.Sprintf(`You are a compassionate life coach having a conversation with someone who just shared this journal entry:

Original Journal Entry: "%s"
Original AI Insight: "%s"

The person is now asking this follow-up question: "%s"

Please provide a thoughtful, encouraging response that builds on your previous insight. Keep it warm, practical, and supportive. IMPORTANT: Keep your response concise (2-3 sentences maximum) and easy to read with proper line breaks.`,
		cc.Entry.Content, cc.Entry.AIInsight, question)
}

func capabilityPrompt(cc CoachingContext, score float64) string {
	return fmt.Sprintf(`You are a professional life coach assessing someone's capability to handle a challenging situation.

JOURNAL ENTRY: "%s"
MOOD: %s
TAGS: %s

REAL SITUATION ANALYSIS:
%s

SIMILAR SITUATIONS FROM THEIR HISTORY:
%s

CAPABILITY SCORE: %.1f/10

Based on their ACTUAL journal content and history, provide a professional capability assessment that:
1. Acknowledges the real gravity of their situation
2. References their actual past experiences if relevant
3. Gives an honest, realistic assessment of their capability
4. Provides specific, actionable guidance

Structure with:
**Situation Assessment** - Professional evaluation of the challenge
**Capability Analysis** - Honest assessment based on their real history
**Evidence-Based Insights** - What their journal actually shows about their capabilities
**Professional Recommendations** - Specific, actionable advice

Keep it professional, honest, and genuinely helpful. This person is dealing with real life challenges.`,
		cc.Entry.Content, cc.Entry.Mood, cc.tagList(),
		cc.ContextSummary(), cc.SimilarSummary(), score)
}

func coachingFallback(cc CoachingContext) string {
	return fmt.Sprintf(`**Understanding:**
I can see you're dealing with a %s %s situation. This is a real, significant challenge that deserves serious attention.

**Professional Perspective:**
Based on what you've shared, this isn't a minor issue that can be solved with simple advice. %s challenges require thoughtful, strategic approaches.

**Practical Steps:**
1. Take time to process your emotions - this is a legitimate stressor
2. Consider seeking professional support if this continues to impact your daily life
3. Focus on one small step at a time rather than trying to solve everything at once

**Supportive Message:**
Your feelings are valid, and it's okay to need support during difficult times. You're taking the right step by journaling about this.`,
		cc.Context.Severity, cc.Context.Situation, cc.Context.Situation)
}

func personalizedFallback(cc CoachingContext) string {
	if len(cc.Similar) > 0 {
		return fmt.Sprintf(`**Personal Recognition:**
I can see this is a %s %s challenge. Based on your journal history, you've faced similar situations before.

**Historical Context:**
You've navigated %d similar challenges in the past. This shows you have experience with this type of situation.

**Tailored Advice:**
Since this isn't your first time dealing with %s challenges, draw on what you've learned from previous experiences. What strategies worked for you before?

**Encouragement:**
Your past experiences prove you have the capability to handle this. You're not starting from zero - you have a foundation of resilience.`,
			cc.Context.Severity, cc.Context.Situation, len(cc.Similar), cc.Context.Situation)
	}

	return fmt.Sprintf(`**Personal Recognition:**
This appears to be a new type of challenge for you. It's completely normal to feel uncertain when facing a %s %s situation for the first time.

**Historical Context:**
While this specific situation is new, you've shown resilience in other areas of your life through your journaling.

**Tailored Advice:**
Approach this as a learning experience. Start small, be patient with yourself, and don't hesitate to seek support.

**Encouragement:**
Facing new challenges shows courage and growth. You're building new capabilities with each step you take.`,
		cc.Context.Severity, cc.Context.Situation)
}

func followUpFallback(cc CoachingContext) string {
	return fmt.Sprintf(`Thank you for staying with this. Given the %s %s situation you described, the guidance above still applies: focus on one small, concrete step today.

Be patient with yourself - working through this takes time, and checking in like this is itself progress.`,
		cc.Context.Severity, cc.Context.Situation)
}

func capabilityFallback(cc CoachingContext, score float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `**Situation Assessment:**
You're dealing with a %s %s challenge. This is a legitimate, significant life situation that requires serious attention.

**Capability Analysis:**
Your capability score is %.1f/10. This assessment is based on your actual journal content and history, not generic assumptions.

**Evidence-Based Insights:**
`, cc.Context.Severity, cc.Context.Situation, score)

	if len(cc.Similar) > 0 {
		fmt.Fprintf(&sb, `Based on your journal history, you've faced %d similar challenges before. This shows you have experience with this type of situation.

Your past experiences demonstrate that you have the capability to navigate difficult circumstances.`, len(cc.Similar))
	} else {
		sb.WriteString(`This appears to be a new type of challenge for you. While this specific situation is unfamiliar, your journaling shows you have general coping skills and self-awareness.`)
	}

	fmt.Fprintf(&sb, `

**Professional Recommendations:**
1. Acknowledge the real gravity of your situation - this isn't a minor issue
2. Draw on your past experiences if you have similar challenges in your history
3. Consider seeking professional support if this continues to impact your daily life
4. Focus on one small step at a time rather than trying to solve everything at once

**Realistic Assessment:**
Your capability score of %.1f/10 reflects that while this is a challenging situation, you have tools and resources to work through it. The key is to approach it systematically and not underestimate the difficulty.`, score)

	return sb.String()
}
