package interview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/models"
)

func testInterviewConfig() *config.InterviewConfig {
	return &config.InterviewConfig{
		RuntimeAddress: "localhost:0",
		MaxOwnerTurns:  3,
		TurnTimeout:    time.Second,
		JudgeTimeout:   time.Second,
		CallRetries:    2,
		RetryBackoff:   time.Millisecond,
	}
}

func testMission(t *testing.T) *ent.InterviewMission {
	t.Helper()
	payload, err := models.MissionPayload{
		MissionID:     "mission-1",
		OwnerUserID:   "owner-1",
		VisitorUserID: "visitor-1",
		OwnerProfile:  map[string]any{"bio": "likes chess"},
		OwnerCircle: models.CircleContext{
			CircleID:     "circle-1",
			Objective:    "find a chess partner",
			RadiusMeters: 500,
		},
		Context: map[string]any{"distance_meters": 42.0},
	}.AsMap()
	require.NoError(t, err)
	return &ent.InterviewMission{ID: "mission-1", Payload: payload}
}

// scriptedRuntime plays back canned turns; unscripted turns get generated
// filler. Failure counters make the first N calls of a role fail.
type scriptedRuntime struct {
	mu              sync.Mutex
	ownerCalls      int
	visitorCalls    int
	ownerScript     []TurnOutput
	visitorScript   []TurnOutput
	ownerFailures   int
	visitorFailures int
	lastVisitorIn   TurnInput
}

func (s *scriptedRuntime) RunOwnerTurn(_ context.Context, in TurnInput) (TurnOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerCalls++
	if s.ownerFailures > 0 {
		s.ownerFailures--
		return TurnOutput{}, errors.New("runtime hiccup")
	}
	if idx := in.Turn - 1; idx < len(s.ownerScript) {
		return s.ownerScript[idx], nil
	}
	return TurnOutput{AsUserMessage: fmt.Sprintf("owner question %d", in.Turn)}, nil
}

func (s *scriptedRuntime) RunVisitorTurn(_ context.Context, in TurnInput) (TurnOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visitorCalls++
	s.lastVisitorIn = in
	if s.visitorFailures > 0 {
		s.visitorFailures--
		return TurnOutput{}, errors.New("runtime hiccup")
	}
	if idx := in.Turn - 1; idx < len(s.visitorScript) {
		return s.visitorScript[idx], nil
	}
	return TurnOutput{AsUserMessage: fmt.Sprintf("visitor answer %d", in.Turn)}, nil
}

type scriptedJudge struct {
	mu       sync.Mutex
	calls    int
	failures int
	lastIn   JudgeInput
	verdict  JudgeVerdict
}

func (j *scriptedJudge) Evaluate(_ context.Context, in JudgeInput) (JudgeVerdict, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls++
	j.lastIn = in
	if j.failures > 0 {
		j.failures--
		return JudgeVerdict{}, errors.New("judge unavailable")
	}
	return j.verdict, nil
}

func speakers(transcript []models.TranscriptTurn) []string {
	out := make([]string, len(transcript))
	for i, turn := range transcript {
		out[i] = turn.Speaker
	}
	return out
}

func TestRunner_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the full interview when nobody stops", func(t *testing.T) {
		confidence := 0.9
		runtime := &scriptedRuntime{}
		judge := &scriptedJudge{verdict: JudgeVerdict{
			ShouldNotify:     true,
			NotificationText: "You two should meet!",
			SummaryText:      "objectives align",
			Confidence:       &confidence,
		}}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		result, err := runner.Execute(ctx, testMission(t))
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.True(t, result.Success)
		assert.True(t, result.MatchMade)
		assert.Equal(t, []string{
			"owner_agent", "visitor_agent",
			"owner_agent", "visitor_agent",
			"owner_agent", "visitor_agent",
		}, speakers(result.Transcript))
		assert.Equal(t, "owner question 1", result.Transcript[0].Content)
		assert.Equal(t, "visitor answer 3", result.Transcript[5].Content)

		require.NotNil(t, result.JudgeDecision)
		assert.True(t, result.JudgeDecision.MatchMade)
		assert.Equal(t, "objectives align", result.JudgeDecision.Reason)
		assert.Equal(t, "You two should meet!", result.JudgeDecision.Notification)
		require.NotNil(t, result.JudgeDecision.Confidence)
		assert.InDelta(t, 0.9, *result.JudgeDecision.Confidence, 1e-9)

		assert.Equal(t, 1, judge.calls)
		assert.Equal(t, "find a chess partner", judge.lastIn.OwnerObjective)
		assert.Len(t, judge.lastIn.Transcript, 6)

		// The visitor saw the owner's question before answering.
		assert.Len(t, runtime.lastVisitorIn.Transcript, 5)
	})

	t.Run("a no-notify verdict completes without a match", func(t *testing.T) {
		runtime := &scriptedRuntime{}
		judge := &scriptedJudge{verdict: JudgeVerdict{ShouldNotify: false, SummaryText: "not a fit"}}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		result, err := runner.Execute(ctx, testMission(t))
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.MatchMade)
		require.NotNil(t, result.JudgeDecision)
		assert.False(t, result.JudgeDecision.MatchMade)
		assert.Equal(t, "not a fit", result.JudgeDecision.Reason)
	})

	t.Run("owner stop ends the conversation before the visitor replies", func(t *testing.T) {
		runtime := &scriptedRuntime{ownerScript: []TurnOutput{
			{AsUserMessage: "first question"},
			{AsUserMessage: "that settles it", StopSuggested: true},
		}}
		judge := &scriptedJudge{}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		result, err := runner.Execute(ctx, testMission(t))
		require.NoError(t, err)
		assert.Equal(t, []string{"owner_agent", "visitor_agent", "owner_agent"},
			speakers(result.Transcript))
		assert.Equal(t, 1, judge.calls, "judge still evaluates a stopped conversation")
	})

	t.Run("visitor stop ends the conversation", func(t *testing.T) {
		runtime := &scriptedRuntime{visitorScript: []TurnOutput{
			{AsUserMessage: "please stop asking", StopSuggested: true},
		}}
		judge := &scriptedJudge{}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		result, err := runner.Execute(ctx, testMission(t))
		require.NoError(t, err)
		assert.Equal(t, []string{"owner_agent", "visitor_agent"}, speakers(result.Transcript))
	})

	t.Run("retries a flaky turn within budget", func(t *testing.T) {
		runtime := &scriptedRuntime{ownerFailures: 1}
		judge := &scriptedJudge{}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		result, err := runner.Execute(ctx, testMission(t))
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 4, runtime.ownerCalls, "three successful turns plus one retried failure")
	})

	t.Run("gives up once the retry budget is spent", func(t *testing.T) {
		runtime := &scriptedRuntime{ownerFailures: 10}
		judge := &scriptedJudge{}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		result, err := runner.Execute(ctx, testMission(t))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "owner turn 1")
		assert.Equal(t, 3, runtime.ownerCalls, "initial attempt plus CallRetries retries")
		assert.Equal(t, 0, judge.calls, "no verdict without a conversation")
	})

	t.Run("judge failure fails the mission", func(t *testing.T) {
		runtime := &scriptedRuntime{}
		judge := &scriptedJudge{failures: 10}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		result, err := runner.Execute(ctx, testMission(t))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "judge evaluation")
	})

	t.Run("a malformed payload is rejected before any turn", func(t *testing.T) {
		runtime := &scriptedRuntime{}
		judge := &scriptedJudge{}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		mission := &ent.InterviewMission{
			ID:      "mission-bad",
			Payload: map[string]interface{}{"owner_circle": "not an object"},
		}
		result, err := runner.Execute(ctx, mission)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 0, runtime.ownerCalls)
	})

	t.Run("a cancelled mission context stops retrying", func(t *testing.T) {
		cancelledCtx, cancel := context.WithCancel(ctx)
		cancel()

		runtime := &scriptedRuntime{ownerFailures: 10}
		judge := &scriptedJudge{}
		runner := NewRunner(testInterviewConfig(), runtime, judge)

		_, err := runner.Execute(cancelledCtx, testMission(t))
		require.Error(t, err)
		assert.Equal(t, 1, runtime.ownerCalls, "no retries after cancellation")
	})
}
