package interview

import (
	"context"

	"github.com/venn-social/vennd/pkg/models"
)

// TurnInput is the context an agent sees before speaking.
type TurnInput struct {
	Mission models.MissionPayload
	// Transcript is the conversation so far, oldest first.
	Transcript []models.TranscriptTurn
	// Turn is the 1-based owner turn number driving this exchange.
	Turn int
}

// TurnOutput is one agent utterance.
type TurnOutput struct {
	// AsUserMessage is the utterance, phrased as if the represented user
	// had said it.
	AsUserMessage string
	// StopSuggested ends the conversation early; the judge is consulted
	// with the transcript accumulated so far.
	StopSuggested bool
}

// JudgeInput is what the judge evaluates once the conversation ends.
type JudgeInput struct {
	OwnerObjective string
	Transcript     []models.TranscriptTurn
}

// JudgeVerdict is the judge's decision on an interview.
type JudgeVerdict struct {
	ShouldNotify     bool
	SoftMatch        bool
	NotificationText string
	SummaryText      string
	Confidence       *float64
}

// AgentRuntime plays both conversation roles. Implementations are expected
// to be remote (gRPC); errors are retried by the runner within its budget.
type AgentRuntime interface {
	RunOwnerTurn(ctx context.Context, in TurnInput) (TurnOutput, error)
	RunVisitorTurn(ctx context.Context, in TurnInput) (TurnOutput, error)
}

// Judge decides whether a finished conversation warrants a human-visible
// match.
type Judge interface {
	Evaluate(ctx context.Context, in JudgeInput) (JudgeVerdict, error)
}
