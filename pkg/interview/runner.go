// Package interview executes agent-mediated interview missions: a bounded
// owner/visitor conversation followed by a judge verdict.
package interview

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/pkg/config"
	"github.com/venn-social/vennd/pkg/models"
)

// Transcript speaker labels.
const (
	speakerOwner   = "owner_agent"
	speakerVisitor = "visitor_agent"
)

// Runner executes one mission: up to MaxOwnerTurns owner questions
// interleaved with visitor answers, stopping early when either agent
// suggests it, then a judge evaluation. It satisfies the queue's
// MissionExecutor contract.
type Runner struct {
	cfg     *config.InterviewConfig
	runtime AgentRuntime
	judge   Judge
}

// NewRunner creates a mission runner.
func NewRunner(cfg *config.InterviewConfig, runtime AgentRuntime, judge Judge) *Runner {
	if cfg == nil {
		panic("interview.NewRunner: cfg is required")
	}
	if runtime == nil {
		panic("interview.NewRunner: runtime is required")
	}
	if judge == nil {
		panic("interview.NewRunner: judge is required")
	}
	return &Runner{cfg: cfg, runtime: runtime, judge: judge}
}

// Execute runs the interview and the judge for one claimed mission.
// Vendor failures that survive the retry budget are returned as errors;
// the worker converts them into failed results.
func (r *Runner) Execute(ctx context.Context, mission *ent.InterviewMission) (*models.MissionResult, error) {
	payload, err := models.MissionPayloadFromMap(mission.Payload)
	if err != nil {
		return nil, err
	}

	log := slog.With("mission_id", mission.ID)
	transcript := make([]models.TranscriptTurn, 0, 2*r.cfg.MaxOwnerTurns)

	for turn := 1; turn <= r.cfg.MaxOwnerTurns; turn++ {
		in := TurnInput{Mission: payload, Transcript: transcript, Turn: turn}

		ownerOut, err := r.ownerTurn(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("owner turn %d: %w", turn, err)
		}
		transcript = appendTurn(transcript, speakerOwner, ownerOut.AsUserMessage)
		if ownerOut.StopSuggested {
			log.Debug("Owner agent suggested stopping", "turn", turn)
			break
		}

		in.Transcript = transcript
		visitorOut, err := r.visitorTurn(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("visitor turn %d: %w", turn, err)
		}
		transcript = appendTurn(transcript, speakerVisitor, visitorOut.AsUserMessage)
		if visitorOut.StopSuggested {
			log.Debug("Visitor agent suggested stopping", "turn", turn)
			break
		}
	}

	verdict, err := r.evaluate(ctx, JudgeInput{
		OwnerObjective: payload.OwnerCircle.Objective,
		Transcript:     transcript,
	})
	if err != nil {
		return nil, fmt.Errorf("judge evaluation: %w", err)
	}

	log.Info("Interview complete",
		"turns", len(transcript),
		"should_notify", verdict.ShouldNotify)

	return &models.MissionResult{
		Success:    true,
		MatchMade:  verdict.ShouldNotify,
		Transcript: transcript,
		JudgeDecision: &models.JudgeDecision{
			MatchMade:    verdict.ShouldNotify,
			SoftMatch:    verdict.SoftMatch,
			Confidence:   verdict.Confidence,
			Reason:       verdict.SummaryText,
			Notification: verdict.NotificationText,
		},
	}, nil
}

func (r *Runner) ownerTurn(ctx context.Context, in TurnInput) (TurnOutput, error) {
	var out TurnOutput
	err := r.callWithRetry(ctx, r.cfg.TurnTimeout, func(callCtx context.Context) error {
		var err error
		out, err = r.runtime.RunOwnerTurn(callCtx, in)
		return err
	})
	return out, err
}

func (r *Runner) visitorTurn(ctx context.Context, in TurnInput) (TurnOutput, error) {
	var out TurnOutput
	err := r.callWithRetry(ctx, r.cfg.TurnTimeout, func(callCtx context.Context) error {
		var err error
		out, err = r.runtime.RunVisitorTurn(callCtx, in)
		return err
	})
	return out, err
}

func (r *Runner) evaluate(ctx context.Context, in JudgeInput) (JudgeVerdict, error) {
	var verdict JudgeVerdict
	err := r.callWithRetry(ctx, r.cfg.JudgeTimeout, func(callCtx context.Context) error {
		var err error
		verdict, err = r.judge.Evaluate(callCtx, in)
		return err
	})
	return verdict, err
}

// callWithRetry runs fn under a per-call deadline, retrying with doubling
// backoff up to CallRetries extra attempts. The parent ctx bounds the whole
// budget; once it is done no further attempts are made.
func (r *Runner) callWithRetry(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt <= r.cfg.CallRetries; attempt++ {
		if attempt > 0 {
			backoff := r.cfg.RetryBackoff << uint(attempt-1)
			select {
			case <-ctx.Done():
				return lastErr
			case <-time.After(backoff):
			}
			slog.Debug("Retrying interview runtime call", "attempt", attempt, "backoff", backoff)
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		err := fn(callCtx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

func appendTurn(transcript []models.TranscriptTurn, speaker, content string) []models.TranscriptTurn {
	return append(transcript, models.TranscriptTurn{
		Speaker:   speaker,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
}
