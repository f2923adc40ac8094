package e2e

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/venn-social/vennd/pkg/interview"
)

// ScriptedAgentRuntime stands in for the remote interview runtime. It plays
// both roles with generated utterances and records every call.
type ScriptedAgentRuntime struct {
	mu           sync.Mutex
	ownerCalls   int
	visitorCalls int

	// failAll makes every turn fail, exhausting the runner's retry budget.
	failAll bool
	// stopOwnerAt makes the owner agent suggest stopping on this 1-based
	// turn. Zero means the conversation runs to the turn cap.
	stopOwnerAt int
}

func (r *ScriptedAgentRuntime) RunOwnerTurn(_ context.Context, in interview.TurnInput) (interview.TurnOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ownerCalls++
	if r.failAll {
		return interview.TurnOutput{}, errors.New("agent runtime unreachable")
	}
	return interview.TurnOutput{
		AsUserMessage: fmt.Sprintf("So, %q — tell me more? (question %d)", in.Mission.OwnerCircle.Objective, in.Turn),
		StopSuggested: r.stopOwnerAt > 0 && in.Turn >= r.stopOwnerAt,
	}, nil
}

func (r *ScriptedAgentRuntime) RunVisitorTurn(_ context.Context, in interview.TurnInput) (interview.TurnOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visitorCalls++
	if r.failAll {
		return interview.TurnOutput{}, errors.New("agent runtime unreachable")
	}
	return interview.TurnOutput{
		AsUserMessage: fmt.Sprintf("Happy to — here is my answer %d.", in.Turn),
	}, nil
}

// StopOwnerAfter makes the owner agent suggest stopping on the given
// 1-based turn.
func (r *ScriptedAgentRuntime) StopOwnerAfter(turn int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopOwnerAt = turn
}

// OwnerCalls returns how many owner turns ran.
func (r *ScriptedAgentRuntime) OwnerCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ownerCalls
}

// VisitorCalls returns how many visitor turns ran.
func (r *ScriptedAgentRuntime) VisitorCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visitorCalls
}

// ScriptedJudge returns a fixed verdict and records what it was asked to
// evaluate.
type ScriptedJudge struct {
	mu      sync.Mutex
	calls   int
	lastIn  interview.JudgeInput
	verdict interview.JudgeVerdict
}

func (j *ScriptedJudge) Evaluate(_ context.Context, in interview.JudgeInput) (interview.JudgeVerdict, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls++
	j.lastIn = in
	return j.verdict, nil
}

// Calls returns how many conversations the judge evaluated.
func (j *ScriptedJudge) Calls() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.calls
}

// LastInput returns the judge's most recent input.
func (j *ScriptedJudge) LastInput() interview.JudgeInput {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastIn
}
