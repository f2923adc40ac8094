package config

import "time"

// InterviewConfig holds settings for the external interview runtime, the
// gRPC collaborator that plays both agents and the judge.
type InterviewConfig struct {
	// RuntimeAddress is the host:port of the interview runtime gRPC
	// service.
	RuntimeAddress string `yaml:"runtime_address"`

	// MaxOwnerTurns bounds the interview: the owner agent asks at most
	// this many questions before the judge is consulted.
	MaxOwnerTurns int `yaml:"max_owner_turns"`

	// TurnTimeout is the per-agent-turn vendor deadline.
	TurnTimeout time.Duration `yaml:"turn_timeout"`

	// JudgeTimeout is the deadline on the final judge evaluation.
	JudgeTimeout time.Duration `yaml:"judge_timeout"`

	// CallRetries is how many times one vendor call is retried on
	// transient failure before the mission fails.
	CallRetries int `yaml:"call_retries"`

	// RetryBackoff is the base delay between vendor call retries,
	// doubled per attempt.
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// DefaultInterviewConfig returns the built-in interview defaults.
func DefaultInterviewConfig() *InterviewConfig {
	return &InterviewConfig{
		RuntimeAddress: "localhost:50061",
		MaxOwnerTurns:  3,
		TurnTimeout:    30 * time.Second,
		JudgeTimeout:   30 * time.Second,
		CallRetries:    2,
		RetryBackoff:   500 * time.Millisecond,
	}
}
