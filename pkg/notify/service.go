// Package notify delivers match notifications to the user-facing
// notification gateway over a JSON webhook, optionally mirroring each
// one to a Slack operations channel.
//
// Delivery is fail-open: a match is never rolled back because its
// notification could not be sent.
package notify

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/pkg/config"
)

// MatchCreatedPayload is the JSON body posted to the gateway for a
// freshly created match.
type MatchCreatedPayload struct {
	Event             string  `json:"event"`
	MatchID           string  `json:"match_id"`
	MissionID         string  `json:"mission_id"`
	MatchType         string  `json:"match_type"`
	WorthItScore      float64 `json:"worth_it_score"`
	PrimaryUserID     string  `json:"primary_user_id"`
	SecondaryUserID   string  `json:"secondary_user_id"`
	PrimaryCircleID   string  `json:"primary_circle_id"`
	SecondaryCircleID string  `json:"secondary_circle_id"`
	Notification      string  `json:"notification,omitempty"`
	Explanation       string  `json:"explanation,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// Service handles match notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	webhook *WebhookClient
	slack   *SlackMirror
	logger  *slog.Logger
}

// NewService creates a notification service from configuration.
// Returns nil when notifications are disabled or the webhook URL
// environment variable is unset.
func NewService(cfg *config.NotifyConfig) *Service {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	url := os.Getenv(cfg.WebhookURLEnv)
	if url == "" {
		slog.Warn("Notifications enabled but webhook URL is unset, disabling delivery",
			"env", cfg.WebhookURLEnv)
		return nil
	}

	var mirror *SlackMirror
	if cfg.SlackChannel != "" {
		if token := os.Getenv(cfg.SlackTokenEnv); token != "" {
			mirror = NewSlackMirror(token, cfg.SlackChannel)
		}
	}

	return &Service{
		webhook: NewWebhookClient(url, cfg.Timeout),
		slack:   mirror,
		logger:  slog.Default().With("component", "notify-service"),
	}
}

// NewServiceWithClients creates a Service backed by pre-built clients.
// Useful for testing with mock servers. slack may be nil.
func NewServiceWithClients(webhook *WebhookClient, slack *SlackMirror) *Service {
	return &Service{
		webhook: webhook,
		slack:   slack,
		logger:  slog.Default().With("component", "notify-service"),
	}
}

// NotifySuccessfulInteraction reports a freshly created match to the
// gateway, forwarding the judge's user-facing notification text.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifySuccessfulInteraction(ctx context.Context, m *ent.Match, notification string) {
	if s == nil {
		return
	}

	if err := s.webhook.Post(ctx, matchCreatedPayload(m, notification)); err != nil {
		s.logger.Error("Failed to deliver match notification",
			"match_id", m.ID,
			"error", err)
	} else {
		s.logger.Info("Match notification delivered",
			"match_id", m.ID,
			"match_type", m.Type)
	}

	if s.slack != nil {
		if err := s.slack.PostMatchCreated(ctx, m, notification); err != nil {
			s.logger.Error("Failed to mirror match notification to Slack",
				"match_id", m.ID,
				"error", err)
		}
	}
}

func matchCreatedPayload(m *ent.Match, notification string) MatchCreatedPayload {
	p := MatchCreatedPayload{
		Event:             "match.created",
		MatchID:           m.ID,
		MissionID:         m.MissionID,
		MatchType:         string(m.Type),
		WorthItScore:      m.WorthItScore,
		PrimaryUserID:     m.PrimaryUserID,
		SecondaryUserID:   m.SecondaryUserID,
		PrimaryCircleID:   m.PrimaryCircleID,
		SecondaryCircleID: m.SecondaryCircleID,
		Notification:      notification,
		CreatedAt:         m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if m.ExplanationSummary != nil {
		p.Explanation = *m.ExplanationSummary
	}
	return p
}
