package config

import "time"

// NotifyConfig holds match notification webhook settings.
type NotifyConfig struct {
	// Enabled turns outbound notifications on. When false the service is
	// constructed nil and every call is a no-op.
	Enabled bool `yaml:"enabled"`

	// WebhookURLEnv names the environment variable holding the webhook
	// URL, so the URL itself stays out of YAML.
	WebhookURLEnv string `yaml:"webhook_url_env"`

	// Timeout is the per-request deadline.
	Timeout time.Duration `yaml:"timeout"`

	// SlackTokenEnv names the environment variable holding the bot token
	// for the operator mirror channel.
	SlackTokenEnv string `yaml:"slack_token_env"`

	// SlackChannel is the channel ID the operator mirror posts to
	// (e.g. "C12345678"). Empty disables the mirror.
	SlackChannel string `yaml:"slack_channel"`
}

// DefaultNotifyConfig returns the built-in notification defaults.
func DefaultNotifyConfig() *NotifyConfig {
	return &NotifyConfig{
		Enabled:       false,
		WebhookURLEnv: "NOTIFY_WEBHOOK_URL",
		Timeout:       5 * time.Second,
		SlackTokenEnv: "SLACK_BOT_TOKEN",
	}
}
