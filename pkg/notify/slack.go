package notify

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"

	"github.com/venn-social/vennd/ent"
)

const (
	slackPostTimeout   = 5 * time.Second
	maxBlockTextLength = 2900
)

var matchTypeEmoji = map[string]string{
	"match":      ":tada:",
	"soft_match": ":seedling:",
}

var matchTypeLabel = map[string]string{
	"match":      "New match",
	"soft_match": "New soft match",
}

// SlackMirror posts an operator-facing copy of each match notification
// to a Slack channel.
type SlackMirror struct {
	api       *goslack.Client
	channelID string
}

// NewSlackMirror creates a mirror for the given bot token and channel.
func NewSlackMirror(token, channelID string) *SlackMirror {
	return &SlackMirror{
		api:       goslack.New(token),
		channelID: channelID,
	}
}

// NewSlackMirrorWithAPIURL creates a mirror that targets a custom API URL.
// Useful for testing with a mock server.
func NewSlackMirrorWithAPIURL(token, channelID, apiURL string) *SlackMirror {
	return &SlackMirror{
		api:       goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channelID: channelID,
	}
}

// PostMatchCreated announces a freshly created match to the channel.
func (m *SlackMirror) PostMatchCreated(ctx context.Context, match *ent.Match, notification string) error {
	ctx, cancel := context.WithTimeout(ctx, slackPostTimeout)
	defer cancel()

	blocks := BuildMatchCreatedMessage(match, notification)
	_, _, err := m.api.PostMessageContext(ctx, m.channelID, goslack.MsgOptionBlocks(blocks...))
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// BuildMatchCreatedMessage creates Block Kit blocks for a match
// announcement.
func BuildMatchCreatedMessage(match *ent.Match, notification string) []goslack.Block {
	matchType := string(match.Type)
	emoji := matchTypeEmoji[matchType]
	if emoji == "" {
		emoji = ":question:"
	}
	label := matchTypeLabel[matchType]
	if label == "" {
		label = "New " + matchType
	}

	headerText := fmt.Sprintf("%s *%s* `%s`\nusers `%s` / `%s`, worth-it score %.2f",
		emoji, label, match.ID,
		match.PrimaryUserID, match.SecondaryUserID, match.WorthItScore)

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	if notification != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(notification), false, false),
			nil, nil,
		))
	}
	if match.ExplanationSummary != nil && *match.ExplanationSummary != "" {
		text := fmt.Sprintf("_%s_", truncateForSlack(*match.ExplanationSummary))
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		))
	}

	return blocks
}

// truncateForSlack caps text at the Block Kit limit without splitting a
// multi-byte rune.
func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated)_"
}
