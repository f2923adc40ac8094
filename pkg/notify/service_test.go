package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venn-social/vennd/ent"
	"github.com/venn-social/vennd/ent/match"
	"github.com/venn-social/vennd/pkg/config"
)

func testMatch() *ent.Match {
	explanation := "You both want a chess partner within walking distance."
	return &ent.Match{
		ID:                 "match-1",
		MissionID:          "mission-1",
		PrimaryUserID:      "user-a",
		SecondaryUserID:    "user-b",
		PrimaryCircleID:    "circle-a",
		SecondaryCircleID:  "circle-b",
		Type:               match.TypeMatch,
		WorthItScore:       0.83,
		Status:             match.StatusPendingAccept,
		ExplanationSummary: &explanation,
		CreatedAt:          time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// Should not panic.
	s.NotifySuccessfulInteraction(context.Background(), testMatch(), "hello")
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when config nil", func(t *testing.T) {
		assert.Nil(t, NewService(nil))
	})

	t.Run("returns nil when disabled", func(t *testing.T) {
		cfg := config.DefaultNotifyConfig()
		assert.Nil(t, NewService(cfg))
	})

	t.Run("returns nil when webhook URL env unset", func(t *testing.T) {
		cfg := config.DefaultNotifyConfig()
		cfg.Enabled = true
		cfg.WebhookURLEnv = "VENND_TEST_UNSET_WEBHOOK_URL"
		assert.Nil(t, NewService(cfg))
	})

	t.Run("returns service when configured", func(t *testing.T) {
		t.Setenv("VENND_TEST_WEBHOOK_URL", "http://gateway.local/hooks/match")
		cfg := config.DefaultNotifyConfig()
		cfg.Enabled = true
		cfg.WebhookURLEnv = "VENND_TEST_WEBHOOK_URL"

		svc := NewService(cfg)
		require.NotNil(t, svc)
		assert.Nil(t, svc.slack, "no mirror without a channel")
	})

	t.Run("wires the Slack mirror when token and channel are set", func(t *testing.T) {
		t.Setenv("VENND_TEST_WEBHOOK_URL", "http://gateway.local/hooks/match")
		t.Setenv("VENND_TEST_SLACK_TOKEN", "xoxb-test")
		cfg := config.DefaultNotifyConfig()
		cfg.Enabled = true
		cfg.WebhookURLEnv = "VENND_TEST_WEBHOOK_URL"
		cfg.SlackTokenEnv = "VENND_TEST_SLACK_TOKEN"
		cfg.SlackChannel = "C123"

		svc := NewService(cfg)
		require.NotNil(t, svc)
		assert.NotNil(t, svc.slack)
	})

	t.Run("skips the mirror when the token env is unset", func(t *testing.T) {
		t.Setenv("VENND_TEST_WEBHOOK_URL", "http://gateway.local/hooks/match")
		cfg := config.DefaultNotifyConfig()
		cfg.Enabled = true
		cfg.WebhookURLEnv = "VENND_TEST_WEBHOOK_URL"
		cfg.SlackTokenEnv = "VENND_TEST_UNSET_SLACK_TOKEN"
		cfg.SlackChannel = "C123"

		svc := NewService(cfg)
		require.NotNil(t, svc)
		assert.Nil(t, svc.slack)
	})
}

func TestService_NotifySuccessfulInteraction(t *testing.T) {
	t.Run("posts the match payload to the gateway", func(t *testing.T) {
		var (
			mu       sync.Mutex
			received []MatchCreatedPayload
			headers  []http.Header
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var p MatchCreatedPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			mu.Lock()
			received = append(received, p)
			headers = append(headers, r.Header.Clone())
			mu.Unlock()
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		svc := NewServiceWithClients(NewWebhookClient(srv.URL, time.Second), nil)
		svc.NotifySuccessfulInteraction(context.Background(), testMatch(), "Say hi to your new chess partner!")

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, received, 1)
		p := received[0]
		assert.Equal(t, "match.created", p.Event)
		assert.Equal(t, "match-1", p.MatchID)
		assert.Equal(t, "mission-1", p.MissionID)
		assert.Equal(t, "match", p.MatchType)
		assert.InDelta(t, 0.83, p.WorthItScore, 1e-9)
		assert.Equal(t, "user-a", p.PrimaryUserID)
		assert.Equal(t, "user-b", p.SecondaryUserID)
		assert.Equal(t, "circle-a", p.PrimaryCircleID)
		assert.Equal(t, "circle-b", p.SecondaryCircleID)
		assert.Equal(t, "Say hi to your new chess partner!", p.Notification)
		assert.Equal(t, "You both want a chess partner within walking distance.", p.Explanation)
		assert.Equal(t, "2026-03-14T09:30:00Z", p.CreatedAt)
		assert.Equal(t, "application/json", headers[0].Get("Content-Type"))
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		var (
			mu  sync.Mutex
			raw map[string]any
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		}))
		defer srv.Close()

		m := testMatch()
		m.ExplanationSummary = nil
		svc := NewServiceWithClients(NewWebhookClient(srv.URL, time.Second), nil)
		svc.NotifySuccessfulInteraction(context.Background(), m, "")

		mu.Lock()
		defer mu.Unlock()
		require.NotNil(t, raw)
		assert.NotContains(t, raw, "notification")
		assert.NotContains(t, raw, "explanation")
	})

	t.Run("swallows gateway errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		svc := NewServiceWithClients(NewWebhookClient(srv.URL, time.Second), nil)

		// Should not panic and must not propagate the failure.
		svc.NotifySuccessfulInteraction(context.Background(), testMatch(), "hello")
	})

	t.Run("swallows connection errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		svc := NewServiceWithClients(NewWebhookClient(url, 100*time.Millisecond), nil)
		svc.NotifySuccessfulInteraction(context.Background(), testMatch(), "hello")
	})

	t.Run("mirrors to Slack when configured", func(t *testing.T) {
		gateway := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		defer gateway.Close()

		var (
			mu      sync.Mutex
			channel string
			blocks  string
		)
		slackAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			mu.Lock()
			channel = r.FormValue("channel")
			blocks = r.FormValue("blocks")
			mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"123.456"}`))
		}))
		defer slackAPI.Close()

		mirror := NewSlackMirrorWithAPIURL("xoxb-test", "C123", slackAPI.URL+"/")
		svc := NewServiceWithClients(NewWebhookClient(gateway.URL, time.Second), mirror)
		svc.NotifySuccessfulInteraction(context.Background(), testMatch(), "Say hi!")

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "C123", channel)
		assert.Contains(t, blocks, "match-1")
		assert.Contains(t, blocks, "Say hi!")
	})
}

func TestBuildMatchCreatedMessage(t *testing.T) {
	t.Run("full match", func(t *testing.T) {
		blocks := BuildMatchCreatedMessage(testMatch(), "Say hi to your new chess partner!")

		require.Len(t, blocks, 3)

		header, ok := blocks[0].(*goslack.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, header.Text.Text, ":tada:")
		assert.Contains(t, header.Text.Text, "New match")
		assert.Contains(t, header.Text.Text, "match-1")
		assert.Contains(t, header.Text.Text, "user-a")
		assert.Contains(t, header.Text.Text, "0.83")

		body := blocks[1].(*goslack.SectionBlock)
		assert.Contains(t, body.Text.Text, "Say hi to your new chess partner!")

		explanation := blocks[2].(*goslack.SectionBlock)
		assert.Contains(t, explanation.Text.Text, "chess partner within walking distance")
	})

	t.Run("soft match", func(t *testing.T) {
		m := testMatch()
		m.Type = match.TypeSoftMatch
		blocks := BuildMatchCreatedMessage(m, "")

		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, ":seedling:")
		assert.Contains(t, header.Text.Text, "New soft match")
	})

	t.Run("header only when texts empty", func(t *testing.T) {
		m := testMatch()
		m.ExplanationSummary = nil
		blocks := BuildMatchCreatedMessage(m, "")

		require.Len(t, blocks, 1)
	})
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
