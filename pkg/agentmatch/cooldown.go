package agentmatch

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/venn-social/vennd/pkg/geo"
	"github.com/venn-social/vennd/pkg/observer"
)

const cooldownKeyPrefix = "cooldown:"

// CooldownType names why a user pair is cooling down. The type picks the
// configured duration.
type CooldownType string

const (
	// CooldownNotified follows a completed mission that made no match, or
	// a failed mission.
	CooldownNotified CooldownType = "notified"
	// CooldownMatched follows a match.
	CooldownMatched CooldownType = "matched"
	// CooldownDeclined follows a declined match.
	CooldownDeclined CooldownType = "declined"
)

func cooldownKey(userPairKey string) string {
	return cooldownKeyPrefix + userPairKey
}

func (s *Service) cooldownDuration(t CooldownType) time.Duration {
	switch t {
	case CooldownMatched:
		return s.cfg.CooldownMatched
	case CooldownDeclined:
		return s.cfg.CooldownDeclined
	default:
		return s.cfg.CooldownNotified
	}
}

// CheckCooldown reports whether the user pair is cooling down and from what.
// Hashes past their recorded expiry (possible when a write raced the TTL or
// the TTL was lost) are lazily deleted.
func (s *Service) CheckCooldown(ctx context.Context, user1ID, user2ID string) (bool, CooldownType, error) {
	key := cooldownKey(geo.PairKey(user1ID, user2ID))

	fields, err := s.kv.HGetAll(ctx, key)
	if err != nil {
		return false, "", fmt.Errorf("failed to read cooldown: %w", err)
	}
	if len(fields) == 0 {
		return false, "", nil
	}

	expiresMs, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil || !time.Now().UTC().Before(time.UnixMilli(expiresMs)) {
		if delErr := s.kv.Del(ctx, key); delErr != nil {
			slog.Warn("Failed to delete expired cooldown", "key", key, "error", delErr)
		}
		return false, "", nil
	}
	return true, CooldownType(fields["type"]), nil
}

// SetCooldown starts the pair's cooldown, replacing any existing one. Last
// write wins; the key TTL doubles as the expiry.
func (s *Service) SetCooldown(ctx context.Context, user1ID, user2ID string, t CooldownType) error {
	now := time.Now().UTC()
	d := s.cooldownDuration(t)
	key := cooldownKey(geo.PairKey(user1ID, user2ID))

	pipe := s.kv.Pipeline()
	pipe.HSet(key, map[string]string{
		"type":       string(t),
		"created_at": strconv.FormatInt(now.UnixMilli(), 10),
		"expires_at": strconv.FormatInt(now.Add(d).UnixMilli(), 10),
	})
	pipe.Expire(key, d)
	if err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set cooldown: %w", err)
	}

	ev := observer.NewEvent(observer.EventCooldownStarted, user1ID)
	ev.RelatedUserID = user2ID
	ev.Metadata = map[string]any{
		"cooldown_type": string(t),
		"expires_at":    now.Add(d).UTC().Format(time.RFC3339),
	}
	s.bus.Emit(ev)
	return nil
}

// setCooldownBestEffort is for result handling, where a cooldown write
// failure must not fail the mission transition.
func (s *Service) setCooldownBestEffort(ctx context.Context, user1ID, user2ID string, t CooldownType) {
	if err := s.SetCooldown(ctx, user1ID, user2ID, t); err != nil {
		slog.Warn("Failed to set cooldown",
			"user1_id", user1ID, "user2_id", user2ID, "cooldown_type", string(t), "error", err)
	}
}
