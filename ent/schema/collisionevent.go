package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollisionEvent holds the schema definition for the CollisionEvent entity.
// One row per unordered circle pair (canonical pair key); re-detections
// upsert into the same row. Status is monotone along
// detecting -> stable -> mission_created -> {matched, expired}; transitions
// are status-gated updates so regressions are no-ops.
type CollisionEvent struct {
	ent.Schema
}

// Fields of the CollisionEvent.
func (CollisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("collision_id").
			Unique().
			Immutable(),
		field.String("pair_key").
			Unique().
			Comment("Canonical circle pair key: min(id):max(id)"),
		field.String("circle1_id").
			Comment("Lexicographically smaller circle of the pair"),
		field.String("circle2_id"),
		field.String("user1_id").
			Comment("Owner of circle1"),
		field.String("user2_id").
			Comment("Owner of circle2"),
		field.Float("distance_meters"),
		field.Time("first_seen_at"),
		field.Time("last_seen_at"),
		field.Enum("status").
			Values("detecting", "stable", "mission_created", "matched", "expired").
			Default("detecting"),
		field.String("mission_id").
			Optional().
			Nillable().
			Comment("Set when the pair graduates to a mission"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CollisionEvent.
func (CollisionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("missions", InterviewMission.Type),
	}
}

// Indexes of the CollisionEvent.
func (CollisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user1_id"),
		index.Fields("user2_id"),
		// Expiry sweeps scan by status and age.
		index.Fields("status", "created_at"),
	}
}
