package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InterviewMission holds the schema definition for the InterviewMission
// entity. The table doubles as the durable mission queue: inserting a row
// with status=pending IS the enqueue, and workers claim rows with
// FOR UPDATE SKIP LOCKED. A retry is always a new row with attempt_number+1,
// never an in-place reset.
type InterviewMission struct {
	ent.Schema
}

// Fields of the InterviewMission.
func (InterviewMission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mission_id").
			Unique().
			Immutable(),
		field.String("collision_event_id").
			Immutable(),
		field.String("owner_user_id").
			Immutable(),
		field.String("visitor_user_id").
			Immutable(),
		field.String("owner_circle_id").
			Immutable(),
		field.String("visitor_circle_id").
			Immutable(),
		field.String("circle_pair_key").
			Immutable().
			Comment("Canonical circle pair key, duplicated for the in-flight uniqueness guard"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Int("attempt_number").
			Default(1),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Queue payload handed to the interview executor"),
		field.JSON("transcript", []map[string]interface{}{}).
			Optional(),
		field.JSON("judge_decision", map[string]interface{}{}).
			Optional(),
		field.Text("failure_reason").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the mission"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Int("delivery_attempts").
			Default(0).
			Comment("Queue redeliveries after stalled claims, distinct from attempt_number"),
		field.Time("next_attempt_at").
			Default(time.Now).
			Comment("Earliest claim time; pushed out by redelivery backoff"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the InterviewMission.
func (InterviewMission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("collision_event", CollisionEvent.Type).
			Ref("missions").
			Field("collision_event_id").
			Unique().
			Required().
			Immutable(),
		edge.To("match", Match.Type).
			Unique(),
	}
}

// Indexes of the InterviewMission.
func (InterviewMission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("owner_user_id"),
		index.Fields("visitor_user_id"),
		// Worker claim scans.
		index.Fields("status", "next_attempt_at"),
		// Orphan detection scans.
		index.Fields("status", "last_heartbeat_at"),
		// At most one live mission per circle pair.
		index.Fields("circle_pair_key").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'running')")),
	}
}
