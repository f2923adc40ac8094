package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Match holds the schema definition for the Match entity.
// A match always follows a successful interview mission on the same pair.
type Match struct {
	ent.Schema
}

// Fields of the Match.
func (Match) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("match_id").
			Unique().
			Immutable(),
		field.String("mission_id").
			Immutable(),
		field.String("primary_user_id").
			Immutable().
			Comment("Owner side of the originating mission"),
		field.String("secondary_user_id").
			Immutable(),
		field.String("primary_circle_id").
			Immutable(),
		field.String("secondary_circle_id").
			Immutable(),
		field.Enum("type").
			Values("match", "soft_match").
			Default("match"),
		field.Float("worth_it_score").
			Comment("Judge confidence, 0..1"),
		field.Enum("status").
			Values("pending_accept", "active", "declined", "expired").
			Default("pending_accept"),
		field.Text("explanation_summary").
			Optional().
			Nillable().
			Comment("Judge reasoning shown to both users"),
		field.Time("responded_at").
			Optional().
			Nillable().
			Comment("When a participant accepted or declined"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Match.
func (Match) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", InterviewMission.Type).
			Ref("match").
			Field("mission_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Match.
func (Match) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("primary_user_id"),
		index.Fields("secondary_user_id"),
		// Expiry sweeps scan by status and age.
		index.Fields("status", "created_at"),
	}
}
