package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Circle holds the schema definition for the Circle entity.
// A circle is an intent ("looking for a climbing partner") with a radius,
// centered on its owner's current position. A circle is live when
// status = active and start_at <= now < expires_at.
type Circle struct {
	ent.Schema
}

// Fields of the Circle.
func (Circle) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("circle_id").
			Unique().
			Immutable(),
		field.String("owner_user_id").
			Immutable(),
		field.Text("objective").
			Comment("What the owner is looking for, fed to interview agents"),
		field.Float("radius_meters"),
		field.Time("start_at"),
		field.Time("expires_at"),
		field.Enum("status").
			Values("active", "paused", "expired").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Circle.
func (Circle) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("circles").
			Field("owner_user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Circle.
func (Circle) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_user_id"),
		index.Fields("status"),
		// Liveness filter of the spatial candidate query.
		index.Fields("status", "start_at", "expires_at"),
	}
}
