package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// The persisted position is the authoritative copy; a cached copy with TTL
// lives in the KV store for fast admission checks.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("display_name"),
		field.String("email").
			Unique(),
		field.JSON("profile", map[string]interface{}{}).
			Optional().
			Comment("Free-form profile blob handed to interview agents"),
		field.Float("last_lat").
			Optional().
			Nillable().
			Comment("Last admitted position"),
		field.Float("last_lon").
			Optional().
			Nillable(),
		field.Time("position_updated_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("circles", Circle.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Bounding-box prefilter scans of the spatial candidate query.
		index.Fields("last_lat", "last_lon"),
		index.Fields("position_updated_at"),
	}
}
