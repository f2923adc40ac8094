// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CirclesColumns holds the columns for the "circles" table.
	CirclesColumns = []*schema.Column{
		{Name: "circle_id", Type: field.TypeString, Unique: true},
		{Name: "objective", Type: field.TypeString, Size: 2147483647},
		{Name: "radius_meters", Type: field.TypeFloat64},
		{Name: "start_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "expired"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_user_id", Type: field.TypeString},
	}
	// CirclesTable holds the schema information for the "circles" table.
	CirclesTable = &schema.Table{
		Name:       "circles",
		Columns:    CirclesColumns,
		PrimaryKey: []*schema.Column{CirclesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "circles_users_circles",
				Columns:    []*schema.Column{CirclesColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "circle_owner_user_id",
				Unique:  false,
				Columns: []*schema.Column{CirclesColumns[8]},
			},
			{
				Name:    "circle_status",
				Unique:  false,
				Columns: []*schema.Column{CirclesColumns[5]},
			},
			{
				Name:    "circle_status_start_at_expires_at",
				Unique:  false,
				Columns: []*schema.Column{CirclesColumns[5], CirclesColumns[3], CirclesColumns[4]},
			},
		},
	}
	// CollisionEventsColumns holds the columns for the "collision_events" table.
	CollisionEventsColumns = []*schema.Column{
		{Name: "collision_id", Type: field.TypeString, Unique: true},
		{Name: "pair_key", Type: field.TypeString, Unique: true},
		{Name: "circle1_id", Type: field.TypeString},
		{Name: "circle2_id", Type: field.TypeString},
		{Name: "user1_id", Type: field.TypeString},
		{Name: "user2_id", Type: field.TypeString},
		{Name: "distance_meters", Type: field.TypeFloat64},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"detecting", "stable", "mission_created", "matched", "expired"}, Default: "detecting"},
		{Name: "mission_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CollisionEventsTable holds the schema information for the "collision_events" table.
	CollisionEventsTable = &schema.Table{
		Name:       "collision_events",
		Columns:    CollisionEventsColumns,
		PrimaryKey: []*schema.Column{CollisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collisionevent_status",
				Unique:  false,
				Columns: []*schema.Column{CollisionEventsColumns[9]},
			},
			{
				Name:    "collisionevent_user1_id",
				Unique:  false,
				Columns: []*schema.Column{CollisionEventsColumns[4]},
			},
			{
				Name:    "collisionevent_user2_id",
				Unique:  false,
				Columns: []*schema.Column{CollisionEventsColumns[5]},
			},
			{
				Name:    "collisionevent_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CollisionEventsColumns[9], CollisionEventsColumns[11]},
			},
		},
	}
	// InterviewMissionsColumns holds the columns for the "interview_missions" table.
	InterviewMissionsColumns = []*schema.Column{
		{Name: "mission_id", Type: field.TypeString, Unique: true},
		{Name: "owner_user_id", Type: field.TypeString},
		{Name: "visitor_user_id", Type: field.TypeString},
		{Name: "owner_circle_id", Type: field.TypeString},
		{Name: "visitor_circle_id", Type: field.TypeString},
		{Name: "circle_pair_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "attempt_number", Type: field.TypeInt, Default: 1},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "transcript", Type: field.TypeJSON, Nullable: true},
		{Name: "judge_decision", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "delivery_attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "collision_event_id", Type: field.TypeString},
	}
	// InterviewMissionsTable holds the schema information for the "interview_missions" table.
	InterviewMissionsTable = &schema.Table{
		Name:       "interview_missions",
		Columns:    InterviewMissionsColumns,
		PrimaryKey: []*schema.Column{InterviewMissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interview_missions_collision_events_missions",
				Columns:    []*schema.Column{InterviewMissionsColumns[20]},
				RefColumns: []*schema.Column{CollisionEventsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "interviewmission_status",
				Unique:  false,
				Columns: []*schema.Column{InterviewMissionsColumns[6]},
			},
			{
				Name:    "interviewmission_owner_user_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewMissionsColumns[1]},
			},
			{
				Name:    "interviewmission_visitor_user_id",
				Unique:  false,
				Columns: []*schema.Column{InterviewMissionsColumns[2]},
			},
			{
				Name:    "interviewmission_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{InterviewMissionsColumns[6], InterviewMissionsColumns[17]},
			},
			{
				Name:    "interviewmission_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{InterviewMissionsColumns[6], InterviewMissionsColumns[15]},
			},
			{
				Name:    "interviewmission_circle_pair_key",
				Unique:  true,
				Columns: []*schema.Column{InterviewMissionsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'running')",
				},
			},
		},
	}
	// MatchesColumns holds the columns for the "matches" table.
	MatchesColumns = []*schema.Column{
		{Name: "match_id", Type: field.TypeString, Unique: true},
		{Name: "primary_user_id", Type: field.TypeString},
		{Name: "secondary_user_id", Type: field.TypeString},
		{Name: "primary_circle_id", Type: field.TypeString},
		{Name: "secondary_circle_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"match", "soft_match"}, Default: "match"},
		{Name: "worth_it_score", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_accept", "active", "declined", "expired"}, Default: "pending_accept"},
		{Name: "explanation_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "mission_id", Type: field.TypeString, Unique: true},
	}
	// MatchesTable holds the schema information for the "matches" table.
	MatchesTable = &schema.Table{
		Name:       "matches",
		Columns:    MatchesColumns,
		PrimaryKey: []*schema.Column{MatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matches_interview_missions_match",
				Columns:    []*schema.Column{MatchesColumns[12]},
				RefColumns: []*schema.Column{InterviewMissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "match_primary_user_id",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[1]},
			},
			{
				Name:    "match_secondary_user_id",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[2]},
			},
			{
				Name:    "match_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[7], MatchesColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "profile", Type: field.TypeJSON, Nullable: true},
		{Name: "last_lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "last_lon", Type: field.TypeFloat64, Nullable: true},
		{Name: "position_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_last_lat_last_lon",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4], UsersColumns[5]},
			},
			{
				Name:    "user_position_updated_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CirclesTable,
		CollisionEventsTable,
		InterviewMissionsTable,
		MatchesTable,
		UsersTable,
	}
)

func init() {
	CirclesTable.ForeignKeys[0].RefTable = UsersTable
	InterviewMissionsTable.ForeignKeys[0].RefTable = CollisionEventsTable
	MatchesTable.ForeignKeys[0].RefTable = InterviewMissionsTable
}
