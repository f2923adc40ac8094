// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldProfile holds the string denoting the profile field in the database.
	FieldProfile = "profile"
	// FieldLastLat holds the string denoting the last_lat field in the database.
	FieldLastLat = "last_lat"
	// FieldLastLon holds the string denoting the last_lon field in the database.
	FieldLastLon = "last_lon"
	// FieldPositionUpdatedAt holds the string denoting the position_updated_at field in the database.
	FieldPositionUpdatedAt = "position_updated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCircles holds the string denoting the circles edge name in mutations.
	EdgeCircles = "circles"
	// CircleFieldID holds the string denoting the ID field of the Circle.
	CircleFieldID = "circle_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// CirclesTable is the table that holds the circles relation/edge.
	CirclesTable = "circles"
	// CirclesInverseTable is the table name for the Circle entity.
	// It exists in this package in order to avoid circular dependency with the "circle" package.
	CirclesInverseTable = "circles"
	// CirclesColumn is the table column denoting the circles relation/edge.
	CirclesColumn = "owner_user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldDisplayName,
	FieldEmail,
	FieldProfile,
	FieldLastLat,
	FieldLastLon,
	FieldPositionUpdatedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByLastLat orders the results by the last_lat field.
func ByLastLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLat, opts...).ToFunc()
}

// ByLastLon orders the results by the last_lon field.
func ByLastLon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLon, opts...).ToFunc()
}

// ByPositionUpdatedAt orders the results by the position_updated_at field.
func ByPositionUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositionUpdatedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCirclesCount orders the results by circles count.
func ByCirclesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCirclesStep(), opts...)
	}
}

// ByCircles orders the results by circles terms.
func ByCircles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCirclesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCirclesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CirclesInverseTable, CircleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CirclesTable, CirclesColumn),
	)
}
