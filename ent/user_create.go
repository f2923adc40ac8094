// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/venn-social/vennd/ent/circle"
	"github.com/venn-social/vennd/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDisplayName sets the "display_name" field.
func (_c *UserCreate) SetDisplayName(v string) *UserCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetProfile sets the "profile" field.
func (_c *UserCreate) SetProfile(v map[string]interface{}) *UserCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetLastLat sets the "last_lat" field.
func (_c *UserCreate) SetLastLat(v float64) *UserCreate {
	_c.mutation.SetLastLat(v)
	return _c
}

// SetNillableLastLat sets the "last_lat" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastLat(v *float64) *UserCreate {
	if v != nil {
		_c.SetLastLat(*v)
	}
	return _c
}

// SetLastLon sets the "last_lon" field.
func (_c *UserCreate) SetLastLon(v float64) *UserCreate {
	_c.mutation.SetLastLon(v)
	return _c
}

// SetNillableLastLon sets the "last_lon" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastLon(v *float64) *UserCreate {
	if v != nil {
		_c.SetLastLon(*v)
	}
	return _c
}

// SetPositionUpdatedAt sets the "position_updated_at" field.
func (_c *UserCreate) SetPositionUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetPositionUpdatedAt(v)
	return _c
}

// SetNillablePositionUpdatedAt sets the "position_updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillablePositionUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetPositionUpdatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v string) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCircleIDs adds the "circles" edge to the Circle entity by IDs.
func (_c *UserCreate) AddCircleIDs(ids ...string) *UserCreate {
	_c.mutation.AddCircleIDs(ids...)
	return _c
}

// AddCircles adds the "circles" edges to the Circle entity.
func (_c *UserCreate) AddCircles(v ...*Circle) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCircleIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "User.display_name"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "User.email"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "User.updated_at"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected User.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(user.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(user.FieldProfile, field.TypeJSON, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.LastLat(); ok {
		_spec.SetField(user.FieldLastLat, field.TypeFloat64, value)
		_node.LastLat = &value
	}
	if value, ok := _c.mutation.LastLon(); ok {
		_spec.SetField(user.FieldLastLon, field.TypeFloat64, value)
		_node.LastLon = &value
	}
	if value, ok := _c.mutation.PositionUpdatedAt(); ok {
		_spec.SetField(user.FieldPositionUpdatedAt, field.TypeTime, value)
		_node.PositionUpdatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CirclesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CirclesTable,
			Columns: []string{user.CirclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.Create().
//		SetDisplayName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetDisplayName(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreate) OnConflict(opts ...sql.ConflictOption) *UserUpsertOne {
	_c.conflict = opts
	return &UserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreate) OnConflictColumns(columns ...string) *UserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertOne{
		create: _c,
	}
}

type (
	// UserUpsertOne is the builder for "upsert"-ing
	//  one User node.
	UserUpsertOne struct {
		create *UserCreate
	}

	// UserUpsert is the "OnConflict" setter.
	UserUpsert struct {
		*sql.UpdateSet
	}
)

// SetDisplayName sets the "display_name" field.
func (u *UserUpsert) SetDisplayName(v string) *UserUpsert {
	u.Set(user.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UserUpsert) UpdateDisplayName() *UserUpsert {
	u.SetExcluded(user.FieldDisplayName)
	return u
}

// SetEmail sets the "email" field.
func (u *UserUpsert) SetEmail(v string) *UserUpsert {
	u.Set(user.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsert) UpdateEmail() *UserUpsert {
	u.SetExcluded(user.FieldEmail)
	return u
}

// SetProfile sets the "profile" field.
func (u *UserUpsert) SetProfile(v map[string]interface{}) *UserUpsert {
	u.Set(user.FieldProfile, v)
	return u
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *UserUpsert) UpdateProfile() *UserUpsert {
	u.SetExcluded(user.FieldProfile)
	return u
}

// ClearProfile clears the value of the "profile" field.
func (u *UserUpsert) ClearProfile() *UserUpsert {
	u.SetNull(user.FieldProfile)
	return u
}

// SetLastLat sets the "last_lat" field.
func (u *UserUpsert) SetLastLat(v float64) *UserUpsert {
	u.Set(user.FieldLastLat, v)
	return u
}

// UpdateLastLat sets the "last_lat" field to the value that was provided on create.
func (u *UserUpsert) UpdateLastLat() *UserUpsert {
	u.SetExcluded(user.FieldLastLat)
	return u
}

// AddLastLat adds v to the "last_lat" field.
func (u *UserUpsert) AddLastLat(v float64) *UserUpsert {
	u.Add(user.FieldLastLat, v)
	return u
}

// ClearLastLat clears the value of the "last_lat" field.
func (u *UserUpsert) ClearLastLat() *UserUpsert {
	u.SetNull(user.FieldLastLat)
	return u
}

// SetLastLon sets the "last_lon" field.
func (u *UserUpsert) SetLastLon(v float64) *UserUpsert {
	u.Set(user.FieldLastLon, v)
	return u
}

// UpdateLastLon sets the "last_lon" field to the value that was provided on create.
func (u *UserUpsert) UpdateLastLon() *UserUpsert {
	u.SetExcluded(user.FieldLastLon)
	return u
}

// AddLastLon adds v to the "last_lon" field.
func (u *UserUpsert) AddLastLon(v float64) *UserUpsert {
	u.Add(user.FieldLastLon, v)
	return u
}

// ClearLastLon clears the value of the "last_lon" field.
func (u *UserUpsert) ClearLastLon() *UserUpsert {
	u.SetNull(user.FieldLastLon)
	return u
}

// SetPositionUpdatedAt sets the "position_updated_at" field.
func (u *UserUpsert) SetPositionUpdatedAt(v time.Time) *UserUpsert {
	u.Set(user.FieldPositionUpdatedAt, v)
	return u
}

// UpdatePositionUpdatedAt sets the "position_updated_at" field to the value that was provided on create.
func (u *UserUpsert) UpdatePositionUpdatedAt() *UserUpsert {
	u.SetExcluded(user.FieldPositionUpdatedAt)
	return u
}

// ClearPositionUpdatedAt clears the value of the "position_updated_at" field.
func (u *UserUpsert) ClearPositionUpdatedAt() *UserUpsert {
	u.SetNull(user.FieldPositionUpdatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsert) SetUpdatedAt(v time.Time) *UserUpsert {
	u.Set(user.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateUpdatedAt() *UserUpsert {
	u.SetExcluded(user.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertOne) UpdateNewValues() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(user.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(user.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserUpsertOne) Ignore() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertOne) DoNothing() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreate.OnConflict
// documentation for more info.
func (u *UserUpsertOne) Update(set func(*UserUpsert)) *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *UserUpsertOne) SetDisplayName(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateDisplayName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertOne) SetEmail(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateEmail() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetProfile sets the "profile" field.
func (u *UserUpsertOne) SetProfile(v map[string]interface{}) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetProfile(v)
	})
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateProfile() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateProfile()
	})
}

// ClearProfile clears the value of the "profile" field.
func (u *UserUpsertOne) ClearProfile() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearProfile()
	})
}

// SetLastLat sets the "last_lat" field.
func (u *UserUpsertOne) SetLastLat(v float64) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLastLat(v)
	})
}

// AddLastLat adds v to the "last_lat" field.
func (u *UserUpsertOne) AddLastLat(v float64) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddLastLat(v)
	})
}

// UpdateLastLat sets the "last_lat" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLastLat() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastLat()
	})
}

// ClearLastLat clears the value of the "last_lat" field.
func (u *UserUpsertOne) ClearLastLat() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastLat()
	})
}

// SetLastLon sets the "last_lon" field.
func (u *UserUpsertOne) SetLastLon(v float64) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLastLon(v)
	})
}

// AddLastLon adds v to the "last_lon" field.
func (u *UserUpsertOne) AddLastLon(v float64) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddLastLon(v)
	})
}

// UpdateLastLon sets the "last_lon" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLastLon() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastLon()
	})
}

// ClearLastLon clears the value of the "last_lon" field.
func (u *UserUpsertOne) ClearLastLon() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastLon()
	})
}

// SetPositionUpdatedAt sets the "position_updated_at" field.
func (u *UserUpsertOne) SetPositionUpdatedAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetPositionUpdatedAt(v)
	})
}

// UpdatePositionUpdatedAt sets the "position_updated_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdatePositionUpdatedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePositionUpdatedAt()
	})
}

// ClearPositionUpdatedAt clears the value of the "position_updated_at" field.
func (u *UserUpsertOne) ClearPositionUpdatedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearPositionUpdatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsertOne) SetUpdatedAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateUpdatedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserUpsertOne.ID is not supported by MySQL driver. Use UserUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
	conflict []sql.ConflictOption
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetDisplayName(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserUpsertBulk {
	_c.conflict = opts
	return &UserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflictColumns(columns ...string) *UserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertBulk{
		create: _c,
	}
}

// UserUpsertBulk is the builder for "upsert"-ing
// a bulk of User nodes.
type UserUpsertBulk struct {
	create *UserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertBulk) UpdateNewValues() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(user.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(user.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserUpsertBulk) Ignore() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertBulk) DoNothing() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreateBulk.OnConflict
// documentation for more info.
func (u *UserUpsertBulk) Update(set func(*UserUpsert)) *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *UserUpsertBulk) SetDisplayName(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateDisplayName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertBulk) SetEmail(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateEmail() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetProfile sets the "profile" field.
func (u *UserUpsertBulk) SetProfile(v map[string]interface{}) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetProfile(v)
	})
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateProfile() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateProfile()
	})
}

// ClearProfile clears the value of the "profile" field.
func (u *UserUpsertBulk) ClearProfile() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearProfile()
	})
}

// SetLastLat sets the "last_lat" field.
func (u *UserUpsertBulk) SetLastLat(v float64) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLastLat(v)
	})
}

// AddLastLat adds v to the "last_lat" field.
func (u *UserUpsertBulk) AddLastLat(v float64) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddLastLat(v)
	})
}

// UpdateLastLat sets the "last_lat" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLastLat() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastLat()
	})
}

// ClearLastLat clears the value of the "last_lat" field.
func (u *UserUpsertBulk) ClearLastLat() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastLat()
	})
}

// SetLastLon sets the "last_lon" field.
func (u *UserUpsertBulk) SetLastLon(v float64) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLastLon(v)
	})
}

// AddLastLon adds v to the "last_lon" field.
func (u *UserUpsertBulk) AddLastLon(v float64) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddLastLon(v)
	})
}

// UpdateLastLon sets the "last_lon" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLastLon() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastLon()
	})
}

// ClearLastLon clears the value of the "last_lon" field.
func (u *UserUpsertBulk) ClearLastLon() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastLon()
	})
}

// SetPositionUpdatedAt sets the "position_updated_at" field.
func (u *UserUpsertBulk) SetPositionUpdatedAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetPositionUpdatedAt(v)
	})
}

// UpdatePositionUpdatedAt sets the "position_updated_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdatePositionUpdatedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePositionUpdatedAt()
	})
}

// ClearPositionUpdatedAt clears the value of the "position_updated_at" field.
func (u *UserUpsertBulk) ClearPositionUpdatedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearPositionUpdatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsertBulk) SetUpdatedAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateUpdatedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *UserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
