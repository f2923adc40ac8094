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

// CircleCreate is the builder for creating a Circle entity.
type CircleCreate struct {
	config
	mutation *CircleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *CircleCreate) SetOwnerUserID(v string) *CircleCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetObjective sets the "objective" field.
func (_c *CircleCreate) SetObjective(v string) *CircleCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetRadiusMeters sets the "radius_meters" field.
func (_c *CircleCreate) SetRadiusMeters(v float64) *CircleCreate {
	_c.mutation.SetRadiusMeters(v)
	return _c
}

// SetStartAt sets the "start_at" field.
func (_c *CircleCreate) SetStartAt(v time.Time) *CircleCreate {
	_c.mutation.SetStartAt(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *CircleCreate) SetExpiresAt(v time.Time) *CircleCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CircleCreate) SetStatus(v circle.Status) *CircleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CircleCreate) SetNillableStatus(v *circle.Status) *CircleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CircleCreate) SetCreatedAt(v time.Time) *CircleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CircleCreate) SetNillableCreatedAt(v *time.Time) *CircleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CircleCreate) SetUpdatedAt(v time.Time) *CircleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CircleCreate) SetNillableUpdatedAt(v *time.Time) *CircleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CircleCreate) SetID(v string) *CircleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *CircleCreate) SetOwnerID(id string) *CircleCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *CircleCreate) SetOwner(v *User) *CircleCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the CircleMutation object of the builder.
func (_c *CircleCreate) Mutation() *CircleMutation {
	return _c.mutation
}

// Save creates the Circle in the database.
func (_c *CircleCreate) Save(ctx context.Context) (*Circle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CircleCreate) SaveX(ctx context.Context) *Circle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CircleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CircleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CircleCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := circle.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := circle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := circle.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CircleCreate) check() error {
	if _, ok := _c.mutation.OwnerUserID(); !ok {
		return &ValidationError{Name: "owner_user_id", err: errors.New(`ent: missing required field "Circle.owner_user_id"`)}
	}
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`ent: missing required field "Circle.objective"`)}
	}
	if _, ok := _c.mutation.RadiusMeters(); !ok {
		return &ValidationError{Name: "radius_meters", err: errors.New(`ent: missing required field "Circle.radius_meters"`)}
	}
	if _, ok := _c.mutation.StartAt(); !ok {
		return &ValidationError{Name: "start_at", err: errors.New(`ent: missing required field "Circle.start_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Circle.expires_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Circle.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := circle.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Circle.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Circle.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Circle.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Circle.owner"`)}
	}
	return nil
}

func (_c *CircleCreate) sqlSave(ctx context.Context) (*Circle, error) {
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
			return nil, fmt.Errorf("unexpected Circle.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CircleCreate) createSpec() (*Circle, *sqlgraph.CreateSpec) {
	var (
		_node = &Circle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(circle.Table, sqlgraph.NewFieldSpec(circle.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(circle.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.RadiusMeters(); ok {
		_spec.SetField(circle.FieldRadiusMeters, field.TypeFloat64, value)
		_node.RadiusMeters = value
	}
	if value, ok := _c.mutation.StartAt(); ok {
		_spec.SetField(circle.FieldStartAt, field.TypeTime, value)
		_node.StartAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(circle.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(circle.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(circle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(circle.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   circle.OwnerTable,
			Columns: []string{circle.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OwnerUserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Circle.Create().
//		SetOwnerUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CircleUpsert) {
//			SetOwnerUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CircleCreate) OnConflict(opts ...sql.ConflictOption) *CircleUpsertOne {
	_c.conflict = opts
	return &CircleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Circle.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CircleCreate) OnConflictColumns(columns ...string) *CircleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CircleUpsertOne{
		create: _c,
	}
}

type (
	// CircleUpsertOne is the builder for "upsert"-ing
	//  one Circle node.
	CircleUpsertOne struct {
		create *CircleCreate
	}

	// CircleUpsert is the "OnConflict" setter.
	CircleUpsert struct {
		*sql.UpdateSet
	}
)

// SetObjective sets the "objective" field.
func (u *CircleUpsert) SetObjective(v string) *CircleUpsert {
	u.Set(circle.FieldObjective, v)
	return u
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *CircleUpsert) UpdateObjective() *CircleUpsert {
	u.SetExcluded(circle.FieldObjective)
	return u
}

// SetRadiusMeters sets the "radius_meters" field.
func (u *CircleUpsert) SetRadiusMeters(v float64) *CircleUpsert {
	u.Set(circle.FieldRadiusMeters, v)
	return u
}

// UpdateRadiusMeters sets the "radius_meters" field to the value that was provided on create.
func (u *CircleUpsert) UpdateRadiusMeters() *CircleUpsert {
	u.SetExcluded(circle.FieldRadiusMeters)
	return u
}

// AddRadiusMeters adds v to the "radius_meters" field.
func (u *CircleUpsert) AddRadiusMeters(v float64) *CircleUpsert {
	u.Add(circle.FieldRadiusMeters, v)
	return u
}

// SetStartAt sets the "start_at" field.
func (u *CircleUpsert) SetStartAt(v time.Time) *CircleUpsert {
	u.Set(circle.FieldStartAt, v)
	return u
}

// UpdateStartAt sets the "start_at" field to the value that was provided on create.
func (u *CircleUpsert) UpdateStartAt() *CircleUpsert {
	u.SetExcluded(circle.FieldStartAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *CircleUpsert) SetExpiresAt(v time.Time) *CircleUpsert {
	u.Set(circle.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CircleUpsert) UpdateExpiresAt() *CircleUpsert {
	u.SetExcluded(circle.FieldExpiresAt)
	return u
}

// SetStatus sets the "status" field.
func (u *CircleUpsert) SetStatus(v circle.Status) *CircleUpsert {
	u.Set(circle.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CircleUpsert) UpdateStatus() *CircleUpsert {
	u.SetExcluded(circle.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CircleUpsert) SetUpdatedAt(v time.Time) *CircleUpsert {
	u.Set(circle.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CircleUpsert) UpdateUpdatedAt() *CircleUpsert {
	u.SetExcluded(circle.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Circle.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(circle.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CircleUpsertOne) UpdateNewValues() *CircleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(circle.FieldID)
		}
		if _, exists := u.create.mutation.OwnerUserID(); exists {
			s.SetIgnore(circle.FieldOwnerUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(circle.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Circle.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CircleUpsertOne) Ignore() *CircleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CircleUpsertOne) DoNothing() *CircleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CircleCreate.OnConflict
// documentation for more info.
func (u *CircleUpsertOne) Update(set func(*CircleUpsert)) *CircleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CircleUpsert{UpdateSet: update})
	}))
	return u
}

// SetObjective sets the "objective" field.
func (u *CircleUpsertOne) SetObjective(v string) *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *CircleUpsertOne) UpdateObjective() *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateObjective()
	})
}

// SetRadiusMeters sets the "radius_meters" field.
func (u *CircleUpsertOne) SetRadiusMeters(v float64) *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.SetRadiusMeters(v)
	})
}

// AddRadiusMeters adds v to the "radius_meters" field.
func (u *CircleUpsertOne) AddRadiusMeters(v float64) *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.AddRadiusMeters(v)
	})
}

// UpdateRadiusMeters sets the "radius_meters" field to the value that was provided on create.
func (u *CircleUpsertOne) UpdateRadiusMeters() *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateRadiusMeters()
	})
}

// SetStartAt sets the "start_at" field.
func (u *CircleUpsertOne) SetStartAt(v time.Time) *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.SetStartAt(v)
	})
}

// UpdateStartAt sets the "start_at" field to the value that was provided on create.
func (u *CircleUpsertOne) UpdateStartAt() *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateStartAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CircleUpsertOne) SetExpiresAt(v time.Time) *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CircleUpsertOne) UpdateExpiresAt() *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetStatus sets the "status" field.
func (u *CircleUpsertOne) SetStatus(v circle.Status) *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CircleUpsertOne) UpdateStatus() *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CircleUpsertOne) SetUpdatedAt(v time.Time) *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CircleUpsertOne) UpdateUpdatedAt() *CircleUpsertOne {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CircleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CircleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CircleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CircleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CircleUpsertOne.ID is not supported by MySQL driver. Use CircleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CircleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CircleCreateBulk is the builder for creating many Circle entities in bulk.
type CircleCreateBulk struct {
	config
	err      error
	builders []*CircleCreate
	conflict []sql.ConflictOption
}

// Save creates the Circle entities in the database.
func (_c *CircleCreateBulk) Save(ctx context.Context) ([]*Circle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Circle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CircleMutation)
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
func (_c *CircleCreateBulk) SaveX(ctx context.Context) []*Circle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CircleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CircleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Circle.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CircleUpsert) {
//			SetOwnerUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *CircleCreateBulk) OnConflict(opts ...sql.ConflictOption) *CircleUpsertBulk {
	_c.conflict = opts
	return &CircleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Circle.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CircleCreateBulk) OnConflictColumns(columns ...string) *CircleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CircleUpsertBulk{
		create: _c,
	}
}

// CircleUpsertBulk is the builder for "upsert"-ing
// a bulk of Circle nodes.
type CircleUpsertBulk struct {
	create *CircleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Circle.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(circle.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CircleUpsertBulk) UpdateNewValues() *CircleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(circle.FieldID)
			}
			if _, exists := b.mutation.OwnerUserID(); exists {
				s.SetIgnore(circle.FieldOwnerUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(circle.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Circle.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CircleUpsertBulk) Ignore() *CircleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CircleUpsertBulk) DoNothing() *CircleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CircleCreateBulk.OnConflict
// documentation for more info.
func (u *CircleUpsertBulk) Update(set func(*CircleUpsert)) *CircleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CircleUpsert{UpdateSet: update})
	}))
	return u
}

// SetObjective sets the "objective" field.
func (u *CircleUpsertBulk) SetObjective(v string) *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.SetObjective(v)
	})
}

// UpdateObjective sets the "objective" field to the value that was provided on create.
func (u *CircleUpsertBulk) UpdateObjective() *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateObjective()
	})
}

// SetRadiusMeters sets the "radius_meters" field.
func (u *CircleUpsertBulk) SetRadiusMeters(v float64) *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.SetRadiusMeters(v)
	})
}

// AddRadiusMeters adds v to the "radius_meters" field.
func (u *CircleUpsertBulk) AddRadiusMeters(v float64) *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.AddRadiusMeters(v)
	})
}

// UpdateRadiusMeters sets the "radius_meters" field to the value that was provided on create.
func (u *CircleUpsertBulk) UpdateRadiusMeters() *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateRadiusMeters()
	})
}

// SetStartAt sets the "start_at" field.
func (u *CircleUpsertBulk) SetStartAt(v time.Time) *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.SetStartAt(v)
	})
}

// UpdateStartAt sets the "start_at" field to the value that was provided on create.
func (u *CircleUpsertBulk) UpdateStartAt() *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateStartAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CircleUpsertBulk) SetExpiresAt(v time.Time) *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CircleUpsertBulk) UpdateExpiresAt() *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetStatus sets the "status" field.
func (u *CircleUpsertBulk) SetStatus(v circle.Status) *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CircleUpsertBulk) UpdateStatus() *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CircleUpsertBulk) SetUpdatedAt(v time.Time) *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CircleUpsertBulk) UpdateUpdatedAt() *CircleUpsertBulk {
	return u.Update(func(s *CircleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CircleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CircleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CircleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CircleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
