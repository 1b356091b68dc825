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
	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/reportversion"
)

// ReportVersionCreate is the builder for creating a ReportVersion entity.
type ReportVersionCreate struct {
	config
	mutation *ReportVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMissionID sets the "mission_id" field.
func (_c *ReportVersionCreate) SetMissionID(v string) *ReportVersionCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ReportVersionCreate) SetVersion(v int) *ReportVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ReportVersionCreate) SetTitle(v string) *ReportVersionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ReportVersionCreate) SetContent(v string) *ReportVersionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetRevisionNotes sets the "revision_notes" field.
func (_c *ReportVersionCreate) SetRevisionNotes(v string) *ReportVersionCreate {
	_c.mutation.SetRevisionNotes(v)
	return _c
}

// SetNillableRevisionNotes sets the "revision_notes" field if the given value is not nil.
func (_c *ReportVersionCreate) SetNillableRevisionNotes(v *string) *ReportVersionCreate {
	if v != nil {
		_c.SetRevisionNotes(*v)
	}
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *ReportVersionCreate) SetIsCurrent(v bool) *ReportVersionCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *ReportVersionCreate) SetNillableIsCurrent(v *bool) *ReportVersionCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportVersionCreate) SetCreatedAt(v time.Time) *ReportVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportVersionCreate) SetNillableCreatedAt(v *time.Time) *ReportVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportVersionCreate) SetUpdatedAt(v time.Time) *ReportVersionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportVersionCreate) SetNillableUpdatedAt(v *time.Time) *ReportVersionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportVersionCreate) SetID(v string) *ReportVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *ReportVersionCreate) SetMission(v *Mission) *ReportVersionCreate {
	return _c.SetMissionID(v.ID)
}

// Mutation returns the ReportVersionMutation object of the builder.
func (_c *ReportVersionCreate) Mutation() *ReportVersionMutation {
	return _c.mutation
}

// Save creates the ReportVersion in the database.
func (_c *ReportVersionCreate) Save(ctx context.Context) (*ReportVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportVersionCreate) SaveX(ctx context.Context) *ReportVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportVersionCreate) defaults() {
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := reportversion.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reportversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reportversion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportVersionCreate) check() error {
	if _, ok := _c.mutation.MissionID(); !ok {
		return &ValidationError{Name: "mission_id", err: errors.New(`ent: missing required field "ReportVersion.mission_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ReportVersion.version"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ReportVersion.title"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ReportVersion.content"`)}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "ReportVersion.is_current"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportVersion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReportVersion.updated_at"`)}
	}
	if len(_c.mutation.MissionIDs()) == 0 {
		return &ValidationError{Name: "mission", err: errors.New(`ent: missing required edge "ReportVersion.mission"`)}
	}
	return nil
}

func (_c *ReportVersionCreate) sqlSave(ctx context.Context) (*ReportVersion, error) {
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
			return nil, fmt.Errorf("unexpected ReportVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportVersionCreate) createSpec() (*ReportVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportversion.Table, sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(reportversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(reportversion.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(reportversion.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.RevisionNotes(); ok {
		_spec.SetField(reportversion.FieldRevisionNotes, field.TypeString, value)
		_node.RevisionNotes = value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(reportversion.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reportversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reportversion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportversion.MissionTable,
			Columns: []string{reportversion.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportVersion.Create().
//		SetMissionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportVersionUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportVersionCreate) OnConflict(opts ...sql.ConflictOption) *ReportVersionUpsertOne {
	_c.conflict = opts
	return &ReportVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportVersionCreate) OnConflictColumns(columns ...string) *ReportVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportVersionUpsertOne{
		create: _c,
	}
}

type (
	// ReportVersionUpsertOne is the builder for "upsert"-ing
	//  one ReportVersion node.
	ReportVersionUpsertOne struct {
		create *ReportVersionCreate
	}

	// ReportVersionUpsert is the "OnConflict" setter.
	ReportVersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetMissionID sets the "mission_id" field.
func (u *ReportVersionUpsert) SetMissionID(v string) *ReportVersionUpsert {
	u.Set(reportversion.FieldMissionID, v)
	return u
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *ReportVersionUpsert) UpdateMissionID() *ReportVersionUpsert {
	u.SetExcluded(reportversion.FieldMissionID)
	return u
}

// SetVersion sets the "version" field.
func (u *ReportVersionUpsert) SetVersion(v int) *ReportVersionUpsert {
	u.Set(reportversion.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ReportVersionUpsert) UpdateVersion() *ReportVersionUpsert {
	u.SetExcluded(reportversion.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *ReportVersionUpsert) AddVersion(v int) *ReportVersionUpsert {
	u.Add(reportversion.FieldVersion, v)
	return u
}

// SetTitle sets the "title" field.
func (u *ReportVersionUpsert) SetTitle(v string) *ReportVersionUpsert {
	u.Set(reportversion.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportVersionUpsert) UpdateTitle() *ReportVersionUpsert {
	u.SetExcluded(reportversion.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *ReportVersionUpsert) SetContent(v string) *ReportVersionUpsert {
	u.Set(reportversion.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportVersionUpsert) UpdateContent() *ReportVersionUpsert {
	u.SetExcluded(reportversion.FieldContent)
	return u
}

// SetRevisionNotes sets the "revision_notes" field.
func (u *ReportVersionUpsert) SetRevisionNotes(v string) *ReportVersionUpsert {
	u.Set(reportversion.FieldRevisionNotes, v)
	return u
}

// UpdateRevisionNotes sets the "revision_notes" field to the value that was provided on create.
func (u *ReportVersionUpsert) UpdateRevisionNotes() *ReportVersionUpsert {
	u.SetExcluded(reportversion.FieldRevisionNotes)
	return u
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (u *ReportVersionUpsert) ClearRevisionNotes() *ReportVersionUpsert {
	u.SetNull(reportversion.FieldRevisionNotes)
	return u
}

// SetIsCurrent sets the "is_current" field.
func (u *ReportVersionUpsert) SetIsCurrent(v bool) *ReportVersionUpsert {
	u.Set(reportversion.FieldIsCurrent, v)
	return u
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *ReportVersionUpsert) UpdateIsCurrent() *ReportVersionUpsert {
	u.SetExcluded(reportversion.FieldIsCurrent)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportVersionUpsert) SetCreatedAt(v time.Time) *ReportVersionUpsert {
	u.Set(reportversion.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportVersionUpsert) UpdateCreatedAt() *ReportVersionUpsert {
	u.SetExcluded(reportversion.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportVersionUpsert) SetUpdatedAt(v time.Time) *ReportVersionUpsert {
	u.Set(reportversion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportVersionUpsert) UpdateUpdatedAt() *ReportVersionUpsert {
	u.SetExcluded(reportversion.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReportVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportVersionUpsertOne) UpdateNewValues() *ReportVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reportversion.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportVersionUpsertOne) Ignore() *ReportVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportVersionUpsertOne) DoNothing() *ReportVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportVersionCreate.OnConflict
// documentation for more info.
func (u *ReportVersionUpsertOne) Update(set func(*ReportVersionUpsert)) *ReportVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMissionID sets the "mission_id" field.
func (u *ReportVersionUpsertOne) SetMissionID(v string) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *ReportVersionUpsertOne) UpdateMissionID() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateMissionID()
	})
}

// SetVersion sets the "version" field.
func (u *ReportVersionUpsertOne) SetVersion(v int) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ReportVersionUpsertOne) AddVersion(v int) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ReportVersionUpsertOne) UpdateVersion() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateVersion()
	})
}

// SetTitle sets the "title" field.
func (u *ReportVersionUpsertOne) SetTitle(v string) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportVersionUpsertOne) UpdateTitle() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *ReportVersionUpsertOne) SetContent(v string) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportVersionUpsertOne) UpdateContent() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateContent()
	})
}

// SetRevisionNotes sets the "revision_notes" field.
func (u *ReportVersionUpsertOne) SetRevisionNotes(v string) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetRevisionNotes(v)
	})
}

// UpdateRevisionNotes sets the "revision_notes" field to the value that was provided on create.
func (u *ReportVersionUpsertOne) UpdateRevisionNotes() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateRevisionNotes()
	})
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (u *ReportVersionUpsertOne) ClearRevisionNotes() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.ClearRevisionNotes()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *ReportVersionUpsertOne) SetIsCurrent(v bool) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *ReportVersionUpsertOne) UpdateIsCurrent() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportVersionUpsertOne) SetCreatedAt(v time.Time) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportVersionUpsertOne) UpdateCreatedAt() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportVersionUpsertOne) SetUpdatedAt(v time.Time) *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportVersionUpsertOne) UpdateUpdatedAt() *ReportVersionUpsertOne {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ReportVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportVersionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportVersionUpsertOne.ID is not supported by MySQL driver. Use ReportVersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportVersionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportVersionCreateBulk is the builder for creating many ReportVersion entities in bulk.
type ReportVersionCreateBulk struct {
	config
	err      error
	builders []*ReportVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the ReportVersion entities in the database.
func (_c *ReportVersionCreateBulk) Save(ctx context.Context) ([]*ReportVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportVersionMutation)
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
func (_c *ReportVersionCreateBulk) SaveX(ctx context.Context) []*ReportVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportVersionUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportVersionUpsertBulk {
	_c.conflict = opts
	return &ReportVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportVersionCreateBulk) OnConflictColumns(columns ...string) *ReportVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportVersionUpsertBulk{
		create: _c,
	}
}

// ReportVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of ReportVersion nodes.
type ReportVersionUpsertBulk struct {
	create *ReportVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReportVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportVersionUpsertBulk) UpdateNewValues() *ReportVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reportversion.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportVersionUpsertBulk) Ignore() *ReportVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportVersionUpsertBulk) DoNothing() *ReportVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportVersionCreateBulk.OnConflict
// documentation for more info.
func (u *ReportVersionUpsertBulk) Update(set func(*ReportVersionUpsert)) *ReportVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMissionID sets the "mission_id" field.
func (u *ReportVersionUpsertBulk) SetMissionID(v string) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *ReportVersionUpsertBulk) UpdateMissionID() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateMissionID()
	})
}

// SetVersion sets the "version" field.
func (u *ReportVersionUpsertBulk) SetVersion(v int) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ReportVersionUpsertBulk) AddVersion(v int) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ReportVersionUpsertBulk) UpdateVersion() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateVersion()
	})
}

// SetTitle sets the "title" field.
func (u *ReportVersionUpsertBulk) SetTitle(v string) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ReportVersionUpsertBulk) UpdateTitle() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *ReportVersionUpsertBulk) SetContent(v string) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportVersionUpsertBulk) UpdateContent() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateContent()
	})
}

// SetRevisionNotes sets the "revision_notes" field.
func (u *ReportVersionUpsertBulk) SetRevisionNotes(v string) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetRevisionNotes(v)
	})
}

// UpdateRevisionNotes sets the "revision_notes" field to the value that was provided on create.
func (u *ReportVersionUpsertBulk) UpdateRevisionNotes() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateRevisionNotes()
	})
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (u *ReportVersionUpsertBulk) ClearRevisionNotes() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.ClearRevisionNotes()
	})
}

// SetIsCurrent sets the "is_current" field.
func (u *ReportVersionUpsertBulk) SetIsCurrent(v bool) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetIsCurrent(v)
	})
}

// UpdateIsCurrent sets the "is_current" field to the value that was provided on create.
func (u *ReportVersionUpsertBulk) UpdateIsCurrent() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateIsCurrent()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ReportVersionUpsertBulk) SetCreatedAt(v time.Time) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ReportVersionUpsertBulk) UpdateCreatedAt() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportVersionUpsertBulk) SetUpdatedAt(v time.Time) *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportVersionUpsertBulk) UpdateUpdatedAt() *ReportVersionUpsertBulk {
	return u.Update(func(s *ReportVersionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ReportVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
