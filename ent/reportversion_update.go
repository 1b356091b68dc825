// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/predicate"
	"github.com/maestro-research/maestro/ent/reportversion"
)

// ReportVersionUpdate is the builder for updating ReportVersion entities.
type ReportVersionUpdate struct {
	config
	hooks    []Hook
	mutation *ReportVersionMutation
}

// Where appends a list predicates to the ReportVersionUpdate builder.
func (_u *ReportVersionUpdate) Where(ps ...predicate.ReportVersion) *ReportVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *ReportVersionUpdate) SetMissionID(v string) *ReportVersionUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *ReportVersionUpdate) SetNillableMissionID(v *string) *ReportVersionUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReportVersionUpdate) SetVersion(v int) *ReportVersionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReportVersionUpdate) SetNillableVersion(v *int) *ReportVersionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReportVersionUpdate) AddVersion(v int) *ReportVersionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportVersionUpdate) SetTitle(v string) *ReportVersionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportVersionUpdate) SetNillableTitle(v *string) *ReportVersionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportVersionUpdate) SetContent(v string) *ReportVersionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportVersionUpdate) SetNillableContent(v *string) *ReportVersionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetRevisionNotes sets the "revision_notes" field.
func (_u *ReportVersionUpdate) SetRevisionNotes(v string) *ReportVersionUpdate {
	_u.mutation.SetRevisionNotes(v)
	return _u
}

// SetNillableRevisionNotes sets the "revision_notes" field if the given value is not nil.
func (_u *ReportVersionUpdate) SetNillableRevisionNotes(v *string) *ReportVersionUpdate {
	if v != nil {
		_u.SetRevisionNotes(*v)
	}
	return _u
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (_u *ReportVersionUpdate) ClearRevisionNotes() *ReportVersionUpdate {
	_u.mutation.ClearRevisionNotes()
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *ReportVersionUpdate) SetIsCurrent(v bool) *ReportVersionUpdate {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *ReportVersionUpdate) SetNillableIsCurrent(v *bool) *ReportVersionUpdate {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportVersionUpdate) SetCreatedAt(v time.Time) *ReportVersionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportVersionUpdate) SetNillableCreatedAt(v *time.Time) *ReportVersionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportVersionUpdate) SetUpdatedAt(v time.Time) *ReportVersionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ReportVersionUpdate) SetNillableUpdatedAt(v *time.Time) *ReportVersionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *ReportVersionUpdate) SetMission(v *Mission) *ReportVersionUpdate {
	return _u.SetMissionID(v.ID)
}

// Mutation returns the ReportVersionMutation object of the builder.
func (_u *ReportVersionUpdate) Mutation() *ReportVersionMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *ReportVersionUpdate) ClearMission() *ReportVersionUpdate {
	_u.mutation.ClearMission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportVersionUpdate) check() error {
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportVersion.mission"`)
	}
	return nil
}

func (_u *ReportVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportversion.Table, reportversion.Columns, sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(reportversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(reportversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(reportversion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(reportversion.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevisionNotes(); ok {
		_spec.SetField(reportversion.FieldRevisionNotes, field.TypeString, value)
	}
	if _u.mutation.RevisionNotesCleared() {
		_spec.ClearField(reportversion.FieldRevisionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(reportversion.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reportversion.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reportversion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MissionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportVersionUpdateOne is the builder for updating a single ReportVersion entity.
type ReportVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportVersionMutation
}

// SetMissionID sets the "mission_id" field.
func (_u *ReportVersionUpdateOne) SetMissionID(v string) *ReportVersionUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *ReportVersionUpdateOne) SetNillableMissionID(v *string) *ReportVersionUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReportVersionUpdateOne) SetVersion(v int) *ReportVersionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReportVersionUpdateOne) SetNillableVersion(v *int) *ReportVersionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReportVersionUpdateOne) AddVersion(v int) *ReportVersionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportVersionUpdateOne) SetTitle(v string) *ReportVersionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportVersionUpdateOne) SetNillableTitle(v *string) *ReportVersionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportVersionUpdateOne) SetContent(v string) *ReportVersionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportVersionUpdateOne) SetNillableContent(v *string) *ReportVersionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetRevisionNotes sets the "revision_notes" field.
func (_u *ReportVersionUpdateOne) SetRevisionNotes(v string) *ReportVersionUpdateOne {
	_u.mutation.SetRevisionNotes(v)
	return _u
}

// SetNillableRevisionNotes sets the "revision_notes" field if the given value is not nil.
func (_u *ReportVersionUpdateOne) SetNillableRevisionNotes(v *string) *ReportVersionUpdateOne {
	if v != nil {
		_u.SetRevisionNotes(*v)
	}
	return _u
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (_u *ReportVersionUpdateOne) ClearRevisionNotes() *ReportVersionUpdateOne {
	_u.mutation.ClearRevisionNotes()
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *ReportVersionUpdateOne) SetIsCurrent(v bool) *ReportVersionUpdateOne {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *ReportVersionUpdateOne) SetNillableIsCurrent(v *bool) *ReportVersionUpdateOne {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportVersionUpdateOne) SetCreatedAt(v time.Time) *ReportVersionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportVersionUpdateOne) SetNillableCreatedAt(v *time.Time) *ReportVersionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportVersionUpdateOne) SetUpdatedAt(v time.Time) *ReportVersionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ReportVersionUpdateOne) SetNillableUpdatedAt(v *time.Time) *ReportVersionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *ReportVersionUpdateOne) SetMission(v *Mission) *ReportVersionUpdateOne {
	return _u.SetMissionID(v.ID)
}

// Mutation returns the ReportVersionMutation object of the builder.
func (_u *ReportVersionUpdateOne) Mutation() *ReportVersionMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *ReportVersionUpdateOne) ClearMission() *ReportVersionUpdateOne {
	_u.mutation.ClearMission()
	return _u
}

// Where appends a list predicates to the ReportVersionUpdate builder.
func (_u *ReportVersionUpdateOne) Where(ps ...predicate.ReportVersion) *ReportVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportVersionUpdateOne) Select(field string, fields ...string) *ReportVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportVersion entity.
func (_u *ReportVersionUpdateOne) Save(ctx context.Context) (*ReportVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportVersionUpdateOne) SaveX(ctx context.Context) *ReportVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportVersionUpdateOne) check() error {
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportVersion.mission"`)
	}
	return nil
}

func (_u *ReportVersionUpdateOne) sqlSave(ctx context.Context) (_node *ReportVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportversion.Table, reportversion.Columns, sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportversion.FieldID)
		for _, f := range fields {
			if !reportversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportversion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(reportversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(reportversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(reportversion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(reportversion.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevisionNotes(); ok {
		_spec.SetField(reportversion.FieldRevisionNotes, field.TypeString, value)
	}
	if _u.mutation.RevisionNotesCleared() {
		_spec.ClearField(reportversion.FieldRevisionNotes, field.TypeString)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(reportversion.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reportversion.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reportversion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MissionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReportVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
