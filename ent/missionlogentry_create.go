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
	"github.com/maestro-research/maestro/ent/missionlogentry"
)

// MissionLogEntryCreate is the builder for creating a MissionLogEntry entity.
type MissionLogEntryCreate struct {
	config
	mutation *MissionLogEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMissionID sets the "mission_id" field.
func (_c *MissionLogEntryCreate) SetMissionID(v string) *MissionLogEntryCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *MissionLogEntryCreate) SetSequence(v int) *MissionLogEntryCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MissionLogEntryCreate) SetTimestamp(v time.Time) *MissionLogEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *MissionLogEntryCreate) SetAgentName(v string) *MissionLogEntryCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *MissionLogEntryCreate) SetAction(v string) *MissionLogEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetInputSummary sets the "input_summary" field.
func (_c *MissionLogEntryCreate) SetInputSummary(v string) *MissionLogEntryCreate {
	_c.mutation.SetInputSummary(v)
	return _c
}

// SetNillableInputSummary sets the "input_summary" field if the given value is not nil.
func (_c *MissionLogEntryCreate) SetNillableInputSummary(v *string) *MissionLogEntryCreate {
	if v != nil {
		_c.SetInputSummary(*v)
	}
	return _c
}

// SetOutputSummary sets the "output_summary" field.
func (_c *MissionLogEntryCreate) SetOutputSummary(v string) *MissionLogEntryCreate {
	_c.mutation.SetOutputSummary(v)
	return _c
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_c *MissionLogEntryCreate) SetNillableOutputSummary(v *string) *MissionLogEntryCreate {
	if v != nil {
		_c.SetOutputSummary(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MissionLogEntryCreate) SetStatus(v missionlogentry.Status) *MissionLogEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MissionLogEntryCreate) SetErrorMessage(v string) *MissionLogEntryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MissionLogEntryCreate) SetNillableErrorMessage(v *string) *MissionLogEntryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFullInput sets the "full_input" field.
func (_c *MissionLogEntryCreate) SetFullInput(v string) *MissionLogEntryCreate {
	_c.mutation.SetFullInput(v)
	return _c
}

// SetNillableFullInput sets the "full_input" field if the given value is not nil.
func (_c *MissionLogEntryCreate) SetNillableFullInput(v *string) *MissionLogEntryCreate {
	if v != nil {
		_c.SetFullInput(*v)
	}
	return _c
}

// SetFullOutput sets the "full_output" field.
func (_c *MissionLogEntryCreate) SetFullOutput(v string) *MissionLogEntryCreate {
	_c.mutation.SetFullOutput(v)
	return _c
}

// SetNillableFullOutput sets the "full_output" field if the given value is not nil.
func (_c *MissionLogEntryCreate) SetNillableFullOutput(v *string) *MissionLogEntryCreate {
	if v != nil {
		_c.SetFullOutput(*v)
	}
	return _c
}

// SetModelDetails sets the "model_details" field.
func (_c *MissionLogEntryCreate) SetModelDetails(v map[string]interface{}) *MissionLogEntryCreate {
	_c.mutation.SetModelDetails(v)
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *MissionLogEntryCreate) SetToolCalls(v []map[string]interface{}) *MissionLogEntryCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetFileInteractions sets the "file_interactions" field.
func (_c *MissionLogEntryCreate) SetFileInteractions(v []map[string]interface{}) *MissionLogEntryCreate {
	_c.mutation.SetFileInteractions(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MissionLogEntryCreate) SetID(v string) *MissionLogEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *MissionLogEntryCreate) SetMission(v *Mission) *MissionLogEntryCreate {
	return _c.SetMissionID(v.ID)
}

// Mutation returns the MissionLogEntryMutation object of the builder.
func (_c *MissionLogEntryCreate) Mutation() *MissionLogEntryMutation {
	return _c.mutation
}

// Save creates the MissionLogEntry in the database.
func (_c *MissionLogEntryCreate) Save(ctx context.Context) (*MissionLogEntry, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionLogEntryCreate) SaveX(ctx context.Context) *MissionLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionLogEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionLogEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionLogEntryCreate) check() error {
	if _, ok := _c.mutation.MissionID(); !ok {
		return &ValidationError{Name: "mission_id", err: errors.New(`ent: missing required field "MissionLogEntry.mission_id"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MissionLogEntry.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MissionLogEntry.timestamp"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "MissionLogEntry.agent_name"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "MissionLogEntry.action"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MissionLogEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := missionlogentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MissionLogEntry.status": %w`, err)}
		}
	}
	if len(_c.mutation.MissionIDs()) == 0 {
		return &ValidationError{Name: "mission", err: errors.New(`ent: missing required edge "MissionLogEntry.mission"`)}
	}
	return nil
}

func (_c *MissionLogEntryCreate) sqlSave(ctx context.Context) (*MissionLogEntry, error) {
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
			return nil, fmt.Errorf("unexpected MissionLogEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionLogEntryCreate) createSpec() (*MissionLogEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MissionLogEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(missionlogentry.Table, sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(missionlogentry.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(missionlogentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(missionlogentry.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(missionlogentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.InputSummary(); ok {
		_spec.SetField(missionlogentry.FieldInputSummary, field.TypeString, value)
		_node.InputSummary = value
	}
	if value, ok := _c.mutation.OutputSummary(); ok {
		_spec.SetField(missionlogentry.FieldOutputSummary, field.TypeString, value)
		_node.OutputSummary = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(missionlogentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(missionlogentry.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.FullInput(); ok {
		_spec.SetField(missionlogentry.FieldFullInput, field.TypeString, value)
		_node.FullInput = value
	}
	if value, ok := _c.mutation.FullOutput(); ok {
		_spec.SetField(missionlogentry.FieldFullOutput, field.TypeString, value)
		_node.FullOutput = value
	}
	if value, ok := _c.mutation.ModelDetails(); ok {
		_spec.SetField(missionlogentry.FieldModelDetails, field.TypeJSON, value)
		_node.ModelDetails = value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(missionlogentry.FieldToolCalls, field.TypeJSON, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.FileInteractions(); ok {
		_spec.SetField(missionlogentry.FieldFileInteractions, field.TypeJSON, value)
		_node.FileInteractions = value
	}
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   missionlogentry.MissionTable,
			Columns: []string{missionlogentry.MissionColumn},
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
//	client.MissionLogEntry.Create().
//		SetMissionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionLogEntryUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionLogEntryCreate) OnConflict(opts ...sql.ConflictOption) *MissionLogEntryUpsertOne {
	_c.conflict = opts
	return &MissionLogEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MissionLogEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionLogEntryCreate) OnConflictColumns(columns ...string) *MissionLogEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionLogEntryUpsertOne{
		create: _c,
	}
}

type (
	// MissionLogEntryUpsertOne is the builder for "upsert"-ing
	//  one MissionLogEntry node.
	MissionLogEntryUpsertOne struct {
		create *MissionLogEntryCreate
	}

	// MissionLogEntryUpsert is the "OnConflict" setter.
	MissionLogEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetMissionID sets the "mission_id" field.
func (u *MissionLogEntryUpsert) SetMissionID(v string) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldMissionID, v)
	return u
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateMissionID() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldMissionID)
	return u
}

// SetSequence sets the "sequence" field.
func (u *MissionLogEntryUpsert) SetSequence(v int) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldSequence, v)
	return u
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateSequence() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldSequence)
	return u
}

// AddSequence adds v to the "sequence" field.
func (u *MissionLogEntryUpsert) AddSequence(v int) *MissionLogEntryUpsert {
	u.Add(missionlogentry.FieldSequence, v)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *MissionLogEntryUpsert) SetTimestamp(v time.Time) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateTimestamp() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldTimestamp)
	return u
}

// SetAgentName sets the "agent_name" field.
func (u *MissionLogEntryUpsert) SetAgentName(v string) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldAgentName, v)
	return u
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateAgentName() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldAgentName)
	return u
}

// SetAction sets the "action" field.
func (u *MissionLogEntryUpsert) SetAction(v string) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateAction() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldAction)
	return u
}

// SetInputSummary sets the "input_summary" field.
func (u *MissionLogEntryUpsert) SetInputSummary(v string) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldInputSummary, v)
	return u
}

// UpdateInputSummary sets the "input_summary" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateInputSummary() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldInputSummary)
	return u
}

// ClearInputSummary clears the value of the "input_summary" field.
func (u *MissionLogEntryUpsert) ClearInputSummary() *MissionLogEntryUpsert {
	u.SetNull(missionlogentry.FieldInputSummary)
	return u
}

// SetOutputSummary sets the "output_summary" field.
func (u *MissionLogEntryUpsert) SetOutputSummary(v string) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldOutputSummary, v)
	return u
}

// UpdateOutputSummary sets the "output_summary" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateOutputSummary() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldOutputSummary)
	return u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (u *MissionLogEntryUpsert) ClearOutputSummary() *MissionLogEntryUpsert {
	u.SetNull(missionlogentry.FieldOutputSummary)
	return u
}

// SetStatus sets the "status" field.
func (u *MissionLogEntryUpsert) SetStatus(v missionlogentry.Status) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateStatus() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionLogEntryUpsert) SetErrorMessage(v string) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateErrorMessage() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionLogEntryUpsert) ClearErrorMessage() *MissionLogEntryUpsert {
	u.SetNull(missionlogentry.FieldErrorMessage)
	return u
}

// SetFullInput sets the "full_input" field.
func (u *MissionLogEntryUpsert) SetFullInput(v string) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldFullInput, v)
	return u
}

// UpdateFullInput sets the "full_input" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateFullInput() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldFullInput)
	return u
}

// ClearFullInput clears the value of the "full_input" field.
func (u *MissionLogEntryUpsert) ClearFullInput() *MissionLogEntryUpsert {
	u.SetNull(missionlogentry.FieldFullInput)
	return u
}

// SetFullOutput sets the "full_output" field.
func (u *MissionLogEntryUpsert) SetFullOutput(v string) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldFullOutput, v)
	return u
}

// UpdateFullOutput sets the "full_output" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateFullOutput() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldFullOutput)
	return u
}

// ClearFullOutput clears the value of the "full_output" field.
func (u *MissionLogEntryUpsert) ClearFullOutput() *MissionLogEntryUpsert {
	u.SetNull(missionlogentry.FieldFullOutput)
	return u
}

// SetModelDetails sets the "model_details" field.
func (u *MissionLogEntryUpsert) SetModelDetails(v map[string]interface{}) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldModelDetails, v)
	return u
}

// UpdateModelDetails sets the "model_details" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateModelDetails() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldModelDetails)
	return u
}

// ClearModelDetails clears the value of the "model_details" field.
func (u *MissionLogEntryUpsert) ClearModelDetails() *MissionLogEntryUpsert {
	u.SetNull(missionlogentry.FieldModelDetails)
	return u
}

// SetToolCalls sets the "tool_calls" field.
func (u *MissionLogEntryUpsert) SetToolCalls(v []map[string]interface{}) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldToolCalls, v)
	return u
}

// UpdateToolCalls sets the "tool_calls" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateToolCalls() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldToolCalls)
	return u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (u *MissionLogEntryUpsert) ClearToolCalls() *MissionLogEntryUpsert {
	u.SetNull(missionlogentry.FieldToolCalls)
	return u
}

// SetFileInteractions sets the "file_interactions" field.
func (u *MissionLogEntryUpsert) SetFileInteractions(v []map[string]interface{}) *MissionLogEntryUpsert {
	u.Set(missionlogentry.FieldFileInteractions, v)
	return u
}

// UpdateFileInteractions sets the "file_interactions" field to the value that was provided on create.
func (u *MissionLogEntryUpsert) UpdateFileInteractions() *MissionLogEntryUpsert {
	u.SetExcluded(missionlogentry.FieldFileInteractions)
	return u
}

// ClearFileInteractions clears the value of the "file_interactions" field.
func (u *MissionLogEntryUpsert) ClearFileInteractions() *MissionLogEntryUpsert {
	u.SetNull(missionlogentry.FieldFileInteractions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MissionLogEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(missionlogentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionLogEntryUpsertOne) UpdateNewValues() *MissionLogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(missionlogentry.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MissionLogEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MissionLogEntryUpsertOne) Ignore() *MissionLogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionLogEntryUpsertOne) DoNothing() *MissionLogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionLogEntryCreate.OnConflict
// documentation for more info.
func (u *MissionLogEntryUpsertOne) Update(set func(*MissionLogEntryUpsert)) *MissionLogEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionLogEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMissionID sets the "mission_id" field.
func (u *MissionLogEntryUpsertOne) SetMissionID(v string) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateMissionID() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateMissionID()
	})
}

// SetSequence sets the "sequence" field.
func (u *MissionLogEntryUpsertOne) SetSequence(v int) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *MissionLogEntryUpsertOne) AddSequence(v int) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateSequence() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateSequence()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MissionLogEntryUpsertOne) SetTimestamp(v time.Time) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateTimestamp() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateTimestamp()
	})
}

// SetAgentName sets the "agent_name" field.
func (u *MissionLogEntryUpsertOne) SetAgentName(v string) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateAgentName() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateAgentName()
	})
}

// SetAction sets the "action" field.
func (u *MissionLogEntryUpsertOne) SetAction(v string) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateAction() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateAction()
	})
}

// SetInputSummary sets the "input_summary" field.
func (u *MissionLogEntryUpsertOne) SetInputSummary(v string) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetInputSummary(v)
	})
}

// UpdateInputSummary sets the "input_summary" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateInputSummary() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateInputSummary()
	})
}

// ClearInputSummary clears the value of the "input_summary" field.
func (u *MissionLogEntryUpsertOne) ClearInputSummary() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearInputSummary()
	})
}

// SetOutputSummary sets the "output_summary" field.
func (u *MissionLogEntryUpsertOne) SetOutputSummary(v string) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetOutputSummary(v)
	})
}

// UpdateOutputSummary sets the "output_summary" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateOutputSummary() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateOutputSummary()
	})
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (u *MissionLogEntryUpsertOne) ClearOutputSummary() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearOutputSummary()
	})
}

// SetStatus sets the "status" field.
func (u *MissionLogEntryUpsertOne) SetStatus(v missionlogentry.Status) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateStatus() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionLogEntryUpsertOne) SetErrorMessage(v string) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateErrorMessage() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionLogEntryUpsertOne) ClearErrorMessage() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFullInput sets the "full_input" field.
func (u *MissionLogEntryUpsertOne) SetFullInput(v string) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetFullInput(v)
	})
}

// UpdateFullInput sets the "full_input" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateFullInput() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateFullInput()
	})
}

// ClearFullInput clears the value of the "full_input" field.
func (u *MissionLogEntryUpsertOne) ClearFullInput() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearFullInput()
	})
}

// SetFullOutput sets the "full_output" field.
func (u *MissionLogEntryUpsertOne) SetFullOutput(v string) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetFullOutput(v)
	})
}

// UpdateFullOutput sets the "full_output" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateFullOutput() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateFullOutput()
	})
}

// ClearFullOutput clears the value of the "full_output" field.
func (u *MissionLogEntryUpsertOne) ClearFullOutput() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearFullOutput()
	})
}

// SetModelDetails sets the "model_details" field.
func (u *MissionLogEntryUpsertOne) SetModelDetails(v map[string]interface{}) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetModelDetails(v)
	})
}

// UpdateModelDetails sets the "model_details" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateModelDetails() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateModelDetails()
	})
}

// ClearModelDetails clears the value of the "model_details" field.
func (u *MissionLogEntryUpsertOne) ClearModelDetails() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearModelDetails()
	})
}

// SetToolCalls sets the "tool_calls" field.
func (u *MissionLogEntryUpsertOne) SetToolCalls(v []map[string]interface{}) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetToolCalls(v)
	})
}

// UpdateToolCalls sets the "tool_calls" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateToolCalls() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateToolCalls()
	})
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (u *MissionLogEntryUpsertOne) ClearToolCalls() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearToolCalls()
	})
}

// SetFileInteractions sets the "file_interactions" field.
func (u *MissionLogEntryUpsertOne) SetFileInteractions(v []map[string]interface{}) *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetFileInteractions(v)
	})
}

// UpdateFileInteractions sets the "file_interactions" field to the value that was provided on create.
func (u *MissionLogEntryUpsertOne) UpdateFileInteractions() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateFileInteractions()
	})
}

// ClearFileInteractions clears the value of the "file_interactions" field.
func (u *MissionLogEntryUpsertOne) ClearFileInteractions() *MissionLogEntryUpsertOne {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearFileInteractions()
	})
}

// Exec executes the query.
func (u *MissionLogEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionLogEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionLogEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MissionLogEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MissionLogEntryUpsertOne.ID is not supported by MySQL driver. Use MissionLogEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MissionLogEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MissionLogEntryCreateBulk is the builder for creating many MissionLogEntry entities in bulk.
type MissionLogEntryCreateBulk struct {
	config
	err      error
	builders []*MissionLogEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the MissionLogEntry entities in the database.
func (_c *MissionLogEntryCreateBulk) Save(ctx context.Context) ([]*MissionLogEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MissionLogEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionLogEntryMutation)
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
func (_c *MissionLogEntryCreateBulk) SaveX(ctx context.Context) []*MissionLogEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionLogEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionLogEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MissionLogEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionLogEntryUpsert) {
//			SetMissionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionLogEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *MissionLogEntryUpsertBulk {
	_c.conflict = opts
	return &MissionLogEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MissionLogEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionLogEntryCreateBulk) OnConflictColumns(columns ...string) *MissionLogEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionLogEntryUpsertBulk{
		create: _c,
	}
}

// MissionLogEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of MissionLogEntry nodes.
type MissionLogEntryUpsertBulk struct {
	create *MissionLogEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MissionLogEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(missionlogentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionLogEntryUpsertBulk) UpdateNewValues() *MissionLogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(missionlogentry.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MissionLogEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MissionLogEntryUpsertBulk) Ignore() *MissionLogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionLogEntryUpsertBulk) DoNothing() *MissionLogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionLogEntryCreateBulk.OnConflict
// documentation for more info.
func (u *MissionLogEntryUpsertBulk) Update(set func(*MissionLogEntryUpsert)) *MissionLogEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionLogEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetMissionID sets the "mission_id" field.
func (u *MissionLogEntryUpsertBulk) SetMissionID(v string) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetMissionID(v)
	})
}

// UpdateMissionID sets the "mission_id" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateMissionID() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateMissionID()
	})
}

// SetSequence sets the "sequence" field.
func (u *MissionLogEntryUpsertBulk) SetSequence(v int) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetSequence(v)
	})
}

// AddSequence adds v to the "sequence" field.
func (u *MissionLogEntryUpsertBulk) AddSequence(v int) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.AddSequence(v)
	})
}

// UpdateSequence sets the "sequence" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateSequence() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateSequence()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MissionLogEntryUpsertBulk) SetTimestamp(v time.Time) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateTimestamp() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateTimestamp()
	})
}

// SetAgentName sets the "agent_name" field.
func (u *MissionLogEntryUpsertBulk) SetAgentName(v string) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetAgentName(v)
	})
}

// UpdateAgentName sets the "agent_name" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateAgentName() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateAgentName()
	})
}

// SetAction sets the "action" field.
func (u *MissionLogEntryUpsertBulk) SetAction(v string) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateAction() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateAction()
	})
}

// SetInputSummary sets the "input_summary" field.
func (u *MissionLogEntryUpsertBulk) SetInputSummary(v string) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetInputSummary(v)
	})
}

// UpdateInputSummary sets the "input_summary" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateInputSummary() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateInputSummary()
	})
}

// ClearInputSummary clears the value of the "input_summary" field.
func (u *MissionLogEntryUpsertBulk) ClearInputSummary() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearInputSummary()
	})
}

// SetOutputSummary sets the "output_summary" field.
func (u *MissionLogEntryUpsertBulk) SetOutputSummary(v string) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetOutputSummary(v)
	})
}

// UpdateOutputSummary sets the "output_summary" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateOutputSummary() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateOutputSummary()
	})
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (u *MissionLogEntryUpsertBulk) ClearOutputSummary() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearOutputSummary()
	})
}

// SetStatus sets the "status" field.
func (u *MissionLogEntryUpsertBulk) SetStatus(v missionlogentry.Status) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateStatus() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *MissionLogEntryUpsertBulk) SetErrorMessage(v string) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateErrorMessage() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *MissionLogEntryUpsertBulk) ClearErrorMessage() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearErrorMessage()
	})
}

// SetFullInput sets the "full_input" field.
func (u *MissionLogEntryUpsertBulk) SetFullInput(v string) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetFullInput(v)
	})
}

// UpdateFullInput sets the "full_input" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateFullInput() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateFullInput()
	})
}

// ClearFullInput clears the value of the "full_input" field.
func (u *MissionLogEntryUpsertBulk) ClearFullInput() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearFullInput()
	})
}

// SetFullOutput sets the "full_output" field.
func (u *MissionLogEntryUpsertBulk) SetFullOutput(v string) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetFullOutput(v)
	})
}

// UpdateFullOutput sets the "full_output" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateFullOutput() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateFullOutput()
	})
}

// ClearFullOutput clears the value of the "full_output" field.
func (u *MissionLogEntryUpsertBulk) ClearFullOutput() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearFullOutput()
	})
}

// SetModelDetails sets the "model_details" field.
func (u *MissionLogEntryUpsertBulk) SetModelDetails(v map[string]interface{}) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetModelDetails(v)
	})
}

// UpdateModelDetails sets the "model_details" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateModelDetails() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateModelDetails()
	})
}

// ClearModelDetails clears the value of the "model_details" field.
func (u *MissionLogEntryUpsertBulk) ClearModelDetails() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearModelDetails()
	})
}

// SetToolCalls sets the "tool_calls" field.
func (u *MissionLogEntryUpsertBulk) SetToolCalls(v []map[string]interface{}) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetToolCalls(v)
	})
}

// UpdateToolCalls sets the "tool_calls" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateToolCalls() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateToolCalls()
	})
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (u *MissionLogEntryUpsertBulk) ClearToolCalls() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearToolCalls()
	})
}

// SetFileInteractions sets the "file_interactions" field.
func (u *MissionLogEntryUpsertBulk) SetFileInteractions(v []map[string]interface{}) *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.SetFileInteractions(v)
	})
}

// UpdateFileInteractions sets the "file_interactions" field to the value that was provided on create.
func (u *MissionLogEntryUpsertBulk) UpdateFileInteractions() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.UpdateFileInteractions()
	})
}

// ClearFileInteractions clears the value of the "file_interactions" field.
func (u *MissionLogEntryUpsertBulk) ClearFileInteractions() *MissionLogEntryUpsertBulk {
	return u.Update(func(s *MissionLogEntryUpsert) {
		s.ClearFileInteractions()
	})
}

// Exec executes the query.
func (u *MissionLogEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MissionLogEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionLogEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionLogEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
