// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
	"github.com/maestro-research/maestro/ent/predicate"
)

// MissionLogEntryUpdate is the builder for updating MissionLogEntry entities.
type MissionLogEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MissionLogEntryMutation
}

// Where appends a list predicates to the MissionLogEntryUpdate builder.
func (_u *MissionLogEntryUpdate) Where(ps ...predicate.MissionLogEntry) *MissionLogEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *MissionLogEntryUpdate) SetMissionID(v string) *MissionLogEntryUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableMissionID(v *string) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *MissionLogEntryUpdate) SetSequence(v int) *MissionLogEntryUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableSequence(v *int) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *MissionLogEntryUpdate) AddSequence(v int) *MissionLogEntryUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MissionLogEntryUpdate) SetTimestamp(v time.Time) *MissionLogEntryUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableTimestamp(v *time.Time) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *MissionLogEntryUpdate) SetAgentName(v string) *MissionLogEntryUpdate {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableAgentName(v *string) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *MissionLogEntryUpdate) SetAction(v string) *MissionLogEntryUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableAction(v *string) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetInputSummary sets the "input_summary" field.
func (_u *MissionLogEntryUpdate) SetInputSummary(v string) *MissionLogEntryUpdate {
	_u.mutation.SetInputSummary(v)
	return _u
}

// SetNillableInputSummary sets the "input_summary" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableInputSummary(v *string) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetInputSummary(*v)
	}
	return _u
}

// ClearInputSummary clears the value of the "input_summary" field.
func (_u *MissionLogEntryUpdate) ClearInputSummary() *MissionLogEntryUpdate {
	_u.mutation.ClearInputSummary()
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *MissionLogEntryUpdate) SetOutputSummary(v string) *MissionLogEntryUpdate {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableOutputSummary(v *string) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (_u *MissionLogEntryUpdate) ClearOutputSummary() *MissionLogEntryUpdate {
	_u.mutation.ClearOutputSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionLogEntryUpdate) SetStatus(v missionlogentry.Status) *MissionLogEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableStatus(v *missionlogentry.Status) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MissionLogEntryUpdate) SetErrorMessage(v string) *MissionLogEntryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableErrorMessage(v *string) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MissionLogEntryUpdate) ClearErrorMessage() *MissionLogEntryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFullInput sets the "full_input" field.
func (_u *MissionLogEntryUpdate) SetFullInput(v string) *MissionLogEntryUpdate {
	_u.mutation.SetFullInput(v)
	return _u
}

// SetNillableFullInput sets the "full_input" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableFullInput(v *string) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetFullInput(*v)
	}
	return _u
}

// ClearFullInput clears the value of the "full_input" field.
func (_u *MissionLogEntryUpdate) ClearFullInput() *MissionLogEntryUpdate {
	_u.mutation.ClearFullInput()
	return _u
}

// SetFullOutput sets the "full_output" field.
func (_u *MissionLogEntryUpdate) SetFullOutput(v string) *MissionLogEntryUpdate {
	_u.mutation.SetFullOutput(v)
	return _u
}

// SetNillableFullOutput sets the "full_output" field if the given value is not nil.
func (_u *MissionLogEntryUpdate) SetNillableFullOutput(v *string) *MissionLogEntryUpdate {
	if v != nil {
		_u.SetFullOutput(*v)
	}
	return _u
}

// ClearFullOutput clears the value of the "full_output" field.
func (_u *MissionLogEntryUpdate) ClearFullOutput() *MissionLogEntryUpdate {
	_u.mutation.ClearFullOutput()
	return _u
}

// SetModelDetails sets the "model_details" field.
func (_u *MissionLogEntryUpdate) SetModelDetails(v map[string]interface{}) *MissionLogEntryUpdate {
	_u.mutation.SetModelDetails(v)
	return _u
}

// ClearModelDetails clears the value of the "model_details" field.
func (_u *MissionLogEntryUpdate) ClearModelDetails() *MissionLogEntryUpdate {
	_u.mutation.ClearModelDetails()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *MissionLogEntryUpdate) SetToolCalls(v []map[string]interface{}) *MissionLogEntryUpdate {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *MissionLogEntryUpdate) AppendToolCalls(v []map[string]interface{}) *MissionLogEntryUpdate {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *MissionLogEntryUpdate) ClearToolCalls() *MissionLogEntryUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetFileInteractions sets the "file_interactions" field.
func (_u *MissionLogEntryUpdate) SetFileInteractions(v []map[string]interface{}) *MissionLogEntryUpdate {
	_u.mutation.SetFileInteractions(v)
	return _u
}

// AppendFileInteractions appends value to the "file_interactions" field.
func (_u *MissionLogEntryUpdate) AppendFileInteractions(v []map[string]interface{}) *MissionLogEntryUpdate {
	_u.mutation.AppendFileInteractions(v)
	return _u
}

// ClearFileInteractions clears the value of the "file_interactions" field.
func (_u *MissionLogEntryUpdate) ClearFileInteractions() *MissionLogEntryUpdate {
	_u.mutation.ClearFileInteractions()
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *MissionLogEntryUpdate) SetMission(v *Mission) *MissionLogEntryUpdate {
	return _u.SetMissionID(v.ID)
}

// Mutation returns the MissionLogEntryMutation object of the builder.
func (_u *MissionLogEntryUpdate) Mutation() *MissionLogEntryMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *MissionLogEntryUpdate) ClearMission() *MissionLogEntryUpdate {
	_u.mutation.ClearMission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionLogEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionLogEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionLogEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionLogEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionLogEntryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := missionlogentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MissionLogEntry.status": %w`, err)}
		}
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MissionLogEntry.mission"`)
	}
	return nil
}

func (_u *MissionLogEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(missionlogentry.Table, missionlogentry.Columns, sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(missionlogentry.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(missionlogentry.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(missionlogentry.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(missionlogentry.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(missionlogentry.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputSummary(); ok {
		_spec.SetField(missionlogentry.FieldInputSummary, field.TypeString, value)
	}
	if _u.mutation.InputSummaryCleared() {
		_spec.ClearField(missionlogentry.FieldInputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(missionlogentry.FieldOutputSummary, field.TypeString, value)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(missionlogentry.FieldOutputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(missionlogentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(missionlogentry.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(missionlogentry.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FullInput(); ok {
		_spec.SetField(missionlogentry.FieldFullInput, field.TypeString, value)
	}
	if _u.mutation.FullInputCleared() {
		_spec.ClearField(missionlogentry.FieldFullInput, field.TypeString)
	}
	if value, ok := _u.mutation.FullOutput(); ok {
		_spec.SetField(missionlogentry.FieldFullOutput, field.TypeString, value)
	}
	if _u.mutation.FullOutputCleared() {
		_spec.ClearField(missionlogentry.FieldFullOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ModelDetails(); ok {
		_spec.SetField(missionlogentry.FieldModelDetails, field.TypeJSON, value)
	}
	if _u.mutation.ModelDetailsCleared() {
		_spec.ClearField(missionlogentry.FieldModelDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(missionlogentry.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, missionlogentry.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(missionlogentry.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.FileInteractions(); ok {
		_spec.SetField(missionlogentry.FieldFileInteractions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFileInteractions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, missionlogentry.FieldFileInteractions, value)
		})
	}
	if _u.mutation.FileInteractionsCleared() {
		_spec.ClearField(missionlogentry.FieldFileInteractions, field.TypeJSON)
	}
	if _u.mutation.MissionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{missionlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionLogEntryUpdateOne is the builder for updating a single MissionLogEntry entity.
type MissionLogEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionLogEntryMutation
}

// SetMissionID sets the "mission_id" field.
func (_u *MissionLogEntryUpdateOne) SetMissionID(v string) *MissionLogEntryUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableMissionID(v *string) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *MissionLogEntryUpdateOne) SetSequence(v int) *MissionLogEntryUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableSequence(v *int) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *MissionLogEntryUpdateOne) AddSequence(v int) *MissionLogEntryUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MissionLogEntryUpdateOne) SetTimestamp(v time.Time) *MissionLogEntryUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableTimestamp(v *time.Time) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetAgentName sets the "agent_name" field.
func (_u *MissionLogEntryUpdateOne) SetAgentName(v string) *MissionLogEntryUpdateOne {
	_u.mutation.SetAgentName(v)
	return _u
}

// SetNillableAgentName sets the "agent_name" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableAgentName(v *string) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetAgentName(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *MissionLogEntryUpdateOne) SetAction(v string) *MissionLogEntryUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableAction(v *string) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetInputSummary sets the "input_summary" field.
func (_u *MissionLogEntryUpdateOne) SetInputSummary(v string) *MissionLogEntryUpdateOne {
	_u.mutation.SetInputSummary(v)
	return _u
}

// SetNillableInputSummary sets the "input_summary" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableInputSummary(v *string) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetInputSummary(*v)
	}
	return _u
}

// ClearInputSummary clears the value of the "input_summary" field.
func (_u *MissionLogEntryUpdateOne) ClearInputSummary() *MissionLogEntryUpdateOne {
	_u.mutation.ClearInputSummary()
	return _u
}

// SetOutputSummary sets the "output_summary" field.
func (_u *MissionLogEntryUpdateOne) SetOutputSummary(v string) *MissionLogEntryUpdateOne {
	_u.mutation.SetOutputSummary(v)
	return _u
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableOutputSummary(v *string) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetOutputSummary(*v)
	}
	return _u
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (_u *MissionLogEntryUpdateOne) ClearOutputSummary() *MissionLogEntryUpdateOne {
	_u.mutation.ClearOutputSummary()
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionLogEntryUpdateOne) SetStatus(v missionlogentry.Status) *MissionLogEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableStatus(v *missionlogentry.Status) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MissionLogEntryUpdateOne) SetErrorMessage(v string) *MissionLogEntryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableErrorMessage(v *string) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *MissionLogEntryUpdateOne) ClearErrorMessage() *MissionLogEntryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFullInput sets the "full_input" field.
func (_u *MissionLogEntryUpdateOne) SetFullInput(v string) *MissionLogEntryUpdateOne {
	_u.mutation.SetFullInput(v)
	return _u
}

// SetNillableFullInput sets the "full_input" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableFullInput(v *string) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetFullInput(*v)
	}
	return _u
}

// ClearFullInput clears the value of the "full_input" field.
func (_u *MissionLogEntryUpdateOne) ClearFullInput() *MissionLogEntryUpdateOne {
	_u.mutation.ClearFullInput()
	return _u
}

// SetFullOutput sets the "full_output" field.
func (_u *MissionLogEntryUpdateOne) SetFullOutput(v string) *MissionLogEntryUpdateOne {
	_u.mutation.SetFullOutput(v)
	return _u
}

// SetNillableFullOutput sets the "full_output" field if the given value is not nil.
func (_u *MissionLogEntryUpdateOne) SetNillableFullOutput(v *string) *MissionLogEntryUpdateOne {
	if v != nil {
		_u.SetFullOutput(*v)
	}
	return _u
}

// ClearFullOutput clears the value of the "full_output" field.
func (_u *MissionLogEntryUpdateOne) ClearFullOutput() *MissionLogEntryUpdateOne {
	_u.mutation.ClearFullOutput()
	return _u
}

// SetModelDetails sets the "model_details" field.
func (_u *MissionLogEntryUpdateOne) SetModelDetails(v map[string]interface{}) *MissionLogEntryUpdateOne {
	_u.mutation.SetModelDetails(v)
	return _u
}

// ClearModelDetails clears the value of the "model_details" field.
func (_u *MissionLogEntryUpdateOne) ClearModelDetails() *MissionLogEntryUpdateOne {
	_u.mutation.ClearModelDetails()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *MissionLogEntryUpdateOne) SetToolCalls(v []map[string]interface{}) *MissionLogEntryUpdateOne {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *MissionLogEntryUpdateOne) AppendToolCalls(v []map[string]interface{}) *MissionLogEntryUpdateOne {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *MissionLogEntryUpdateOne) ClearToolCalls() *MissionLogEntryUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetFileInteractions sets the "file_interactions" field.
func (_u *MissionLogEntryUpdateOne) SetFileInteractions(v []map[string]interface{}) *MissionLogEntryUpdateOne {
	_u.mutation.SetFileInteractions(v)
	return _u
}

// AppendFileInteractions appends value to the "file_interactions" field.
func (_u *MissionLogEntryUpdateOne) AppendFileInteractions(v []map[string]interface{}) *MissionLogEntryUpdateOne {
	_u.mutation.AppendFileInteractions(v)
	return _u
}

// ClearFileInteractions clears the value of the "file_interactions" field.
func (_u *MissionLogEntryUpdateOne) ClearFileInteractions() *MissionLogEntryUpdateOne {
	_u.mutation.ClearFileInteractions()
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *MissionLogEntryUpdateOne) SetMission(v *Mission) *MissionLogEntryUpdateOne {
	return _u.SetMissionID(v.ID)
}

// Mutation returns the MissionLogEntryMutation object of the builder.
func (_u *MissionLogEntryUpdateOne) Mutation() *MissionLogEntryMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *MissionLogEntryUpdateOne) ClearMission() *MissionLogEntryUpdateOne {
	_u.mutation.ClearMission()
	return _u
}

// Where appends a list predicates to the MissionLogEntryUpdate builder.
func (_u *MissionLogEntryUpdateOne) Where(ps ...predicate.MissionLogEntry) *MissionLogEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionLogEntryUpdateOne) Select(field string, fields ...string) *MissionLogEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MissionLogEntry entity.
func (_u *MissionLogEntryUpdateOne) Save(ctx context.Context) (*MissionLogEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionLogEntryUpdateOne) SaveX(ctx context.Context) *MissionLogEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionLogEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionLogEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionLogEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := missionlogentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MissionLogEntry.status": %w`, err)}
		}
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MissionLogEntry.mission"`)
	}
	return nil
}

func (_u *MissionLogEntryUpdateOne) sqlSave(ctx context.Context) (_node *MissionLogEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(missionlogentry.Table, missionlogentry.Columns, sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MissionLogEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, missionlogentry.FieldID)
		for _, f := range fields {
			if !missionlogentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != missionlogentry.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(missionlogentry.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(missionlogentry.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(missionlogentry.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AgentName(); ok {
		_spec.SetField(missionlogentry.FieldAgentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(missionlogentry.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputSummary(); ok {
		_spec.SetField(missionlogentry.FieldInputSummary, field.TypeString, value)
	}
	if _u.mutation.InputSummaryCleared() {
		_spec.ClearField(missionlogentry.FieldInputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.OutputSummary(); ok {
		_spec.SetField(missionlogentry.FieldOutputSummary, field.TypeString, value)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(missionlogentry.FieldOutputSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(missionlogentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(missionlogentry.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(missionlogentry.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FullInput(); ok {
		_spec.SetField(missionlogentry.FieldFullInput, field.TypeString, value)
	}
	if _u.mutation.FullInputCleared() {
		_spec.ClearField(missionlogentry.FieldFullInput, field.TypeString)
	}
	if value, ok := _u.mutation.FullOutput(); ok {
		_spec.SetField(missionlogentry.FieldFullOutput, field.TypeString, value)
	}
	if _u.mutation.FullOutputCleared() {
		_spec.ClearField(missionlogentry.FieldFullOutput, field.TypeString)
	}
	if value, ok := _u.mutation.ModelDetails(); ok {
		_spec.SetField(missionlogentry.FieldModelDetails, field.TypeJSON, value)
	}
	if _u.mutation.ModelDetailsCleared() {
		_spec.ClearField(missionlogentry.FieldModelDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(missionlogentry.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, missionlogentry.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(missionlogentry.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.FileInteractions(); ok {
		_spec.SetField(missionlogentry.FieldFileInteractions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFileInteractions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, missionlogentry.FieldFileInteractions, value)
		})
	}
	if _u.mutation.FileInteractionsCleared() {
		_spec.ClearField(missionlogentry.FieldFileInteractions, field.TypeJSON)
	}
	if _u.mutation.MissionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MissionLogEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{missionlogentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
