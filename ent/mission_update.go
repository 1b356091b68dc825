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
	"github.com/maestro-research/maestro/ent/event"
	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
	"github.com/maestro-research/maestro/ent/predicate"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/pkg/models"
)

// MissionUpdate is the builder for updating Mission entities.
type MissionUpdate struct {
	config
	hooks    []Hook
	mutation *MissionMutation
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdate) Where(ps ...predicate.Mission) *MissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *MissionUpdate) SetChatID(v string) *MissionUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableChatID(v *string) *MissionUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MissionUpdate) SetUserID(v string) *MissionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableUserID(v *string) *MissionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUserRequest sets the "user_request" field.
func (_u *MissionUpdate) SetUserRequest(v string) *MissionUpdate {
	_u.mutation.SetUserRequest(v)
	return _u
}

// SetNillableUserRequest sets the "user_request" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableUserRequest(v *string) *MissionUpdate {
	if v != nil {
		_u.SetUserRequest(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdate) SetStatus(v mission.Status) *MissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStatus(v *mission.Status) *MissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorInfo sets the "error_info" field.
func (_u *MissionUpdate) SetErrorInfo(v string) *MissionUpdate {
	_u.mutation.SetErrorInfo(v)
	return _u
}

// SetNillableErrorInfo sets the "error_info" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableErrorInfo(v *string) *MissionUpdate {
	if v != nil {
		_u.SetErrorInfo(*v)
	}
	return _u
}

// ClearErrorInfo clears the value of the "error_info" field.
func (_u *MissionUpdate) ClearErrorInfo() *MissionUpdate {
	_u.mutation.ClearErrorInfo()
	return _u
}

// SetContextData sets the "context_data" field.
func (_u *MissionUpdate) SetContextData(v *models.MissionContext) *MissionUpdate {
	_u.mutation.SetContextData(v)
	return _u
}

// SetCurrentReportVersion sets the "current_report_version" field.
func (_u *MissionUpdate) SetCurrentReportVersion(v int) *MissionUpdate {
	_u.mutation.ResetCurrentReportVersion()
	_u.mutation.SetCurrentReportVersion(v)
	return _u
}

// SetNillableCurrentReportVersion sets the "current_report_version" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCurrentReportVersion(v *int) *MissionUpdate {
	if v != nil {
		_u.SetCurrentReportVersion(*v)
	}
	return _u
}

// AddCurrentReportVersion adds value to the "current_report_version" field.
func (_u *MissionUpdate) AddCurrentReportVersion(v int) *MissionUpdate {
	_u.mutation.AddCurrentReportVersion(v)
	return _u
}

// ClearCurrentReportVersion clears the value of the "current_report_version" field.
func (_u *MissionUpdate) ClearCurrentReportVersion() *MissionUpdate {
	_u.mutation.ClearCurrentReportVersion()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MissionUpdate) SetCreatedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCreatedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MissionUpdate) SetUpdatedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableUpdatedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionUpdate) SetStartedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStartedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionUpdate) ClearStartedAt() *MissionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdate) SetCompletedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCompletedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdate) ClearCompletedAt() *MissionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *MissionUpdate) SetPodID(v string) *MissionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *MissionUpdate) SetNillablePodID(v *string) *MissionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *MissionUpdate) ClearPodID() *MissionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *MissionUpdate) SetLastInteractionAt(v time.Time) *MissionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableLastInteractionAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *MissionUpdate) ClearLastInteractionAt() *MissionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MissionUpdate) SetDeletedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableDeletedAt(v *time.Time) *MissionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MissionUpdate) ClearDeletedAt() *MissionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddLogEntryIDs adds the "log_entries" edge to the MissionLogEntry entity by IDs.
func (_u *MissionUpdate) AddLogEntryIDs(ids ...string) *MissionUpdate {
	_u.mutation.AddLogEntryIDs(ids...)
	return _u
}

// AddLogEntries adds the "log_entries" edges to the MissionLogEntry entity.
func (_u *MissionUpdate) AddLogEntries(v ...*MissionLogEntry) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogEntryIDs(ids...)
}

// AddReportVersionIDs adds the "report_versions" edge to the ReportVersion entity by IDs.
func (_u *MissionUpdate) AddReportVersionIDs(ids ...string) *MissionUpdate {
	_u.mutation.AddReportVersionIDs(ids...)
	return _u
}

// AddReportVersions adds the "report_versions" edges to the ReportVersion entity.
func (_u *MissionUpdate) AddReportVersions(v ...*ReportVersion) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportVersionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *MissionUpdate) AddEventIDs(ids ...int) *MissionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *MissionUpdate) AddEvents(v ...*Event) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdate) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearLogEntries clears all "log_entries" edges to the MissionLogEntry entity.
func (_u *MissionUpdate) ClearLogEntries() *MissionUpdate {
	_u.mutation.ClearLogEntries()
	return _u
}

// RemoveLogEntryIDs removes the "log_entries" edge to MissionLogEntry entities by IDs.
func (_u *MissionUpdate) RemoveLogEntryIDs(ids ...string) *MissionUpdate {
	_u.mutation.RemoveLogEntryIDs(ids...)
	return _u
}

// RemoveLogEntries removes "log_entries" edges to MissionLogEntry entities.
func (_u *MissionUpdate) RemoveLogEntries(v ...*MissionLogEntry) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogEntryIDs(ids...)
}

// ClearReportVersions clears all "report_versions" edges to the ReportVersion entity.
func (_u *MissionUpdate) ClearReportVersions() *MissionUpdate {
	_u.mutation.ClearReportVersions()
	return _u
}

// RemoveReportVersionIDs removes the "report_versions" edge to ReportVersion entities by IDs.
func (_u *MissionUpdate) RemoveReportVersionIDs(ids ...string) *MissionUpdate {
	_u.mutation.RemoveReportVersionIDs(ids...)
	return _u
}

// RemoveReportVersions removes "report_versions" edges to ReportVersion entities.
func (_u *MissionUpdate) RemoveReportVersions(v ...*ReportVersion) *MissionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportVersionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *MissionUpdate) ClearEvents() *MissionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *MissionUpdate) RemoveEventIDs(ids ...int) *MissionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *MissionUpdate) RemoveEvents(v ...*Event) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(mission.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mission.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserRequest(); ok {
		_spec.SetField(mission.FieldUserRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorInfo(); ok {
		_spec.SetField(mission.FieldErrorInfo, field.TypeString, value)
	}
	if _u.mutation.ErrorInfoCleared() {
		_spec.ClearField(mission.FieldErrorInfo, field.TypeString)
	}
	if value, ok := _u.mutation.ContextData(); ok {
		_spec.SetField(mission.FieldContextData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CurrentReportVersion(); ok {
		_spec.SetField(mission.FieldCurrentReportVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentReportVersion(); ok {
		_spec.AddField(mission.FieldCurrentReportVersion, field.TypeInt, value)
	}
	if _u.mutation.CurrentReportVersionCleared() {
		_spec.ClearField(mission.FieldCurrentReportVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(mission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(mission.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(mission.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(mission.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(mission.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(mission.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(mission.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.LogEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.LogEntriesTable,
			Columns: []string{mission.LogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogEntriesIDs(); len(nodes) > 0 && !_u.mutation.LogEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.LogEntriesTable,
			Columns: []string{mission.LogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.LogEntriesTable,
			Columns: []string{mission.LogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ReportVersionsTable,
			Columns: []string{mission.ReportVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportVersionsIDs(); len(nodes) > 0 && !_u.mutation.ReportVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ReportVersionsTable,
			Columns: []string{mission.ReportVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ReportVersionsTable,
			Columns: []string{mission.ReportVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionUpdateOne is the builder for updating a single Mission entity.
type MissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionMutation
}

// SetChatID sets the "chat_id" field.
func (_u *MissionUpdateOne) SetChatID(v string) *MissionUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableChatID(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MissionUpdateOne) SetUserID(v string) *MissionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableUserID(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUserRequest sets the "user_request" field.
func (_u *MissionUpdateOne) SetUserRequest(v string) *MissionUpdateOne {
	_u.mutation.SetUserRequest(v)
	return _u
}

// SetNillableUserRequest sets the "user_request" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableUserRequest(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetUserRequest(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdateOne) SetStatus(v mission.Status) *MissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStatus(v *mission.Status) *MissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorInfo sets the "error_info" field.
func (_u *MissionUpdateOne) SetErrorInfo(v string) *MissionUpdateOne {
	_u.mutation.SetErrorInfo(v)
	return _u
}

// SetNillableErrorInfo sets the "error_info" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableErrorInfo(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetErrorInfo(*v)
	}
	return _u
}

// ClearErrorInfo clears the value of the "error_info" field.
func (_u *MissionUpdateOne) ClearErrorInfo() *MissionUpdateOne {
	_u.mutation.ClearErrorInfo()
	return _u
}

// SetContextData sets the "context_data" field.
func (_u *MissionUpdateOne) SetContextData(v *models.MissionContext) *MissionUpdateOne {
	_u.mutation.SetContextData(v)
	return _u
}

// SetCurrentReportVersion sets the "current_report_version" field.
func (_u *MissionUpdateOne) SetCurrentReportVersion(v int) *MissionUpdateOne {
	_u.mutation.ResetCurrentReportVersion()
	_u.mutation.SetCurrentReportVersion(v)
	return _u
}

// SetNillableCurrentReportVersion sets the "current_report_version" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCurrentReportVersion(v *int) *MissionUpdateOne {
	if v != nil {
		_u.SetCurrentReportVersion(*v)
	}
	return _u
}

// AddCurrentReportVersion adds value to the "current_report_version" field.
func (_u *MissionUpdateOne) AddCurrentReportVersion(v int) *MissionUpdateOne {
	_u.mutation.AddCurrentReportVersion(v)
	return _u
}

// ClearCurrentReportVersion clears the value of the "current_report_version" field.
func (_u *MissionUpdateOne) ClearCurrentReportVersion() *MissionUpdateOne {
	_u.mutation.ClearCurrentReportVersion()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MissionUpdateOne) SetCreatedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCreatedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MissionUpdateOne) SetUpdatedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableUpdatedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *MissionUpdateOne) SetStartedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStartedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *MissionUpdateOne) ClearStartedAt() *MissionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MissionUpdateOne) SetCompletedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCompletedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MissionUpdateOne) ClearCompletedAt() *MissionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *MissionUpdateOne) SetPodID(v string) *MissionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillablePodID(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *MissionUpdateOne) ClearPodID() *MissionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *MissionUpdateOne) SetLastInteractionAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *MissionUpdateOne) ClearLastInteractionAt() *MissionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MissionUpdateOne) SetDeletedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableDeletedAt(v *time.Time) *MissionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MissionUpdateOne) ClearDeletedAt() *MissionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddLogEntryIDs adds the "log_entries" edge to the MissionLogEntry entity by IDs.
func (_u *MissionUpdateOne) AddLogEntryIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.AddLogEntryIDs(ids...)
	return _u
}

// AddLogEntries adds the "log_entries" edges to the MissionLogEntry entity.
func (_u *MissionUpdateOne) AddLogEntries(v ...*MissionLogEntry) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogEntryIDs(ids...)
}

// AddReportVersionIDs adds the "report_versions" edge to the ReportVersion entity by IDs.
func (_u *MissionUpdateOne) AddReportVersionIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.AddReportVersionIDs(ids...)
	return _u
}

// AddReportVersions adds the "report_versions" edges to the ReportVersion entity.
func (_u *MissionUpdateOne) AddReportVersions(v ...*ReportVersion) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportVersionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *MissionUpdateOne) AddEventIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *MissionUpdateOne) AddEvents(v ...*Event) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdateOne) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearLogEntries clears all "log_entries" edges to the MissionLogEntry entity.
func (_u *MissionUpdateOne) ClearLogEntries() *MissionUpdateOne {
	_u.mutation.ClearLogEntries()
	return _u
}

// RemoveLogEntryIDs removes the "log_entries" edge to MissionLogEntry entities by IDs.
func (_u *MissionUpdateOne) RemoveLogEntryIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.RemoveLogEntryIDs(ids...)
	return _u
}

// RemoveLogEntries removes "log_entries" edges to MissionLogEntry entities.
func (_u *MissionUpdateOne) RemoveLogEntries(v ...*MissionLogEntry) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogEntryIDs(ids...)
}

// ClearReportVersions clears all "report_versions" edges to the ReportVersion entity.
func (_u *MissionUpdateOne) ClearReportVersions() *MissionUpdateOne {
	_u.mutation.ClearReportVersions()
	return _u
}

// RemoveReportVersionIDs removes the "report_versions" edge to ReportVersion entities by IDs.
func (_u *MissionUpdateOne) RemoveReportVersionIDs(ids ...string) *MissionUpdateOne {
	_u.mutation.RemoveReportVersionIDs(ids...)
	return _u
}

// RemoveReportVersions removes "report_versions" edges to ReportVersion entities.
func (_u *MissionUpdateOne) RemoveReportVersions(v ...*ReportVersion) *MissionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportVersionIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *MissionUpdateOne) ClearEvents() *MissionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *MissionUpdateOne) RemoveEventIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *MissionUpdateOne) RemoveEvents(v ...*Event) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdateOne) Where(ps ...predicate.Mission) *MissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionUpdateOne) Select(field string, fields ...string) *MissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mission entity.
func (_u *MissionUpdateOne) Save(ctx context.Context) (*Mission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdateOne) SaveX(ctx context.Context) *Mission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MissionUpdateOne) sqlSave(ctx context.Context) (_node *Mission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mission.FieldID)
		for _, f := range fields {
			if !mission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mission.FieldID {
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
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(mission.FieldChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(mission.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserRequest(); ok {
		_spec.SetField(mission.FieldUserRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorInfo(); ok {
		_spec.SetField(mission.FieldErrorInfo, field.TypeString, value)
	}
	if _u.mutation.ErrorInfoCleared() {
		_spec.ClearField(mission.FieldErrorInfo, field.TypeString)
	}
	if value, ok := _u.mutation.ContextData(); ok {
		_spec.SetField(mission.FieldContextData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CurrentReportVersion(); ok {
		_spec.SetField(mission.FieldCurrentReportVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentReportVersion(); ok {
		_spec.AddField(mission.FieldCurrentReportVersion, field.TypeInt, value)
	}
	if _u.mutation.CurrentReportVersionCleared() {
		_spec.ClearField(mission.FieldCurrentReportVersion, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(mission.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(mission.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(mission.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(mission.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(mission.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(mission.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(mission.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(mission.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.LogEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.LogEntriesTable,
			Columns: []string{mission.LogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogEntriesIDs(); len(nodes) > 0 && !_u.mutation.LogEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.LogEntriesTable,
			Columns: []string{mission.LogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.LogEntriesTable,
			Columns: []string{mission.LogEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(missionlogentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ReportVersionsTable,
			Columns: []string{mission.ReportVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportVersionsIDs(); len(nodes) > 0 && !_u.mutation.ReportVersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ReportVersionsTable,
			Columns: []string{mission.ReportVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportVersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ReportVersionsTable,
			Columns: []string{mission.ReportVersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.EventsTable,
			Columns: []string{mission.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
