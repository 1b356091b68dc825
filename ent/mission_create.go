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
	"github.com/maestro-research/maestro/ent/event"
	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/pkg/models"
)

// MissionCreate is the builder for creating a Mission entity.
type MissionCreate struct {
	config
	mutation *MissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatID sets the "chat_id" field.
func (_c *MissionCreate) SetChatID(v string) *MissionCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MissionCreate) SetUserID(v string) *MissionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUserRequest sets the "user_request" field.
func (_c *MissionCreate) SetUserRequest(v string) *MissionCreate {
	_c.mutation.SetUserRequest(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MissionCreate) SetStatus(v mission.Status) *MissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStatus(v *mission.Status) *MissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorInfo sets the "error_info" field.
func (_c *MissionCreate) SetErrorInfo(v string) *MissionCreate {
	_c.mutation.SetErrorInfo(v)
	return _c
}

// SetNillableErrorInfo sets the "error_info" field if the given value is not nil.
func (_c *MissionCreate) SetNillableErrorInfo(v *string) *MissionCreate {
	if v != nil {
		_c.SetErrorInfo(*v)
	}
	return _c
}

// SetContextData sets the "context_data" field.
func (_c *MissionCreate) SetContextData(v *models.MissionContext) *MissionCreate {
	_c.mutation.SetContextData(v)
	return _c
}

// SetCurrentReportVersion sets the "current_report_version" field.
func (_c *MissionCreate) SetCurrentReportVersion(v int) *MissionCreate {
	_c.mutation.SetCurrentReportVersion(v)
	return _c
}

// SetNillableCurrentReportVersion sets the "current_report_version" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCurrentReportVersion(v *int) *MissionCreate {
	if v != nil {
		_c.SetCurrentReportVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MissionCreate) SetCreatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCreatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MissionCreate) SetUpdatedAt(v time.Time) *MissionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableUpdatedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MissionCreate) SetStartedAt(v time.Time) *MissionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableStartedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MissionCreate) SetCompletedAt(v time.Time) *MissionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableCompletedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *MissionCreate) SetPodID(v string) *MissionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *MissionCreate) SetNillablePodID(v *string) *MissionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *MissionCreate) SetLastInteractionAt(v time.Time) *MissionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableLastInteractionAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MissionCreate) SetDeletedAt(v time.Time) *MissionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MissionCreate) SetNillableDeletedAt(v *time.Time) *MissionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MissionCreate) SetID(v string) *MissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddLogEntryIDs adds the "log_entries" edge to the MissionLogEntry entity by IDs.
func (_c *MissionCreate) AddLogEntryIDs(ids ...string) *MissionCreate {
	_c.mutation.AddLogEntryIDs(ids...)
	return _c
}

// AddLogEntries adds the "log_entries" edges to the MissionLogEntry entity.
func (_c *MissionCreate) AddLogEntries(v ...*MissionLogEntry) *MissionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogEntryIDs(ids...)
}

// AddReportVersionIDs adds the "report_versions" edge to the ReportVersion entity by IDs.
func (_c *MissionCreate) AddReportVersionIDs(ids ...string) *MissionCreate {
	_c.mutation.AddReportVersionIDs(ids...)
	return _c
}

// AddReportVersions adds the "report_versions" edges to the ReportVersion entity.
func (_c *MissionCreate) AddReportVersions(v ...*ReportVersion) *MissionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportVersionIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *MissionCreate) AddEventIDs(ids ...int) *MissionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *MissionCreate) AddEvents(v ...*Event) *MissionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_c *MissionCreate) Mutation() *MissionMutation {
	return _c.mutation
}

// Save creates the Mission in the database.
func (_c *MissionCreate) Save(ctx context.Context) (*Mission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissionCreate) SaveX(ctx context.Context) *Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := mission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mission.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissionCreate) check() error {
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "Mission.chat_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Mission.user_id"`)}
	}
	if _, ok := _c.mutation.UserRequest(); !ok {
		return &ValidationError{Name: "user_request", err: errors.New(`ent: missing required field "Mission.user_request"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Mission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContextData(); !ok {
		return &ValidationError{Name: "context_data", err: errors.New(`ent: missing required field "Mission.context_data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mission.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Mission.updated_at"`)}
	}
	return nil
}

func (_c *MissionCreate) sqlSave(ctx context.Context) (*Mission, error) {
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
			return nil, fmt.Errorf("unexpected Mission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MissionCreate) createSpec() (*Mission, *sqlgraph.CreateSpec) {
	var (
		_node = &Mission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mission.Table, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(mission.FieldChatID, field.TypeString, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(mission.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UserRequest(); ok {
		_spec.SetField(mission.FieldUserRequest, field.TypeString, value)
		_node.UserRequest = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorInfo(); ok {
		_spec.SetField(mission.FieldErrorInfo, field.TypeString, value)
		_node.ErrorInfo = &value
	}
	if value, ok := _c.mutation.ContextData(); ok {
		_spec.SetField(mission.FieldContextData, field.TypeJSON, value)
		_node.ContextData = value
	}
	if value, ok := _c.mutation.CurrentReportVersion(); ok {
		_spec.SetField(mission.FieldCurrentReportVersion, field.TypeInt, value)
		_node.CurrentReportVersion = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(mission.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(mission.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(mission.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(mission.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(mission.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.LogEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportVersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mission.Create().
//		SetChatID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionCreate) OnConflict(opts ...sql.ConflictOption) *MissionUpsertOne {
	_c.conflict = opts
	return &MissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionCreate) OnConflictColumns(columns ...string) *MissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionUpsertOne{
		create: _c,
	}
}

type (
	// MissionUpsertOne is the builder for "upsert"-ing
	//  one Mission node.
	MissionUpsertOne struct {
		create *MissionCreate
	}

	// MissionUpsert is the "OnConflict" setter.
	MissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetChatID sets the "chat_id" field.
func (u *MissionUpsert) SetChatID(v string) *MissionUpsert {
	u.Set(mission.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *MissionUpsert) UpdateChatID() *MissionUpsert {
	u.SetExcluded(mission.FieldChatID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *MissionUpsert) SetUserID(v string) *MissionUpsert {
	u.Set(mission.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MissionUpsert) UpdateUserID() *MissionUpsert {
	u.SetExcluded(mission.FieldUserID)
	return u
}

// SetUserRequest sets the "user_request" field.
func (u *MissionUpsert) SetUserRequest(v string) *MissionUpsert {
	u.Set(mission.FieldUserRequest, v)
	return u
}

// UpdateUserRequest sets the "user_request" field to the value that was provided on create.
func (u *MissionUpsert) UpdateUserRequest() *MissionUpsert {
	u.SetExcluded(mission.FieldUserRequest)
	return u
}

// SetStatus sets the "status" field.
func (u *MissionUpsert) SetStatus(v mission.Status) *MissionUpsert {
	u.Set(mission.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsert) UpdateStatus() *MissionUpsert {
	u.SetExcluded(mission.FieldStatus)
	return u
}

// SetErrorInfo sets the "error_info" field.
func (u *MissionUpsert) SetErrorInfo(v string) *MissionUpsert {
	u.Set(mission.FieldErrorInfo, v)
	return u
}

// UpdateErrorInfo sets the "error_info" field to the value that was provided on create.
func (u *MissionUpsert) UpdateErrorInfo() *MissionUpsert {
	u.SetExcluded(mission.FieldErrorInfo)
	return u
}

// ClearErrorInfo clears the value of the "error_info" field.
func (u *MissionUpsert) ClearErrorInfo() *MissionUpsert {
	u.SetNull(mission.FieldErrorInfo)
	return u
}

// SetContextData sets the "context_data" field.
func (u *MissionUpsert) SetContextData(v *models.MissionContext) *MissionUpsert {
	u.Set(mission.FieldContextData, v)
	return u
}

// UpdateContextData sets the "context_data" field to the value that was provided on create.
func (u *MissionUpsert) UpdateContextData() *MissionUpsert {
	u.SetExcluded(mission.FieldContextData)
	return u
}

// SetCurrentReportVersion sets the "current_report_version" field.
func (u *MissionUpsert) SetCurrentReportVersion(v int) *MissionUpsert {
	u.Set(mission.FieldCurrentReportVersion, v)
	return u
}

// UpdateCurrentReportVersion sets the "current_report_version" field to the value that was provided on create.
func (u *MissionUpsert) UpdateCurrentReportVersion() *MissionUpsert {
	u.SetExcluded(mission.FieldCurrentReportVersion)
	return u
}

// AddCurrentReportVersion adds v to the "current_report_version" field.
func (u *MissionUpsert) AddCurrentReportVersion(v int) *MissionUpsert {
	u.Add(mission.FieldCurrentReportVersion, v)
	return u
}

// ClearCurrentReportVersion clears the value of the "current_report_version" field.
func (u *MissionUpsert) ClearCurrentReportVersion() *MissionUpsert {
	u.SetNull(mission.FieldCurrentReportVersion)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *MissionUpsert) SetCreatedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateCreatedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsert) SetUpdatedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateUpdatedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldUpdatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *MissionUpsert) SetStartedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateStartedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionUpsert) ClearStartedAt() *MissionUpsert {
	u.SetNull(mission.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsert) SetCompletedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateCompletedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsert) ClearCompletedAt() *MissionUpsert {
	u.SetNull(mission.FieldCompletedAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *MissionUpsert) SetPodID(v string) *MissionUpsert {
	u.Set(mission.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *MissionUpsert) UpdatePodID() *MissionUpsert {
	u.SetExcluded(mission.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *MissionUpsert) ClearPodID() *MissionUpsert {
	u.SetNull(mission.FieldPodID)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *MissionUpsert) SetLastInteractionAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateLastInteractionAt() *MissionUpsert {
	u.SetExcluded(mission.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *MissionUpsert) ClearLastInteractionAt() *MissionUpsert {
	u.SetNull(mission.FieldLastInteractionAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MissionUpsert) SetDeletedAt(v time.Time) *MissionUpsert {
	u.Set(mission.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MissionUpsert) UpdateDeletedAt() *MissionUpsert {
	u.SetExcluded(mission.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MissionUpsert) ClearDeletedAt() *MissionUpsert {
	u.SetNull(mission.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionUpsertOne) UpdateNewValues() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mission.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MissionUpsertOne) Ignore() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionUpsertOne) DoNothing() *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionCreate.OnConflict
// documentation for more info.
func (u *MissionUpsertOne) Update(set func(*MissionUpsert)) *MissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *MissionUpsertOne) SetChatID(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateChatID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateChatID()
	})
}

// SetUserID sets the "user_id" field.
func (u *MissionUpsertOne) SetUserID(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateUserID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUserID()
	})
}

// SetUserRequest sets the "user_request" field.
func (u *MissionUpsertOne) SetUserRequest(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetUserRequest(v)
	})
}

// UpdateUserRequest sets the "user_request" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateUserRequest() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUserRequest()
	})
}

// SetStatus sets the "status" field.
func (u *MissionUpsertOne) SetStatus(v mission.Status) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateStatus() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorInfo sets the "error_info" field.
func (u *MissionUpsertOne) SetErrorInfo(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetErrorInfo(v)
	})
}

// UpdateErrorInfo sets the "error_info" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateErrorInfo() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateErrorInfo()
	})
}

// ClearErrorInfo clears the value of the "error_info" field.
func (u *MissionUpsertOne) ClearErrorInfo() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearErrorInfo()
	})
}

// SetContextData sets the "context_data" field.
func (u *MissionUpsertOne) SetContextData(v *models.MissionContext) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetContextData(v)
	})
}

// UpdateContextData sets the "context_data" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateContextData() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateContextData()
	})
}

// SetCurrentReportVersion sets the "current_report_version" field.
func (u *MissionUpsertOne) SetCurrentReportVersion(v int) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetCurrentReportVersion(v)
	})
}

// AddCurrentReportVersion adds v to the "current_report_version" field.
func (u *MissionUpsertOne) AddCurrentReportVersion(v int) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.AddCurrentReportVersion(v)
	})
}

// UpdateCurrentReportVersion sets the "current_report_version" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateCurrentReportVersion() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCurrentReportVersion()
	})
}

// ClearCurrentReportVersion clears the value of the "current_report_version" field.
func (u *MissionUpsertOne) ClearCurrentReportVersion() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearCurrentReportVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *MissionUpsertOne) SetCreatedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateCreatedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsertOne) SetUpdatedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateUpdatedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *MissionUpsertOne) SetStartedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateStartedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionUpsertOne) ClearStartedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsertOne) SetCompletedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateCompletedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsertOne) ClearCompletedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *MissionUpsertOne) SetPodID(v string) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdatePodID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *MissionUpsertOne) ClearPodID() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *MissionUpsertOne) SetLastInteractionAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateLastInteractionAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *MissionUpsertOne) ClearLastInteractionAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MissionUpsertOne) SetDeletedAt(v time.Time) *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MissionUpsertOne) UpdateDeletedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MissionUpsertOne) ClearDeletedAt() *MissionUpsertOne {
	return u.Update(func(s *MissionUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *MissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MissionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MissionUpsertOne.ID is not supported by MySQL driver. Use MissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MissionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MissionCreateBulk is the builder for creating many Mission entities in bulk.
type MissionCreateBulk struct {
	config
	err      error
	builders []*MissionCreate
	conflict []sql.ConflictOption
}

// Save creates the Mission entities in the database.
func (_c *MissionCreateBulk) Save(ctx context.Context) ([]*Mission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissionMutation)
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
func (_c *MissionCreateBulk) SaveX(ctx context.Context) []*Mission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Mission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MissionUpsert) {
//			SetChatID(v+v).
//		}).
//		Exec(ctx)
func (_c *MissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *MissionUpsertBulk {
	_c.conflict = opts
	return &MissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MissionCreateBulk) OnConflictColumns(columns ...string) *MissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MissionUpsertBulk{
		create: _c,
	}
}

// MissionUpsertBulk is the builder for "upsert"-ing
// a bulk of Mission nodes.
type MissionUpsertBulk struct {
	create *MissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MissionUpsertBulk) UpdateNewValues() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mission.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Mission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MissionUpsertBulk) Ignore() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MissionUpsertBulk) DoNothing() *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MissionCreateBulk.OnConflict
// documentation for more info.
func (u *MissionUpsertBulk) Update(set func(*MissionUpsert)) *MissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetChatID sets the "chat_id" field.
func (u *MissionUpsertBulk) SetChatID(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateChatID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateChatID()
	})
}

// SetUserID sets the "user_id" field.
func (u *MissionUpsertBulk) SetUserID(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateUserID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUserID()
	})
}

// SetUserRequest sets the "user_request" field.
func (u *MissionUpsertBulk) SetUserRequest(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetUserRequest(v)
	})
}

// UpdateUserRequest sets the "user_request" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateUserRequest() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUserRequest()
	})
}

// SetStatus sets the "status" field.
func (u *MissionUpsertBulk) SetStatus(v mission.Status) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateStatus() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorInfo sets the "error_info" field.
func (u *MissionUpsertBulk) SetErrorInfo(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetErrorInfo(v)
	})
}

// UpdateErrorInfo sets the "error_info" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateErrorInfo() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateErrorInfo()
	})
}

// ClearErrorInfo clears the value of the "error_info" field.
func (u *MissionUpsertBulk) ClearErrorInfo() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearErrorInfo()
	})
}

// SetContextData sets the "context_data" field.
func (u *MissionUpsertBulk) SetContextData(v *models.MissionContext) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetContextData(v)
	})
}

// UpdateContextData sets the "context_data" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateContextData() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateContextData()
	})
}

// SetCurrentReportVersion sets the "current_report_version" field.
func (u *MissionUpsertBulk) SetCurrentReportVersion(v int) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetCurrentReportVersion(v)
	})
}

// AddCurrentReportVersion adds v to the "current_report_version" field.
func (u *MissionUpsertBulk) AddCurrentReportVersion(v int) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.AddCurrentReportVersion(v)
	})
}

// UpdateCurrentReportVersion sets the "current_report_version" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateCurrentReportVersion() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCurrentReportVersion()
	})
}

// ClearCurrentReportVersion clears the value of the "current_report_version" field.
func (u *MissionUpsertBulk) ClearCurrentReportVersion() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearCurrentReportVersion()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *MissionUpsertBulk) SetCreatedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateCreatedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MissionUpsertBulk) SetUpdatedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateUpdatedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *MissionUpsertBulk) SetStartedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateStartedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *MissionUpsertBulk) ClearStartedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *MissionUpsertBulk) SetCompletedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateCompletedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *MissionUpsertBulk) ClearCompletedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *MissionUpsertBulk) SetPodID(v string) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdatePodID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *MissionUpsertBulk) ClearPodID() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *MissionUpsertBulk) SetLastInteractionAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateLastInteractionAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *MissionUpsertBulk) ClearLastInteractionAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MissionUpsertBulk) SetDeletedAt(v time.Time) *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MissionUpsertBulk) UpdateDeletedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MissionUpsertBulk) ClearDeletedAt() *MissionUpsertBulk {
	return u.Update(func(s *MissionUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *MissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
