// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-research/maestro/ent/event"
	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
	"github.com/maestro-research/maestro/ent/predicate"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent           = "Event"
	TypeMission         = "Mission"
	TypeMissionLogEntry = "MissionLogEntry"
	TypeReportVersion   = "ReportVersion"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	mission        *string
	clearedmission bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMissionID sets the "mission_id" field.
func (m *EventMutation) SetMissionID(s string) {
	m.mission = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *EventMutation) MissionID() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *EventMutation) ResetMissionID() {
	m.mission = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMission clears the "mission" edge to the Mission entity.
func (m *EventMutation) ClearMission() {
	m.clearedmission = true
	m.clearedFields[event.FieldMissionID] = struct{}{}
}

// MissionCleared reports if the "mission" edge to the Mission entity was cleared.
func (m *EventMutation) MissionCleared() bool {
	return m.clearedmission
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *EventMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.mission != nil {
		fields = append(fields, event.FieldMissionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldMissionID:
		return m.MissionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldMissionID:
		return m.OldMissionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldMissionID:
		m.ResetMissionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mission != nil {
		edges = append(edges, event.EdgeMission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmission {
		edges = append(edges, event.EdgeMission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeMission:
		return m.clearedmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeMission:
		m.ClearMission()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeMission:
		m.ResetMission()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// MissionMutation represents an operation that mutates the Mission nodes in the graph.
type MissionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	chat_id                   *string
	user_id                   *string
	user_request              *string
	status                    *mission.Status
	error_info                *string
	context_data              **models.MissionContext
	current_report_version    *int
	addcurrent_report_version *int
	created_at                *time.Time
	updated_at                *time.Time
	started_at                *time.Time
	completed_at              *time.Time
	pod_id                    *string
	last_interaction_at       *time.Time
	deleted_at                *time.Time
	clearedFields             map[string]struct{}
	log_entries               map[string]struct{}
	removedlog_entries        map[string]struct{}
	clearedlog_entries        bool
	report_versions           map[string]struct{}
	removedreport_versions    map[string]struct{}
	clearedreport_versions    bool
	events                    map[int]struct{}
	removedevents             map[int]struct{}
	clearedevents             bool
	done                      bool
	oldValue                  func(context.Context) (*Mission, error)
	predicates                []predicate.Mission
}

var _ ent.Mutation = (*MissionMutation)(nil)

// missionOption allows management of the mutation configuration using functional options.
type missionOption func(*MissionMutation)

// newMissionMutation creates new mutation for the Mission entity.
func newMissionMutation(c config, op Op, opts ...missionOption) *MissionMutation {
	m := &MissionMutation{
		config:        c,
		op:            op,
		typ:           TypeMission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMissionID sets the ID field of the mutation.
func withMissionID(id string) missionOption {
	return func(m *MissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Mission
		)
		m.oldValue = func(ctx context.Context) (*Mission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Mission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMission sets the old Mission of the mutation.
func withMission(node *Mission) missionOption {
	return func(m *MissionMutation) {
		m.oldValue = func(context.Context) (*Mission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Mission entities.
func (m *MissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Mission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *MissionMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *MissionMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *MissionMutation) ResetChatID() {
	m.chat_id = nil
}

// SetUserID sets the "user_id" field.
func (m *MissionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MissionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MissionMutation) ResetUserID() {
	m.user_id = nil
}

// SetUserRequest sets the "user_request" field.
func (m *MissionMutation) SetUserRequest(s string) {
	m.user_request = &s
}

// UserRequest returns the value of the "user_request" field in the mutation.
func (m *MissionMutation) UserRequest() (r string, exists bool) {
	v := m.user_request
	if v == nil {
		return
	}
	return *v, true
}

// OldUserRequest returns the old "user_request" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldUserRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserRequest: %w", err)
	}
	return oldValue.UserRequest, nil
}

// ResetUserRequest resets all changes to the "user_request" field.
func (m *MissionMutation) ResetUserRequest() {
	m.user_request = nil
}

// SetStatus sets the "status" field.
func (m *MissionMutation) SetStatus(value mission.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MissionMutation) Status() (r mission.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStatus(ctx context.Context) (v mission.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MissionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorInfo sets the "error_info" field.
func (m *MissionMutation) SetErrorInfo(s string) {
	m.error_info = &s
}

// ErrorInfo returns the value of the "error_info" field in the mutation.
func (m *MissionMutation) ErrorInfo() (r string, exists bool) {
	v := m.error_info
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorInfo returns the old "error_info" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldErrorInfo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorInfo: %w", err)
	}
	return oldValue.ErrorInfo, nil
}

// ClearErrorInfo clears the value of the "error_info" field.
func (m *MissionMutation) ClearErrorInfo() {
	m.error_info = nil
	m.clearedFields[mission.FieldErrorInfo] = struct{}{}
}

// ErrorInfoCleared returns if the "error_info" field was cleared in this mutation.
func (m *MissionMutation) ErrorInfoCleared() bool {
	_, ok := m.clearedFields[mission.FieldErrorInfo]
	return ok
}

// ResetErrorInfo resets all changes to the "error_info" field.
func (m *MissionMutation) ResetErrorInfo() {
	m.error_info = nil
	delete(m.clearedFields, mission.FieldErrorInfo)
}

// SetContextData sets the "context_data" field.
func (m *MissionMutation) SetContextData(mc *models.MissionContext) {
	m.context_data = &mc
}

// ContextData returns the value of the "context_data" field in the mutation.
func (m *MissionMutation) ContextData() (r *models.MissionContext, exists bool) {
	v := m.context_data
	if v == nil {
		return
	}
	return *v, true
}

// OldContextData returns the old "context_data" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldContextData(ctx context.Context) (v *models.MissionContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextData: %w", err)
	}
	return oldValue.ContextData, nil
}

// ResetContextData resets all changes to the "context_data" field.
func (m *MissionMutation) ResetContextData() {
	m.context_data = nil
}

// SetCurrentReportVersion sets the "current_report_version" field.
func (m *MissionMutation) SetCurrentReportVersion(i int) {
	m.current_report_version = &i
	m.addcurrent_report_version = nil
}

// CurrentReportVersion returns the value of the "current_report_version" field in the mutation.
func (m *MissionMutation) CurrentReportVersion() (r int, exists bool) {
	v := m.current_report_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentReportVersion returns the old "current_report_version" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCurrentReportVersion(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentReportVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentReportVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentReportVersion: %w", err)
	}
	return oldValue.CurrentReportVersion, nil
}

// AddCurrentReportVersion adds i to the "current_report_version" field.
func (m *MissionMutation) AddCurrentReportVersion(i int) {
	if m.addcurrent_report_version != nil {
		*m.addcurrent_report_version += i
	} else {
		m.addcurrent_report_version = &i
	}
}

// AddedCurrentReportVersion returns the value that was added to the "current_report_version" field in this mutation.
func (m *MissionMutation) AddedCurrentReportVersion() (r int, exists bool) {
	v := m.addcurrent_report_version
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentReportVersion clears the value of the "current_report_version" field.
func (m *MissionMutation) ClearCurrentReportVersion() {
	m.current_report_version = nil
	m.addcurrent_report_version = nil
	m.clearedFields[mission.FieldCurrentReportVersion] = struct{}{}
}

// CurrentReportVersionCleared returns if the "current_report_version" field was cleared in this mutation.
func (m *MissionMutation) CurrentReportVersionCleared() bool {
	_, ok := m.clearedFields[mission.FieldCurrentReportVersion]
	return ok
}

// ResetCurrentReportVersion resets all changes to the "current_report_version" field.
func (m *MissionMutation) ResetCurrentReportVersion() {
	m.current_report_version = nil
	m.addcurrent_report_version = nil
	delete(m.clearedFields, mission.FieldCurrentReportVersion)
}

// SetCreatedAt sets the "created_at" field.
func (m *MissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *MissionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MissionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *MissionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[mission.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *MissionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MissionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, mission.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *MissionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MissionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MissionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[mission.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MissionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MissionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, mission.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *MissionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *MissionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *MissionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[mission.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *MissionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[mission.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *MissionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, mission.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *MissionMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *MissionMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *MissionMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[mission.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *MissionMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *MissionMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, mission.FieldLastInteractionAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MissionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MissionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Mission entity.
// If the Mission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MissionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[mission.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MissionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[mission.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MissionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, mission.FieldDeletedAt)
}

// AddLogEntryIDs adds the "log_entries" edge to the MissionLogEntry entity by ids.
func (m *MissionMutation) AddLogEntryIDs(ids ...string) {
	if m.log_entries == nil {
		m.log_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.log_entries[ids[i]] = struct{}{}
	}
}

// ClearLogEntries clears the "log_entries" edge to the MissionLogEntry entity.
func (m *MissionMutation) ClearLogEntries() {
	m.clearedlog_entries = true
}

// LogEntriesCleared reports if the "log_entries" edge to the MissionLogEntry entity was cleared.
func (m *MissionMutation) LogEntriesCleared() bool {
	return m.clearedlog_entries
}

// RemoveLogEntryIDs removes the "log_entries" edge to the MissionLogEntry entity by IDs.
func (m *MissionMutation) RemoveLogEntryIDs(ids ...string) {
	if m.removedlog_entries == nil {
		m.removedlog_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.log_entries, ids[i])
		m.removedlog_entries[ids[i]] = struct{}{}
	}
}

// RemovedLogEntries returns the removed IDs of the "log_entries" edge to the MissionLogEntry entity.
func (m *MissionMutation) RemovedLogEntriesIDs() (ids []string) {
	for id := range m.removedlog_entries {
		ids = append(ids, id)
	}
	return
}

// LogEntriesIDs returns the "log_entries" edge IDs in the mutation.
func (m *MissionMutation) LogEntriesIDs() (ids []string) {
	for id := range m.log_entries {
		ids = append(ids, id)
	}
	return
}

// ResetLogEntries resets all changes to the "log_entries" edge.
func (m *MissionMutation) ResetLogEntries() {
	m.log_entries = nil
	m.clearedlog_entries = false
	m.removedlog_entries = nil
}

// AddReportVersionIDs adds the "report_versions" edge to the ReportVersion entity by ids.
func (m *MissionMutation) AddReportVersionIDs(ids ...string) {
	if m.report_versions == nil {
		m.report_versions = make(map[string]struct{})
	}
	for i := range ids {
		m.report_versions[ids[i]] = struct{}{}
	}
}

// ClearReportVersions clears the "report_versions" edge to the ReportVersion entity.
func (m *MissionMutation) ClearReportVersions() {
	m.clearedreport_versions = true
}

// ReportVersionsCleared reports if the "report_versions" edge to the ReportVersion entity was cleared.
func (m *MissionMutation) ReportVersionsCleared() bool {
	return m.clearedreport_versions
}

// RemoveReportVersionIDs removes the "report_versions" edge to the ReportVersion entity by IDs.
func (m *MissionMutation) RemoveReportVersionIDs(ids ...string) {
	if m.removedreport_versions == nil {
		m.removedreport_versions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.report_versions, ids[i])
		m.removedreport_versions[ids[i]] = struct{}{}
	}
}

// RemovedReportVersions returns the removed IDs of the "report_versions" edge to the ReportVersion entity.
func (m *MissionMutation) RemovedReportVersionsIDs() (ids []string) {
	for id := range m.removedreport_versions {
		ids = append(ids, id)
	}
	return
}

// ReportVersionsIDs returns the "report_versions" edge IDs in the mutation.
func (m *MissionMutation) ReportVersionsIDs() (ids []string) {
	for id := range m.report_versions {
		ids = append(ids, id)
	}
	return
}

// ResetReportVersions resets all changes to the "report_versions" edge.
func (m *MissionMutation) ResetReportVersions() {
	m.report_versions = nil
	m.clearedreport_versions = false
	m.removedreport_versions = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *MissionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *MissionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *MissionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *MissionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *MissionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *MissionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *MissionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the MissionMutation builder.
func (m *MissionMutation) Where(ps ...predicate.Mission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Mission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Mission).
func (m *MissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MissionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.chat_id != nil {
		fields = append(fields, mission.FieldChatID)
	}
	if m.user_id != nil {
		fields = append(fields, mission.FieldUserID)
	}
	if m.user_request != nil {
		fields = append(fields, mission.FieldUserRequest)
	}
	if m.status != nil {
		fields = append(fields, mission.FieldStatus)
	}
	if m.error_info != nil {
		fields = append(fields, mission.FieldErrorInfo)
	}
	if m.context_data != nil {
		fields = append(fields, mission.FieldContextData)
	}
	if m.current_report_version != nil {
		fields = append(fields, mission.FieldCurrentReportVersion)
	}
	if m.created_at != nil {
		fields = append(fields, mission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mission.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, mission.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, mission.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, mission.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, mission.FieldLastInteractionAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, mission.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldChatID:
		return m.ChatID()
	case mission.FieldUserID:
		return m.UserID()
	case mission.FieldUserRequest:
		return m.UserRequest()
	case mission.FieldStatus:
		return m.Status()
	case mission.FieldErrorInfo:
		return m.ErrorInfo()
	case mission.FieldContextData:
		return m.ContextData()
	case mission.FieldCurrentReportVersion:
		return m.CurrentReportVersion()
	case mission.FieldCreatedAt:
		return m.CreatedAt()
	case mission.FieldUpdatedAt:
		return m.UpdatedAt()
	case mission.FieldStartedAt:
		return m.StartedAt()
	case mission.FieldCompletedAt:
		return m.CompletedAt()
	case mission.FieldPodID:
		return m.PodID()
	case mission.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case mission.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mission.FieldChatID:
		return m.OldChatID(ctx)
	case mission.FieldUserID:
		return m.OldUserID(ctx)
	case mission.FieldUserRequest:
		return m.OldUserRequest(ctx)
	case mission.FieldStatus:
		return m.OldStatus(ctx)
	case mission.FieldErrorInfo:
		return m.OldErrorInfo(ctx)
	case mission.FieldContextData:
		return m.OldContextData(ctx)
	case mission.FieldCurrentReportVersion:
		return m.OldCurrentReportVersion(ctx)
	case mission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case mission.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case mission.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case mission.FieldPodID:
		return m.OldPodID(ctx)
	case mission.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case mission.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Mission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mission.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case mission.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case mission.FieldUserRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserRequest(v)
		return nil
	case mission.FieldStatus:
		v, ok := value.(mission.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mission.FieldErrorInfo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorInfo(v)
		return nil
	case mission.FieldContextData:
		v, ok := value.(*models.MissionContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextData(v)
		return nil
	case mission.FieldCurrentReportVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentReportVersion(v)
		return nil
	case mission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case mission.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case mission.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case mission.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case mission.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case mission.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MissionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_report_version != nil {
		fields = append(fields, mission.FieldCurrentReportVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mission.FieldCurrentReportVersion:
		return m.AddedCurrentReportVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mission.FieldCurrentReportVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentReportVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Mission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mission.FieldErrorInfo) {
		fields = append(fields, mission.FieldErrorInfo)
	}
	if m.FieldCleared(mission.FieldCurrentReportVersion) {
		fields = append(fields, mission.FieldCurrentReportVersion)
	}
	if m.FieldCleared(mission.FieldStartedAt) {
		fields = append(fields, mission.FieldStartedAt)
	}
	if m.FieldCleared(mission.FieldCompletedAt) {
		fields = append(fields, mission.FieldCompletedAt)
	}
	if m.FieldCleared(mission.FieldPodID) {
		fields = append(fields, mission.FieldPodID)
	}
	if m.FieldCleared(mission.FieldLastInteractionAt) {
		fields = append(fields, mission.FieldLastInteractionAt)
	}
	if m.FieldCleared(mission.FieldDeletedAt) {
		fields = append(fields, mission.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MissionMutation) ClearField(name string) error {
	switch name {
	case mission.FieldErrorInfo:
		m.ClearErrorInfo()
		return nil
	case mission.FieldCurrentReportVersion:
		m.ClearCurrentReportVersion()
		return nil
	case mission.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case mission.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case mission.FieldPodID:
		m.ClearPodID()
		return nil
	case mission.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case mission.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Mission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MissionMutation) ResetField(name string) error {
	switch name {
	case mission.FieldChatID:
		m.ResetChatID()
		return nil
	case mission.FieldUserID:
		m.ResetUserID()
		return nil
	case mission.FieldUserRequest:
		m.ResetUserRequest()
		return nil
	case mission.FieldStatus:
		m.ResetStatus()
		return nil
	case mission.FieldErrorInfo:
		m.ResetErrorInfo()
		return nil
	case mission.FieldContextData:
		m.ResetContextData()
		return nil
	case mission.FieldCurrentReportVersion:
		m.ResetCurrentReportVersion()
		return nil
	case mission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case mission.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case mission.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case mission.FieldPodID:
		m.ResetPodID()
		return nil
	case mission.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case mission.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Mission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.log_entries != nil {
		edges = append(edges, mission.EdgeLogEntries)
	}
	if m.report_versions != nil {
		edges = append(edges, mission.EdgeReportVersions)
	}
	if m.events != nil {
		edges = append(edges, mission.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mission.EdgeLogEntries:
		ids := make([]ent.Value, 0, len(m.log_entries))
		for id := range m.log_entries {
			ids = append(ids, id)
		}
		return ids
	case mission.EdgeReportVersions:
		ids := make([]ent.Value, 0, len(m.report_versions))
		for id := range m.report_versions {
			ids = append(ids, id)
		}
		return ids
	case mission.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedlog_entries != nil {
		edges = append(edges, mission.EdgeLogEntries)
	}
	if m.removedreport_versions != nil {
		edges = append(edges, mission.EdgeReportVersions)
	}
	if m.removedevents != nil {
		edges = append(edges, mission.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MissionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mission.EdgeLogEntries:
		ids := make([]ent.Value, 0, len(m.removedlog_entries))
		for id := range m.removedlog_entries {
			ids = append(ids, id)
		}
		return ids
	case mission.EdgeReportVersions:
		ids := make([]ent.Value, 0, len(m.removedreport_versions))
		for id := range m.removedreport_versions {
			ids = append(ids, id)
		}
		return ids
	case mission.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedlog_entries {
		edges = append(edges, mission.EdgeLogEntries)
	}
	if m.clearedreport_versions {
		edges = append(edges, mission.EdgeReportVersions)
	}
	if m.clearedevents {
		edges = append(edges, mission.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MissionMutation) EdgeCleared(name string) bool {
	switch name {
	case mission.EdgeLogEntries:
		return m.clearedlog_entries
	case mission.EdgeReportVersions:
		return m.clearedreport_versions
	case mission.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MissionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Mission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MissionMutation) ResetEdge(name string) error {
	switch name {
	case mission.EdgeLogEntries:
		m.ResetLogEntries()
		return nil
	case mission.EdgeReportVersions:
		m.ResetReportVersions()
		return nil
	case mission.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Mission edge %s", name)
}

// MissionLogEntryMutation represents an operation that mutates the MissionLogEntry nodes in the graph.
type MissionLogEntryMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	sequence                *int
	addsequence             *int
	timestamp               *time.Time
	agent_name              *string
	action                  *string
	input_summary           *string
	output_summary          *string
	status                  *missionlogentry.Status
	error_message           *string
	full_input              *string
	full_output             *string
	model_details           *map[string]interface{}
	tool_calls              *[]map[string]interface{}
	appendtool_calls        []map[string]interface{}
	file_interactions       *[]map[string]interface{}
	appendfile_interactions []map[string]interface{}
	clearedFields           map[string]struct{}
	mission                 *string
	clearedmission          bool
	done                    bool
	oldValue                func(context.Context) (*MissionLogEntry, error)
	predicates              []predicate.MissionLogEntry
}

var _ ent.Mutation = (*MissionLogEntryMutation)(nil)

// missionlogentryOption allows management of the mutation configuration using functional options.
type missionlogentryOption func(*MissionLogEntryMutation)

// newMissionLogEntryMutation creates new mutation for the MissionLogEntry entity.
func newMissionLogEntryMutation(c config, op Op, opts ...missionlogentryOption) *MissionLogEntryMutation {
	m := &MissionLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeMissionLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMissionLogEntryID sets the ID field of the mutation.
func withMissionLogEntryID(id string) missionlogentryOption {
	return func(m *MissionLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *MissionLogEntry
		)
		m.oldValue = func(ctx context.Context) (*MissionLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MissionLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMissionLogEntry sets the old MissionLogEntry of the mutation.
func withMissionLogEntry(node *MissionLogEntry) missionlogentryOption {
	return func(m *MissionLogEntryMutation) {
		m.oldValue = func(context.Context) (*MissionLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MissionLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MissionLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MissionLogEntry entities.
func (m *MissionLogEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MissionLogEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MissionLogEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MissionLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMissionID sets the "mission_id" field.
func (m *MissionLogEntryMutation) SetMissionID(s string) {
	m.mission = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *MissionLogEntryMutation) MissionID() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldMissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *MissionLogEntryMutation) ResetMissionID() {
	m.mission = nil
}

// SetSequence sets the "sequence" field.
func (m *MissionLogEntryMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *MissionLogEntryMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *MissionLogEntryMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *MissionLogEntryMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *MissionLogEntryMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *MissionLogEntryMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MissionLogEntryMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MissionLogEntryMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAgentName sets the "agent_name" field.
func (m *MissionLogEntryMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *MissionLogEntryMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *MissionLogEntryMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetAction sets the "action" field.
func (m *MissionLogEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *MissionLogEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *MissionLogEntryMutation) ResetAction() {
	m.action = nil
}

// SetInputSummary sets the "input_summary" field.
func (m *MissionLogEntryMutation) SetInputSummary(s string) {
	m.input_summary = &s
}

// InputSummary returns the value of the "input_summary" field in the mutation.
func (m *MissionLogEntryMutation) InputSummary() (r string, exists bool) {
	v := m.input_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSummary returns the old "input_summary" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldInputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSummary: %w", err)
	}
	return oldValue.InputSummary, nil
}

// ClearInputSummary clears the value of the "input_summary" field.
func (m *MissionLogEntryMutation) ClearInputSummary() {
	m.input_summary = nil
	m.clearedFields[missionlogentry.FieldInputSummary] = struct{}{}
}

// InputSummaryCleared returns if the "input_summary" field was cleared in this mutation.
func (m *MissionLogEntryMutation) InputSummaryCleared() bool {
	_, ok := m.clearedFields[missionlogentry.FieldInputSummary]
	return ok
}

// ResetInputSummary resets all changes to the "input_summary" field.
func (m *MissionLogEntryMutation) ResetInputSummary() {
	m.input_summary = nil
	delete(m.clearedFields, missionlogentry.FieldInputSummary)
}

// SetOutputSummary sets the "output_summary" field.
func (m *MissionLogEntryMutation) SetOutputSummary(s string) {
	m.output_summary = &s
}

// OutputSummary returns the value of the "output_summary" field in the mutation.
func (m *MissionLogEntryMutation) OutputSummary() (r string, exists bool) {
	v := m.output_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSummary returns the old "output_summary" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldOutputSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSummary: %w", err)
	}
	return oldValue.OutputSummary, nil
}

// ClearOutputSummary clears the value of the "output_summary" field.
func (m *MissionLogEntryMutation) ClearOutputSummary() {
	m.output_summary = nil
	m.clearedFields[missionlogentry.FieldOutputSummary] = struct{}{}
}

// OutputSummaryCleared returns if the "output_summary" field was cleared in this mutation.
func (m *MissionLogEntryMutation) OutputSummaryCleared() bool {
	_, ok := m.clearedFields[missionlogentry.FieldOutputSummary]
	return ok
}

// ResetOutputSummary resets all changes to the "output_summary" field.
func (m *MissionLogEntryMutation) ResetOutputSummary() {
	m.output_summary = nil
	delete(m.clearedFields, missionlogentry.FieldOutputSummary)
}

// SetStatus sets the "status" field.
func (m *MissionLogEntryMutation) SetStatus(value missionlogentry.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MissionLogEntryMutation) Status() (r missionlogentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldStatus(ctx context.Context) (v missionlogentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MissionLogEntryMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *MissionLogEntryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MissionLogEntryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MissionLogEntryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[missionlogentry.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MissionLogEntryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[missionlogentry.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MissionLogEntryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, missionlogentry.FieldErrorMessage)
}

// SetFullInput sets the "full_input" field.
func (m *MissionLogEntryMutation) SetFullInput(s string) {
	m.full_input = &s
}

// FullInput returns the value of the "full_input" field in the mutation.
func (m *MissionLogEntryMutation) FullInput() (r string, exists bool) {
	v := m.full_input
	if v == nil {
		return
	}
	return *v, true
}

// OldFullInput returns the old "full_input" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldFullInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullInput: %w", err)
	}
	return oldValue.FullInput, nil
}

// ClearFullInput clears the value of the "full_input" field.
func (m *MissionLogEntryMutation) ClearFullInput() {
	m.full_input = nil
	m.clearedFields[missionlogentry.FieldFullInput] = struct{}{}
}

// FullInputCleared returns if the "full_input" field was cleared in this mutation.
func (m *MissionLogEntryMutation) FullInputCleared() bool {
	_, ok := m.clearedFields[missionlogentry.FieldFullInput]
	return ok
}

// ResetFullInput resets all changes to the "full_input" field.
func (m *MissionLogEntryMutation) ResetFullInput() {
	m.full_input = nil
	delete(m.clearedFields, missionlogentry.FieldFullInput)
}

// SetFullOutput sets the "full_output" field.
func (m *MissionLogEntryMutation) SetFullOutput(s string) {
	m.full_output = &s
}

// FullOutput returns the value of the "full_output" field in the mutation.
func (m *MissionLogEntryMutation) FullOutput() (r string, exists bool) {
	v := m.full_output
	if v == nil {
		return
	}
	return *v, true
}

// OldFullOutput returns the old "full_output" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldFullOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullOutput: %w", err)
	}
	return oldValue.FullOutput, nil
}

// ClearFullOutput clears the value of the "full_output" field.
func (m *MissionLogEntryMutation) ClearFullOutput() {
	m.full_output = nil
	m.clearedFields[missionlogentry.FieldFullOutput] = struct{}{}
}

// FullOutputCleared returns if the "full_output" field was cleared in this mutation.
func (m *MissionLogEntryMutation) FullOutputCleared() bool {
	_, ok := m.clearedFields[missionlogentry.FieldFullOutput]
	return ok
}

// ResetFullOutput resets all changes to the "full_output" field.
func (m *MissionLogEntryMutation) ResetFullOutput() {
	m.full_output = nil
	delete(m.clearedFields, missionlogentry.FieldFullOutput)
}

// SetModelDetails sets the "model_details" field.
func (m *MissionLogEntryMutation) SetModelDetails(value map[string]interface{}) {
	m.model_details = &value
}

// ModelDetails returns the value of the "model_details" field in the mutation.
func (m *MissionLogEntryMutation) ModelDetails() (r map[string]interface{}, exists bool) {
	v := m.model_details
	if v == nil {
		return
	}
	return *v, true
}

// OldModelDetails returns the old "model_details" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldModelDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelDetails: %w", err)
	}
	return oldValue.ModelDetails, nil
}

// ClearModelDetails clears the value of the "model_details" field.
func (m *MissionLogEntryMutation) ClearModelDetails() {
	m.model_details = nil
	m.clearedFields[missionlogentry.FieldModelDetails] = struct{}{}
}

// ModelDetailsCleared returns if the "model_details" field was cleared in this mutation.
func (m *MissionLogEntryMutation) ModelDetailsCleared() bool {
	_, ok := m.clearedFields[missionlogentry.FieldModelDetails]
	return ok
}

// ResetModelDetails resets all changes to the "model_details" field.
func (m *MissionLogEntryMutation) ResetModelDetails() {
	m.model_details = nil
	delete(m.clearedFields, missionlogentry.FieldModelDetails)
}

// SetToolCalls sets the "tool_calls" field.
func (m *MissionLogEntryMutation) SetToolCalls(value []map[string]interface{}) {
	m.tool_calls = &value
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *MissionLogEntryMutation) ToolCalls() (r []map[string]interface{}, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldToolCalls(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds value to the "tool_calls" field.
func (m *MissionLogEntryMutation) AppendToolCalls(value []map[string]interface{}) {
	m.appendtool_calls = append(m.appendtool_calls, value...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *MissionLogEntryMutation) AppendedToolCalls() ([]map[string]interface{}, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *MissionLogEntryMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[missionlogentry.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *MissionLogEntryMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[missionlogentry.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *MissionLogEntryMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, missionlogentry.FieldToolCalls)
}

// SetFileInteractions sets the "file_interactions" field.
func (m *MissionLogEntryMutation) SetFileInteractions(value []map[string]interface{}) {
	m.file_interactions = &value
	m.appendfile_interactions = nil
}

// FileInteractions returns the value of the "file_interactions" field in the mutation.
func (m *MissionLogEntryMutation) FileInteractions() (r []map[string]interface{}, exists bool) {
	v := m.file_interactions
	if v == nil {
		return
	}
	return *v, true
}

// OldFileInteractions returns the old "file_interactions" field's value of the MissionLogEntry entity.
// If the MissionLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MissionLogEntryMutation) OldFileInteractions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileInteractions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileInteractions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileInteractions: %w", err)
	}
	return oldValue.FileInteractions, nil
}

// AppendFileInteractions adds value to the "file_interactions" field.
func (m *MissionLogEntryMutation) AppendFileInteractions(value []map[string]interface{}) {
	m.appendfile_interactions = append(m.appendfile_interactions, value...)
}

// AppendedFileInteractions returns the list of values that were appended to the "file_interactions" field in this mutation.
func (m *MissionLogEntryMutation) AppendedFileInteractions() ([]map[string]interface{}, bool) {
	if len(m.appendfile_interactions) == 0 {
		return nil, false
	}
	return m.appendfile_interactions, true
}

// ClearFileInteractions clears the value of the "file_interactions" field.
func (m *MissionLogEntryMutation) ClearFileInteractions() {
	m.file_interactions = nil
	m.appendfile_interactions = nil
	m.clearedFields[missionlogentry.FieldFileInteractions] = struct{}{}
}

// FileInteractionsCleared returns if the "file_interactions" field was cleared in this mutation.
func (m *MissionLogEntryMutation) FileInteractionsCleared() bool {
	_, ok := m.clearedFields[missionlogentry.FieldFileInteractions]
	return ok
}

// ResetFileInteractions resets all changes to the "file_interactions" field.
func (m *MissionLogEntryMutation) ResetFileInteractions() {
	m.file_interactions = nil
	m.appendfile_interactions = nil
	delete(m.clearedFields, missionlogentry.FieldFileInteractions)
}

// ClearMission clears the "mission" edge to the Mission entity.
func (m *MissionLogEntryMutation) ClearMission() {
	m.clearedmission = true
	m.clearedFields[missionlogentry.FieldMissionID] = struct{}{}
}

// MissionCleared reports if the "mission" edge to the Mission entity was cleared.
func (m *MissionLogEntryMutation) MissionCleared() bool {
	return m.clearedmission
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *MissionLogEntryMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *MissionLogEntryMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// Where appends a list predicates to the MissionLogEntryMutation builder.
func (m *MissionLogEntryMutation) Where(ps ...predicate.MissionLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MissionLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MissionLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MissionLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MissionLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MissionLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MissionLogEntry).
func (m *MissionLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MissionLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.mission != nil {
		fields = append(fields, missionlogentry.FieldMissionID)
	}
	if m.sequence != nil {
		fields = append(fields, missionlogentry.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, missionlogentry.FieldTimestamp)
	}
	if m.agent_name != nil {
		fields = append(fields, missionlogentry.FieldAgentName)
	}
	if m.action != nil {
		fields = append(fields, missionlogentry.FieldAction)
	}
	if m.input_summary != nil {
		fields = append(fields, missionlogentry.FieldInputSummary)
	}
	if m.output_summary != nil {
		fields = append(fields, missionlogentry.FieldOutputSummary)
	}
	if m.status != nil {
		fields = append(fields, missionlogentry.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, missionlogentry.FieldErrorMessage)
	}
	if m.full_input != nil {
		fields = append(fields, missionlogentry.FieldFullInput)
	}
	if m.full_output != nil {
		fields = append(fields, missionlogentry.FieldFullOutput)
	}
	if m.model_details != nil {
		fields = append(fields, missionlogentry.FieldModelDetails)
	}
	if m.tool_calls != nil {
		fields = append(fields, missionlogentry.FieldToolCalls)
	}
	if m.file_interactions != nil {
		fields = append(fields, missionlogentry.FieldFileInteractions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MissionLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case missionlogentry.FieldMissionID:
		return m.MissionID()
	case missionlogentry.FieldSequence:
		return m.Sequence()
	case missionlogentry.FieldTimestamp:
		return m.Timestamp()
	case missionlogentry.FieldAgentName:
		return m.AgentName()
	case missionlogentry.FieldAction:
		return m.Action()
	case missionlogentry.FieldInputSummary:
		return m.InputSummary()
	case missionlogentry.FieldOutputSummary:
		return m.OutputSummary()
	case missionlogentry.FieldStatus:
		return m.Status()
	case missionlogentry.FieldErrorMessage:
		return m.ErrorMessage()
	case missionlogentry.FieldFullInput:
		return m.FullInput()
	case missionlogentry.FieldFullOutput:
		return m.FullOutput()
	case missionlogentry.FieldModelDetails:
		return m.ModelDetails()
	case missionlogentry.FieldToolCalls:
		return m.ToolCalls()
	case missionlogentry.FieldFileInteractions:
		return m.FileInteractions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MissionLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case missionlogentry.FieldMissionID:
		return m.OldMissionID(ctx)
	case missionlogentry.FieldSequence:
		return m.OldSequence(ctx)
	case missionlogentry.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case missionlogentry.FieldAgentName:
		return m.OldAgentName(ctx)
	case missionlogentry.FieldAction:
		return m.OldAction(ctx)
	case missionlogentry.FieldInputSummary:
		return m.OldInputSummary(ctx)
	case missionlogentry.FieldOutputSummary:
		return m.OldOutputSummary(ctx)
	case missionlogentry.FieldStatus:
		return m.OldStatus(ctx)
	case missionlogentry.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case missionlogentry.FieldFullInput:
		return m.OldFullInput(ctx)
	case missionlogentry.FieldFullOutput:
		return m.OldFullOutput(ctx)
	case missionlogentry.FieldModelDetails:
		return m.OldModelDetails(ctx)
	case missionlogentry.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case missionlogentry.FieldFileInteractions:
		return m.OldFileInteractions(ctx)
	}
	return nil, fmt.Errorf("unknown MissionLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case missionlogentry.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case missionlogentry.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case missionlogentry.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case missionlogentry.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case missionlogentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case missionlogentry.FieldInputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSummary(v)
		return nil
	case missionlogentry.FieldOutputSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSummary(v)
		return nil
	case missionlogentry.FieldStatus:
		v, ok := value.(missionlogentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case missionlogentry.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case missionlogentry.FieldFullInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullInput(v)
		return nil
	case missionlogentry.FieldFullOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullOutput(v)
		return nil
	case missionlogentry.FieldModelDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelDetails(v)
		return nil
	case missionlogentry.FieldToolCalls:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case missionlogentry.FieldFileInteractions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileInteractions(v)
		return nil
	}
	return fmt.Errorf("unknown MissionLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MissionLogEntryMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, missionlogentry.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MissionLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case missionlogentry.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MissionLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case missionlogentry.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown MissionLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MissionLogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(missionlogentry.FieldInputSummary) {
		fields = append(fields, missionlogentry.FieldInputSummary)
	}
	if m.FieldCleared(missionlogentry.FieldOutputSummary) {
		fields = append(fields, missionlogentry.FieldOutputSummary)
	}
	if m.FieldCleared(missionlogentry.FieldErrorMessage) {
		fields = append(fields, missionlogentry.FieldErrorMessage)
	}
	if m.FieldCleared(missionlogentry.FieldFullInput) {
		fields = append(fields, missionlogentry.FieldFullInput)
	}
	if m.FieldCleared(missionlogentry.FieldFullOutput) {
		fields = append(fields, missionlogentry.FieldFullOutput)
	}
	if m.FieldCleared(missionlogentry.FieldModelDetails) {
		fields = append(fields, missionlogentry.FieldModelDetails)
	}
	if m.FieldCleared(missionlogentry.FieldToolCalls) {
		fields = append(fields, missionlogentry.FieldToolCalls)
	}
	if m.FieldCleared(missionlogentry.FieldFileInteractions) {
		fields = append(fields, missionlogentry.FieldFileInteractions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MissionLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MissionLogEntryMutation) ClearField(name string) error {
	switch name {
	case missionlogentry.FieldInputSummary:
		m.ClearInputSummary()
		return nil
	case missionlogentry.FieldOutputSummary:
		m.ClearOutputSummary()
		return nil
	case missionlogentry.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case missionlogentry.FieldFullInput:
		m.ClearFullInput()
		return nil
	case missionlogentry.FieldFullOutput:
		m.ClearFullOutput()
		return nil
	case missionlogentry.FieldModelDetails:
		m.ClearModelDetails()
		return nil
	case missionlogentry.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case missionlogentry.FieldFileInteractions:
		m.ClearFileInteractions()
		return nil
	}
	return fmt.Errorf("unknown MissionLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MissionLogEntryMutation) ResetField(name string) error {
	switch name {
	case missionlogentry.FieldMissionID:
		m.ResetMissionID()
		return nil
	case missionlogentry.FieldSequence:
		m.ResetSequence()
		return nil
	case missionlogentry.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case missionlogentry.FieldAgentName:
		m.ResetAgentName()
		return nil
	case missionlogentry.FieldAction:
		m.ResetAction()
		return nil
	case missionlogentry.FieldInputSummary:
		m.ResetInputSummary()
		return nil
	case missionlogentry.FieldOutputSummary:
		m.ResetOutputSummary()
		return nil
	case missionlogentry.FieldStatus:
		m.ResetStatus()
		return nil
	case missionlogentry.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case missionlogentry.FieldFullInput:
		m.ResetFullInput()
		return nil
	case missionlogentry.FieldFullOutput:
		m.ResetFullOutput()
		return nil
	case missionlogentry.FieldModelDetails:
		m.ResetModelDetails()
		return nil
	case missionlogentry.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case missionlogentry.FieldFileInteractions:
		m.ResetFileInteractions()
		return nil
	}
	return fmt.Errorf("unknown MissionLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MissionLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mission != nil {
		edges = append(edges, missionlogentry.EdgeMission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MissionLogEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case missionlogentry.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MissionLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MissionLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MissionLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmission {
		edges = append(edges, missionlogentry.EdgeMission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MissionLogEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case missionlogentry.EdgeMission:
		return m.clearedmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MissionLogEntryMutation) ClearEdge(name string) error {
	switch name {
	case missionlogentry.EdgeMission:
		m.ClearMission()
		return nil
	}
	return fmt.Errorf("unknown MissionLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MissionLogEntryMutation) ResetEdge(name string) error {
	switch name {
	case missionlogentry.EdgeMission:
		m.ResetMission()
		return nil
	}
	return fmt.Errorf("unknown MissionLogEntry edge %s", name)
}

// ReportVersionMutation represents an operation that mutates the ReportVersion nodes in the graph.
type ReportVersionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	version        *int
	addversion     *int
	title          *string
	content        *string
	revision_notes *string
	is_current     *bool
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	mission        *string
	clearedmission bool
	done           bool
	oldValue       func(context.Context) (*ReportVersion, error)
	predicates     []predicate.ReportVersion
}

var _ ent.Mutation = (*ReportVersionMutation)(nil)

// reportversionOption allows management of the mutation configuration using functional options.
type reportversionOption func(*ReportVersionMutation)

// newReportVersionMutation creates new mutation for the ReportVersion entity.
func newReportVersionMutation(c config, op Op, opts ...reportversionOption) *ReportVersionMutation {
	m := &ReportVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeReportVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportVersionID sets the ID field of the mutation.
func withReportVersionID(id string) reportversionOption {
	return func(m *ReportVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportVersion
		)
		m.oldValue = func(ctx context.Context) (*ReportVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportVersion sets the old ReportVersion of the mutation.
func withReportVersion(node *ReportVersion) reportversionOption {
	return func(m *ReportVersionMutation) {
		m.oldValue = func(context.Context) (*ReportVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportVersion entities.
func (m *ReportVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMissionID sets the "mission_id" field.
func (m *ReportVersionMutation) SetMissionID(s string) {
	m.mission = &s
}

// MissionID returns the value of the "mission_id" field in the mutation.
func (m *ReportVersionMutation) MissionID() (r string, exists bool) {
	v := m.mission
	if v == nil {
		return
	}
	return *v, true
}

// OldMissionID returns the old "mission_id" field's value of the ReportVersion entity.
// If the ReportVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportVersionMutation) OldMissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissionID: %w", err)
	}
	return oldValue.MissionID, nil
}

// ResetMissionID resets all changes to the "mission_id" field.
func (m *ReportVersionMutation) ResetMissionID() {
	m.mission = nil
}

// SetVersion sets the "version" field.
func (m *ReportVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ReportVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ReportVersion entity.
// If the ReportVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ReportVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ReportVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ReportVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetTitle sets the "title" field.
func (m *ReportVersionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportVersionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ReportVersion entity.
// If the ReportVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportVersionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportVersionMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *ReportVersionMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ReportVersionMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ReportVersion entity.
// If the ReportVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportVersionMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ReportVersionMutation) ResetContent() {
	m.content = nil
}

// SetRevisionNotes sets the "revision_notes" field.
func (m *ReportVersionMutation) SetRevisionNotes(s string) {
	m.revision_notes = &s
}

// RevisionNotes returns the value of the "revision_notes" field in the mutation.
func (m *ReportVersionMutation) RevisionNotes() (r string, exists bool) {
	v := m.revision_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldRevisionNotes returns the old "revision_notes" field's value of the ReportVersion entity.
// If the ReportVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportVersionMutation) OldRevisionNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevisionNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevisionNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevisionNotes: %w", err)
	}
	return oldValue.RevisionNotes, nil
}

// ClearRevisionNotes clears the value of the "revision_notes" field.
func (m *ReportVersionMutation) ClearRevisionNotes() {
	m.revision_notes = nil
	m.clearedFields[reportversion.FieldRevisionNotes] = struct{}{}
}

// RevisionNotesCleared returns if the "revision_notes" field was cleared in this mutation.
func (m *ReportVersionMutation) RevisionNotesCleared() bool {
	_, ok := m.clearedFields[reportversion.FieldRevisionNotes]
	return ok
}

// ResetRevisionNotes resets all changes to the "revision_notes" field.
func (m *ReportVersionMutation) ResetRevisionNotes() {
	m.revision_notes = nil
	delete(m.clearedFields, reportversion.FieldRevisionNotes)
}

// SetIsCurrent sets the "is_current" field.
func (m *ReportVersionMutation) SetIsCurrent(b bool) {
	m.is_current = &b
}

// IsCurrent returns the value of the "is_current" field in the mutation.
func (m *ReportVersionMutation) IsCurrent() (r bool, exists bool) {
	v := m.is_current
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCurrent returns the old "is_current" field's value of the ReportVersion entity.
// If the ReportVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportVersionMutation) OldIsCurrent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCurrent: %w", err)
	}
	return oldValue.IsCurrent, nil
}

// ResetIsCurrent resets all changes to the "is_current" field.
func (m *ReportVersionMutation) ResetIsCurrent() {
	m.is_current = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReportVersion entity.
// If the ReportVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportVersionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportVersionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReportVersion entity.
// If the ReportVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportVersionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportVersionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearMission clears the "mission" edge to the Mission entity.
func (m *ReportVersionMutation) ClearMission() {
	m.clearedmission = true
	m.clearedFields[reportversion.FieldMissionID] = struct{}{}
}

// MissionCleared reports if the "mission" edge to the Mission entity was cleared.
func (m *ReportVersionMutation) MissionCleared() bool {
	return m.clearedmission
}

// MissionIDs returns the "mission" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MissionID instead. It exists only for internal usage by the builders.
func (m *ReportVersionMutation) MissionIDs() (ids []string) {
	if id := m.mission; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMission resets all changes to the "mission" edge.
func (m *ReportVersionMutation) ResetMission() {
	m.mission = nil
	m.clearedmission = false
}

// Where appends a list predicates to the ReportVersionMutation builder.
func (m *ReportVersionMutation) Where(ps ...predicate.ReportVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportVersion).
func (m *ReportVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportVersionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.mission != nil {
		fields = append(fields, reportversion.FieldMissionID)
	}
	if m.version != nil {
		fields = append(fields, reportversion.FieldVersion)
	}
	if m.title != nil {
		fields = append(fields, reportversion.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, reportversion.FieldContent)
	}
	if m.revision_notes != nil {
		fields = append(fields, reportversion.FieldRevisionNotes)
	}
	if m.is_current != nil {
		fields = append(fields, reportversion.FieldIsCurrent)
	}
	if m.created_at != nil {
		fields = append(fields, reportversion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reportversion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportversion.FieldMissionID:
		return m.MissionID()
	case reportversion.FieldVersion:
		return m.Version()
	case reportversion.FieldTitle:
		return m.Title()
	case reportversion.FieldContent:
		return m.Content()
	case reportversion.FieldRevisionNotes:
		return m.RevisionNotes()
	case reportversion.FieldIsCurrent:
		return m.IsCurrent()
	case reportversion.FieldCreatedAt:
		return m.CreatedAt()
	case reportversion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportversion.FieldMissionID:
		return m.OldMissionID(ctx)
	case reportversion.FieldVersion:
		return m.OldVersion(ctx)
	case reportversion.FieldTitle:
		return m.OldTitle(ctx)
	case reportversion.FieldContent:
		return m.OldContent(ctx)
	case reportversion.FieldRevisionNotes:
		return m.OldRevisionNotes(ctx)
	case reportversion.FieldIsCurrent:
		return m.OldIsCurrent(ctx)
	case reportversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reportversion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReportVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportversion.FieldMissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissionID(v)
		return nil
	case reportversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case reportversion.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case reportversion.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case reportversion.FieldRevisionNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevisionNotes(v)
		return nil
	case reportversion.FieldIsCurrent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCurrent(v)
		return nil
	case reportversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reportversion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReportVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, reportversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reportversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reportversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ReportVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reportversion.FieldRevisionNotes) {
		fields = append(fields, reportversion.FieldRevisionNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportVersionMutation) ClearField(name string) error {
	switch name {
	case reportversion.FieldRevisionNotes:
		m.ClearRevisionNotes()
		return nil
	}
	return fmt.Errorf("unknown ReportVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportVersionMutation) ResetField(name string) error {
	switch name {
	case reportversion.FieldMissionID:
		m.ResetMissionID()
		return nil
	case reportversion.FieldVersion:
		m.ResetVersion()
		return nil
	case reportversion.FieldTitle:
		m.ResetTitle()
		return nil
	case reportversion.FieldContent:
		m.ResetContent()
		return nil
	case reportversion.FieldRevisionNotes:
		m.ResetRevisionNotes()
		return nil
	case reportversion.FieldIsCurrent:
		m.ResetIsCurrent()
		return nil
	case reportversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reportversion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReportVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.mission != nil {
		edges = append(edges, reportversion.EdgeMission)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reportversion.EdgeMission:
		if id := m.mission; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmission {
		edges = append(edges, reportversion.EdgeMission)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case reportversion.EdgeMission:
		return m.clearedmission
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportVersionMutation) ClearEdge(name string) error {
	switch name {
	case reportversion.EdgeMission:
		m.ClearMission()
		return nil
	}
	return fmt.Errorf("unknown ReportVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportVersionMutation) ResetEdge(name string) error {
	switch name {
	case reportversion.EdgeMission:
		m.ResetMission()
		return nil
	}
	return fmt.Errorf("unknown ReportVersion edge %s", name)
}
