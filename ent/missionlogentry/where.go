// Code generated by ent, DO NOT EDIT.

package missionlogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-research/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldID, id))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldMissionID, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldTimestamp, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldAgentName, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldAction, v))
}

// InputSummary applies equality check predicate on the "input_summary" field. It's identical to InputSummaryEQ.
func InputSummary(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldInputSummary, v))
}

// OutputSummary applies equality check predicate on the "output_summary" field. It's identical to OutputSummaryEQ.
func OutputSummary(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldOutputSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// FullInput applies equality check predicate on the "full_input" field. It's identical to FullInputEQ.
func FullInput(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldFullInput, v))
}

// FullOutput applies equality check predicate on the "full_output" field. It's identical to FullOutputEQ.
func FullOutput(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldFullOutput, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldMissionID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldTimestamp, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldAgentName, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldAction, v))
}

// InputSummaryEQ applies the EQ predicate on the "input_summary" field.
func InputSummaryEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldInputSummary, v))
}

// InputSummaryNEQ applies the NEQ predicate on the "input_summary" field.
func InputSummaryNEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldInputSummary, v))
}

// InputSummaryIn applies the In predicate on the "input_summary" field.
func InputSummaryIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldInputSummary, vs...))
}

// InputSummaryNotIn applies the NotIn predicate on the "input_summary" field.
func InputSummaryNotIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldInputSummary, vs...))
}

// InputSummaryGT applies the GT predicate on the "input_summary" field.
func InputSummaryGT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldInputSummary, v))
}

// InputSummaryGTE applies the GTE predicate on the "input_summary" field.
func InputSummaryGTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldInputSummary, v))
}

// InputSummaryLT applies the LT predicate on the "input_summary" field.
func InputSummaryLT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldInputSummary, v))
}

// InputSummaryLTE applies the LTE predicate on the "input_summary" field.
func InputSummaryLTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldInputSummary, v))
}

// InputSummaryContains applies the Contains predicate on the "input_summary" field.
func InputSummaryContains(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContains(FieldInputSummary, v))
}

// InputSummaryHasPrefix applies the HasPrefix predicate on the "input_summary" field.
func InputSummaryHasPrefix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasPrefix(FieldInputSummary, v))
}

// InputSummaryHasSuffix applies the HasSuffix predicate on the "input_summary" field.
func InputSummaryHasSuffix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasSuffix(FieldInputSummary, v))
}

// InputSummaryIsNil applies the IsNil predicate on the "input_summary" field.
func InputSummaryIsNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIsNull(FieldInputSummary))
}

// InputSummaryNotNil applies the NotNil predicate on the "input_summary" field.
func InputSummaryNotNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotNull(FieldInputSummary))
}

// InputSummaryEqualFold applies the EqualFold predicate on the "input_summary" field.
func InputSummaryEqualFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldInputSummary, v))
}

// InputSummaryContainsFold applies the ContainsFold predicate on the "input_summary" field.
func InputSummaryContainsFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldInputSummary, v))
}

// OutputSummaryEQ applies the EQ predicate on the "output_summary" field.
func OutputSummaryEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldOutputSummary, v))
}

// OutputSummaryNEQ applies the NEQ predicate on the "output_summary" field.
func OutputSummaryNEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldOutputSummary, v))
}

// OutputSummaryIn applies the In predicate on the "output_summary" field.
func OutputSummaryIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldOutputSummary, vs...))
}

// OutputSummaryNotIn applies the NotIn predicate on the "output_summary" field.
func OutputSummaryNotIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldOutputSummary, vs...))
}

// OutputSummaryGT applies the GT predicate on the "output_summary" field.
func OutputSummaryGT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldOutputSummary, v))
}

// OutputSummaryGTE applies the GTE predicate on the "output_summary" field.
func OutputSummaryGTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldOutputSummary, v))
}

// OutputSummaryLT applies the LT predicate on the "output_summary" field.
func OutputSummaryLT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldOutputSummary, v))
}

// OutputSummaryLTE applies the LTE predicate on the "output_summary" field.
func OutputSummaryLTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldOutputSummary, v))
}

// OutputSummaryContains applies the Contains predicate on the "output_summary" field.
func OutputSummaryContains(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContains(FieldOutputSummary, v))
}

// OutputSummaryHasPrefix applies the HasPrefix predicate on the "output_summary" field.
func OutputSummaryHasPrefix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasPrefix(FieldOutputSummary, v))
}

// OutputSummaryHasSuffix applies the HasSuffix predicate on the "output_summary" field.
func OutputSummaryHasSuffix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasSuffix(FieldOutputSummary, v))
}

// OutputSummaryIsNil applies the IsNil predicate on the "output_summary" field.
func OutputSummaryIsNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIsNull(FieldOutputSummary))
}

// OutputSummaryNotNil applies the NotNil predicate on the "output_summary" field.
func OutputSummaryNotNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotNull(FieldOutputSummary))
}

// OutputSummaryEqualFold applies the EqualFold predicate on the "output_summary" field.
func OutputSummaryEqualFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldOutputSummary, v))
}

// OutputSummaryContainsFold applies the ContainsFold predicate on the "output_summary" field.
func OutputSummaryContainsFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldOutputSummary, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldErrorMessage, v))
}

// FullInputEQ applies the EQ predicate on the "full_input" field.
func FullInputEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldFullInput, v))
}

// FullInputNEQ applies the NEQ predicate on the "full_input" field.
func FullInputNEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldFullInput, v))
}

// FullInputIn applies the In predicate on the "full_input" field.
func FullInputIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldFullInput, vs...))
}

// FullInputNotIn applies the NotIn predicate on the "full_input" field.
func FullInputNotIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldFullInput, vs...))
}

// FullInputGT applies the GT predicate on the "full_input" field.
func FullInputGT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldFullInput, v))
}

// FullInputGTE applies the GTE predicate on the "full_input" field.
func FullInputGTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldFullInput, v))
}

// FullInputLT applies the LT predicate on the "full_input" field.
func FullInputLT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldFullInput, v))
}

// FullInputLTE applies the LTE predicate on the "full_input" field.
func FullInputLTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldFullInput, v))
}

// FullInputContains applies the Contains predicate on the "full_input" field.
func FullInputContains(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContains(FieldFullInput, v))
}

// FullInputHasPrefix applies the HasPrefix predicate on the "full_input" field.
func FullInputHasPrefix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasPrefix(FieldFullInput, v))
}

// FullInputHasSuffix applies the HasSuffix predicate on the "full_input" field.
func FullInputHasSuffix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasSuffix(FieldFullInput, v))
}

// FullInputIsNil applies the IsNil predicate on the "full_input" field.
func FullInputIsNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIsNull(FieldFullInput))
}

// FullInputNotNil applies the NotNil predicate on the "full_input" field.
func FullInputNotNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotNull(FieldFullInput))
}

// FullInputEqualFold applies the EqualFold predicate on the "full_input" field.
func FullInputEqualFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldFullInput, v))
}

// FullInputContainsFold applies the ContainsFold predicate on the "full_input" field.
func FullInputContainsFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldFullInput, v))
}

// FullOutputEQ applies the EQ predicate on the "full_output" field.
func FullOutputEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEQ(FieldFullOutput, v))
}

// FullOutputNEQ applies the NEQ predicate on the "full_output" field.
func FullOutputNEQ(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNEQ(FieldFullOutput, v))
}

// FullOutputIn applies the In predicate on the "full_output" field.
func FullOutputIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIn(FieldFullOutput, vs...))
}

// FullOutputNotIn applies the NotIn predicate on the "full_output" field.
func FullOutputNotIn(vs ...string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotIn(FieldFullOutput, vs...))
}

// FullOutputGT applies the GT predicate on the "full_output" field.
func FullOutputGT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGT(FieldFullOutput, v))
}

// FullOutputGTE applies the GTE predicate on the "full_output" field.
func FullOutputGTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldGTE(FieldFullOutput, v))
}

// FullOutputLT applies the LT predicate on the "full_output" field.
func FullOutputLT(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLT(FieldFullOutput, v))
}

// FullOutputLTE applies the LTE predicate on the "full_output" field.
func FullOutputLTE(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldLTE(FieldFullOutput, v))
}

// FullOutputContains applies the Contains predicate on the "full_output" field.
func FullOutputContains(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContains(FieldFullOutput, v))
}

// FullOutputHasPrefix applies the HasPrefix predicate on the "full_output" field.
func FullOutputHasPrefix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasPrefix(FieldFullOutput, v))
}

// FullOutputHasSuffix applies the HasSuffix predicate on the "full_output" field.
func FullOutputHasSuffix(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldHasSuffix(FieldFullOutput, v))
}

// FullOutputIsNil applies the IsNil predicate on the "full_output" field.
func FullOutputIsNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIsNull(FieldFullOutput))
}

// FullOutputNotNil applies the NotNil predicate on the "full_output" field.
func FullOutputNotNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotNull(FieldFullOutput))
}

// FullOutputEqualFold applies the EqualFold predicate on the "full_output" field.
func FullOutputEqualFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldEqualFold(FieldFullOutput, v))
}

// FullOutputContainsFold applies the ContainsFold predicate on the "full_output" field.
func FullOutputContainsFold(v string) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldContainsFold(FieldFullOutput, v))
}

// ModelDetailsIsNil applies the IsNil predicate on the "model_details" field.
func ModelDetailsIsNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIsNull(FieldModelDetails))
}

// ModelDetailsNotNil applies the NotNil predicate on the "model_details" field.
func ModelDetailsNotNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotNull(FieldModelDetails))
}

// ToolCallsIsNil applies the IsNil predicate on the "tool_calls" field.
func ToolCallsIsNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIsNull(FieldToolCalls))
}

// ToolCallsNotNil applies the NotNil predicate on the "tool_calls" field.
func ToolCallsNotNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotNull(FieldToolCalls))
}

// FileInteractionsIsNil applies the IsNil predicate on the "file_interactions" field.
func FileInteractionsIsNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldIsNull(FieldFileInteractions))
}

// FileInteractionsNotNil applies the NotNil predicate on the "file_interactions" field.
func FileInteractionsNotNil() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.FieldNotNull(FieldFileInteractions))
}

// HasMission applies the HasEdge predicate on the "mission" edge.
func HasMission() predicate.MissionLogEntry {
	return predicate.MissionLogEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionWith applies the HasEdge predicate on the "mission" edge with a given conditions (other predicates).
func HasMissionWith(preds ...predicate.Mission) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(func(s *sql.Selector) {
		step := newMissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MissionLogEntry) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MissionLogEntry) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MissionLogEntry) predicate.MissionLogEntry {
	return predicate.MissionLogEntry(sql.NotPredicates(p))
}
