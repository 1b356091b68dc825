// Code generated by ent, DO NOT EDIT.

package missionlogentry

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the missionlogentry type in the database.
	Label = "mission_log_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "entry_id"
	// FieldMissionID holds the string denoting the mission_id field in the database.
	FieldMissionID = "mission_id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAgentName holds the string denoting the agent_name field in the database.
	FieldAgentName = "agent_name"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldInputSummary holds the string denoting the input_summary field in the database.
	FieldInputSummary = "input_summary"
	// FieldOutputSummary holds the string denoting the output_summary field in the database.
	FieldOutputSummary = "output_summary"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldFullInput holds the string denoting the full_input field in the database.
	FieldFullInput = "full_input"
	// FieldFullOutput holds the string denoting the full_output field in the database.
	FieldFullOutput = "full_output"
	// FieldModelDetails holds the string denoting the model_details field in the database.
	FieldModelDetails = "model_details"
	// FieldToolCalls holds the string denoting the tool_calls field in the database.
	FieldToolCalls = "tool_calls"
	// FieldFileInteractions holds the string denoting the file_interactions field in the database.
	FieldFileInteractions = "file_interactions"
	// EdgeMission holds the string denoting the mission edge name in mutations.
	EdgeMission = "mission"
	// MissionFieldID holds the string denoting the ID field of the Mission.
	MissionFieldID = "mission_id"
	// Table holds the table name of the missionlogentry in the database.
	Table = "mission_log_entries"
	// MissionTable is the table that holds the mission relation/edge.
	MissionTable = "mission_log_entries"
	// MissionInverseTable is the table name for the Mission entity.
	// It exists in this package in order to avoid circular dependency with the "mission" package.
	MissionInverseTable = "missions"
	// MissionColumn is the table column denoting the mission relation/edge.
	MissionColumn = "mission_id"
)

// Columns holds all SQL columns for missionlogentry fields.
var Columns = []string{
	FieldID,
	FieldMissionID,
	FieldSequence,
	FieldTimestamp,
	FieldAgentName,
	FieldAction,
	FieldInputSummary,
	FieldOutputSummary,
	FieldStatus,
	FieldErrorMessage,
	FieldFullInput,
	FieldFullOutput,
	FieldModelDetails,
	FieldToolCalls,
	FieldFileInteractions,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusWarning Status = "warning"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusFailure, StatusWarning:
		return nil
	default:
		return fmt.Errorf("missionlogentry: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MissionLogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMissionID orders the results by the mission_id field.
func ByMissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissionID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAgentName orders the results by the agent_name field.
func ByAgentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentName, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByInputSummary orders the results by the input_summary field.
func ByInputSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputSummary, opts...).ToFunc()
}

// ByOutputSummary orders the results by the output_summary field.
func ByOutputSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputSummary, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByFullInput orders the results by the full_input field.
func ByFullInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullInput, opts...).ToFunc()
}

// ByFullOutput orders the results by the full_output field.
func ByFullOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullOutput, opts...).ToFunc()
}

// ByMissionField orders the results by mission field.
func ByMissionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMissionStep(), sql.OrderByField(field, opts...))
	}
}
func newMissionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MissionInverseTable, MissionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
	)
}
