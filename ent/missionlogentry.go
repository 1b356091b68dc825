// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/missionlogentry"
)

// MissionLogEntry is the model entity for the MissionLogEntry schema.
type MissionLogEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MissionID holds the value of the "mission_id" field.
	MissionID string `json:"mission_id,omitempty"`
	// Strictly increasing per mission; assigned by the context store
	Sequence int `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// InputSummary holds the value of the "input_summary" field.
	InputSummary string `json:"input_summary,omitempty"`
	// OutputSummary holds the value of the "output_summary" field.
	OutputSummary string `json:"output_summary,omitempty"`
	// Status holds the value of the "status" field.
	Status missionlogentry.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// FullInput holds the value of the "full_input" field.
	FullInput string `json:"full_input,omitempty"`
	// FullOutput holds the value of the "full_output" field.
	FullOutput string `json:"full_output,omitempty"`
	// ModelDetails holds the value of the "model_details" field.
	ModelDetails map[string]interface{} `json:"model_details,omitempty"`
	// ToolCalls holds the value of the "tool_calls" field.
	ToolCalls []map[string]interface{} `json:"tool_calls,omitempty"`
	// FileInteractions holds the value of the "file_interactions" field.
	FileInteractions []map[string]interface{} `json:"file_interactions,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MissionLogEntryQuery when eager-loading is set.
	Edges        MissionLogEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MissionLogEntryEdges holds the relations/edges for other nodes in the graph.
type MissionLogEntryEdges struct {
	// Mission holds the value of the mission edge.
	Mission *Mission `json:"mission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MissionOrErr returns the Mission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MissionLogEntryEdges) MissionOrErr() (*Mission, error) {
	if e.Mission != nil {
		return e.Mission, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: mission.Label}
	}
	return nil, &NotLoadedError{edge: "mission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MissionLogEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case missionlogentry.FieldModelDetails, missionlogentry.FieldToolCalls, missionlogentry.FieldFileInteractions:
			values[i] = new([]byte)
		case missionlogentry.FieldSequence:
			values[i] = new(sql.NullInt64)
		case missionlogentry.FieldID, missionlogentry.FieldMissionID, missionlogentry.FieldAgentName, missionlogentry.FieldAction, missionlogentry.FieldInputSummary, missionlogentry.FieldOutputSummary, missionlogentry.FieldStatus, missionlogentry.FieldErrorMessage, missionlogentry.FieldFullInput, missionlogentry.FieldFullOutput:
			values[i] = new(sql.NullString)
		case missionlogentry.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MissionLogEntry fields.
func (_m *MissionLogEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case missionlogentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case missionlogentry.FieldMissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mission_id", values[i])
			} else if value.Valid {
				_m.MissionID = value.String
			}
		case missionlogentry.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		case missionlogentry.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case missionlogentry.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case missionlogentry.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case missionlogentry.FieldInputSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_summary", values[i])
			} else if value.Valid {
				_m.InputSummary = value.String
			}
		case missionlogentry.FieldOutputSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_summary", values[i])
			} else if value.Valid {
				_m.OutputSummary = value.String
			}
		case missionlogentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = missionlogentry.Status(value.String)
			}
		case missionlogentry.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case missionlogentry.FieldFullInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_input", values[i])
			} else if value.Valid {
				_m.FullInput = value.String
			}
		case missionlogentry.FieldFullOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_output", values[i])
			} else if value.Valid {
				_m.FullOutput = value.String
			}
		case missionlogentry.FieldModelDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field model_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModelDetails); err != nil {
					return fmt.Errorf("unmarshal field model_details: %w", err)
				}
			}
		case missionlogentry.FieldToolCalls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_calls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolCalls); err != nil {
					return fmt.Errorf("unmarshal field tool_calls: %w", err)
				}
			}
		case missionlogentry.FieldFileInteractions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field file_interactions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FileInteractions); err != nil {
					return fmt.Errorf("unmarshal field file_interactions: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MissionLogEntry.
// This includes values selected through modifiers, order, etc.
func (_m *MissionLogEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMission queries the "mission" edge of the MissionLogEntry entity.
func (_m *MissionLogEntry) QueryMission() *MissionQuery {
	return NewMissionLogEntryClient(_m.config).QueryMission(_m)
}

// Update returns a builder for updating this MissionLogEntry.
// Note that you need to call MissionLogEntry.Unwrap() before calling this method if this MissionLogEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MissionLogEntry) Update() *MissionLogEntryUpdateOne {
	return NewMissionLogEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MissionLogEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MissionLogEntry) Unwrap() *MissionLogEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MissionLogEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MissionLogEntry) String() string {
	var builder strings.Builder
	builder.WriteString("MissionLogEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("mission_id=")
	builder.WriteString(_m.MissionID)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("input_summary=")
	builder.WriteString(_m.InputSummary)
	builder.WriteString(", ")
	builder.WriteString("output_summary=")
	builder.WriteString(_m.OutputSummary)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("full_input=")
	builder.WriteString(_m.FullInput)
	builder.WriteString(", ")
	builder.WriteString("full_output=")
	builder.WriteString(_m.FullOutput)
	builder.WriteString(", ")
	builder.WriteString("model_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelDetails))
	builder.WriteString(", ")
	builder.WriteString("tool_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolCalls))
	builder.WriteString(", ")
	builder.WriteString("file_interactions=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileInteractions))
	builder.WriteByte(')')
	return builder.String()
}

// MissionLogEntries is a parsable slice of MissionLogEntry.
type MissionLogEntries []*MissionLogEntry
