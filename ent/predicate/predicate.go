// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Mission is the predicate function for mission builders.
type Mission func(*sql.Selector)

// MissionLogEntry is the predicate function for missionlogentry builders.
type MissionLogEntry func(*sql.Selector)

// ReportVersion is the predicate function for reportversion builders.
type ReportVersion func(*sql.Selector)
