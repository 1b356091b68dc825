// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maestro-research/maestro/ent/event"
	"github.com/maestro-research/maestro/ent/mission"
	"github.com/maestro-research/maestro/ent/reportversion"
	"github.com/maestro-research/maestro/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	missionFields := schema.Mission{}.Fields()
	_ = missionFields
	// missionDescCreatedAt is the schema descriptor for created_at field.
	missionDescCreatedAt := missionFields[8].Descriptor()
	// mission.DefaultCreatedAt holds the default value on creation for the created_at field.
	mission.DefaultCreatedAt = missionDescCreatedAt.Default.(func() time.Time)
	// missionDescUpdatedAt is the schema descriptor for updated_at field.
	missionDescUpdatedAt := missionFields[9].Descriptor()
	// mission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mission.DefaultUpdatedAt = missionDescUpdatedAt.Default.(func() time.Time)
	reportversionFields := schema.ReportVersion{}.Fields()
	_ = reportversionFields
	// reportversionDescIsCurrent is the schema descriptor for is_current field.
	reportversionDescIsCurrent := reportversionFields[6].Descriptor()
	// reportversion.DefaultIsCurrent holds the default value on creation for the is_current field.
	reportversion.DefaultIsCurrent = reportversionDescIsCurrent.Default.(bool)
	// reportversionDescCreatedAt is the schema descriptor for created_at field.
	reportversionDescCreatedAt := reportversionFields[7].Descriptor()
	// reportversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportversion.DefaultCreatedAt = reportversionDescCreatedAt.Default.(func() time.Time)
	// reportversionDescUpdatedAt is the schema descriptor for updated_at field.
	reportversionDescUpdatedAt := reportversionFields[8].Descriptor()
	// reportversion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reportversion.DefaultUpdatedAt = reportversionDescUpdatedAt.Default.(func() time.Time)
}
