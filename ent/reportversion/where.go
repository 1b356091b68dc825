// Code generated by ent, DO NOT EDIT.

package reportversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-research/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContainsFold(FieldID, id))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldMissionID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldVersion, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldContent, v))
}

// RevisionNotes applies equality check predicate on the "revision_notes" field. It's identical to RevisionNotesEQ.
func RevisionNotes(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldRevisionNotes, v))
}

// IsCurrent applies equality check predicate on the "is_current" field. It's identical to IsCurrentEQ.
func IsCurrent(v bool) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldIsCurrent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldUpdatedAt, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotIn(FieldMissionID, vs...))
}

// MissionIDGT applies the GT predicate on the "mission_id" field.
func MissionIDGT(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGT(FieldMissionID, v))
}

// MissionIDGTE applies the GTE predicate on the "mission_id" field.
func MissionIDGTE(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGTE(FieldMissionID, v))
}

// MissionIDLT applies the LT predicate on the "mission_id" field.
func MissionIDLT(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLT(FieldMissionID, v))
}

// MissionIDLTE applies the LTE predicate on the "mission_id" field.
func MissionIDLTE(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLTE(FieldMissionID, v))
}

// MissionIDContains applies the Contains predicate on the "mission_id" field.
func MissionIDContains(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContains(FieldMissionID, v))
}

// MissionIDHasPrefix applies the HasPrefix predicate on the "mission_id" field.
func MissionIDHasPrefix(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldHasPrefix(FieldMissionID, v))
}

// MissionIDHasSuffix applies the HasSuffix predicate on the "mission_id" field.
func MissionIDHasSuffix(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldHasSuffix(FieldMissionID, v))
}

// MissionIDEqualFold applies the EqualFold predicate on the "mission_id" field.
func MissionIDEqualFold(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEqualFold(FieldMissionID, v))
}

// MissionIDContainsFold applies the ContainsFold predicate on the "mission_id" field.
func MissionIDContainsFold(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContainsFold(FieldMissionID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLTE(FieldVersion, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContainsFold(FieldContent, v))
}

// RevisionNotesEQ applies the EQ predicate on the "revision_notes" field.
func RevisionNotesEQ(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldRevisionNotes, v))
}

// RevisionNotesNEQ applies the NEQ predicate on the "revision_notes" field.
func RevisionNotesNEQ(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldRevisionNotes, v))
}

// RevisionNotesIn applies the In predicate on the "revision_notes" field.
func RevisionNotesIn(vs ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIn(FieldRevisionNotes, vs...))
}

// RevisionNotesNotIn applies the NotIn predicate on the "revision_notes" field.
func RevisionNotesNotIn(vs ...string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotIn(FieldRevisionNotes, vs...))
}

// RevisionNotesGT applies the GT predicate on the "revision_notes" field.
func RevisionNotesGT(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGT(FieldRevisionNotes, v))
}

// RevisionNotesGTE applies the GTE predicate on the "revision_notes" field.
func RevisionNotesGTE(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGTE(FieldRevisionNotes, v))
}

// RevisionNotesLT applies the LT predicate on the "revision_notes" field.
func RevisionNotesLT(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLT(FieldRevisionNotes, v))
}

// RevisionNotesLTE applies the LTE predicate on the "revision_notes" field.
func RevisionNotesLTE(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLTE(FieldRevisionNotes, v))
}

// RevisionNotesContains applies the Contains predicate on the "revision_notes" field.
func RevisionNotesContains(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContains(FieldRevisionNotes, v))
}

// RevisionNotesHasPrefix applies the HasPrefix predicate on the "revision_notes" field.
func RevisionNotesHasPrefix(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldHasPrefix(FieldRevisionNotes, v))
}

// RevisionNotesHasSuffix applies the HasSuffix predicate on the "revision_notes" field.
func RevisionNotesHasSuffix(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldHasSuffix(FieldRevisionNotes, v))
}

// RevisionNotesIsNil applies the IsNil predicate on the "revision_notes" field.
func RevisionNotesIsNil() predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIsNull(FieldRevisionNotes))
}

// RevisionNotesNotNil applies the NotNil predicate on the "revision_notes" field.
func RevisionNotesNotNil() predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotNull(FieldRevisionNotes))
}

// RevisionNotesEqualFold applies the EqualFold predicate on the "revision_notes" field.
func RevisionNotesEqualFold(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEqualFold(FieldRevisionNotes, v))
}

// RevisionNotesContainsFold applies the ContainsFold predicate on the "revision_notes" field.
func RevisionNotesContainsFold(v string) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldContainsFold(FieldRevisionNotes, v))
}

// IsCurrentEQ applies the EQ predicate on the "is_current" field.
func IsCurrentEQ(v bool) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldIsCurrent, v))
}

// IsCurrentNEQ applies the NEQ predicate on the "is_current" field.
func IsCurrentNEQ(v bool) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldIsCurrent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReportVersion {
	return predicate.ReportVersion(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMission applies the HasEdge predicate on the "mission" edge.
func HasMission() predicate.ReportVersion {
	return predicate.ReportVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionWith applies the HasEdge predicate on the "mission" edge with a given conditions (other predicates).
func HasMissionWith(preds ...predicate.Mission) predicate.ReportVersion {
	return predicate.ReportVersion(func(s *sql.Selector) {
		step := newMissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportVersion) predicate.ReportVersion {
	return predicate.ReportVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportVersion) predicate.ReportVersion {
	return predicate.ReportVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportVersion) predicate.ReportVersion {
	return predicate.ReportVersion(sql.NotPredicates(p))
}
