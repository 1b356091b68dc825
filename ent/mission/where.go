// Code generated by ent, DO NOT EDIT.

package mission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-research/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldChatID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUserID, v))
}

// UserRequest applies equality check predicate on the "user_request" field. It's identical to UserRequestEQ.
func UserRequest(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUserRequest, v))
}

// ErrorInfo applies equality check predicate on the "error_info" field. It's identical to ErrorInfoEQ.
func ErrorInfo(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldErrorInfo, v))
}

// CurrentReportVersion applies equality check predicate on the "current_report_version" field. It's identical to CurrentReportVersionEQ.
func CurrentReportVersion(v int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCurrentReportVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCompletedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDeletedAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldChatID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldUserID, v))
}

// UserRequestEQ applies the EQ predicate on the "user_request" field.
func UserRequestEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUserRequest, v))
}

// UserRequestNEQ applies the NEQ predicate on the "user_request" field.
func UserRequestNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldUserRequest, v))
}

// UserRequestIn applies the In predicate on the "user_request" field.
func UserRequestIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldUserRequest, vs...))
}

// UserRequestNotIn applies the NotIn predicate on the "user_request" field.
func UserRequestNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldUserRequest, vs...))
}

// UserRequestGT applies the GT predicate on the "user_request" field.
func UserRequestGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldUserRequest, v))
}

// UserRequestGTE applies the GTE predicate on the "user_request" field.
func UserRequestGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldUserRequest, v))
}

// UserRequestLT applies the LT predicate on the "user_request" field.
func UserRequestLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldUserRequest, v))
}

// UserRequestLTE applies the LTE predicate on the "user_request" field.
func UserRequestLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldUserRequest, v))
}

// UserRequestContains applies the Contains predicate on the "user_request" field.
func UserRequestContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldUserRequest, v))
}

// UserRequestHasPrefix applies the HasPrefix predicate on the "user_request" field.
func UserRequestHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldUserRequest, v))
}

// UserRequestHasSuffix applies the HasSuffix predicate on the "user_request" field.
func UserRequestHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldUserRequest, v))
}

// UserRequestEqualFold applies the EqualFold predicate on the "user_request" field.
func UserRequestEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldUserRequest, v))
}

// UserRequestContainsFold applies the ContainsFold predicate on the "user_request" field.
func UserRequestContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldUserRequest, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorInfoEQ applies the EQ predicate on the "error_info" field.
func ErrorInfoEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldErrorInfo, v))
}

// ErrorInfoNEQ applies the NEQ predicate on the "error_info" field.
func ErrorInfoNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldErrorInfo, v))
}

// ErrorInfoIn applies the In predicate on the "error_info" field.
func ErrorInfoIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldErrorInfo, vs...))
}

// ErrorInfoNotIn applies the NotIn predicate on the "error_info" field.
func ErrorInfoNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldErrorInfo, vs...))
}

// ErrorInfoGT applies the GT predicate on the "error_info" field.
func ErrorInfoGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldErrorInfo, v))
}

// ErrorInfoGTE applies the GTE predicate on the "error_info" field.
func ErrorInfoGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldErrorInfo, v))
}

// ErrorInfoLT applies the LT predicate on the "error_info" field.
func ErrorInfoLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldErrorInfo, v))
}

// ErrorInfoLTE applies the LTE predicate on the "error_info" field.
func ErrorInfoLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldErrorInfo, v))
}

// ErrorInfoContains applies the Contains predicate on the "error_info" field.
func ErrorInfoContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldErrorInfo, v))
}

// ErrorInfoHasPrefix applies the HasPrefix predicate on the "error_info" field.
func ErrorInfoHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldErrorInfo, v))
}

// ErrorInfoHasSuffix applies the HasSuffix predicate on the "error_info" field.
func ErrorInfoHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldErrorInfo, v))
}

// ErrorInfoIsNil applies the IsNil predicate on the "error_info" field.
func ErrorInfoIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldErrorInfo))
}

// ErrorInfoNotNil applies the NotNil predicate on the "error_info" field.
func ErrorInfoNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldErrorInfo))
}

// ErrorInfoEqualFold applies the EqualFold predicate on the "error_info" field.
func ErrorInfoEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldErrorInfo, v))
}

// ErrorInfoContainsFold applies the ContainsFold predicate on the "error_info" field.
func ErrorInfoContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldErrorInfo, v))
}

// CurrentReportVersionEQ applies the EQ predicate on the "current_report_version" field.
func CurrentReportVersionEQ(v int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCurrentReportVersion, v))
}

// CurrentReportVersionNEQ applies the NEQ predicate on the "current_report_version" field.
func CurrentReportVersionNEQ(v int) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCurrentReportVersion, v))
}

// CurrentReportVersionIn applies the In predicate on the "current_report_version" field.
func CurrentReportVersionIn(vs ...int) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCurrentReportVersion, vs...))
}

// CurrentReportVersionNotIn applies the NotIn predicate on the "current_report_version" field.
func CurrentReportVersionNotIn(vs ...int) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCurrentReportVersion, vs...))
}

// CurrentReportVersionGT applies the GT predicate on the "current_report_version" field.
func CurrentReportVersionGT(v int) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCurrentReportVersion, v))
}

// CurrentReportVersionGTE applies the GTE predicate on the "current_report_version" field.
func CurrentReportVersionGTE(v int) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCurrentReportVersion, v))
}

// CurrentReportVersionLT applies the LT predicate on the "current_report_version" field.
func CurrentReportVersionLT(v int) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCurrentReportVersion, v))
}

// CurrentReportVersionLTE applies the LTE predicate on the "current_report_version" field.
func CurrentReportVersionLTE(v int) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCurrentReportVersion, v))
}

// CurrentReportVersionIsNil applies the IsNil predicate on the "current_report_version" field.
func CurrentReportVersionIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldCurrentReportVersion))
}

// CurrentReportVersionNotNil applies the NotNil predicate on the "current_report_version" field.
func CurrentReportVersionNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldCurrentReportVersion))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldCompletedAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldLastInteractionAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldDeletedAt))
}

// HasLogEntries applies the HasEdge predicate on the "log_entries" edge.
func HasLogEntries() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogEntriesTable, LogEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogEntriesWith applies the HasEdge predicate on the "log_entries" edge with a given conditions (other predicates).
func HasLogEntriesWith(preds ...predicate.MissionLogEntry) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newLogEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReportVersions applies the HasEdge predicate on the "report_versions" edge.
func HasReportVersions() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportVersionsTable, ReportVersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportVersionsWith applies the HasEdge predicate on the "report_versions" edge with a given conditions (other predicates).
func HasReportVersionsWith(preds ...predicate.ReportVersion) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newReportVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.NotPredicates(p))
}
