// Code generated by ent, DO NOT EDIT.

package finetuningjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-hq/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldName, v))
}

// BaseModel applies equality check predicate on the "base_model" field. It's identical to BaseModelEQ.
func BaseModel(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldBaseModel, v))
}

// TunedModel applies equality check predicate on the "tuned_model" field. It's identical to TunedModelEQ.
func TunedModel(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldTunedModel, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldRetryCount, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldStatus, vs...))
}

// BaseModelEQ applies the EQ predicate on the "base_model" field.
func BaseModelEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldBaseModel, v))
}

// BaseModelNEQ applies the NEQ predicate on the "base_model" field.
func BaseModelNEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldBaseModel, v))
}

// BaseModelIn applies the In predicate on the "base_model" field.
func BaseModelIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldBaseModel, vs...))
}

// BaseModelNotIn applies the NotIn predicate on the "base_model" field.
func BaseModelNotIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldBaseModel, vs...))
}

// BaseModelGT applies the GT predicate on the "base_model" field.
func BaseModelGT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldBaseModel, v))
}

// BaseModelGTE applies the GTE predicate on the "base_model" field.
func BaseModelGTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldBaseModel, v))
}

// BaseModelLT applies the LT predicate on the "base_model" field.
func BaseModelLT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldBaseModel, v))
}

// BaseModelLTE applies the LTE predicate on the "base_model" field.
func BaseModelLTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldBaseModel, v))
}

// BaseModelContains applies the Contains predicate on the "base_model" field.
func BaseModelContains(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContains(FieldBaseModel, v))
}

// BaseModelHasPrefix applies the HasPrefix predicate on the "base_model" field.
func BaseModelHasPrefix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasPrefix(FieldBaseModel, v))
}

// BaseModelHasSuffix applies the HasSuffix predicate on the "base_model" field.
func BaseModelHasSuffix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasSuffix(FieldBaseModel, v))
}

// BaseModelEqualFold applies the EqualFold predicate on the "base_model" field.
func BaseModelEqualFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEqualFold(FieldBaseModel, v))
}

// BaseModelContainsFold applies the ContainsFold predicate on the "base_model" field.
func BaseModelContainsFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContainsFold(FieldBaseModel, v))
}

// TunedModelEQ applies the EQ predicate on the "tuned_model" field.
func TunedModelEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldTunedModel, v))
}

// TunedModelNEQ applies the NEQ predicate on the "tuned_model" field.
func TunedModelNEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldTunedModel, v))
}

// TunedModelIn applies the In predicate on the "tuned_model" field.
func TunedModelIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldTunedModel, vs...))
}

// TunedModelNotIn applies the NotIn predicate on the "tuned_model" field.
func TunedModelNotIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldTunedModel, vs...))
}

// TunedModelGT applies the GT predicate on the "tuned_model" field.
func TunedModelGT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldTunedModel, v))
}

// TunedModelGTE applies the GTE predicate on the "tuned_model" field.
func TunedModelGTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldTunedModel, v))
}

// TunedModelLT applies the LT predicate on the "tuned_model" field.
func TunedModelLT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldTunedModel, v))
}

// TunedModelLTE applies the LTE predicate on the "tuned_model" field.
func TunedModelLTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldTunedModel, v))
}

// TunedModelContains applies the Contains predicate on the "tuned_model" field.
func TunedModelContains(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContains(FieldTunedModel, v))
}

// TunedModelHasPrefix applies the HasPrefix predicate on the "tuned_model" field.
func TunedModelHasPrefix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasPrefix(FieldTunedModel, v))
}

// TunedModelHasSuffix applies the HasSuffix predicate on the "tuned_model" field.
func TunedModelHasSuffix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasSuffix(FieldTunedModel, v))
}

// TunedModelIsNil applies the IsNil predicate on the "tuned_model" field.
func TunedModelIsNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIsNull(FieldTunedModel))
}

// TunedModelNotNil applies the NotNil predicate on the "tuned_model" field.
func TunedModelNotNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotNull(FieldTunedModel))
}

// TunedModelEqualFold applies the EqualFold predicate on the "tuned_model" field.
func TunedModelEqualFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEqualFold(FieldTunedModel, v))
}

// TunedModelContainsFold applies the ContainsFold predicate on the "tuned_model" field.
func TunedModelContainsFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContainsFold(FieldTunedModel, v))
}

// DatasetInfoIsNil applies the IsNil predicate on the "dataset_info" field.
func DatasetInfoIsNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIsNull(FieldDatasetInfo))
}

// DatasetInfoNotNil applies the NotNil predicate on the "dataset_info" field.
func DatasetInfoNotNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotNull(FieldDatasetInfo))
}

// HyperparametersIsNil applies the IsNil predicate on the "hyperparameters" field.
func HyperparametersIsNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIsNull(FieldHyperparameters))
}

// HyperparametersNotNil applies the NotNil predicate on the "hyperparameters" field.
func HyperparametersNotNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotNull(FieldHyperparameters))
}

// EvaluationIsNil applies the IsNil predicate on the "evaluation" field.
func EvaluationIsNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIsNull(FieldEvaluation))
}

// EvaluationNotNil applies the NotNil predicate on the "evaluation" field.
func EvaluationNotNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotNull(FieldEvaluation))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldRetryCount, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.FineTuningJob {
	return predicate.FineTuningJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.FineTuningJob {
	return predicate.FineTuningJob(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FineTuningJob) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FineTuningJob) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FineTuningJob) predicate.FineTuningJob {
	return predicate.FineTuningJob(sql.NotPredicates(p))
}
