// Code generated by ent, DO NOT EDIT.

package sessionmetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-hq/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldContainsFold(FieldID, id))
}

// QueuedAt applies equality check predicate on the "queued_at" field. It's identical to QueuedAtEQ.
func QueuedAt(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldQueuedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCompletedAt, v))
}

// FailedAt applies equality check predicate on the "failed_at" field. It's identical to FailedAtEQ.
func FailedAt(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldFailedAt, v))
}

// SuccessRate applies equality check predicate on the "success_rate" field. It's identical to SuccessRateEQ.
func SuccessRate(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldSuccessRate, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldConfidence, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldTotalTokens, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCostUsd, v))
}

// APICalls applies equality check predicate on the "api_calls" field. It's identical to APICallsEQ.
func APICalls(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAPICalls, v))
}

// APIErrors applies equality check predicate on the "api_errors" field. It's identical to APIErrorsEQ.
func APIErrors(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAPIErrors, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRetryCount, v))
}

// CheckpointCount applies equality check predicate on the "checkpoint_count" field. It's identical to CheckpointCountEQ.
func CheckpointCount(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCheckpointCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldUpdatedAt, v))
}

// QueuedAtEQ applies the EQ predicate on the "queued_at" field.
func QueuedAtEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldQueuedAt, v))
}

// QueuedAtNEQ applies the NEQ predicate on the "queued_at" field.
func QueuedAtNEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldQueuedAt, v))
}

// QueuedAtIn applies the In predicate on the "queued_at" field.
func QueuedAtIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldQueuedAt, vs...))
}

// QueuedAtNotIn applies the NotIn predicate on the "queued_at" field.
func QueuedAtNotIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldQueuedAt, vs...))
}

// QueuedAtGT applies the GT predicate on the "queued_at" field.
func QueuedAtGT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldQueuedAt, v))
}

// QueuedAtGTE applies the GTE predicate on the "queued_at" field.
func QueuedAtGTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldQueuedAt, v))
}

// QueuedAtLT applies the LT predicate on the "queued_at" field.
func QueuedAtLT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldQueuedAt, v))
}

// QueuedAtLTE applies the LTE predicate on the "queued_at" field.
func QueuedAtLTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldQueuedAt, v))
}

// QueuedAtIsNil applies the IsNil predicate on the "queued_at" field.
func QueuedAtIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldQueuedAt))
}

// QueuedAtNotNil applies the NotNil predicate on the "queued_at" field.
func QueuedAtNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldQueuedAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldCompletedAt))
}

// FailedAtEQ applies the EQ predicate on the "failed_at" field.
func FailedAtEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldFailedAt, v))
}

// FailedAtNEQ applies the NEQ predicate on the "failed_at" field.
func FailedAtNEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldFailedAt, v))
}

// FailedAtIn applies the In predicate on the "failed_at" field.
func FailedAtIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldFailedAt, vs...))
}

// FailedAtNotIn applies the NotIn predicate on the "failed_at" field.
func FailedAtNotIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldFailedAt, vs...))
}

// FailedAtGT applies the GT predicate on the "failed_at" field.
func FailedAtGT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldFailedAt, v))
}

// FailedAtGTE applies the GTE predicate on the "failed_at" field.
func FailedAtGTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldFailedAt, v))
}

// FailedAtLT applies the LT predicate on the "failed_at" field.
func FailedAtLT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldFailedAt, v))
}

// FailedAtLTE applies the LTE predicate on the "failed_at" field.
func FailedAtLTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldFailedAt, v))
}

// FailedAtIsNil applies the IsNil predicate on the "failed_at" field.
func FailedAtIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldFailedAt))
}

// FailedAtNotNil applies the NotNil predicate on the "failed_at" field.
func FailedAtNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldFailedAt))
}

// SuccessRateEQ applies the EQ predicate on the "success_rate" field.
func SuccessRateEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldSuccessRate, v))
}

// SuccessRateNEQ applies the NEQ predicate on the "success_rate" field.
func SuccessRateNEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldSuccessRate, v))
}

// SuccessRateIn applies the In predicate on the "success_rate" field.
func SuccessRateIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldSuccessRate, vs...))
}

// SuccessRateNotIn applies the NotIn predicate on the "success_rate" field.
func SuccessRateNotIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldSuccessRate, vs...))
}

// SuccessRateGT applies the GT predicate on the "success_rate" field.
func SuccessRateGT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldSuccessRate, v))
}

// SuccessRateGTE applies the GTE predicate on the "success_rate" field.
func SuccessRateGTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldSuccessRate, v))
}

// SuccessRateLT applies the LT predicate on the "success_rate" field.
func SuccessRateLT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldSuccessRate, v))
}

// SuccessRateLTE applies the LTE predicate on the "success_rate" field.
func SuccessRateLTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldSuccessRate, v))
}

// SuccessRateIsNil applies the IsNil predicate on the "success_rate" field.
func SuccessRateIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldSuccessRate))
}

// SuccessRateNotNil applies the NotNil predicate on the "success_rate" field.
func SuccessRateNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldSuccessRate))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldConfidence))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldTotalTokens, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldCostUsd, v))
}

// APICallsEQ applies the EQ predicate on the "api_calls" field.
func APICallsEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAPICalls, v))
}

// APICallsNEQ applies the NEQ predicate on the "api_calls" field.
func APICallsNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldAPICalls, v))
}

// APICallsIn applies the In predicate on the "api_calls" field.
func APICallsIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldAPICalls, vs...))
}

// APICallsNotIn applies the NotIn predicate on the "api_calls" field.
func APICallsNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldAPICalls, vs...))
}

// APICallsGT applies the GT predicate on the "api_calls" field.
func APICallsGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldAPICalls, v))
}

// APICallsGTE applies the GTE predicate on the "api_calls" field.
func APICallsGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldAPICalls, v))
}

// APICallsLT applies the LT predicate on the "api_calls" field.
func APICallsLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldAPICalls, v))
}

// APICallsLTE applies the LTE predicate on the "api_calls" field.
func APICallsLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldAPICalls, v))
}

// APIErrorsEQ applies the EQ predicate on the "api_errors" field.
func APIErrorsEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldAPIErrors, v))
}

// APIErrorsNEQ applies the NEQ predicate on the "api_errors" field.
func APIErrorsNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldAPIErrors, v))
}

// APIErrorsIn applies the In predicate on the "api_errors" field.
func APIErrorsIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldAPIErrors, vs...))
}

// APIErrorsNotIn applies the NotIn predicate on the "api_errors" field.
func APIErrorsNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldAPIErrors, vs...))
}

// APIErrorsGT applies the GT predicate on the "api_errors" field.
func APIErrorsGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldAPIErrors, v))
}

// APIErrorsGTE applies the GTE predicate on the "api_errors" field.
func APIErrorsGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldAPIErrors, v))
}

// APIErrorsLT applies the LT predicate on the "api_errors" field.
func APIErrorsLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldAPIErrors, v))
}

// APIErrorsLTE applies the LTE predicate on the "api_errors" field.
func APIErrorsLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldAPIErrors, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldRetryCount, v))
}

// CheckpointCountEQ applies the EQ predicate on the "checkpoint_count" field.
func CheckpointCountEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCheckpointCount, v))
}

// CheckpointCountNEQ applies the NEQ predicate on the "checkpoint_count" field.
func CheckpointCountNEQ(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldCheckpointCount, v))
}

// CheckpointCountIn applies the In predicate on the "checkpoint_count" field.
func CheckpointCountIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldCheckpointCount, vs...))
}

// CheckpointCountNotIn applies the NotIn predicate on the "checkpoint_count" field.
func CheckpointCountNotIn(vs ...int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldCheckpointCount, vs...))
}

// CheckpointCountGT applies the GT predicate on the "checkpoint_count" field.
func CheckpointCountGT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldCheckpointCount, v))
}

// CheckpointCountGTE applies the GTE predicate on the "checkpoint_count" field.
func CheckpointCountGTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldCheckpointCount, v))
}

// CheckpointCountLT applies the LT predicate on the "checkpoint_count" field.
func CheckpointCountLT(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldCheckpointCount, v))
}

// CheckpointCountLTE applies the LTE predicate on the "checkpoint_count" field.
func CheckpointCountLTE(v int) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldCheckpointCount, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldResult))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldError))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotNull(FieldWarnings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionMetrics {
	return predicate.SessionMetrics(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.SessionMetrics {
	return predicate.SessionMetrics(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMetrics) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMetrics) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMetrics) predicate.SessionMetrics {
	return predicate.SessionMetrics(sql.NotPredicates(p))
}
