// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-hq/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTenantID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDescription, v))
}

// StatusUpdatedAt applies equality check predicate on the "status_updated_at" field. It's identical to StatusUpdatedAtEQ.
func StatusUpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatusUpdatedAt, v))
}

// ParentID applies equality check predicate on the "parent_id" field. It's identical to ParentIDEQ.
func ParentID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldParentID, v))
}

// ModelConfig applies equality check predicate on the "model_config" field. It's identical to ModelConfigEQ.
func ModelConfig(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldModelConfig, v))
}

// InitialPrompt applies equality check predicate on the "initial_prompt" field. It's identical to InitialPromptEQ.
func InitialPrompt(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInitialPrompt, v))
}

// MaxDurationSeconds applies equality check predicate on the "max_duration_seconds" field. It's identical to MaxDurationSecondsEQ.
func MaxDurationSeconds(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMaxDurationSeconds, v))
}

// CPULimit applies equality check predicate on the "cpu_limit" field. It's identical to CPULimitEQ.
func CPULimit(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCPULimit, v))
}

// MemoryLimitMB applies equality check predicate on the "memory_limit_mb" field. It's identical to MemoryLimitMBEQ.
func MemoryLimitMB(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMemoryLimitMB, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedBy, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldVersion, v))
}

// MetricsID applies equality check predicate on the "metrics_id" field. It's identical to MetricsIDEQ.
func MetricsID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMetricsID, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTenantID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldDescription, v))
}

// SessionTypeEQ applies the EQ predicate on the "session_type" field.
func SessionTypeEQ(v SessionType) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionType, v))
}

// SessionTypeNEQ applies the NEQ predicate on the "session_type" field.
func SessionTypeNEQ(v SessionType) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionType, v))
}

// SessionTypeIn applies the In predicate on the "session_type" field.
func SessionTypeIn(vs ...SessionType) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionType, vs...))
}

// SessionTypeNotIn applies the NotIn predicate on the "session_type" field.
func SessionTypeNotIn(vs ...SessionType) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionType, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusUpdatedAtEQ applies the EQ predicate on the "status_updated_at" field.
func StatusUpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatusUpdatedAt, v))
}

// StatusUpdatedAtNEQ applies the NEQ predicate on the "status_updated_at" field.
func StatusUpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatusUpdatedAt, v))
}

// StatusUpdatedAtIn applies the In predicate on the "status_updated_at" field.
func StatusUpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatusUpdatedAt, vs...))
}

// StatusUpdatedAtNotIn applies the NotIn predicate on the "status_updated_at" field.
func StatusUpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatusUpdatedAt, vs...))
}

// StatusUpdatedAtGT applies the GT predicate on the "status_updated_at" field.
func StatusUpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStatusUpdatedAt, v))
}

// StatusUpdatedAtGTE applies the GTE predicate on the "status_updated_at" field.
func StatusUpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStatusUpdatedAt, v))
}

// StatusUpdatedAtLT applies the LT predicate on the "status_updated_at" field.
func StatusUpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStatusUpdatedAt, v))
}

// StatusUpdatedAtLTE applies the LTE predicate on the "status_updated_at" field.
func StatusUpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStatusUpdatedAt, v))
}

// ParentIDEQ applies the EQ predicate on the "parent_id" field.
func ParentIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldParentID, v))
}

// ParentIDNEQ applies the NEQ predicate on the "parent_id" field.
func ParentIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldParentID, v))
}

// ParentIDIn applies the In predicate on the "parent_id" field.
func ParentIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldParentID, vs...))
}

// ParentIDNotIn applies the NotIn predicate on the "parent_id" field.
func ParentIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldParentID, vs...))
}

// ParentIDGT applies the GT predicate on the "parent_id" field.
func ParentIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldParentID, v))
}

// ParentIDGTE applies the GTE predicate on the "parent_id" field.
func ParentIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldParentID, v))
}

// ParentIDLT applies the LT predicate on the "parent_id" field.
func ParentIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldParentID, v))
}

// ParentIDLTE applies the LTE predicate on the "parent_id" field.
func ParentIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldParentID, v))
}

// ParentIDContains applies the Contains predicate on the "parent_id" field.
func ParentIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldParentID, v))
}

// ParentIDHasPrefix applies the HasPrefix predicate on the "parent_id" field.
func ParentIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldParentID, v))
}

// ParentIDHasSuffix applies the HasSuffix predicate on the "parent_id" field.
func ParentIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldParentID, v))
}

// ParentIDIsNil applies the IsNil predicate on the "parent_id" field.
func ParentIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldParentID))
}

// ParentIDNotNil applies the NotNil predicate on the "parent_id" field.
func ParentIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldParentID))
}

// ParentIDEqualFold applies the EqualFold predicate on the "parent_id" field.
func ParentIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldParentID, v))
}

// ParentIDContainsFold applies the ContainsFold predicate on the "parent_id" field.
func ParentIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldParentID, v))
}

// ChildIdsIsNil applies the IsNil predicate on the "child_ids" field.
func ChildIdsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldChildIds))
}

// ChildIdsNotNil applies the NotNil predicate on the "child_ids" field.
func ChildIdsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldChildIds))
}

// AgentConfigIsNil applies the IsNil predicate on the "agent_config" field.
func AgentConfigIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAgentConfig))
}

// AgentConfigNotNil applies the NotNil predicate on the "agent_config" field.
func AgentConfigNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAgentConfig))
}

// ModelConfigEQ applies the EQ predicate on the "model_config" field.
func ModelConfigEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldModelConfig, v))
}

// ModelConfigNEQ applies the NEQ predicate on the "model_config" field.
func ModelConfigNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldModelConfig, v))
}

// ModelConfigIn applies the In predicate on the "model_config" field.
func ModelConfigIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldModelConfig, vs...))
}

// ModelConfigNotIn applies the NotIn predicate on the "model_config" field.
func ModelConfigNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldModelConfig, vs...))
}

// ModelConfigGT applies the GT predicate on the "model_config" field.
func ModelConfigGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldModelConfig, v))
}

// ModelConfigGTE applies the GTE predicate on the "model_config" field.
func ModelConfigGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldModelConfig, v))
}

// ModelConfigLT applies the LT predicate on the "model_config" field.
func ModelConfigLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldModelConfig, v))
}

// ModelConfigLTE applies the LTE predicate on the "model_config" field.
func ModelConfigLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldModelConfig, v))
}

// ModelConfigContains applies the Contains predicate on the "model_config" field.
func ModelConfigContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldModelConfig, v))
}

// ModelConfigHasPrefix applies the HasPrefix predicate on the "model_config" field.
func ModelConfigHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldModelConfig, v))
}

// ModelConfigHasSuffix applies the HasSuffix predicate on the "model_config" field.
func ModelConfigHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldModelConfig, v))
}

// ModelConfigIsNil applies the IsNil predicate on the "model_config" field.
func ModelConfigIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldModelConfig))
}

// ModelConfigNotNil applies the NotNil predicate on the "model_config" field.
func ModelConfigNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldModelConfig))
}

// ModelConfigEqualFold applies the EqualFold predicate on the "model_config" field.
func ModelConfigEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldModelConfig, v))
}

// ModelConfigContainsFold applies the ContainsFold predicate on the "model_config" field.
func ModelConfigContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldModelConfig, v))
}

// InitialPromptEQ applies the EQ predicate on the "initial_prompt" field.
func InitialPromptEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInitialPrompt, v))
}

// InitialPromptNEQ applies the NEQ predicate on the "initial_prompt" field.
func InitialPromptNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldInitialPrompt, v))
}

// InitialPromptIn applies the In predicate on the "initial_prompt" field.
func InitialPromptIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldInitialPrompt, vs...))
}

// InitialPromptNotIn applies the NotIn predicate on the "initial_prompt" field.
func InitialPromptNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldInitialPrompt, vs...))
}

// InitialPromptGT applies the GT predicate on the "initial_prompt" field.
func InitialPromptGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldInitialPrompt, v))
}

// InitialPromptGTE applies the GTE predicate on the "initial_prompt" field.
func InitialPromptGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldInitialPrompt, v))
}

// InitialPromptLT applies the LT predicate on the "initial_prompt" field.
func InitialPromptLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldInitialPrompt, v))
}

// InitialPromptLTE applies the LTE predicate on the "initial_prompt" field.
func InitialPromptLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldInitialPrompt, v))
}

// InitialPromptContains applies the Contains predicate on the "initial_prompt" field.
func InitialPromptContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldInitialPrompt, v))
}

// InitialPromptHasPrefix applies the HasPrefix predicate on the "initial_prompt" field.
func InitialPromptHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldInitialPrompt, v))
}

// InitialPromptHasSuffix applies the HasSuffix predicate on the "initial_prompt" field.
func InitialPromptHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldInitialPrompt, v))
}

// InitialPromptEqualFold applies the EqualFold predicate on the "initial_prompt" field.
func InitialPromptEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldInitialPrompt, v))
}

// InitialPromptContainsFold applies the ContainsFold predicate on the "initial_prompt" field.
func InitialPromptContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldInitialPrompt, v))
}

// MaxDurationSecondsEQ applies the EQ predicate on the "max_duration_seconds" field.
func MaxDurationSecondsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMaxDurationSeconds, v))
}

// MaxDurationSecondsNEQ applies the NEQ predicate on the "max_duration_seconds" field.
func MaxDurationSecondsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMaxDurationSeconds, v))
}

// MaxDurationSecondsIn applies the In predicate on the "max_duration_seconds" field.
func MaxDurationSecondsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMaxDurationSeconds, vs...))
}

// MaxDurationSecondsNotIn applies the NotIn predicate on the "max_duration_seconds" field.
func MaxDurationSecondsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMaxDurationSeconds, vs...))
}

// MaxDurationSecondsGT applies the GT predicate on the "max_duration_seconds" field.
func MaxDurationSecondsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMaxDurationSeconds, v))
}

// MaxDurationSecondsGTE applies the GTE predicate on the "max_duration_seconds" field.
func MaxDurationSecondsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMaxDurationSeconds, v))
}

// MaxDurationSecondsLT applies the LT predicate on the "max_duration_seconds" field.
func MaxDurationSecondsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMaxDurationSeconds, v))
}

// MaxDurationSecondsLTE applies the LTE predicate on the "max_duration_seconds" field.
func MaxDurationSecondsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMaxDurationSeconds, v))
}

// CPULimitEQ applies the EQ predicate on the "cpu_limit" field.
func CPULimitEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCPULimit, v))
}

// CPULimitNEQ applies the NEQ predicate on the "cpu_limit" field.
func CPULimitNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCPULimit, v))
}

// CPULimitIn applies the In predicate on the "cpu_limit" field.
func CPULimitIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCPULimit, vs...))
}

// CPULimitNotIn applies the NotIn predicate on the "cpu_limit" field.
func CPULimitNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCPULimit, vs...))
}

// CPULimitGT applies the GT predicate on the "cpu_limit" field.
func CPULimitGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCPULimit, v))
}

// CPULimitGTE applies the GTE predicate on the "cpu_limit" field.
func CPULimitGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCPULimit, v))
}

// CPULimitLT applies the LT predicate on the "cpu_limit" field.
func CPULimitLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCPULimit, v))
}

// CPULimitLTE applies the LTE predicate on the "cpu_limit" field.
func CPULimitLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCPULimit, v))
}

// CPULimitIsNil applies the IsNil predicate on the "cpu_limit" field.
func CPULimitIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCPULimit))
}

// CPULimitNotNil applies the NotNil predicate on the "cpu_limit" field.
func CPULimitNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCPULimit))
}

// MemoryLimitMBEQ applies the EQ predicate on the "memory_limit_mb" field.
func MemoryLimitMBEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMemoryLimitMB, v))
}

// MemoryLimitMBNEQ applies the NEQ predicate on the "memory_limit_mb" field.
func MemoryLimitMBNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMemoryLimitMB, v))
}

// MemoryLimitMBIn applies the In predicate on the "memory_limit_mb" field.
func MemoryLimitMBIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMemoryLimitMB, vs...))
}

// MemoryLimitMBNotIn applies the NotIn predicate on the "memory_limit_mb" field.
func MemoryLimitMBNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMemoryLimitMB, vs...))
}

// MemoryLimitMBGT applies the GT predicate on the "memory_limit_mb" field.
func MemoryLimitMBGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMemoryLimitMB, v))
}

// MemoryLimitMBGTE applies the GTE predicate on the "memory_limit_mb" field.
func MemoryLimitMBGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMemoryLimitMB, v))
}

// MemoryLimitMBLT applies the LT predicate on the "memory_limit_mb" field.
func MemoryLimitMBLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMemoryLimitMB, v))
}

// MemoryLimitMBLTE applies the LTE predicate on the "memory_limit_mb" field.
func MemoryLimitMBLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMemoryLimitMB, v))
}

// MemoryLimitMBIsNil applies the IsNil predicate on the "memory_limit_mb" field.
func MemoryLimitMBIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMemoryLimitMB))
}

// MemoryLimitMBNotNil applies the NotNil predicate on the "memory_limit_mb" field.
func MemoryLimitMBNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMemoryLimitMB))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCreatedBy, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTags))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMetadata))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldVersion, v))
}

// MetricsIDEQ applies the EQ predicate on the "metrics_id" field.
func MetricsIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMetricsID, v))
}

// MetricsIDNEQ applies the NEQ predicate on the "metrics_id" field.
func MetricsIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMetricsID, v))
}

// MetricsIDIn applies the In predicate on the "metrics_id" field.
func MetricsIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMetricsID, vs...))
}

// MetricsIDNotIn applies the NotIn predicate on the "metrics_id" field.
func MetricsIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMetricsID, vs...))
}

// MetricsIDGT applies the GT predicate on the "metrics_id" field.
func MetricsIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMetricsID, v))
}

// MetricsIDGTE applies the GTE predicate on the "metrics_id" field.
func MetricsIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMetricsID, v))
}

// MetricsIDLT applies the LT predicate on the "metrics_id" field.
func MetricsIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMetricsID, v))
}

// MetricsIDLTE applies the LTE predicate on the "metrics_id" field.
func MetricsIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMetricsID, v))
}

// MetricsIDContains applies the Contains predicate on the "metrics_id" field.
func MetricsIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldMetricsID, v))
}

// MetricsIDHasPrefix applies the HasPrefix predicate on the "metrics_id" field.
func MetricsIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldMetricsID, v))
}

// MetricsIDHasSuffix applies the HasSuffix predicate on the "metrics_id" field.
func MetricsIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldMetricsID, v))
}

// MetricsIDIsNil applies the IsNil predicate on the "metrics_id" field.
func MetricsIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMetricsID))
}

// MetricsIDNotNil applies the NotNil predicate on the "metrics_id" field.
func MetricsIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMetricsID))
}

// MetricsIDEqualFold applies the EqualFold predicate on the "metrics_id" field.
func MetricsIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldMetricsID, v))
}

// MetricsIDContainsFold applies the ContainsFold predicate on the "metrics_id" field.
func MetricsIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldMetricsID, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDeletedAt))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMetrics applies the HasEdge predicate on the "metrics" edge.
func HasMetrics() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MetricsTable, MetricsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMetricsWith applies the HasEdge predicate on the "metrics" edge with a given conditions (other predicates).
func HasMetricsWith(preds ...predicate.SessionMetrics) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newMetricsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContexts applies the HasEdge predicate on the "contexts" edge.
func HasContexts() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContextsTable, ContextsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContextsWith applies the HasEdge predicate on the "contexts" edge with a given conditions (other predicates).
func HasContextsWith(preds ...predicate.ExecutionContext) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newContextsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
