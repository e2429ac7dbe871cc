// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSessionType holds the string denoting the session_type field in the database.
	FieldSessionType = "session_type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusUpdatedAt holds the string denoting the status_updated_at field in the database.
	FieldStatusUpdatedAt = "status_updated_at"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldChildIds holds the string denoting the child_ids field in the database.
	FieldChildIds = "child_ids"
	// FieldAgentConfig holds the string denoting the agent_config field in the database.
	FieldAgentConfig = "agent_config"
	// FieldModelConfig holds the string denoting the model_config field in the database.
	FieldModelConfig = "model_config"
	// FieldInitialPrompt holds the string denoting the initial_prompt field in the database.
	FieldInitialPrompt = "initial_prompt"
	// FieldMaxDurationSeconds holds the string denoting the max_duration_seconds field in the database.
	FieldMaxDurationSeconds = "max_duration_seconds"
	// FieldCPULimit holds the string denoting the cpu_limit field in the database.
	FieldCPULimit = "cpu_limit"
	// FieldMemoryLimitMB holds the string denoting the memory_limit_mb field in the database.
	FieldMemoryLimitMB = "memory_limit_mb"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldMetricsID holds the string denoting the metrics_id field in the database.
	FieldMetricsID = "metrics_id"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// EdgeMetrics holds the string denoting the metrics edge name in mutations.
	EdgeMetrics = "metrics"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeContexts holds the string denoting the contexts edge name in mutations.
	EdgeContexts = "contexts"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "sessions"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
	// MetricsTable is the table that holds the metrics relation/edge.
	MetricsTable = "sessions"
	// MetricsInverseTable is the table name for the SessionMetrics entity.
	// It exists in this package in order to avoid circular dependency with the "sessionmetrics" package.
	MetricsInverseTable = "session_metrics"
	// MetricsColumn is the table column denoting the metrics relation/edge.
	MetricsColumn = "metrics_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "checkpoints"
	// CheckpointsInverseTable is the table name for the Checkpoint entity.
	// It exists in this package in order to avoid circular dependency with the "checkpoint" package.
	CheckpointsInverseTable = "checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "session_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "session_id"
	// ContextsTable is the table that holds the contexts relation/edge.
	ContextsTable = "execution_contexts"
	// ContextsInverseTable is the table name for the ExecutionContext entity.
	// It exists in this package in order to avoid circular dependency with the "executioncontext" package.
	ContextsInverseTable = "execution_contexts"
	// ContextsColumn is the table column denoting the contexts relation/edge.
	ContextsColumn = "session_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldTitle,
	FieldDescription,
	FieldSessionType,
	FieldPriority,
	FieldStatus,
	FieldStatusUpdatedAt,
	FieldParentID,
	FieldChildIds,
	FieldAgentConfig,
	FieldModelConfig,
	FieldInitialPrompt,
	FieldMaxDurationSeconds,
	FieldCPULimit,
	FieldMemoryLimitMB,
	FieldCreatedBy,
	FieldTags,
	FieldMetadata,
	FieldVersion,
	FieldMetricsID,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
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

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultStatusUpdatedAt holds the default value on creation for the "status_updated_at" field.
	DefaultStatusUpdatedAt func() time.Time
	// InitialPromptValidator is a validator for the "initial_prompt" field. It is called by the builders before save.
	InitialPromptValidator func(string) error
	// DefaultMaxDurationSeconds holds the default value on creation for the "max_duration_seconds" field.
	DefaultMaxDurationSeconds int
	// MaxDurationSecondsValidator is a validator for the "max_duration_seconds" field. It is called by the builders before save.
	MaxDurationSecondsValidator func(int) error
	// CPULimitValidator is a validator for the "cpu_limit" field. It is called by the builders before save.
	CPULimitValidator func(float64) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SessionType defines the type for the "session_type" enum field.
type SessionType string

// SessionTypeExecution is the default value of the SessionType enum.
const DefaultSessionType = SessionTypeExecution

// SessionType values.
const (
	SessionTypePlanning    SessionType = "planning"
	SessionTypeExecution   SessionType = "execution"
	SessionTypeReview      SessionType = "review"
	SessionTypeDebug       SessionType = "debug"
	SessionTypeIntegration SessionType = "integration"
)

func (st SessionType) String() string {
	return string(st)
}

// SessionTypeValidator is a validator for the "session_type" field enum values. It is called by the builders before save.
func SessionTypeValidator(st SessionType) error {
	switch st {
	case SessionTypePlanning, SessionTypeExecution, SessionTypeReview, SessionTypeDebug, SessionTypeIntegration:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for session_type field: %q", st)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityDeferred Priority = "deferred"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityDeferred:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending            Status = "pending"
	StatusQueued             Status = "queued"
	StatusRunning            Status = "running"
	StatusPaused             Status = "paused"
	StatusDegraded           Status = "degraded"
	StatusPartiallyCompleted Status = "partially_completed"
	StatusCompleted          Status = "completed"
	StatusFailed             Status = "failed"
	StatusTimeout            Status = "timeout"
	StatusStopped            Status = "stopped"
	StatusCancelled          Status = "cancelled"
	StatusOrphaned           Status = "orphaned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusQueued, StatusRunning, StatusPaused, StatusDegraded, StatusPartiallyCompleted, StatusCompleted, StatusFailed, StatusTimeout, StatusStopped, StatusCancelled, StatusOrphaned:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySessionType orders the results by the session_type field.
func BySessionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStatusUpdatedAt orders the results by the status_updated_at field.
func ByStatusUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusUpdatedAt, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByModelConfig orders the results by the model_config field.
func ByModelConfig(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelConfig, opts...).ToFunc()
}

// ByInitialPrompt orders the results by the initial_prompt field.
func ByInitialPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialPrompt, opts...).ToFunc()
}

// ByMaxDurationSeconds orders the results by the max_duration_seconds field.
func ByMaxDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDurationSeconds, opts...).ToFunc()
}

// ByCPULimit orders the results by the cpu_limit field.
func ByCPULimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCPULimit, opts...).ToFunc()
}

// ByMemoryLimitMB orders the results by the memory_limit_mb field.
func ByMemoryLimitMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryLimitMB, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByMetricsID orders the results by the metrics_id field.
func ByMetricsID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricsID, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}

// ByMetricsField orders the results by metrics field.
func ByMetricsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMetricsStep(), sql.OrderByField(field, opts...))
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByContextsCount orders the results by contexts count.
func ByContextsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newContextsStep(), opts...)
	}
}

// ByContexts orders the results by contexts terms.
func ByContexts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContextsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
func newMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MetricsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MetricsTable, MetricsColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newContextsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContextsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ContextsTable, ContextsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
