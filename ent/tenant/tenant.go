// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tenant type in the database.
	Label = "tenant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldMaxConcurrentSessions holds the string denoting the max_concurrent_sessions field in the database.
	FieldMaxConcurrentSessions = "max_concurrent_sessions"
	// FieldMaxTokensPerMonth holds the string denoting the max_tokens_per_month field in the database.
	FieldMaxTokensPerMonth = "max_tokens_per_month"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeContexts holds the string denoting the contexts edge name in mutations.
	EdgeContexts = "contexts"
	// EdgeFineTuningJobs holds the string denoting the fine_tuning_jobs edge name in mutations.
	EdgeFineTuningJobs = "fine_tuning_jobs"
	// Table holds the table name of the tenant in the database.
	Table = "tenants"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "sessions"
	// SessionsInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionsInverseTable = "sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "tenant_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "tenant_id"
	// ContextsTable is the table that holds the contexts relation/edge.
	ContextsTable = "execution_contexts"
	// ContextsInverseTable is the table name for the ExecutionContext entity.
	// It exists in this package in order to avoid circular dependency with the "executioncontext" package.
	ContextsInverseTable = "execution_contexts"
	// ContextsColumn is the table column denoting the contexts relation/edge.
	ContextsColumn = "tenant_id"
	// FineTuningJobsTable is the table that holds the fine_tuning_jobs relation/edge.
	FineTuningJobsTable = "fine_tuning_jobs"
	// FineTuningJobsInverseTable is the table name for the FineTuningJob entity.
	// It exists in this package in order to avoid circular dependency with the "finetuningjob" package.
	FineTuningJobsInverseTable = "fine_tuning_jobs"
	// FineTuningJobsColumn is the table column denoting the fine_tuning_jobs relation/edge.
	FineTuningJobsColumn = "tenant_id"
)

// Columns holds all SQL columns for tenant fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSlug,
	FieldMaxConcurrentSessions,
	FieldMaxTokensPerMonth,
	FieldActive,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultMaxConcurrentSessions holds the default value on creation for the "max_concurrent_sessions" field.
	DefaultMaxConcurrentSessions int
	// MaxConcurrentSessionsValidator is a validator for the "max_concurrent_sessions" field. It is called by the builders before save.
	MaxConcurrentSessionsValidator func(int) error
	// DefaultMaxTokensPerMonth holds the default value on creation for the "max_tokens_per_month" field.
	DefaultMaxTokensPerMonth int64
	// MaxTokensPerMonthValidator is a validator for the "max_tokens_per_month" field. It is called by the builders before save.
	MaxTokensPerMonthValidator func(int64) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Tenant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByMaxConcurrentSessions orders the results by the max_concurrent_sessions field.
func ByMaxConcurrentSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxConcurrentSessions, opts...).ToFunc()
}

// ByMaxTokensPerMonth orders the results by the max_tokens_per_month field.
func ByMaxTokensPerMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokensPerMonth, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByFineTuningJobsCount orders the results by fine_tuning_jobs count.
func ByFineTuningJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFineTuningJobsStep(), opts...)
	}
}

// ByFineTuningJobs orders the results by fine_tuning_jobs terms.
func ByFineTuningJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFineTuningJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
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
func newFineTuningJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FineTuningJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FineTuningJobsTable, FineTuningJobsColumn),
	)
}
