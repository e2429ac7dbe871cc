// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_sessions_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_session_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[5], CheckpointsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_sessions_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// ExecutionContextsColumns holds the columns for the "execution_contexts" table.
	ExecutionContextsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "scope", Type: field.TypeEnum, Enums: []string{"temporary", "session", "agent", "global"}, Default: "session"},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// ExecutionContextsTable holds the schema information for the "execution_contexts" table.
	ExecutionContextsTable = &schema.Table{
		Name:       "execution_contexts",
		Columns:    ExecutionContextsColumns,
		PrimaryKey: []*schema.Column{ExecutionContextsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_contexts_sessions_contexts",
				Columns:    []*schema.Column{ExecutionContextsColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "execution_contexts_tenants_contexts",
				Columns:    []*schema.Column{ExecutionContextsColumns[12]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executioncontext_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionContextsColumns[12]},
			},
			{
				Name:    "executioncontext_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionContextsColumns[11]},
			},
			{
				Name:    "executioncontext_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionContextsColumns[1]},
			},
			{
				Name:    "executioncontext_scope",
				Unique:  false,
				Columns: []*schema.Column{ExecutionContextsColumns[2]},
			},
			{
				Name:    "executioncontext_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionContextsColumns[8]},
			},
		},
	}
	// FineTuningJobsColumns holds the columns for the "fine_tuning_jobs" table.
	FineTuningJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "running", "evaluating", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "base_model", Type: field.TypeString},
		{Name: "tuned_model", Type: field.TypeString, Nullable: true},
		{Name: "dataset_info", Type: field.TypeJSON, Nullable: true},
		{Name: "hyperparameters", Type: field.TypeJSON, Nullable: true},
		{Name: "evaluation", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// FineTuningJobsTable holds the schema information for the "fine_tuning_jobs" table.
	FineTuningJobsTable = &schema.Table{
		Name:       "fine_tuning_jobs",
		Columns:    FineTuningJobsColumns,
		PrimaryKey: []*schema.Column{FineTuningJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fine_tuning_jobs_tenants_fine_tuning_jobs",
				Columns:    []*schema.Column{FineTuningJobsColumns[14]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "finetuningjob_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{FineTuningJobsColumns[14]},
			},
			{
				Name:    "finetuningjob_status",
				Unique:  false,
				Columns: []*schema.Column{FineTuningJobsColumns[2]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_type", Type: field.TypeEnum, Enums: []string{"planning", "execution", "review", "debug", "integration"}, Default: "execution"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low", "deferred"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "running", "paused", "degraded", "partially_completed", "completed", "failed", "timeout", "stopped", "cancelled", "orphaned"}, Default: "pending"},
		{Name: "status_updated_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "child_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_config", Type: field.TypeJSON, Nullable: true},
		{Name: "model_config", Type: field.TypeString, Nullable: true},
		{Name: "initial_prompt", Type: field.TypeString, Size: 10000},
		{Name: "max_duration_seconds", Type: field.TypeInt, Default: 3600},
		{Name: "cpu_limit", Type: field.TypeFloat64, Nullable: true},
		{Name: "memory_limit_mb", Type: field.TypeInt, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "metrics_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_session_metrics_session",
				Columns:    []*schema.Column{SessionsColumns[24]},
				RefColumns: []*schema.Column{SessionMetricsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "sessions_tenants_sessions",
				Columns:    []*schema.Column{SessionsColumns[25]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[25]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5]},
			},
			{
				Name:    "session_parent_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7]},
			},
			{
				Name:    "session_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5], SessionsColumns[4], SessionsColumns[21]},
			},
			{
				Name:    "session_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5], SessionsColumns[20]},
			},
			{
				Name:    "session_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[25], SessionsColumns[5]},
			},
			{
				Name:    "session_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[23]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// SessionMetricsColumns holds the columns for the "session_metrics" table.
	SessionMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "queued_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "success_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "api_calls", Type: field.TypeInt, Default: 0},
		{Name: "api_errors", Type: field.TypeInt, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "checkpoint_count", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeJSON, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionMetricsTable holds the schema information for the "session_metrics" table.
	SessionMetricsTable = &schema.Table{
		Name:       "session_metrics",
		Columns:    SessionMetricsColumns,
		PrimaryKey: []*schema.Column{SessionMetricsColumns[0]},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "ready", "assigned", "in_progress", "blocked", "paused", "completed", "failed", "cancelled", "skipped"}, Default: "pending"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low", "deferred"}, Default: "medium"},
		{Name: "estimate", Type: field.TypeJSON, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "dependents", Type: field.TypeJSON, Nullable: true},
		{Name: "required_capabilities", Type: field.TypeJSON, Nullable: true},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_sessions_tasks",
				Columns:    []*schema.Column{TasksColumns[19]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tasks_tenants_tasks",
				Columns:    []*schema.Column{TasksColumns[20]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_session_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[19]},
			},
			{
				Name:    "task_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[20]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_parent_task_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[10]},
			},
			{
				Name:    "task_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[19], TasksColumns[4]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "max_concurrent_sessions", Type: field.TypeInt, Default: 10},
		{Name: "max_tokens_per_month", Type: field.TypeInt64, Default: 1000000},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_slug",
				Unique:  true,
				Columns: []*schema.Column{TenantsColumns[2]},
			},
			{
				Name:    "tenant_active",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		EventsTable,
		ExecutionContextsTable,
		FineTuningJobsTable,
		SessionsTable,
		SessionMetricsTable,
		TasksTable,
		TenantsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = SessionsTable
	EventsTable.ForeignKeys[0].RefTable = SessionsTable
	ExecutionContextsTable.ForeignKeys[0].RefTable = SessionsTable
	ExecutionContextsTable.ForeignKeys[1].RefTable = TenantsTable
	FineTuningJobsTable.ForeignKeys[0].RefTable = TenantsTable
	SessionsTable.ForeignKeys[0].RefTable = SessionMetricsTable
	SessionsTable.ForeignKeys[1].RefTable = TenantsTable
	TasksTable.ForeignKeys[0].RefTable = SessionsTable
	TasksTable.ForeignKeys[1].RefTable = TenantsTable
}
