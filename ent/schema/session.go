package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity: one unit of
// orchestrated work.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("title").
			MaxLen(200).
			NotEmpty(),
		field.Text("description").
			Optional().
			Comment("Free-form description (full-text searchable)"),
		field.Enum("session_type").
			Values("planning", "execution", "review", "debug", "integration").
			Default("execution"),
		field.Enum("priority").
			Values("critical", "high", "medium", "low", "deferred").
			Default("medium"),
		field.Enum("status").
			Values("pending", "queued", "running", "paused", "degraded",
				"partially_completed", "completed", "failed", "timeout",
				"stopped", "cancelled", "orphaned").
			Default("pending"),
		field.Time("status_updated_at").
			Default(time.Now),
		field.String("parent_id").
			Optional().
			Nillable(),
		field.JSON("child_ids", []string{}).
			Optional().
			Comment("Denormalized; maintained by a database trigger"),
		field.JSON("agent_config", map[string]interface{}{}).
			Optional(),
		field.String("model_config").
			Optional().
			Nillable(),
		field.Text("initial_prompt").
			NotEmpty().
			MaxLen(10000),
		field.Int("max_duration_seconds").
			Default(3600).
			Min(60).
			Max(86400),
		field.Float("cpu_limit").
			Optional().
			Nillable().
			Min(0.1).
			Max(8.0),
		field.Int("memory_limit_mb").
			Optional().
			Nillable(),
		field.String("created_by").
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Int("version").
			Default(1).
			Comment("Optimistic locking; increments by exactly 1 per update"),
		field.String("metrics_id").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Claiming worker, for multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete; hidden from non-admin reads"),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("sessions").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("metrics", SessionMetrics.Type).
			Ref("session").
			Unique().
			Field("metrics_id"),
		edge.To("checkpoints", Checkpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("contexts", ExecutionContext.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("status"),
		index.Fields("parent_id"),

		// Queue claims order by priority then age within a status
		index.Fields("status", "priority", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("tenant_id", "status"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
