package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: one work unit
// within a session. Dependencies and the estimate are stored as JSON; the
// in-memory graph semantics live in pkg/taskgraph.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("parent_task_id").
			Optional().
			Nillable(),
		field.String("title").
			NotEmpty().
			Comment("Must begin with an action verb"),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "ready", "assigned", "in_progress", "blocked",
				"paused", "completed", "failed", "cancelled", "skipped").
			Default("pending"),
		field.Enum("priority").
			Values("critical", "high", "medium", "low", "deferred").
			Default("medium"),
		field.JSON("estimate", map[string]interface{}{}).
			Optional().
			Comment("PERT triple plus tokens/cost/confidence"),
		field.JSON("dependencies", []map[string]interface{}{}).
			Optional().
			Comment("Edges {task_id, type}"),
		field.JSON("dependents", []string{}).
			Optional(),
		field.JSON("required_capabilities", []string{}).
			Optional(),
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("failed_at").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.String("error").
			Optional().
			Nillable(),
		field.JSON("artifacts", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("tasks").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("session", Session.Type).
			Ref("tasks").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("tenant_id"),
		index.Fields("status"),
		index.Fields("parent_task_id"),
		index.Fields("assigned_agent_id"),
		index.Fields("session_id", "status"),
	}
}
