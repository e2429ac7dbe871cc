package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// SessionMetrics holds the schema definition for per-session execution
// metrics. Timestamps cascade from status transitions.
type SessionMetrics struct {
	ent.Schema
}

// Fields of the SessionMetrics.
func (SessionMetrics) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Time("queued_at").
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
		field.Float("success_rate").
			Optional().
			Nillable().
			Min(0).
			Max(1),
		field.Float("confidence").
			Optional().
			Nillable().
			Min(0).
			Max(1),
		field.Int("total_tokens").
			Default(0),
		field.Float("cost_usd").
			Default(0),
		field.Int("api_calls").
			Default(0),
		field.Int("api_errors").
			Default(0),
		field.Int("retry_count").
			Default(0),
		field.Int("checkpoint_count").
			Default(0),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.JSON("error", map[string]interface{}{}).
			Optional().
			Comment("Last failure: type, source, agent, attempt, message"),
		field.JSON("warnings", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SessionMetrics.
func (SessionMetrics) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("session", Session.Type).
			Unique(),
	}
}
