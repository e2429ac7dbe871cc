package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionContext holds the schema definition for stored execution
// contexts: versioned scoped key-value documents.
type ExecutionContext struct {
	ent.Schema
}

// Fields of the ExecutionContext.
func (ExecutionContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("agent_id").
			Optional().
			Nillable(),
		field.Enum("scope").
			Values("temporary", "session", "agent", "global").
			Default("session"),
		field.JSON("data", map[string]interface{}{}).
			Optional(),
		field.Int("version").
			Default(1).
			Comment("Increments by 1 per set/delete; CAS on update"),
		field.String("created_by").
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("history", []map[string]interface{}{}).
			Optional().
			Comment("Bounded change log"),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Temporary scope TTL, default 1h"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ExecutionContext.
func (ExecutionContext) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("contexts").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("session", Session.Type).
			Ref("contexts").
			Field("session_id").
			Unique(),
	}
}

// Indexes of the ExecutionContext.
func (ExecutionContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("session_id"),
		index.Fields("agent_id"),
		index.Fields("scope"),
		index.Fields("expires_at"),
	}
}
