package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FineTuningJob holds the schema definition for fine-tuning jobs. A storage
// collaborator with its own state machine; it shares the lock manager and
// tenancy model but adds no scheduling logic.
type FineTuningJob struct {
	ent.Schema
}

// Fields of the FineTuningJob.
func (FineTuningJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("status").
			Values("pending", "queued", "running", "evaluating",
				"completed", "failed", "cancelled").
			Default("pending"),
		field.String("base_model").
			NotEmpty(),
		field.String("tuned_model").
			Optional().
			Nillable(),
		field.JSON("dataset_info", map[string]interface{}{}).
			Optional(),
		field.JSON("hyperparameters", map[string]interface{}{}).
			Optional(),
		field.JSON("evaluation", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the FineTuningJob.
func (FineTuningJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("fine_tuning_jobs").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FineTuningJob.
func (FineTuningJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("status"),
	}
}
