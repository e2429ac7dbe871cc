// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/sessionmetrics"
	"github.com/maestro-hq/maestro/ent/tenant"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Free-form description (full-text searchable)
	Description string `json:"description,omitempty"`
	// SessionType holds the value of the "session_type" field.
	SessionType session.SessionType `json:"session_type,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority session.Priority `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// StatusUpdatedAt holds the value of the "status_updated_at" field.
	StatusUpdatedAt time.Time `json:"status_updated_at,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID *string `json:"parent_id,omitempty"`
	// Denormalized; maintained by a database trigger
	ChildIds []string `json:"child_ids,omitempty"`
	// AgentConfig holds the value of the "agent_config" field.
	AgentConfig map[string]interface{} `json:"agent_config,omitempty"`
	// ModelConfig holds the value of the "model_config" field.
	ModelConfig *string `json:"model_config,omitempty"`
	// InitialPrompt holds the value of the "initial_prompt" field.
	InitialPrompt string `json:"initial_prompt,omitempty"`
	// MaxDurationSeconds holds the value of the "max_duration_seconds" field.
	MaxDurationSeconds int `json:"max_duration_seconds,omitempty"`
	// CPULimit holds the value of the "cpu_limit" field.
	CPULimit *float64 `json:"cpu_limit,omitempty"`
	// MemoryLimitMB holds the value of the "memory_limit_mb" field.
	MemoryLimitMB *int `json:"memory_limit_mb,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Optimistic locking; increments by exactly 1 per update
	Version int `json:"version,omitempty"`
	// MetricsID holds the value of the "metrics_id" field.
	MetricsID *string `json:"metrics_id,omitempty"`
	// Claiming worker, for multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete; hidden from non-admin reads
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// Metrics holds the value of the metrics edge.
	Metrics *SessionMetrics `json:"metrics,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*Checkpoint `json:"checkpoints,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Contexts holds the value of the contexts edge.
	Contexts []*ExecutionContext `json:"contexts,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// MetricsOrErr returns the Metrics value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionEdges) MetricsOrErr() (*SessionMetrics, error) {
	if e.Metrics != nil {
		return e.Metrics, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: sessionmetrics.Label}
	}
	return nil, &NotLoadedError{edge: "metrics"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) CheckpointsOrErr() ([]*Checkpoint, error) {
	if e.loadedTypes[2] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[3] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// ContextsOrErr returns the Contexts value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) ContextsOrErr() ([]*ExecutionContext, error) {
	if e.loadedTypes[4] {
		return e.Contexts, nil
	}
	return nil, &NotLoadedError{edge: "contexts"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[5] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldChildIds, session.FieldAgentConfig, session.FieldTags, session.FieldMetadata:
			values[i] = new([]byte)
		case session.FieldCPULimit:
			values[i] = new(sql.NullFloat64)
		case session.FieldMaxDurationSeconds, session.FieldMemoryLimitMB, session.FieldVersion:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldTenantID, session.FieldTitle, session.FieldDescription, session.FieldSessionType, session.FieldPriority, session.FieldStatus, session.FieldParentID, session.FieldModelConfig, session.FieldInitialPrompt, session.FieldCreatedBy, session.FieldMetricsID, session.FieldPodID:
			values[i] = new(sql.NullString)
		case session.FieldStatusUpdatedAt, session.FieldLastHeartbeatAt, session.FieldCreatedAt, session.FieldUpdatedAt, session.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case session.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case session.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case session.FieldSessionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_type", values[i])
			} else if value.Valid {
				_m.SessionType = session.SessionType(value.String)
			}
		case session.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = session.Priority(value.String)
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldStatusUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field status_updated_at", values[i])
			} else if value.Valid {
				_m.StatusUpdatedAt = value.Time
			}
		case session.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case session.FieldChildIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field child_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChildIds); err != nil {
					return fmt.Errorf("unmarshal field child_ids: %w", err)
				}
			}
		case session.FieldAgentConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentConfig); err != nil {
					return fmt.Errorf("unmarshal field agent_config: %w", err)
				}
			}
		case session.FieldModelConfig:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_config", values[i])
			} else if value.Valid {
				_m.ModelConfig = new(string)
				*_m.ModelConfig = value.String
			}
		case session.FieldInitialPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_prompt", values[i])
			} else if value.Valid {
				_m.InitialPrompt = value.String
			}
		case session.FieldMaxDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_duration_seconds", values[i])
			} else if value.Valid {
				_m.MaxDurationSeconds = int(value.Int64)
			}
		case session.FieldCPULimit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cpu_limit", values[i])
			} else if value.Valid {
				_m.CPULimit = new(float64)
				*_m.CPULimit = value.Float64
			}
		case session.FieldMemoryLimitMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_limit_mb", values[i])
			} else if value.Valid {
				_m.MemoryLimitMB = new(int)
				*_m.MemoryLimitMB = int(value.Int64)
			}
		case session.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case session.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case session.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case session.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case session.FieldMetricsID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metrics_id", values[i])
			} else if value.Valid {
				_m.MetricsID = new(string)
				*_m.MetricsID = value.String
			}
		case session.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case session.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case session.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the Session entity.
func (_m *Session) QueryTenant() *TenantQuery {
	return NewSessionClient(_m.config).QueryTenant(_m)
}

// QueryMetrics queries the "metrics" edge of the Session entity.
func (_m *Session) QueryMetrics() *SessionMetricsQuery {
	return NewSessionClient(_m.config).QueryMetrics(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Session entity.
func (_m *Session) QueryCheckpoints() *CheckpointQuery {
	return NewSessionClient(_m.config).QueryCheckpoints(_m)
}

// QueryTasks queries the "tasks" edge of the Session entity.
func (_m *Session) QueryTasks() *TaskQuery {
	return NewSessionClient(_m.config).QueryTasks(_m)
}

// QueryContexts queries the "contexts" edge of the Session entity.
func (_m *Session) QueryContexts() *ExecutionContextQuery {
	return NewSessionClient(_m.config).QueryContexts(_m)
}

// QueryEvents queries the "events" edge of the Session entity.
func (_m *Session) QueryEvents() *EventQuery {
	return NewSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("session_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionType))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("status_updated_at=")
	builder.WriteString(_m.StatusUpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("child_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChildIds))
	builder.WriteString(", ")
	builder.WriteString("agent_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentConfig))
	builder.WriteString(", ")
	if v := _m.ModelConfig; v != nil {
		builder.WriteString("model_config=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("initial_prompt=")
	builder.WriteString(_m.InitialPrompt)
	builder.WriteString(", ")
	builder.WriteString("max_duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxDurationSeconds))
	builder.WriteString(", ")
	if v := _m.CPULimit; v != nil {
		builder.WriteString("cpu_limit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MemoryLimitMB; v != nil {
		builder.WriteString("memory_limit_mb=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	if v := _m.MetricsID; v != nil {
		builder.WriteString("metrics_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
