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
)

// SessionMetrics is the model entity for the SessionMetrics schema.
type SessionMetrics struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// QueuedAt holds the value of the "queued_at" field.
	QueuedAt *time.Time `json:"queued_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// FailedAt holds the value of the "failed_at" field.
	FailedAt *time.Time `json:"failed_at,omitempty"`
	// SuccessRate holds the value of the "success_rate" field.
	SuccessRate *float64 `json:"success_rate,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// CostUsd holds the value of the "cost_usd" field.
	CostUsd float64 `json:"cost_usd,omitempty"`
	// APICalls holds the value of the "api_calls" field.
	APICalls int `json:"api_calls,omitempty"`
	// APIErrors holds the value of the "api_errors" field.
	APIErrors int `json:"api_errors,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// CheckpointCount holds the value of the "checkpoint_count" field.
	CheckpointCount int `json:"checkpoint_count,omitempty"`
	// Result holds the value of the "result" field.
	Result map[string]interface{} `json:"result,omitempty"`
	// Last failure: type, source, agent, attempt, message
	Error map[string]interface{} `json:"error,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings []string `json:"warnings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionMetricsQuery when eager-loading is set.
	Edges        SessionMetricsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionMetricsEdges holds the relations/edges for other nodes in the graph.
type SessionMetricsEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionMetricsEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionMetrics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionmetrics.FieldResult, sessionmetrics.FieldError, sessionmetrics.FieldWarnings:
			values[i] = new([]byte)
		case sessionmetrics.FieldSuccessRate, sessionmetrics.FieldConfidence, sessionmetrics.FieldCostUsd:
			values[i] = new(sql.NullFloat64)
		case sessionmetrics.FieldTotalTokens, sessionmetrics.FieldAPICalls, sessionmetrics.FieldAPIErrors, sessionmetrics.FieldRetryCount, sessionmetrics.FieldCheckpointCount:
			values[i] = new(sql.NullInt64)
		case sessionmetrics.FieldID:
			values[i] = new(sql.NullString)
		case sessionmetrics.FieldQueuedAt, sessionmetrics.FieldStartedAt, sessionmetrics.FieldCompletedAt, sessionmetrics.FieldFailedAt, sessionmetrics.FieldCreatedAt, sessionmetrics.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionMetrics fields.
func (_m *SessionMetrics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionmetrics.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionmetrics.FieldQueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field queued_at", values[i])
			} else if value.Valid {
				_m.QueuedAt = new(time.Time)
				*_m.QueuedAt = value.Time
			}
		case sessionmetrics.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case sessionmetrics.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case sessionmetrics.FieldFailedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field failed_at", values[i])
			} else if value.Valid {
				_m.FailedAt = new(time.Time)
				*_m.FailedAt = value.Time
			}
		case sessionmetrics.FieldSuccessRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field success_rate", values[i])
			} else if value.Valid {
				_m.SuccessRate = new(float64)
				*_m.SuccessRate = value.Float64
			}
		case sessionmetrics.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case sessionmetrics.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case sessionmetrics.FieldCostUsd:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_usd", values[i])
			} else if value.Valid {
				_m.CostUsd = value.Float64
			}
		case sessionmetrics.FieldAPICalls:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field api_calls", values[i])
			} else if value.Valid {
				_m.APICalls = int(value.Int64)
			}
		case sessionmetrics.FieldAPIErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field api_errors", values[i])
			} else if value.Valid {
				_m.APIErrors = int(value.Int64)
			}
		case sessionmetrics.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case sessionmetrics.FieldCheckpointCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_count", values[i])
			} else if value.Valid {
				_m.CheckpointCount = int(value.Int64)
			}
		case sessionmetrics.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case sessionmetrics.FieldError:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Error); err != nil {
					return fmt.Errorf("unmarshal field error: %w", err)
				}
			}
		case sessionmetrics.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case sessionmetrics.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionmetrics.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionMetrics.
// This includes values selected through modifiers, order, etc.
func (_m *SessionMetrics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionMetrics entity.
func (_m *SessionMetrics) QuerySession() *SessionQuery {
	return NewSessionMetricsClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SessionMetrics.
// Note that you need to call SessionMetrics.Unwrap() before calling this method if this SessionMetrics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionMetrics) Update() *SessionMetricsUpdateOne {
	return NewSessionMetricsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionMetrics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionMetrics) Unwrap() *SessionMetrics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionMetrics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionMetrics) String() string {
	var builder strings.Builder
	builder.WriteString("SessionMetrics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.QueuedAt; v != nil {
		builder.WriteString("queued_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FailedAt; v != nil {
		builder.WriteString("failed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SuccessRate; v != nil {
		builder.WriteString("success_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	builder.WriteString("cost_usd=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostUsd))
	builder.WriteString(", ")
	builder.WriteString("api_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.APICalls))
	builder.WriteString(", ")
	builder.WriteString("api_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.APIErrors))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("checkpoint_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CheckpointCount))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(fmt.Sprintf("%v", _m.Error))
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionMetricsSlice is a parsable slice of SessionMetrics.
type SessionMetricsSlice []*SessionMetrics
