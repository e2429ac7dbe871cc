// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestro-hq/maestro/ent/finetuningjob"
	"github.com/maestro-hq/maestro/ent/tenant"
)

// FineTuningJob is the model entity for the FineTuningJob schema.
type FineTuningJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status finetuningjob.Status `json:"status,omitempty"`
	// BaseModel holds the value of the "base_model" field.
	BaseModel string `json:"base_model,omitempty"`
	// TunedModel holds the value of the "tuned_model" field.
	TunedModel *string `json:"tuned_model,omitempty"`
	// DatasetInfo holds the value of the "dataset_info" field.
	DatasetInfo map[string]interface{} `json:"dataset_info,omitempty"`
	// Hyperparameters holds the value of the "hyperparameters" field.
	Hyperparameters map[string]interface{} `json:"hyperparameters,omitempty"`
	// Evaluation holds the value of the "evaluation" field.
	Evaluation map[string]interface{} `json:"evaluation,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FineTuningJobQuery when eager-loading is set.
	Edges        FineTuningJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FineTuningJobEdges holds the relations/edges for other nodes in the graph.
type FineTuningJobEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FineTuningJobEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FineTuningJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case finetuningjob.FieldDatasetInfo, finetuningjob.FieldHyperparameters, finetuningjob.FieldEvaluation:
			values[i] = new([]byte)
		case finetuningjob.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case finetuningjob.FieldID, finetuningjob.FieldTenantID, finetuningjob.FieldName, finetuningjob.FieldStatus, finetuningjob.FieldBaseModel, finetuningjob.FieldTunedModel, finetuningjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case finetuningjob.FieldStartedAt, finetuningjob.FieldCompletedAt, finetuningjob.FieldCreatedAt, finetuningjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FineTuningJob fields.
func (_m *FineTuningJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case finetuningjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case finetuningjob.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case finetuningjob.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case finetuningjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = finetuningjob.Status(value.String)
			}
		case finetuningjob.FieldBaseModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field base_model", values[i])
			} else if value.Valid {
				_m.BaseModel = value.String
			}
		case finetuningjob.FieldTunedModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tuned_model", values[i])
			} else if value.Valid {
				_m.TunedModel = new(string)
				*_m.TunedModel = value.String
			}
		case finetuningjob.FieldDatasetInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dataset_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DatasetInfo); err != nil {
					return fmt.Errorf("unmarshal field dataset_info: %w", err)
				}
			}
		case finetuningjob.FieldHyperparameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hyperparameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Hyperparameters); err != nil {
					return fmt.Errorf("unmarshal field hyperparameters: %w", err)
				}
			}
		case finetuningjob.FieldEvaluation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evaluation); err != nil {
					return fmt.Errorf("unmarshal field evaluation: %w", err)
				}
			}
		case finetuningjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case finetuningjob.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case finetuningjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case finetuningjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case finetuningjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case finetuningjob.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FineTuningJob.
// This includes values selected through modifiers, order, etc.
func (_m *FineTuningJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the FineTuningJob entity.
func (_m *FineTuningJob) QueryTenant() *TenantQuery {
	return NewFineTuningJobClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this FineTuningJob.
// Note that you need to call FineTuningJob.Unwrap() before calling this method if this FineTuningJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FineTuningJob) Update() *FineTuningJobUpdateOne {
	return NewFineTuningJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FineTuningJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FineTuningJob) Unwrap() *FineTuningJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FineTuningJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FineTuningJob) String() string {
	var builder strings.Builder
	builder.WriteString("FineTuningJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("base_model=")
	builder.WriteString(_m.BaseModel)
	builder.WriteString(", ")
	if v := _m.TunedModel; v != nil {
		builder.WriteString("tuned_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("dataset_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatasetInfo))
	builder.WriteString(", ")
	builder.WriteString("hyperparameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hyperparameters))
	builder.WriteString(", ")
	builder.WriteString("evaluation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evaluation))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
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
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FineTuningJobs is a parsable slice of FineTuningJob.
type FineTuningJobs []*FineTuningJob
