// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Checkpoint is the predicate function for checkpoint builders.
type Checkpoint func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ExecutionContext is the predicate function for executioncontext builders.
type ExecutionContext func(*sql.Selector)

// FineTuningJob is the predicate function for finetuningjob builders.
type FineTuningJob func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionMetrics is the predicate function for sessionmetrics builders.
type SessionMetrics func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)
