package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/finetuningjob"
	"github.com/maestro-hq/maestro/pkg/domain"
	"github.com/maestro-hq/maestro/pkg/lock"
	"github.com/maestro-hq/maestro/pkg/tenancy"
)

// FineTuningService manages fine-tuning jobs: a storage collaborator with
// its own state machine that shares the kernel's tenancy and locking.
type FineTuningService struct {
	client *ent.Client
	locks  *lock.Manager
	logger *slog.Logger
}

// NewFineTuningService creates a new FineTuningService. locks may be nil.
func NewFineTuningService(client *ent.Client, locks *lock.Manager) *FineTuningService {
	return &FineTuningService{
		client: client,
		locks:  locks,
		logger: slog.With("component", "finetuning_service"),
	}
}

// CreateFineTuningJobRequest carries the fields for job creation.
type CreateFineTuningJobRequest struct {
	Name            string
	BaseModel       string
	DatasetInfo     map[string]any
	Hyperparameters map[string]any
}

// CreateJob creates a fine-tuning job in pending state.
func (s *FineTuningService) CreateJob(ctx context.Context, req CreateFineTuningJobRequest) (*ent.FineTuningJob, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.BaseModel == "" {
		return nil, NewValidationError("base_model", "required")
	}

	builder := s.client.FineTuningJob.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetName(req.Name).
		SetBaseModel(req.BaseModel).
		SetStatus(finetuningjob.StatusPending)
	if req.DatasetInfo != nil {
		builder.SetDatasetInfo(req.DatasetInfo)
	}
	if req.Hyperparameters != nil {
		builder.SetHyperparameters(req.Hyperparameters)
	}

	job, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create fine-tuning job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job scoped to the tenant in ctx.
func (s *FineTuningService) GetJob(ctx context.Context, id string) (*ent.FineTuningJob, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}
	job, err := s.client.FineTuningJob.Query().
		Where(finetuningjob.IDEQ(id), finetuningjob.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get fine-tuning job: %w", err)
	}
	return job, nil
}

// ListJobs returns the tenant's jobs, newest first.
func (s *FineTuningService) ListJobs(ctx context.Context, status string) ([]*ent.FineTuningJob, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}
	query := s.client.FineTuningJob.Query().
		Where(finetuningjob.TenantIDEQ(tenantID))
	if status != "" {
		query = query.Where(finetuningjob.StatusEQ(finetuningjob.Status(status)))
	}
	jobs, err := query.Order(ent.Desc(finetuningjob.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fine-tuning jobs: %w", err)
	}
	return jobs, nil
}

// TransitionJob moves a job through its state machine under a job lock,
// stamping lifecycle timestamps and recording failures.
func (s *FineTuningService) TransitionJob(ctx context.Context, id string, to domain.FineTuningStatus, detail string) (*ent.FineTuningJob, error) {
	var out *ent.FineTuningJob
	err := s.withJobLock(ctx, id, func(ctx context.Context) error {
		job, err := s.GetJob(ctx, id)
		if err != nil {
			return err
		}
		from := domain.FineTuningStatus(job.Status)
		if !domain.CanTransitionFineTuning(from, to) {
			return &TransitionError{Entity: "fine_tuning_job", From: string(from), To: string(to)}
		}

		update := s.client.FineTuningJob.UpdateOneID(id).
			SetStatus(finetuningjob.Status(to))
		now := time.Now()
		switch to {
		case domain.FineTuningRunning:
			if job.StartedAt == nil {
				update.SetStartedAt(now)
			}
		case domain.FineTuningCompleted, domain.FineTuningFailed, domain.FineTuningCancelled:
			update.SetCompletedAt(now)
		}
		if to == domain.FineTuningFailed && detail != "" {
			update.SetErrorMessage(detail)
		}
		if to == domain.FineTuningCompleted && detail != "" {
			update.SetTunedModel(detail)
		}

		out, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to transition fine-tuning job: %w", err)
		}
		return nil
	})
	return out, err
}

// RetryJob resets a failed or cancelled job back to pending and bumps its
// retry counter.
func (s *FineTuningService) RetryJob(ctx context.Context, id string) (*ent.FineTuningJob, error) {
	var out *ent.FineTuningJob
	err := s.withJobLock(ctx, id, func(ctx context.Context) error {
		job, err := s.GetJob(ctx, id)
		if err != nil {
			return err
		}
		from := domain.FineTuningStatus(job.Status)
		if !domain.CanTransitionFineTuning(from, domain.FineTuningPending) {
			return &TransitionError{Entity: "fine_tuning_job", From: string(from), To: string(domain.FineTuningPending)}
		}

		out, err = s.client.FineTuningJob.UpdateOneID(id).
			SetStatus(finetuningjob.StatusPending).
			AddRetryCount(1).
			ClearErrorMessage().
			ClearStartedAt().
			ClearCompletedAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to retry fine-tuning job: %w", err)
		}
		return nil
	})
	return out, err
}

// RecordEvaluation stores evaluation metrics on a job in evaluating state.
func (s *FineTuningService) RecordEvaluation(ctx context.Context, id string, evaluation map[string]any) (*ent.FineTuningJob, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Status != finetuningjob.StatusEvaluating {
		return nil, NewValidationError("status", "job is not in evaluating state")
	}
	out, err := s.client.FineTuningJob.UpdateOneID(id).
		SetEvaluation(evaluation).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record evaluation: %w", err)
	}
	return out, nil
}

func (s *FineTuningService) withJobLock(ctx context.Context, id string, fn func(ctx context.Context) error) error {
	if s.locks == nil {
		return fn(ctx)
	}
	return s.locks.WithLock(ctx, "finetuning:"+id, lock.AcquireOptions{
		Blocking: true,
		Timeout:  10 * time.Second,
	}, fn)
}
