// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maestro-hq/maestro/ent/checkpoint"
	"github.com/maestro-hq/maestro/ent/event"
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/ent/finetuningjob"
	"github.com/maestro-hq/maestro/ent/schema"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/sessionmetrics"
	"github.com/maestro-hq/maestro/ent/task"
	"github.com/maestro-hq/maestro/ent/tenant"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescSequence is the schema descriptor for sequence field.
	checkpointDescSequence := checkpointFields[2].Descriptor()
	// checkpoint.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	checkpoint.SequenceValidator = checkpointDescSequence.Validators[0].(func(int) error)
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[5].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescChannel is the schema descriptor for channel field.
	eventDescChannel := eventFields[1].Descriptor()
	// event.ChannelValidator is a validator for the "channel" field. It is called by the builders before save.
	event.ChannelValidator = eventDescChannel.Validators[0].(func(string) error)
	// eventDescEventType is the schema descriptor for event_type field.
	eventDescEventType := eventFields[2].Descriptor()
	// event.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	event.EventTypeValidator = eventDescEventType.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[5].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executioncontextFields := schema.ExecutionContext{}.Fields()
	_ = executioncontextFields
	// executioncontextDescVersion is the schema descriptor for version field.
	executioncontextDescVersion := executioncontextFields[6].Descriptor()
	// executioncontext.DefaultVersion holds the default value on creation for the version field.
	executioncontext.DefaultVersion = executioncontextDescVersion.Default.(int)
	// executioncontextDescCreatedAt is the schema descriptor for created_at field.
	executioncontextDescCreatedAt := executioncontextFields[11].Descriptor()
	// executioncontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	executioncontext.DefaultCreatedAt = executioncontextDescCreatedAt.Default.(func() time.Time)
	// executioncontextDescUpdatedAt is the schema descriptor for updated_at field.
	executioncontextDescUpdatedAt := executioncontextFields[12].Descriptor()
	// executioncontext.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	executioncontext.DefaultUpdatedAt = executioncontextDescUpdatedAt.Default.(func() time.Time)
	// executioncontext.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	executioncontext.UpdateDefaultUpdatedAt = executioncontextDescUpdatedAt.UpdateDefault.(func() time.Time)
	finetuningjobFields := schema.FineTuningJob{}.Fields()
	_ = finetuningjobFields
	// finetuningjobDescName is the schema descriptor for name field.
	finetuningjobDescName := finetuningjobFields[2].Descriptor()
	// finetuningjob.NameValidator is a validator for the "name" field. It is called by the builders before save.
	finetuningjob.NameValidator = finetuningjobDescName.Validators[0].(func(string) error)
	// finetuningjobDescBaseModel is the schema descriptor for base_model field.
	finetuningjobDescBaseModel := finetuningjobFields[4].Descriptor()
	// finetuningjob.BaseModelValidator is a validator for the "base_model" field. It is called by the builders before save.
	finetuningjob.BaseModelValidator = finetuningjobDescBaseModel.Validators[0].(func(string) error)
	// finetuningjobDescRetryCount is the schema descriptor for retry_count field.
	finetuningjobDescRetryCount := finetuningjobFields[10].Descriptor()
	// finetuningjob.DefaultRetryCount holds the default value on creation for the retry_count field.
	finetuningjob.DefaultRetryCount = finetuningjobDescRetryCount.Default.(int)
	// finetuningjobDescCreatedAt is the schema descriptor for created_at field.
	finetuningjobDescCreatedAt := finetuningjobFields[13].Descriptor()
	// finetuningjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	finetuningjob.DefaultCreatedAt = finetuningjobDescCreatedAt.Default.(func() time.Time)
	// finetuningjobDescUpdatedAt is the schema descriptor for updated_at field.
	finetuningjobDescUpdatedAt := finetuningjobFields[14].Descriptor()
	// finetuningjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	finetuningjob.DefaultUpdatedAt = finetuningjobDescUpdatedAt.Default.(func() time.Time)
	// finetuningjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	finetuningjob.UpdateDefaultUpdatedAt = finetuningjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescTitle is the schema descriptor for title field.
	sessionDescTitle := sessionFields[2].Descriptor()
	// session.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	session.TitleValidator = func() func(string) error {
		validators := sessionDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionDescStatusUpdatedAt is the schema descriptor for status_updated_at field.
	sessionDescStatusUpdatedAt := sessionFields[7].Descriptor()
	// session.DefaultStatusUpdatedAt holds the default value on creation for the status_updated_at field.
	session.DefaultStatusUpdatedAt = sessionDescStatusUpdatedAt.Default.(func() time.Time)
	// sessionDescInitialPrompt is the schema descriptor for initial_prompt field.
	sessionDescInitialPrompt := sessionFields[12].Descriptor()
	// session.InitialPromptValidator is a validator for the "initial_prompt" field. It is called by the builders before save.
	session.InitialPromptValidator = func() func(string) error {
		validators := sessionDescInitialPrompt.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(initial_prompt string) error {
			for _, fn := range fns {
				if err := fn(initial_prompt); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionDescMaxDurationSeconds is the schema descriptor for max_duration_seconds field.
	sessionDescMaxDurationSeconds := sessionFields[13].Descriptor()
	// session.DefaultMaxDurationSeconds holds the default value on creation for the max_duration_seconds field.
	session.DefaultMaxDurationSeconds = sessionDescMaxDurationSeconds.Default.(int)
	// session.MaxDurationSecondsValidator is a validator for the "max_duration_seconds" field. It is called by the builders before save.
	session.MaxDurationSecondsValidator = func() func(int) error {
		validators := sessionDescMaxDurationSeconds.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(max_duration_seconds int) error {
			for _, fn := range fns {
				if err := fn(max_duration_seconds); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionDescCPULimit is the schema descriptor for cpu_limit field.
	sessionDescCPULimit := sessionFields[14].Descriptor()
	// session.CPULimitValidator is a validator for the "cpu_limit" field. It is called by the builders before save.
	session.CPULimitValidator = func() func(float64) error {
		validators := sessionDescCPULimit.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(cpu_limit float64) error {
			for _, fn := range fns {
				if err := fn(cpu_limit); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionDescVersion is the schema descriptor for version field.
	sessionDescVersion := sessionFields[19].Descriptor()
	// session.DefaultVersion holds the default value on creation for the version field.
	session.DefaultVersion = sessionDescVersion.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[23].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[24].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionmetricsFields := schema.SessionMetrics{}.Fields()
	_ = sessionmetricsFields
	// sessionmetricsDescSuccessRate is the schema descriptor for success_rate field.
	sessionmetricsDescSuccessRate := sessionmetricsFields[5].Descriptor()
	// sessionmetrics.SuccessRateValidator is a validator for the "success_rate" field. It is called by the builders before save.
	sessionmetrics.SuccessRateValidator = func() func(float64) error {
		validators := sessionmetricsDescSuccessRate.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(success_rate float64) error {
			for _, fn := range fns {
				if err := fn(success_rate); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionmetricsDescConfidence is the schema descriptor for confidence field.
	sessionmetricsDescConfidence := sessionmetricsFields[6].Descriptor()
	// sessionmetrics.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	sessionmetrics.ConfidenceValidator = func() func(float64) error {
		validators := sessionmetricsDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// sessionmetricsDescTotalTokens is the schema descriptor for total_tokens field.
	sessionmetricsDescTotalTokens := sessionmetricsFields[7].Descriptor()
	// sessionmetrics.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	sessionmetrics.DefaultTotalTokens = sessionmetricsDescTotalTokens.Default.(int)
	// sessionmetricsDescCostUsd is the schema descriptor for cost_usd field.
	sessionmetricsDescCostUsd := sessionmetricsFields[8].Descriptor()
	// sessionmetrics.DefaultCostUsd holds the default value on creation for the cost_usd field.
	sessionmetrics.DefaultCostUsd = sessionmetricsDescCostUsd.Default.(float64)
	// sessionmetricsDescAPICalls is the schema descriptor for api_calls field.
	sessionmetricsDescAPICalls := sessionmetricsFields[9].Descriptor()
	// sessionmetrics.DefaultAPICalls holds the default value on creation for the api_calls field.
	sessionmetrics.DefaultAPICalls = sessionmetricsDescAPICalls.Default.(int)
	// sessionmetricsDescAPIErrors is the schema descriptor for api_errors field.
	sessionmetricsDescAPIErrors := sessionmetricsFields[10].Descriptor()
	// sessionmetrics.DefaultAPIErrors holds the default value on creation for the api_errors field.
	sessionmetrics.DefaultAPIErrors = sessionmetricsDescAPIErrors.Default.(int)
	// sessionmetricsDescRetryCount is the schema descriptor for retry_count field.
	sessionmetricsDescRetryCount := sessionmetricsFields[11].Descriptor()
	// sessionmetrics.DefaultRetryCount holds the default value on creation for the retry_count field.
	sessionmetrics.DefaultRetryCount = sessionmetricsDescRetryCount.Default.(int)
	// sessionmetricsDescCheckpointCount is the schema descriptor for checkpoint_count field.
	sessionmetricsDescCheckpointCount := sessionmetricsFields[12].Descriptor()
	// sessionmetrics.DefaultCheckpointCount holds the default value on creation for the checkpoint_count field.
	sessionmetrics.DefaultCheckpointCount = sessionmetricsDescCheckpointCount.Default.(int)
	// sessionmetricsDescCreatedAt is the schema descriptor for created_at field.
	sessionmetricsDescCreatedAt := sessionmetricsFields[16].Descriptor()
	// sessionmetrics.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionmetrics.DefaultCreatedAt = sessionmetricsDescCreatedAt.Default.(func() time.Time)
	// sessionmetricsDescUpdatedAt is the schema descriptor for updated_at field.
	sessionmetricsDescUpdatedAt := sessionmetricsFields[17].Descriptor()
	// sessionmetrics.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionmetrics.DefaultUpdatedAt = sessionmetricsDescUpdatedAt.Default.(func() time.Time)
	// sessionmetrics.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionmetrics.UpdateDefaultUpdatedAt = sessionmetricsDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[4].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[19].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[20].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescName is the schema descriptor for name field.
	tenantDescName := tenantFields[1].Descriptor()
	// tenant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tenant.NameValidator = tenantDescName.Validators[0].(func(string) error)
	// tenantDescSlug is the schema descriptor for slug field.
	tenantDescSlug := tenantFields[2].Descriptor()
	// tenant.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	tenant.SlugValidator = tenantDescSlug.Validators[0].(func(string) error)
	// tenantDescMaxConcurrentSessions is the schema descriptor for max_concurrent_sessions field.
	tenantDescMaxConcurrentSessions := tenantFields[3].Descriptor()
	// tenant.DefaultMaxConcurrentSessions holds the default value on creation for the max_concurrent_sessions field.
	tenant.DefaultMaxConcurrentSessions = tenantDescMaxConcurrentSessions.Default.(int)
	// tenant.MaxConcurrentSessionsValidator is a validator for the "max_concurrent_sessions" field. It is called by the builders before save.
	tenant.MaxConcurrentSessionsValidator = tenantDescMaxConcurrentSessions.Validators[0].(func(int) error)
	// tenantDescMaxTokensPerMonth is the schema descriptor for max_tokens_per_month field.
	tenantDescMaxTokensPerMonth := tenantFields[4].Descriptor()
	// tenant.DefaultMaxTokensPerMonth holds the default value on creation for the max_tokens_per_month field.
	tenant.DefaultMaxTokensPerMonth = tenantDescMaxTokensPerMonth.Default.(int64)
	// tenant.MaxTokensPerMonthValidator is a validator for the "max_tokens_per_month" field. It is called by the builders before save.
	tenant.MaxTokensPerMonthValidator = tenantDescMaxTokensPerMonth.Validators[0].(func(int64) error)
	// tenantDescActive is the schema descriptor for active field.
	tenantDescActive := tenantFields[5].Descriptor()
	// tenant.DefaultActive holds the default value on creation for the active field.
	tenant.DefaultActive = tenantDescActive.Default.(bool)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[6].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[7].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
}
