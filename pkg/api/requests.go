package api

// Request bodies for the JSON handlers. Validation beyond shape lives in the
// service layer.

type createSessionRequest struct {
	Title              string         `json:"title" binding:"required"`
	Description        string         `json:"description"`
	SessionType        string         `json:"session_type"`
	Priority           string         `json:"priority"`
	ParentSessionID    string         `json:"parent_session_id"`
	AgentConfig        map[string]any `json:"agent_config"`
	ModelConfig        string         `json:"model_config"`
	InitialPrompt      string         `json:"initial_prompt" binding:"required"`
	MaxDurationSeconds int            `json:"max_duration_seconds"`
	CPULimit           float64        `json:"cpu_limit"`
	MemoryLimitMB      int            `json:"memory_limit_mb"`
	Tags               []string       `json:"tags"`
	Metadata           map[string]any `json:"metadata"`
	CreatedBy          string         `json:"created_by"`
}

type completeSessionRequest struct {
	SuccessRate float64        `json:"success_rate"`
	Confidence  float64        `json:"confidence"`
	TotalTokens int            `json:"total_tokens"`
	CostUSD     float64        `json:"cost_usd"`
	Result      map[string]any `json:"result"`
	Warnings    []string       `json:"warnings"`
	Partial     bool           `json:"partial"`
}

type failSessionRequest struct {
	Type      string `json:"type"`
	Message   string `json:"message" binding:"required"`
	Source    string `json:"source"`
	AgentID   string `json:"agent_id"`
	Retryable bool   `json:"retryable"`
}

type addCheckpointRequest struct {
	Name string         `json:"name" binding:"required"`
	Data map[string]any `json:"data"`
}

type createTaskRequest struct {
	SessionID            string         `json:"session_id" binding:"required"`
	ParentTaskID         string         `json:"parent_task_id"`
	Title                string         `json:"title" binding:"required"`
	Description          string         `json:"description"`
	Priority             string         `json:"priority"`
	RequiredCapabilities []string       `json:"required_capabilities"`
	Estimate             *estimateInput `json:"estimate"`
}

type estimateInput struct {
	OptimisticHours  float64 `json:"optimistic_hours"`
	LikelyHours      float64 `json:"likely_hours"`
	PessimisticHours float64 `json:"pessimistic_hours"`
	Confidence       float64 `json:"confidence"`
}

type taskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type completeTaskRequest struct {
	Result    map[string]any `json:"result"`
	Artifacts []string       `json:"artifacts"`
}

type failTaskRequest struct {
	Error string `json:"error" binding:"required"`
}

type assignTaskRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
}

type decomposeTaskRequest struct {
	Strategy              string  `json:"strategy"`
	MaxDepth              int     `json:"max_depth"`
	TargetComplexityHours float64 `json:"target_complexity_hours"`
}

type addDependencyRequest struct {
	DependsOnID string `json:"depends_on_id" binding:"required"`
	Type        string `json:"type"`
}

type registerAgentRequest struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name" binding:"required"`
	Type               string            `json:"type" binding:"required"`
	Capabilities       []string          `json:"capabilities" binding:"required"`
	MaxConcurrentTasks int               `json:"max_concurrent_tasks"`
	Metadata           map[string]string `json:"metadata"`
}

type externalRegisterRequest struct {
	Name               string   `json:"name" binding:"required"`
	Type               string   `json:"type" binding:"required"`
	Capabilities       []string `json:"capabilities" binding:"required"`
	EndpointURL        string   `json:"endpoint_url" binding:"required"`
	MaxConcurrentTasks int      `json:"max_concurrent_tasks"`
	TenantID           string   `json:"tenant_id" binding:"required"`
}

type externalHeartbeatRequest struct {
	Status      string         `json:"status"`
	CurrentLoad int            `json:"current_load"`
	Metrics     map[string]any `json:"metrics"`
	Timestamp   string         `json:"timestamp"`
}

type routeRequest struct {
	RequiredCapabilities []string `json:"required_capabilities" binding:"required"`
	PreferredType        string   `json:"preferred_type"`
	PreferredIDs         []string `json:"preferred_ids"`
	MinTier              string   `json:"min_tier"`
	EstimatedComplexity  float64  `json:"estimated_complexity"`
}

type createContextRequest struct {
	Scope      string         `json:"scope" binding:"required"`
	SessionID  string         `json:"session_id"`
	AgentID    string         `json:"agent_id"`
	Data       map[string]any `json:"data"`
	CreatedBy  string         `json:"created_by"`
	TTLSeconds int            `json:"ttl_seconds"`
}

type setContextValueRequest struct {
	Path  string `json:"path" binding:"required"`
	Value any    `json:"value"`
}

type deleteContextValueRequest struct {
	Path string `json:"path" binding:"required"`
}

type mergeContextsRequest struct {
	SourceID string `json:"source_id" binding:"required"`
	Strategy string `json:"strategy"`
}

type createTenantRequest struct {
	Name                  string `json:"name" binding:"required"`
	Slug                  string `json:"slug" binding:"required"`
	MaxConcurrentSessions int    `json:"max_concurrent_sessions"`
	MaxTokensPerMonth     int64  `json:"max_tokens_per_month"`
}

type updateTenantLimitsRequest struct {
	MaxConcurrentSessions int   `json:"max_concurrent_sessions" binding:"required"`
	MaxTokensPerMonth     int64 `json:"max_tokens_per_month" binding:"required"`
	Active                *bool `json:"active"`
}

type createFineTuningJobRequest struct {
	Name            string         `json:"name" binding:"required"`
	BaseModel       string         `json:"base_model" binding:"required"`
	DatasetInfo     map[string]any `json:"dataset_info"`
	Hyperparameters map[string]any `json:"hyperparameters"`
}

type transitionJobRequest struct {
	Status string `json:"status" binding:"required"`
	Detail string `json:"detail"`
}

type recordEvaluationRequest struct {
	Evaluation map[string]any `json:"evaluation" binding:"required"`
}
