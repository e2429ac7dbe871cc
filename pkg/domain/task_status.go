package domain

// TaskStatus is the lifecycle state of a single work unit.
type TaskStatus string

// Task lifecycle states.
const (
	TaskPending    TaskStatus = "pending"
	TaskReady      TaskStatus = "ready"
	TaskAssigned   TaskStatus = "assigned"
	TaskInProgress TaskStatus = "in_progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskPaused     TaskStatus = "paused"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
	TaskCancelled  TaskStatus = "cancelled"
	TaskSkipped    TaskStatus = "skipped"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPending:    {TaskReady, TaskAssigned, TaskCancelled},
	TaskReady:      {TaskAssigned, TaskCancelled},
	TaskAssigned:   {TaskInProgress, TaskCancelled},
	TaskInProgress: {TaskCompleted, TaskFailed, TaskBlocked, TaskPaused},
	TaskBlocked:    {TaskInProgress, TaskCancelled},
	TaskPaused:     {TaskInProgress, TaskCancelled},
}

// CanTransitionTask reports whether from → to is a permitted task transition.
func CanTransitionTask(from, to TaskStatus) bool {
	for _, next := range taskTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the task status is terminal.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskCompleted, TaskFailed, TaskCancelled, TaskSkipped:
		return true
	}
	return false
}

// actionVerbs is the closed list of verbs a task title must begin with.
var actionVerbs = map[string]bool{
	"implement": true, "create": true, "build": true, "design": true,
	"develop": true, "write": true, "add": true, "refactor": true,
	"fix": true, "debug": true, "test": true, "review": true,
	"analyze": true, "optimize": true, "deploy": true, "configure": true,
	"integrate": true, "document": true, "validate": true, "migrate": true,
	"update": true, "remove": true, "investigate": true, "setup": true,
}

// IsActionVerb reports whether the (lowercased) word is an accepted leading
// action verb for task titles.
func IsActionVerb(word string) bool {
	return actionVerbs[word]
}
