package api

import (
	"github.com/gin-gonic/gin"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/services"
)

// sessionResponse is the wire shape of one session.
func sessionResponse(sess *ent.Session) gin.H {
	resp := gin.H{
		"id":                   sess.ID,
		"tenant_id":            sess.TenantID,
		"title":                sess.Title,
		"description":          sess.Description,
		"session_type":         sess.SessionType,
		"priority":             sess.Priority,
		"status":               sess.Status,
		"status_updated_at":    sess.StatusUpdatedAt,
		"child_ids":            sess.ChildIds,
		"initial_prompt":       sess.InitialPrompt,
		"max_duration_seconds": sess.MaxDurationSeconds,
		"tags":                 sess.Tags,
		"metadata":             sess.Metadata,
		"version":              sess.Version,
		"created_at":           sess.CreatedAt,
		"updated_at":           sess.UpdatedAt,
	}
	if sess.ParentID != nil {
		resp["parent_session_id"] = *sess.ParentID
	}
	if sess.PodID != nil {
		resp["pod_id"] = *sess.PodID
	}
	return resp
}

// treeResponse renders a session tree bounded by maxDepth.
func treeResponse(tree *services.SessionTree, maxDepth int) gin.H {
	if tree == nil || maxDepth <= 0 {
		return nil
	}
	node := gin.H{"session": sessionResponse(tree.Session)}
	children := make([]gin.H, 0, len(tree.Children))
	for _, child := range tree.Children {
		if sub := treeResponse(child, maxDepth-1); sub != nil {
			children = append(children, sub)
		}
	}
	node["children"] = children
	return node
}

// taskResponse is the wire shape of one task.
func taskResponse(task *ent.Task) gin.H {
	resp := gin.H{
		"id":                    task.ID,
		"session_id":            task.SessionID,
		"title":                 task.Title,
		"description":           task.Description,
		"status":                task.Status,
		"priority":              task.Priority,
		"required_capabilities": task.RequiredCapabilities,
		"dependencies":          task.Dependencies,
		"dependents":            task.Dependents,
		"estimate":              task.Estimate,
		"result":                task.Result,
		"artifacts":             task.Artifacts,
		"created_at":            task.CreatedAt,
	}
	if task.ParentTaskID != nil {
		resp["parent_task_id"] = *task.ParentTaskID
	}
	if task.AssignedAgentID != nil {
		resp["assigned_agent_id"] = *task.AssignedAgentID
	}
	return resp
}

func taskListResponse(tasks []*ent.Task) []gin.H {
	out := make([]gin.H, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskResponse(task))
	}
	return out
}

// agentResponse is the wire shape of one registered agent. Auth tokens are
// never echoed back.
func agentResponse(a *registry.Agent) gin.H {
	meta := make(map[string]string, len(a.Metadata))
	for k, v := range a.Metadata {
		if k == registry.MetaAuthToken {
			continue
		}
		meta[k] = v
	}
	return gin.H{
		"id":                   a.ID,
		"tenant_id":            a.TenantID,
		"name":                 a.Name,
		"type":                 a.Type,
		"capabilities":         a.Capabilities,
		"tier":                 a.Tier,
		"load_level":           a.LoadLevel,
		"current_tasks":        a.CurrentTasks,
		"max_concurrent_tasks": a.MaxConcurrentTasks,
		"last_heartbeat":       a.LastHeartbeat,
		"registered_at":        a.RegisteredAt,
		"metadata":             meta,
		"metrics":              a.Metrics,
	}
}
