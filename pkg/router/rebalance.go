package router

import (
	"sort"

	"github.com/maestro-hq/maestro/pkg/registry"
)

// RebalanceReport names the agents running past capacity and the projected
// effect of shedding their excess onto agents with spare room. Reassignment
// itself is the service layer's job; the router only reports intent.
type RebalanceReport struct {
	OverloadedAgents  []string       `json:"overloaded_agents"`
	ExcessTasks       int            `json:"excess_tasks"`
	Reassignable      int            `json:"reassignable"`
	UtilizationBefore float64        `json:"utilization_before"`
	UtilizationAfter  float64        `json:"utilization_after"`
	Targets           map[string]int `json:"targets,omitempty"`
}

// Rebalance identifies agents with current ≥ max and greedily projects
// moving their excess tasks to the least-utilized agents with spare
// capacity. Utilization figures are the mean of per-agent current/max.
func (r *Router) Rebalance() RebalanceReport {
	agents := r.registry.All()
	report := RebalanceReport{Targets: make(map[string]int)}
	if len(agents) == 0 {
		return report
	}

	report.UtilizationBefore = meanUtilization(agents)

	projected := make(map[string]int, len(agents))
	var receivers []*registry.Agent
	for _, a := range agents {
		projected[a.ID] = a.CurrentTasks
		if a.CurrentTasks >= a.MaxConcurrentTasks {
			report.OverloadedAgents = append(report.OverloadedAgents, a.ID)
			report.ExcessTasks += a.CurrentTasks - a.MaxConcurrentTasks
		} else if a.IsAvailable() {
			receivers = append(receivers, a)
		}
	}
	sort.Strings(report.OverloadedAgents)

	if report.ExcessTasks > 0 && len(receivers) > 0 {
		// Least-utilized receivers absorb excess first, one task per pass so
		// the load spreads instead of piling onto a single agent.
		sort.SliceStable(receivers, func(i, j int) bool {
			return receivers[i].Utilization() < receivers[j].Utilization()
		})

		remaining := report.ExcessTasks
		for remaining > 0 {
			placed := false
			for _, recv := range receivers {
				if remaining == 0 {
					break
				}
				if projected[recv.ID] < recv.MaxConcurrentTasks {
					projected[recv.ID]++
					report.Targets[recv.ID]++
					report.Reassignable++
					remaining--
					placed = true
				}
			}
			if !placed {
				break
			}
		}

		// Overloaded agents drop to capacity; excess nobody could take stays
		// where it is.
		unplaced := remaining
		for _, a := range agents {
			if a.CurrentTasks >= a.MaxConcurrentTasks {
				excess := a.CurrentTasks - a.MaxConcurrentTasks
				keep := 0
				if unplaced > 0 {
					keep = excess
					if keep > unplaced {
						keep = unplaced
					}
					unplaced -= keep
				}
				projected[a.ID] = a.MaxConcurrentTasks + keep
			}
		}
	}

	var sum float64
	for _, a := range agents {
		if a.MaxConcurrentTasks > 0 {
			sum += float64(projected[a.ID]) / float64(a.MaxConcurrentTasks)
		} else {
			sum++
		}
	}
	report.UtilizationAfter = sum / float64(len(agents))
	return report
}

func meanUtilization(agents []*registry.Agent) float64 {
	if len(agents) == 0 {
		return 0
	}
	var sum float64
	for _, a := range agents {
		sum += a.Utilization()
	}
	return sum / float64(len(agents))
}
