package taskgraph

import "fmt"

// ValidateDependencies runs cycle detection over the local graph of the task
// and its descendants using Kahn's algorithm. Edges pointing outside the
// local graph are ignored; cross-graph cycles are the service layer's
// responsibility. Returns ErrDependencyCycle (wrapped with the cycle
// members) when a cycle exists.
func (t *Task) ValidateDependencies() error {
	local := map[string]*Task{}
	t.Walk(func(task *Task) { local[task.ID] = task })

	// in-degree per node, counting only edges within the local graph
	indegree := map[string]int{}
	dependents := map[string][]string{}
	for id := range local {
		indegree[id] = 0
	}
	for id, task := range local {
		for _, dep := range task.Dependencies {
			if _, ok := local[dep.TaskID]; !ok {
				continue
			}
			indegree[id]++
			dependents[dep.TaskID] = append(dependents[dep.TaskID], id)
		}
	}

	queue := make([]string, 0, len(local))
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range dependents[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited != len(local) {
		cycle := make([]string, 0)
		for id, deg := range indegree {
			if deg > 0 {
				cycle = append(cycle, id)
			}
		}
		return fmt.Errorf("%w: involving tasks %v", ErrDependencyCycle, cycle)
	}
	return nil
}

// TopologicalOrder returns the task IDs of the local graph in dependency
// order (prerequisites first). Fails with ErrDependencyCycle if the graph is
// not a DAG.
func (t *Task) TopologicalOrder() ([]string, error) {
	if err := t.ValidateDependencies(); err != nil {
		return nil, err
	}

	local := map[string]*Task{}
	t.Walk(func(task *Task) { local[task.ID] = task })

	visited := map[string]bool{}
	order := make([]string, 0, len(local))

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, dep := range local[id].Dependencies {
			if _, ok := local[dep.TaskID]; ok {
				visit(dep.TaskID)
			}
		}
		order = append(order, id)
	}
	for id := range local {
		visit(id)
	}
	return order, nil
}

// CriticalPath returns the longest path through the local DAG weighted by
// PERT expected hours, as an ordered list of task IDs plus its total length.
func (t *Task) CriticalPath() ([]string, float64, error) {
	order, err := t.TopologicalOrder()
	if err != nil {
		return nil, 0, err
	}

	local := map[string]*Task{}
	t.Walk(func(task *Task) { local[task.ID] = task })

	// longest accumulated weight ending at each node, and the predecessor
	// that achieves it
	weight := map[string]float64{}
	prev := map[string]string{}
	for _, id := range order {
		task := local[id]
		best := 0.0
		bestPrev := ""
		for _, dep := range task.Dependencies {
			if _, ok := local[dep.TaskID]; !ok {
				continue
			}
			if w := weight[dep.TaskID]; w > best || (w == best && bestPrev == "") {
				best = w
				bestPrev = dep.TaskID
			}
		}
		weight[id] = best + task.Estimate.ExpectedHours()
		prev[id] = bestPrev
	}

	endID := ""
	max := -1.0
	for id, w := range weight {
		if w > max {
			max = w
			endID = id
		}
	}
	if endID == "" {
		return nil, 0, nil
	}

	path := []string{}
	for id := endID; id != ""; id = prev[id] {
		path = append([]string{id}, path...)
	}
	return path, max, nil
}
