package asyncload

import "github.com/gammazero/toposort"

// closeOver returns every job transitively reachable from roots via
// dependencies, including the roots themselves, each exactly once, in
// a deterministic post-root-first DFS order.
func closeOver(roots []*Job) []*Job {
	seen := make(map[*Job]bool, len(roots))
	order := make([]*Job, 0, len(roots))

	var visit func(j *Job)
	visit = func(j *Job) {
		if seen[j] {
			return
		}
		seen[j] = true
		order = append(order, j)
		for _, dep := range j.dependencies {
			visit(dep)
		}
	}
	for _, r := range roots {
		visit(r)
	}
	return order
}

// detectCycle runs a DFS over closure looking for back-edges. It
// returns the names of every job participating in a cycle, or nil if
// the closure is acyclic. When several disjoint cycles exist, all of
// their members are returned; a job outside every cycle never is.
func detectCycle(closure []*Job) []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[*Job]int, len(closure))
	inCycle := make(map[*Job]bool)
	var stack []*Job

	any := false
	var visit func(j *Job)
	visit = func(j *Job) {
		color[j] = gray
		stack = append(stack, j)
		for _, dep := range j.dependencies {
			switch color[dep] {
			case white:
				visit(dep)
			case gray:
				any = true
				for i := len(stack) - 1; i >= 0; i-- {
					inCycle[stack[i]] = true
					if stack[i] == dep {
						break
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[j] = black
	}

	for _, j := range closure {
		if color[j] == white {
			visit(j)
		}
	}
	if !any {
		return nil
	}
	names := make([]string, 0, len(inCycle))
	for j := range inCycle {
		names = append(names, j.name)
	}
	return names
}

// validateWithToposort cross-checks the closure against an independent
// cycle-detection implementation. It should never disagree with
// detectCycle; it exists as a defensive second opinion rather than the
// primary mechanism, since toposort.Toposort does not report which
// jobs participate in a cycle, only that one exists.
func validateWithToposort(closure []*Job) error {
	edges := make([]toposort.Edge, 0, len(closure))
	for _, j := range closure {
		if len(j.dependencies) == 0 {
			edges = append(edges, toposort.Edge{nil, j})
			continue
		}
		for _, dep := range j.dependencies {
			edges = append(edges, toposort.Edge{dep, j})
		}
	}
	_, err := toposort.Toposort(edges)
	return err
}
