package impl

import (
	"time"
)

// planState is the progress of one radius through its endpoint attempts.
type planState int

const (
	planPending planState = iota
	planTrying
	planSucceeded
	planExhausted
)

func (s planState) String() string {
	switch s {
	case planPending:
		return "pending"
	case planTrying:
		return "trying"
	case planSucceeded:
		return "succeeded"
	case planExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// discoveryTask is one request of a query against one endpoint.
// Attempt is zero-based per endpoint.
type discoveryTask struct {
	Endpoint string
	Attempt  int
}

// taskFailure records why a task did not produce a result.
type taskFailure struct {
	Task discoveryTask
	Err  error
}

// radiusPlan walks the ordered (endpoint, attempt) tasks of a single radius.
// Every endpoint gets all of its attempts before the next endpoint is tried.
type radiusPlan struct {
	tasks    []discoveryTask
	next     int
	state    planState
	failures []taskFailure
}

func newRadiusPlan(endpoints []string, maxAttempts int) *radiusPlan {
	tasks := make([]discoveryTask, 0, len(endpoints)*maxAttempts)
	for _, endpoint := range endpoints {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			tasks = append(tasks, discoveryTask{Endpoint: endpoint, Attempt: attempt})
		}
	}

	return &radiusPlan{tasks: tasks, state: planPending}
}

// Next moves to the following task. ok is false once the plan has finished,
// and a plan that runs out of tasks becomes exhausted.
func (p *radiusPlan) Next() (task discoveryTask, ok bool) {
	if p.state == planSucceeded || p.state == planExhausted {
		return discoveryTask{}, false
	}
	if p.next >= len(p.tasks) {
		p.state = planExhausted

		return discoveryTask{}, false
	}

	task = p.tasks[p.next]
	p.next++
	p.state = planTrying

	return task, true
}

// HasNext reports whether another task remains after the current one.
func (p *radiusPlan) HasNext() bool {
	return p.state != planSucceeded && p.next < len(p.tasks)
}

func (p *radiusPlan) Succeed() {
	p.state = planSucceeded
}

func (p *radiusPlan) Fail(task discoveryTask, err error) {
	p.failures = append(p.failures, taskFailure{Task: task, Err: err})
}

func (p *radiusPlan) State() planState {
	return p.state
}

func (p *radiusPlan) Failures() []taskFailure {
	return p.failures
}

// retrySchedule derives per-attempt deadlines and backoff waits.
type retrySchedule struct {
	attemptTimeout     time.Duration
	attemptTimeoutStep time.Duration
	backoffBase        time.Duration
	backoffStep        time.Duration
}

// Timeout is the client-side deadline of attempt n.
func (r retrySchedule) Timeout(attempt int) time.Duration {
	return r.attemptTimeout + time.Duration(attempt)*r.attemptTimeoutStep
}

// Backoff is the wait after a failed network attempt n.
func (r retrySchedule) Backoff(attempt int) time.Duration {
	return r.backoffBase + time.Duration(attempt)*r.backoffStep
}
