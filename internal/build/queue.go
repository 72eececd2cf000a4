package build

import (
	"time"
)

// Job is one unit of deferred geometry work, keyed so it runs at most once.
type Job struct {
	Key string
	Run func()
}

// Queue spreads house generation across frames: jobs are drained FIFO until
// a per-frame time budget is spent, then resumed on the next tick. All use
// is single-threaded (one frame callback), so there is no locking.
type Queue struct {
	jobs   []Job
	done   map[string]struct{}
	closed bool
}

// NewQueue returns an empty work queue.
func NewQueue() *Queue {
	return &Queue{done: make(map[string]struct{})}
}

// Enqueue appends a job. Jobs whose key already completed are refused so a
// house marked done is never rebuilt, even if something re-enqueues it.
func (q *Queue) Enqueue(j Job) {
	if q.closed {
		return
	}
	if _, ok := q.done[j.Key]; ok {
		return
	}
	q.jobs = append(q.jobs, j)
}

// Pending returns the number of queued jobs.
func (q *Queue) Pending() int { return len(q.jobs) }

// Done reports whether a key has completed.
func (q *Queue) Done(key string) bool {
	_, ok := q.done[key]
	return ok
}

// Drain runs queued jobs FIFO until the budget is exhausted and returns how
// many ran. The done set is checked again at dequeue time — not just at
// enqueue — so duplicate enqueues of the same key collapse to one run.
func (q *Queue) Drain(budget time.Duration) int {
	start := time.Now()
	ran := 0
	for len(q.jobs) > 0 && time.Since(start) < budget {
		j := q.jobs[0]
		q.jobs = q.jobs[1:]
		if _, ok := q.done[j.Key]; ok {
			continue
		}
		j.Run()
		q.done[j.Key] = struct{}{}
		ran++
	}
	return ran
}

// Close drops all pending work. After Close the queue accepts nothing new;
// scene teardown must leave no partially-queued state observable.
func (q *Queue) Close() {
	q.jobs = nil
	q.closed = true
}
