package breakout

import (
	"container/heap"
	"time"
)

// Clock provides the current time to the simulation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock moved by hand, for tests and headless runs.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Set jumps to t.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// TimerHandle identifies a scheduled task. The zero handle is never issued.
type TimerHandle uint64

type timerTask struct {
	handle TimerHandle
	due    time.Time
	fn     func()
	index  int
}

type taskHeap []*timerTask

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].handle < h[j].handle
	}
	return h[i].due.Before(h[j].due)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*timerTask)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// TimerQueue holds delayed tasks run by polling against a clock.
// It is not safe for concurrent use; the frame loop owns it.
type TimerQueue struct {
	tasks  taskHeap
	byID   map[TimerHandle]*timerTask
	nextID TimerHandle
}

// NewTimerQueue creates an empty queue.
func NewTimerQueue() *TimerQueue {
	return &TimerQueue{byID: make(map[TimerHandle]*timerTask)}
}

// Schedule registers fn to run once at or after due.
func (q *TimerQueue) Schedule(due time.Time, fn func()) TimerHandle {
	q.nextID++
	t := &timerTask{handle: q.nextID, due: due, fn: fn}
	heap.Push(&q.tasks, t)
	q.byID[t.handle] = t
	return t.handle
}

// Cancel removes a pending task. Returns false if it already ran or never existed.
func (q *TimerQueue) Cancel(h TimerHandle) bool {
	t, ok := q.byID[h]
	if !ok {
		return false
	}
	heap.Remove(&q.tasks, t.index)
	delete(q.byID, h)
	return true
}

// Replace cancels old and schedules fn in its place.
func (q *TimerQueue) Replace(old TimerHandle, due time.Time, fn func()) TimerHandle {
	q.Cancel(old)
	return q.Schedule(due, fn)
}

// Pending reports whether h is still scheduled.
func (q *TimerQueue) Pending(h TimerHandle) bool {
	_, ok := q.byID[h]
	return ok
}

// RunDue runs every task due at or before now, earliest first.
// Returns the number of tasks run.
func (q *TimerQueue) RunDue(now time.Time) int {
	ran := 0
	for q.tasks.Len() > 0 && !q.tasks[0].due.After(now) {
		t := heap.Pop(&q.tasks).(*timerTask)
		delete(q.byID, t.handle)
		t.fn()
		ran++
	}
	return ran
}

// Len returns the number of pending tasks.
func (q *TimerQueue) Len() int {
	return q.tasks.Len()
}

// Clear drops every pending task.
func (q *TimerQueue) Clear() {
	q.tasks = q.tasks[:0]
	clear(q.byID)
}
