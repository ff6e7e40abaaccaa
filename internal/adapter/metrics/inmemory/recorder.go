package inmemory

import "sync"

type Snapshot struct {
	PlanTotal         uint64  `json:"plan_total"`
	PlanSuccess       uint64  `json:"plan_success"`
	PlanUnreachable   uint64  `json:"plan_unreachable"`
	PlanConflict      uint64  `json:"plan_conflict"`
	PlanFailure       uint64  `json:"plan_failure"`
	AveragePathLength float64 `json:"average_path_length"`
	LongestPath       int     `json:"longest_path"`
}

type Recorder struct {
	mu          sync.Mutex
	success     uint64
	unreachable uint64
	conflict    uint64
	failure     uint64
	lengthSum   uint64
	longest     int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordSuccess(pathLength int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	if pathLength > 0 {
		r.lengthSum += uint64(pathLength)
	}
	if pathLength > r.longest {
		r.longest = pathLength
	}
}

func (r *Recorder) RecordUnreachable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unreachable++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		PlanSuccess:     r.success,
		PlanUnreachable: r.unreachable,
		PlanConflict:    r.conflict,
		PlanFailure:     r.failure,
		PlanTotal:       r.success + r.unreachable + r.conflict + r.failure,
		LongestPath:     r.longest,
	}
	if r.success > 0 {
		out.AveragePathLength = float64(r.lengthSum) / float64(r.success)
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
