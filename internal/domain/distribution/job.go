package distribution

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Audience string

const (
	AudienceUsers       Audience = "users"
	AudienceSubscribers Audience = "subscribers"
)

// Outcome is one recipient's delivery result. Records are appended in
// iteration order and never mutated afterwards.
type Outcome struct {
	RecipientID uuid.UUID
	Phone       string
	Success     bool
	Response    map[string]any // raw notifier response on success
	Error       string         // failure description on failure
}

// Snapshot is a consistent, read-only copy of a job's state.
type Snapshot struct {
	ID          uuid.UUID
	Audience    Audience
	Status      Status
	Holiday     string
	Total       int
	Processed   int
	Successful  int
	Failed      int
	StartedAt   time.Time
	CompletedAt *time.Time
	Error       string
	Results     []Outcome
}

// Job tracks one distribution run. It is mutated only by the goroutine that
// executes the fan-out; any number of pollers read it concurrently through
// Snapshot. The invariant processed == successful+failed holds at every
// observable point because record updates results and counters under one
// lock.
type Job struct {
	id        uuid.UUID
	audience  Audience
	holiday   string
	total     int
	startedAt time.Time

	mu          sync.RWMutex
	status      Status
	successful  int
	failed      int
	completedAt *time.Time
	errMsg      string
	results     []Outcome
}

func NewJob(audience Audience, holidayLabel string, total int, startedAt time.Time) *Job {
	return &Job{
		id:        uuid.New(),
		audience:  audience,
		holiday:   holidayLabel,
		total:     total,
		startedAt: startedAt,
		status:    StatusRunning,
		results:   make([]Outcome, 0, total),
	}
}

func (j *Job) ID() uuid.UUID {
	return j.id
}

func (j *Job) RecordSuccess(o Outcome) {
	o.Success = true
	o.Error = ""
	j.record(o)
}

func (j *Job) RecordFailure(o Outcome) {
	o.Success = false
	o.Response = nil
	j.record(o)
}

func (j *Job) record(o Outcome) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status != StatusRunning {
		return
	}
	j.results = append(j.results, o)
	if o.Success {
		j.successful++
	} else {
		j.failed++
	}
}

// Complete marks the job terminal after the recipient snapshot is exhausted.
// Terminal states are sticky.
func (j *Job) Complete(now time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status != StatusRunning {
		return
	}
	j.status = StatusCompleted
	t := now
	j.completedAt = &t
}

// Fail marks the job terminal before any recipient was processed (base
// artifact synthesis failed). Per-recipient failures never call this.
func (j *Job) Fail(msg string, now time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.status != StatusRunning {
		return
	}
	j.status = StatusFailed
	j.errMsg = msg
	t := now
	j.completedAt = &t
}

func (j *Job) Snapshot() Snapshot {
	j.mu.RLock()
	defer j.mu.RUnlock()

	results := make([]Outcome, len(j.results))
	for i, o := range j.results {
		o.Response = maps.Clone(o.Response)
		results[i] = o
	}

	var completedAt *time.Time
	if j.completedAt != nil {
		t := *j.completedAt
		completedAt = &t
	}

	return Snapshot{
		ID:          j.id,
		Audience:    j.audience,
		Status:      j.status,
		Holiday:     j.holiday,
		Total:       j.total,
		Processed:   j.successful + j.failed,
		Successful:  j.successful,
		Failed:      j.failed,
		StartedAt:   j.startedAt,
		CompletedAt: completedAt,
		Error:       j.errMsg,
		Results:     results,
	}
}
