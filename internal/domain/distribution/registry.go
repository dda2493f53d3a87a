package distribution

import (
	"sync"

	"github.com/google/uuid"
)

// Registry is the process-wide job table. Entries are never evicted: job
// history lives exactly as long as the process, so a restart loses it.
type Registry struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*Job
}

func NewRegistry() *Registry {
	return &Registry{
		jobs: make(map[uuid.UUID]*Job),
	}
}

// Register makes the job visible to pollers. A job must be registered before
// its identifier is handed to any caller.
func (r *Registry) Register(j *Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[j.ID()] = j
}

func (r *Registry) Find(id uuid.UUID) (*Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	return j, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}
