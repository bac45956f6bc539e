package application

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of one validation job.
type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobRunning  JobStatus = "running"
	JobComplete JobStatus = "complete"
	JobFailed   JobStatus = "failed"
)

// ErrJobNotFound is returned for lookups of unknown or swept job IDs.
var ErrJobNotFound = errors.New("job not found")

// Job tracks one validation request through its lifecycle.
type Job struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Status    JobStatus `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobRegistry tracks in-flight validation jobs behind an explicit object
// with lifecycle methods, so it can be unit tested without process-wide
// side effects. Safe for concurrent use.
type JobRegistry struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
	now  func() time.Time
}

// NewJobRegistry creates a registry whose finished jobs expire after ttl.
func NewJobRegistry(ttl time.Duration) *JobRegistry {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JobRegistry{
		jobs: make(map[string]*Job),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Register creates a new running job for the given URL.
func (r *JobRegistry) Register(url string) *Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	job := &Job{
		ID:        uuid.NewString(),
		URL:       url,
		Status:    JobRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.jobs[job.ID] = job
	return job
}

// MarkComplete transitions a job to complete.
func (r *JobRegistry) MarkComplete(id string) error {
	return r.transition(id, JobComplete, "")
}

// MarkFailed transitions a job to failed with the given reason.
func (r *JobRegistry) MarkFailed(id, reason string) error {
	return r.transition(id, JobFailed, reason)
}

// Get returns a copy of the job with the given ID.
func (r *JobRegistry) Get(id string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return *job, nil
}

// List returns a snapshot of all tracked jobs, newest first.
func (r *JobRegistry) List() []Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Len returns the number of tracked jobs.
func (r *JobRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

// SweepExpired removes finished jobs older than the registry TTL and returns
// how many were removed. Running jobs are never swept.
func (r *JobRegistry) SweepExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, job := range r.jobs {
		if job.Status == JobRunning || job.Status == JobPending {
			continue
		}
		if job.UpdatedAt.Before(cutoff) {
			delete(r.jobs, id)
			removed++
		}
	}
	return removed
}

func (r *JobRegistry) transition(id string, status JobStatus, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return ErrJobNotFound
	}
	job.Status = status
	job.Error = reason
	job.UpdatedAt = r.now()
	return nil
}
