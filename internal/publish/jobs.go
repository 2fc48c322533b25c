package publish

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/deckgen/deckgen/internal/deck"
	"github.com/deckgen/deckgen/internal/slides"
)

// JobStatus represents the state of a publish job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusPublishing JobStatus = "publishing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the state of a single deck publish.
type Job struct {
	mu sync.Mutex

	ID    string `json:"job_id"`
	Title string `json:"title"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Result *slides.Result `json:"result,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	slides []deck.EnhancedSlide
	errors []string
}

// NewJob creates a queued job for the given deck.
func NewJob(title string, deckSlides []deck.EnhancedSlide) *Job {
	now := time.Now()
	return &Job{
		ID:        newJobID(),
		Title:     title,
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
		slides:    deckSlides,
	}
}

func newJobID() string {
	var b [16]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// SetResult records the published presentation.
func (j *Job) SetResult(r *slides.Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Result = r
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// Slides returns the deck queued for this job.
func (j *Job) Slides() []deck.EnhancedSlide {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.slides
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID     string         `json:"job_id"`
	Title  string         `json:"title"`
	Status JobStatus      `json:"status"`
	Phase  string         `json:"phase"`
	Result *slides.Result `json:"result,omitempty"`
	Errors []string       `json:"errors"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:     j.ID,
		Title:  j.Title,
		Status: j.Status,
		Phase:  j.Phase,
		Result: j.Result,
		Errors: errs,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
