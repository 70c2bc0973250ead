// Package session drives one interactive job search: it turns user input or
// a restored query string into a radius search followed by a job lookup and
// keeps the resulting state and job selection.
package session

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"

	"jobsearch-api/internal/client"
	"jobsearch-api/internal/models"
)

// State of a session.
type State int

const (
	Idle State = iota
	Searching
	ResultsReady
	Errored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case ResultsReady:
		return "results_ready"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

var (
	// ErrSelectLocation is returned when the location text does not start
	// with a postal code.
	ErrSelectLocation = errors.New("please choose a location from the suggestions")

	// ErrSuperseded is returned by a search whose result was discarded
	// because a newer search started before it finished.
	ErrSuperseded = errors.New("session: search superseded by a newer one")

	// ErrUnknownJob is returned when selecting a job that is not among the
	// current results.
	ErrUnknownJob = errors.New("session: job not in current results")
)

var postalCodePrefix = regexp.MustCompile(`^\d{4}`)

// Backend is the part of the API a session needs. *client.Client
// implements it.
type Backend interface {
	RadiusSearch(ctx context.Context, postalCode string, radiusKm int) (*models.RadiusResult, error)
	Jobs(ctx context.Context, q models.JobQuery) ([]models.Job, error)
}

// Input is a search as entered by the user. Location is typically a chosen
// suggestion such as "8001 Zürich".
type Input struct {
	Location   string
	RadiusKm   int
	Profession string
}

// Snapshot is a copy of the session state.
type Snapshot struct {
	State  State
	Params Params
	// Radius is nil for profession-only searches.
	Radius   *models.RadiusResult
	Jobs     []models.Job
	Selected *models.Job
	// NotFound is set when the postal code has no radius data. The session
	// still ends in ResultsReady, with no jobs.
	NotFound bool
	Err      error
}

// Session is safe for concurrent use. Only the most recently started search
// may change its state; older searches are cancelled and their responses
// dropped.
type Session struct {
	backend Backend

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	state    State
	params   Params
	radius   *models.RadiusResult
	jobs     []models.Job
	notFound bool
	err      error
}

// New creates an idle session.
func New(backend Backend) *Session {
	return &Session{backend: backend}
}

// Search runs the search described by in. With a location, the places
// within the radius are looked up first and their postal codes scope the
// job lookup. Without a location, jobs are looked up by profession alone.
// With neither, the session is reset to Idle.
func (s *Session) Search(ctx context.Context, in Input) (Snapshot, error) {
	location := strings.TrimSpace(in.Location)
	profession := strings.TrimSpace(in.Profession)

	s.mu.Lock()
	jobID := s.params.JobID
	s.mu.Unlock()

	switch {
	case location == "" && profession == "":
		return s.reset(Params{}), nil
	case location == "":
		return s.run(ctx, Params{Profession: profession, JobID: jobID})
	}

	postalCode := postalCodePrefix.FindString(location)
	if postalCode == "" {
		return s.fail(ErrSelectLocation), ErrSelectLocation
	}

	radiusKm := in.RadiusKm
	if radiusKm <= 0 {
		radiusKm = models.DefaultRadiusKm
	}

	return s.run(ctx, Params{
		Profession: profession,
		PostalCode: postalCode,
		RadiusKm:   radiusKm,
		JobID:      jobID,
	})
}

// Restore re-runs a persisted search. A persisted job id stays selected if
// the job is still among the results.
func (s *Session) Restore(ctx context.Context, p Params) (Snapshot, error) {
	switch {
	case p.PostalCode != "":
		if p.RadiusKm <= 0 {
			p.RadiusKm = models.DefaultRadiusKm
		}
		return s.run(ctx, p)
	case p.Profession != "":
		p.RadiusKm = 0
		return s.run(ctx, p)
	default:
		return s.reset(p), nil
	}
}

// Select marks jobID as the selected job.
func (s *Session) Select(jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != ResultsReady || findJob(s.jobs, jobID) == nil {
		return ErrUnknownJob
	}
	s.params.JobID = jobID
	return nil
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Params returns the parameters to persist for the current state.
func (s *Session) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

func (s *Session) run(ctx context.Context, p Params) (Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	seq := s.beginLocked(cancel)
	s.state = Searching
	s.params = p
	s.mu.Unlock()

	radius, jobs, err := s.fetch(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return s.snapshotLocked(), ErrSuperseded
	}
	s.cancel = nil

	switch {
	case err == nil:
		s.state = ResultsReady
		s.radius = radius
		s.applySelectionLocked(jobs)
	case client.IsNotFound(err):
		s.state = ResultsReady
		s.notFound = true
		s.applySelectionLocked(nil)
		err = nil
	default:
		s.state = Errored
		s.err = err
		s.applySelectionLocked(nil)
	}

	return s.snapshotLocked(), err
}

func (s *Session) fetch(ctx context.Context, p Params) (*models.RadiusResult, []models.Job, error) {
	if p.PostalCode == "" {
		jobs, err := s.backend.Jobs(ctx, models.JobQuery{Profession: p.Profession})
		return nil, jobs, err
	}

	radius, err := s.backend.RadiusSearch(ctx, p.PostalCode, p.RadiusKm)
	if err != nil {
		return nil, nil, err
	}

	jobs, err := s.backend.Jobs(ctx, models.JobQuery{
		Profession:  p.Profession,
		PostalCodes: radius.PostalCodes(),
	})
	if err != nil {
		return nil, nil, err
	}
	return radius, jobs, nil
}

func (s *Session) reset(p Params) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginLocked(nil)
	s.state = Idle
	s.params = p
	return s.snapshotLocked()
}

func (s *Session) fail(err error) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginLocked(nil)
	s.state = Errored
	s.err = err
	s.params.JobID = ""
	return s.snapshotLocked()
}

// beginLocked supersedes any in-flight search and clears previous results.
func (s *Session) beginLocked(cancel context.CancelFunc) uint64 {
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.seq++

	s.radius = nil
	s.jobs = nil
	s.notFound = false
	s.err = nil
	return s.seq
}

// applySelectionLocked keeps a selected job that is still present, else
// selects the first job, else clears the selection.
func (s *Session) applySelectionLocked(jobs []models.Job) {
	s.jobs = jobs
	if s.params.JobID != "" && findJob(jobs, s.params.JobID) != nil {
		return
	}
	if len(jobs) > 0 {
		s.params.JobID = jobs[0].ID
		return
	}
	s.params.JobID = ""
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:    s.state,
		Params:   s.params,
		Radius:   s.radius,
		NotFound: s.notFound,
		Err:      s.err,
	}
	if s.jobs != nil {
		snap.Jobs = append([]models.Job(nil), s.jobs...)
		snap.Selected = findJob(snap.Jobs, s.params.JobID)
	}
	return snap
}

func findJob(jobs []models.Job, id string) *models.Job {
	if id == "" {
		return nil
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i]
		}
	}
	return nil
}
