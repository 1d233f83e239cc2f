package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// ProbeStatus is the interactive validation state for one candidate value.
type ProbeStatus int

const (
	// StatusInvalid: the candidate fails the syntax rule (too short or bad
	// characters). Never probed.
	StatusInvalid ProbeStatus = iota
	// StatusProbing: syntax passed, the debounced availability lookup has
	// not resolved yet.
	StatusProbing
	// StatusAvailable: the lookup found no reservation. Advisory only.
	StatusAvailable
	// StatusTaken: the lookup found an existing reservation.
	StatusTaken
	// StatusError: the lookup failed at the store.
	StatusError
)

// ProbeResult pairs a candidate with its current status. Err is set only for
// StatusError.
type ProbeResult struct {
	Candidate string
	Status    ProbeStatus
	Err       error
}

// AvailabilityChecker is the slice of RegistryService the prober needs.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, handle string) (bool, error)
}

// HandleProber drives the as-you-type username check: trailing-edge debounce
// keyed on the candidate value. Each Input supersedes everything before it:
// it cancels any pending timer and marks any in-flight lookup stale, so a
// slow probe for an old candidate can never overwrite a newer candidate's
// state. Only the value that has been quiet for the full period is probed.
type HandleProber struct {
	checker AvailabilityChecker
	policy  domain.HandlePolicy
	quiet   time.Duration
	clock   Clock
	notify  func(ProbeResult)
	log     zerolog.Logger

	ctx context.Context

	mu      sync.Mutex
	gen     uint64
	pending Timer
	current ProbeResult
}

// NewHandleProber creates a prober for one interactive session. notify is
// invoked (with the internal mutex released) on every state change; it may be
// nil. ctx bounds all lookups the prober issues; cancel it to shut the
// session down.
func NewHandleProber(ctx context.Context, checker AvailabilityChecker, policy domain.HandlePolicy, quiet time.Duration, clock Clock, notify func(ProbeResult), log zerolog.Logger) *HandleProber {
	if quiet <= 0 {
		quiet = time.Second
	}
	if clock == nil {
		clock = RealClock()
	}
	return &HandleProber{
		checker: checker,
		policy:  policy,
		quiet:   quiet,
		clock:   clock,
		notify:  notify,
		log:     log,
		ctx:     ctx,
	}
}

// Input feeds the next candidate value. Invalid candidates report
// StatusInvalid immediately; valid ones report StatusProbing and schedule a
// lookup for after the quiet period.
func (p *HandleProber) Input(candidate string) {
	p.mu.Lock()

	p.gen++
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}

	if !p.policy.Valid(candidate) {
		result := ProbeResult{Candidate: candidate, Status: StatusInvalid}
		p.current = result
		p.mu.Unlock()
		p.emit(result)
		return
	}

	gen := p.gen
	result := ProbeResult{Candidate: candidate, Status: StatusProbing}
	p.current = result
	p.pending = p.clock.AfterFunc(p.quiet, func() {
		p.probe(candidate, gen)
	})
	p.mu.Unlock()
	p.emit(result)
}

// Current returns the latest state.
func (p *HandleProber) Current() ProbeResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Stop cancels any pending probe. Results of in-flight lookups are discarded.
func (p *HandleProber) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
}

func (p *HandleProber) probe(candidate string, gen uint64) {
	available, err := p.checker.CheckAvailability(p.ctx, candidate)

	p.mu.Lock()
	if gen != p.gen {
		// A newer candidate superseded this probe while it was in flight.
		p.mu.Unlock()
		return
	}

	var result ProbeResult
	switch {
	case err != nil:
		p.log.Warn().Err(err).Str("candidate", candidate).Msg("availability probe failed")
		result = ProbeResult{Candidate: candidate, Status: StatusError, Err: err}
	case available:
		result = ProbeResult{Candidate: candidate, Status: StatusAvailable}
	default:
		result = ProbeResult{Candidate: candidate, Status: StatusTaken}
	}
	p.current = result
	p.pending = nil
	p.mu.Unlock()
	p.emit(result)
}

func (p *HandleProber) emit(r ProbeResult) {
	if p.notify != nil {
		p.notify(r)
	}
}
