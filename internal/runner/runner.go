package runner

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cleared-dev/fecgen/internal/accounts"
	"github.com/cleared-dev/fecgen/internal/anomaly"
	"github.com/cleared-dev/fecgen/internal/fec"
	"github.com/cleared-dev/fecgen/internal/id"
	"github.com/cleared-dev/fecgen/internal/journal"
	"github.com/cleared-dev/fecgen/internal/model"
	"github.com/cleared-dev/fecgen/internal/runlog"
	"github.com/cleared-dev/fecgen/internal/synth"
)

// Job describes one ledger to generate.
type Job struct {
	Company      string
	Siren        string
	Start        time.Time
	End          time.Time
	Transactions int
	AnomalyRate  float64
	Kinds        []anomaly.Kind // nil = every kind
	Formats      []fec.Format
	Dir          string
	BaseName     string // file name without extension
}

// Path returns the output path of the job for format f.
func (j Job) Path(f fec.Format) string {
	return filepath.Join(j.Dir, j.BaseName+f.Ext())
}

// Result is the outcome of one job.
type Result struct {
	Job       Job
	Lines     int
	Anomalies anomaly.Report
	Repair    journal.RepairResult
	Residual  []journal.ImbalanceError // still imbalanced after repair
	Files     []string
	Err       error
}

// Status summarizes the result for the manifest.
func (r Result) Status() runlog.Status {
	switch {
	case r.Err != nil:
		return runlog.StatusFailed
	case len(r.Residual) > 0:
		return runlog.StatusWarning
	default:
		return runlog.StatusOK
	}
}

// Runner generates ledgers from one set of reference data.
type Runner struct {
	ref   *accounts.Service
	log   zerolog.Logger
	runID uuid.UUID
	now   func() time.Time
}

// New creates a Runner. Every manifest row it writes shares one run ID.
func New(ref *accounts.Service, log zerolog.Logger) *Runner {
	return &Runner{
		ref:   ref,
		log:   log,
		runID: runlog.NewRunID(),
		now:   time.Now,
	}
}

// RunID returns the identifier written to the manifest.
func (r *Runner) RunID() uuid.UUID {
	return r.runID
}

// NewRand returns a PCG source for seed; seed 0 draws a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Build runs the in-memory pipeline for job and returns the final lines,
// sorted by journal code then entry id.
func (r *Runner) Build(job Job, rng *rand.Rand) ([]model.LedgerLine, Result) {
	result := Result{Job: job}

	lines := synth.New(r.ref, rng).Generate(synth.Params{
		Start:        job.Start,
		End:          job.End,
		Transactions: job.Transactions,
	})
	result.Anomalies = anomaly.NewInjector(rng, job.Kinds...).Inject(lines, job.AnomalyRate)

	journal.SortLines(lines)

	before := journal.Validate(lines)
	if !before.Valid() {
		r.log.Debug().
			Str("company", job.Company).
			Int("imbalanced", len(before.Errors)).
			Msg("repairing entries")
		result.Repair = journal.Repair(lines)
	}

	after := journal.Validate(lines)
	result.Residual = after.Errors
	result.Lines = len(lines)
	return lines, result
}

// Run builds the job's ledger and writes one file per format. I/O failures
// are returned in Result.Err; files already written are kept.
func (r *Runner) Run(job Job, rng *rand.Rand) Result {
	lines, result := r.Build(job, rng)

	for _, e := range result.Residual {
		r.log.Warn().
			Str("entry", id.EcritureNum(e.Entry.JournalCode, e.Entry.EntryID)).
			Str("deviation", e.Deviation.StringFixed(2)).
			Msg("entry still imbalanced after repair")
	}

	if err := os.MkdirAll(job.Dir, 0o755); err != nil {
		result.Err = fmt.Errorf("creating output dir: %w", err)
		return result
	}
	for _, f := range job.Formats {
		path := job.Path(f)
		if err := fec.WriteFile(path, f, lines); err != nil {
			result.Err = err
			return result
		}
		result.Files = append(result.Files, path)
	}

	event := r.log.Info()
	for kind, n := range result.Anomalies.ByKind() {
		event = event.Int(string(kind), n)
	}
	event.
		Strs("files", result.Files).
		Int("lines", result.Lines).
		Int("anomalies", result.Anomalies.Count()).
		Int("repaired", len(result.Repair.Corrections)).
		Int("residual", len(result.Residual)).
		Msg("ledger generated")
	return result
}

// RunAll runs jobs in order, each with its own random source derived from
// rng, and appends one manifest row per output file to each job's
// directory. A failed job does not stop the ones after it; all failures are
// returned joined.
func (r *Runner) RunAll(jobs []Job, rng *rand.Rand) ([]Result, error) {
	results := make([]Result, 0, len(jobs))
	var errs []error

	for _, job := range jobs {
		jobRng := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		result := r.Run(job, jobRng)
		results = append(results, result)

		if result.Err != nil {
			r.log.Error().Err(result.Err).Str("company", job.Company).Msg("generation failed")
			errs = append(errs, fmt.Errorf("%s: %w", job.BaseName, result.Err))
		}
		if err := runlog.Append(job.Dir, r.manifest(result)); err != nil {
			r.log.Warn().Err(err).Msg("failed to write manifest")
		}
	}
	return results, errors.Join(errs...)
}

// manifest returns one row per requested format. Formats whose file was
// written carry the balance status; the others carry the failure.
func (r *Runner) manifest(result Result) []runlog.Entry {
	job := result.Job
	entries := make([]runlog.Entry, 0, len(job.Formats))
	for _, f := range job.Formats {
		e := runlog.Entry{
			RunID:        r.runID,
			Timestamp:    r.now().UTC(),
			File:         filepath.Base(job.Path(f)),
			Format:       string(f),
			Company:      job.Company,
			Siren:        job.Siren,
			Transactions: job.Transactions,
			Lines:        result.Lines,
			AnomalyRate:  job.AnomalyRate,
			Anomalies:    result.Anomalies.Count(),
			Repaired:     len(result.Repair.Corrections),
			Residual:     len(result.Residual),
			Status:       runlog.StatusOK,
		}
		switch {
		case !slices.Contains(result.Files, job.Path(f)):
			e.Status = runlog.StatusFailed
			if result.Err != nil {
				e.Error = result.Err.Error()
			}
		case len(result.Residual) > 0:
			e.Status = runlog.StatusWarning
		}
		entries = append(entries, e)
	}
	return entries
}
