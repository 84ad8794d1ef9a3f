package runner

import (
	"fmt"
	"math/rand/v2"

	"github.com/cleared-dev/fecgen/internal/config"
)

// Batch parameter ranges.
const (
	batchMinTransactions = 300
	batchMaxTransactions = 1000 // inclusive
	batchMinRate         = 0.03
	batchMaxRate         = 0.15
)

// Plan turns a validated config into jobs. Single mode yields one job with
// the configured company and volume. Batch mode yields batch.count jobs,
// each with its own company name, SIREN, volume and anomaly rate drawn from
// rng.
func Plan(cfg *config.Config, rng *rand.Rand) ([]Job, error) {
	start, end, err := cfg.Period.Range()
	if err != nil {
		return nil, err
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return nil, err
	}

	base := Job{
		Company:      cfg.Company.Name,
		Siren:        cfg.Company.Siren,
		Start:        start,
		End:          end,
		Transactions: cfg.Generation.Transactions,
		AnomalyRate:  cfg.Generation.AnomalyRate,
		Kinds:        kinds,
		Formats:      cfg.Formats(),
		Dir:          cfg.Output.Dir,
		BaseName:     cfg.Output.BaseName,
	}
	if !cfg.BatchMode() {
		return []Job{base}, nil
	}

	jobs := make([]Job, 0, cfg.Batch.Count)
	for i := 1; i <= cfg.Batch.Count; i++ {
		job := base
		job.Company = fmt.Sprintf("ENTREPRISE_%d SAS", i)
		job.Siren = randomSiren(rng)
		job.Transactions = batchMinTransactions + rng.IntN(batchMaxTransactions-batchMinTransactions+1)
		job.AnomalyRate = batchMinRate + rng.Float64()*(batchMaxRate-batchMinRate)
		job.BaseName = fmt.Sprintf("%s%d_%d", cfg.Batch.Prefix, i, start.Year())
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// randomSiren returns nine random digits; leading zeros are allowed.
func randomSiren(rng *rand.Rand) string {
	return fmt.Sprintf("%09d", rng.IntN(1_000_000_000))
}
