// internal/batch/batch.go
package batch

import (
	"context"
	"sync"

	"alnedit/internal/cmdutil"
	"alnedit/internal/jobs"
	"alnedit/internal/runutil"
	"cloudeng.io/errors"
)

// Config controls a batch run.
type Config struct {
	Threads   int  // worker goroutines; <1 means one per CPU
	KeepGoing bool // record failures and continue instead of stopping
	CIGAR     bool // align scripts are run-length encoded
}

// Run converts list on a pool of workers and calls visit once per job in
// input order. Failed jobs are logged at Warn. Without KeepGoing the first
// failure (in input order) stops the run and is returned; with KeepGoing
// failed results are passed to visit as well and all failures are returned
// together. Cancellation of ctx is honored between jobs.
func Run(ctx context.Context, cfg Config, list []jobs.Job, visit func(jobs.Result) error) error {
	threads := runutil.EffectiveThreads(cfg.Threads, len(list))
	log := cmdutil.Logger(ctx)
	warnDuplicateIDs(ctx, list)
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type slot struct {
		pos int
		res jobs.Result
	}
	type work struct {
		pos int
		job jobs.Job
	}
	in := make(chan work, threads*2)
	out := make(chan slot, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for wk := range in {
				r := jobs.Convert(wk.job, cfg.CIGAR)
				select {
				case out <- slot{pos: wk.pos, res: r}:
				case <-runCtx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(in)
		for i, j := range list {
			select {
			case in <- work{pos: i, job: j}:
			case <-runCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	// Reorder so visit sees input order regardless of worker timing.
	var (
		errs    errors.M
		stopErr error
		next    int
		pending = make(map[int]jobs.Result)
	)
	for s := range out {
		if stopErr != nil {
			continue // drain
		}
		pending[s.pos] = s.res
		for stopErr == nil {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if r.Err != nil {
				log.Warn("conversion failed", "id", r.Job.ID, "source", r.Job.Source, "line", r.Job.Line, "err", r.Err)
				if !cfg.KeepGoing {
					stopErr = r.Err
					cancel()
					break
				}
				errs.Append(r.Err)
			} else {
				log.Debug("converted", "id", r.Job.ID, "kind", string(r.Job.Kind), "columns", len(r.Script))
			}
			if err := visit(r); err != nil {
				stopErr = err
				cancel()
			}
		}
	}

	if stopErr != nil {
		return stopErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return errs.Err()
}

// warnDuplicateIDs logs jobs whose ID repeats a recent one. Output rows are
// keyed by ID, so repeats are legal but usually a mistake.
func warnDuplicateIDs(ctx context.Context, list []jobs.Job) {
	log := cmdutil.Logger(ctx)
	seen := runutil.NewLRUSet[string](0)
	for _, j := range list {
		if seen.Add(j.ID) {
			log.Warn("duplicate job id", "id", j.ID, "source", j.Source, "line", j.Line)
		}
	}
}
