//    SurveyTopicsGo
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package stm

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/e-gun/SurveyTopicsGo/internal/str"
)

// RunSweep - fit one model per K in the grid, every fit seeded alike and fed
// the same read-only training split, and collect a diagnostics record per K.
// A fit that dies is recorded in its record and does not take siblings along.
func RunSweep(h *str.HeldoutSplit, cfg LDAConfig, workers int) []str.ModelDiagnostics {
	// see https://go.dev/blog/pipelines : see Parallel digestion & Fan-out, fan-in & Explicit cancellation

	const (
		MSG1 = "RunSweep() fitting %d models over %d workers"
		MSG2 = "K=%d done in %.1fs"
		WRN1 = "K=%d failed: %s"
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	grid := cfg.KGrid
	workers = min(workers, len(grid))
	if workers < 1 {
		workers = 1
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(grid), workers))

	// [a] load the candidate K values into a channel

	kchannel := kfeeder(ctx, grid)

	// [b] fan out to fit in parallel; fitters fed by the K channel

	fitchannels := make([]<-chan str.ModelDiagnostics, workers)
	for i := 0; i < workers; i++ {
		fitchannels[i] = kfitter(ctx, kchannel, h, cfg)
	}

	// [c] fan in to gather the records into a single channel

	results := diagaggregator(ctx, fitchannels...)

	// [d] pull the records off of the channel and collate them

	var all []str.ModelDiagnostics
	for dd := range results {
		if dd.Failure == "" {
			Msg.FYI(fmt.Sprintf(MSG2, dd.K, dd.Seconds))
		} else {
			Msg.WARN(fmt.Sprintf(WRN1, dd.K, dd.Failure))
		}
		all = append(all, dd)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].K < all[j].K })

	return all
}

// kfeeder - emit the K grid to a channel; the values will be consumed by the kfitters
func kfeeder(ctx context.Context, grid []int) <-chan int {
	emitk := make(chan int, len(grid))

	feed := func() {
		defer close(emitk)
		for i := 0; i < len(grid); i++ {
			select {
			case <-ctx.Done():
				return
			default:
				emitk <- grid[i]
			}
		}
	}

	go feed()

	return emitk
}

// kfitter - grab a K; fit and diagnose a model; emit the record to a channel
func kfitter(ctx context.Context, kchannel <-chan int, h *str.HeldoutSplit, cfg LDAConfig) <-chan str.ModelDiagnostics {
	records := make(chan str.ModelDiagnostics)

	consume := func() {
		defer close(records)
		for k := range kchannel {
			select {
			case <-ctx.Done():
				return
			default:
				records <- sweepone(k, h, cfg)
			}
		}
	}

	go consume()

	return records
}

// diagaggregator - gather the records from all the fitter channels into one place
func diagaggregator(ctx context.Context, fitchannels ...<-chan str.ModelDiagnostics) <-chan str.ModelDiagnostics {
	var wg sync.WaitGroup
	resultchann := make(chan str.ModelDiagnostics)

	broadcast := func(dd <-chan str.ModelDiagnostics) {
		defer wg.Done()
		for d := range dd {
			select {
			case resultchann <- d:
			case <-ctx.Done():
				return
			}
		}
	}

	wg.Add(len(fitchannels))
	for _, fc := range fitchannels {
		go broadcast(fc)
	}

	go func() {
		wg.Wait()
		close(resultchann)
	}()

	return resultchann
}

// sweepone - one K, one record; panics inside the fit surface as a Failure
func sweepone(k int, h *str.HeldoutSplit, cfg LDAConfig) (diag str.ModelDiagnostics) {
	const (
		FAIL1 = "fit panicked: %v"
	)

	start := time.Now()
	diag.K = k

	defer func() {
		if r := recover(); r != nil {
			diag.Failure = fmt.Sprintf(FAIL1, r)
			diag.Seconds = time.Since(start).Seconds()
		}
	}()

	// the pool supplies the parallelism; each fit runs single-threaded
	m, err := Fit(h.Train, k, cfg.Seed, cfg, 1)
	if err != nil {
		diag.Failure = err.Error()
		diag.Seconds = time.Since(start).Seconds()
		return diag
	}

	diag.Exclusivity = Exclusivity(m)
	diag.Coherence = SemanticCoherence(m, h.Train)
	diag.Heldout = EvalHeldout(m, h.Missing)
	diag.Dispersion, diag.DispersionP = CheckResiduals(m, h.Train)
	diag.Bound = m.Bound()
	diag.LBound = m.LBound()
	diag.Iterations = m.Iterations
	diag.Seconds = time.Since(start).Seconds()

	return diag
}
