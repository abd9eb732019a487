// Command hyperspec-sweep loads a hyperspectral cube from a WAV host
// container and runs the compression pipeline for every registered
// predictor, reporting compression ratios and timings to stdout. A
// failure on one predictor is logged and does not stop the sweep.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/mewkiz/hypercube/container"
	"github.com/mewkiz/hypercube/cube"
	"github.com/mewkiz/hypercube/pipeline"
	"github.com/mewkiz/hypercube/predictor"
	"github.com/mewkiz/pkg/osutil"
	"github.com/mewkiz/pkg/pathutil"
	"github.com/pkg/errors"
)

func main() {
	var (
		workers int
		force   bool
	)
	flag.IntVar(&workers, "j", 4, "number of predictors to run concurrently")
	flag.BoolVar(&force, "f", false, "force overwrite report file")
	flag.Parse()
	for _, wavPath := range flag.Args() {
		if err := sweep(wavPath, workers, force); err != nil {
			log.Fatalf("%+v", err)
		}
	}
}

// runResult is one predictor's sweep outcome; Err is set when the
// pipeline failed for that predictor alone.
type runResult struct {
	Kind    predictor.Kind
	Metrics pipeline.Metrics
	Elapsed time.Duration
	Err     error
}

func sweep(wavPath string, workers int, force bool) error {
	if !osutil.Exists(wavPath) {
		return errors.Errorf("host container %q not found", wavPath)
	}
	reportPath := pathutil.TrimExt(wavPath) + ".report.txt"
	if !force && osutil.Exists(reportPath) {
		return errors.Errorf("report file %q already present; use -f flag to force overwrite", reportPath)
	}

	f, err := os.Open(wavPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()

	c, err := container.LoadCube(f)
	if err != nil {
		return errors.WithStack(err)
	}

	results := runSweep(c, workers)
	report(os.Stdout, results)

	out, err := os.Create(reportPath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer out.Close()
	report(out, results)
	return nil
}

// runSweep runs every registered predictor over c through a bounded
// worker pool, catching and recording per-predictor failures instead of
// aborting the sweep.
func runSweep(c *cube.Cube, workers int) []runResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan predictor.Kind, len(predictor.Kinds))
	for _, kind := range predictor.Kinds {
		jobs <- kind
	}
	close(jobs)

	resultsCh := make(chan runResult, len(predictor.Kinds))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for kind := range jobs {
				resultsCh <- runOne(c, kind)
			}
		}()
	}
	wg.Wait()
	close(resultsCh)

	results := make([]runResult, 0, len(predictor.Kinds))
	for r := range resultsCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Kind < results[j].Kind })
	return results
}

func runOne(c *cube.Cube, kind predictor.Kind) runResult {
	start := time.Now()
	a, err := pipeline.CompressAndReconstruct(c, kind, predictor.Options{})
	elapsed := time.Since(start)
	if err != nil {
		return runResult{Kind: kind, Elapsed: elapsed, Err: errors.Wrapf(err, "predictor %s", kind)}
	}
	if !a.Reconstructed.Equal(c) {
		return runResult{Kind: kind, Elapsed: elapsed, Err: errors.Errorf("predictor %s: reconstructed cube does not match original", kind)}
	}
	return runResult{Kind: kind, Metrics: pipeline.Measure(a), Elapsed: elapsed}
}

func report(w io.Writer, results []runResult) {
	fmt.Fprintf(w, "%-22s %10s %10s %10s %12s\n", "predictor", "direct x", "rle x", "elapsed", "status")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%-22s %10s %10s %10s %12s\n", r.Kind, "-", "-", r.Elapsed.Round(time.Microsecond), "FAILED: "+r.Err.Error())
			continue
		}
		fmt.Fprintf(w, "%-22s %10.2f %10.2f %10s %12s\n",
			r.Kind, r.Metrics.DirectRatio, r.Metrics.RLERatio, r.Elapsed.Round(time.Microsecond), "ok")
	}
}
