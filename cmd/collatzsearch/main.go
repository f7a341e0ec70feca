package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/henderiw/collatzsearch/pkg/collatz"
	"github.com/henderiw/collatzsearch/pkg/intervalset"
	"github.com/henderiw/collatzsearch/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log := klog.FromContext(ctx)

	seed := uint64(5)
	reportInterval := uint64(collatz.DefaultReportInterval)
	mergeMode := intervalset.MergeCoalesce.String()
	timeout := time.Duration(0)
	metricsListen := ""
	quiet := false
	flag.Uint64Var(&seed, "seed", seed, "first value to walk; bases from 4 upwards follow")
	flag.Uint64Var(&reportInterval, "report-interval", reportInterval, "steps between two checkpoints, 0 disables them")
	flag.StringVar(&mergeMode, "merge-mode", mergeMode, "interval merge mode: coalesce or single")
	flag.DurationVar(&timeout, "timeout", timeout, "stop the search after this long, 0 runs until a cycle is found")
	flag.StringVar(&metricsListen, "metrics-listen", metricsListen, "if set, serve prometheus metrics on this address")
	flag.BoolVar(&quiet, "quiet", quiet, "do not write progress lines to stdout")
	klog.InitFlags(nil)
	flag.Parse()

	mode, err := intervalset.ParseMergeMode(mergeMode)
	if err != nil {
		return err
	}

	observers := collatz.Observers{&collatz.LogObserver{Log: log, ProvenVerbosity: 2}}
	if !quiet {
		observers = append(observers, &collatz.TextObserver{W: os.Stdout})
	}
	if metricsListen != "" {
		reg := prometheus.NewRegistry()
		observers = append(observers, metrics.NewSearchMetrics(reg))
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			log.Info("serving metrics", "endpoint", metricsListen)
			if err := http.ListenAndServe(metricsListen, mux); err != nil {
				log.Error(err, "serving metrics", "endpoint", metricsListen)
			}
		}()
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.Info("searching for a collatz cycle", "seed", seed, "mergeMode", mode, "reportInterval", reportInterval)
	s := collatz.New(seed,
		collatz.WithObserver(observers),
		collatz.WithReportInterval(reportInterval),
		collatz.WithMergeMode(mode),
	)

	at, err := collatz.Run(ctx, s)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		log.Info("search timed out", "base", s.Base(), "steps", s.Steps())
		return nil
	case err != nil:
		return fmt.Errorf("searching from %d: %w", seed, err)
	}
	log.Info("search finished", "cycle", at, "base", s.Base(), "steps", s.Steps())
	return nil
}
