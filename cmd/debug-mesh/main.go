// Command debug-mesh loads a strip and prints its topology and a few sample
// ray queries down onto each patch.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"roadstrip/internal/common"
	"roadstrip/internal/config"
	"roadstrip/internal/logger"
	"roadstrip/internal/metrics"
	"roadstrip/internal/track"

	"github.com/golang/geo/r3"
)

func main() {
	cfg := config.Load()
	path := flag.String("strip", cfg.StripPath, "strip file")
	reverse := flag.Bool("reverse", cfg.StripReverse, "reverse the strip")
	height := flag.Float64("height", 5, "height above the racing line to cast from")
	serve := flag.Bool("serve", false, "keep running and serve /metrics on METRICS_ADDR")
	flag.Parse()

	l := logger.Setup()

	strip, err := track.Load(*path, *reverse, os.Stderr)
	if err != nil {
		l.Error("strip_load_error", "err", err)
		os.Exit(1)
	}

	fmt.Printf("patches:  %d\n", strip.Len())
	fmt.Printf("rejected: %d\n", strip.Rejected())
	fmt.Printf("closed:   %v\n", strip.Closed())
	b := strip.Bounds()
	fmt.Printf("bounds:   %v .. %v\n", b.Min, b.Max)

	// Walk the racing line with one probe, as a car would.
	probe := track.NewProbe()
	down := r3.Vector{Z: -1}
	misses := 0
	for i := 0; i < strip.Len(); i++ {
		p := strip.PatchAt(i)
		rl := p.RacingLine()
		// Just behind the front edge so the ray lands on patch i.
		back := common.Lerp(p.BL(), p.BR(), 0.5)
		at := common.Lerp(rl, back, 0.01)
		origin := at.Add(r3.Vector{Z: *height})
		c, ok := probe.Cast(strip, origin, down, 2**height)
		if !ok {
			misses++
			fmt.Printf("%4d next=%-4d MISS at %v\n", i, strip.Next(i), origin)
			continue
		}
		fmt.Printf("%4d next=%-4d hit patch %-4d z=%.3f normal=%v\n", i, strip.Next(i), c.Patch, c.Point.Z, c.Normal)
	}
	fmt.Printf("misses:   %d\n", misses)

	if *serve && cfg.MetricsAddr != "" {
		l.Info("metrics_listen", "addr", cfg.MetricsAddr)
		http.Handle("/metrics", metrics.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
			l.Error("metrics_listen_error", "err", err)
			os.Exit(1)
		}
	}
}
