package main

import (
	"flag"
	"os"
	"path/filepath"

	"roadstrip/internal/bezier"
	"roadstrip/internal/logger"
	"roadstrip/internal/trackgen"
)

func main() {
	out := flag.String("o", "assets/oval.trk", "output file")
	kind := flag.String("kind", "oval", "oval or straight")
	segments := flag.Int("segments", 48, "number of patches")
	radiusX := flag.Float64("rx", 60, "oval radius along X")
	radiusY := flag.Float64("ry", 40, "oval radius along Y")
	length := flag.Float64("len", 10, "patch length for straight strips")
	width := flag.Float64("width", 10, "road width")
	flag.Parse()

	l := logger.Setup()

	var patches []*bezier.Patch
	switch *kind {
	case "straight":
		patches = trackgen.Straight(*segments, *length, *width)
	default:
		patches = trackgen.Oval(*segments, *radiusX, *radiusY, *width)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		l.Error("mkdir_error", "err", err)
		os.Exit(1)
	}
	f, err := os.Create(*out)
	if err != nil {
		l.Error("create_error", "path", *out, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := bezier.Write(f, patches...); err != nil {
		l.Error("write_error", "path", *out, "err", err)
		os.Exit(1)
	}
	l.Info("track_written", "path", *out, "kind", *kind, "patches", len(patches))
}
