// SPDX-License-Identifier: MIT

// Command origami folds a crease pattern and reports where every node ends up.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/origami/fold"
	"github.com/katalvlaran/origami/frame"
	"github.com/katalvlaran/origami/internal/config"
	"github.com/katalvlaran/origami/pattern"
	"github.com/katalvlaran/origami/render"
	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/spatial/r3"
)

const helpMessage = `
origami solves the fold angles of a crease pattern and embeds the folded sheet in 3D.

Usage: origami [options] <pattern.creasepattern> <triangles>

	The pattern file lists nodes and creases in "begin nodes" / "begin creases"
	sections. The triangles file lists one triangle per line as three node ids.
	Known fold angles and tolerances come from the TOML configuration. Input
	and output files whose names end in .gz are gzip compressed.

	-config     =string   TOML configuration file
	-svg        =string   Write the flat crease pattern as SVG
	-obj        =string   Write the folded surface as Wavefront OBJ
	-v          (flag)    Log every solved vertex and visited triangle
	-h, -help   (flag)    Show help message
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "origami: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and executes one fold, writing the node table to stdout.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("origami", flag.ContinueOnError)
	var (
		configFile = fs.String("config", "", "")
		svgFile    = fs.String("svg", "", "")
		objFile    = fs.String("obj", "", "")
		verbose    = fs.Bool("v", false, "")
		showHelp   = fs.Bool("help", false, "")
	)
	fs.BoolVar(showHelp, "h", false, "Show help message")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), helpMessage)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showHelp {
		fs.Usage()
		return nil
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("expected a pattern file and a triangles file, got %d arguments", fs.NArg())
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}
	if w := cfg.Log.LogWriter(); w != nil {
		log.SetOutput(w)
		defer func() {
			log.SetOutput(os.Stderr)
			w.Close()
		}()
	}

	p, err := readPattern(fs.Arg(0))
	if err != nil {
		return err
	}
	tris, err := readTriangles(fs.Arg(1))
	if err != nil {
		return err
	}
	log.Printf("Loaded %d nodes, %d creases, %d triangles", len(p.Nodes), len(p.Creases), len(tris))

	if *svgFile != "" {
		if err := writeFile(*svgFile, func(w io.Writer) error {
			return render.WriteSVG(w, p, cfg.RenderOptions()...)
		}); err != nil {
			return err
		}
	}

	known, err := cfg.KnownCreases()
	if err != nil {
		return err
	}
	var extra []fold.Option
	if *verbose {
		extra = append(extra,
			fold.WithOnSolve(func(node int, angles []float64) {
				log.Printf("Solved node %d: %.4f", node, angles)
			}),
			fold.WithFrameOptions(frame.WithOnVisit(func(tri, depth int) error {
				log.Printf("Visited triangle %d at depth %d", tri, depth)
				return nil
			})))
	}
	res, err := fold.Solve(p, tris, known, cfg.Seed, cfg.FoldOptions(extra...)...)
	kinds := p.Kinds()
	if err != nil {
		return err
	}
	log.Printf("Resolved %d crease angles", res.Creases.Len()/2)
	for _, e := range res.Flattened {
		log.Printf("Crease %d-%d is tagged %s but was left flat", e.From, e.To, kinds[e])
	}

	if *objFile != "" {
		if err := writeFile(*objFile, func(w io.Writer) error {
			return render.WriteOBJ(w, res.Index, res.Frames)
		}); err != nil {
			return err
		}
	}
	return writeNodes(stdout, res.Frames)
}

func readPattern(filename string) (*pattern.Pattern, error) {
	r, err := openInput(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return pattern.Parse(r)
}

func readTriangles(filename string) ([]pattern.Triangle, error) {
	r, err := openInput(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return pattern.ParseTriangles(r)
}

// gzipFile closes the decompressor and then the file under it.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// openInput opens filename, decompressing it when the name ends in .gz.
func openInput(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(filename, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to use gzip for reading %s: %w", filename, err)
	}
	return gzipFile{Reader: zr, f: f}, nil
}

// writeFile creates filename, fills it with write and logs its size. Names
// ending in .gz are gzip compressed.
func writeFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	var zw *gzip.Writer
	var w io.Writer = f
	if strings.HasSuffix(filename, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}
	if err = write(w); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("unable to gzip %s: %w", filename, err)
		}
	}
	if err = f.Close(); err != nil {
		return err
	}
	if fi, err := os.Stat(filename); err == nil {
		log.Printf("Wrote %s (%s)", filename, humanize.Bytes(uint64(fi.Size())))
	}
	return nil
}

// writeNodes prints one line per node: its id and folded position, or "-"
// when it was never placed.
func writeNodes(w io.Writer, res *frame.Result) error {
	for n := range res.Placed {
		p, ok := res.Position(n)
		var err error
		if ok {
			_, err = fmt.Fprintf(w, "%d %s\n", n, formatVec(p))
		} else {
			_, err = fmt.Fprintf(w, "%d -\n", n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func formatVec(p r3.Vec) string {
	return fmt.Sprintf("%.6f %.6f %.6f", clean(p.X), clean(p.Y), clean(p.Z))
}

// clean maps rounding noise around zero to zero so it never prints as -0.
func clean(x float64) float64 {
	if x > -5e-7 && x < 5e-7 {
		return 0
	}
	return x
}
