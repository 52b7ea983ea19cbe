// Package export writes schematic drawings to image files: SVG as
// drawn, PNG and PDF through the SVG renderers, and the netlist as a
// Graphviz DOT graph.
package export

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	fcolor "github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/rcoan/airsoft-suitcase/netlist"
	"github.com/rcoan/airsoft-suitcase/schematic"
	"github.com/rcoan/airsoft-suitcase/svgicon"
	"github.com/rcoan/airsoft-suitcase/svgpdf"
	"github.com/rcoan/airsoft-suitcase/svgraster"
)

// Format is an output file format, also used as file extension.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
	PDF Format = "pdf"
	DOT Format = "dot"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormats parses a comma separated list of formats, such as "svg,png".
// Duplicates are dropped.
func ParseFormats(s string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, f := range strings.Split(s, ",") {
		f := Format(strings.ToLower(strings.TrimSpace(f)))
		switch f {
		case "":
			continue
		case SVG, PNG, PDF, DOT:
		default:
			return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(f))
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, errors.Wrap(ErrUnknownFormat, "no format given")
	}
	return out, nil
}

// JoinFormats is the inverse of ParseFormats.
func JoinFormats(fs []Format) string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return strings.Join(names, ",")
}

// Job is one drawing to export, saved as <Name>.<format>.
type Job struct {
	Name  string
	Build func() (*schematic.Drawing, error)
}

// Config controls where and how the drawings are written.
type Config struct {
	Dir        string   // output directory, created if needed
	DPI        float64  // resolution of raster outputs
	Formats    []Format // formats written for each job
	Jobs       int      // number of drawings processed concurrently
	Background string   // background of raster outputs, "none" for transparent
}

// DefaultConfig returns the configuration used by the generators.
func DefaultConfig() Config {
	return Config{
		Dir:        "diagrams",
		DPI:        300,
		Formats:    []Format{SVG, PNG},
		Jobs:       1,
		Background: "white",
	}
}

func (cfg Config) rasterOptions() (*svgraster.Options, error) {
	opts := &svgraster.Options{DPI: cfg.DPI}
	if cfg.Background == "" {
		return opts, nil
	}
	bg, err := svgicon.ParseColor(cfg.Background)
	if err != nil {
		return nil, errors.Wrap(err, "invalid background")
	}
	if c, ok := bg.(svgicon.PlainColor); ok {
		opts.Background = c.NRGBA
	}
	return opts, nil
}

var progress = fcolor.New(fcolor.FgCyan)

// Progress prints a progress message to out, highlighted when out is a
// terminal.
func Progress(out io.Writer, format string, args ...interface{}) {
	progress.Fprintf(out, format, args...)
}

// Run builds and writes every job into cfg.Dir, in every format of cfg.
// Progress is printed to out, which may be nil. The first failure
// cancels the jobs not yet started and is returned.
// The written paths are returned in job order.
func Run(ctx context.Context, cfg Config, jobs []Job, out io.Writer) ([]string, error) {
	opts, err := cfg.rasterOptions()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "unable to create %s", cfg.Dir)
	}

	var mu sync.Mutex
	report := func(format string, args ...interface{}) {
		if out == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		Progress(out, format, args...)
	}

	written := make([][]string, len(jobs))
	limit := cfg.Jobs
	if limit < 1 {
		limit = 1
	}
	errGrp, gCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(limit)
	for i, job := range jobs {
		i, job := i, job
		errGrp.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return errors.Wrapf(err, "diagram %s", job.Name)
			}
			report("Generating %s...\n", job.Name)
			paths, err := writeJob(cfg, opts, job)
			written[i] = paths
			return err
		})
	}
	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	var paths []string
	for _, ps := range written {
		paths = append(paths, ps...)
	}
	report("All diagrams generated successfully!\n")
	return paths, nil
}

func writeJob(cfg Config, opts *svgraster.Options, job Job) ([]string, error) {
	d, err := job.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "diagram %s", job.Name)
	}
	paths := make([]string, 0, len(cfg.Formats))
	for _, format := range cfg.Formats {
		path := filepath.Join(cfg.Dir, job.Name+"."+string(format))
		if err := WriteFile(path, d, format, opts); err != nil {
			return paths, errors.Wrapf(err, "diagram %s (%s)", job.Name, format)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteFile writes d to path in the given format. opts is only used
// by PNG and may be nil.
func WriteFile(path string, d *schematic.Drawing, format Format, opts *svgraster.Options) error {
	write, err := encoder(d, format, opts)
	if err != nil {
		return err
	}
	return writeFile(path, write)
}

// writeFile removes the file again when write fails, so that no
// truncated output is left behind.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create file")
	}
	w := bufio.NewWriter(f)
	err = write(w)
	if err == nil {
		err = errors.Wrapf(w.Flush(), "unable to write %s", path)
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return errors.Wrapf(f.Close(), "unable to close %s", path)
}

// Write encodes d to w in the given format.
func Write(w io.Writer, d *schematic.Drawing, format Format, opts *svgraster.Options) error {
	write, err := encoder(d, format, opts)
	if err != nil {
		return err
	}
	return write(w)
}

func encoder(d *schematic.Drawing, format Format, opts *svgraster.Options) (func(io.Writer) error, error) {
	switch format {
	case SVG:
		return d.WriteSVG, nil
	case PNG, PDF:
		svg, err := d.SVG()
		if err != nil {
			return nil, err
		}
		if format == PNG {
			return func(w io.Writer) error {
				return errors.Wrap(svgraster.WritePNG(w, bytes.NewReader(svg), opts), "unable to render PNG")
			}, nil
		}
		return func(w io.Writer) error {
			return errors.Wrap(svgpdf.WritePDF(w, bytes.NewReader(svg)), "unable to render PDF")
		}, nil
	case DOT:
		nl, err := netlist.Extract(d)
		if err != nil {
			return nil, err
		}
		return nl.WriteDOT, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", string(format))
}
