// Package driver runs the annotation engine over files on disk.
package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"loglens/internal/hint"
	"loglens/internal/observ"
	"loglens/internal/source"
	"loglens/internal/syntax"
	"loglens/internal/trace"
)

var statPath = os.Stat

// Options configures a multi-file scan.
type Options struct {
	Engine   hint.Options
	Settings hint.Settings
	// Jobs bounds concurrent files; zero uses GOMAXPROCS.
	Jobs int
	// BaseDir is used for display paths.
	BaseDir string
}

// Annotation is one planned annotation resolved to a file position.
// Offset is the byte offset in the file as stored on disk, BOM and CRLF
// line endings included. Line and Col count the normalized content.
type Annotation struct {
	Offset   int    `json:"offset" msgpack:"offset"`
	Line     uint32 `json:"line" msgpack:"line"`
	Col      uint32 `json:"col" msgpack:"col"`
	Label    string `json:"label" msgpack:"label"`
	Link     string `json:"link" msgpack:"link"`
	Activate func() `json:"-" msgpack:"-"`
}

// FileResult holds the outcome for one input file.
type FileResult struct {
	Path        string
	File        *source.File
	Annotations []Annotation
	Err         error
	Timing      *observ.Report
}

// Result is the outcome of ScanFiles, in input order.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
}

// Count returns the total number of annotations.
func (r *Result) Count() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Annotations)
	}
	return n
}

// Failed returns the results that carry an error.
func (r *Result) Failed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// ScanFiles loads, parses and scans every path in parallel. A failure on
// one file is recorded on its result and does not stop the others. The
// returned error is only set when ctx is canceled.
func ScanFiles(ctx context.Context, paths []string, opts Options) (*Result, error) {
	tracer := trace.FromContext(ctx)
	engineOpts := opts.Engine
	if engineOpts.Tracer == nil {
		engineOpts.Tracer = tracer
	}
	engine := hint.New(engineOpts)

	res := &Result{
		FileSet: source.NewFileSetWithBase(opts.BaseDir),
		Files:   make([]FileResult, len(paths)),
	}
	if len(paths) == 0 {
		return res, nil
	}

	span := trace.Begin(tracer, trace.ScopeDriver, "scan_files", 0).
		WithExtra("files", strconv.Itoa(len(paths)))
	defer span.End("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own index.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Files[i] = scanOne(gctx, engine, res.FileSet, path, opts.Settings, span.ID())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

func scanOne(ctx context.Context, engine *hint.Engine, fileSet *source.FileSet, path string, settings hint.Settings, parent uint64) (out FileResult) {
	out.Path = path
	timer := observ.NewTimer()
	defer func() {
		report := timer.Report()
		out.Timing = &report
	}()
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file", parent).WithExtra("path", path)
	defer span.End("")

	parser, err := syntax.ForPath(path)
	if err != nil {
		out.Err = err
		trace.Error(tracer, trace.ScopeFile, "select_parser", err)
		return
	}

	idx := timer.Begin("load")
	id, err := fileSet.Load(path)
	timer.End(idx, "")
	if err != nil {
		out.Err = fmt.Errorf("failed to load %s: %w", path, err)
		trace.Error(tracer, trace.ScopeFile, "load", out.Err)
		return
	}
	file := fileSet.Get(id)
	out.File = file

	idx = timer.Begin("parse")
	root, err := parser.Parse(ctx, file.Content)
	timer.End(idx, "")
	if err != nil {
		out.Err = fmt.Errorf("failed to parse %s: %w", path, err)
		trace.Error(tracer, trace.ScopeFile, "parse", out.Err)
		return
	}

	idx = timer.Begin("annotate")
	out.Annotations = Collect(engine, root, settings, file)
	timer.End(idx, strconv.Itoa(len(out.Annotations))+" annotations")
	return
}

// Collect scans root and resolves each annotation against file. file may
// be nil, in which case Line and Col stay zero.
func Collect(engine *hint.Engine, root hint.Node, settings hint.Settings, file *source.File) []Annotation {
	var out []Annotation
	engine.Scan(root, settings, hint.SinkFunc(func(offset int, d hint.Descriptor) {
		a := Annotation{
			Offset:   offset,
			Label:    d.Label,
			Link:     d.Link,
			Activate: d.OnActivate,
		}
		if file != nil {
			pos := file.Position(offset)
			a.Offset = file.DiskOffset(offset)
			a.Line, a.Col = pos.Line, pos.Col
		}
		out = append(out, a)
	}))
	return out
}
