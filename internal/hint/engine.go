package hint

import (
	"strconv"

	"loglens/internal/browser"
	"loglens/internal/dashboard"
	"loglens/internal/trace"
)

// Settings is the user-facing toggle, read once per scan.
type Settings struct {
	WithStringInterpolationHint bool
}

// DefaultSettings has the hint enabled.
func DefaultSettings() Settings {
	return Settings{WithStringInterpolationHint: true}
}

// Sink receives annotations as they are planned.
type Sink interface {
	AddInlineAnnotation(offset int, d Descriptor)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(offset int, d Descriptor)

// AddInlineAnnotation calls f(offset, d).
func (f SinkFunc) AddInlineAnnotation(offset int, d Descriptor) { f(offset, d) }

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	Keywords []string
	Label    string
	BaseURL  string
	Opener   browser.Opener
	Report   ReportFunc
	Tracer   trace.Tracer
}

// Engine drives detection, link building and planning over a tree.
type Engine struct {
	detector Detector
	links    dashboard.Builder
	planner  Planner
	tracer   trace.Tracer
}

// New builds an Engine from opts.
func New(opts Options) *Engine {
	opener := opts.Opener
	if opener == nil {
		opener = browser.System{}
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	report := opts.Report
	return &Engine{
		detector: NewDetector(opts.Keywords),
		links:    dashboard.Builder{BaseURL: opts.BaseURL},
		planner: Planner{
			Label:   opts.Label,
			Icon:    IconInformation,
			Padding: DefaultPadding,
			Opener:  opener,
			Report: func(link string, err error) {
				trace.Error(tracer, trace.ScopeNode, "activate", err)
				if report != nil {
					report(link, err)
				}
			},
		},
		tracer: tracer,
	}
}

// Detector returns the engine's detector.
func (e *Engine) Detector() Detector { return e.detector }

// Scan walks root depth-first and emits one annotation per accepted
// candidate. An annotated node's children are not visited. It returns
// the number of annotations emitted.
func (e *Engine) Scan(root Node, settings Settings, sink Sink) int {
	if root == nil || sink == nil || !settings.WithStringInterpolationHint {
		return 0
	}
	span := trace.Begin(e.tracer, trace.ScopeFile, "scan", 0)
	w := walker{engine: e, sink: sink, parent: span.ID(), used: make(map[int]struct{})}
	w.visit(root)
	span.WithExtra("visited", strconv.Itoa(w.visited)).
		WithExtra("annotations", strconv.Itoa(w.emitted)).
		End("")
	return w.emitted
}

type walker struct {
	engine  *Engine
	sink    Sink
	parent  uint64
	used    map[int]struct{}
	visited int
	emitted int
}

func (w *walker) visit(node Node) {
	w.visited++
	if c := w.engine.detector.Detect(node); c.Accepted {
		link := w.engine.links.Build(dashboard.ExtractLiteral(node.Text()))
		if d, ok := w.engine.planner.Plan(c, link); ok {
			if _, dup := w.used[d.Offset]; !dup {
				w.used[d.Offset] = struct{}{}
				w.emitted++
				trace.Point(w.engine.tracer, trace.ScopeNode, "annotate", "offset="+strconv.Itoa(d.Offset), w.parent)
				w.sink.AddInlineAnnotation(d.Offset, d)
			}
			return
		}
	}
	for _, child := range node.Children() {
		if child != nil {
			w.visit(child)
		}
	}
}
