package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/hbnb-api/internal/adapter"
	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/internal/registry"
	"github.com/MKhiriev/hbnb-api/internal/workers"
)

// ErrUnexpectedAnswers is returned by [App.Run] when at least one probe got
// a status other than 501.
var ErrUnexpectedAnswers = errors.New("unexpected answers from server")

// probeParam replaces every path parameter in a probed route.
const probeParam = "smoke-check"

// Result is the answer to one probed operation.
type Result struct {
	Method string
	Path   string
	Status int
	Err    error
}

// OK reports whether the operation is mounted and answered as expected.
func (r Result) OK() bool {
	return r.Status == http.StatusNotImplemented
}

type App struct {
	server      adapter.ServerAdapter
	concurrency int
	out         io.Writer

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, concurrency int, out io.Writer, logger *logger.Logger) (*App, error) {
	if server == nil {
		return nil, errors.New("no server adapter")
	}
	return &App{server: server, concurrency: concurrency, out: out, logger: logger}, nil
}

// Run prints the server version, probes every documented operation and
// writes one line per operation to the app's output.
func (a *App) Run(ctx context.Context) error {
	version, err := a.server.Version(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}
	fmt.Fprintf(a.out, "HBnB API %s (profile %s, build %s)\n", version.APIVersion, version.Profile, version.BuildVersion)

	doc, err := a.server.Document(ctx)
	if err != nil {
		return fmt.Errorf("get api document: %w", err)
	}

	results, total := a.probe(ctx, doc)

	failed := 0
	for _, r := range results {
		mark := "ok"
		if !r.OK() {
			mark = "FAIL"
			failed++
		}
		fmt.Fprintf(a.out, "%-4s %-6s %-40s %d\n", mark, r.Method, r.Path, r.Status)
	}

	skipped := total - len(results)
	if skipped > 0 {
		fmt.Fprintf(a.out, "%d of %d operations not checked\n", skipped, total)
	}

	a.logger.Info().
		Int("operations", total).
		Int("failed", failed).
		Int("skipped", skipped).
		Msg("smoke check finished")

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("smoke check interrupted after %d of %d operations: %w", len(results), total, err)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d operations", ErrUnexpectedAnswers, failed, total)
	}
	return nil
}

// probe returns the collected results and the number of operations found in
// doc. Fewer results than operations means the pool stopped early.
func (a *App) probe(ctx context.Context, doc registry.Document) ([]Result, int) {
	var (
		mu      sync.Mutex
		results []Result
	)

	jobs := make([]workers.Worker, 0)
	for route, ops := range doc.Paths {
		path := concretePath(route)
		for method := range ops {
			method := strings.ToUpper(method)
			jobs = append(jobs, workers.WorkerFunc(func(ctx context.Context) {
				status, err := a.server.Probe(ctx, method, path)
				if status == 0 {
					a.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("probe failed")
				}

				mu.Lock()
				defer mu.Unlock()
				results = append(results, Result{Method: method, Path: path, Status: status, Err: err})
			}))
		}
	}

	workers.New(a.concurrency, jobs...).Run(ctx)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Path != results[j].Path {
			return results[i].Path < results[j].Path
		}
		return results[i].Method < results[j].Method
	})
	return results, len(jobs)
}

// concretePath fills every "{param}" segment of a documented route.
func concretePath(route string) string {
	segments := strings.Split(route, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = probeParam
		}
	}
	return strings.Join(segments, "/")
}
