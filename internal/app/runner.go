package app

import (
	"bufio"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"minigrep/internal/config"
	"minigrep/internal/metrics"
	"minigrep/internal/search"

	"go.uber.org/zap"
)

// Runner ties one resolved search to a file source and an output.
// It holds no per-search state, so Search may be called from many goroutines.
type Runner struct {
	source  Source
	out     io.Writer
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewRunner(source Source, out io.Writer, logger *zap.Logger, m *metrics.Metrics) *Runner {
	return &Runner{
		source:  source,
		out:     out,
		logger:  logger,
		metrics: m,
	}
}

// Run resolves args, searches the file and prints "Line <N>: <text>" per match.
// Nothing is printed when resolution or reading fails.
func (r *Runner) Run(args []string, env config.Env) error {
	cfg, err := config.Resolve(args, env)
	if err != nil {
		r.fail(err)
		return err
	}

	matches, err := r.Search(cfg)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(r.out)
	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "Line %d: %s\n", m.Line, m.Text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return w.Flush()
}

// Search reads the configured file and scans it.
func (r *Runner) Search(cfg *config.Config) ([]search.Match, error) {
	data, err := r.source.ReadFile(cfg.Filename())
	if err != nil {
		err = fmt.Errorf("%w %s: %w", ErrFileAccess, cfg.Filename(), err)
		r.fail(err)
		return nil, err
	}
	if !utf8.Valid(data) {
		err = fmt.Errorf("%w %s: not valid UTF-8 text", ErrFileAccess, cfg.Filename())
		r.fail(err)
		return nil, err
	}

	m := cfg.Matcher()
	start := time.Now()
	matches := search.Search(m, string(data))
	took := time.Since(start)

	r.metrics.ObserveScan(m.Mode(), len(matches), took)
	r.logger.Debug("scan finished",
		zap.String("file", cfg.Filename()),
		zap.Stringer("mode", m.Mode()),
		zap.Int("bytes", len(data)),
		zap.Int("matches", len(matches)),
		zap.Duration("took", took),
	)
	return matches, nil
}

func (r *Runner) fail(err error) {
	r.metrics.ObserveFailure(Kind(err))
	r.logger.Debug("search failed", zap.String("kind", Kind(err)), zap.Error(err))
}
