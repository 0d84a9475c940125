package app

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/nestcodec/internal/config"
	"github.com/zeusync/nestcodec/internal/observability/log"
	"github.com/zeusync/nestcodec/pkg/encoding"
	"github.com/zeusync/nestcodec/pkg/nested"
)

// Report describes what a run wrote and rendered.
type Report struct {
	RunID     string
	Path      string
	Encoded   []byte
	Digest    uint64
	Rendered  string
	Chain     []string
	ChainView string
}

type Runner struct {
	cfg    *config.Config
	logger log.Log
}

func NewRunner(cfg *config.Config, logger log.Log) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

func (r *Runner) Run() (Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return Report{}, err
	}

	report := Report{RunID: uuid.NewString(), Path: r.cfg.OutputPath}
	logger := r.logger.With(log.String("run_id", report.RunID))

	value := encoding.TaggedInt{Kind: r.cfg.Kind, Value: r.cfg.Value}
	if err := r.persist(logger, value, &report); err != nil {
		logger.Error("write failed", log.String("path", report.Path), log.Error(err))
		return report, err
	}

	report.Rendered = nested.Of(r.cfg.Value, r.cfg.Depth).Render()
	logger.Debug("rendered wrapper",
		log.Uint("depth", r.cfg.Depth),
		log.String("rendered", report.Rendered),
	)

	// links stay referenced by this frame while the view of the outermost one is rendered
	links := nested.Chain(r.cfg.Value, r.cfg.ChainDepths...)
	report.Chain = make([]string, len(links))
	for i, w := range links {
		report.Chain[i] = w.Render()
	}
	if len(links) > 0 {
		if inner := links[len(links)-1].ViewInner(); inner != nil {
			report.ChainView = inner.Render()
		}
	}
	logger.Debug("rendered chain", log.Int("links", len(links)), log.String("view", report.ChainView))

	return report, nil
}

func (r *Runner) persist(logger log.Log, value encoding.TaggedInt, report *Report) error {
	start := time.Now()
	if err := encoding.WriteJSON(value, report.Path); err != nil {
		return err
	}

	data, err := os.ReadFile(report.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadBack, err)
	}

	report.Encoded = data
	report.Digest = encoding.DigestBytes(data)
	if want := encoding.Digest(value); report.Digest != want || !bytes.Equal(data, value.Encode()) {
		return fmt.Errorf("%w: digest %x, want %x", ErrDigestMismatch, report.Digest, want)
	}
	if _, err = encoding.ParseTaggedInt(data); err != nil {
		return err
	}

	logger.Info("value written",
		log.String("path", report.Path),
		log.Int("bytes", len(data)),
		log.Uint64("digest", report.Digest),
		log.Duration("took", time.Since(start)),
	)
	return nil
}
