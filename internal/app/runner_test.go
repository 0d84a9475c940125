package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/nestcodec/internal/config"
	"github.com/zeusync/nestcodec/internal/observability/log"
	"github.com/zeusync/nestcodec/pkg/encoding"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputPath = filepath.Join(t.TempDir(), "example.json")
	return cfg
}

func TestRunner_Run(t *testing.T) {
	cfg := newTestConfig(t)
	core, logs := observer.New(zapcore.DebugLevel)

	report, err := NewRunner(cfg, log.NewWithCore(core, log.LevelDebug)).Run()
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"int", "value":42}`, string(data))
	assert.Equal(t, data, report.Encoded)
	assert.Equal(t, encoding.Digest(encoding.NewTaggedInt(42)), report.Digest)

	assert.Equal(t, "((((((((42))))))))", report.Rendered)
	assert.Equal(t, []string{"(42)", "(((42)))", "((((((42))))))"}, report.Chain)
	assert.Equal(t, "(((42)))", report.ChainView)

	written := logs.FilterMessage("value written").All()
	require.Len(t, written, 1)
	fields := written[0].ContextMap()
	assert.Equal(t, report.RunID, fields["run_id"])
	assert.Equal(t, cfg.OutputPath, fields["path"])
	assert.Equal(t, report.Digest, fields["digest"])
}

func TestRunner_RunWithoutChain(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.ChainDepths = nil
	cfg.Depth = 0
	cfg.Value = 1

	report, err := NewRunner(cfg, log.NewNop()).Run()
	require.NoError(t, err)

	assert.Equal(t, "1", report.Rendered)
	assert.Empty(t, report.Chain)
	assert.Empty(t, report.ChainView)
}

func TestRunner_RunCreateFailure(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "example.json")
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := NewRunner(cfg, log.NewWithCore(core, log.LevelDebug)).Run()

	require.ErrorIs(t, err, encoding.ErrCreateFile)
	assert.Equal(t, 1, logs.FilterMessage("write failed").Len())
}

func TestRunner_RunInvalidConfig(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Kind = ""

	_, err := NewRunner(cfg, log.NewNop()).Run()

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
