package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/shoal/config"
)

// Output file names inside the run directory.
const (
	ConfigFile    = "config.yaml"
	TelemetryFile = "telemetry.csv"
	PerfFile      = "perf.csv"
)

// OutputManager writes a run's config snapshot and per-window CSV records.
// A nil *OutputManager is valid and discards everything.
type OutputManager struct {
	dir       string
	telemetry csvSink
	perf      csvSink
}

// csvSink appends gocsv records to one file, writing the header once.
type csvSink struct {
	file   *os.File
	header bool
}

func (s *csvSink) write(records any) error {
	if !s.header {
		s.header = true
		return gocsv.Marshal(records, s.file)
	}
	return gocsv.MarshalWithoutHeaders(records, s.file)
}

// NewOutputManager creates dir and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	tf, err := os.Create(filepath.Join(dir, TelemetryFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", TelemetryFile, err)
	}
	pf, err := os.Create(filepath.Join(dir, PerfFile))
	if err != nil {
		tf.Close()
		return nil, fmt.Errorf("creating %s: %w", PerfFile, err)
	}

	return &OutputManager{
		dir:       dir,
		telemetry: csvSink{file: tf},
		perf:      csvSink{file: pf},
	}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, ConfigFile))
}

// WriteTelemetry appends a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.telemetry.write([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf appends a performance record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return errors.Join(om.telemetry.file.Close(), om.perf.file.Close())
}
