// Package run ties the training helpers together into a single workflow run
// whose artifacts are kept in a timestamped log directory.
package run

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/drakos74/mlkit/internal/logdir"
	"github.com/drakos74/mlkit/internal/schedule"
	"github.com/drakos74/mlkit/internal/split"
	"github.com/drakos74/mlkit/internal/storage"
	mltime "github.com/drakos74/mlkit/internal/time"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"gonum.org/v1/gonum/floats"
)

const (
	metadataKey = "run"
	splitKey    = "split"
	scheduleKey = "schedule"
)

// Metadata describes a run.
type Metadata struct {
	ID      string          `json:"id"`
	Dir     string          `json:"dir"`
	Mode    logdir.Mode     `json:"mode"`
	Created time.Time       `json:"created"`
	Elapsed mltime.Duration `json:"elapsed"`
	Steps   []string        `json:"steps"`
}

// Trace is the learning rate of every traced epoch.
type Trace struct {
	Name  string    `json:"name"`
	Rates []float64 `json:"rates"`
	Max   float64   `json:"max"`
	Min   float64   `json:"min"`
}

// Run is a single execution of the workflow.
type Run struct {
	cfg      Config
	clock    mltime.Clock
	meta     Metadata
	storage  storage.Persistence
	schedule schedule.Schedule
}

// New validates the config, names the run directory and creates it unless the run is dry.
func New(cfg Config, clock mltime.Clock) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	if clock == nil {
		clock = mltime.Local
	}
	now := clock()
	dir, err := logdir.NewNamer(mltime.Fixed(now)).Make(cfg.LogDir.Mode, cfg.LogDir.Base)
	if err != nil {
		return nil, err
	}
	s, err := schedule.New(cfg.Schedule.Config)
	if err != nil {
		return nil, err
	}

	persistence, err := cfg.shard()("")
	if err != nil {
		return nil, fmt.Errorf("could not create run storage for '%s': %w", dir, err)
	}

	r := &Run{
		cfg:   cfg,
		clock: clock,
		meta: Metadata{
			ID:      uuid.New().String(),
			Dir:     dir,
			Mode:    cfg.LogDir.Mode,
			Created: now,
			Steps:   make([]string, 0),
		},
		storage:  persistence,
		schedule: s,
	}
	log.Info().
		Str("id", r.meta.ID).
		Str("dir", dir).
		Bool("dry", cfg.Dry).
		Msg("new run")
	return r, nil
}

// Dir returns the run directory.
func (r *Run) Dir() string {
	return r.meta.Dir
}

// Metadata returns the run metadata.
func (r *Run) Metadata() Metadata {
	return r.meta
}

func (r *Run) key(name string) storage.Key {
	return storage.Key{
		Run:  filepath.Base(r.meta.Dir),
		Name: name,
	}
}

// Load loads a stored artifact of the run.
func (r *Run) Load(name string, value interface{}) error {
	return r.storage.Load(r.key(name), value)
}

// Split splits the csv dataset at the given path and writes the three sets next to the run artifacts.
func (r *Run) Split(path string) (split.Report, error) {
	grid, err := base.ParseCSVToInstances(path, r.cfg.Split.Headers)
	if err != nil {
		return split.Report{}, fmt.Errorf("could not parse dataset '%s': %w", path, err)
	}
	train, valid, test, report, err := split.Instances(grid, r.cfg.Split.Percentages, r.cfg.Split.Verbose)
	if err != nil {
		return split.Report{}, err
	}
	if !r.cfg.Dry {
		if err := r.mkdir(); err != nil {
			return split.Report{}, err
		}
		for name, set := range map[string]base.FixedDataGrid{
			"train": train,
			"valid": valid,
			"test":  test,
		} {
			file := filepath.Join(r.meta.Dir, fmt.Sprintf("%s.csv", name))
			if err := writeCSV(file, set); err != nil {
				return split.Report{}, fmt.Errorf("could not write '%s': %w", file, err)
			}
		}
	}
	if err := r.storage.Store(r.key(splitKey), report); err != nil {
		return split.Report{}, fmt.Errorf("could not store split report: %w", err)
	}
	r.meta.Steps = append(r.meta.Steps, splitKey)
	return report, nil
}

func writeCSV(file string, set base.FixedDataGrid) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := base.SerializeInstancesToCSVStream(set, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Schedule traces the configured schedule through a callback for the configured epochs.
func (r *Run) Schedule() (Trace, error) {
	rates := make([]float64, 0, r.cfg.Epochs)
	cb := schedule.NewCallback(r.cfg.Schedule.Name, r.schedule, schedule.OptimizerFunc(func(rate float64) {
		rates = append(rates, rate)
	}))
	for epoch := 0; epoch < r.cfg.Epochs; epoch++ {
		if _, err := cb.OnEpochBegin(epoch); err != nil {
			return Trace{}, err
		}
	}
	trace := Trace{
		Name:  r.cfg.Schedule.Name,
		Rates: rates,
	}
	if len(rates) > 0 {
		trace.Max = floats.Max(rates)
		trace.Min = floats.Min(rates)
	}
	if err := r.storage.Store(r.key(scheduleKey), trace); err != nil {
		return Trace{}, fmt.Errorf("could not store schedule trace: %w", err)
	}
	r.meta.Steps = append(r.meta.Steps, scheduleKey)
	return trace, nil
}

// Close stores the run metadata.
func (r *Run) Close() error {
	r.meta.Elapsed = mltime.Duration{Duration: r.clock().Sub(r.meta.Created)}
	if err := r.storage.Store(r.key(metadataKey), r.meta); err != nil {
		return fmt.Errorf("could not store run metadata: %w", err)
	}
	log.Info().
		Str("id", r.meta.ID).
		Str("dir", r.meta.Dir).
		Strs("steps", r.meta.Steps).
		Dur("elapsed", r.meta.Elapsed.Duration).
		Msg("run completed")
	return nil
}

func (r *Run) mkdir() error {
	if err := os.MkdirAll(r.meta.Dir, os.ModePerm); err != nil {
		return fmt.Errorf("could not make dir: %s: %w", r.meta.Dir, err)
	}
	return nil
}
