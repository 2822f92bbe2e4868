package run

import (
	"fmt"

	"github.com/drakos74/mlkit/internal/logdir"
	"github.com/drakos74/mlkit/internal/model"
	"github.com/drakos74/mlkit/internal/schedule"
	"github.com/drakos74/mlkit/internal/split"
	"github.com/drakos74/mlkit/internal/storage"
	jsonstorage "github.com/drakos74/mlkit/internal/storage/file/json"
)

// Config defines a workflow run.
type Config struct {
	LogDir   LogDir   `json:"logdir"`
	Split    Split    `json:"split"`
	Schedule Schedule `json:"schedule"`
	// Epochs is the number of epochs the schedule is traced for.
	Epochs int `json:"epochs"`
	// Dry skips all filesystem writes.
	Dry bool `json:"dry"`
	// NoStore discards the run reports and metadata, split csv files are still written.
	NoStore bool `json:"nostore"`
}

// LogDir defines where the run artifacts are kept.
type LogDir struct {
	Mode logdir.Mode `json:"mode"`
	Base string      `json:"base"`
}

// Split defines the dataset split.
type Split struct {
	Percentages split.Percentages `json:"percentages"`
	Verbose     bool              `json:"verbose"`
	// Headers marks csv input with a header row.
	Headers bool `json:"headers"`
}

// Schedule defines the learning rate schedule.
type Schedule struct {
	Name   string          `json:"name"`
	Config schedule.Config `json:"config"`
}

func (c Config) shard() storage.Shard {
	switch {
	case c.Dry:
		return jsonstorage.LocalShard()
	case c.NoStore:
		return storage.VoidShard()
	default:
		return jsonstorage.BlobShard(c.LogDir.Base)
	}
}

// DefaultConfig returns the default run config.
func DefaultConfig() Config {
	return Config{
		LogDir: LogDir{
			Mode: logdir.DateTime,
			Base: "logs",
		},
		Split: Split{
			Percentages: split.DefaultPercentages,
		},
		Schedule: Schedule{
			Name:   schedule.PiecewiseType,
			Config: schedule.Config{Type: schedule.PiecewiseType},
		},
		Epochs: 20,
	}
}

// Validate checks the config before anything is created.
func (c Config) Validate() error {
	if _, err := logdir.ParseMode(string(c.LogDir.Mode)); err != nil {
		return err
	}
	if err := c.Split.Percentages.Validate(); err != nil {
		return err
	}
	if _, err := schedule.New(c.Schedule.Config); err != nil {
		return err
	}
	if c.Epochs < 0 {
		return fmt.Errorf("negative epochs %d: %w", c.Epochs, model.InvalidArgumentErr)
	}
	return nil
}
