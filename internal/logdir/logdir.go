// Package logdir names the per-run log directories of a training workflow.
package logdir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/drakos74/mlkit/internal/model"
	mltime "github.com/drakos74/mlkit/internal/time"
	"github.com/rs/zerolog/log"
)

const prefix = "run_"

// Mode defines the timestamp granularity of the directory name.
type Mode string

const (
	// Date names the directory after the current date e.g. run_20210307
	Date Mode = "date"
	// DateTime names the directory after the current date and time e.g. run_20210307_090503
	DateTime Mode = "datetime"
)

// ParseMode parses the given string into a mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Date, DateTime:
		return m, nil
	}
	return "", fmt.Errorf("unknown log dir mode '%s': %w", s, model.InvalidArgumentErr)
}

// Namer generates log directory names based on its clock.
type Namer struct {
	clock mltime.Clock
}

// NewNamer creates a new namer for the given clock.
func NewNamer(clock mltime.Clock) Namer {
	if clock == nil {
		clock = mltime.Local
	}
	return Namer{clock: clock}
}

// Make creates the directory name for the current instant of the namer clock.
func (n Namer) Make(mode Mode, base string) (string, error) {
	return n.At(n.clock(), mode, base)
}

// At creates the directory name for the given instant.
func (n Namer) At(t time.Time, mode Mode, base string) (string, error) {
	var suffix string
	switch mode {
	case Date:
		suffix = mltime.Date(t)
	case DateTime:
		suffix = mltime.DateTime(t)
	default:
		return "", fmt.Errorf("unknown log dir mode '%s': %w", mode, model.InvalidArgumentErr)
	}
	name := prefix + suffix
	if base != "" {
		name = filepath.Join(base, name)
	}
	return name, nil
}

// Make creates the directory name for the current local time.
// It does not touch the filesystem.
func Make(mode Mode, base string) (string, error) {
	return NewNamer(mltime.Local).Make(mode, base)
}

// Create names the directory for the current local time and creates it.
func Create(mode Mode, base string) (string, error) {
	dir, err := Make(mode, base)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("could not make dir: %s: %w", dir, err)
	}
	log.Info().Str("dir", dir).Str("mode", string(mode)).Msg("created log dir")
	return dir, nil
}
