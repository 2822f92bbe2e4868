package storage

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key of a run artifact.
type Key struct {
	Run  string `json:"run"`
	Name string `json:"name"`
}

// Path returns the relative file path of the artifact.
func (k Key) Path() string {
	return filepath.Join(k.Run, fmt.Sprintf("%s.json", k.Name))
}

// Persistence stores and loads run artifacts.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
