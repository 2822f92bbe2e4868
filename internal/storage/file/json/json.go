package json

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/drakos74/mlkit/internal/storage"
)

// Save saves the given json struct into the given path with the provided filename.
func Save(filePath string, fileName string, value interface{}) error {
	// check if filepath exists
	info, err := os.Stat(filePath)
	if err != nil {
		err := os.MkdirAll(filePath, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir: %s: %w", filePath, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a directory: %s", filePath)
	}

	p := filepath.Join(filePath, fileName)
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode value for '%s': %w", p, err)
	}

	if err := ioutil.WriteFile(p, b, 0644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return nil
}

// Load loads the payload from the given filePath and fileName.
func Load(filePath string, fileName string, value interface{}) error {

	p := filepath.Join(filePath, fileName)

	data, err := ioutil.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s' %s: %w", p, err.Error(), storage.NotFoundErr)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not unmarshal '%s' %s: %w", p, err.Error(), storage.CouldNotLoadErr)
	}

	return nil
}

// BlobStore stores every artifact as a json file below its root directory.
type BlobStore struct {
	root string
}

// NewBlobStore creates a new json file storage rooted at the given directory.
func NewBlobStore(root string) *BlobStore {
	return &BlobStore{root: root}
}

// BlobShard creates a storage generator for sub-directories of the given root.
func BlobShard(root string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewBlobStore(filepath.Join(root, shard)), nil
	}
}

func (s *BlobStore) Store(k storage.Key, value interface{}) error {
	p := filepath.Join(s.root, k.Path())
	return Save(filepath.Dir(p), filepath.Base(p), value)
}

func (s *BlobStore) Load(k storage.Key, value interface{}) error {
	p := filepath.Join(s.root, k.Path())
	return Load(filepath.Dir(p), filepath.Base(p), value)
}
