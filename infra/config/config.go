package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Path is the default config directory, relative to the repository root.
const Path = "infra/config"

// Load loads the config for the given key from the given directory.
func Load(dir, key string, v interface{}) ([]byte, error) {

	file := filepath.Join(dir, fmt.Sprintf("%s.json", key))
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not load config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("key", key).Str("file", file).Msg("loaded config")

	return b, nil
}

// MustLoad loads the config for the given key from the default directory
func MustLoad(key string, v interface{}) []byte {
	b, err := Load(Path, key, v)
	if err != nil {
		panic(err.Error())
	}
	return b
}
