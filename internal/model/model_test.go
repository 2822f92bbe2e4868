package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_ToString(t *testing.T) {
	s := NewSample("cat", 1, 0.5, -2)
	assert.Equal(t, "cat:[1,0.5,-2]", s.ToString())
	assert.Equal(t, "dog:[]", NewSample("dog").ToString())
}

func TestInvalidArgumentErr(t *testing.T) {
	err := fmt.Errorf("bad mode '%s': %w", "weekly", InvalidArgumentErr)
	assert.True(t, errors.Is(err, InvalidArgumentErr))
}
