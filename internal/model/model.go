package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// InvalidArgumentErr is returned for every input that fails validation at a function boundary.
var InvalidArgumentErr = errors.New("invalid argument")

// Label is the class value of a sample.
type Label string

// Sample is a single labeled record of a dataset.
type Sample struct {
	Features []float64 `json:"features"`
	Label    Label     `json:"label"`
}

// NewSample creates a new sample for the given label.
func NewSample(label Label, features ...float64) Sample {
	return Sample{
		Features: features,
		Label:    label,
	}
}

// ToString creates a string representation of the sample.
func (s Sample) ToString() string {
	ff := make([]string, len(s.Features))
	for i, f := range s.Features {
		ff[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%s:[%s]", s.Label, strings.Join(ff, ","))
}

// Set identifies one of the outputs of a split.
type Set string

const (
	Train Set = "train"
	Valid Set = "valid"
	Test  Set = "test"
)

// Sets lists the split outputs in order.
var Sets = []Set{Train, Valid, Test}
