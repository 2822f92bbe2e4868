// Package dataset provides an ordered, immutable in-memory dataset of labeled samples
// and adapters from and to golearn instances.
package dataset

import (
	"github.com/drakos74/mlkit/internal/model"
)

// Dataset is an ordered sequence of samples.
// None of the operations mutate the receiver.
type Dataset struct {
	samples []model.Sample
}

// New creates a new dataset from the given samples.
func New(samples ...model.Sample) *Dataset {
	ss := make([]model.Sample, len(samples))
	copy(ss, samples)
	return &Dataset{samples: ss}
}

// Empty creates an empty dataset.
func Empty() *Dataset {
	return &Dataset{samples: make([]model.Sample, 0)}
}

// Len returns the number of samples.
func (ds *Dataset) Len() int {
	return len(ds.samples)
}

// Samples returns a copy of the samples in order.
func (ds *Dataset) Samples() []model.Sample {
	ss := make([]model.Sample, len(ds.samples))
	copy(ss, ds.samples)
	return ss
}

// At returns the sample at the given position.
func (ds *Dataset) At(i int) model.Sample {
	return ds.samples[i]
}

// Map applies the given function to every sample.
func (ds *Dataset) Map(fn func(s model.Sample) model.Sample) *Dataset {
	ss := make([]model.Sample, len(ds.samples))
	for i, s := range ds.samples {
		ss[i] = fn(s)
	}
	return &Dataset{samples: ss}
}

// Filter keeps the samples matching the predicate, preserving their order.
func (ds *Dataset) Filter(pred func(s model.Sample) bool) *Dataset {
	ss := make([]model.Sample, 0)
	for _, s := range ds.samples {
		if pred(s) {
			ss = append(ss, s)
		}
	}
	return &Dataset{samples: ss}
}

// Take keeps the first n samples.
func (ds *Dataset) Take(n int) *Dataset {
	return &Dataset{samples: ds.slice(0, n)}
}

// Skip drops the first n samples.
func (ds *Dataset) Skip(n int) *Dataset {
	return &Dataset{samples: ds.slice(n, len(ds.samples))}
}

// Concat appends the other dataset after this one.
func (ds *Dataset) Concat(other *Dataset) *Dataset {
	ss := make([]model.Sample, 0, ds.Len()+other.Len())
	ss = append(ss, ds.samples...)
	ss = append(ss, other.samples...)
	return &Dataset{samples: ss}
}

// Labels returns the distinct labels in the order they are first encountered.
func (ds *Dataset) Labels() []model.Label {
	seen := make(map[model.Label]struct{})
	labels := make([]model.Label, 0)
	for _, s := range ds.samples {
		if _, ok := seen[s.Label]; !ok {
			seen[s.Label] = struct{}{}
			labels = append(labels, s.Label)
		}
	}
	return labels
}

// Counts returns the number of samples per label.
func (ds *Dataset) Counts() map[model.Label]int {
	counts := make(map[model.Label]int)
	for _, s := range ds.samples {
		counts[s.Label]++
	}
	return counts
}

func (ds *Dataset) slice(from, to int) []model.Sample {
	from = clamp(from, len(ds.samples))
	to = clamp(to, len(ds.samples))
	if to < from {
		to = from
	}
	ss := make([]model.Sample, to-from)
	copy(ss, ds.samples[from:to])
	return ss
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
