// Package split partitions labeled datasets into train, validation and test sets
// keeping the class proportions of the source in each of them.
package split

import (
	"fmt"

	"github.com/drakos74/mlkit/internal/dataset"
	"github.com/drakos74/mlkit/internal/metrics"
	"github.com/drakos74/mlkit/internal/model"
	"github.com/rs/zerolog/log"
)

// Class holds the split counts of a single class.
type Class struct {
	Label model.Label `json:"label"`
	Train int         `json:"train"`
	Valid int         `json:"valid"`
	Test  int         `json:"test"`
}

// Size returns the number of samples of the class.
func (c Class) Size() int {
	return c.Train + c.Valid + c.Test
}

// Report summarises a split.
type Report struct {
	Percentages Percentages `json:"percentages"`
	Classes     []Class     `json:"classes"`
	Total       Class       `json:"total"`
}

func (r *Report) add(c Class) {
	r.Classes = append(r.Classes, c)
	r.Total.Train += c.Train
	r.Total.Valid += c.Valid
	r.Total.Test += c.Test
}

// Log writes the per class and the total split to the log.
func (r Report) Log() {
	for _, c := range r.Classes {
		log.Info().
			Str("class", string(c.Label)).
			Int("train", c.Train).
			Int("valid", c.Valid).
			Int("test", c.Test).
			Msg("class split")
	}
	log.Info().
		Int("train", r.Total.Train).
		Int("valid", r.Total.Valid).
		Int("test", r.Total.Test).
		Int("classes", len(r.Classes)).
		Msg("split completed")
}

func (r Report) observe() {
	metrics.Observer.Split(model.Train, r.Total.Train)
	metrics.Observer.Split(model.Valid, r.Total.Valid)
	metrics.Observer.Split(model.Test, r.Total.Test)
}

// Plan holds the row indices of each set.
// Rows are grouped by class in discovery order and keep their source order within a class.
type Plan struct {
	Train  []int
	Valid  []int
	Test   []int
	Report Report
}

// Partition assigns every row, identified by its label, to one of the sets.
func Partition(labels []model.Label, p Percentages) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}

	order := make([]model.Label, 0)
	rows := make(map[model.Label][]int)
	for i, l := range labels {
		if _, ok := rows[l]; !ok {
			order = append(order, l)
		}
		rows[l] = append(rows[l], i)
	}

	plan := Plan{
		Train: make([]int, 0),
		Valid: make([]int, 0),
		Test:  make([]int, 0),
		Report: Report{
			Percentages: p,
			Classes:     make([]Class, 0, len(order)),
			Total:       Class{Label: "total"},
		},
	}
	for _, l := range order {
		rr := rows[l]
		train, valid, test := p.Counts(len(rr))
		plan.Train = append(plan.Train, rr[:train]...)
		plan.Valid = append(plan.Valid, rr[train:train+valid]...)
		plan.Test = append(plan.Test, rr[train+valid:]...)
		plan.Report.add(Class{
			Label: l,
			Train: train,
			Valid: valid,
			Test:  test,
		})
	}
	return plan, nil
}

// Balanced splits the dataset per class according to the given percentages.
// The outputs contain the classes in discovery order, each one keeping the source order.
func Balanced(ds *dataset.Dataset, p Percentages, verbose bool) (train, valid, test *dataset.Dataset, report Report, err error) {
	if err = p.Validate(); err != nil {
		return nil, nil, nil, Report{}, err
	}

	train = dataset.Empty()
	valid = dataset.Empty()
	test = dataset.Empty()
	report = Report{
		Percentages: p,
		Classes:     make([]Class, 0),
		Total:       Class{Label: "total"},
	}

	for _, label := range ds.Labels() {
		l := label
		class := ds.Filter(func(s model.Sample) bool {
			return s.Label == l
		})
		nTrain, nValid, nTest := p.Counts(class.Len())

		train = train.Concat(class.Take(nTrain))
		valid = valid.Concat(class.Skip(nTrain).Take(nValid))
		test = test.Concat(class.Skip(nTrain + nValid))

		report.add(Class{
			Label: l,
			Train: nTrain,
			Valid: nValid,
			Test:  nTest,
		})
	}

	if verbose {
		report.Log()
	}
	report.observe()
	return train, valid, test, report, nil
}

// MustBalanced splits the dataset and panics on invalid percentages.
func MustBalanced(ds *dataset.Dataset, p Percentages) (train, valid, test *dataset.Dataset) {
	train, valid, test, _, err := Balanced(ds, p, false)
	if err != nil {
		panic(fmt.Sprintf("could not split dataset: %s", err.Error()))
	}
	return train, valid, test
}
