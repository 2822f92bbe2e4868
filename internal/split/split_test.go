package split

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/drakos74/mlkit/internal/dataset"
	"github.com/drakos74/mlkit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataset(counts map[model.Label]int, order ...model.Label) *dataset.Dataset {
	ss := make([]model.Sample, 0)
	for _, l := range order {
		for i := 0; i < counts[l]; i++ {
			ss = append(ss, model.NewSample(l, float64(i)))
		}
	}
	return dataset.New(ss...)
}

func keys(ds ...*dataset.Dataset) []string {
	kk := make([]string, 0)
	for _, d := range ds {
		for _, s := range d.Samples() {
			kk = append(kk, s.ToString())
		}
	}
	sort.Strings(kk)
	return kk
}

func TestBalanced_Example(t *testing.T) {
	ds := newDataset(map[model.Label]int{"A": 10, "B": 10}, "A", "B")

	train, valid, test, report, err := Balanced(ds, Percentages{0.8, 0.1, 0.1}, true)
	require.NoError(t, err)

	assert.Equal(t, 16, train.Len())
	assert.Equal(t, 2, valid.Len())
	assert.Equal(t, 2, test.Len())

	assert.Equal(t, []Class{
		{Label: "A", Train: 8, Valid: 1, Test: 1},
		{Label: "B", Train: 8, Valid: 1, Test: 1},
	}, report.Classes)
	assert.Equal(t, Class{Label: "total", Train: 16, Valid: 2, Test: 2}, report.Total)

	// blocks are contiguous per class in source order
	assert.Equal(t, []model.Label{"A", "B"}, train.Labels())
	assert.Equal(t, 7.0, train.At(7).Features[0])
	assert.Equal(t, model.Label("B"), train.At(8).Label)
	assert.Equal(t, 0.0, train.At(8).Features[0])
	assert.Equal(t, 8.0, valid.At(0).Features[0])
	assert.Equal(t, 9.0, test.At(0).Features[0])
	assert.Equal(t, model.Label("B"), test.At(1).Label)
}

func TestBalanced_UsesTestFraction(t *testing.T) {
	ds := newDataset(map[model.Label]int{"x": 20}, "x")
	train, valid, test, _, err := Balanced(ds, Percentages{0.6, 0.3, 0.1}, false)
	require.NoError(t, err)
	assert.Equal(t, 12, train.Len())
	assert.Equal(t, 6, valid.Len())
	assert.Equal(t, 2, test.Len())
}

func TestBalanced_Totality(t *testing.T) {

	rnd := rand.New(rand.NewSource(42))

	type test struct {
		p      Percentages
		labels int
	}

	tests := map[string]test{
		"default-3":  {p: DefaultPercentages, labels: 3},
		"70-20-10-5": {p: Percentages{0.7, 0.2, 0.1}, labels: 5},
		"all-train":  {p: Percentages{1, 0, 0}, labels: 2},
		"all-test":   {p: Percentages{0, 0, 1}, labels: 4},
		"thirds-7":   {p: Percentages{1.0 / 3, 1.0 / 3, 1.0 / 3}, labels: 7},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ss := make([]model.Sample, 0)
			for i := 0; i < 200; i++ {
				l := model.Label(fmt.Sprintf("c%d", rnd.Intn(tt.labels)))
				ss = append(ss, model.NewSample(l, float64(i)))
			}
			ds := dataset.New(ss...)

			train, valid, test, report, err := Balanced(ds, tt.p, false)
			require.NoError(t, err)

			assert.Equal(t, keys(ds), keys(train, valid, test))
			assert.Equal(t, ds.Len(), report.Total.Size())

			counts := ds.Counts()
			for _, c := range report.Classes {
				assert.Equal(t, counts[c.Label], c.Size())
				assert.True(t, c.Train >= 0 && c.Valid >= 0 && c.Test >= 0)
				assert.Equal(t, c.Train, train.Counts()[c.Label])
				assert.Equal(t, c.Valid, valid.Counts()[c.Label])
				assert.Equal(t, c.Test, test.Counts()[c.Label])
			}
		})
	}
}

func TestBalanced_Empty(t *testing.T) {
	train, valid, test, report, err := Balanced(dataset.Empty(), DefaultPercentages, true)
	require.NoError(t, err)
	assert.Equal(t, 0, train.Len())
	assert.Equal(t, 0, valid.Len())
	assert.Equal(t, 0, test.Len())
	assert.Empty(t, report.Classes)
}

func TestBalanced_InvalidPercentages(t *testing.T) {
	ds := newDataset(map[model.Label]int{"A": 10}, "A")
	for _, p := range []Percentages{
		{0.8, 0.1},
		{0.8, 0.1, 0.2},
		{1.2, -0.1, -0.1},
	} {
		train, valid, test, _, err := Balanced(ds, p, false)
		assert.True(t, errors.Is(err, model.InvalidArgumentErr))
		assert.Nil(t, train)
		assert.Nil(t, valid)
		assert.Nil(t, test)
	}
}

func TestMustBalanced(t *testing.T) {
	ds := newDataset(map[model.Label]int{"A": 10}, "A")
	train, valid, test := MustBalanced(ds, DefaultPercentages)
	assert.Equal(t, 10, train.Len()+valid.Len()+test.Len())

	assert.Panics(t, func() {
		MustBalanced(ds, Percentages{0.5, 0.5, 0.5})
	})
}

func TestPartition(t *testing.T) {
	labels := []model.Label{"b", "a", "b", "a", "b", "b", "a", "a", "a", "a"}
	plan, err := Partition(labels, Percentages{0.5, 0.25, 0.25})
	require.NoError(t, err)

	// b: rows 0,2,4,5 -> 2/1/1, a: rows 1,3,6,7,8,9 -> 4/1/1
	assert.Equal(t, []int{0, 2, 1, 3, 6, 7}, plan.Train)
	assert.Equal(t, []int{4, 8}, plan.Valid)
	assert.Equal(t, []int{5, 9}, plan.Test)
	assert.Equal(t, []Class{
		{Label: "b", Train: 2, Valid: 1, Test: 1},
		{Label: "a", Train: 4, Valid: 1, Test: 1},
	}, plan.Report.Classes)
}

func TestPartition_SumAboveOne(t *testing.T) {
	p := Percentages{0, 0.5000004, 0.5000004}
	require.NoError(t, p.Validate())

	labels := make([]model.Label, 2500001)
	for i := range labels {
		labels[i] = "a"
	}

	var plan Plan
	var err error
	require.NotPanics(t, func() {
		plan, err = Partition(labels, p)
	})
	require.NoError(t, err)
	assert.Equal(t, 0, len(plan.Train))
	assert.Equal(t, 1250001, len(plan.Valid))
	assert.Equal(t, 1250000, len(plan.Test))
	assert.Equal(t, Class{Label: "a", Train: 0, Valid: 1250001, Test: 1250000}, plan.Report.Classes[0])
}
