package split

import (
	"github.com/drakos74/mlkit/internal/dataset"
	"github.com/sjwhitworth/golearn/base"
)

// Instances splits golearn instances per class according to the given percentages.
// The outputs are row views over the source grid with all of its attributes.
func Instances(grid base.FixedDataGrid, p Percentages, verbose bool) (train, valid, test base.FixedDataGrid, report Report, err error) {
	plan, err := Partition(dataset.Labels(grid), p)
	if err != nil {
		return nil, nil, nil, Report{}, err
	}

	attrs := grid.AllAttributes()
	train = base.NewInstancesViewFromVisible(grid, plan.Train, attrs)
	valid = base.NewInstancesViewFromVisible(grid, plan.Valid, attrs)
	test = base.NewInstancesViewFromVisible(grid, plan.Test, attrs)

	if verbose {
		plan.Report.Log()
	}
	plan.Report.observe()
	return train, valid, test, plan.Report, nil
}
