package dataset

import (
	"fmt"

	"github.com/drakos74/mlkit/internal/model"
	"github.com/sjwhitworth/golearn/base"
)

const classAttribute = "label"

// FromInstances reads the float features and the class value of every row of the grid.
func FromInstances(grid base.FixedDataGrid) (*Dataset, error) {
	if len(grid.AllClassAttributes()) == 0 {
		return nil, fmt.Errorf("instances have no class attribute: %w", model.InvalidArgumentErr)
	}
	attrs := base.NonClassFloatAttributes(grid)
	specs := base.ResolveAttributes(grid, attrs)
	_, rows := grid.Size()
	samples := make([]model.Sample, rows)
	for row := 0; row < rows; row++ {
		features := make([]float64, len(specs))
		for i, spec := range specs {
			features[i] = base.UnpackBytesToFloat(grid.Get(spec, row))
		}
		samples[row] = model.Sample{
			Features: features,
			Label:    model.Label(base.GetClass(grid, row)),
		}
	}
	return &Dataset{samples: samples}, nil
}

// Labels returns the class value of every row of the grid.
func Labels(grid base.FixedDataGrid) []model.Label {
	_, rows := grid.Size()
	labels := make([]model.Label, rows)
	for row := 0; row < rows; row++ {
		labels[row] = model.Label(base.GetClass(grid, row))
	}
	return labels
}

// ToInstances converts the dataset into dense golearn instances
// with one float attribute per feature and a categorical class attribute.
// Features are named after the given names, or x0, x1, ... when not enough names are provided.
func ToInstances(ds *Dataset, names ...string) (*base.DenseInstances, error) {
	width := 0
	if ds.Len() > 0 {
		width = len(ds.samples[0].Features)
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, width)
	for i := 0; i < width; i++ {
		name := fmt.Sprintf("x%d", i)
		if i < len(names) {
			name = names[i]
		}
		specs[i] = inst.AddAttribute(base.NewFloatAttribute(name))
	}
	class := base.NewCategoricalAttribute()
	class.SetName(classAttribute)
	classSpec := inst.AddAttribute(class)
	if err := inst.AddClassAttribute(class); err != nil {
		return nil, fmt.Errorf("could not add class attribute: %w", err)
	}

	if err := inst.Extend(ds.Len()); err != nil {
		return nil, fmt.Errorf("could not allocate %d rows: %w", ds.Len(), err)
	}
	for row, s := range ds.samples {
		if len(s.Features) != width {
			return nil, fmt.Errorf("sample %d has %d features instead of %d: %w",
				row, len(s.Features), width, model.InvalidArgumentErr)
		}
		for i, f := range s.Features {
			inst.Set(specs[i], row, base.PackFloatToBytes(f))
		}
		inst.Set(classSpec, row, class.GetSysValFromString(string(s.Label)))
	}
	return inst, nil
}
