package time

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	now := time.Date(2021, time.March, 7, 9, 5, 3, 0, time.Local)
	assert.Equal(t, "20210307", Date(now))
	assert.Equal(t, "20210307_090503", DateTime(now))
}

func TestFixed(t *testing.T) {
	now := time.Date(2020, time.December, 31, 23, 59, 59, 0, time.UTC)
	clock := Fixed(now)
	assert.Equal(t, now, clock())
	assert.Equal(t, now, clock())
}

func TestDuration_JSON(t *testing.T) {

	type test struct {
		in       string
		duration time.Duration
		err      bool
	}

	tests := map[string]test{
		"string": {
			in:       `"1m30s"`,
			duration: 90 * time.Second,
		},
		"number": {
			in:       `1000`,
			duration: 1000 * time.Nanosecond,
		},
		"invalid-string": {
			in:  `"soon"`,
			err: true,
		},
		"invalid-type": {
			in:  `true`,
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.duration, d.Duration)

			b, err := json.Marshal(d)
			require.NoError(t, err)
			assert.Equal(t, `"`+tt.duration.String()+`"`, string(b))
		})
	}
}
