package growatt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestSettingReadOptions_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      SettingReadOptions
		wantParam string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{
			name:      "parameter mode",
			opts:      SettingReadOptions{ParameterID: "backflow_setting"},
			wantParam: "backflow_setting",
		},
		{
			name:      "register range",
			opts:      SettingReadOptions{StartAddress: intPtr(10), EndAddress: intPtr(12)},
			wantParam: registerParameterID,
			wantStart: 10,
			wantEnd:   12,
		},
		{
			name:      "missing end copies start",
			opts:      SettingReadOptions{StartAddress: intPtr(10)},
			wantParam: registerParameterID,
			wantStart: 10,
			wantEnd:   10,
		},
		{
			name:      "missing start copies end",
			opts:      SettingReadOptions{EndAddress: intPtr(12)},
			wantParam: registerParameterID,
			wantStart: 12,
			wantEnd:   12,
		},
		{
			name:    "neither mode given",
			opts:    SettingReadOptions{},
			wantErr: true,
		},
		{
			name:    "both modes given",
			opts:    SettingReadOptions{ParameterID: "backflow_setting", StartAddress: intPtr(10)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			param, start, end, err := tt.opts.resolve()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantParam, param)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestNormalizeSettingValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		parameterID string
		values      []string
		slots       int
		want        []string
		wantErr     bool
	}{
		{
			name:        "values padded to slot count",
			parameterID: "backflow_setting",
			values:      []string{"1", "50"},
			slots:       4,
			want:        []string{"1", "50", "", ""},
		},
		{
			name:        "register write takes address and value",
			parameterID: registerParameterID,
			values:      []string{"1000", "1"},
			slots:       19,
			want:        []string{"1000", "1", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		},
		{
			name:        "register write rejects single value",
			parameterID: registerParameterID,
			values:      []string{"1000"},
			slots:       19,
			wantErr:     true,
		},
		{
			name:        "no values",
			parameterID: "backflow_setting",
			values:      nil,
			slots:       4,
			wantErr:     true,
		},
		{
			name:        "too many values",
			parameterID: "backflow_setting",
			values:      []string{"1", "2", "3", "4", "5"},
			slots:       4,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := normalizeSettingValues(tt.parameterID, tt.values, tt.slots)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
