package growatt_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpv/growatt-go/growatt"
)

func TestFloat_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    growatt.Float
		wantErr bool
	}{
		{
			name:  "bare number",
			input: `1.5`,
			want:  growatt.FloatOf(1.5),
		},
		{
			name:  "quoted number",
			input: `"2.5"`,
			want:  growatt.FloatOf(2.5),
		},
		{
			name:  "zero stays present",
			input: `0`,
			want:  growatt.FloatOf(0),
		},
		{
			name:  "json null",
			input: `null`,
		},
		{
			name:  "empty string",
			input: `""`,
		},
		{
			name:  "literal null string",
			input: `"null"`,
		},
		{
			name:  "literal None string",
			input: `"None"`,
		},
		{
			name:    "garbage",
			input:   `"abc"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got growatt.Float

			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    growatt.Int
		wantErr bool
	}{
		{
			name:  "bare number",
			input: `7`,
			want:  growatt.IntOf(7),
		},
		{
			name:  "quoted number",
			input: `"42"`,
			want:  growatt.IntOf(42),
		},
		{
			name:  "float-shaped counter truncates",
			input: `"100.0"`,
			want:  growatt.IntOf(100),
		},
		{
			name:  "json null",
			input: `null`,
		},
		{
			name:  "empty string",
			input: `""`,
		},
		{
			name:    "garbage",
			input:   `"seven"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got growatt.Int

			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBool_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    growatt.Bool
		wantErr bool
	}{
		{
			name:  "true",
			input: `true`,
			want:  growatt.BoolOf(true),
		},
		{
			name:  "false",
			input: `false`,
			want:  growatt.BoolOf(false),
		},
		{
			name:  "numeric one",
			input: `1`,
			want:  growatt.BoolOf(true),
		},
		{
			name:  "numeric zero",
			input: `0`,
			want:  growatt.BoolOf(false),
		},
		{
			name:  "quoted numeric",
			input: `"1"`,
			want:  growatt.BoolOf(true),
		},
		{
			name:  "json null",
			input: `null`,
		},
		{
			name:  "empty string",
			input: `""`,
		},
		{
			name:    "garbage",
			input:   `"yes"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got growatt.Bool

			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScalarTypes_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value json.Marshaler
		want  string
	}{
		{
			name:  "present float",
			value: growatt.FloatOf(1024.5),
			want:  `1024.5`,
		},
		{
			name:  "absent float",
			value: growatt.Float{},
			want:  `null`,
		},
		{
			name:  "present zero int",
			value: growatt.IntOf(0),
			want:  `0`,
		},
		{
			name:  "absent int",
			value: growatt.Int{},
			want:  `null`,
		},
		{
			name:  "present false bool",
			value: growatt.BoolOf(false),
			want:  `false`,
		},
		{
			name:  "absent bool",
			value: growatt.Bool{},
			want:  `null`,
		},
		{
			name:  "present string",
			value: growatt.StringOf("home roof"),
			want:  `"home roof"`,
		},
		{
			name:  "absent string",
			value: growatt.String{},
			want:  `null`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

// roundTripJSON decodes a wire value into T and re-encodes it.
func roundTripJSON[T any](t *testing.T, input string) string {
	t.Helper()

	var v T

	require.NoError(t, json.Unmarshal([]byte(input), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)

	return string(out)
}

func TestScalarTypes_RoundTrip(t *testing.T) {
	t.Parallel()

	// Coerced wire shapes re-encode canonically; absence sentinels re-encode
	// as null.
	assert.Equal(t, `1024.5`, roundTripJSON[growatt.Float](t, `"1024.5"`))
	assert.Equal(t, `0`, roundTripJSON[growatt.Float](t, `0`))
	assert.Equal(t, `null`, roundTripJSON[growatt.Float](t, `"None"`))
	assert.Equal(t, `100`, roundTripJSON[growatt.Int](t, `"100.0"`))
	assert.Equal(t, `null`, roundTripJSON[growatt.Int](t, `""`))
	assert.Equal(t, `true`, roundTripJSON[growatt.Bool](t, `"1"`))
	assert.Equal(t, `null`, roundTripJSON[growatt.Bool](t, `null`))
	assert.Equal(t, `"269545841"`, roundTripJSON[growatt.String](t, `269545841`))
	assert.Equal(t, `null`, roundTripJSON[growatt.String](t, `"null"`))
}

func TestString_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  growatt.String
	}{
		{
			name:  "plain string",
			input: `"hello"`,
			want:  growatt.StringOf("hello"),
		},
		{
			name:  "empty string counts as absent",
			input: `""`,
		},
		{
			name:  "literal null string",
			input: `"null"`,
		},
		{
			name:  "json null",
			input: `null`,
		},
		{
			name:  "bare number in string field",
			input: `269545841`,
			want:  growatt.StringOf("269545841"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got growatt.String

			err := json.Unmarshal([]byte(tt.input), &got)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
