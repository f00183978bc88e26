package types

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringifyJSONValueMatchesJavaScript(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string", raw: `"^1.2.0"`, want: "^1.2.0"},
		{name: "integer", raw: `2`, want: "2"},
		{name: "float with zero fraction", raw: `1.0`, want: "1"},
		{name: "float", raw: `1.50`, want: "1.5"},
		{name: "negative zero", raw: `-0`, want: "0"},
		{name: "exponent written out", raw: `1e3`, want: "1000"},
		{name: "small decimal", raw: `0.000001`, want: "0.000001"},
		{name: "tiny number", raw: `0.0000001`, want: "1e-7"},
		{name: "large number", raw: `1e21`, want: "1e+21"},
		{name: "large fraction", raw: `1.5e300`, want: "1.5e+300"},
		{name: "below exponent threshold", raw: `123456789012345678901`, want: "123456789012345680000"},
		{name: "overflow", raw: `1e400`, want: "Infinity"},
		{name: "true", raw: `true`, want: "true"},
		{name: "null", raw: `null`, want: "null"},
		{name: "array", raw: `[1, "a", null, [2.0, 3]]`, want: "1,a,,2,3"},
		{name: "empty array", raw: `[]`, want: ""},
		{name: "object", raw: `{"a": 1}`, want: "[object Object]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringifyJSONValue(json.RawMessage(tt.raw)))
		})
	}
}

func TestSortedDependenciesUnmarshalKeepsDocumentOrder(t *testing.T) {
	var deps SortedDependencies
	require.NoError(t, json.Unmarshal([]byte(`{"zod":"3.0.0","axios":1.0,"b":[1]}`), &deps))
	want := SortedDependencies{
		{Name: "zod", Version: "3.0.0"},
		{Name: "axios", Version: "1"},
		{Name: "b", Version: "1"},
	}
	if diff := cmp.Diff(want, deps); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}

	require.Error(t, json.Unmarshal([]byte(`["zod"]`), &deps))
}
