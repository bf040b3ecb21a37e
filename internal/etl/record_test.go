package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceRecord_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		record   SourceRecord
		field    string
		expected []string
	}{
		{
			name:     "splits on comma and trims",
			record:   SourceRecord{FieldUserID: "u1, u2 ,u3"},
			field:    FieldUserID,
			expected: []string{"u1", "u2", "u3"},
		},
		{
			name:     "drops empty entries",
			record:   SourceRecord{FieldReviewID: "r1,, ,r2"},
			field:    FieldReviewID,
			expected: []string{"r1", "r2"},
		},
		{
			name:     "missing field yields empty list",
			record:   SourceRecord{},
			field:    FieldUserID,
			expected: nil,
		},
		{
			name:     "blank field yields empty list",
			record:   SourceRecord{FieldReviewID: ""},
			field:    FieldReviewID,
			expected: nil,
		},
		{
			name:     "single value",
			record:   SourceRecord{FieldUserName: "Alice"},
			field:    FieldUserName,
			expected: []string{"Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.record.List(tt.field))
		})
	}
}

func TestSafeFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected *float64
	}{
		{name: "plain number", input: "4.2", expected: floatPtr(4.2)},
		{name: "surrounding whitespace", input: " 3.5 ", expected: floatPtr(3.5)},
		{name: "empty string", input: "", expected: nil},
		{name: "whitespace only", input: "   ", expected: nil},
		{name: "not a number", input: "n/a", expected: nil},
		{name: "zero", input: "0", expected: floatPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := safeFloat(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 1e-9)
		})
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
