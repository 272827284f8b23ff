package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected StringList
	}{
		{"JSON array", `["a.jpg","b.jpg"]`, StringList{"a.jpg", "b.jpg"}},
		{"Byte slice", []byte(`["a.jpg"]`), StringList{"a.jpg"}},
		{"Empty string", "", StringList{}},
		{"Nil value", nil, nil},
		{"Legacy bare string", "https://example.com/photo.jpg", StringList{"https://example.com/photo.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list StringList
			assert.NoError(t, list.Scan(tt.input))
			assert.Equal(t, tt.expected, list)
		})
	}

	t.Run("Invalid JSON array", func(t *testing.T) {
		var list StringList
		assert.Error(t, list.Scan(`[not json`))
	})

	t.Run("Unsupported type", func(t *testing.T) {
		var list StringList
		assert.Error(t, list.Scan(42))
	})
}

func TestStringListValue(t *testing.T) {
	value, err := StringList{"a.jpg", "b.jpg"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `["a.jpg","b.jpg"]`, value)

	empty, err := StringList{}.Value()
	assert.NoError(t, err)
	assert.Equal(t, `[]`, empty)

	nilValue, err := StringList(nil).Value()
	assert.NoError(t, err)
	assert.Nil(t, nilValue)
}
