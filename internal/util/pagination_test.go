package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 42, ParseIntDefault("42", 7))
	assert.Equal(t, 7, ParseIntDefault("abc", 7))
	assert.Equal(t, -3, ParseIntDefault("-3", 7))
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "first page default size", page: 1, size: DefaultPageSize, offset: 0, limit: 20},
		{name: "second page", page: 2, size: 10, offset: 10, limit: 10},
		{name: "zero page clamps to first", page: 0, size: 10, offset: 0, limit: 10},
		{name: "negative size falls back", page: 1, size: -5, offset: 0, limit: DefaultPageSize},
		{name: "oversized page size clamps", page: 3, size: 500, offset: 200, limit: MaxPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}
