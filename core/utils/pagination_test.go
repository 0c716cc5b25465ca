package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"Defaults", 0, 0, 1, 20},
		{"Negative", -3, -1, 1, 20},
		{"Passthrough", 2, 50, 2, 50},
		{"Capped", 1, 1000, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampPagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(41, 1, 20)
	assert.Equal(t, int64(41), m.Total)
	assert.Equal(t, 3, m.TotalPages)

	m = NewMeta(40, 2, 20)
	assert.Equal(t, 2, m.TotalPages)

	m = NewMeta(0, 1, 20)
	assert.Equal(t, 0, m.TotalPages)
}
