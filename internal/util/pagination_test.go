package util

import "testing"

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		pageSize   int
		expected   int
	}{
		{"Exact division", 10, 5, 2},
		{"Rounds up on remainder", 3, 2, 2},
		{"One item per page", 3, 1, 3},
		{"Single partial page", 1, 10, 1},
		{"No items", 0, 10, 0},
		{"Zero page size", 10, 0, 0},
		{"Negative page size", 10, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTotalPage(tt.totalItems, tt.pageSize)
			if got != tt.expected {
				t.Errorf("CalculateTotalPage(%d, %d) = %d, want %d", tt.totalItems, tt.pageSize, got, tt.expected)
			}
		})
	}
}
