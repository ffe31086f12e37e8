package render

import "testing"

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"-100", int64(-100)},
		{"0", int64(0)},
		{"10,5", 10.5},
		{"-0,25", -0.25},
		{"1", int64(1)},
		{"1,0", 1.0}, // stays float64 so it never compares equal to "1"
		{"10,50", 10.5},
		{"2e3", 2000.0},
		{"1e300", 1e300},
		{"9223372036854775808", 9.223372036854775808e18},
		{"hello", "hello"},
		{"1,2,3", "1,2,3"},
		{"12px", "12px"},
		{"", ""},
		{" 7", " 7"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := coerceValue(tt.input)
			if got != tt.expected {
				t.Errorf("coerceValue(%q) = %v (%T), expected %v (%T)",
					tt.input, got, got, tt.expected, tt.expected)
			}
		})
	}
}
