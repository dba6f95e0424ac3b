package numberutils

import "testing"

func TestToIntInRange(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{" 3 ", 3, false},
		{"1", 1, false},
		{"14", 14, false},
		{"0", 0, true},
		{"15", 0, true},
		{"-2", 0, true},
		{"seven", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ToIntInRange(tt.in, 1, 14)
		if (err != nil) != tt.wantErr {
			t.Errorf("ToIntInRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ToIntInRange(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
