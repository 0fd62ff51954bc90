package game

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected Action
		wantErr  bool
	}{
		{"HIT", Hit, false},
		{"hit", Hit, false},
		{"h", Hit, false},
		{"STAND", Stand, false},
		{"s", Stand, false},
		{"double", Double, false},
		{"d", Double, false},
		{"SPLIT", Split, false},
		{"p", Split, false},
		{"insurance", Insurance, false},
		{"i", Insurance, false},
		{" stand ", Stand, false},
		{"", 0, true},
		{"fold", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAction(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	for _, a := range []Action{Hit, Stand, Double, Split, Insurance} {
		if a.String() == "UNKNOWN" {
			t.Errorf("action %d has no string form", a)
		}
	}
}
