package domain

import "testing"

func TestSanitizeAmountText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "1500", "1500"},
		{"thousands separators", "1,500,000", "1500000"},
		{"two decimals kept", "1234.56", "1234.56"},
		{"extra decimals capped", "1234.5678", "1234.56"},
		{"second decimal point truncates", "12.34.56", "12.34"},
		{"currency symbol dropped", "$2,500.00", "2500.00"},
		{"letters dropped", "12a3", "123"},
		{"blank", "", ""},
		{"whitespace", "   ", ""},
		{"lone point", ".", "."},
		{"leading sign kept", "-500", "-500"},
		{"inner sign dropped", "12-3", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeAmountText(tt.input); got != tt.want {
				t.Errorf("SanitizeAmountText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain", "1500", 1500},
		{"with separators", "1,500,000.25", 1500000.25},
		{"blank degrades to zero", "", 0},
		{"junk degrades to zero", "abc", 0},
		{"lone point degrades to zero", ".", 0},
		{"second point truncates", "10.50.99", 10.50},
		{"negative degrades to zero", "-500", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(6249.999999); got != 6250 {
		t.Errorf("Round2(6249.999999) = %v, want 6250", got)
	}
	if got := Round2(10.125); got != 10.13 {
		t.Errorf("Round2(10.125) = %v, want 10.13", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(6250); got != "6250.00" {
		t.Errorf("FormatAmount(6250) = %q, want \"6250.00\"", got)
	}
	if got := FormatAmount(0); got != "0.00" {
		t.Errorf("FormatAmount(0) = %q, want \"0.00\"", got)
	}
}

func TestConvertAmount(t *testing.T) {
	// 247000 local at 24.70 per display unit = 10000.00
	if got := ConvertAmount(247000, 24.70); got != 10000 {
		t.Errorf("ConvertAmount(247000, 24.70) = %v, want 10000", got)
	}

	// Non-positive rate disables conversion
	if got := ConvertAmount(1000, 0); got != 0 {
		t.Errorf("ConvertAmount with zero rate = %v, want 0", got)
	}
}
