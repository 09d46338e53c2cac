package main

import "testing"

func TestParseCodes(t *testing.T) {
	got := parseCodes("A123\r\n\n# note\nB456\n")
	if len(got) != 2 || got[0] != "A123" || got[1] != "B456" {
		t.Errorf("parseCodes = %q", got)
	}
	if got := parseCodes("  \n#only comments\n"); len(got) != 0 {
		t.Errorf("parseCodes of blank text = %q", got)
	}
}

func TestParseMs(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{" 250 ", 250, false},
		{"18446744073709551615", 18446744073709551615, false},
		{"", 0, true},
		{"-1", 0, true},
		{"1.5", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseMs(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMs(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMs(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateCodes(t *testing.T) {
	if validateCodes("\n\n") == nil {
		t.Error("empty code list should not validate")
	}
	if err := validateCodes("X"); err != nil {
		t.Errorf("validateCodes(X) = %v", err)
	}
}
