package doctor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"wedge/inject"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" y \r\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}
	for _, tt := range tests {
		if got := confirm(strings.NewReader(tt.in)); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTestCode(t *testing.T) {
	code := testCode(time.Unix(0, 123456789))
	if code != "WEDGE6789" {
		t.Errorf("testCode = %q", code)
	}
}

func TestCheckOpen(t *testing.T) {
	tr := &inject.Trace{}
	fb := inject.NewFake(tr)
	if !checkOpen(fb) {
		t.Fatal("checkOpen failed on working backend")
	}
	if got := tr.Events(); len(got) != 2 || got[0] != "open" || got[1] != "close" {
		t.Errorf("events = %q, want open, close", got)
	}

	fb = inject.NewFake(tr)
	fb.FailOpen(errors.New("no device"))
	if checkOpen(fb) {
		t.Error("checkOpen passed on failing backend")
	}

	tr = &inject.Trace{}
	fb = inject.NewFake(tr)
	fb.FailClose(errors.New("release failed"))
	if checkOpen(fb) {
		t.Error("checkOpen passed when release failed")
	}
	if fb.Opened() != 0 {
		t.Errorf("Opened = %d after failed release, want 0", fb.Opened())
	}
}
