package keyboard

import (
	"bytes"
	"sort"
	"strings"
	"testing"
)

func TestLookupDefault(t *testing.T) {
	b, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\"): %v", err)
	}
	if b.Name() != Default() {
		t.Errorf("Name() = %q, want %q", b.Name(), Default())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("teletype")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "teletype") || !strings.Contains(err.Error(), "stdout") {
		t.Errorf("error should name the backend and list the available ones: %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"keybd", "clipboard", "stdout", Default()} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Names() = %v, missing %q", names, want)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	b := NewPrinter(&buf)
	if b.Name() != "stdout" {
		t.Errorf("Name() = %q", b.Name())
	}
	dev, err := b.Open()
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Text("ABC-123"); err != nil {
		t.Fatal(err)
	}
	if err := dev.Enter(); err != nil {
		t.Fatal(err)
	}
	if err := dev.Close(); err != nil {
		t.Fatal(err)
	}
	want := "text \"ABC-123\"\nenter\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestVerifyStdout(t *testing.T) {
	msg, err := Verify("stdout")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !strings.Contains(msg, "stdout") {
		t.Errorf("message = %q", msg)
	}
}
