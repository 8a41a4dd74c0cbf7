package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	def := []string{"a", "b"}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]string{"x"}, def); len(got) != 1 || got[0] != "x" {
		t.Fatalf("IfEmpty non-empty = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("search", "name"); got != "search" {
		t.Fatalf("MustString = %q", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for blank value")
		}
	}()
	MustString("   ", "name")
}

func TestMustPrefix(t *testing.T) {
	if got := MustPrefix(" search/ "); got != "/search" {
		t.Fatalf("MustPrefix = %q", got)
	}
	if got := MustPrefix("/urls"); got != "/urls" {
		t.Fatalf("MustPrefix = %q", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for root path")
		}
	}()
	MustPrefix(" / ")
}
