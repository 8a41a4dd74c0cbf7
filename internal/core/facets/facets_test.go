package facets

import (
	"reflect"
	"testing"
)

func TestNormalizeAllPresent(t *testing.T) {
	got := Normalize(Raw{
		Audience:    "everyone",
		ContentType: "article",
		MimeType:    "application/pdf",
		Custom1:     "custom1",
		Custom2:     "custom2",
		Custom3:     "custom3",
		SortBy:      "date",
		Tags:        "irs,tax",
	})
	want := Set{
		KeyAudience:    "everyone",
		KeyContentType: "article",
		KeyMimeType:    "application/pdf",
		KeyCustom1:     "custom1",
		KeyCustom2:     "custom2",
		KeyCustom3:     "custom3",
		KeySortBy:      "date",
		KeyTags:        "irs,tax",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestNormalizeDropsBlanks(t *testing.T) {
	got := Normalize(Raw{
		Audience:    "everyone",
		ContentType: "",
		MimeType:    "   ",
		Tags:        "\t\n",
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 facet, got %v", got)
	}
	if v, ok := got.Get(KeyAudience); !ok || v != "everyone" {
		t.Fatalf("audience: got %q ok=%v", v, ok)
	}
	if _, ok := got.Get(KeyMimeType); ok {
		t.Fatalf("blank mime_type should be absent")
	}
}

func TestNormalizeEmpty(t *testing.T) {
	got := Normalize(Raw{})
	if len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

// values are not rewritten, unknown vocab is the backend's problem
func TestNormalizePassesValuesVerbatim(t *testing.T) {
	got := Normalize(Raw{ContentType: " Article "})
	if v := got[KeyContentType]; v != " Article " {
		t.Fatalf("got %q, value should pass through unchanged", v)
	}
}

func TestClone(t *testing.T) {
	orig := Normalize(Raw{Audience: "everyone"})
	cp := orig.Clone()
	cp[KeyAudience] = "mutated"
	if orig[KeyAudience] != "everyone" {
		t.Fatalf("Clone shares storage with the original")
	}
	if Set(nil).Clone() != nil {
		t.Fatalf("nil Clone should stay nil")
	}
}
