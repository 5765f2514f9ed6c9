package source_test

import (
	"testing"

	"blang/internal/source"
)

func TestSpanLenEmpty(t *testing.T) {
	s := source.Span{File: 0, Start: 3, End: 7}
	if s.Empty() {
		t.Fatalf("span %v must not be empty", s)
	}
	if got := s.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	e := source.Span{File: 0, Start: 5, End: 5}
	if !e.Empty() {
		t.Fatalf("span %v must be empty", e)
	}
}

func TestSpanBefore(t *testing.T) {
	cases := []struct {
		name string
		a, b source.Span
		want bool
	}{
		{"earlier start", source.Span{Start: 1, End: 2}, source.Span{Start: 3, End: 4}, true},
		{"later start", source.Span{Start: 5, End: 6}, source.Span{Start: 3, End: 4}, false},
		{"same start shorter end", source.Span{Start: 3, End: 4}, source.Span{Start: 3, End: 9}, true},
		{"different files", source.Span{File: 0, Start: 9, End: 9}, source.Span{File: 1, Start: 0, End: 0}, true},
		{"identical", source.Span{Start: 3, End: 4}, source.Span{Start: 3, End: 4}, false},
	}
	for _, tc := range cases {
		if got := tc.a.Before(tc.b); got != tc.want {
			t.Fatalf("%s: Before() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 1, Start: 10, End: 20}
	b := source.Span{File: 1, Start: 5, End: 15}
	got := a.Cover(b)
	if got.Start != 5 || got.End != 20 {
		t.Fatalf("Cover() = %v, want 5..20", got)
	}
	other := source.Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover() across files = %v, want %v unchanged", got, a)
	}
}
