package crack

import (
	"reflect"
	"testing"
)

func TestJoin(t *testing.T) {
	g := NewJoin([]string{"a", "b"}, 2, nil)
	if g.Size() != 4 {
		t.Errorf("Size() = %d, want 4", g.Size())
	}

	got := drainAll(t, g)
	want := []string{"aa", "ab", "ba", "bb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestJoinSeparatorPasses(t *testing.T) {
	g := NewJoin([]string{"a", "b"}, 2, []string{"", "-"})
	if g.Size() != 8 {
		t.Errorf("Size() = %d, want 8", g.Size())
	}

	got := drainAll(t, g)
	want := []string{"aa", "ab", "ba", "bb", "a-a", "a-b", "b-a", "b-b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestJoinDegenerate(t *testing.T) {
	if got := drainAll(t, NewJoin(nil, 2, nil)); got != nil {
		t.Errorf("empty pool produced %v", got)
	}
	if got := drainAll(t, NewJoin([]string{"a"}, 0, nil)); got != nil {
		t.Errorf("zero words produced %v", got)
	}
}

func TestCaseJoinSingleWord(t *testing.T) {
	got := drainAll(t, NewCaseJoin([]string{"ab"}, 1))
	want := []string{"ab", "Ab", "AB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestCaseJoinPairs(t *testing.T) {
	g := NewCaseJoin([]string{"ab", "c"}, 2)
	// 4 word tuples times 9 transform combinations.
	if g.Size() != 36 {
		t.Errorf("Size() = %d, want 36", g.Size())
	}

	all := drainAll(t, g)
	if len(all) != 36 {
		t.Fatalf("produced %d candidates, want 36", len(all))
	}

	// First tuple (ab, ab): the right word's transform varies fastest.
	wantHead := []string{"abab", "abAb", "abAB", "Abab"}
	if !reflect.DeepEqual(all[:4], wantHead) {
		t.Errorf("head = %v, want %v", all[:4], wantHead)
	}
}

func TestNoRepeat(t *testing.T) {
	g := NewNoRepeat([]string{"a", "b", "c"}, 2)
	if g.Size() != 6 {
		t.Errorf("Size() = %d, want 6", g.Size())
	}

	got := drainAll(t, g)
	want := []string{"ab", "ac", "ba", "bc", "ca", "cb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}

func TestNoRepeatPoolTooSmall(t *testing.T) {
	g := NewNoRepeat([]string{"a", "b", "c"}, 4)
	if g.Size() != 0 {
		t.Errorf("Size() = %d, want 0", g.Size())
	}
	if got := drainAll(t, g); got != nil {
		t.Errorf("produced %v, want nothing", got)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"a", "A"},
		{"cat", "Cat"},
		{"Cat", "Cat"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
