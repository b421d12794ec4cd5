package crack

import (
	"reflect"
	"strings"
	"testing"
)

func TestSHA1KnownVectors(t *testing.T) {
	alg, err := LookupAlgorithm("sha1")
	if err != nil {
		t.Fatalf("LookupAlgorithm(sha1) error = %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"password", "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	}
	for _, tt := range tests {
		if got := alg.Sum(tt.in); got != tt.want {
			t.Errorf("Sum(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSHA256KnownVector(t *testing.T) {
	alg, err := LookupAlgorithm("sha256")
	if err != nil {
		t.Fatalf("LookupAlgorithm(sha256) error = %v", err)
	}

	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := alg.Sum("abc"); got != want {
		t.Errorf("Sum(abc) = %s, want %s", got, want)
	}
}

func TestBLAKE3DigestShape(t *testing.T) {
	alg, err := LookupAlgorithm("blake3")
	if err != nil {
		t.Fatalf("LookupAlgorithm(blake3) error = %v", err)
	}

	d := alg.Sum("abc")
	if len(d) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(d))
	}
	if d != strings.ToLower(d) {
		t.Errorf("digest not lowercase: %s", d)
	}
	if alg.Sum("abc") != d {
		t.Error("digest not deterministic")
	}
	if alg.Sum("abd") == d {
		t.Error("distinct inputs produced the same digest")
	}
}

func TestLookupAlgorithm(t *testing.T) {
	if _, err := LookupAlgorithm("SHA1"); err != nil {
		t.Errorf("lookup should be case-insensitive, got error %v", err)
	}
	if _, err := LookupAlgorithm("md5"); err == nil {
		t.Error("expected error for unregistered algorithm")
	}
}

func TestAlgorithmNamesSorted(t *testing.T) {
	want := []string{"blake3", "sha1", "sha256"}
	if got := AlgorithmNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("AlgorithmNames() = %v, want %v", got, want)
	}
}
