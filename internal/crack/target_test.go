package crack

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestParseTargets(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantIDs    []string
		wantLen    int
		wantOwners int
	}{
		{
			name: "valid lines",
			content: `1 5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8
2 7c4a8d09ca3762af61e59520943dc26494f8941b`,
			wantIDs:    []string{"1", "2"},
			wantLen:    2,
			wantOwners: 2,
		},
		{
			name: "shared digest",
			content: `1 aaaa
2 aaaa
3 bbbb`,
			wantIDs:    []string{"1", "2", "3"},
			wantLen:    2,
			wantOwners: 3,
		},
		{
			name: "malformed lines skipped",
			content: `1 aaaa
justonefield

1 too many fields
2 bbbb`,
			wantIDs:    []string{"1", "2"},
			wantLen:    2,
			wantOwners: 2,
		},
		{
			name:       "empty input",
			content:    "",
			wantIDs:    []string{},
			wantLen:    0,
			wantOwners: 0,
		},
		{
			name:       "uppercase digest lowercased",
			content:    "7 ABCDEF0123",
			wantIDs:    []string{"7"},
			wantLen:    1,
			wantOwners: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := ParseTargets(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("ParseTargets() error = %v", err)
			}
			if ts.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", ts.Len(), tt.wantLen)
			}
			if ts.Owners() != tt.wantOwners {
				t.Errorf("Owners() = %d, want %d", ts.Owners(), tt.wantOwners)
			}

			ids := ts.IDs()
			sort.Strings(ids)
			if len(ids) != len(tt.wantIDs) || (len(ids) > 0 && !reflect.DeepEqual(ids, tt.wantIDs)) {
				t.Errorf("IDs() = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestParseTargetsLowercasesDigest(t *testing.T) {
	ts, err := ParseTargets(strings.NewReader("9 ABCDEF"))
	if err != nil {
		t.Fatalf("ParseTargets() error = %v", err)
	}

	d, ok := ts.Digest("9")
	if !ok {
		t.Fatal("Digest(9) not found")
	}
	if d != "abcdef" {
		t.Errorf("Digest(9) = %q, want %q", d, "abcdef")
	}
	if got := ts.Identifiers("abcdef"); !reflect.DeepEqual(got, []string{"9"}) {
		t.Errorf("Identifiers(abcdef) = %v, want [9]", got)
	}
}

func TestTargetSetSharedDigestIdentifiers(t *testing.T) {
	ts, err := ParseTargets(strings.NewReader("1 aaaa\n2 aaaa\n3 bbbb"))
	if err != nil {
		t.Fatalf("ParseTargets() error = %v", err)
	}

	got := ts.Identifiers("aaaa")
	sort.Strings(got)
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Identifiers(aaaa) = %v, want [1 2]", got)
	}
}

func TestTargetSetDigestSetIsFresh(t *testing.T) {
	ts, err := ParseTargets(strings.NewReader("1 aaaa\n2 bbbb"))
	if err != nil {
		t.Fatalf("ParseTargets() error = %v", err)
	}

	set := ts.DigestSet()
	delete(set, "aaaa")

	// Mutating the returned set must not affect the target set.
	if ts.Len() != 2 {
		t.Errorf("Len() = %d after mutating DigestSet copy, want 2", ts.Len())
	}
	if len(ts.DigestSet()) != 2 {
		t.Errorf("second DigestSet() has %d entries, want 2", len(ts.DigestSet()))
	}
}

func TestLoadTargets(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "passwords.txt")
	if err := os.WriteFile(path, []byte("1 aaaa\n2 bbbb\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	ts, err := LoadTargets(path)
	if err != nil {
		t.Fatalf("LoadTargets() error = %v", err)
	}
	if ts.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ts.Len())
	}

	if _, err := LoadTargets(filepath.Join(tmpDir, "missing.txt")); err == nil {
		t.Error("LoadTargets() on missing file: expected error, got nil")
	}
}
