package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestScanScenarioMap(t *testing.T) {
	g, err := Map{"1110", "P001", "0111"}.Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}

	if g.Rows != 3 || g.Cols != 4 {
		t.Errorf("Grid size = %dx%d, expected 3x4", g.Rows, g.Cols)
	}

	expected := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 3}, {2, 1}, {2, 2}, {2, 3}}
	if len(g.Blocks) != len(expected) {
		t.Fatalf("got %d blocks, expected %d", len(g.Blocks), len(expected))
	}
	for i, c := range expected {
		if g.Blocks[i] != c {
			t.Errorf("block %d = %+v, expected %+v", i, g.Blocks[i], c)
		}
	}

	if g.Spawn != (Cell{Row: 1, Col: 0}) {
		t.Errorf("Spawn = %+v, expected {1 0}", g.Spawn)
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name     string
		m        Map
		expected error
	}{
		{"no rows", Map{}, ErrMalformedMap},
		{"empty row", Map{"", ""}, ErrMalformedMap},
		{"ragged rows", Map{"P00", "11"}, ErrMalformedMap},
		{"missing spawn", Map{"000", "111"}, ErrMissingSpawn},
		{"duplicate spawn", Map{"P00", "00P"}, ErrDuplicateSpawn},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.m.Scan()
			if !errors.Is(err, tc.expected) {
				t.Errorf("Scan() = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestScanOtherSymbolsAreEmpty(t *testing.T) {
	g, err := Map{"P.x 1"}.Scan()
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(g.Blocks) != 1 || g.Blocks[0] != (Cell{Row: 0, Col: 4}) {
		t.Errorf("Blocks = %+v, expected one block at column 4", g.Blocks)
	}
}

func TestBuiltinLevelsValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, lvl := range Builtin() {
		if err := lvl.Validate(); err != nil {
			t.Errorf("builtin level %q invalid: %v", lvl.ID, err)
		}
		if seen[lvl.ID] {
			t.Errorf("duplicate builtin id %q", lvl.ID)
		}
		seen[lvl.ID] = true
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	src := Level{ID: "tiny", Name: "Tiny", Map: Map{"111", "P01"}}

	data, err := MarshalYAML(src)
	if err != nil {
		t.Fatalf("MarshalYAML() failed: %v", err)
	}
	got, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	if got.ID != src.ID || got.Name != src.Name || len(got.Map) != 2 || got.Map[1] != "P01" {
		t.Errorf("round trip = %+v, expected %+v", got, src)
	}
}

func TestParseYAMLRejectsInvalidMap(t *testing.T) {
	_, err := ParseYAML([]byte("id: broken\nrows:\n  - \"000\"\n"))
	if !errors.Is(err, ErrMissingSpawn) {
		t.Errorf("ParseYAML() = %v, expected ErrMissingSpawn", err)
	}

	_, err = ParseYAML([]byte("rows:\n  - \"P\"\n"))
	if !errors.Is(err, ErrMalformedMap) {
		t.Errorf("ParseYAML() without id = %v, expected ErrMalformedMap", err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "extra")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	files := map[string]string{
		filepath.Join(dir, "b.yaml"):    "id: bravo\nrows:\n  - \"P1\"\n",
		filepath.Join(sub, "a.yml"):     "id: alpha\nname: Alpha\nrows:\n  - \"1P\"\n",
		filepath.Join(dir, "bad.yaml"):  "id: bad\nrows:\n  - \"11\"\n",
		filepath.Join(dir, "notes.txt"): "ignored",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	levels, issues, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(levels) != 2 {
		t.Fatalf("got %d levels, expected 2", len(levels))
	}
	if levels[0].ID != "alpha" || levels[1].ID != "bravo" {
		t.Errorf("levels not sorted by id: %s, %s", levels[0].ID, levels[1].ID)
	}
	if levels[0].Source != filepath.Join(sub, "a.yml") {
		t.Errorf("Source = %q", levels[0].Source)
	}

	if len(issues) != 1 || !errors.Is(issues[0].Err, ErrMissingSpawn) {
		t.Errorf("issues = %+v, expected one missing-spawn issue", issues)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	_, _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	if err == nil {
		t.Error("LoadAll() on a missing directory should fail")
	}
}
