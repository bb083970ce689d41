package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	wantDescriptor = "# Lemonfile\n"
	wantStarter    = "#include <Lemonade.hpp>\nLemon::Log(\"Hello, World!\");\n"
)

func TestInitEmptyDir(t *testing.T) {
	dir := t.TempDir()

	result, err := Init(dir, DefaultLayout)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	assertFiles(t, result, []string{"Lemonfile", "main.🍋"})
	assertDirEntries(t, dir, 2)
	if got := readFile(t, dir, "Lemonfile"); got != wantDescriptor {
		t.Errorf("Lemonfile = %q, want %q", got, wantDescriptor)
	}
	if got := readFile(t, dir, "main.🍋"); got != wantStarter {
		t.Errorf("main.🍋 = %q, want %q", got, wantStarter)
	}
}

func TestInitTwiceFailsWithoutTouchingFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := Init(dir, DefaultLayout); err != nil {
		t.Fatalf("first Init() error: %v", err)
	}

	// Edits made after the first run must survive the refused second run.
	writeFile(t, dir, "Lemonfile", "# edited\n")
	writeFile(t, dir, "main.🍋", "edited starter\n")

	_, err := Init(dir, DefaultLayout)
	if !errors.Is(err, ErrDescriptorExists) {
		t.Fatalf("second Init() error = %v, want ErrDescriptorExists", err)
	}
	if got := readFile(t, dir, "Lemonfile"); got != "# edited\n" {
		t.Errorf("Lemonfile modified: %q", got)
	}
	if got := readFile(t, dir, "main.🍋"); got != "edited starter\n" {
		t.Errorf("main.🍋 modified: %q", got)
	}
}

func TestInitOverwritesEmptyDescriptor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Lemonfile", "")

	if _, err := Init(dir, DefaultLayout); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if got := readFile(t, dir, "Lemonfile"); got != wantDescriptor {
		t.Errorf("Lemonfile = %q, want %q", got, wantDescriptor)
	}
}

func TestInitPlainLayout(t *testing.T) {
	dir := t.TempDir()

	result, err := Init(dir, PlainLayout)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	assertFiles(t, result, []string{"Lemonfile", "main.lemon"})
	if got := readFile(t, dir, "main.lemon"); got != wantStarter {
		t.Errorf("main.lemon = %q, want %q", got, wantStarter)
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    DescriptorState
	}{
		{"missing", nil, StateMissing},
		{"empty", ptr(""), StateEmpty},
		{"present", ptr("# Lemonfile\n"), StatePresent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				writeFile(t, dir, "Lemonfile", *tt.content)
			}
			got, err := Inspect(dir, DefaultLayout)
			if err != nil {
				t.Fatalf("Inspect() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Inspect() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRequireDescriptor(t *testing.T) {
	dir := t.TempDir()
	err := RequireDescriptor(dir, DefaultLayout)
	if !errors.Is(err, ErrDescriptorMissing) {
		t.Fatalf("RequireDescriptor() error = %v, want ErrDescriptorMissing", err)
	}

	writeFile(t, dir, "Lemonfile", "")
	if err := RequireDescriptor(dir, DefaultLayout); err != nil {
		t.Errorf("RequireDescriptor() with empty descriptor error: %v", err)
	}
}

func TestRequireFile(t *testing.T) {
	dir := t.TempDir()

	err := RequireFile(dir, "somefile.🍋")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("RequireFile() error = %v, want ErrFileNotFound", err)
	}
	if !strings.Contains(err.Error(), "somefile.🍋") {
		t.Errorf("error should name the file, got: %v", err)
	}

	writeFile(t, dir, "somefile.🍋", "x")
	if err := RequireFile(dir, "somefile.🍋"); err != nil {
		t.Errorf("RequireFile() relative error: %v", err)
	}
	if err := RequireFile(dir, filepath.Join(dir, "somefile.🍋")); err != nil {
		t.Errorf("RequireFile() absolute error: %v", err)
	}
}

func TestLayoutByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Layout
		wantErr bool
	}{
		{"", DefaultLayout, false},
		{"emoji", DefaultLayout, false},
		{"plain", PlainLayout, false},
		{"fancy", Layout{}, true},
	}
	for _, tt := range tests {
		got, err := LayoutByName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("LayoutByName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("LayoutByName(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func ptr(s string) *string { return &s }

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Fatalf("got files %v, want %v", result.Files, expected)
	}
	for i, f := range expected {
		if result.Files[i] != f {
			t.Errorf("file[%d] = %q, want %q", i, result.Files[i], f)
		}
	}
}

func assertDirEntries(t *testing.T, dir string, n int) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != n {
		t.Errorf("dir has %d entries, want %d", len(entries), n)
	}
}
