package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDiscoverWalksParents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `
[analysis]
max_issues = 5
dedup = false

[types.annotations]
Real = "FLOAT"

[cache]
dir = "cache"

[trace]
level = "Phase"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Discover(nested)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != filepath.Join(root, FileName) {
		t.Fatalf("unexpected path %q", cfg.Path)
	}
	if cfg.Analysis.MaxIssues != 5 || cfg.Analysis.Dedup {
		t.Fatalf("analysis section not applied: %+v", cfg.Analysis)
	}
	if got := cfg.Types.Annotations["real"]; got != "float" {
		t.Fatalf("annotations must be case-folded, got %v", cfg.Types.Annotations)
	}
	if cfg.Cache.Dir != filepath.Join(root, "cache") || !cfg.Cache.Enabled {
		t.Fatalf("cache section: %+v", cfg.Cache)
	}
	if cfg.Trace.Level != "phase" || cfg.Trace.Mode != "stream" {
		t.Fatalf("trace section: %+v", cfg.Trace)
	}
	if names := cfg.AnnotationNames(); len(names) != 1 || names[0] != "real" {
		t.Fatalf("AnnotationNames = %v", names)
	}
}

func TestDiscoverWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if cfg.Path != "" && !strings.HasSuffix(cfg.Path, FileName) {
		t.Fatalf("unexpected path %q", cfg.Path)
	}
	if cfg.Path == "" && (cfg.Analysis.MaxIssues != 100 || !cfg.Analysis.Dedup) {
		t.Fatalf("defaults not applied: %+v", cfg.Analysis)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"syntax":        "[analysis\n",
		"unknown key":   "[analysis]\nmax_issue = 3\n",
		"negative":      "[analysis]\nmax_issues = -1\n",
		"bad level":     "[trace]\nlevel = \"loud\"\n",
		"bad mode":      "[trace]\nmode = \"tape\"\n",
		"unknown table": "[extras]\nx = 1\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, content)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), path) {
				t.Fatalf("error must name the file: %v", err)
			}
		})
	}
}
