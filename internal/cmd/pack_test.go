package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunPack_InvalidTargetIsNotAFailure(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing")
	if err := runPack(target, -1, false, false, true); err != nil {
		t.Errorf("runPack on missing target returned %v, want nil (nothing to do)", err)
	}
}

func TestRunPack_QuietProducesArchive(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "docs")
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := runPack(root, -1, false, false, true); err != nil {
		t.Fatalf("runPack failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "docs.zip")); err != nil {
		t.Errorf("expected docs.zip next to the target: %v", err)
	}
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{"pack": false, "inspect": false, "seed": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}
