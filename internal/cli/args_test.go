package cli

import (
	"bytes"
	"testing"

	"github.com/vvka-141/msgprep/pkg/msgprep"
)

func TestRequireRunArgs(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd(&out, &out)

	if err := requireRunArgs(cmd, []string{"m.csv", "c.csv", "out.db"}); err != nil {
		t.Fatalf("Expected no error for three args, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no usage output for valid args, got %q", out.String())
	}

	err := requireRunArgs(cmd, []string{"m.csv"})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	if code := msgprep.ExitCodeForError(err); code != msgprep.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", msgprep.ExitUsageError, code, err)
	}
	if !bytes.Contains(out.Bytes(), []byte("Usage:")) {
		t.Errorf("Expected usage text on stdout, got %q", out.String())
	}
}

func TestRequireDestination(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd(&out, &out)

	if err := requireDestination(cmd, []string{"out.db"}); err != nil {
		t.Fatalf("Expected no error for one arg, got %v", err)
	}
	if err := requireDestination(cmd, []string{"a", "b"}); err == nil {
		t.Fatal("Expected error for too many args")
	}
}
