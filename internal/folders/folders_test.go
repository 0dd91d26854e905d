package folders

import (
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/davidrencse/Folder-Generator/internal/model"
)

func TestCreateMakesTargetAndFolders(t *testing.T) {
	base := t.TempDir()
	target := TargetDir(base)
	if target != filepath.Join(base, "output") {
		t.Fatalf("unexpected target dir: %s", target)
	}

	result, err := Create(target, []string{"cache_001", "alu_notes_002"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(result.Created()) != 2 || len(result.Skipped()) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	for _, name := range result.Created() {
		info, err := os.Stat(filepath.Join(target, name))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", name, err)
		}
	}
}

func TestCreateSkipsExistingWithoutTouchingThem(t *testing.T) {
	target := filepath.Join(t.TempDir(), "output")
	existing := filepath.Join(target, "cache_001")
	if err := os.MkdirAll(existing, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	marker := filepath.Join(existing, "keep.txt")
	if err := os.WriteFile(marker, []byte("mine"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "plain_file_003"), nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	result, err := Create(target, []string{"cache_001", "tlb_002", "plain_file_003"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := []model.Folder{
		{Name: "cache_001"},
		{Name: "tlb_002", Created: true},
		{Name: "plain_file_003"},
	}
	if !reflect.DeepEqual(result.Folders, want) {
		t.Fatalf("expected %+v in order, got %+v", want, result.Folders)
	}
	data, err := os.ReadFile(marker)
	if err != nil || string(data) != "mine" {
		t.Fatalf("existing folder contents changed: %q %v", data, err)
	}
	if result.Requested != 3 {
		t.Fatalf("expected requested 3, got %d", result.Requested)
	}
}

func TestCreateTreatsRacingFolderAsSkipped(t *testing.T) {
	orig := mkdir
	t.Cleanup(func() { mkdir = orig })
	mkdir = func(path string, perm os.FileMode) error {
		// Another process wins the race for this name.
		if err := os.Mkdir(path, perm); err != nil {
			return err
		}
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}

	result, err := Create(filepath.Join(t.TempDir(), "output"), []string{"bus_001"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(result.Created()) != 0 || !reflect.DeepEqual(result.Skipped(), []string{"bus_001"}) {
		t.Fatalf("expected racing folder to be skipped, got %+v", result.Folders)
	}
}

func TestCreateFailsWhenTargetIsFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "output")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Create(target, []string{"a_001"}); err == nil {
		t.Fatalf("expected error when target is a file")
	}
}

func TestCreateReportsPermissionErrors(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	cases := []struct {
		name string
		mode os.FileMode
	}{
		{name: "read-only target", mode: 0o500},
		{name: "unsearchable target", mode: 0o000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target := filepath.Join(t.TempDir(), "output")
			if err := os.Mkdir(target, 0o755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
			if err := os.Chmod(target, tc.mode); err != nil {
				t.Fatalf("chmod: %v", err)
			}
			t.Cleanup(func() {
				_ = os.Chmod(target, 0o755)
			})

			result, err := Create(target, []string{"stack_001"})
			if err == nil {
				t.Fatalf("expected permission error")
			}
			if len(result.Created()) != 0 {
				t.Fatalf("expected nothing created, got %+v", result.Folders)
			}
		})
	}
}
