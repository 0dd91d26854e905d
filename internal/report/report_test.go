package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davidrencse/Folder-Generator/internal/model"
)

func TestSummaryAllCreated(t *testing.T) {
	var buf bytes.Buffer
	result := model.Result{TargetDir: "/tmp/base/output", Requested: 2, Folders: []model.Folder{
		{Name: "a_001", Created: true},
		{Name: "b_002", Created: true},
	}}
	if err := Summary(&buf, result); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if buf.String() != "Done. Created 2 folders in: /tmp/base/output\n" {
		t.Fatalf("unexpected summary: %q", buf.String())
	}
}

func TestSummaryMentionsSkipped(t *testing.T) {
	var buf bytes.Buffer
	result := model.Result{TargetDir: "out", Requested: 3, Folders: []model.Folder{
		{Name: "a_001", Created: true},
		{Name: "b_002"},
		{Name: "c_003"},
	}}
	if err := Summary(&buf, result); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(buf.String(), "Created 1 folders") || !strings.Contains(buf.String(), "already existed and were skipped") {
		t.Fatalf("unexpected summary: %q", buf.String())
	}
}

func TestNamesKeepsGenerationOrder(t *testing.T) {
	var buf bytes.Buffer
	result := model.Result{TargetDir: "/tmp/out", Requested: 3, Folders: []model.Folder{
		{Name: "tlb_010"},
		{Name: "alu_notes_004", Created: true},
		{Name: "bus_002"},
	}}
	if err := Names(&buf, result); err != nil {
		t.Fatalf("names: %v", err)
	}
	want := "Folders in: /tmp/out\n" +
		"====================\n" +
		"Name            Status\n" +
		"-------------  -------\n" +
		"tlb_010        skipped\n" +
		"alu_notes_004  created\n" +
		"bus_002        skipped\n"
	if buf.String() != want {
		t.Fatalf("unexpected table:\n%s", buf.String())
	}
}

func TestNamesTitleRuleMatchesDisplayWidth(t *testing.T) {
	var buf bytes.Buffer
	result := model.Result{TargetDir: "/課題/output", Requested: 1, Folders: []model.Folder{{Name: "a_001", Created: true}}}
	if err := Names(&buf, result); err != nil {
		t.Fatalf("names: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	// "Folders in: " is 12 columns, "/課題/output" is 12 (two wide runes).
	if lines[1] != strings.Repeat("=", 24) {
		t.Fatalf("unexpected title rule %q", lines[1])
	}
}

func TestNamesEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	if err := Names(&buf, model.Result{TargetDir: "x"}); err != nil {
		t.Fatalf("names: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
