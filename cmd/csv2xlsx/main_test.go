package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/csv2xlsx-go/pkg/csv2xlsx/models"
	"github.com/xuri/excelize/v2"
)

func TestDescriptorsFromArgs(t *testing.T) {
	got, err := descriptorsFromArgs(
		[]string{"in/a.csv", "b.csv", "c.csv"},
		[]string{"Alpha", ""},
		[]string{"red"},
	)
	if err != nil {
		t.Fatalf("descriptorsFromArgs failed: %v", err)
	}
	expected := []models.SheetDescriptor{
		{Path: "in/a.csv", Name: "Alpha", TabColor: "red"},
		{Path: "b.csv", Name: "b"},
		{Path: "c.csv", Name: "c"},
	}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d descriptors, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("descriptor %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}

	if _, err := descriptorsFromArgs([]string{"a.csv"}, []string{"x", "y"}, nil); err == nil {
		t.Error("Expected error for more names than files")
	}
	if _, err := descriptorsFromArgs([]string{"a.csv"}, nil, []string{"red", "blue"}); err == nil {
		t.Error("Expected error for more colors than files")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	out := filepath.Join(dir, "out.xlsx")
	if err := os.WriteFile(a, []byte("n\n1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("s\nx\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"-o", out, "-n", "Numbers,Strings", "-c", "red", a, b})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(buf.String(), "importing Numbers...") {
		t.Errorf("Expected progress output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "workbook saved at") {
		t.Errorf("Expected save message, got %q", buf.String())
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()
	list := f.GetSheetList()
	if len(list) != 2 || list[0] != "Numbers" || list[1] != "Strings" {
		t.Errorf("Expected [Numbers Strings], got %v", list)
	}
}

func TestRunRequiresOutput(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"a.csv"})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected error without -o")
	}
}
