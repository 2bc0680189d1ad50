package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func runOut(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("X_MAX", "")
	t.Setenv("STEPS_PER_UNIT", "")
	t.Setenv("EFFICIENCY_UNIT", "")
	t.Setenv("REDUCTION_UNIT", "")
	var buf bytes.Buffer
	if err := run(args, &buf); err != nil {
		t.Fatalf("run %v: %v", args, err)
	}
	return buf.String()
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "-efficiency", "5"}, "Reduction: 83.33%\n"},
		{[]string{"convert", "-reduction", "50"}, "Efficiency: 100.00%\n"},
		{[]string{"convert", "-reduction", "99"}, "Efficiency: 9900.00%\n(outside the plotted window)\n"},
		{[]string{"convert", "-reduction", "100"}, "\n"},
		{[]string{"convert", "-efficiency", "25"}, "\n"},
	}
	for _, tt := range tests {
		if got := runOut(t, tt.args...); got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestConvertCmdNeedsOneField(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"convert"}, &buf); err == nil {
		t.Error("want error with no field")
	}
	if err := run([]string{"convert", "-efficiency", "1", "-reduction", "1"}, &buf); err == nil {
		t.Error("want error with both fields")
	}
}

func TestProbeCmd(t *testing.T) {
	got := runOut(t, "probe", "-x", "5.03")
	if !strings.Contains(got, "Efficiency: 500.00%<br>Reduction: 83.33%") {
		t.Errorf("probe output = %q", got)
	}
}

func TestCurveCmd(t *testing.T) {
	got := runOut(t, "curve", "-steps", "2", "-x-max", "1")
	if !strings.HasSuffix(got, "3 samples\n") {
		t.Errorf("curve output = %q", got)
	}
	csv := runOut(t, "curve", "-csv")
	if lines := strings.Count(csv, "\n"); lines != 202 {
		t.Errorf("csv lines = %d, want 202", lines)
	}
}

func TestExportAndList(t *testing.T) {
	dir := t.TempDir()
	dsn := fmt.Sprintf("file:%s?mode=rwc", filepath.Join(dir, "curves.db"))
	got := runOut(t, "export", "-db-driver", "sqlite", "-db-dsn", dsn, "-csv-dir", filepath.Join(dir, "blobs"))
	if !strings.Contains(got, "201 samples") || !strings.Contains(got, "file://") {
		t.Errorf("export output = %q", got)
	}
	list := runOut(t, "list", "-db-driver", "sqlite", "-db-dsn", dsn)
	if !strings.Contains(list, "201") || strings.Count(list, "\n") != 2 {
		t.Errorf("list output = %q", list)
	}
}

func TestUnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"frobnicate"}, &buf); err == nil {
		t.Error("want error")
	}
	if got := runOut(t); !strings.HasPrefix(got, "usage:") {
		t.Errorf("no-arg output = %q", got)
	}
}
