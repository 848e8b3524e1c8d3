package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shikaan/lifp/util"
)

func TestMain(m *testing.M) {
	logger = util.NewLogger(io.Discard, "error")
	os.Exit(m.Run())
}

func TestRunFileEvaluatesEveryStatement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.lifp")
	if err := os.WriteFile(path, []byte("(def! x 1)\n(def! y 2)\n(+ x y)"), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if err := runFile(path); err != nil {
		t.Fatalf("runFile returned error: %v", err)
	}
}

func TestRunFileRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.lifp")
	if err := os.WriteFile(path, []byte("   \n"), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if err := runFile(path); err == nil {
		t.Error("runFile on an empty file should have returned an error")
	}
}

func TestRunFileReportsMissingFile(t *testing.T) {
	if err := runFile(filepath.Join(t.TempDir(), "does-not-exist.lifp")); err == nil {
		t.Error("runFile on a missing file should have returned an error")
	}
}

func TestRunFileStopsAtFirstEvaluationError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.lifp")
	if err := os.WriteFile(path, []byte("(+ 1 undefined-symbol)"), 0o644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if err := runFile(path); err == nil {
		t.Error("runFile over a program referencing an undefined symbol should have returned an error")
	}
}
