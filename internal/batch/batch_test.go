package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hailam/checkerplay/internal/archive"
)

const onePlyWinBoard = `........
........
........
...b....
..r.....
........
........
........
`

// useTestArchive redirects openArchive at a fresh temp directory for
// the duration of one test, so tests never touch the real platform
// puzzle archive.
func useTestArchive(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	prev := openArchive
	openArchive = func() (*archive.PuzzleArchive, error) { return archive.OpenAt(dir) }
	t.Cleanup(func() { openArchive = prev })
}

func TestSolveDirSolvesEachFile(t *testing.T) {
	useTestArchive(t)
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(inputDir, name), []byte(onePlyWinBoard), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	results, err := SolveDir(context.Background(), inputDir, outputDir, 10, time.Second)
	if err != nil {
		t.Fatalf("SolveDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: unexpected error: %v", r.InputPath, r.Err)
		}
		if len(r.PV) != 2 {
			t.Errorf("%s: expected PV length 2, got %d", r.InputPath, len(r.PV))
		}
	}

	for _, name := range []string{"a.txt", "b.txt"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Errorf("expected output file %s to exist: %v", name, err)
		}
	}
}

func TestSolveDirReusesArchiveAcrossRuns(t *testing.T) {
	useTestArchive(t)
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(inputDir, "a.txt"), []byte(onePlyWinBoard), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	first, err := SolveDir(context.Background(), inputDir, outputDir, 10, time.Second)
	if err != nil {
		t.Fatalf("SolveDir (first run): %v", err)
	}
	if first[0].Nodes == 0 {
		t.Fatal("expected the first run to actually search (nonzero nodes)")
	}

	second, err := SolveDir(context.Background(), inputDir, outputDir, 10, time.Second)
	if err != nil {
		t.Fatalf("SolveDir (second run): %v", err)
	}
	if second[0].Nodes != 0 {
		t.Errorf("expected the second run to hit the archive (0 nodes), got %d", second[0].Nodes)
	}
	if len(second[0].PV) != len(first[0].PV) {
		t.Fatalf("archived PV length %d differs from searched PV length %d", len(second[0].PV), len(first[0].PV))
	}
	for i := range first[0].PV {
		if !first[0].PV[i].Equal(second[0].PV[i]) {
			t.Errorf("archived PV board %d differs from the originally searched board", i)
		}
	}
}

func TestSolveDirReportsPerFileError(t *testing.T) {
	useTestArchive(t)
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(inputDir, "bad.txt"), []byte("xyz\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	results, err := SolveDir(context.Background(), inputDir, outputDir, 10, time.Second)
	if err != nil {
		t.Fatalf("SolveDir: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Error("expected a parse error for a malformed input file")
	}
}
