// Package batch solves every puzzle in a directory concurrently,
// grounded on the negamax solver pattern in
// other_examples/bluebear94-odnocam's Solver (errgroup-bounded worker
// fan-out over independent game copies) adapted to per-file, rather
// than per-thread, concurrency: each file gets its own Searcher so no
// transposition store, search stack, or strategy map is shared.
package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/checkerplay/internal/archive"
	"github.com/hailam/checkerplay/internal/board"
	"github.com/hailam/checkerplay/internal/engine"
	"github.com/hailam/checkerplay/internal/tablebase"
)

// DefaultEndgamePieces mirrors the root-level checkerplay.Solve
// default, since SolveDir does not go through that entry point (it
// reports each Searcher's node count, which Solve does not return).
const DefaultEndgamePieces = 4

// openArchive is a seam for tests, which point it at a temp directory
// via archive.OpenAt instead of the real platform data directory.
var openArchive = archive.Open

// Result is one file's outcome: either a solved PV or an error naming
// what went wrong for that file. Batch processing is best-effort — one
// bad input does not abort the rest of the directory.
type Result struct {
	InputPath string
	PV        []*board.Position
	Nodes     uint64
	Err       error
}

// SolveDir reads every file in inputDir, solves each independently up
// to maxDepth/maxTime, and writes the blank-line-separated board
// sequence for each to a same-named file under outputDir. Concurrency
// is bounded to the host's CPU count via errgroup.Group.SetLimit, the
// same fan-out shape the teacher's reference solver uses for parallel
// game-copy search.
func SolveDir(ctx context.Context, inputDir, outputDir string, maxDepth int, maxTime time.Duration) ([]Result, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("batch: read input dir: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create output dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	// The puzzle archive is shared read/write across every goroutine
	// below; Badger serializes its own transactions, so one instance
	// for the whole directory is both correct and far cheaper than
	// opening per file. A directory that can't open it still solves,
	// just without cross-invocation caching.
	arc, err := openArchive()
	if err != nil {
		log.Printf("batch: puzzle archive unavailable, solving without cache: %v", err)
		arc = nil
	} else {
		defer arc.Close()
	}

	results := make([]Result, len(names))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, runtime.NumCPU()))

	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			results[i] = solveOne(gctx, arc, inputDir, outputDir, name, maxDepth, maxTime)
			return nil
		})
	}
	// Errors, including a cancellation of ctx, are captured per-file in
	// Result.Err, not propagated, so a malformed puzzle does not stop
	// its siblings; every goroutine returns nil, so Wait reports none.
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func solveOne(ctx context.Context, arc *archive.PuzzleArchive, inputDir, outputDir, name string, maxDepth int, maxTime time.Duration) Result {
	inPath := filepath.Join(inputDir, name)
	res := Result{InputPath: inPath}

	data, err := os.ReadFile(inPath)
	if err != nil {
		res.Err = fmt.Errorf("batch: %s: %w", name, err)
		return res
	}
	root, err := board.Read(string(data))
	if err != nil {
		res.Err = fmt.Errorf("batch: %s: %w", name, err)
		return res
	}

	rootHash := root.Hash()
	var pv []*board.Position
	if arc != nil {
		if cached, found, err := arc.Get(rootHash); err == nil && found {
			pv = cached
		}
	}

	if pv == nil {
		prober := tablebase.NewCachedProber(tablebase.NewEndgameProber(DefaultEndgamePieces), 4096)
		searcher := engine.NewSearcher(prober)
		budget := engine.NewBudget(maxTime)
		pv = searcher.Search(root, board.Red, maxDepth, budget)
		res.Nodes = searcher.Nodes()
		if arc != nil {
			if err := arc.Put(rootHash, pv); err != nil {
				log.Printf("batch: %s: archive put failed: %v", name, err)
			}
		}
	}
	res.PV = pv

	if ctx.Err() != nil {
		res.Err = ctx.Err()
		return res
	}

	outPath := filepath.Join(outputDir, name)
	out, err := os.Create(outPath)
	if err != nil {
		res.Err = fmt.Errorf("batch: %s: %w", name, err)
		return res
	}
	defer out.Close()
	if err := board.WriteBoards(out, pv); err != nil {
		res.Err = fmt.Errorf("batch: %s: %w", name, err)
	}
	return res
}
