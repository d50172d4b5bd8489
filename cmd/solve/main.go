// Command solve reads a checkers board, solves it for Red, and writes
// the resulting principal variation. Adapted from cmd/chessplay-uci's
// main (same flag.String + log.Fatal + runtime/pprof shape), minus the
// stdin/stdout UCI loop it replaces.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hailam/checkerplay/internal/archive"
	"github.com/hailam/checkerplay/internal/batch"
	"github.com/hailam/checkerplay/internal/board"
	"github.com/hailam/checkerplay/internal/engine"
	"github.com/hailam/checkerplay/internal/tablebase"
)

var (
	inputFile  = flag.String("inputfile", "", "path to a single board to solve")
	outputFile = flag.String("outputfile", "", "path to write the solved board sequence")
	inputDir   = flag.String("inputdir", "", "directory of boards to solve concurrently")
	outputDir  = flag.String("outputdir", "", "directory to write solved sequences into (with -inputdir)")
	maxDepth   = flag.Int("maxdepth", 100, "maximum search depth in plies")
	maxTime    = flag.Duration("maxtime", 110*time.Second, "wall-clock search budget (<=0 for unlimited)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	switch {
	case *inputDir != "":
		runBatch()
	case *inputFile != "":
		runSingle()
	default:
		fmt.Fprintln(os.Stderr, "usage: solve -inputfile IN -outputfile OUT, or -inputdir DIR -outputdir DIR")
		os.Exit(2)
	}
}

func runSingle() {
	if *outputFile == "" {
		fmt.Fprintln(os.Stderr, "parse error: -outputfile is required with -inputfile")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "io error: %v\n", err)
		os.Exit(1)
	}
	root, err := board.Read(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		os.Exit(1)
	}

	arc, err := archive.Open()
	if err != nil {
		log.Printf("puzzle archive unavailable, solving without cache: %v", err)
		arc = nil
	} else {
		defer arc.Close()
	}

	rootHash := root.Hash()
	var pv []*board.Position
	var nodes uint64
	var fromCache bool
	if arc != nil {
		if cached, found, err := arc.Get(rootHash); err == nil && found {
			pv, fromCache = cached, true
		}
	}

	if !fromCache {
		prober := tablebase.NewCachedProber(tablebase.NewEndgameProber(4), 4096)
		searcher := engine.NewSearcher(prober)
		pv = searcher.Search(root, board.Red, *maxDepth, engine.NewBudget(*maxTime))
		nodes = searcher.Nodes()
		if arc != nil {
			if err := arc.Put(rootHash, pv); err != nil {
				log.Printf("archive put failed: %v", err)
			}
		}
	}

	out, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "io error: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := board.WriteBoards(out, pv); err != nil {
		fmt.Fprintf(os.Stderr, "io error: %v\n", err)
		os.Exit(1)
	}

	if fromCache {
		fmt.Printf("solved: %s-board sequence (from archive), 0 nodes visited\n",
			humanize.Comma(int64(len(pv))))
		return
	}
	fmt.Printf("solved: %s-board sequence, %s nodes visited\n",
		humanize.Comma(int64(len(pv))), humanize.Comma(int64(nodes)))
}

func runBatch() {
	if *outputDir == "" {
		fmt.Fprintln(os.Stderr, "parse error: -outputdir is required with -inputdir")
		os.Exit(1)
	}

	results, err := batch.SolveDir(context.Background(), *inputDir, *outputDir, *maxDepth, *maxTime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "io error: %v\n", err)
		os.Exit(1)
	}

	var failures int
	var totalNodes uint64
	for _, r := range results {
		if r.Err != nil {
			failures++
			log.Printf("%s: %v", r.InputPath, r.Err)
			continue
		}
		totalNodes += r.Nodes
	}

	fmt.Printf("solved %s of %s puzzles, %s nodes visited\n",
		humanize.Comma(int64(len(results)-failures)), humanize.Comma(int64(len(results))),
		humanize.Comma(int64(totalNodes)))

	if failures > 0 {
		os.Exit(1)
	}
}
