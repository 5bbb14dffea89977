package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"

	"github.com/kagechess/movecore/internal/board"
	"github.com/kagechess/movecore/internal/cache"
)

var (
	fen        = flag.String("fen", board.StartFEN, "FEN of the position to search")
	depth      = flag.Int("depth", 5, "perft depth")
	divide     = flag.Bool("divide", false, "print a per-move breakdown of the depth-1 subtree counts")
	useCache   = flag.Bool("cache", false, "memoize node counts in a BadgerDB cache keyed by FEN and depth")
	cacheDir   = flag.String("cachedir", "", "cache directory (default: platform data dir)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	pos, err := board.FromFEN(*fen, board.DefaultZobristTable)
	if err != nil {
		log.Fatalf("invalid FEN %q: %v", *fen, err)
	}

	var perftCache *cache.PerftCache
	if *useCache {
		perftCache, err = cache.Open(*cacheDir)
		if err != nil {
			log.Fatalf("opening perft cache: %v", err)
		}
		defer perftCache.Close()
	}

	if *divide {
		runDivide(pos)
		return
	}

	nodes, err := runPerft(pos, perftCache)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}
	fmt.Printf("%d\n", nodes)
}

func runPerft(pos *board.Position, perftCache *cache.PerftCache) (int64, error) {
	canonicalFEN := pos.ToFEN()

	if perftCache != nil {
		if nodes, ok, err := perftCache.Get(canonicalFEN, *depth); err != nil {
			return 0, err
		} else if ok {
			log.Printf("cache hit for depth %d", *depth)
			return nodes, nil
		}
	}

	nodes := board.Perft(pos, *depth, board.DefaultZobristTable)

	if perftCache != nil {
		if err := perftCache.Put(canonicalFEN, *depth, nodes); err != nil {
			return 0, err
		}
	}

	return nodes, nil
}

func runDivide(pos *board.Position) {
	results := board.PerftDivide(pos, *depth, board.DefaultZobristTable)

	moves := make([]string, 0, len(results))
	for m := range results {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total int64
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, results[m])
		total += results[m]
	}
	fmt.Printf("\nmoves: %d\ntotal: %d\n", len(moves), total)
}
