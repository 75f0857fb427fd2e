// Command obtreebench drives an obtree.Tree through insert/search/delete
// phases loaded from files and reports per-round timings as CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"

	"github.com/gophertree/obtree"
	"github.com/gophertree/obtree/internal/inputfile"
	"github.com/gophertree/obtree/internal/report"
)

func tracer() tracing.Trace { return tracing.Select("obtreebench") }

type config struct {
	m            int
	impl         string
	insertFile   string
	searchFile   string
	deleteFile   string
	rounds       int
	csvPath      string
	tag          string
	check        bool
	seed         int64
}

// roundEvent is broadcast on the caster after every completed round, so a
// live progress subscriber can report without touching the CSV writer.
type roundEvent struct {
	round   int
	total   int
	elapsed time.Duration
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, color.RedString("obtreebench: %v", err))
		return 1
	}

	backend, err := parseBackend(cfg.impl)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("obtreebench: %v", err))
		return 1
	}

	insertKeys, err := inputfile.Load(cfg.insertFile)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("obtreebench: %v", err))
		return 1
	}
	searchKeys, err := inputfile.Load(cfg.searchFile)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("obtreebench: %v", err))
		return 1
	}
	deleteKeys, err := inputfile.Load(cfg.deleteFile)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("obtreebench: %v", err))
		return 1
	}

	out := stdout
	csvGoesToFile := cfg.csvPath != "" && cfg.csvPath != "-"
	if csvGoesToFile {
		f, err := os.Create(cfg.csvPath)
		if err != nil {
			fmt.Fprintln(stderr, color.RedString("obtreebench: %v", err))
			return 1
		}
		defer f.Close()
		out = f
	}
	writer := report.New(out)

	cast := caster.New(nil)
	defer cast.Close()
	// Only turn on live progress when the CSV itself is going to a file
	// and stderr is a terminal; otherwise there's no safe place to print
	// it without corrupting a piped CSV stream or printing to nothing.
	live := csvGoesToFile && term.IsTerminal(int(stderr.Fd()))
	if live {
		subscribeProgress(cast, stderr, cfg.rounds)
	}

	for round := 1; round <= cfg.rounds; round++ {
		start := time.Now()
		row, err := runRound(cfg, backend, insertKeys, searchKeys, deleteKeys, round)
		if err != nil {
			fmt.Fprintln(stderr, color.RedString("obtreebench: round %d: %v", round, err))
			return 1
		}
		if err := writer.Write(row); err != nil {
			fmt.Fprintln(stderr, color.RedString("obtreebench: writing csv: %v", err))
			return 1
		}
		cast.Pub(roundEvent{round: round, total: cfg.rounds, elapsed: time.Since(start)})
		tracer().Debugf("round %d/%d complete in %s", round, cfg.rounds, time.Since(start))
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintln(stderr, color.RedString("obtreebench: flushing csv: %v", err))
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr *os.File) (config, error) {
	fs := flag.NewFlagSet("obtreebench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg config
	fs.IntVar(&cfg.m, "m", 0, "B+ tree order (required)")
	fs.StringVar(&cfg.impl, "impl", "", "node-store backend: array|linked|skiplist (required)")
	fs.StringVar(&cfg.insertFile, "insert", "", "file of keys to insert (required)")
	fs.StringVar(&cfg.searchFile, "search", "", "file of keys to search for (required)")
	fs.StringVar(&cfg.deleteFile, "delete", "", "file of keys to delete (required)")
	fs.IntVar(&cfg.rounds, "rounds", 3, "number of timed rounds")
	fs.StringVar(&cfg.csvPath, "csv", "", "CSV output path (default stdout)")
	fs.StringVar(&cfg.tag, "tag", "", "free-form tag recorded in every CSV row")
	fs.BoolVar(&cfg.check, "check", false, "run the structural invariant checker after each phase")
	fs.Int64Var(&cfg.seed, "seed", 1, "seed for the per-round insert-order shuffle")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.m == 0 {
		return config{}, fmt.Errorf("--m is required")
	}
	if cfg.impl == "" {
		return config{}, fmt.Errorf("--impl is required")
	}
	if cfg.insertFile == "" || cfg.searchFile == "" || cfg.deleteFile == "" {
		return config{}, fmt.Errorf("--insert, --search and --delete are all required")
	}
	if cfg.rounds < 1 {
		return config{}, fmt.Errorf("--rounds must be >= 1")
	}
	return cfg, nil
}

func parseBackend(impl string) (obtree.Backend, error) {
	switch impl {
	case "array":
		return obtree.BackendArray, nil
	case "linked":
		return obtree.BackendLinked, nil
	case "skiplist":
		return obtree.BackendSkipList, nil
	default:
		return 0, fmt.Errorf("unknown --impl %q (want array|linked|skiplist)", impl)
	}
}

func runRound(cfg config, backend obtree.Backend, insertKeys, searchKeys, deleteKeys []int32, round int) (report.Row, error) {
	tr := obtree.New(cfg.m, backend)
	defer tr.Close()

	// Insertion order affects tree shape (which affects timing), so each
	// round reshuffles the insert sequence from a seed derived from
	// --seed and the round number, keeping multi-round runs reproducible
	// while still exercising different orderings.
	rng := rand.New(rand.NewSource(cfg.seed + int64(round)))
	shuffled := append([]int32(nil), insertKeys...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	insertStart := time.Now()
	for _, k := range shuffled {
		tr.Insert(k)
	}
	insertNs := time.Since(insertStart).Nanoseconds()
	if cfg.check {
		if err := tr.Check(); err != nil {
			return report.Row{}, fmt.Errorf("invariant check after insert: %w", err)
		}
	}
	heightAfterInsert := tr.Height()

	searchStart := time.Now()
	found := 0
	for _, k := range searchKeys {
		if tr.Search(k) {
			found++
		}
	}
	searchNs := time.Since(searchStart).Nanoseconds()
	if cfg.check {
		if err := tr.Check(); err != nil {
			return report.Row{}, fmt.Errorf("invariant check after search: %w", err)
		}
	}

	deleteStart := time.Now()
	for _, k := range deleteKeys {
		tr.Delete(k)
	}
	deleteNs := time.Since(deleteStart).Nanoseconds()
	if cfg.check {
		if err := tr.Check(); err != nil {
			return report.Row{}, fmt.Errorf("invariant check after delete: %w", err)
		}
	}

	return report.Row{
		Tag:               cfg.tag,
		Impl:              cfg.impl,
		M:                 cfg.m,
		NInsert:           len(insertKeys),
		NSearch:           len(searchKeys),
		NDelete:           len(deleteKeys),
		Round:             round,
		InsertNs:          insertNs,
		SearchNs:          searchNs,
		DeleteNs:          deleteNs,
		FoundCount:        found,
		HeightAfterInsert: heightAfterInsert,
	}, nil
}

// subscribeProgress registers a caster subscriber that prints a colored
// one-line progress update per round to stderr.
func subscribeProgress(cast *caster.Caster, stderr *os.File, total int) {
	ch, ok := cast.Sub(context.Background(), 1)
	if !ok {
		return
	}
	green := color.New(color.FgGreen)
	go func() {
		for msg := range ch {
			ev, ok := msg.(roundEvent)
			if !ok {
				continue
			}
			green.Fprintf(stderr, "round %d/%d done in %s\n", ev.round, ev.total, ev.elapsed)
		}
	}()
}
