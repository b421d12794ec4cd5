package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"digest-recovery/internal/analyze"
	"digest-recovery/internal/crack"
	"digest-recovery/internal/status"
)

// patternTopWords caps how many learned words the pattern-guided
// strategy combines.
const patternTopWords = 200

func main() {
	targetsFile := flag.StringP("passwords", "p", "passwords.txt", "digest list file: one 'identifier digest-hex' per line")
	dictFile := flag.StringP("dictionary", "d", "dictionary.txt", "dictionary file: one term per line")
	cacheFile := flag.StringP("cache", "c", defaultCachePath(), "text result cache file")
	cacheDB := flag.String("cache-db", "", "SQLite result database (replaces the text cache)")
	algName := flag.StringP("algorithm", "a", "sha1", "digest algorithm: "+strings.Join(crack.AlgorithmNames(), ", "))
	workers := flag.IntP("workers", "w", 1, "parallel matching workers per strategy")
	statusAddr := flag.String("status-addr", "", "serve GET /status on this address while running")
	seed := flag.Int64("seed", 0, "RNG seed for sampling strategies (0 = time-based)")

	try4Digit := flag.Bool("try-4-digit", true, "try all 4-digit numbers")
	try6Digit := flag.Bool("try-6-digit", true, "try all 6-digit numbers")
	tryDates := flag.Bool("try-dates", true, "try date-like YYYYMMDD strings")
	dateFrom := flag.Int("date-from", 2000, "first year for date-like candidates")
	dateTo := flag.Int("date-to", 2025, "last year for date-like candidates")
	suffixDigits := flag.Int("suffix-digits", 2, "max digit-suffix width after a word (0 disables)")
	prefixDigits := flag.Int("prefix-digits", 2, "max digit-prefix width before a word (0 disables)")
	betweenDigits := flag.Int("between-digits", 2, "max digit width between word pairs (0 disables)")
	twoPool := flag.Int("two-word-pool", 6000, "shortest words used for 2-word combos")
	threePool := flag.Int("three-word-pool", 3000, "shortest words used for 3-word combos")
	fourPool := flag.Int("four-word-pool", 1000, "shortest words used for 4-word no-repeat combos")
	betweenPool := flag.Int("between-pool", 500, "shortest words used for digits-between combos")
	separators := flag.StringSlice("separators", []string{"", "-", "_", "."}, "separators for joined-word strategies")
	sampleBudget := flag.Uint64("sample-budget", 0, "candidates for the final weighted random sampling (0 disables)")
	progressEvery := flag.Uint64("progress-every", 1_000_000, "log progress every N attempts")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	alg, err := crack.LookupAlgorithm(*algName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid algorithm")
	}

	targets, err := crack.LoadTargets(*targetsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load digest list")
	}
	words, err := crack.LoadDictionary(*dictFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	var store crack.Store = crack.NewTextStore(*cacheFile)
	if *cacheDB != "" {
		sqlStore, err := crack.OpenSQLStore(*cacheDB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open result database")
		}
		store = sqlStore
	}
	defer store.Close()

	cached, err := store.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load result cache")
	}

	log.Info().
		Int("identifiers", targets.Owners()).
		Int("unique_digests", targets.Len()).
		Int("dictionary_words", len(words)).
		Int("cached", len(cached)).
		Str("algorithm", alg.Name()).
		Msg("loaded inputs")

	engine := crack.NewEngine(alg, targets, cached)
	engine.ProgressEvery = *progressEvery
	engine.OnMatch = func(ids []string, plaintext string) {
		log.Info().Strs("identifiers", ids).Str("plaintext", plaintext).Msg("recovered")
	}
	engine.Progress = func(attempts uint64, found, total int) {
		log.Info().Uint64("attempts", attempts).Int("found", found).Int("total", total).Msg("progress")
	}

	if engine.Remaining() < targets.Len() {
		log.Info().Int("from_cache", targets.Len()-engine.Remaining()).Msg("pre-resolved from cache")
	}

	sampleSeed := *seed
	if sampleSeed == 0 {
		sampleSeed = time.Now().UnixNano()
	}

	orch := crack.NewOrchestrator(engine)
	orch.Workers = *workers
	orch.Progress = func(msg string) { log.Info().Msg(msg) }

	runID := uuid.New().String()
	started := time.Now()

	var statusServer *http.Server
	if *statusAddr != "" {
		statusServer = status.NewServer(*statusAddr, func() status.Snapshot {
			return status.Snapshot{
				RunID:     runID,
				Algorithm: alg.Name(),
				State:     orch.State().String(),
				Strategy:  orch.Current(),
				Attempts:  engine.Attempts(),
				Found:     targets.Len() - engine.Remaining(),
				Remaining: engine.Remaining(),
				Elapsed:   time.Since(started).Round(time.Second).String(),
			}
		})
		go func() {
			if err := statusServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn().Err(err).Msg("status server stopped")
			}
		}()
		log.Info().Str("addr", *statusAddr).Str("run_id", runID).Msg("serving status")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	strategies := buildStrategies(strategyParams{
		words:         words,
		separators:    *separators,
		try4Digit:     *try4Digit,
		try6Digit:     *try6Digit,
		tryDates:      *tryDates,
		dateFrom:      *dateFrom,
		dateTo:        *dateTo,
		suffixDigits:  *suffixDigits,
		prefixDigits:  *prefixDigits,
		betweenDigits: *betweenDigits,
		twoPool:       *twoPool,
		threePool:     *threePool,
		fourPool:      *fourPool,
		betweenPool:   *betweenPool,
		sampleBudget:  *sampleBudget,
		sampleSeed:    sampleSeed,
		learned:       func() map[string]string { return engine.Found() },
	})

	state, runErr := orch.Run(ctx, strategies)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error().Err(runErr).Msg("run failed")
	}
	if errors.Is(runErr, context.Canceled) {
		log.Warn().Msg("interrupted; persisting what was recovered so far")
	}

	if statusServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
		statusServer.Shutdown(shutdownCtx)
		shutdownCancel()
	}

	found := engine.Found()
	if err := store.Save(found); err != nil {
		log.Error().Err(err).Msg("failed to persist result cache")
	} else {
		log.Info().
			Int("new_entries", countMissing(found, cached)).
			Int("total_cached", len(found)+countMissing(cached, found)).
			Msg("result cache updated")
	}

	if sqlStore, ok := store.(*crack.SQLStore); ok {
		if _, err := sqlStore.RecordRun(runID, alg.Name(), engine.Attempts(), len(found), started, time.Now()); err != nil {
			log.Warn().Err(err).Msg("failed to record run")
		}
	}

	printSummary(targets, found)

	log.Info().
		Stringer("state", state).
		Uint64("attempts", engine.Attempts()).
		Int("recovered", len(found)).
		Int("unresolved", engine.Remaining()).
		Dur("elapsed", time.Since(started)).
		Msg("finished")

	if runErr != nil {
		os.Exit(1)
	}
}

// countMissing counts keys of a absent from b.
func countMissing(a, b map[string]string) int {
	n := 0
	for d := range a {
		if _, ok := b[d]; !ok {
			n++
		}
	}
	return n
}

func defaultCachePath() string {
	if p := os.Getenv("CRACK_CACHE"); p != "" {
		return p
	}
	return "cracked_cache.txt"
}

type strategyParams struct {
	words         []string
	separators    []string
	try4Digit     bool
	try6Digit     bool
	tryDates      bool
	dateFrom      int
	dateTo        int
	suffixDigits  int
	prefixDigits  int
	betweenDigits int
	twoPool       int
	threePool     int
	fourPool      int
	betweenPool   int
	sampleBudget  uint64
	sampleSeed    int64

	// learned exposes everything recovered so far (cache plus current
	// run) to the pattern-guided and sampling strategies at build time.
	learned func() map[string]string
}

// buildStrategies assembles the ordered attack plan: cheap numeric
// sweeps, the dictionary itself, digit affixes, mutations, multi-word
// products, then learned-pattern search and weighted sampling as the
// long-tail closers. Pool sorting happens inside Build so a run that
// resolves early never pays for it.
func buildStrategies(p strategyParams) []crack.Strategy {
	var strategies []crack.Strategy
	add := func(name string, build func() crack.Generator) {
		strategies = append(strategies, crack.Strategy{Name: name, Build: build})
	}

	if p.try4Digit {
		add("digits-4", func() crack.Generator { return crack.NewDigits(4) })
	}
	if p.try6Digit {
		add("digits-6", func() crack.Generator { return crack.NewDigits(6) })
	}
	if p.tryDates {
		add("dates", func() crack.Generator { return crack.NewDates(p.dateFrom, p.dateTo) })
	}

	add("words", func() crack.Generator { return crack.NewWords(p.words) })
	if p.suffixDigits > 0 {
		add("word+digits", func() crack.Generator { return crack.NewWordDigits(p.words, p.suffixDigits) })
	}
	if p.prefixDigits > 0 {
		add("digits+word", func() crack.Generator { return crack.NewDigitsWord(p.words, p.prefixDigits) })
	}

	add("reversed", func() crack.Generator { return crack.NewReversed(p.words) })
	add("reversed-pairs", func() crack.Generator {
		return crack.NewReversedPairs(crack.ShortestN(p.words, p.fourPool))
	})
	add("case-join-2w", func() crack.Generator {
		return crack.NewCaseJoin(crack.ShortestN(p.words, p.fourPool), 2)
	})
	add("prefix4-2w", func() crack.Generator { return crack.NewPrefixes(p.words, 4, 2) })

	add("join-2w", func() crack.Generator {
		return crack.NewJoin(crack.ShortestN(p.words, p.twoPool), 2, p.separators)
	})
	if p.betweenDigits > 0 {
		add("digits-between-2w", func() crack.Generator {
			return crack.NewDigitsBetween(crack.ShortestN(p.words, p.betweenPool), 2, p.betweenDigits)
		})
	}
	add("join-3w", func() crack.Generator {
		return crack.NewJoin(crack.ShortestN(p.words, p.threePool), 3, nil)
	})
	add("no-repeat-4w", func() crack.Generator {
		return crack.NewNoRepeat(crack.ShortestN(p.words, p.fourPool), 4)
	})

	add("pattern-guided", func() crack.Generator {
		stats := analyze.Plaintexts(p.learned(), p.words)
		n := stats.CommonWordCount()
		if n < 2 {
			return crack.NewWords(nil)
		}
		return crack.NewJoin(stats.TopWords(patternTopWords), n, nil)
	})

	if p.sampleBudget > 0 {
		add("random-sample", func() crack.Generator {
			stats := analyze.Plaintexts(p.learned(), p.words)
			return crack.NewSample(p.words, crack.SampleConfig{
				Budget:     p.sampleBudget,
				Seed:       p.sampleSeed,
				Separators: p.separators,
				Weights:    stats.Weights(p.words),
				Digits:     true,
				Cases:      true,
			})
		})
	}

	return strategies
}

// printSummary writes the per-identifier resolution to stdout,
// identifiers in numeric order when they parse as numbers.
func printSummary(targets *crack.TargetSet, found map[string]string) {
	ids := targets.IDs()
	sort.Slice(ids, func(i, j int) bool {
		ni, erri := strconv.Atoi(ids[i])
		nj, errj := strconv.Atoi(ids[j])
		if erri == nil && errj == nil {
			return ni < nj
		}
		return ids[i] < ids[j]
	})

	fmt.Println()
	fmt.Println("=== Recovery summary ===")
	unresolved := 0
	for _, id := range ids {
		digest, _ := targets.Digest(id)
		if plain, ok := found[digest]; ok {
			fmt.Printf("%s: %s\n", id, plain)
		} else {
			fmt.Printf("%s: <NOT RECOVERED>\n", id)
			unresolved++
		}
	}
	fmt.Printf("\nRecovered %d/%d identifiers\n", len(ids)-unresolved, len(ids))
}
