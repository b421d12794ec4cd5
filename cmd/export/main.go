package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"digest-recovery/internal/analyze"
	"digest-recovery/internal/crack"
)

// Share of the total candidate budget each sampling strategy gets.
// Weighted word sampling carries most of the file; the mixed-length,
// edge-case and variation streams cover the shapes it underweights.
const (
	shareWeighted  = 70
	shareMixed     = 15
	shareEdge      = 10
	shareVariation = 5
)

const barRefreshEvery = 100_000

func main() {
	dictFile := flag.StringP("dictionary", "d", "dictionary.txt", "dictionary file: one term per line")
	cacheFile := flag.StringP("cache", "c", "cracked_cache.txt", "result cache used to weight word sampling")
	outFile := flag.StringP("output", "o", "candidates.txt", "output wordlist file")
	count := flag.Uint64P("count", "n", 100_000_000, "total candidates to generate")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	hashRate := flag.Float64("hash-rate", 10_000_000_000, "external tool's hashes per second, for the time estimate")
	separators := flag.StringSlice("separators", []string{"", "-", "_", "."}, "separators for the variation stream")
	dedupe := flag.Bool("dedupe", true, "drop duplicate candidates across all streams")
	yes := flag.BoolP("yes", "y", false, "skip the confirmation prompt")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	words, err := crack.LoadDictionary(*dictFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	if len(words) == 0 {
		log.Fatal().Str("file", *dictFile).Msg("dictionary is empty")
	}

	recovered, err := crack.LoadCache(*cacheFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load result cache")
	}
	stats := analyze.Plaintexts(recovered, words)

	log.Info().
		Int("dictionary_words", len(words)).
		Int("recovered_analyzed", stats.Analyzed).
		Msg("loaded inputs")

	sampleSeed := *seed
	if sampleSeed == 0 {
		sampleSeed = time.Now().UnixNano()
	}

	buckets := crack.BucketByLength(words)
	gens := buildStreams(words, buckets, stats, *count, sampleSeed, *separators)

	avgLen := averageCandidateLength(words)
	fmt.Printf("Candidates:     %d\n", *count)
	fmt.Printf("Estimated size: %s\n", crack.FormatBytes(crack.EstimateFileSize(*count, avgLen)))
	fmt.Printf("Estimated hash time at %.0f H/s: %s\n", *hashRate, crack.EstimateHashTime(*count, *hashRate).Round(time.Second))
	fmt.Printf("Output:         %s\n", *outFile)

	if !*yes && !confirm() {
		log.Info().Msg("aborted")
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	f, err := os.Create(*outFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create output file")
	}
	defer f.Close()

	var seen *crack.ShardedSeen
	if *dedupe {
		seen = crack.NewShardedSeen()
	}

	bar := pb.Start64(int64(*count))
	defer bar.Finish()

	var total uint64
	for _, gen := range gens {
		written, err := crack.Export(ctx, gen, f, crack.ExportOptions{
			Dedupe:        *dedupe,
			Seen:          seen,
			ProgressEvery: barRefreshEvery,
			Progress: func(written uint64) {
				bar.SetCurrent(int64(total + written))
			},
		})
		total += written
		if err != nil {
			bar.Finish()
			if errors.Is(err, context.Canceled) {
				log.Warn().Uint64("written", total).Msg("interrupted; partial wordlist kept")
				return
			}
			log.Fatal().Err(err).Str("stream", gen.Name()).Msg("export failed")
		}
	}
	bar.SetCurrent(int64(total))
	bar.Finish()

	if err := f.Sync(); err != nil {
		log.Warn().Err(err).Msg("failed to sync output file")
	}
	log.Info().Uint64("written", total).Str("file", *outFile).Msg("wordlist complete")
}

// buildStreams splits the budget across the four sampling strategies.
// The weighted stream absorbs any rounding remainder so the shares
// always sum to count.
func buildStreams(words []string, buckets crack.LengthBuckets, stats *analyze.Stats, count uint64, seed int64, seps []string) []crack.Generator {
	mixed := count * shareMixed / 100
	edge := count * shareEdge / 100
	variation := count * shareVariation / 100
	weighted := count - mixed - edge - variation

	return []crack.Generator{
		crack.NewSample(words, crack.SampleConfig{
			Budget:  weighted,
			Seed:    seed,
			Weights: stats.Weights(words),
		}),
		crack.NewMixedSample(buckets, mixed, seed+1),
		crack.NewEdgeSample(words, buckets, edge, seed+2),
		crack.NewSample(words, crack.SampleConfig{
			Budget:     variation,
			Seed:       seed + 3,
			Separators: seps,
			Weights:    stats.Weights(words),
			Digits:     true,
			Cases:      true,
		}),
	}
}

// averageCandidateLength estimates output line length as three average
// dictionary words, which tracks the 2/3/4-word count mix closely
// enough for a size estimate.
func averageCandidateLength(words []string) int {
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return 3 * total / len(words)
}

func confirm() bool {
	fmt.Print("Proceed? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
