package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Wall-clock budget; no new game starts after it runs out.")
	games := flag.Int("games", 200, "The number of games to play.")
	frames := flag.Int("frames", 50000, "The maximum number of frames per game.")
	seed := flag.Uint64("seed", 1, "Seed for the piece queues and the bot.")
	configPath := flag.String("config", "", "Path to a YAML rules file.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	log.Println("Starting soak run...")

	report := &Report{
		Duration:       *duration,
		Games:          *games,
		FramesPerGame:  *frames,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	run(cfg, report)

	runtime.ReadMemStats(&report.MemStatsEnd)
	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.Passed() {
		os.Exit(1)
	}
}
