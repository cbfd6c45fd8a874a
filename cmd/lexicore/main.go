package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/japaniel/lexicore/pkg/catalog"
	"github.com/japaniel/lexicore/pkg/ranking"
	"github.com/japaniel/lexicore/pkg/script"
	"github.com/japaniel/lexicore/pkg/search"
)

// romajiReverseOutlierThreshold is the QA threshold: a distinct romaji
// query routed to reverse search this many times gets surfaced in the
// diagnostics snapshot.
const romajiReverseOutlierThreshold = 5

func main() {
	dbFlag := flag.String("db", "lexicore.db", "Path to the read-only dictionary artifact")
	queryFlag := flag.String("q", "", "Query to search")
	maxFlag := flag.Int("max", 20, "Maximum results to print")
	flag.Parse()

	if *queryFlag == "" {
		log.Fatal("Please provide -q <query>")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cat, err := catalog.Open(*dbFlag)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer cat.Close()

	cfg, err := ranking.DefaultConfiguration()
	if err != nil {
		log.Fatalf("Failed to load ranking configuration: %v", err)
	}

	lemma, err := ranking.NewLemmaResolver()
	if err != nil {
		log.Printf("Warning: lemma resolver unavailable, exact-match inflection scoring disabled: %v", err)
		lemma = nil
	}

	monitor := script.NewMonitor(romajiReverseOutlierThreshold, time.Now().Unix)
	svc := search.NewService(cat, cfg, lemma, monitor)

	results, err := svc.Search(ctx, *queryFlag, *maxFlag)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}

	for _, r := range results {
		fmt.Printf("%-12s %-12s %-6s %6.1f  %s\n", r.Entry.Headword, r.Entry.ReadingHiragana, r.Bucket, r.RelevanceScore, r.MatchType)
	}
}
