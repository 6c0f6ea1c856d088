package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rgerjeki/Customer-Feedback-Insights/engine"
	"github.com/rgerjeki/Customer-Feedback-Insights/export"
	"github.com/rgerjeki/Customer-Feedback-Insights/session"
)

// ============================================================================
// FEEDBACK-INSIGHTS CLI — load a feedback CSV, filter, report, export
// ============================================================================

const version = "0.1.0"

func main() {
	filePath := flag.String("file", "", "Path to feedback CSV file")
	sample := flag.String("sample", "", "Bundled sample dataset name (see --list-samples)")
	listSamples := flag.Bool("list-samples", false, "List bundled sample datasets and exit")

	products := flag.String("products", "", "Comma-separated product filter (empty = all)")
	from := flag.String("from", "", "Start date, inclusive (YYYY-MM-DD)")
	to := flag.String("to", "", "End date, inclusive (YYYY-MM-DD)")
	threshold := flag.Float64("threshold", 3, "Negative rating threshold (rating <= threshold)")
	keyword := flag.String("keyword", "", "Keyword filter for negative comments (case-insensitive)")
	sortMode := flag.String("sort", string(engine.SortMostRecent),
		"Negative-comment sort: most_recent, lowest_rating, longest_comment, highest_rating")

	format := flag.String("format", "text", "Output format: text, json, pretty")
	outFile := flag.String("out", "", "Write report to file instead of stdout")
	exportNegative := flag.Bool("export-negative", false, "Write the negative slice export next to the report")
	exportFull := flag.Bool("export-full", false, "Write the full filtered slice export next to the report")
	exportFormat := flag.String("export-format", export.FormatCSV, "Export format: csv, xlsx")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `feedback-insights — customer feedback KPIs, trends, and negative insights

Usage:
  feedback-insights --file feedback.csv
  feedback-insights --file feedback.csv --products "Widget Pro" --from 2024-01-01 --to 2024-03-31
  feedback-insights --sample sample_feedback_widgets --threshold 2 --keyword shipping
  feedback-insights --file feedback.csv --export-negative --export-full --export-format xlsx

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("feedback-insights %s\n", version)
		os.Exit(0)
	}

	if *listSamples {
		for _, name := range session.Samples() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if *filePath == "" && *sample == "" {
		fmt.Fprintln(os.Stderr, "Error: either --file or --sample is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(*verbose)
	defer logger.Sync()

	// ── Load ──────────────────────────────────────────────────────────────
	sess := session.New(logger)

	var loaded int
	var err error
	if *filePath != "" {
		data, readErr := os.ReadFile(*filePath)
		if readErr != nil {
			fatalf("Failed to read file: %v", readErr)
		}
		loaded, err = sess.Load(*filePath, data)
	} else {
		loaded, err = sess.LoadSample(*sample)
	}
	if err != nil {
		fatalf("Load failed: %v", err)
	}

	// ── Filter spec ───────────────────────────────────────────────────────
	spec := engine.FilterSpec{
		NegThreshold: *threshold,
		Keyword:      *keyword,
		SortMode:     engine.SortMode(*sortMode),
	}
	if *products != "" {
		for _, p := range strings.Split(*products, ",") {
			if p = strings.TrimSpace(p); p != "" {
				spec.Products = append(spec.Products, p)
			}
		}
	}
	if *from != "" || *to != "" {
		spec.Dates = parseRange(*from, *to, sess)
	}

	snap, err := sess.Render(spec)
	if err != nil {
		fatalf("Render failed: %v", err)
	}

	// ── Report ────────────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	switch *format {
	case "json", "pretty":
		writeJSON(writer, snap, *format)
	default:
		writeText(writer, loaded, snap)
	}

	// ── Exports ───────────────────────────────────────────────────────────
	if *exportNegative {
		file, err := sess.ExportNegative(spec, *exportFormat)
		if err != nil {
			fatalf("Negative export failed: %v", err)
		}
		writeExport(file)
	}
	if *exportFull {
		file, err := sess.ExportFull(spec, *exportFormat)
		if err != nil {
			fatalf("Full export failed: %v", err)
		}
		writeExport(file)
	}
}

// parseRange builds a date range from the flags, substituting the dataset
// bounds for a missing side.
func parseRange(from, to string, sess *session.Session) *engine.DateRange {
	min, max, _ := sess.DateBounds()

	start := min
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			fatalf("Invalid --from date %q (want YYYY-MM-DD)", from)
		}
		start = t
	}
	end := max
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			fatalf("Invalid --to date %q (want YYYY-MM-DD)", to)
		}
		end = t
	}
	return &engine.DateRange{Start: start, End: end}
}

// ============================================================================
// OUTPUT
// ============================================================================

func writeText(w *os.File, loaded int, snap *engine.Snapshot) {
	fmt.Fprintf(w, "Loaded %s rows.\n\n", engine.FormatInt(loaded))

	fmt.Fprintf(w, "Total Tickets:  %s\n", engine.FormatInt(snap.KPI.Total))
	fmt.Fprintf(w, "Average Rating: %.2f\n\n", snap.KPI.AvgRating)

	fmt.Fprintln(w, "Trend")
	if len(snap.Trend) == 0 {
		fmt.Fprintln(w, "  no data for the selected filters")
	}
	for _, p := range snap.Trend {
		fmt.Fprintf(w, "  %-9s volume=%-5d avg=%.2f\n", engine.FormatMonth(p.Month), p.Volume, p.AvgRating)
	}

	fmt.Fprintln(w, "\nSegments by Product")
	for _, s := range snap.Segments {
		fmt.Fprintf(w, "  %-20s tickets=%-5d avg=%.2f\n", s.Product, s.Tickets, s.AvgRating)
	}

	fmt.Fprintf(w, "\nNegative Comments (rating <= %v): %d\n", snap.Spec.NegThreshold, len(snap.Negative))
	if !snap.HasKeywords() {
		fmt.Fprintln(w, "  no meaningful keywords extracted")
		return
	}
	fmt.Fprintln(w, "\nTop Keywords (mentions / avg rating)")
	for _, k := range snap.Keywords {
		fmt.Fprintf(w, "  %-15s %4d  %.2f\n", k.Keyword, k.Mentions, k.AvgRating)
	}
}

func writeJSON(w *os.File, v interface{}, format string) {
	enc := json.NewEncoder(w)
	if format == "pretty" {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		fatalf("Failed to encode JSON: %v", err)
	}
}

func writeExport(file export.File) {
	if err := os.WriteFile(file.Name, file.Data, 0o644); err != nil {
		fatalf("Failed to write %s: %v", file.Name, err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", file.Name, len(file.Data))
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fatalf("Failed to build logger: %v", err)
	}
	return logger
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
