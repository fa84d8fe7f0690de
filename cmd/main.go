package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Danera1903/dna-sequence-converter/internal/analysis"
	"github.com/Danera1903/dna-sequence-converter/internal/config"
	"github.com/Danera1903/dna-sequence-converter/internal/fasta"

	"github.com/charmbracelet/log"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	total := n
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			break
		}
		ts := time.Now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return total, err
		}
	}
	return total, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries that
// inspect the file descriptor (for TTY detection) can work with wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

func main() {
	// CLI flags
	inputFlag := flag.String("in", "", "input file path (FASTA or raw sequence); '-' reads stdin")
	seqFlag := flag.String("seq", "", "analyze this sequence directly instead of reading a file")
	outputFlag := flag.String("out", "analysis.json", "output JSON file path; '-' writes stdout")
	configFlag := flag.String("config", "", "path to config.json (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose (debug) logging")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("dna-sequence-converter", version)
		return
	}

	// load config (optional file)
	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad config file:", err)
		os.Exit(1)
	}

	// merge CLI flags into config (flags override config when provided)
	if *inputFlag != "" {
		cfg.InputFile = *inputFlag
	}
	if *outputFlag != "" {
		cfg.OutputJSON = *outputFlag
	}

	// configure logger output
	var loggerOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if f, ferr := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); ferr == nil {
			// write to both stderr and file so running interactively still shows logs
			loggerOut = io.MultiWriter(os.Stderr, f)
			defer func() { _ = f.Close() }()
		}
	}
	tw := &timestampWriter{w: loggerOut}
	termW := &terminalWriter{w: tw, fd: os.Stderr.Fd()}
	logger := log.New(termW)

	// apply log level from flags/config (flags override config)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(cfg.LogLevel) {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "info", "":
			logger.SetLevel(log.InfoLevel)
		case "warn", "warning":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
			logger.Warn("unknown log_level in config.json, defaulting to info", "provided", cfg.LogLevel)
		}
	}

	logger.Debug("loaded config", "input_file", cfg.InputFile, "output_json", cfg.OutputJSON, "log_file", cfg.LogFile, "log_level", cfg.LogLevel)

	// collect raw input: inline sequence, file, or stdin
	var content string
	switch {
	case *seqFlag != "":
		content = *seqFlag
	case cfg.InputFile == "" || cfg.InputFile == "-":
		data, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			logger.Fatal("failed to read stdin", "err", rerr)
		}
		content = string(data)
	default:
		data, rerr := os.ReadFile(cfg.InputFile)
		if rerr != nil {
			logger.Fatal("failed to read input file", "path", cfg.InputFile, "err", rerr)
		}
		content = string(data)
	}

	var results []analysis.RecordResult
	if fasta.IsFasta(content) {
		results = analysis.AnalyzeFasta(strings.NewReader(content))
		logger.Info("analyzed fasta input", "records", len(results))
	} else {
		res, aerr := analysis.Analyze(content)
		if aerr != nil {
			logger.Fatal("nothing to analyze", "err", aerr)
		}
		results = []analysis.RecordResult{{ID: fasta.UnnamedID, Result: *res}}
		logger.Info("analyzed raw sequence", "length", len(res.Sequence), "gc_percent", res.GCPercent)
	}
	if len(results) == 0 {
		logger.Fatal("no records with usable sequence data in input")
	}

	for _, r := range results {
		logger.Debug("record", "id", r.ID, "bases", len(r.Sequence), "protein_status", r.ProteinStatus, "stop_codons", len(r.StopCodons))
	}

	jsonData, merr := json.MarshalIndent(results, "", "  ")
	if merr != nil {
		logger.Fatal("json marshal failed", "err", merr)
	}

	if cfg.OutputJSON == "-" {
		fmt.Println(string(jsonData))
		return
	}
	if werr := os.WriteFile(cfg.OutputJSON, jsonData, 0o644); werr != nil {
		logger.Fatal("failed to write output JSON", "path", cfg.OutputJSON, "err", werr)
	}
	logger.Info("wrote output JSON", "path", cfg.OutputJSON, "records", len(results))
}
