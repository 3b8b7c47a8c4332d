// Command-line entry point for the dispatch schedule-message parser.
//
// Reads a copy-pasted dispatch message (file or stdin), extracts the run
// records it describes, and prints the parse result as JSON. Intended for
// debugging message formats the dashboard mis-parses; the dashboard itself
// calls the library directly.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"schedule_parser/internal/interpret"
	"schedule_parser/internal/parser"
	"schedule_parser/internal/run"
	"schedule_parser/internal/segment"
)

// output is the JSON document emitted by the parse command.
type output struct {
	Result run.ParseResult  `json:"result"`
	Forms  []run.FormRecord `json:"forms,omitempty"`
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "schedule_parser - commands:")
	fmt.Fprintln(w, "  parse  - parse a dispatch message and output JSON")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  schedule_parser parse [-input message.txt] [-output out.json] [-pretty]")
	fmt.Fprintln(w, "                        [-form] [-date YYYY-MM-DD] [-trace] [-stats]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - Input is the raw message text, not JSON (default: stdin).")
	fmt.Fprintln(w, "  - -form also emits add-run form records; -date sets their base date.")
	fmt.Fprintln(w, "")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "parse":
		runParse(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

func runParse(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	inPath := fs.String("input", "", "Input message file (default: stdin)")
	outPath := fs.String("output", "", "Output JSON file (default: stdout)")
	pretty := fs.Bool("pretty", false, "Pretty-print JSON output")
	emitForms := fs.Bool("form", false, "Also emit add-run form records")
	baseDate := fs.String("date", "", "Base date (YYYY-MM-DD) for form records (default: today)")
	trace := fs.Bool("trace", false, "Print per-block interpretation traces to stderr")
	showStats := fs.Bool("stats", false, "Print basic counters to stderr")
	_ = fs.Parse(args)

	var r io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(1)
	}
	message := string(raw)

	if *trace {
		printTraces(message)
	}

	out := output{Result: parser.ParseScheduleMessage(message)}
	if *emitForms {
		for _, parsed := range out.Result.Runs {
			out.Forms = append(out.Forms, parser.ConvertParsedRunToForm(parsed, *baseDate))
		}
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}

	if *showStats {
		fmt.Fprintf(os.Stderr, "runs=%d errors=%d warnings=%d success=%v\n",
			len(out.Result.Runs), len(out.Result.Errors), len(out.Result.Warnings), out.Result.Success)
	}
}

// printTraces re-segments the message and dumps a trace per block. Traces go
// to stderr so the JSON on stdout stays machine-readable.
func printTraces(message string) {
	blocks, err := segment.Segment(message)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace: %v\n", err)
		return
	}
	for i, block := range blocks {
		_, tr := interpret.BlockWithTrace(block, i)
		b, err := json.Marshal(tr)
		if err != nil {
			continue
		}
		fmt.Fprintf(os.Stderr, "trace: block %d: %s\n", i+1, b)
	}
}
