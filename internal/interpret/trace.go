// Package interpret provides trace support for debugging misparsed blocks.
package interpret

import (
	"fmt"

	"schedule_parser/internal/run"
	"schedule_parser/internal/segment"
)

// Trace records how a block was interpreted: which classification rule
// fired, whether cancellation was detected, and what each extractor yielded.
type Trace struct {
	BlockIndex int               `json:"block_index"`
	LineCount  int               `json:"line_count"`
	Skipped    bool              `json:"skipped,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	Rule       string            `json:"rule,omitempty"`
	Cancelled  bool              `json:"cancelled,omitempty"`
	Extractors map[string]string `json:"extractors,omitempty"`
	Matched    bool              `json:"matched"`
}

// BlockWithTrace interprets a block like Block while recording a trace of
// the decisions taken. The trace is returned even when interpretation fails.
func BlockWithTrace(lines segment.Block, blockIndex int) (parsed *run.ParsedRun, trace *Trace) {
	trace = &Trace{
		BlockIndex: blockIndex,
		LineCount:  len(lines),
	}
	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			trace = trace.skipped(fmt.Sprintf("recovered from %v", r))
		}
	}()

	parsed, trace = interpret(lines, blockIndex, trace)
	return parsed, trace
}

// skipped marks the trace as a skipped block. Safe on a nil trace.
func (t *Trace) skipped(reason string) *Trace {
	if t == nil {
		return nil
	}
	t.Skipped = true
	t.Reason = reason
	return t
}

// record fills in the outcome of a successful interpretation. Safe on a nil trace.
func (t *Trace) record(rule string, cancelled bool, parsed *run.ParsedRun, extractors map[string]string) *Trace {
	if t == nil {
		return nil
	}
	t.Rule = rule
	t.Cancelled = cancelled
	t.Extractors = extractors
	t.Matched = parsed != nil
	return t
}
