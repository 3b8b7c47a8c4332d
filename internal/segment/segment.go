// Package segment splits a raw dispatch message into per-run line blocks.
package segment

import (
	"errors"
	"strings"

	"schedule_parser/internal/patterns"
)

// Block is an ordered group of lines presumed to describe exactly one run.
type Block []string

// Terminal input errors. These are the only failures segmentation reports;
// everything past this point is handled per block by the interpreter.
var (
	ErrEmptyMessage = errors.New("Empty message provided")
	ErrNoLines      = errors.New("No valid lines found in message")
)

// Lines splits a message on newlines, trims each line, and drops empties.
// Line order is the only structural signal the message carries, so it is
// preserved exactly.
func Lines(message string) []string {
	var lines []string
	for _, l := range strings.Split(message, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Segment groups the message's lines into run-candidate blocks.
//
// A line opens a new block when it is a vehicle-class marker line or a bare
// ASAP sentinel AND the current block already holds at least one line; the
// very first line never closes anything. All other lines append to the open
// block, and the trailing block is flushed at end of input, so every line
// lands in exactly one block.
//
// This is positional, not grammatical: a vehicle keyword appearing mid-block
// (say, inside a notes line) will split the block. The interpreter's minimum
// line count downgrades that to a warning.
func Segment(message string) ([]Block, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	lines := Lines(message)
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	var blocks []Block
	var current Block
	for _, line := range lines {
		if patterns.IsNewRunLine(line) && len(current) > 0 {
			blocks = append(blocks, current)
			current = Block{line}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks, nil
}
