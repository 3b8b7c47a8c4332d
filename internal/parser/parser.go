// Package parser is the library entry point for dispatch message parsing:
// message-level orchestration over segmentation and block interpretation,
// plus the form adapter. This package is storage-agnostic; callers hand the
// results to whatever run-creation collaborator they own.
package parser

import (
	"fmt"

	"schedule_parser/internal/interpret"
	"schedule_parser/internal/run"
	"schedule_parser/internal/segment"
)

// ParseScheduleMessage extracts every run described in a raw dispatch
// message. Failures are recovered at the narrowest scope: a malformed block
// contributes one error entry without discarding its siblings, and a short
// block contributes one warning. Success means at least one run came out,
// whatever else went wrong.
func ParseScheduleMessage(message string) run.ParseResult {
	result := run.ParseResult{}

	blocks, err := segment.Segment(message)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	for i, block := range blocks {
		if len(block) < interpret.MinBlockLines {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Block %d skipped: only %d lines (need at least %d)",
				i+1, len(block), interpret.MinBlockLines))
			continue
		}

		parsed := interpret.Block(block, i)
		if parsed == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to parse block %d", i+1))
			continue
		}
		result.Runs = append(result.Runs, parsed)
	}

	result.Success = len(result.Runs) > 0
	return result
}
