package segment

import (
	"errors"
	"reflect"
	"testing"
)

const twoRunMessage = `101*2 SUV
11:00 AM
AA123
JAC

2 adults
Teton Village Hotel
2
$85
102 SEDAN
5:30 PM
UA2457
SLC
1 adult
Hotel Terra
1
$120`

func TestLines(t *testing.T) {
	got := Lines("  first \n\n second\n\t\nthird  ")
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}

	if got := Lines(""); got != nil {
		t.Errorf("Lines(\"\") = %v, want nil", got)
	}
}

func TestSegment_EmptyMessage(t *testing.T) {
	for _, message := range []string{"", "   ", "\n\n\t\n"} {
		blocks, err := Segment(message)
		if !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("Segment(%q) err = %v, want ErrEmptyMessage", message, err)
		}
		if blocks != nil {
			t.Errorf("Segment(%q) blocks = %v, want nil", message, blocks)
		}
	}
}

func TestSegment_SingleBlock(t *testing.T) {
	// One run, no later boundary marker: the trailing block must be flushed.
	blocks, err := Segment("101*2 SUV\n11:00 AM\nAA123\nJAC\n2 adults\nTeton Village Hotel")
	if err != nil {
		t.Fatalf("Segment() err = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if len(blocks[0]) != 6 {
		t.Errorf("expected 6 lines in block, got %d", len(blocks[0]))
	}
	if blocks[0][0] != "101*2 SUV" {
		t.Errorf("block starts with %q, want %q", blocks[0][0], "101*2 SUV")
	}
}

func TestSegment_TwoBlocks(t *testing.T) {
	blocks, err := Segment(twoRunMessage)
	if err != nil {
		t.Fatalf("Segment() err = %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[1][0] != "102 SEDAN" {
		t.Errorf("second block starts with %q, want %q", blocks[1][0], "102 SEDAN")
	}
}

func TestSegment_ASAPBoundary(t *testing.T) {
	blocks, err := Segment("101*2 SUV\n11:00 AM\nAA123\nJAC\n2 adults\nTeton Village Hotel\nASAP\nDL789\nJAC\n1 adult\nSnake River Lodge\n$90")
	if err != nil {
		t.Fatalf("Segment() err = %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[1][0] != "ASAP" {
		t.Errorf("second block starts with %q, want %q", blocks[1][0], "ASAP")
	}
}

func TestSegment_FirstLineNeverBoundary(t *testing.T) {
	// A boundary marker on the very first line has nothing to close: the
	// whole message must still come back as a single block.
	blocks, err := Segment("ASAP\n11:00 AM\nAA123")
	if err != nil {
		t.Fatalf("Segment() err = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
}

// Segmentation invariant: the concatenation of all blocks' lines, in order,
// equals the filtered line list. No line is dropped or duplicated.
func TestSegment_PreservesAllLines(t *testing.T) {
	messages := []string{
		twoRunMessage,
		"ASAP\nonly\nlines",
		"no markers\nat all\nhere",
		"101*2 SUV\n11:00 AM\nAA123\nJAC\n2 adults\nTeton Village Hotel\nASAP\nmore",
	}

	for _, message := range messages {
		blocks, err := Segment(message)
		if err != nil {
			t.Fatalf("Segment(%q) err = %v", message, err)
		}
		var flat []string
		for _, b := range blocks {
			flat = append(flat, b...)
		}
		if !reflect.DeepEqual(flat, Lines(message)) {
			t.Errorf("Segment(%q): blocks %v do not reassemble to %v", message, flat, Lines(message))
		}
	}
}
