package fasta

import (
	"strings"
	"testing"
)

func TestParseSimple(t *testing.T) {
	input := ">s1 desc\nATGC\n>s2\nGGCC"
	recs := Parse(strings.NewReader(input))
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "s1" || recs[0].Description != "desc" || recs[0].Sequence != "ATGC" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].ID != "s2" || recs[1].Description != "" || recs[1].Sequence != "GGCC" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseMultiWordDescription(t *testing.T) {
	input := ">NM_000518.5   Homo sapiens  hemoglobin subunit beta\nATG\nGTG\n"
	recs := Parse(strings.NewReader(input))
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].ID != "NM_000518.5" {
		t.Fatalf("unexpected id: %q", recs[0].ID)
	}
	if recs[0].Description != "Homo sapiens hemoglobin subunit beta" {
		t.Fatalf("description tokens not joined by single spaces: %q", recs[0].Description)
	}
	if recs[0].Sequence != "ATGGTG" {
		t.Fatalf("sequence lines not concatenated: %q", recs[0].Sequence)
	}
}

func TestParseValidatesSequenceLines(t *testing.T) {
	input := ">s1\natg-c 123\nNNTT\n"
	recs := Parse(strings.NewReader(input))
	if len(recs) != 1 || recs[0].Sequence != "ATGCTT" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestParseEmptyHeaderGetsPlaceholder(t *testing.T) {
	recs := Parse(strings.NewReader(">\nATGC\n"))
	if len(recs) != 1 || recs[0].ID != UnnamedID {
		t.Fatalf("expected placeholder id, got %+v", recs)
	}
}

func TestParseEmitsEmptySequenceRecords(t *testing.T) {
	// A header with no sequence lines is still a record; filtering is the
	// caller's job.
	recs := Parse(strings.NewReader(">empty\n>full\nGGCC\n"))
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "empty" || recs[0].Sequence != "" {
		t.Fatalf("unexpected empty record: %+v", recs[0])
	}
}

func TestParseIgnoresLeadingJunk(t *testing.T) {
	recs := Parse(strings.NewReader("GGGG\n>s1\nATGC\n"))
	if len(recs) != 1 || recs[0].ID != "s1" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestIsFasta(t *testing.T) {
	if !IsFasta("  \n>s1\nATGC") {
		t.Fatalf("expected FASTA detection after leading whitespace")
	}
	if IsFasta("ATGC") {
		t.Fatalf("raw sequence misdetected as FASTA")
	}
	if IsFasta("") {
		t.Fatalf("empty input misdetected as FASTA")
	}
}
