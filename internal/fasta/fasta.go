package fasta

// Package fasta contains minimal helpers to parse FASTA formatted data used
// by the project. It intentionally keeps parsing simple and conservative.

import (
	"bufio"
	"io"
	"strings"

	"github.com/Danera1903/dna-sequence-converter/internal/seq"
)

// UnnamedID is the identifier assigned to a record whose header carries no
// tokens after the '>'.
const UnnamedID = "unnamed"

// Record is a single FASTA record. ID is the first whitespace-delimited
// header token, Description the remaining tokens joined by single spaces,
// and Sequence the validated concatenation of every line until the next
// header.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// IsFasta reports whether s looks like FASTA input: after trimming leading
// and trailing whitespace it starts with '>'.
func IsFasta(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), ">")
}

// Parse reads FASTA records from r. Lines beginning with '>' start a new
// record; sequence lines are concatenated and filtered through
// seq.Validate. A header with no sequence lines still yields a record
// (with an empty Sequence); callers decide whether to keep it. Text before
// the first header is ignored.
func Parse(r io.Reader) []Record {
	scanner := bufio.NewScanner(r)
	var records []Record
	var current Record
	open := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			if open {
				records = append(records, current)
			}
			current = newRecord(line[1:])
			open = true
		} else if open {
			current.Sequence += seq.Validate(line)
		}
	}
	if open {
		records = append(records, current)
	}
	return records
}

func newRecord(header string) Record {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return Record{ID: UnnamedID}
	}
	return Record{
		ID:          fields[0],
		Description: strings.Join(fields[1:], " "),
	}
}
