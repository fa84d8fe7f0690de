package codon

// Package codon holds the standard genetic code and the translation and
// stop-codon scanning logic built on it. The table is a process-wide
// constant; nothing in this package retains state between calls.

import "strings"

// Stop marks a translation-stop codon in the table.
const Stop = '*'

// NoProteinFound is the display sentinel for a translation that produced
// no residues. The Translation type carries the real distinction; this
// string exists for consumers that render a single field.
const NoProteinFound = "No protein found"

// standardTable maps every RNA triplet over {A,U,G,C} to a one-letter
// amino-acid code, or Stop for UAA, UAG and UGA. 61 sense codons plus the
// 3 stops cover all 64 entries.
var standardTable = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"UAU": 'Y', "UAC": 'Y', "UAA": Stop, "UAG": Stop,
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"UGU": 'C', "UGC": 'C', "UGA": Stop, "UGG": 'W',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Lookup returns the amino acid encoded by an RNA triplet, or false when
// the triplet is not in the standard table.
func Lookup(triplet string) (byte, bool) {
	aa, ok := standardTable[triplet]
	return aa, ok
}

// Status describes how a translation ended.
type Status int

const (
	// StatusTranslated means at least one residue was produced.
	StatusTranslated Status = iota
	// StatusStoppedEarly means a stop codon appeared before any residue.
	StatusStoppedEarly
	// StatusNoCodons means no complete valid codon produced a residue and
	// no stop codon was seen.
	StatusNoCodons
)

func (s Status) String() string {
	switch s {
	case StatusTranslated:
		return "translated"
	case StatusStoppedEarly:
		return "stopped-early"
	default:
		return "no-codons"
	}
}

// Translation is the outcome of translating one RNA sequence in frame 0.
type Translation struct {
	Protein string
	Status  Status
}

// ProteinOrSentinel returns the residue string, or NoProteinFound when
// translation produced nothing.
func (t Translation) ProteinOrSentinel() string {
	if t.Protein == "" {
		return NoProteinFound
	}
	return t.Protein
}

// Translate reads rna in non-overlapping triplets from offset 0 (frame 0
// only). Unmapped triplets and a trailing partial codon are skipped
// silently. Translation halts at the first stop codon; triplets after it
// are never examined.
func Translate(rna string) Translation {
	var b strings.Builder
	for i := 0; i+3 <= len(rna); i += 3 {
		aa, ok := standardTable[rna[i:i+3]]
		if !ok {
			continue
		}
		if aa == Stop {
			if b.Len() == 0 {
				return Translation{Status: StatusStoppedEarly}
			}
			return Translation{Protein: b.String(), Status: StatusTranslated}
		}
		b.WriteByte(aa)
	}
	if b.Len() == 0 {
		return Translation{Status: StatusNoCodons}
	}
	return Translation{Protein: b.String(), Status: StatusTranslated}
}

// StopCodon is one in-frame stop codon with 1-based inclusive positions.
type StopCodon struct {
	Codon string `json:"codon"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// FindStopCodons scans every non-overlapping triplet of rna from offset 0,
// the same frame Translate reads, and reports each stop codon found.
// Unlike Translate it does not halt at the first match; callers use the
// full list for diagnostics.
func FindStopCodons(rna string) []StopCodon {
	var stops []StopCodon
	for i := 0; i+3 <= len(rna); i += 3 {
		t := rna[i : i+3]
		if t == "UAA" || t == "UAG" || t == "UGA" {
			stops = append(stops, StopCodon{Codon: t, Start: i + 1, End: i + 3})
		}
	}
	return stops
}
