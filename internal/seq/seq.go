package seq

// Package seq contains the pure nucleotide-sequence transforms: validation,
// complement, transcription, per-base counts and GC content. Every function
// is stateless and safe to call from any goroutine.

import (
	"math"
	"strings"
)

// Alphabet tags a sequence as DNA or RNA so callers that know what they
// hold do not depend on content-based guessing.
type Alphabet int

const (
	DNA Alphabet = iota
	RNA
)

func (a Alphabet) String() string {
	if a == RNA {
		return "RNA"
	}
	return "DNA"
}

// Validate uppercases raw and drops every character outside A, T, G, C.
// Invalid characters are discarded silently; an empty result is the
// caller-visible invalid-input condition.
func Validate(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range strings.ToUpper(raw) {
		switch c {
		case 'A', 'T', 'G', 'C':
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Complement returns the positional Watson-Crick complement of a validated
// DNA sequence (A<->T, G<->C). The result is not reversed: index i of the
// output is the base paired opposite index i of the input.
func Complement(dna string) string {
	out := make([]byte, len(dna))
	for i := 0; i < len(dna); i++ {
		switch dna[i] {
		case 'A':
			out[i] = 'T'
		case 'T':
			out[i] = 'A'
		case 'G':
			out[i] = 'C'
		case 'C':
			out[i] = 'G'
		default:
			out[i] = dna[i]
		}
	}
	return string(out)
}

// Transcribe converts a validated DNA sequence to RNA by replacing every T
// with U.
func Transcribe(dna string) string {
	return strings.ReplaceAll(dna, "T", "U")
}

// DetectAlphabet guesses the alphabet of an untagged sequence from the
// presence of U. A sequence containing neither T nor U is reported as DNA;
// content alone cannot distinguish the two in that case, so callers that
// know the alphabet should pass it explicitly instead.
func DetectAlphabet(s string) Alphabet {
	if strings.ContainsRune(s, 'U') {
		return RNA
	}
	return DNA
}

// CountNucleotides tallies each symbol of the given alphabet in s. The
// result always carries exactly the four keys of the alphabet (T for DNA,
// U for RNA), including zero counts.
func CountNucleotides(s string, a Alphabet) map[string]int {
	counts := map[string]int{"A": 0, "G": 0, "C": 0}
	if a == RNA {
		counts["U"] = 0
	} else {
		counts["T"] = 0
	}
	for i := 0; i < len(s); i++ {
		k := string(s[i])
		if _, ok := counts[k]; ok {
			counts[k]++
		}
	}
	return counts
}

// GCContent returns the percentage of G and C bases in s, rounded to two
// decimals. The empty sequence is undefined (NaN); callers must reject
// empty input before asking for a percentage.
func GCContent(s string) float64 {
	gc := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			gc++
		}
	}
	return math.Round(float64(gc)/float64(len(s))*100*100) / 100
}
