package protein

// Package protein derives composition and molecular-weight metrics from a
// translated residue string.

import (
	"math"

	"github.com/Danera1903/dna-sequence-converter/internal/codon"
)

// Average masses of the free amino acids. Peptide-bond formation releases
// one water (18 u) per bond, which MolecularWeight subtracts.
var residueMass = map[byte]float64{
	'A': 89.09, 'C': 121.16, 'D': 133.10, 'E': 147.13,
	'F': 165.19, 'G': 75.07, 'H': 155.16, 'I': 131.17,
	'K': 146.19, 'L': 131.17, 'M': 149.21, 'N': 132.12,
	'P': 115.13, 'Q': 146.15, 'R': 174.20, 'S': 105.09,
	'T': 119.12, 'V': 117.15, 'W': 204.23, 'Y': 181.19,
}

const waterMass = 18.0

// ResidueStat is the count and share of one amino acid in a protein.
type ResidueStat struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// normalize maps the display sentinel to the empty protein.
func normalize(p string) string {
	if p == codon.NoProteinFound {
		return ""
	}
	return p
}

// Composition returns per-residue counts and percentages (two decimals)
// for a protein string. The NoProteinFound sentinel is treated as an
// empty protein.
func Composition(p string) map[string]ResidueStat {
	p = normalize(p)
	stats := make(map[string]ResidueStat)
	if len(p) == 0 {
		return stats
	}
	for i := 0; i < len(p); i++ {
		k := string(p[i])
		s := stats[k]
		s.Count++
		stats[k] = s
	}
	for k, s := range stats {
		s.Percent = math.Round(float64(s.Count)/float64(len(p))*100*100) / 100
		stats[k] = s
	}
	return stats
}

// MolecularWeight approximates the mass of a protein as the sum of the
// average masses of its residues minus 18 u per peptide bond. Sequences
// of length 0 or 1 form no bonds, so nothing is subtracted. Result is
// rounded to two decimals; the sentinel yields 0.
func MolecularWeight(p string) float64 {
	p = normalize(p)
	var w float64
	for i := 0; i < len(p); i++ {
		w += residueMass[p[i]]
	}
	if len(p) > 1 {
		w -= waterMass * float64(len(p)-1)
	}
	return math.Round(w*100) / 100
}
