package analysis

// Package analysis composes the sequence, codon and protein helpers into
// the read-only result records the CLI and TUI render. A Result is built
// once per conversion request and never mutated afterwards.

import (
	"errors"
	"io"

	"github.com/Danera1903/dna-sequence-converter/internal/codon"
	"github.com/Danera1903/dna-sequence-converter/internal/fasta"
	"github.com/Danera1903/dna-sequence-converter/internal/protein"
	"github.com/Danera1903/dna-sequence-converter/internal/seq"
)

// ErrInvalidSequence is returned when validation strips every character of
// the input, leaving nothing to analyze.
var ErrInvalidSequence = errors.New("invalid sequence: no A, T, G or C characters")

// Result is the full derived snapshot for one DNA sequence.
type Result struct {
	Sequence        string                         `json:"sequence"`
	Complement      string                         `json:"complement"`
	RNA             string                         `json:"rna"`
	Protein         string                         `json:"protein"`
	ProteinStatus   string                         `json:"protein_status"`
	Counts          map[string]int                 `json:"counts"`
	GCPercent       float64                        `json:"gc_percent"`
	StopCodons      []codon.StopCodon              `json:"stop_codons,omitempty"`
	Composition     map[string]protein.ResidueStat `json:"composition,omitempty"`
	MolecularWeight float64                        `json:"molecular_weight"`
}

// RecordResult pairs a FASTA record's identity with its analysis.
type RecordResult struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Result
}

// Analyze validates raw and derives every metric from the surviving
// sequence. The protein field carries the display sentinel when no residue
// was produced; ProteinStatus preserves the finer distinction.
func Analyze(raw string) (*Result, error) {
	dna := seq.Validate(raw)
	if dna == "" {
		return nil, ErrInvalidSequence
	}
	rna := seq.Transcribe(dna)
	tr := codon.Translate(rna)
	return &Result{
		Sequence:        dna,
		Complement:      seq.Complement(dna),
		RNA:             rna,
		Protein:         tr.ProteinOrSentinel(),
		ProteinStatus:   tr.Status.String(),
		Counts:          seq.CountNucleotides(dna, seq.DNA),
		GCPercent:       seq.GCContent(dna),
		StopCodons:      codon.FindStopCodons(rna),
		Composition:     protein.Composition(tr.Protein),
		MolecularWeight: protein.MolecularWeight(tr.Protein),
	}, nil
}

// AnalyzeFasta parses FASTA input and analyzes each record. The parser
// emits records with empty sequences; they are dropped here.
func AnalyzeFasta(r io.Reader) []RecordResult {
	var results []RecordResult
	for _, rec := range fasta.Parse(r) {
		res, err := Analyze(rec.Sequence)
		if err != nil {
			continue
		}
		results = append(results, RecordResult{
			ID:          rec.ID,
			Description: rec.Description,
			Result:      *res,
		})
	}
	return results
}
