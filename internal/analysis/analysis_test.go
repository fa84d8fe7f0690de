package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danera1903/dna-sequence-converter/internal/codon"
)

func TestAnalyze(t *testing.T) {
	// Start of the human beta-globin coding sequence plus its stop codon.
	res, err := Analyze("atggtgcacctgactcctgaggagaagTAG")
	require.NoError(t, err)

	assert.Equal(t, "ATGGTGCACCTGACTCCTGAGGAGAAGTAG", res.Sequence)
	assert.Equal(t, "TACCACGTGGACTGAGGACTCCTCTTCATC", res.Complement)
	assert.Equal(t, "AUGGUGCACCUGACUCCUGAGGAGAAGUAG", res.RNA)
	assert.Equal(t, "MVHLTPEEK", res.Protein)
	assert.Equal(t, "translated", res.ProteinStatus)

	assert.Len(t, res.StopCodons, 1)
	assert.Equal(t, codon.StopCodon{Codon: "UAG", Start: 28, End: 30}, res.StopCodons[0])

	assert.NotContains(t, res.Counts, "U")
	assert.Equal(t, 8, res.Counts["A"])
	assert.Equal(t, 1083.39, res.MolecularWeight)
	assert.Equal(t, 2, res.Composition["E"].Count)
}

func TestAnalyzeGCPercent(t *testing.T) {
	res, err := Analyze("ATGGTGCACCTGACTCCTGAGGAGAAG")
	require.NoError(t, err)
	assert.Equal(t, 55.56, res.GCPercent)
}

func TestAnalyzeInvalidInput(t *testing.T) {
	for _, in := range []string{"", "   ", "xyz!123"} {
		res, err := Analyze(in)
		require.ErrorIs(t, err, ErrInvalidSequence, "input %q", in)
		assert.Nil(t, res)
	}
}

func TestAnalyzeNoProteinSentinel(t *testing.T) {
	// TAA transcribes to UAA: a stop before any residue.
	res, err := Analyze("TAA")
	require.NoError(t, err)
	assert.Equal(t, codon.NoProteinFound, res.Protein)
	assert.Equal(t, "stopped-early", res.ProteinStatus)
	assert.Empty(t, res.Composition)
	assert.Zero(t, res.MolecularWeight)
}

func TestAnalyzeFasta(t *testing.T) {
	input := ">s1 desc\nATGC\n>s2\nGGCC"
	results := AnalyzeFasta(strings.NewReader(input))
	require.Len(t, results, 2)

	assert.Equal(t, "s1", results[0].ID)
	assert.Equal(t, "desc", results[0].Description)
	assert.Equal(t, "ATGC", results[0].Sequence)
	assert.Equal(t, "AUGC", results[0].RNA)

	assert.Equal(t, "s2", results[1].ID)
	assert.Equal(t, 100.0, results[1].GCPercent)
}

func TestAnalyzeFastaFiltersEmptyRecords(t *testing.T) {
	// The parser emits the empty record; analysis is the caller that
	// discards it.
	input := ">empty\n>junk\n!!!\n>full\nATGC\n"
	results := AnalyzeFasta(strings.NewReader(input))
	require.Len(t, results, 1)
	assert.Equal(t, "full", results[0].ID)
}
