// Package translate converts DNA sequences into amino-acid chains.
package translate

// Stop is the amino-acid code emitted for a stop codon.
const Stop = "Stop"

// StartCodon marks the translation start and also encodes Met.
const StartCodon = "ATG"

// Standard genetic code: DNA codon to amino acid (single letter, '*' for stop).
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// AminoAcidSingleToThree converts single letter amino acid to three letter code.
var AminoAcidSingleToThree = map[byte]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu",
	'F': "Phe", 'G': "Gly", 'H': "His", 'I': "Ile",
	'K': "Lys", 'L': "Leu", 'M': "Met", 'N': "Asn",
	'P': "Pro", 'Q': "Gln", 'R': "Arg", 'S': "Ser",
	'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
	'*': Stop,
}

// AminoAcidThreeToSingle maps three-letter amino acid codes to single-letter.
var AminoAcidThreeToSingle map[string]byte

func init() {
	AminoAcidThreeToSingle = make(map[string]byte, len(AminoAcidSingleToThree))
	for single, three := range AminoAcidSingleToThree {
		AminoAcidThreeToSingle[three] = single
	}
}

// TranslateCodon translates an uppercase DNA codon to its three-letter
// amino acid code, or Stop. ok is false when the codon is not one of the
// 64 valid codons.
func TranslateCodon(codon string) (aa string, ok bool) {
	if len(codon) != 3 {
		return "", false
	}
	single, ok := codonTable[codon]
	if !ok {
		return "", false
	}
	return AminoAcidSingleToThree[single], true
}

// IsStopCodon returns true if the codon is a stop codon (TAA, TAG, TGA).
func IsStopCodon(codon string) bool {
	aa, ok := TranslateCodon(codon)
	return ok && aa == Stop
}

// IsStartCodon returns true if the codon is the start codon (ATG).
func IsStartCodon(codon string) bool {
	return codon == StartCodon
}
