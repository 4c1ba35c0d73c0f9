package seqmath

import (
	"sort"
)

// gcWeight holds the G+C contribution of each IUPAC nucleotide code.
// Ambiguity codes contribute the fraction of their expansions that are G or C.
var gcWeight [256]float64

func init() {
	for b, w := range map[byte]float64{
		'G': 1, 'C': 1, 'S': 1,
		'N': 0.5, 'R': 0.5, 'Y': 0.5, 'K': 0.5, 'M': 0.5,
		'B': 2.0 / 3.0, 'V': 2.0 / 3.0,
		'D': 1.0 / 3.0, 'H': 1.0 / 3.0,
	} {
		gcWeight[b] = w
		gcWeight[b+'a'-'A'] = w
	}
}

// GC returns the G+C content of s as a percentage in [0, 100]. Every symbol
// counts toward the length; symbols outside the IUPAC nucleotide alphabet
// contribute no G+C. An empty sequence has 0 GC.
func GC(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	var gc float64
	for _, b := range s {
		gc += gcWeight[b]
	}
	return gc * 100 / float64(len(s))
}

// Nxx returns an int slice with all values N1..N50..N99 calculated for the input slice
// of sequence lengths. The input slice does not need to be sorted, but the total length
// must also be passed to avoid a second pass.
func Nxx(seqLens []int, totalSeqLength int) (nxx []int) {
	nxx = make([]int, 100)
	var sls = seqLens
	if !sort.IntsAreSorted(sls) {
		sort.Ints(sls)
	}
	var cumLen int = 0
	var n = 1
	for i := range sls {
		l := sls[len(sls)-1-i]
		cumLen += l
		for n < 100 && float64(cumLen) >= float64(n)*0.01*float64(totalSeqLength) {
			nxx[n] = l
			n++
		}
	}
	return nxx
}

// Median expects sorted lengths.
func Median(seqLens []int) (median int) {
	var n = len(seqLens)

	switch {
	case n == 0:
		return 0
	case n&1 == 1:
		return seqLens[n/2]
	default:
		return (seqLens[n/2] + seqLens[n/2-1]) / 2
	}
}
