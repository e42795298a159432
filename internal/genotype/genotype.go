// Package genotype holds the hemoglobin genotype compatibility table used by the
// genotype test, the Punnett-square offspring model and the downloadable report.
package genotype

import (
	"errors"
	"fmt"
	"strings"
)

// Genotype is a hemoglobin variant code such as AA or AS.
type Genotype string

const (
	AA Genotype = "AA"
	AS Genotype = "AS"
	AC Genotype = "AC"
	SS Genotype = "SS"
	SC Genotype = "SC"
	CC Genotype = "CC"
)

// ErrInvalidGenotype is returned for codes outside {AA, AS, AC, SS, SC, CC}.
var ErrInvalidGenotype = errors.New("invalid genotype")

var all = []Genotype{AA, AS, AC, SS, SC, CC}

// allele order inside a code: A before S before C
var alleleRank = map[byte]int{'A': 0, 'S': 1, 'C': 2}

// All returns every supported genotype in canonical order.
func All() []Genotype {
	out := make([]Genotype, len(all))
	copy(out, all)
	return out
}

// Parse normalises and validates a genotype code. "sa" parses as AS.
func Parse(s string) (Genotype, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidGenotype, s)
	}
	if _, ok := alleleRank[code[0]]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidGenotype, s)
	}
	if _, ok := alleleRank[code[1]]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidGenotype, s)
	}
	return fromAlleles(code[0], code[1]), nil
}

// Alleles returns the two allele letters of g.
func (g Genotype) Alleles() [2]byte {
	return [2]byte{g[0], g[1]}
}

func (g Genotype) String() string {
	return string(g)
}

func fromAlleles(a, b byte) Genotype {
	if alleleRank[a] > alleleRank[b] {
		a, b = b, a
	}
	return Genotype([]byte{a, b})
}
