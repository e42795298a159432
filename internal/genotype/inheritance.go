package genotype

import (
	"fmt"
	"sort"
)

// Distribution maps a child genotype to its probability in percent.
type Distribution map[Genotype]float64

// OffspringDistribution applies a Punnett square to two parents: each parent
// passes one of its two alleles with equal probability.
func OffspringDistribution(g1, g2 Genotype) Distribution {
	d := make(Distribution)
	a, b := g1.Alleles(), g2.Alleles()
	for _, x := range a {
		for _, y := range b {
			d[fromAlleles(x, y)] += 25
		}
	}
	return d
}

// DiseasePercent is the share of children expected to have sickle cell disease (SS or SC).
func (d Distribution) DiseasePercent() float64 {
	return d[SS] + d[SC]
}

// Strings converts the distribution to the string-keyed form used on the wire.
func (d Distribution) Strings() map[string]float64 {
	out := make(map[string]float64, len(d))
	for g, p := range d {
		out[string(g)] = p
	}
	return out
}

// RiskMessage summarises the distribution in one sentence.
func (d Distribution) RiskMessage() string {
	if d.DiseasePercent() == 0 && d[AS] == 0 {
		return "No risk of sickle cell disease or sickle cell trait in children."
	}
	if d.DiseasePercent() == 0 {
		return fmt.Sprintf("No risk of sickle cell disease. %s%% chance per pregnancy of a child carrying the sickle cell trait (AS).", formatPercent(d[AS]))
	}

	keys := make([]Genotype, 0, len(d))
	for _, g := range all {
		if d[g] > 0 {
			keys = append(keys, g)
		}
	}
	sort.SliceStable(keys, func(i, j int) bool { return d[keys[i]] > d[keys[j]] })

	msg := fmt.Sprintf("%s%% chance per pregnancy of a child with sickle cell disease.", formatPercent(d.DiseasePercent()))
	for _, g := range keys {
		msg += fmt.Sprintf(" %s: %s%%.", g, formatPercent(d[g]))
	}
	return msg
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%g", p)
}
