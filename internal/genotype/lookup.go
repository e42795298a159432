package genotype

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCombination is returned when neither ordering of a pair is in the table.
var ErrUnknownCombination = errors.New("unknown genotype combination")

// Combination is a (patient, partner) pair. The table treats it as unordered.
type Combination struct {
	Patient Genotype
	Partner Genotype
}

// Key is "{patient}-{partner}".
func (c Combination) Key() string {
	return string(c.Patient) + "-" + string(c.Partner)
}

// ReverseKey is "{partner}-{patient}".
func (c Combination) ReverseKey() string {
	return string(c.Partner) + "-" + string(c.Patient)
}

// LookupKey returns the table key that g1 and g2 resolve to, trying the
// direct ordering first and then the reverse.
func LookupKey(g1, g2 Genotype) (string, error) {
	c := Combination{Patient: g1, Partner: g2}
	if _, ok := profiles[c.Key()]; ok {
		return c.Key(), nil
	}
	if _, ok := profiles[c.ReverseKey()]; ok {
		return c.ReverseKey(), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCombination, c.Key())
}

// Lookup returns a copy of the compatibility profile for g1 and g2.
func Lookup(g1, g2 Genotype) (Profile, error) {
	_, p, err := LookupWithKey(g1, g2)
	return p, err
}

// LookupWithKey returns the resolved table key together with a copy of its profile.
func LookupWithKey(g1, g2 Genotype) (string, Profile, error) {
	key, err := LookupKey(g1, g2)
	if err != nil {
		return "", Profile{}, err
	}
	return key, profiles[key].clone(), nil
}

// Combinations lists the keys defined in the table.
func Combinations() []string {
	keys := make([]string, 0, len(profiles))
	for k := range profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge overlays a platform match result onto a table profile. The SS-SS
// profile reports the SS share, every other profile the AS share.
func Merge(key string, p Profile, riskMessage string, childPercentages map[string]float64) Profile {
	out := p.clone()
	out.Description = riskMessage
	if key == "SS-SS" {
		out.Percentage = childPercentages[string(SS)]
	} else {
		out.Percentage = childPercentages[string(AS)]
	}
	return out
}
