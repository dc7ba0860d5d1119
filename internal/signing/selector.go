package signing

import (
	"errors"
	"strings"
)

// Identity is a named signing credential plus the preference rank it
// matched at. Exactly one identity is chosen per signable artifact.
type Identity struct {
	// Name is the identity name as reported by the identity store.
	Name string
	// Rank is the index of the first preference entry the name matched.
	Rank int
}

// preferredIdentities orders identity kinds from most to least preferred.
// An identity's rank is the index of the first entry its name contains.
var preferredIdentities = []string{
	"Developer ID Application",
	"Apple Development",
	"3rd Party Mac Developer Application",
	"Mac Developer",
}

// ErrNoIdentityFound is returned when no available identity matches any
// preference entry. Callers may continue unsigned.
var ErrNoIdentityFound = errors.New("no suitable signing identity found")

// SelectIdentity scans the available identity names once and returns the
// one with the smallest preference rank. Identities matching no preference
// entry are ineligible. Ties keep the identity encountered first, so the
// result is deterministic for a fixed input order.
func SelectIdentity(names []string) (*Identity, error) {
	var best *Identity

	for _, name := range names {
		rank, ok := rankOf(name)
		if !ok {
			continue
		}

		if best == nil || rank < best.Rank {
			best = &Identity{Name: name, Rank: rank}
		}
	}

	if best == nil {
		return nil, ErrNoIdentityFound
	}

	return best, nil
}

// rankOf returns the index of the first preference entry the name matches.
func rankOf(name string) (int, bool) {
	for rank, preferred := range preferredIdentities {
		if strings.Contains(name, preferred) {
			return rank, true
		}
	}

	return 0, false
}
