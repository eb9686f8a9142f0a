package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Deck is an ordered mutable bag of locations, drawn from without
// replacement. The zero value is not usable; create decks with NewDeck.
type Deck struct {
	locations []Location
	rng       *rand.Rand
}

// NewDeck creates a deck over the given locations. A nil rng means the deck
// seeds its own source from the clock; tests pass a seeded source to make
// sampling deterministic.
func NewDeck(locations []Location, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	content := make([]Location, len(locations))
	copy(content, locations)
	return &Deck{locations: content, rng: rng}
}

// Len returns the number of locations left in the deck.
func (d *Deck) Len() int {
	return len(d.locations)
}

// Locations returns a copy of the deck's content, in order.
func (d *Deck) Locations() []Location {
	out := make([]Location, len(d.locations))
	copy(out, d.locations)
	return out
}

// Keep filters the deck in place, retaining only capitals when capitalsOnly
// is set, and only locations whose continent is enabled in continents.
func (d *Deck) Keep(capitalsOnly bool, continents map[Continent]bool) {
	filtered := d.locations[:0]
	for _, loc := range d.locations {
		if capitalsOnly && !loc.Capital {
			continue
		}
		if !continents[loc.Continent] {
			continue
		}
		filtered = append(filtered, loc)
	}
	d.locations = filtered
}

// Pick removes and returns k distinct locations chosen uniformly at random.
// Fails with ErrInsufficientSupply if fewer than k remain, leaving the deck
// unchanged.
func (d *Deck) Pick(k int) ([]Location, error) {
	if k > len(d.locations) {
		return nil, fmt.Errorf("%w: %d > %d", ErrInsufficientSupply, k, len(d.locations))
	}
	indexes := d.rng.Perm(len(d.locations))[:k]
	result := make([]Location, 0, k)
	for _, index := range indexes {
		result = append(result, d.locations[index])
	}
	d.removeIndexes(indexes)
	return result, nil
}

// PickWhere removes and returns up to k random locations satisfying keep.
// Unlike Pick it tolerates a short supply: if fewer than k qualify, all
// qualifying locations are returned and the rest of the deck is untouched.
func (d *Deck) PickWhere(k int, keep func(Location) bool) []Location {
	var candidates []int
	for index, loc := range d.locations {
		if keep(loc) {
			candidates = append(candidates, index)
		}
	}
	d.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if k < len(candidates) {
		candidates = candidates[:k]
	}
	result := make([]Location, 0, len(candidates))
	for _, index := range candidates {
		result = append(result, d.locations[index])
	}
	d.removeIndexes(candidates)
	return result
}

// Get returns the location with the given city name. Fails with ErrNotFound
// if no such city is in the deck.
func (d *Deck) Get(city string) (Location, error) {
	for _, loc := range d.locations {
		if loc.City == city {
			return loc, nil
		}
	}
	return Location{}, fmt.Errorf("%w: %s", ErrNotFound, city)
}

// removeIndexes deletes the given positions, highest first so earlier
// deletions do not invalidate the remaining indexes.
func (d *Deck) removeIndexes(indexes []int) {
	sorted := make([]int, len(indexes))
	copy(sorted, indexes)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, index := range sorted {
		d.locations = append(d.locations[:index], d.locations[index+1:]...)
	}
}
