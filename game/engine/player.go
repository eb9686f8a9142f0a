package engine

import "fmt"

// Player holds a hand of locations and the count of locations they placed
// on the board. The score is the hand size; lower is better.
type Player struct {
	name   string
	hand   []Location
	placed int
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(name string) *Player {
	return &Player{name: name}
}

// Name returns the player's name.
func (p *Player) Name() string {
	return p.name
}

// Hand returns a copy of the player's hand, in order.
func (p *Player) Hand() []Location {
	out := make([]Location, len(p.hand))
	copy(out, p.hand)
	return out
}

// Score is the number of locations still in the player's hand.
func (p *Player) Score() int {
	return len(p.hand)
}

// PlacedLocations is the number of locations the player placed on the board
// during the game.
func (p *Player) PlacedLocations() int {
	return p.placed
}

// Deal appends locations to the player's hand.
func (p *Player) Deal(locations []Location) {
	p.hand = append(p.hand, locations...)
}

// Play removes the first occurrence of location from the hand and counts it
// as placed. Playing always removes the location, whether or not the board
// placement succeeded: a failed placement is a discard, not an undo.
func (p *Player) Play(location Location) error {
	index := p.indexOf(location)
	if index < 0 {
		return fmt.Errorf("%w: %s is not in %s's hand", ErrNotInHand, location.City, p.name)
	}
	p.hand = append(p.hand[:index], p.hand[index+1:]...)
	p.placed++
	return nil
}

// Swap replaces the first occurrence of out in the hand with in. It does not
// change the placed count.
func (p *Player) Swap(out, in Location) error {
	index := p.indexOf(out)
	if index < 0 {
		return fmt.Errorf("%w: %s is not in %s's hand", ErrNotInHand, out.City, p.name)
	}
	p.hand[index] = in
	return nil
}

// Holds reports whether location is in the player's hand.
func (p *Player) Holds(location Location) bool {
	return p.indexOf(location) >= 0
}

// HandLocation returns the hand location with the given city name. Fails
// with ErrNotInHand if absent.
func (p *Player) HandLocation(city string) (Location, error) {
	for _, loc := range p.hand {
		if loc.City == city {
			return loc, nil
		}
	}
	return Location{}, fmt.Errorf("%w: %s is not in %s's hand", ErrNotInHand, city, p.name)
}

func (p *Player) indexOf(location Location) int {
	for index, loc := range p.hand {
		if loc == location {
			return index
		}
	}
	return -1
}
