package engine

import (
	"fmt"
	"sort"
)

// Game is the turn-based orchestrator: it composes the board, the deck, the
// players, and the options, and is the only surface a driver calls.
//
// A game moves through three states: setup (construction), playing, and
// game over. Once Gameover reports a reason, no further mutating operation
// is valid. The game is single-threaded by design: the driver invokes one
// mutating operation per turn, so there is no internal locking.
type Game struct {
	deck    *Deck
	board   *Board
	players []*Player
	turn    int
	rounds  int
	options *Options
}

// NewGame creates a game for the named players, in order, over the given
// deck. The deck is filtered by the configured continent and capital
// criteria, the board center and every initial hand are drawn from it.
// Fails with ErrNoPlayers if playerNames is empty and with
// ErrInsufficientSupply if the filtered deck cannot cover the center and
// the initial hands; both are fatal to construction.
func NewGame(options *Options, playerNames []string, deck *Deck) (*Game, error) {
	if len(playerNames) == 0 {
		return nil, ErrNoPlayers
	}
	deck.Keep(options.CapitalsOnly(), options.Continents())
	center, err := deck.Pick(1)
	if err != nil {
		return nil, fmt.Errorf("drawing center location: %w", err)
	}
	g := &Game{
		deck:    deck,
		board:   NewBoard(center[0], options.Board()),
		options: options,
	}
	for _, name := range playerNames {
		g.players = append(g.players, NewPlayer(name))
	}
	for _, player := range g.players {
		hand, err := deck.Pick(options.Initial())
		if err != nil {
			return nil, fmt.Errorf("dealing initial hand to %s: %w", player.Name(), err)
		}
		player.Deal(hand)
	}
	return g, nil
}

// Board returns the game board.
func (g *Game) Board() *Board {
	return g.board
}

// Deck returns the game deck.
func (g *Game) Deck() *Deck {
	return g.deck
}

// Options returns the game configuration.
func (g *Game) Options() *Options {
	return g.options
}

// Players returns the players in seating order.
func (g *Game) Players() []*Player {
	return g.players
}

// Player returns the player with the given name. Fails with ErrNotFound if
// no player has that name.
func (g *Game) Player(name string) (*Player, error) {
	for _, player := range g.players {
		if player.Name() == name {
			return player, nil
		}
	}
	return nil, fmt.Errorf("%w: player %s", ErrNotFound, name)
}

// Rounds returns the number of completed rounds.
func (g *Game) Rounds() int {
	return g.rounds
}

// Turn returns the index of the player whose turn it is.
func (g *Game) Turn() int {
	return g.turn
}

// CurrentPlayer returns the player who plays next.
func (g *Game) CurrentPlayer() *Player {
	return g.players[g.turn]
}

// Place is the current player's turn action: try to place one of their hand
// locations at absolute coordinates x, y.
//
// The returned directions are the ones the placement violated; an empty
// result means the location was committed to the board. Either way the
// location leaves the player's hand (a failed placement is a discard), the
// player draws replacements per the draw policy, and the turn advances.
// Fails with ErrNotYourTurn if player is not the current player, with
// ErrGameOver once the game has ended, and with the board's error if the
// target cell is unusable; none of these failures consumes the turn.
func (g *Game) Place(player *Player, location Location, x, y int) ([]Direction, error) {
	if err := g.checkTurn(player); err != nil {
		return nil, err
	}
	result, err := g.board.TryPlace(location, x, y)
	if err != nil {
		return nil, err
	}
	if err := player.Play(location); err != nil {
		// The board committed a location the player never held; undo so the
		// board and hands stay consistent.
		if len(result) == 0 {
			g.board.Remove(x, y)
		}
		return nil, err
	}
	if err := g.draw(player, g.options.ToDraw(result, player.Score())); err != nil {
		return result, err
	}
	g.NextPlayer()
	return result, nil
}

// Swap is the current player's alternative turn action: exchange one hand
// location for a fresh draw from the deck. Fails with ErrSwapNotAllowed if
// the configuration forbids swapping, and with ErrNotInHand before touching
// the deck if the player does not hold location.
func (g *Game) Swap(player *Player, location Location) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	if !g.options.MaySwap() {
		return ErrSwapNotAllowed
	}
	if !player.Holds(location) {
		return fmt.Errorf("%w: %s is not in %s's hand", ErrNotInHand, location.City, player.Name())
	}
	drawn, err := g.deck.Pick(1)
	if err != nil {
		return err
	}
	if err := player.Swap(location, drawn[0]); err != nil {
		return err
	}
	g.NextPlayer()
	return nil
}

// NextPlayer advances the turn, counting a completed round whenever the
// turn wraps back to the first player, and returns the game-over decision.
func (g *Game) NextPlayer() GameOverReason {
	g.turn = (g.turn + 1) % len(g.players)
	if g.turn == 0 {
		g.rounds++
	}
	return g.Gameover()
}

// Gameover delegates the game-over decision to the configured policy.
func (g *Game) Gameover() GameOverReason {
	return g.options.Gameover(g.rounds, g.scores(), g.board.Placed(), g.deck.Len())
}

// Results returns the players from best to worst: ascending score, ties
// broken by descending placed locations.
func (g *Game) Results() []*Player {
	results := make([]*Player, len(g.players))
	copy(results, g.players)
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score() != results[j].Score() {
			return results[i].Score() < results[j].Score()
		}
		return results[i].PlacedLocations() > results[j].PlacedLocations()
	})
	return results
}

func (g *Game) scores() []int {
	scores := make([]int, len(g.players))
	for i, player := range g.players {
		scores[i] = player.Score()
	}
	return scores
}

func (g *Game) checkTurn(player *Player) error {
	if g.Gameover().Over() {
		return ErrGameOver
	}
	if player != g.players[g.turn] {
		return fmt.Errorf("%w: %s", ErrNotYourTurn, player.Name())
	}
	return nil
}

// draw deals n fresh locations to player. With "only sat" enabled the draw
// is filtered to locations still placeable on the board and tolerates a
// short deck; otherwise a short deck fails with ErrInsufficientSupply and
// the turn does not advance.
func (g *Game) draw(player *Player, n int) error {
	if n <= 0 {
		return nil
	}
	if g.options.OnlySat() {
		player.Deal(g.deck.PickWhere(n, g.board.CanPlace))
		return nil
	}
	drawn, err := g.deck.Pick(n)
	if err != nil {
		return err
	}
	player.Deal(drawn)
	return nil
}
