// Package engine provides the core game logic for the Mappazzone
// geolocalization game.
//
// The engine package implements the game mechanics including:
//   - The board: a square grid whose cell positions must stay consistent
//     with the geographic ordering of the placed locations
//   - Transactional placement with rollback on invariant violations
//   - The deck of locations with uniform sampling without replacement
//   - Player hands, scoring, and the turn-based game state machine
//   - Typed game options with per-option legal value sets and the policy
//     functions derived from them (draw counts, game-over decisions)
//
// Core Types:
//
// Game is the turn-based orchestrator and the only surface a driver (UI,
// REST API, or test) needs. It composes Board, Deck, Player, and Options.
// Board enforces the placement invariant; Options validates configuration
// and derives policy; Deck and Player are the two location collections.
//
// Usage:
//
//	opts := engine.NewOptions(engine.LanguageEN)
//	deck := engine.NewDeck(locations, nil)
//
//	game, err := engine.NewGame(opts, []string{"Ann", "Bo"}, deck)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	player := game.CurrentPlayer()
//	x, y := game.Board().Coords(1, 0, true)
//	mistakes, err := game.Place(player, player.Hand()[0], x, y)
//
// Game Rules:
//
// Players take turns placing cities from their hand onto the grid. A city's
// column must respect longitude order and its row latitude order, within a
// configurable tolerance, relative to every other placed city. A wrong
// placement discards the city and draws replacements per the draw policy.
// The lowest hand count wins.
package engine
