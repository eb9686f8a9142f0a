// Command analyze runs seeded self-play matches over the city dataset and
// prints quick, human-readable statistics: how long matches run, how they
// end, and how often a greedy player misplaces a city. It is a balance tool
// for option tuning, not part of the server.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/geoloco/mappazzone/game/catalog"
	"github.com/geoloco/mappazzone/game/engine"
)

// matchStats summarizes one self-play match.
type matchStats struct {
	Rounds int
	Reason engine.GameOverReason
	Placed int
	Turns  int
	Misses int
}

// turnCap aborts matches that a pathological configuration keeps alive.
const turnCap = 10000

// runMatch plays one full match with every seat driven by the greedy
// strategy: place the first hand city that fits somewhere, otherwise swap,
// otherwise place anyway and take the penalty draw.
func runMatch(locations []engine.Location, opts *engine.Options, players []string, seed int64) (matchStats, error) {
	stats := matchStats{}

	deck := engine.NewDeck(locations, rand.New(rand.NewSource(seed)))
	game, err := engine.NewGame(opts, players, deck)
	if err != nil {
		return stats, err
	}

	for !game.Gameover().Over() && stats.Turns < turnCap {
		stats.Turns++
		player := game.CurrentPlayer()

		city, x, y, found := findCleanPlacement(game.Board(), player.Hand())
		if found {
			if _, err := game.Place(player, city, x, y); err != nil {
				return stats, err
			}
			continue
		}

		if opts.MaySwap() && game.Deck().Len() > 0 {
			if err := game.Swap(player, player.Hand()[0]); err != nil {
				return stats, err
			}
			continue
		}

		// Nothing fits and swapping is off: misplace on purpose and accept
		// the penalty draw.
		x, y, free := firstFreeCell(game.Board())
		if !free {
			break
		}
		violations, err := game.Place(player, player.Hand()[0], x, y)
		if err != nil {
			return stats, err
		}
		if len(violations) > 0 {
			stats.Misses++
		}
	}

	stats.Rounds = game.Rounds()
	stats.Reason = game.Gameover()
	stats.Placed = game.Board().Placed()
	return stats, nil
}

// findCleanPlacement probes every hand city against every empty cell and
// returns the first combination that keeps the board consistent. The board
// is left unchanged.
func findCleanPlacement(board *engine.Board, hand []engine.Location) (engine.Location, int, int, bool) {
	size := board.Options().Size
	for _, city := range hand {
		city := city
		for x := 0; x < size; x++ {
			for y := 0; y < size; y++ {
				current, err := board.Get(x, y)
				if err != nil || current != nil {
					continue
				}
				if err := board.Put(&city, x, y, false); err != nil {
					continue
				}
				clean := len(board.Violations()) == 0
				board.Remove(x, y)
				if clean {
					return city, x, y, true
				}
			}
		}
	}
	return engine.Location{}, 0, 0, false
}

// firstFreeCell returns the coordinates of the first empty cell in scan
// order, or false if the board is full.
func firstFreeCell(board *engine.Board) (int, int, bool) {
	size := board.Options().Size
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if current, err := board.Get(x, y); err == nil && current == nil {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// playerNames generates n seat names.
func playerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("bot%d", i+1)
	}
	return names
}

func run(ctx context.Context, cmd *cli.Command) error {
	locations, err := catalog.LoadDir(cmd.String("data"))
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	matches := int(cmd.Int("matches"))
	players := int(cmd.Int("players"))
	seed := int64(cmd.Int("seed"))

	fmt.Printf("Dataset: %d locations\n", len(locations))
	fmt.Printf("Running %d matches with %d players (seed %d)\n\n", matches, players, seed)

	reasons := make(map[engine.GameOverReason]int)
	totalRounds, totalPlaced, totalTurns, totalMisses := 0, 0, 0, 0

	for i := 0; i < matches; i++ {
		opts := engine.NewOptions(engine.LanguageEN)
		if gridSize := cmd.Int("grid"); gridSize != 0 {
			if err := opts.Set(engine.OptGridSize, int(gridSize)); err != nil {
				return err
			}
		}
		if !cmd.Bool("capitals-only") {
			if err := opts.Set(engine.OptCapitalsOnly, false); err != nil {
				return err
			}
		}

		stats, err := runMatch(locations, opts, playerNames(players), seed+int64(i))
		if err != nil {
			return fmt.Errorf("match %d: %w", i+1, err)
		}

		reasons[stats.Reason]++
		totalRounds += stats.Rounds
		totalPlaced += stats.Placed
		totalTurns += stats.Turns
		totalMisses += stats.Misses
	}

	n := float64(matches)
	fmt.Printf("Average rounds: %.1f\n", float64(totalRounds)/n)
	fmt.Printf("Average turns: %.1f\n", float64(totalTurns)/n)
	fmt.Printf("Average placed: %.1f\n", float64(totalPlaced)/n)
	fmt.Printf("Forced misplacements: %d\n\n", totalMisses)

	fmt.Println("End reasons:")
	for reason, count := range reasons {
		fmt.Printf("  %-16s %d\n", reason, count)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "run seeded self-play matches and report balance statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data",
				Value: "data",
				Usage: "directory holding worldcities.csv and continents.csv",
			},
			&cli.IntFlag{
				Name:  "matches",
				Value: 50,
				Usage: "number of matches to play",
			},
			&cli.IntFlag{
				Name:  "players",
				Value: 2,
				Usage: "players per match",
			},
			&cli.IntFlag{
				Name:  "seed",
				Value: 1,
				Usage: "base random seed, incremented per match",
			},
			&cli.IntFlag{
				Name:  "grid",
				Value: 10,
				Usage: "board size option",
			},
			&cli.BoolFlag{
				Name:  "capitals-only",
				Value: true,
				Usage: "restrict the deck to capital cities",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}
