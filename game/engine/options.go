package engine

import (
	"fmt"
	"strings"
)

// OptionKey identifies one configuration entry. The set of keys is closed:
// every key is declared here together with its legal values, so lookups on
// a constructed Options value cannot fail.
type OptionKey string

const (
	OptGridSize       OptionKey = "grid size"
	OptInitialCities  OptionKey = "initial cities"
	OptCapitalsOnly   OptionKey = "capitals only"
	OptTolerance      OptionKey = "tolerance"
	OptDrawWhenFail   OptionKey = "draw when fail"
	OptDrawPerMistake OptionKey = "draw per mistake"
	OptStopDrawing    OptionKey = "stop drawing"
	OptEndHand        OptionKey = "end hand"
	OptEndRounds      OptionKey = "end rounds"
	OptEndPlaced      OptionKey = "end placed"
	OptEmptyDeck      OptionKey = "empty deck"
	OptMaySwap        OptionKey = "may swap"
	OptOnlySat        OptionKey = "only sat"
	OptWrap           OptionKey = "wrap"
	OptTurnDelay      OptionKey = "turn delay"
)

// ContinentKey returns the option key that controls whether cities from c
// are included in the deck.
func ContinentKey(c Continent) OptionKey {
	return OptionKey(c)
}

// Option is one configuration entry: a localized display name, the closed
// set of legal values, and the currently selected value. Choices are
// homogeneous: every choice of an option has the same Go type (int, float64,
// or bool).
type Option struct {
	Key         OptionKey `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Choices     []any     `json:"choices"`
	Value       any       `json:"value"`
}

// set assigns value after validating it against the legal choices. A string
// matching the string form of a choice is coerced to that choice; a float64
// matching an integer choice is coerced too, since JSON decoding produces
// float64 for all numbers.
func (o *Option) set(value any) error {
	for _, choice := range o.Choices {
		if choice == value {
			o.Value = choice
			return nil
		}
	}
	switch v := value.(type) {
	case string:
		for _, choice := range o.Choices {
			if fmt.Sprint(choice) == v {
				o.Value = choice
				return nil
			}
		}
	case float64:
		for _, choice := range o.Choices {
			if n, ok := choice.(int); ok && float64(n) == v {
				o.Value = choice
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %v is not a valid choice for option %q", ErrInvalidOptionValue, value, o.Key)
}

// GameOverReason says why a game ended. The zero value means the game
// continues.
type GameOverReason int

const (
	NotOver GameOverReason = iota
	RoundsExceeded
	HandEmptied
	HandTooLarge
	BoardFull
	DeckExhausted
)

// Over reports whether the reason ends the game.
func (r GameOverReason) Over() bool {
	return r != NotOver
}

func (r GameOverReason) String() string {
	switch r {
	case NotOver:
		return "not over"
	case RoundsExceeded:
		return "rounds exceeded"
	case HandEmptied:
		return "hand emptied"
	case HandTooLarge:
		return "hand too large"
	case BoardFull:
		return "board full"
	case DeckExhausted:
		return "deck exhausted"
	}
	return "unknown"
}

// Options is the complete game configuration: a closed set of typed entries
// plus the read-only policy functions derived from them.
type Options struct {
	lang    Language
	entries map[OptionKey]*Option
	order   []OptionKey
}

// NewOptions creates the default configuration with display names and
// descriptions in the given language.
func NewOptions(lang Language) *Options {
	o := &Options{
		lang:    lang,
		entries: make(map[OptionKey]*Option),
	}
	add := func(key OptionKey, choices []any, value any) {
		labels := optionLabels(lang, key)
		o.entries[key] = &Option{
			Key:         key,
			Name:        labels.name,
			Description: labels.description,
			Choices:     choices,
			Value:       value,
		}
		o.order = append(o.order, key)
	}
	add(OptGridSize, []any{6, 8, 10}, 10)
	add(OptInitialCities, []any{1, 2, 3, 4, 5}, 3)
	add(OptCapitalsOnly, []any{true, false}, true)
	for _, c := range Continents {
		add(ContinentKey(c), []any{true, false}, true)
	}
	add(OptTolerance, []any{0.0, 0.1, 1.0, 5.0, 10.0}, 5.0)
	add(OptDrawWhenFail, []any{1, 2, 3}, 2)
	add(OptDrawPerMistake, []any{true, false}, false)
	add(OptStopDrawing, []any{4, 6, 8, 10}, 10)
	add(OptEndHand, []any{3, 5, 7, 10}, 10)
	add(OptEndRounds, []any{-1, 5, 10, 30, 50, 100}, -1)
	add(OptEndPlaced, []any{-1, 5, 7, 10}, -1)
	add(OptEmptyDeck, []any{0, 100, 1000}, 0)
	add(OptMaySwap, []any{true, false}, true)
	add(OptOnlySat, []any{true, false}, true)
	add(OptWrap, []any{true, false}, false)
	add(OptTurnDelay, []any{0, 5, 7, 10}, 7)
	return o
}

// Language returns the language the options were created with.
func (o *Options) Language() Language {
	return o.lang
}

// Get returns the current value of the option with the given key. Fails with
// ErrInvalidOptionValue if the key is not one of the declared options.
func (o *Options) Get(key OptionKey) (any, error) {
	entry, ok := o.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown option %q", ErrInvalidOptionValue, key)
	}
	return entry.Value, nil
}

// Set assigns value to the option with the given key, validating it against
// the option's legal choices and coercing string forms.
func (o *Options) Set(key OptionKey, value any) error {
	entry, ok := o.entries[key]
	if !ok {
		return fmt.Errorf("%w: unknown option %q", ErrInvalidOptionValue, key)
	}
	return entry.set(value)
}

// Items returns a snapshot of every option in declaration order, for an
// options UI to display and edit.
func (o *Options) Items() []Option {
	items := make([]Option, 0, len(o.order))
	for _, key := range o.order {
		entry := o.entries[key]
		choices := make([]any, len(entry.Choices))
		copy(choices, entry.Choices)
		item := *entry
		item.Choices = choices
		items = append(items, item)
	}
	return items
}

func (o *Options) intVal(key OptionKey) int {
	return o.entries[key].Value.(int)
}

func (o *Options) boolVal(key OptionKey) bool {
	return o.entries[key].Value.(bool)
}

func (o *Options) floatVal(key OptionKey) float64 {
	return o.entries[key].Value.(float64)
}

// Continents returns the set of enabled continents.
func (o *Options) Continents() map[Continent]bool {
	enabled := make(map[Continent]bool, len(Continents))
	for _, c := range Continents {
		if o.boolVal(ContinentKey(c)) {
			enabled[c] = true
		}
	}
	return enabled
}

// CapitalsOnly reports whether only capital cities are used.
func (o *Options) CapitalsOnly() bool {
	return o.boolVal(OptCapitalsOnly)
}

// Initial is the number of cities in each player's hand at game start.
func (o *Options) Initial() int {
	return o.intVal(OptInitialCities)
}

// MaySwap reports whether players may swap a location instead of playing.
func (o *Options) MaySwap() bool {
	return o.boolVal(OptMaySwap)
}

// OnlySat reports whether turn draws are restricted to locations that can
// still be placed somewhere on the board.
func (o *Options) OnlySat() bool {
	return o.boolVal(OptOnlySat)
}

// TurnDelay is the presentation pause between turns, in seconds. The engine
// never sleeps; pacing is the driver's concern.
func (o *Options) TurnDelay() int {
	return o.intVal(OptTurnDelay)
}

// Board projects the configuration into board options.
func (o *Options) Board() BoardOptions {
	return BoardOptions{
		Size:      o.intVal(OptGridSize),
		Tolerance: o.floatVal(OptTolerance),
		Wrap:      o.boolVal(OptWrap),
	}
}

// ToDraw is the number of cities to draw after a placement with the given
// violated directions, for a player holding hand cities. The draw never
// pushes the hand above the "stop drawing" threshold.
func (o *Options) ToDraw(placeResult []Direction, hand int) int {
	mistakes := len(placeResult)
	if mistakes == 0 {
		return 0
	}
	draw := o.intVal(OptDrawWhenFail)
	if o.boolVal(OptDrawPerMistake) {
		draw *= mistakes
	}
	if stop := o.intVal(OptStopDrawing); hand+draw > stop {
		if stop <= hand {
			return 0
		}
		return stop - hand
	}
	return draw
}

// Gameover decides whether the game is over given the completed rounds, the
// player scores, the number of placed cities, and the deck size. Checks run
// in priority order; the first match wins. An emptied hand beats every later
// condition, including another player's oversized hand.
func (o *Options) Gameover(rounds int, scores []int, placed, deck int) GameOverReason {
	if endRounds := o.intVal(OptEndRounds); endRounds > 0 && rounds > endRounds {
		return RoundsExceeded
	}
	for _, score := range scores {
		if score == 0 {
			return HandEmptied
		}
	}
	for _, score := range scores {
		if score >= o.intVal(OptEndHand) {
			return HandTooLarge
		}
	}
	if endPlaced := o.intVal(OptEndPlaced); endPlaced > 0 && placed >= endPlaced {
		return BoardFull
	}
	if deck-o.intVal(OptEmptyDeck) <= len(scores) {
		return DeckExhausted
	}
	return NotOver
}

// GameoverMessage renders a localized explanation for a game-over reason.
func (o *Options) GameoverMessage(reason GameOverReason) string {
	messages, ok := gameoverMessages[o.lang]
	if !ok {
		messages = gameoverMessages[LanguageEN]
	}
	switch reason {
	case RoundsExceeded:
		return fmt.Sprintf(messages[RoundsExceeded], o.intVal(OptEndRounds))
	case HandTooLarge:
		return fmt.Sprintf(messages[HandTooLarge], o.intVal(OptEndHand))
	case BoardFull:
		return fmt.Sprintf(messages[BoardFull], o.intVal(OptEndPlaced))
	default:
		return messages[reason]
	}
}

// String lists the current value of every option.
func (o *Options) String() string {
	parts := make([]string, 0, len(o.order))
	for _, key := range o.order {
		parts = append(parts, fmt.Sprintf("%q: %v", key, o.entries[key].Value))
	}
	return strings.Join(parts, ", ")
}
