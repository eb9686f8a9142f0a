package engine

// Localized tables for continent names, option labels, and game-over
// messages. New languages slot in by extending these maps; nothing reads
// the process environment.

var continentNames = map[Language]map[Continent]string{
	LanguageEN: {
		Antarctica:   "Antarctica",
		Asia:         "Asia",
		Africa:       "Africa",
		Europe:       "Europe",
		NorthAmerica: "North America",
		Oceania:      "Oceania",
		SouthAmerica: "South America",
	},
	LanguageIT: {
		Antarctica:   "Antartide",
		Asia:         "Asia",
		Africa:       "Africa",
		Europe:       "Europa",
		NorthAmerica: "Nordamerica",
		Oceania:      "Oceania",
		SouthAmerica: "Sudamerica",
	},
}

var gameoverMessages = map[Language]map[GameOverReason]string{
	LanguageEN: {
		NotOver:        "",
		RoundsExceeded: "The game is over after %d rounds.",
		HandEmptied:    "The game is over after a player has placed all their locations.",
		HandTooLarge:   "The game is over after a player has %d or more locations in their hand.",
		BoardFull:      "The game is over after %d locations have been placed on the board.",
		DeckExhausted:  "The game is over because the deck is empty.",
	},
	LanguageIT: {
		NotOver:        "",
		RoundsExceeded: "La partita termina dopo %d turni.",
		HandEmptied:    "La partita termina perché un giocatore ha piazzato tutte le sue città.",
		HandTooLarge:   "La partita termina perché un giocatore ha %d o più città in mano.",
		BoardFull:      "La partita termina perché %d città sono state piazzate sulla mappa.",
		DeckExhausted:  "La partita termina perché il mazzo è esaurito.",
	},
}

type optionLabel struct {
	name        string
	description string
}

func optionLabels(lang Language, key OptionKey) optionLabel {
	labels, ok := optionLabelTables[lang]
	if !ok {
		labels = optionLabelTables[LanguageEN]
	}
	if label, ok := labels[key]; ok {
		return label
	}
	// Continent toggles use the continent display name as their label.
	if c := Continent(key); c.Valid() {
		return optionLabel{name: c.Name(lang), description: continentToggleDescription(lang, c)}
	}
	return optionLabel{name: string(key)}
}

func continentToggleDescription(lang Language, c Continent) string {
	if lang == LanguageIT {
		return "Usa città in " + c.Name(lang) + "."
	}
	return "Include cities in " + c.Name(lang) + "."
}

var optionLabelTables = map[Language]map[OptionKey]optionLabel{
	LanguageEN: {
		OptGridSize: {
			name:        "Board size",
			description: "Number of cells on each side of the board (excluding the center).",
		},
		OptInitialCities: {
			name:        "Initial cities",
			description: "Number of cities per player at the beginning of the game.",
		},
		OptCapitalsOnly: {
			name:        "Capitals only",
			description: "Use only cities that are capitals.",
		},
		OptTolerance: {
			name:        "Tolerance",
			description: "Two cities whose longitude (resp. latitude) differ less than the tolerance can be placed in any two columns (resp. rows).",
		},
		OptDrawWhenFail: {
			name:        "Cities drawn on fail",
			description: "Number of new cities a player draws when they place a city incorrectly.",
		},
		OptDrawPerMistake: {
			name:        "Draw for each mistake",
			description: "If selected, a player who placed a city incorrectly draws cities for each direction that they got wrong.",
		},
		OptStopDrawing: {
			name:        "Stop drawing",
			description: "When a player has these many cities in their hand, they do not draw new cities even if they play wrong.",
		},
		OptEndHand: {
			name:        "Max cities in hand",
			description: "When a player has these many cities in their hand, the game ends.",
		},
		OptEndRounds: {
			name:        "Max rounds",
			description: "The game ends after these many rounds (a negative number means no limit).",
		},
		OptEndPlaced: {
			name:        "Max cities on board",
			description: "When there are these many cities placed on the board, the game ends (a negative number means no limit).",
		},
		OptEmptyDeck: {
			name:        "Empty deck",
			description: "Number of locations left in the deck for which it is considered empty, and the game ends.",
		},
		OptMaySwap: {
			name:        "Allow swapping",
			description: "Can a player change a city instead of placing it?",
		},
		OptOnlySat: {
			name:        "Only draw placeable",
			description: "If enabled, only cities that can be placed somewhere on the board will be drawn.",
		},
		OptWrap: {
			name:        "Wrap longitudes",
			description: "If enabled, longitudes wrap over 180 degrees in each direction. For example, Japan (+138) can be placed west of Hawaii (-155).",
		},
		OptTurnDelay: {
			name:        "Turn delay",
			description: "Wait these many seconds after each turn before moving on to the next player.",
		},
	},
	LanguageIT: {
		OptGridSize: {
			name:        "Dimensione mappa",
			description: "Numero di celle in ciascuna metà della mappa di gioco (senza contare il centro).",
		},
		OptInitialCities: {
			name:        "Città iniziali",
			description: "Numero di città per giocatore all'inizio di una partita.",
		},
		OptCapitalsOnly: {
			name:        "Solo capitali",
			description: "Usare solo città che sono capitali.",
		},
		OptTolerance: {
			name:        "Tolleranza",
			description: "Due città le cui longitudini (rispettivamente, latitudini) differiscono di meno della tolleranza possono essere piazzate in qualsiasi due colonne (rispettivamente, righe).",
		},
		OptDrawWhenFail: {
			name:        "Città pescate in caso di errore",
			description: "Numero di nuove città che un giocatore riceve quando piazza una città in maniera incorretta.",
		},
		OptDrawPerMistake: {
			name:        "Pescare per errore",
			description: "Se selezionata, un giocatore che ha piazzato una città incorrettamente pesca città per ciascuna direzione che ha sbagliato.",
		},
		OptStopDrawing: {
			name:        "Limite pesca",
			description: "Quando un giocatore ha questo numero di città in mano, non pesca nuove città anche se sbaglia.",
		},
		OptEndHand: {
			name:        "Massimo numero città",
			description: "Quando un giocatore ha questo numero di città in mano, la partita termina.",
		},
		OptEndRounds: {
			name:        "Massimo numero turni",
			description: "La partita termina passati questo numero di turni (un numero negativo significa che non c'è limite).",
		},
		OptEndPlaced: {
			name:        "Massimo città piazzate",
			description: "Quando questo numero di città sono posizionate sul tavolo di gioco, la partita termina (un numero negativo significa che non c'è limite).",
		},
		OptEmptyDeck: {
			name:        "Mazzo esaurito",
			description: "Numero di città rimanenti nel mazzo per il quale è considerato esaurito, e la partita termina.",
		},
		OptMaySwap: {
			name:        "Permetti scambio",
			description: "I giocatori possono scambiare una città invece di piazzarla?",
		},
		OptOnlySat: {
			name:        "Pesca solo piazzabili",
			description: "Se selezionata, i giocatori pescano solo città che possono essere piazzate correttamente sul tavolo di gioco da qualche parte.",
		},
		OptWrap: {
			name:        "Continua longitudini",
			description: "Se selezionata, le longitudini continuano oltre i 180 gradi in ciascuna direzione. Per esempio, il Giappone (+138) può essere piazzato a ovest delle Hawaii (-155).",
		},
		OptTurnDelay: {
			name:        "Pausa tra turni",
			description: "Effettua una pausa di questa durata in secondi dopo ogni turno prima di passare al prossimo giocatore.",
		},
	},
}
