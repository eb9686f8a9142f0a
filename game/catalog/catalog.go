// Package catalog loads the location dataset the game draws its decks from.
//
// The dataset is two CSV files: a world cities table (name, coordinates,
// country codes, population, capital status) and a country-to-continent
// table keyed by ISO3 code. Cities whose country has no continent mapping
// are skipped; a missing population is tolerated and recorded as zero.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/geoloco/mappazzone/game/engine"
)

// Default file names inside a data directory.
const (
	CitiesFile     = "worldcities.csv"
	ContinentsFile = "continents.csv"
)

var countryParens = regexp.MustCompile(`[(].*[)]`)

// LoadDir loads the dataset from the conventionally named files in dir.
func LoadDir(dir string) ([]engine.Location, error) {
	return LoadFiles(filepath.Join(dir, CitiesFile), filepath.Join(dir, ContinentsFile))
}

// LoadFiles loads the dataset from explicit cities and continents paths.
func LoadFiles(citiesPath, continentsPath string) ([]engine.Location, error) {
	continentsFile, err := os.Open(continentsPath)
	if err != nil {
		return nil, fmt.Errorf("opening continents table: %w", err)
	}
	defer continentsFile.Close()
	countryToContinent, err := ReadContinents(continentsFile)
	if err != nil {
		return nil, fmt.Errorf("reading continents table %s: %w", continentsPath, err)
	}

	citiesFile, err := os.Open(citiesPath)
	if err != nil {
		return nil, fmt.Errorf("opening cities table: %w", err)
	}
	defer citiesFile.Close()
	locations, err := ReadCities(citiesFile, countryToContinent)
	if err != nil {
		return nil, fmt.Errorf("reading cities table %s: %w", citiesPath, err)
	}
	return locations, nil
}

// ReadContinents parses the country-to-continent table: a CSV with iso3,
// continent, and code columns. Fails on a code that is not one of the seven
// continent codes.
func ReadContinents(r io.Reader) (map[string]engine.Continent, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	countryToContinent := make(map[string]engine.Continent)
	for _, row := range rows {
		code := engine.Continent(row["code"])
		if !code.Valid() {
			return nil, fmt.Errorf("unknown continent code %q for country %s", row["code"], row["iso3"])
		}
		countryToContinent[row["iso3"]] = code
	}
	return countryToContinent, nil
}

// ReadCities parses the world cities table into locations, resolving each
// city's continent through countryToContinent. Cities in countries without a
// continent mapping are skipped and logged; unparsable populations become
// zero. A capital is a city whose capital column says "primary".
func ReadCities(r io.Reader, countryToContinent map[string]engine.Continent) ([]engine.Location, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	var locations []engine.Location
	for _, row := range rows {
		latitude, err := strconv.ParseFloat(row["lat"], 64)
		if err != nil {
			return nil, fmt.Errorf("city %s: parsing latitude: %w", row["city"], err)
		}
		longitude, err := strconv.ParseFloat(row["lng"], 64)
		if err != nil {
			return nil, fmt.Errorf("city %s: parsing longitude: %w", row["city"], err)
		}
		id, err := strconv.Atoi(row["id"])
		if err != nil {
			return nil, fmt.Errorf("city %s: parsing id: %w", row["city"], err)
		}
		population, err := strconv.Atoi(row["population"])
		if err != nil {
			log.Printf("Population of %s (%s) not found", row["iso3"], row["city"])
			population = 0
		}
		continent, ok := countryToContinent[row["iso3"]]
		if !ok {
			log.Printf("Continent of %s (%s) not found", row["iso3"], row["city"])
			continue
		}
		locations = append(locations, engine.Location{
			City:        row["city"],
			CityASCII:   row["city_ascii"],
			Longitude:   longitude,
			Latitude:    latitude,
			Country:     strings.TrimSpace(countryParens.ReplaceAllString(row["country"], "")),
			CountryISO2: row["iso2"],
			CountryISO3: row["iso3"],
			Population:  population,
			ID:          id,
			Continent:   continent,
			Capital:     row["capital"] == "primary",
		})
	}
	return locations, nil
}

// readAll reads a CSV with a header row into one map per record.
func readAll(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, column := range header {
			row[column] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
