package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// Settings is the user's dashboard watchlist.
type Settings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// Load reads the settings document at path. A missing file, invalid JSON or
// a document that is not an object yields empty lists. Other read failures
// are returned.
func Load(log zerolog.Logger, path string) (Settings, error) {
	empty := Settings{Currencies: []string{}, Stocks: []string{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", path).Msg("user settings not found, using empty watchlist")
		return empty, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading user settings: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		log.Error().Err(err).Str("path", path).Msg("user settings are not a JSON object, using empty watchlist")
		return empty, nil
	}

	s := empty
	s.Currencies = stringList(log, doc, "user_currencies")
	s.Stocks = stringList(log, doc, "user_stocks")

	log.Info().Str("path", path).Strs("currencies", s.Currencies).Strs("stocks", s.Stocks).Msg("user settings loaded")
	return s, nil
}

func stringList(log zerolog.Logger, doc map[string]json.RawMessage, key string) []string {
	raw, ok := doc[key]
	if !ok {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		log.Warn().Err(err).Str("key", key).Msg("user settings entry is not a list of strings")
		return []string{}
	}
	return list
}

// Save writes the watchlist as an indented JSON object.
func Save(path string, s Settings) error {
	if s.Currencies == nil {
		s.Currencies = []string{}
	}
	if s.Stocks == nil {
		s.Stocks = []string{}
	}
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling user settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing user settings: %w", err)
	}
	return nil
}
