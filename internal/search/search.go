package search

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/cashview/internal/model"
)

// Match returns the transactions whose description matches keyword,
// ignoring case, in input order. keyword is tried as a regular expression
// first and matched literally if it does not compile.
func Match(log zerolog.Logger, txns []model.Transaction, keyword string) []model.Transaction {
	matched := []model.Transaction{}
	if keyword == "" {
		log.Warn().Msg("empty search keyword")
		return matched
	}

	pattern, err := regexp.Compile("(?i)" + keyword)
	if err != nil {
		log.Debug().Err(err).Str("keyword", keyword).Msg("keyword is not a valid pattern, matching literally")
		pattern = regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
	}

	log.Info().Str("keyword", keyword).Msg("searching transactions")
	for i, t := range txns {
		if t.Description == "" {
			log.Warn().Int("index", i).Msg("skipping transaction without description")
			continue
		}
		if pattern.MatchString(t.Description) {
			matched = append(matched, t)
		}
	}

	log.Info().Str("keyword", keyword).Int("matches", len(matched)).Msg("search finished")
	return matched
}

// ByKeyword runs Match and renders the result as an indented JSON array.
func ByKeyword(log zerolog.Logger, txns []model.Transaction, keyword string) string {
	out, err := Render(Match(log, txns, keyword))
	if err != nil {
		log.Error().Err(err).Msg("rendering search result")
		return "[]"
	}
	return out
}

// Render encodes transactions as an indented JSON array without HTML
// escaping.
func Render(txns []model.Transaction) (string, error) {
	if txns == nil {
		txns = []model.Transaction{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(txns); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
