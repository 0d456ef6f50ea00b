package stats

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/cashview/internal/model"
)

// TopN is the number of transactions shown on the dashboard.
const TopN = 5

// UniqueCards returns the distinct card numbers in first-seen order.
func UniqueCards(log zerolog.Logger, txns []model.Transaction) []string {
	if len(txns) == 0 {
		log.Warn().Msg("empty transaction list")
		return []string{}
	}

	seen := make(map[string]bool)
	cards := []string{}
	for _, t := range txns {
		if seen[t.LastDigits] {
			continue
		}
		seen[t.LastDigits] = true
		cards = append(cards, t.LastDigits)
	}

	log.Info().Int("cards", len(cards)).Msg("unique cards found")
	return cards
}

// CardStats sums spend and cashback per card. Transactions without a card
// go to the model.OtherCards bucket. Unparseable amounts count as zero.
func CardStats(log zerolog.Logger, txns []model.Transaction) []model.CardStat {
	if len(txns) == 0 {
		log.Warn().Msg("empty transaction list")
		return []model.CardStat{}
	}

	type totals struct{ spent, cashback decimal.Decimal }
	cards := UniqueCards(log, txns)
	byCard := make(map[string]*totals, len(cards))
	for _, c := range cards {
		byCard[c] = &totals{}
	}

	for i, t := range txns {
		acc := byCard[t.LastDigits]
		acc.spent = acc.spent.Add(amountOrZero(log, i, "amount_transaction_rub", t.AmountTransactionRUB))
		acc.cashback = acc.cashback.Add(amountOrZero(log, i, "cashback", t.Cashback))
	}

	result := make([]model.CardStat, 0, len(cards))
	for _, c := range cards {
		label := c
		if label == "" {
			label = model.OtherCards
		}
		result = append(result, model.CardStat{
			LastDigits: label,
			TotalSpent: byCard[c].spent.Round(2).InexactFloat64(),
			Cashback:   byCard[c].cashback.Round(2).InexactFloat64(),
		})
	}

	log.Info().Int("cards", len(result)).Msg("card stats computed")
	return result
}

func amountOrZero(log zerolog.Logger, idx int, field string, a model.Amount) decimal.Decimal {
	d, err := a.Decimal()
	if err != nil {
		log.Warn().Err(err).Int("index", idx).Str("field", field).Msg("treating unparseable amount as zero")
		return decimal.Zero
	}
	return d
}

// TopTransactions returns the n transactions with the largest
// amount_transaction_rub, descending. Equal amounts keep input order. If any
// amount is not numeric the result is empty.
func TopTransactions(log zerolog.Logger, txns []model.Transaction, n int) []model.Transaction {
	if len(txns) == 0 {
		log.Warn().Msg("empty transaction list")
		return []model.Transaction{}
	}

	type keyed struct {
		amount decimal.Decimal
		txn    model.Transaction
	}
	ranked := make([]keyed, len(txns))
	for i, t := range txns {
		d, err := t.AmountTransactionRUB.Decimal()
		if err != nil {
			log.Error().Err(err).Int("index", i).Msg("top transactions failed")
			return []model.Transaction{}
		}
		ranked[i] = keyed{amount: d, txn: t}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].amount.GreaterThan(ranked[j].amount)
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	top := make([]model.Transaction, n)
	for i := range top {
		top[i] = ranked[i].txn
	}

	log.Info().Int("count", len(top)).Msg("top transactions found")
	return top
}
