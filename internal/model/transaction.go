package model

// Transaction is one normalized statement row. Field order matches the JSON
// output order.
type Transaction struct {
	OperationDate        string `json:"operation_date"`
	PaymentDate          string `json:"payment_date"`
	State                string `json:"state"`
	LastDigits           string `json:"last_digits"` // empty when the row has no card
	AmountTransaction    Amount `json:"amount_transaction"`
	Currency             string `json:"currency"`
	AmountTransactionRUB Amount `json:"amount_transaction_rub"`
	AccountCurrency      string `json:"account_currency"`
	Cashback             Amount `json:"cashback"`
	Category             string `json:"category"`
	TransactionCode      string `json:"transaction_code"` // MCC
	Benefit              int    `json:"benefit"`
	AmountToPiggy        Amount `json:"amount_to_piggy"`
	Description          string `json:"description"`
	AmountRounded        Amount `json:"amount_rounded"`
}

// OtherCards labels the bucket for transactions without a card number.
const OtherCards = "Другие карты"

// CardStat is the spend and cashback rollup for one card.
type CardStat struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// CurrencyRate is a currency quote. A nil Rate means the lookup failed.
type CurrencyRate struct {
	Currency string   `json:"currency"`
	Rate     *float64 `json:"rate"`
}

// StockPrice is a stock quote. A nil Price means the lookup failed.
type StockPrice struct {
	Stock string   `json:"stock"`
	Price *float64 `json:"price"`
}
