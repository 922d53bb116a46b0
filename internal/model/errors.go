package model

// ExtractionError means no parseable JSON block was found in the response text.
type ExtractionError struct {
	Msg string
	Err error
}

func (e *ExtractionError) Error() string { return e.Msg }
func (e *ExtractionError) Unwrap() error { return e.Err }

// DataError means too little usable data survived normalization or merging.
// Msg is shown to the user as is.
type DataError struct {
	Msg string
}

func (e *DataError) Error() string { return e.Msg }

// User-facing messages.
const (
	MsgNoStockData      = "Failed to retrieve valid stock data."
	MsgInsufficient     = "Insufficient data found for one or both stocks."
	MsgNotEnoughOverlap = "Not enough overlapping price data found to calculate correlation."
	MsgNoJSON           = "Could not parse JSON from response."
	MsgBadComparison    = "Failed to parse comparison data."
)
