package dto

// ConvertRequest carries the text to substitute and the mode flag selecting
// the Greek substitutes for capital O and X.
type ConvertRequest struct {
	Text       string `json:"text"`
	UseGreekOX bool   `json:"useGreekOX"`
}

// ConvertResponse is returned for an allowed conversion. Remaining is null
// for premium accounts.
type ConvertResponse struct {
	Result    string `json:"result"`
	Remaining *int   `json:"remaining"`
	Premium   bool   `json:"premium"`
}

// Denial kinds for ConvertDeniedResponse.
const (
	DenialLengthExceeded    = "LengthExceeded"
	DenialDailyLimitReached = "DailyLimitReached"
)

// ConvertDeniedResponse is the body of a 403 from the convert endpoint.
type ConvertDeniedResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
