package models

// TimeLayout formats submission timestamps. It is fixed width and always
// UTC so that string order in memdb indexes is chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// Submission is one entry of the page host's in-memory history.
type Submission struct {
	ID      string `json:"id"`
	Time    string `json:"time"`
	Expiry  string `json:"expiry"`
	Outcome string `json:"outcome"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	File    string `json:"file,omitempty"`
	Error   string `json:"error,omitempty"`
}
