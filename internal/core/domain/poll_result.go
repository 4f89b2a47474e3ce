package domain

// OptionResult is an option annotated with its vote count and the share of
// the poll's total votes, rounded to a whole percentage.
type OptionResult struct {
	Option
	VoteCount  int `json:"vote_count"`
	Percentage int `json:"percentage"`
}

// PollResults is derived on read, never stored.
type PollResults struct {
	Poll       Poll           `json:"poll"`
	Options    []OptionResult `json:"options"`
	TotalVotes int            `json:"total_votes"`
}
