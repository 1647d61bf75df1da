package domain

// VoteOutcome reports the result of a delete vote. When the tally reaches
// quorum the meeting is destroyed and Deleted is true; otherwise
// VotesRemaining says how many distinct voters are still needed.
type VoteOutcome struct {
	Deleted        bool `json:"deleted"`
	Tally          int  `json:"-"`
	VotesRemaining int  `json:"votesRemaining,omitempty"`
}
