package domain

// Friend is a user the caller compares results with
type Friend struct {
	ID        int64
	Name      string
	AvatarURL string
}

// FriendResult is a friend's progress on the caller's current puzzle
type FriendResult struct {
	ID         int64
	Name       string
	AvatarURL  string
	NumGuesses int
	Finished   bool
	Solved     *bool
}

// FriendResults groups friend results for one puzzle
type FriendResults struct {
	PuzzleNumber int64
	PuzzleDate   Date
	Results      []FriendResult
}
