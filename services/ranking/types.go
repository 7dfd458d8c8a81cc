package ranking

type Entry struct {
	Rank         int    `json:"rank"`
	UserID       string `json:"userId"`
	Nickname     string `json:"nickname"`
	CandiesTotal int64  `json:"candiesTotal"`
	BestLevel    int64  `json:"bestLevel,omitempty"`
}
