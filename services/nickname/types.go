package nickname

type Status string

const (
	StatusAccepted     Status = "accepted"
	StatusAlreadyTaken Status = "alreadyTaken"
	StatusInvalidInput Status = "invalidInput"
)

type ClaimOutcome struct {
	Status   Status `json:"status"`
	Nickname string `json:"nickname"`
	Reason   string `json:"reason,omitempty"`
}
