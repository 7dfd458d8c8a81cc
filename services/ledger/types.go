package ledger

type Status string

const (
	StatusChanged         Status = "changed"
	StatusUnchanged       Status = "unchanged"
	StatusUnauthenticated Status = "unauthenticated"
)

// Outcome reports what a ledger update did. Value is the stored value after
// the update. For candy totals Previous is Value minus the delta applied.
type Outcome struct {
	Status   Status `json:"status"`
	Previous int64  `json:"previous"`
	Value    int64  `json:"value"`
}

func (o Outcome) Changed() bool {
	return o.Status == StatusChanged
}
