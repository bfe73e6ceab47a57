package domain

type SwapStatus string

const (
	SwapStatusPending  SwapStatus = "pending"
	SwapStatusAccepted SwapStatus = "accepted"
	SwapStatusRejected SwapStatus = "rejected"
)

// SwapRequest is a proposal from one user to exchange skills with another.
// The user ids are held by value; deleting a referenced user does not
// cascade, and nothing prevents a request addressed to oneself.
type SwapRequest struct {
	ID         int64
	FromUserID int64
	ToUserID   int64
	Status     SwapStatus
	Message    *string
}
