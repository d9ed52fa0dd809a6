package domain

import "time"

// Goal is a commitment read from the remote backend. The backend owns every
// mutation; this service only reads and derives display state from it.
type Goal struct {
	ID          int64
	Title       string
	Description string
	// StakeMinor is the stake in the backend's minor currency unit (rial).
	StakeMinor int64
	Deadline   *time.Time

	CreatorName  string
	CreatorPhone string
	CreatorEmail string

	SupervisorPhone string
	SupervisorEmail string
	SupervisorNote  string

	// SupervisedAt is set once by the supervisor's decision. Done is
	// meaningful only when SupervisedAt is set.
	SupervisedAt *time.Time
	Done         bool

	DonatedTo string
	CreatedAt *time.Time
}

// Supervised reports whether a decision has been recorded.
func (g Goal) Supervised() bool {
	return g.SupervisedAt != nil
}

// Rules are the server-configured limits for goals. A zero field means the
// backend did not send it.
type Rules struct {
	SupervisionTimeoutHours int64
	MinGoalHours            int64
	MaxGoalHours            int64
	// MinGoalValue and MaxGoalValue are in major units (toman).
	MinGoalValue    int64
	MaxGoalValue    int64
	GoalCreationFee int64
	OTPTimeout      int64
}

// Payment is the status of a stake payment.
type Payment struct {
	GoalID      int64
	AmountMinor int64
	Gateway     string
	TracingCode string
}

// Charity is a donation target for unapproved stakes.
type Charity struct {
	ID          int64
	Name        string
	Description string
	LogoURL     string
	Website     string
}
