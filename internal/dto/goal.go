package dto

import "time"

// CreateGoalRequest is the JSON body for POST /goals. Deadline is a local
// (Solar Hijri) date like "1404/08/01" and Amount is in toman.
type CreateGoalRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=120"`
	Description     string `json:"description" binding:"max=1000"`
	Deadline        string `json:"deadline" binding:"required"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	SupervisorPhone string `json:"supervisor_phone" binding:"required,ir_mobile"`
}

type CreateGoalResponse struct {
	PaymentURL string `json:"payment_url"`
}

// SuperviseRequest is the supervisor's decision. Done is a pointer so that
// an explicit false is distinguishable from a missing field.
type SuperviseRequest struct {
	Done *bool  `json:"done" binding:"required"`
	Note string `json:"note" binding:"max=1000"`
}

type SortRequest struct {
	Key string `json:"key" binding:"required,oneof=title amount deadline status"`
}

type SortResponse struct {
	List      string `json:"list"`
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

type StatusResponse struct {
	State              string `json:"state"`
	Label              string `json:"label"`
	Supervision        string `json:"supervision"`
	SupervisionLabel   string `json:"supervision_label,omitempty"`
	Tooltip            string `json:"tooltip"`
	SupervisionTooltip string `json:"supervision_tooltip,omitempty"`
	RowClass           string `json:"row_class"`
	Priority           int    `json:"priority"`
	RemainingDays      int64  `json:"remaining_days"`
}

type WindowResponse struct {
	State    string     `json:"state"`
	OpensAt  *time.Time `json:"opens_at"`
	ClosesAt *time.Time `json:"closes_at"`
}

type GoalResponse struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Amount          int64          `json:"amount"`
	AmountFormatted string         `json:"amount_formatted"`
	Deadline        *time.Time     `json:"deadline"`
	DeadlineLocal   string         `json:"deadline_local"`
	CreatorName     string         `json:"creator_name"`
	CreatorPhone    string         `json:"creator_phone"`
	SupervisorPhone string         `json:"supervisor_phone"`
	SupervisorNote  string         `json:"supervisor_note,omitempty"`
	SupervisedAt    *time.Time     `json:"supervised_at"`
	Done            bool           `json:"done"`
	DonatedTo       string         `json:"donated_to,omitempty"`
	CreatedAt       *time.Time     `json:"created_at"`
	Status          StatusResponse `json:"status"`
	Window          WindowResponse `json:"window"`
	Role            string         `json:"role"`
}

type ListGoalsResponse struct {
	List  string         `json:"list"`
	Page  int            `json:"page"`
	Sort  SortResponse   `json:"sort"`
	Items []GoalResponse `json:"items"`
}

type DeadlineBoundsResponse struct {
	First    string `json:"first"`
	Last     string `json:"last"`
	MinHours int64  `json:"min_hours"`
	MaxHours int64  `json:"max_hours"`
}

type PaymentResponse struct {
	GoalID          int64  `json:"goal_id"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	Gateway         string `json:"gateway"`
	TracingCode     string `json:"tracing_code"`
}

// RulesResponse carries the goal rules. Values are in toman.
type RulesResponse struct {
	SupervisionTimeoutHours int64 `json:"supervision_timeout_hours"`
	MinGoalHours            int64 `json:"min_goal_hours"`
	MaxGoalHours            int64 `json:"max_goal_hours"`
	MinGoalValue            int64 `json:"min_goal_value"`
	MaxGoalValue            int64 `json:"max_goal_value"`
	GoalCreationFee         int64 `json:"goal_creation_fee"`
	OTPTimeout              int64 `json:"otp_timeout"`
}

type CharityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website"`
}

type ListCharitiesResponse struct {
	Items []CharityResponse `json:"items"`
}
