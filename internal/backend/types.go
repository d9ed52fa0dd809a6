package backend

import (
	"time"

	dom "Motiv/internal/domain"
)

type envelope[T any] struct {
	OK    bool   `json:"ok"`
	Data  T      `json:"data"`
	Error string `json:"error"`
}

type goalJSON struct {
	GoalID                int64  `json:"goal_id"`
	Goal                  string `json:"goal"`
	Description           string `json:"description"`
	Value                 int64  `json:"value"`
	Deadline              *int64 `json:"deadline"`
	PhoneNumber           string `json:"phone_number"`
	CreatorFirstName      string `json:"creator_first_name"`
	CreatorLastName       string `json:"creator_last_name"`
	Email                 string `json:"email"`
	SupervisorPhoneNumber string `json:"supervisor_phone_number"`
	SupervisorEmail       string `json:"supervisor_email"`
	SupervisorDescription string `json:"supervisor_description"`
	Status                int    `json:"status"`
	DonatedTo             string `json:"donated_to"`
	Done                  bool   `json:"done"`
	CreatedAt             *int64 `json:"created_at"`
	SupervisedAt          *int64 `json:"supervised_at"`
}

func (g goalJSON) toDomain() dom.Goal {
	return dom.Goal{
		ID:              g.GoalID,
		Title:           g.Goal,
		Description:     g.Description,
		StakeMinor:      g.Value,
		Deadline:        unixPtr(g.Deadline),
		CreatorName:     dom.User{FirstName: g.CreatorFirstName, LastName: g.CreatorLastName}.FullName(),
		CreatorPhone:    g.PhoneNumber,
		CreatorEmail:    g.Email,
		SupervisorPhone: g.SupervisorPhoneNumber,
		SupervisorEmail: g.SupervisorEmail,
		SupervisorNote:  g.SupervisorDescription,
		SupervisedAt:    unixPtr(g.SupervisedAt),
		Done:            g.Done,
		DonatedTo:       g.DonatedTo,
		CreatedAt:       unixPtr(g.CreatedAt),
	}
}

// unixPtr maps absent and zero timestamps to nil.
func unixPtr(v *int64) *time.Time {
	if v == nil || *v <= 0 {
		return nil
	}
	t := time.Unix(*v, 0).UTC()
	return &t
}

type goalsPage struct {
	Page  int        `json:"page"`
	Goals []goalJSON `json:"goals"`
}

type userJSON struct {
	UserID      int64  `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (u userJSON) toDomain() dom.User {
	return dom.User{
		ID:        u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.PhoneNumber,
		Email:     u.Email,
	}
}

type configJSON struct {
	GoalCreationFee         int64 `json:"goal_creation_fee"`
	MinGoalHours            int64 `json:"min_goal_hours"`
	MaxGoalHours            int64 `json:"max_goal_hours"`
	MinGoalValue            int64 `json:"min_goal_value"`
	MaxGoalValue            int64 `json:"max_goal_value"`
	OTPTimeout              int64 `json:"otp_timeout"`
	SupervisionTimeoutHours int64 `json:"supervision_timeout_hours"`
}

func (c configJSON) toDomain() dom.Rules {
	return dom.Rules{
		SupervisionTimeoutHours: c.SupervisionTimeoutHours,
		MinGoalHours:            c.MinGoalHours,
		MaxGoalHours:            c.MaxGoalHours,
		MinGoalValue:            c.MinGoalValue,
		MaxGoalValue:            c.MaxGoalValue,
		GoalCreationFee:         c.GoalCreationFee,
		OTPTimeout:              c.OTPTimeout,
	}
}

type paymentJSON struct {
	GoalID      int64  `json:"goal_id"`
	Amount      int64  `json:"amount"`
	PGPName     string `json:"pgp_name"`
	TracingCode string `json:"tracing_code"`
}

type charityJSON struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Website     string `json:"website"`
}

// AuthRequest signs in with either an OTP code or a password.
type AuthRequest struct {
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code,omitempty"`
	Password    string `json:"password,omitempty"`
}

// AuthResult is a fresh backend token.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	RefreshAt   time.Time
	IsNewUser   bool
}

type authJSON struct {
	AccessToken  string `json:"access_token"`
	AccessExpire int64  `json:"access_expire"`
	RefreshAfter int64  `json:"refresh_after"`
	IsNewUser    bool   `json:"is_new_user"`
}

// CodeSent describes a dispatched OTP.
type CodeSent struct {
	PhoneNumber string `json:"phone_number"`
	SentAt      int64  `json:"sent_at"`
	Timeout     int64  `json:"timeout"`
}

// ProfileUpdate carries editable profile fields. Empty fields are omitted.
type ProfileUpdate struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// NewGoal is the payload of setGoal. Value is in minor units and Deadline in
// Unix seconds.
type NewGoal struct {
	Goal                  string `json:"goal"`
	Description           string `json:"description,omitempty"`
	Value                 int64  `json:"value"`
	Deadline              int64  `json:"deadline"`
	SupervisorPhoneNumber string `json:"supervisor_phone_number"`
}
