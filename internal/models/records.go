package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mood represents how the user felt at check-in time
type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodGood      Mood = "good"
	MoodOkay      Mood = "okay"
	MoodLow       Mood = "low"
	MoodStressed  Mood = "stressed"
)

// IsNegative reports whether the mood counts as negative for
// pressure detection
func (m Mood) IsNegative() bool {
	return m == MoodLow || m == MoodStressed
}

// ExpenseCategory represents the spending category of an expense
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryEducation     ExpenseCategory = "education"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryHealth        ExpenseCategory = "health"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryOther         ExpenseCategory = "other"
)

// IsDiscretionary reports whether spending in this category counts
// toward the stress-spending pattern
func (c ExpenseCategory) IsDiscretionary() bool {
	return c == CategoryEntertainment || c == CategoryShopping
}

// StudySession represents a single logged study session
type StudySession struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Subject       string    `json:"subject"`
	DurationHours float64   `json:"duration_hours"`
	FocusLevel    int       `json:"focus_level"`
	Notes         string    `json:"notes,omitempty"`
}

// HealthCheckIn represents a single daily wellness check-in
type HealthCheckIn struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	SleepHours   float64   `json:"sleep_hours"`
	SleepQuality int       `json:"sleep_quality"`
	StressLevel  int       `json:"stress_level"`
	Mood         Mood      `json:"mood"`
	Notes        string    `json:"notes,omitempty"`
}

// Expense represents a single logged expense
type Expense struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Amount    decimal.Decimal `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	Notes     string          `json:"notes"`
}

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleBot  ChatRole = "bot"
)

// ChatMessage represents one message in the mentor conversation history
type ChatMessage struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
}

// CreateStudySessionRequest represents the request to log a study session
type CreateStudySessionRequest struct {
	Subject       string  `json:"subject" binding:"required"`
	DurationHours float64 `json:"duration_hours" binding:"required,gte=0.5,lte=12"`
	FocusLevel    int     `json:"focus_level" binding:"required,gte=1,lte=10"`
	Notes         string  `json:"notes"`
}

// CreateHealthCheckInRequest represents the request to log a health check-in
type CreateHealthCheckInRequest struct {
	SleepHours   float64 `json:"sleep_hours" binding:"gte=0,lte=16"`
	SleepQuality int     `json:"sleep_quality" binding:"required,gte=1,lte=10"`
	StressLevel  int     `json:"stress_level" binding:"required,gte=1,lte=10"`
	Mood         Mood    `json:"mood" binding:"required,oneof=excellent good okay low stressed"`
	Notes        string  `json:"notes"`
}

// CreateExpenseRequest represents the request to log an expense
type CreateExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category ExpenseCategory `json:"category" binding:"required,oneof=food transport education entertainment health shopping other"`
	Notes    string          `json:"notes" binding:"required"`
}

// ChatRequest represents an incoming message to the mentor
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
