package domain

import "time"

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "PAID"
	InvoicePending InvoiceStatus = "PENDING"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

type Invoice struct {
	ID     string
	Date   string
	Amount float64
	Status InvoiceStatus
}

type PaymentMethod struct {
	Brand string
	Last4 string
}

type BillingPortal struct {
	PaymentMethod   PaymentMethod
	NextBillingDate string
	Invoices        []Invoice
}

type NotificationType string

const (
	NotifyAlert   NotificationType = "ALERT"
	NotifyInfo    NotificationType = "INFO"
	NotifySuccess NotificationType = "SUCCESS"
)

type Notification struct {
	ID        string
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
	Type      NotificationType
}

type LogLevel string

const (
	LogInfo    LogLevel = "INFO"
	LogSuccess LogLevel = "SUCCESS"
	LogWarn    LogLevel = "WARN"
	LogError   LogLevel = "ERROR"
)

// LogEntry is a line in the in-memory activity feed. It is presentation
// telemetry, never persisted.
type LogEntry struct {
	ID        string
	Timestamp time.Time
	Level     LogLevel
	Message   string
}

type FeedbackCategory string

const (
	FeedbackBug     FeedbackCategory = "BUG"
	FeedbackIdea    FeedbackCategory = "IDEA"
	FeedbackSupport FeedbackCategory = "SUPPORT"
	FeedbackGeneral FeedbackCategory = "GENERAL"
)

type FeedbackSubmission struct {
	Rating    int
	Category  FeedbackCategory
	Comment   string
	Timestamp time.Time
	UserEmail string
}
