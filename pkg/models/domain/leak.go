package domain

import "time"

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

type LeakStatus string

const (
	LeakOpen     LeakStatus = "OPEN"
	LeakAssigned LeakStatus = "ASSIGNED"
	LeakSnoozed  LeakStatus = "SNOOZED"
	LeakResolved LeakStatus = "RESOLVED"
)

// CostLeak is one detected instance of avoidable spend tied to a resource.
// ResourceID is the natural key linking it back to the inventory; no
// referential integrity is enforced against the current resource list.
type CostLeak struct {
	ResourceID        string
	ResourceName      string
	Type              ResourceType
	Region            string
	MonthlyWaste      float64 // USD/month
	Finding           string
	InDepthAnalysis   string
	Recommendation    string
	Severity          Severity
	Status            LeakStatus
	Assignee          string
	CarbonImpactKg    float64
	TaggingSuggestion string
	DueDate           string // ISO date, optional
}

// AuditResult is the normalized outcome of one analysis run. It is built
// fresh on every invocation and never persisted; only the aggregate numbers
// flow into the audit history.
type AuditResult struct {
	Leaks                 []CostLeak
	Summary               string
	TotalPotentialSavings float64
	CarbonSavingsKg       float64
	ForecastedAnnualWaste float64
	WasteScore            float64 // 0-100, 100 being perfectly lean
	CategoryBreakdown     map[ResourceType]float64
}

// AuditRecord is one entry in the append-only audit history.
type AuditRecord struct {
	ID           string
	Timestamp    time.Time
	SavingsFound float64
	CarbonSaved  float64
	LeakCount    int
}
