package domain

import "time"

type PolicyStatus string

const (
	PolicyCompliant    PolicyStatus = "COMPLIANT"
	PolicyNonCompliant PolicyStatus = "NON_COMPLIANT"
	PolicyPending      PolicyStatus = "PENDING"
)

type GovernancePolicy struct {
	ID          string
	Title       string
	Description string
	Status      PolicyStatus
	LastChecked time.Time
}

// TaggingStandard is a governance rule describing a metadata key resources
// should carry.
type TaggingStandard struct {
	Key           string
	Required      bool
	AllowedValues []string
	Description   string
}

type AutoKillAction string

const (
	ActionTerminate AutoKillAction = "TERMINATE"
	ActionDownscale AutoKillAction = "DOWNSCALE"
	ActionNotify    AutoKillAction = "NOTIFY"
)

type AutoKillPolicy struct {
	ResourceType      ResourceType
	Enabled           bool
	CPUThreshold      *float64
	IdleDaysThreshold int
	Action            AutoKillAction
}

type AutoKillConfig struct {
	GlobalEnabled bool
	DryRunMode    bool
	Policies      []AutoKillPolicy
}

type APIKey struct {
	ID       string
	Key      string
	Created  string
	LastUsed string
}

type ComplianceItem struct {
	Task string
	Done bool
}

type ComplianceStatus struct {
	Framework string
	Score     int
	Items     []ComplianceItem
}
