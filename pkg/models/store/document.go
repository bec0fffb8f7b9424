// Package store holds the serialized shapes of the persisted document.
// Timestamps are stored as ISO strings; the adapters package converts to
// and from the domain models.
package store

// SchemaVersion is the current persisted document version. The store fails
// fast on a document with a different version instead of guessing at its
// shape.
const SchemaVersion = 1

// Document is the single persisted root object. It is read and re-written
// whole on every mutation; there is no field-level persistence.
type Document struct {
	Version            int                 `json:"version"`
	User               *User               `json:"user"`
	Resources          []CloudResource     `json:"resources"`
	SnoozedResources   map[string]string   `json:"snoozedResources"`
	LeakDueDates       map[string]string   `json:"leakDueDates"`
	RemediationBin     []CostLeak          `json:"remediationBin"`
	OnboardingComplete bool                `json:"onboardingComplete"`
	Settings           UserSettings        `json:"settings"`
	Identity           IdentityProfile     `json:"identity"`
	Billing            BillingPortal       `json:"billing"`
	Notifications      []Notification      `json:"notifications"`
	TaggingStandards   []TaggingStandard   `json:"taggingStandards"`
	AutoKill           AutoKillConfig      `json:"autoKill"`
	AuditHistory       []AuditRecord       `json:"auditHistory"`
	Governance         []GovernancePolicy  `json:"governance"`
	APIKeys            []APIKey            `json:"apiKeys"`
	Compliance         []ComplianceStatus  `json:"compliance"`
}

type ResourceMetrics struct {
	CPUAvg          *float64 `json:"cpuAvg,omitempty"`
	MemoryAvg       *float64 `json:"memoryAvg,omitempty"`
	LastAccessed    *string  `json:"lastAccessed,omitempty"`
	RequestCount    *int64   `json:"requestCount,omitempty"`
	StorageSizeGB   *float64 `json:"storageSizeGb,omitempty"`
	NodeCount       *int64   `json:"nodeCount,omitempty"`
	PodDensity      *float64 `json:"podDensity,omitempty"`
	InvocationCount *int64   `json:"invocationCount,omitempty"`
}

type CloudResource struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Region      string            `json:"region"`
	MonthlyCost float64           `json:"monthlyCost"`
	Status      string            `json:"status"`
	Tags        map[string]string `json:"tags,omitempty"`
	Metrics     ResourceMetrics   `json:"metrics"`
}

type CostLeak struct {
	ResourceID        string  `json:"resourceId"`
	ResourceName      string  `json:"resourceName"`
	Type              string  `json:"type"`
	Region            string  `json:"region"`
	MonthlyWaste      float64 `json:"monthlyWaste"`
	Finding           string  `json:"finding"`
	InDepthAnalysis   string  `json:"inDepthAnalysis,omitempty"`
	Recommendation    string  `json:"recommendation"`
	Severity          string  `json:"severity"`
	Status            string  `json:"status"`
	Assignee          string  `json:"assignee,omitempty"`
	CarbonImpactKg    float64 `json:"carbonImpactKg"`
	TaggingSuggestion string  `json:"taggingSuggestion,omitempty"`
	DueDate           string  `json:"dueDate,omitempty"`
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Tier     string `json:"tier"`
	Provider string `json:"provider,omitempty"`
}

type UserSettings struct {
	AuditFrequency       string `json:"auditFrequency"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Tier                 string `json:"tier"`
	PreferredCurrency    string `json:"preferredCurrency"`
}

type IdentityProfile struct {
	Organization  string `json:"organization"`
	MFAEnabled    bool   `json:"mfaEnabled"`
	LastLogin     string `json:"lastLogin"`
	IPAddress     string `json:"ipAddress"`
	RecoveryEmail string `json:"recoveryEmail,omitempty"`
}

type PaymentMethod struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

type Invoice struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

type BillingPortal struct {
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	NextBillingDate string        `json:"nextBillingDate"`
	Invoices        []Invoice     `json:"invoices"`
}

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
	Type      string `json:"type"`
}

type TaggingStandard struct {
	Key           string   `json:"key"`
	Required      bool     `json:"required"`
	AllowedValues []string `json:"allowedValues,omitempty"`
	Description   string   `json:"description"`
}

type AutoKillPolicy struct {
	ResourceType      string   `json:"resourceType"`
	Enabled           bool     `json:"enabled"`
	CPUThreshold      *float64 `json:"cpuThreshold,omitempty"`
	IdleDaysThreshold int      `json:"idleDaysThreshold"`
	Action            string   `json:"action"`
}

type AutoKillConfig struct {
	GlobalEnabled bool             `json:"globalEnabled"`
	DryRunMode    bool             `json:"dryRunMode"`
	Policies      []AutoKillPolicy `json:"policies"`
}

type AuditRecord struct {
	ID           string  `json:"id"`
	Timestamp    string  `json:"timestamp"`
	SavingsFound float64 `json:"savingsFound"`
	CarbonSaved  float64 `json:"carbonSaved"`
	LeakCount    int     `json:"leakCount"`
}

type GovernancePolicy struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	LastChecked string `json:"lastChecked"`
}

type APIKey struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Created  string `json:"created"`
	LastUsed string `json:"lastUsed"`
}

type ComplianceItem struct {
	Task string `json:"task"`
	Done bool   `json:"done"`
}

type ComplianceStatus struct {
	Framework string           `json:"framework"`
	Score     int              `json:"score"`
	Items     []ComplianceItem `json:"items"`
}
