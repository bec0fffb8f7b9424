package api

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
	Tier     string `json:"tier"`
	Provider string `json:"provider,omitempty"`
}

type LoginRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role,omitempty"`
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

type IdentityPatch struct {
	Organization  string `json:"organization,omitempty"`
	MFAEnabled    *bool  `json:"mfaEnabled,omitempty"`
	IPAddress     string `json:"ipAddress,omitempty"`
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

type GovernancePolicy struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	LastChecked string `json:"lastChecked"`
}

type PolicyUploadRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
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

type SubscriptionRequest struct {
	Tier string `json:"tier"`
}

type OnboardingState struct {
	Complete bool `json:"complete"`
}

type FeedbackRequest struct {
	Rating    int    `json:"rating"`
	Category  string `json:"category"`
	Comment   string `json:"comment"`
	UserEmail string `json:"userEmail"`
}

type LogEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}
