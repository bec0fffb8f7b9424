package domain

import "time"

type AuditFrequency string

const (
	AuditOff     AuditFrequency = "OFF"
	AuditDaily   AuditFrequency = "DAILY"
	AuditWeekly  AuditFrequency = "WEEKLY"
	AuditMonthly AuditFrequency = "MONTHLY"
)

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "FREE"
	TierPro        SubscriptionTier = "PRO"
	TierEnterprise SubscriptionTier = "ENTERPRISE"
)

type User struct {
	ID       string
	Name     string
	Email    string
	Avatar   string
	Role     string
	Tier     SubscriptionTier
	Provider string
}

// UserPatch carries the fields a caller wants to override when logging in
// or updating the profile. Empty strings mean "use the current/default
// value".
type UserPatch struct {
	ID       string
	Name     string
	Email    string
	Avatar   string
	Role     string
	Provider string
}

type UserSettings struct {
	AuditFrequency       AuditFrequency
	NotificationsEnabled bool
	Tier                 SubscriptionTier
	PreferredCurrency    string
}

type IdentityProfile struct {
	Organization  string
	MFAEnabled    bool
	LastLogin     time.Time
	IPAddress     string
	RecoveryEmail string
}

// IdentityPatch is a partial identity update; string fields left empty and
// a nil MFAEnabled keep the stored value.
type IdentityPatch struct {
	Organization  string
	MFAEnabled    *bool
	IPAddress     string
	RecoveryEmail string
}
