package adapters

import (
	"slices"

	"github.com/de-tools/leak-finder/pkg/models/api"
	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/de-tools/leak-finder/pkg/models/store"
)

func MapUserStoreToDomain(u *store.User) *domain.User {
	if u == nil {
		return nil
	}
	return &domain.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Role:     u.Role,
		Tier:     domain.SubscriptionTier(u.Tier),
		Provider: u.Provider,
	}
}

func MapUserDomainToStore(u *domain.User) *store.User {
	if u == nil {
		return nil
	}
	return &store.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Role:     u.Role,
		Tier:     string(u.Tier),
		Provider: u.Provider,
	}
}

func MapUserDomainToApi(u domain.User) api.User {
	return api.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Role:     u.Role,
		Tier:     string(u.Tier),
		Provider: u.Provider,
	}
}

func MapSettingsStoreToDomain(s store.UserSettings) domain.UserSettings {
	return domain.UserSettings{
		AuditFrequency:       domain.AuditFrequency(s.AuditFrequency),
		NotificationsEnabled: s.NotificationsEnabled,
		Tier:                 domain.SubscriptionTier(s.Tier),
		PreferredCurrency:    s.PreferredCurrency,
	}
}

func MapSettingsDomainToStore(s domain.UserSettings) store.UserSettings {
	return store.UserSettings{
		AuditFrequency:       string(s.AuditFrequency),
		NotificationsEnabled: s.NotificationsEnabled,
		Tier:                 string(s.Tier),
		PreferredCurrency:    s.PreferredCurrency,
	}
}

func MapSettingsDomainToApi(s domain.UserSettings) api.UserSettings {
	return api.UserSettings{
		AuditFrequency:       string(s.AuditFrequency),
		NotificationsEnabled: s.NotificationsEnabled,
		Tier:                 string(s.Tier),
		PreferredCurrency:    s.PreferredCurrency,
	}
}

func MapSettingsApiToDomain(s api.UserSettings) domain.UserSettings {
	return domain.UserSettings{
		AuditFrequency:       domain.AuditFrequency(s.AuditFrequency),
		NotificationsEnabled: s.NotificationsEnabled,
		Tier:                 domain.SubscriptionTier(s.Tier),
		PreferredCurrency:    s.PreferredCurrency,
	}
}

func MapIdentityStoreToDomain(p store.IdentityProfile) domain.IdentityProfile {
	return domain.IdentityProfile{
		Organization:  p.Organization,
		MFAEnabled:    p.MFAEnabled,
		LastLogin:     parseTime(p.LastLogin),
		IPAddress:     p.IPAddress,
		RecoveryEmail: p.RecoveryEmail,
	}
}

func MapIdentityDomainToStore(p domain.IdentityProfile) store.IdentityProfile {
	return store.IdentityProfile{
		Organization:  p.Organization,
		MFAEnabled:    p.MFAEnabled,
		LastLogin:     formatTime(p.LastLogin),
		IPAddress:     p.IPAddress,
		RecoveryEmail: p.RecoveryEmail,
	}
}

func MapIdentityDomainToApi(p domain.IdentityProfile) api.IdentityProfile {
	return api.IdentityProfile{
		Organization:  p.Organization,
		MFAEnabled:    p.MFAEnabled,
		LastLogin:     formatTime(p.LastLogin),
		IPAddress:     p.IPAddress,
		RecoveryEmail: p.RecoveryEmail,
	}
}

func MapBillingStoreToDomain(b store.BillingPortal) domain.BillingPortal {
	invoices := make([]domain.Invoice, 0, len(b.Invoices))
	for _, inv := range b.Invoices {
		invoices = append(invoices, domain.Invoice{
			ID:     inv.ID,
			Date:   inv.Date,
			Amount: inv.Amount,
			Status: domain.InvoiceStatus(inv.Status),
		})
	}
	return domain.BillingPortal{
		PaymentMethod:   domain.PaymentMethod{Brand: b.PaymentMethod.Brand, Last4: b.PaymentMethod.Last4},
		NextBillingDate: b.NextBillingDate,
		Invoices:        invoices,
	}
}

func MapBillingDomainToStore(b domain.BillingPortal) store.BillingPortal {
	invoices := make([]store.Invoice, 0, len(b.Invoices))
	for _, inv := range b.Invoices {
		invoices = append(invoices, store.Invoice{
			ID:     inv.ID,
			Date:   inv.Date,
			Amount: inv.Amount,
			Status: string(inv.Status),
		})
	}
	return store.BillingPortal{
		PaymentMethod:   store.PaymentMethod{Brand: b.PaymentMethod.Brand, Last4: b.PaymentMethod.Last4},
		NextBillingDate: b.NextBillingDate,
		Invoices:        invoices,
	}
}

func MapBillingDomainToApi(b domain.BillingPortal) api.BillingPortal {
	invoices := make([]api.Invoice, 0, len(b.Invoices))
	for _, inv := range b.Invoices {
		invoices = append(invoices, api.Invoice{
			ID:     inv.ID,
			Date:   inv.Date,
			Amount: inv.Amount,
			Status: string(inv.Status),
		})
	}
	return api.BillingPortal{
		PaymentMethod:   api.PaymentMethod{Brand: b.PaymentMethod.Brand, Last4: b.PaymentMethod.Last4},
		NextBillingDate: b.NextBillingDate,
		Invoices:        invoices,
	}
}

func MapNotificationStoreToDomain(n store.Notification) domain.Notification {
	return domain.Notification{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: parseTime(n.Timestamp),
		Read:      n.Read,
		Type:      domain.NotificationType(n.Type),
	}
}

func MapNotificationDomainToStore(n domain.Notification) store.Notification {
	return store.Notification{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: formatTime(n.Timestamp),
		Read:      n.Read,
		Type:      string(n.Type),
	}
}

func MapNotificationDomainToApi(n domain.Notification) api.Notification {
	return api.Notification{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Timestamp: formatTime(n.Timestamp),
		Read:      n.Read,
		Type:      string(n.Type),
	}
}

func MapTaggingStandardStoreToDomain(t store.TaggingStandard) domain.TaggingStandard {
	return domain.TaggingStandard{
		Key:           t.Key,
		Required:      t.Required,
		AllowedValues: slices.Clone(t.AllowedValues),
		Description:   t.Description,
	}
}

func MapTaggingStandardDomainToStore(t domain.TaggingStandard) store.TaggingStandard {
	return store.TaggingStandard{
		Key:           t.Key,
		Required:      t.Required,
		AllowedValues: slices.Clone(t.AllowedValues),
		Description:   t.Description,
	}
}

func MapTaggingStandardDomainToApi(t domain.TaggingStandard) api.TaggingStandard {
	return api.TaggingStandard{
		Key:           t.Key,
		Required:      t.Required,
		AllowedValues: slices.Clone(t.AllowedValues),
		Description:   t.Description,
	}
}

func MapTaggingStandardApiToDomain(t api.TaggingStandard) domain.TaggingStandard {
	return domain.TaggingStandard{
		Key:           t.Key,
		Required:      t.Required,
		AllowedValues: slices.Clone(t.AllowedValues),
		Description:   t.Description,
	}
}

func MapAutoKillStoreToDomain(c store.AutoKillConfig) domain.AutoKillConfig {
	policies := make([]domain.AutoKillPolicy, 0, len(c.Policies))
	for _, p := range c.Policies {
		policies = append(policies, domain.AutoKillPolicy{
			ResourceType:      domain.ResourceType(p.ResourceType),
			Enabled:           p.Enabled,
			CPUThreshold:      p.CPUThreshold,
			IdleDaysThreshold: p.IdleDaysThreshold,
			Action:            domain.AutoKillAction(p.Action),
		})
	}
	return domain.AutoKillConfig{
		GlobalEnabled: c.GlobalEnabled,
		DryRunMode:    c.DryRunMode,
		Policies:      policies,
	}
}

func MapAutoKillDomainToStore(c domain.AutoKillConfig) store.AutoKillConfig {
	policies := make([]store.AutoKillPolicy, 0, len(c.Policies))
	for _, p := range c.Policies {
		policies = append(policies, store.AutoKillPolicy{
			ResourceType:      string(p.ResourceType),
			Enabled:           p.Enabled,
			CPUThreshold:      p.CPUThreshold,
			IdleDaysThreshold: p.IdleDaysThreshold,
			Action:            string(p.Action),
		})
	}
	return store.AutoKillConfig{
		GlobalEnabled: c.GlobalEnabled,
		DryRunMode:    c.DryRunMode,
		Policies:      policies,
	}
}

func MapAutoKillDomainToApi(c domain.AutoKillConfig) api.AutoKillConfig {
	policies := make([]api.AutoKillPolicy, 0, len(c.Policies))
	for _, p := range c.Policies {
		policies = append(policies, api.AutoKillPolicy{
			ResourceType:      string(p.ResourceType),
			Enabled:           p.Enabled,
			CPUThreshold:      p.CPUThreshold,
			IdleDaysThreshold: p.IdleDaysThreshold,
			Action:            string(p.Action),
		})
	}
	return api.AutoKillConfig{
		GlobalEnabled: c.GlobalEnabled,
		DryRunMode:    c.DryRunMode,
		Policies:      policies,
	}
}

func MapAutoKillApiToDomain(c api.AutoKillConfig) domain.AutoKillConfig {
	policies := make([]domain.AutoKillPolicy, 0, len(c.Policies))
	for _, p := range c.Policies {
		policies = append(policies, domain.AutoKillPolicy{
			ResourceType:      domain.ResourceType(p.ResourceType),
			Enabled:           p.Enabled,
			CPUThreshold:      p.CPUThreshold,
			IdleDaysThreshold: p.IdleDaysThreshold,
			Action:            domain.AutoKillAction(p.Action),
		})
	}
	return domain.AutoKillConfig{
		GlobalEnabled: c.GlobalEnabled,
		DryRunMode:    c.DryRunMode,
		Policies:      policies,
	}
}

func MapGovernanceStoreToDomain(p store.GovernancePolicy) domain.GovernancePolicy {
	return domain.GovernancePolicy{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      domain.PolicyStatus(p.Status),
		LastChecked: parseTime(p.LastChecked),
	}
}

func MapGovernanceDomainToStore(p domain.GovernancePolicy) store.GovernancePolicy {
	return store.GovernancePolicy{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		LastChecked: formatTime(p.LastChecked),
	}
}

func MapGovernanceDomainToApi(p domain.GovernancePolicy) api.GovernancePolicy {
	return api.GovernancePolicy{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		LastChecked: formatTime(p.LastChecked),
	}
}

func MapAPIKeyStoreToDomain(k store.APIKey) domain.APIKey {
	return domain.APIKey{ID: k.ID, Key: k.Key, Created: k.Created, LastUsed: k.LastUsed}
}

func MapAPIKeyDomainToStore(k domain.APIKey) store.APIKey {
	return store.APIKey{ID: k.ID, Key: k.Key, Created: k.Created, LastUsed: k.LastUsed}
}

func MapAPIKeyDomainToApi(k domain.APIKey) api.APIKey {
	return api.APIKey{ID: k.ID, Key: k.Key, Created: k.Created, LastUsed: k.LastUsed}
}

func MapComplianceStoreToDomain(c store.ComplianceStatus) domain.ComplianceStatus {
	items := make([]domain.ComplianceItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, domain.ComplianceItem{Task: it.Task, Done: it.Done})
	}
	return domain.ComplianceStatus{Framework: c.Framework, Score: c.Score, Items: items}
}

func MapComplianceDomainToStore(c domain.ComplianceStatus) store.ComplianceStatus {
	items := make([]store.ComplianceItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, store.ComplianceItem{Task: it.Task, Done: it.Done})
	}
	return store.ComplianceStatus{Framework: c.Framework, Score: c.Score, Items: items}
}

func MapComplianceDomainToApi(c domain.ComplianceStatus) api.ComplianceStatus {
	items := make([]api.ComplianceItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, api.ComplianceItem{Task: it.Task, Done: it.Done})
	}
	return api.ComplianceStatus{Framework: c.Framework, Score: c.Score, Items: items}
}

func MapLogEntryDomainToApi(e domain.LogEntry) api.LogEntry {
	return api.LogEntry{
		ID:        e.ID,
		Timestamp: formatTime(e.Timestamp),
		Level:     string(e.Level),
		Message:   e.Message,
	}
}
