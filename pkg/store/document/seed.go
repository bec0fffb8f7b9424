package document

import (
	"fmt"
	"math"
	"time"

	"github.com/de-tools/leak-finder/pkg/models/store"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
func str(v string) *string   { return &v }

// Seed builds the fully populated first-run document: sample inventory,
// a 12-point audit history following a cyclical waste pattern, and the
// governance/billing/compliance sub-documents the portal expects to find.
func Seed(now time.Time) *store.Document {
	const month = 30 * 24 * time.Hour

	history := make([]store.AuditRecord, 0, 12)
	for i := 12; i > 0; i-- {
		ts := now.Add(-time.Duration(i) * month)
		// Growth and optimization cycles.
		variance := 1 + math.Cos(float64(i)/1.5)*0.4
		history = append(history, store.AuditRecord{
			ID:           fmt.Sprintf("aud-hist-%d", i),
			Timestamp:    ts.UTC().Format(time.RFC3339),
			SavingsFound: math.Floor(920 * variance),
			CarbonSaved:  math.Floor(45 * variance),
			LeakCount:    int(math.Floor(14*variance)) + 2,
		})
	}

	nowISO := now.UTC().Format(time.RFC3339)

	return &store.Document{
		Version:          store.SchemaVersion,
		User:             nil,
		Resources:        seedResources(),
		SnoozedResources: map[string]string{},
		LeakDueDates:     map[string]string{},
		RemediationBin:   []store.CostLeak{},
		Settings: store.UserSettings{
			AuditFrequency:       "DAILY",
			NotificationsEnabled: true,
			Tier:                 "ENTERPRISE",
			PreferredCurrency:    "USD",
		},
		Identity: store.IdentityProfile{
			Organization:  "Enterprise Cloud Solutions Global (FinOps Div)",
			MFAEnabled:    true,
			LastLogin:     nowISO,
			IPAddress:     "10.0.94.212",
			RecoveryEmail: "strategic-ops@enterprise-global.io",
		},
		Billing: store.BillingPortal{
			PaymentMethod:   store.PaymentMethod{Brand: "Corporate Amex", Last4: "9902"},
			NextBillingDate: "2024-12-15",
			Invoices: []store.Invoice{
				{ID: "INV-ENT-PLAT-2023-11", Date: "2023-11-01", Amount: 999.00, Status: "PAID"},
				{ID: "INV-ENT-PLAT-2023-10", Date: "2023-10-01", Amount: 999.00, Status: "PAID"},
				{ID: "INV-ENT-PLAT-2023-09", Date: "2023-09-01", Amount: 999.00, Status: "PAID"},
			},
		},
		Notifications: []store.Notification{
			{
				ID:        "n1",
				Title:     "Deep Architectural Audit Succeeded",
				Message:   `Project "Global-Operations-Core" analyzed. $24.2k potential MoM savings identified across multi-region edge.`,
				Timestamp: nowISO,
				Read:      false,
				Type:      "SUCCESS",
			},
			{
				ID:        "n2",
				Title:     "Governance Violation Detected",
				Message:   `Region "asia-northeast1" showing critical tagging non-compliance in auto-scaled node pools.`,
				Timestamp: nowISO,
				Read:      false,
				Type:      "ALERT",
			},
		},
		TaggingStandards: []store.TaggingStandard{
			{
				Key:           "cost-center",
				Required:      true,
				AllowedValues: []string{"R&D", "STRAT", "CORE", "MARKETING"},
				Description:   "Primary financial asset allocation key.",
			},
			{
				Key:           "lifecycle-tier",
				Required:      true,
				AllowedValues: []string{"production", "staging", "dev", "sandbox"},
				Description:   "Resource runtime isolation level.",
			},
			{
				Key:         "project-owner",
				Required:    true,
				Description: "Direct accountability employee ID.",
			},
		},
		AutoKill: store.AutoKillConfig{
			GlobalEnabled: false,
			DryRunMode:    true,
			Policies: []store.AutoKillPolicy{
				{ResourceType: "VM", Enabled: true, CPUThreshold: f64(2), IdleDaysThreshold: 3, Action: "TERMINATE"},
				{ResourceType: "GKE", Enabled: true, IdleDaysThreshold: 15, Action: "DOWNSCALE"},
				{ResourceType: "STORAGE", Enabled: true, IdleDaysThreshold: 90, Action: "NOTIFY"},
			},
		},
		AuditHistory: history,
		Governance: []store.GovernancePolicy{
			{
				ID:          "POL-PLAT-01",
				Title:       "Compute Quota Restriction (High-Performance)",
				Description: "Prevents A2/G2 instance classes without Director-level signature.",
				Status:      "COMPLIANT",
				LastChecked: nowISO,
			},
			{
				ID:          "POL-PLAT-02",
				Title:       "Orphaned Volume Enforcement",
				Description: "Automatic snapshot and delete for disks unattached for > 14 days.",
				Status:      "NON_COMPLIANT",
				LastChecked: nowISO,
			},
		},
		APIKeys: []store.APIKey{
			{
				ID:       "AK-PLAT-MASTER-1",
				Key:      "lf_platinum_v4_prod_secure_token_master_001_restricted",
				Created:  "2023-10-15",
				LastUsed: "1 minute ago",
			},
		},
		Compliance: []store.ComplianceStatus{
			{
				Framework: "SOC2 Type II - Platinum",
				Score:     96,
				Items: []store.ComplianceItem{
					{Task: "Bi-factor Identity Enforcement", Done: true},
					{Task: "Immutable Remediation Audit Trail", Done: true},
					{Task: "Quarterly Strategic Disclosure", Done: true},
				},
			},
			{
				Framework: "FedRAMP High / IL5",
				Score:     64,
				Items: []store.ComplianceItem{
					{Task: "Cross-region risk isolation protocol", Done: true},
					{Task: "Autonomous remediation evidence logging", Done: false},
				},
			},
		},
	}
}

func seedResources() []store.CloudResource {
	return []store.CloudResource{
		{
			ID:          "vm-prod-01",
			Name:        "web-frontend-v1",
			Type:        "VM",
			Region:      "us-central1",
			MonthlyCost: 45.00,
			Status:      "ACTIVE",
			Metrics:     store.ResourceMetrics{CPUAvg: f64(12), MemoryAvg: f64(45)},
		},
		{
			ID:          "gke-cluster-dev",
			Name:        "dev-autopilot-cluster",
			Type:        "GKE",
			Region:      "us-east1",
			MonthlyCost: 210.00,
			Status:      "IDLE",
			Metrics:     store.ResourceMetrics{NodeCount: i64(5), PodDensity: f64(0.12), CPUAvg: f64(3)},
		},
		{
			ID:          "func-image-proc",
			Name:        "image-processor-old",
			Type:        "FUNC",
			Region:      "europe-west2",
			MonthlyCost: 15.00,
			Status:      "UNUSED",
			Metrics:     store.ResourceMetrics{InvocationCount: i64(0), LastAccessed: str("2023-11-01")},
		},
		{
			ID:          "vm-db-replica",
			Name:        "db-replica-unused",
			Type:        "VM",
			Region:      "europe-west1",
			MonthlyCost: 180.00,
			Status:      "IDLE",
			Metrics:     store.ResourceMetrics{CPUAvg: f64(0.5), MemoryAvg: f64(10)},
		},
		{
			ID:          "bucket-logs-2022",
			Name:        "archive-logs-2022",
			Type:        "STORAGE",
			Region:      "us-east1",
			MonthlyCost: 12.50,
			Status:      "UNUSED",
			Metrics:     store.ResourceMetrics{StorageSizeGB: f64(500), LastAccessed: str("2023-01-15")},
		},
		{
			ID:          "api-unused-01",
			Name:        "Vision API (Legacy)",
			Type:        "API",
			Region:      "global",
			MonthlyCost: 5.00,
			Status:      "UNUSED",
			Metrics:     store.ResourceMetrics{RequestCount: i64(0)},
		},
		{
			ID:          "sql-dev-instance",
			Name:        "dev-postgresql-huge",
			Type:        "SQL",
			Region:      "asia-east1",
			MonthlyCost: 320.00,
			Status:      "IDLE",
			Metrics:     store.ResourceMetrics{CPUAvg: f64(1.2), MemoryAvg: f64(5)},
		},
	}
}
