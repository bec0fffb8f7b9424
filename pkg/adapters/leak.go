package adapters

import (
	"github.com/de-tools/leak-finder/pkg/models/api"
	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/de-tools/leak-finder/pkg/models/store"
)

func MapLeakStoreToDomain(l store.CostLeak) domain.CostLeak {
	return domain.CostLeak{
		ResourceID:        l.ResourceID,
		ResourceName:      l.ResourceName,
		Type:              domain.ResourceType(l.Type),
		Region:            l.Region,
		MonthlyWaste:      l.MonthlyWaste,
		Finding:           l.Finding,
		InDepthAnalysis:   l.InDepthAnalysis,
		Recommendation:    l.Recommendation,
		Severity:          domain.Severity(l.Severity),
		Status:            domain.LeakStatus(l.Status),
		Assignee:          l.Assignee,
		CarbonImpactKg:    l.CarbonImpactKg,
		TaggingSuggestion: l.TaggingSuggestion,
		DueDate:           l.DueDate,
	}
}

func MapLeakDomainToStore(l domain.CostLeak) store.CostLeak {
	return store.CostLeak{
		ResourceID:        l.ResourceID,
		ResourceName:      l.ResourceName,
		Type:              string(l.Type),
		Region:            l.Region,
		MonthlyWaste:      l.MonthlyWaste,
		Finding:           l.Finding,
		InDepthAnalysis:   l.InDepthAnalysis,
		Recommendation:    l.Recommendation,
		Severity:          string(l.Severity),
		Status:            string(l.Status),
		Assignee:          l.Assignee,
		CarbonImpactKg:    l.CarbonImpactKg,
		TaggingSuggestion: l.TaggingSuggestion,
		DueDate:           l.DueDate,
	}
}

func MapLeakDomainToApi(l domain.CostLeak) api.CostLeak {
	return api.CostLeak{
		ResourceID:        l.ResourceID,
		ResourceName:      l.ResourceName,
		Type:              string(l.Type),
		Region:            l.Region,
		MonthlyWaste:      l.MonthlyWaste,
		Finding:           l.Finding,
		InDepthAnalysis:   l.InDepthAnalysis,
		Recommendation:    l.Recommendation,
		Severity:          string(l.Severity),
		Status:            string(l.Status),
		Assignee:          l.Assignee,
		CarbonImpactKg:    l.CarbonImpactKg,
		TaggingSuggestion: l.TaggingSuggestion,
		DueDate:           l.DueDate,
	}
}

func MapLeakApiToDomain(l api.CostLeak) domain.CostLeak {
	return domain.CostLeak{
		ResourceID:        l.ResourceID,
		ResourceName:      l.ResourceName,
		Type:              domain.ResourceType(l.Type),
		Region:            l.Region,
		MonthlyWaste:      l.MonthlyWaste,
		Finding:           l.Finding,
		InDepthAnalysis:   l.InDepthAnalysis,
		Recommendation:    l.Recommendation,
		Severity:          domain.Severity(l.Severity),
		Status:            domain.LeakStatus(l.Status),
		Assignee:          l.Assignee,
		CarbonImpactKg:    l.CarbonImpactKg,
		TaggingSuggestion: l.TaggingSuggestion,
		DueDate:           l.DueDate,
	}
}

func MapLeaksDomainToApi(ls []domain.CostLeak) []api.CostLeak {
	out := make([]api.CostLeak, 0, len(ls))
	for _, l := range ls {
		out = append(out, MapLeakDomainToApi(l))
	}
	return out
}

func MapAuditResultDomainToApi(r domain.AuditResult) api.AuditResult {
	breakdown := make(map[string]float64, len(r.CategoryBreakdown))
	for k, v := range r.CategoryBreakdown {
		breakdown[string(k)] = v
	}
	return api.AuditResult{
		Leaks:                 MapLeaksDomainToApi(r.Leaks),
		Summary:               r.Summary,
		TotalPotentialSavings: r.TotalPotentialSavings,
		CarbonSavingsKg:       r.CarbonSavingsKg,
		ForecastedAnnualWaste: r.ForecastedAnnualWaste,
		WasteScore:            r.WasteScore,
		CategoryBreakdown:     breakdown,
	}
}

func MapAuditRecordStoreToDomain(r store.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		ID:           r.ID,
		Timestamp:    parseTime(r.Timestamp),
		SavingsFound: r.SavingsFound,
		CarbonSaved:  r.CarbonSaved,
		LeakCount:    r.LeakCount,
	}
}

func MapAuditRecordDomainToStore(r domain.AuditRecord) store.AuditRecord {
	return store.AuditRecord{
		ID:           r.ID,
		Timestamp:    formatTime(r.Timestamp),
		SavingsFound: r.SavingsFound,
		CarbonSaved:  r.CarbonSaved,
		LeakCount:    r.LeakCount,
	}
}

func MapAuditRecordDomainToApi(r domain.AuditRecord) api.AuditRecord {
	return api.AuditRecord{
		ID:           r.ID,
		Timestamp:    formatTime(r.Timestamp),
		SavingsFound: r.SavingsFound,
		CarbonSaved:  r.CarbonSaved,
		LeakCount:    r.LeakCount,
	}
}
