package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/de-tools/leak-finder/pkg/metrics"
	"github.com/de-tools/leak-finder/pkg/models/domain"
)

// DueDates exposes the persisted per-resource remediation deadlines so a
// fresh report can carry them forward.
type DueDates interface {
	LeakDueDates(ctx context.Context) (map[string]string, error)
}

type Service struct {
	provider Provider
	dueDates DueDates
}

func NewService(provider Provider, dueDates DueDates) *Service {
	return &Service{provider: provider, dueDates: dueDates}
}

// Wire shapes of the model report. Required numeric fields are pointers
// so a missing field is distinguishable from a zero.
type rawLeak struct {
	ResourceID        string   `json:"resourceId"`
	ResourceName      string   `json:"resourceName"`
	Type              string   `json:"type"`
	Region            string   `json:"region"`
	MonthlyWaste      *float64 `json:"monthlyWaste"`
	Finding           string   `json:"finding"`
	InDepthAnalysis   string   `json:"inDepthAnalysis"`
	Recommendation    string   `json:"recommendation"`
	Severity          string   `json:"severity"`
	Status            string   `json:"status"`
	CarbonImpactKg    float64  `json:"carbonImpactKg"`
	TaggingSuggestion string   `json:"taggingSuggestion"`
	Assignee          string   `json:"assignee"`
}

type rawBreakdown struct {
	Category   string  `json:"category"`
	TotalWaste float64 `json:"totalWaste"`
}

type rawReport struct {
	Leaks                 []rawLeak      `json:"leaks"`
	CategoryBreakdown     []rawBreakdown `json:"categoryBreakdown"`
	Summary               string         `json:"summary"`
	TotalPotentialSavings *float64       `json:"totalPotentialSavings"`
	CarbonSavingsKg       float64        `json:"carbonSavingsKg"`
	ForecastedAnnualWaste float64        `json:"forecastedAnnualWaste"`
	WasteScore            *float64       `json:"wasteScore"`
}

// Run audits the given inventory. Provider and report-shape failures come
// back as a domain.AnalysisError; the caller decides whether to persist
// anything about the run.
func (s *Service) Run(ctx context.Context, resources []domain.CloudResource) (domain.AuditResult, error) {
	started := time.Now()
	result, err := s.run(ctx, resources)
	metrics.AuditDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.AuditRunsTotal.WithLabelValues("error").Inc()
		return domain.AuditResult{}, err
	}
	metrics.AuditRunsTotal.WithLabelValues("success").Inc()
	metrics.LeaksDetected.Set(float64(len(result.Leaks)))
	metrics.PotentialSavings.Set(result.TotalPotentialSavings)
	return result, nil
}

func (s *Service) run(ctx context.Context, resources []domain.CloudResource) (domain.AuditResult, error) {
	prompt, err := BuildPrompt(resources)
	if err != nil {
		return domain.AuditResult{}, err
	}

	body, err := s.provider.GenerateReport(ctx, prompt)
	if err != nil {
		return domain.AuditResult{}, &domain.AnalysisError{Provider: s.provider.ModelName(), Err: err}
	}

	var raw rawReport
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.AuditResult{}, &domain.AnalysisError{
			Provider: s.provider.ModelName(),
			Err:      fmt.Errorf("decode report: %w", err),
		}
	}

	result, err := s.validate(raw)
	if err != nil {
		return domain.AuditResult{}, &domain.AnalysisError{Provider: s.provider.ModelName(), Err: err}
	}

	if s.dueDates != nil {
		dueDates, err := s.dueDates.LeakDueDates(ctx)
		if err != nil {
			return domain.AuditResult{}, err
		}
		for i := range result.Leaks {
			if date, ok := dueDates[result.Leaks[i].ResourceID]; ok {
				result.Leaks[i].DueDate = date
			}
		}
	}

	return result, nil
}

// validate enforces the report contract and fills schema defaults. The
// category breakdown always comes out dense over every resource type,
// unknown categories dropped.
func (s *Service) validate(raw rawReport) (domain.AuditResult, error) {
	switch {
	case raw.Summary == "":
		return domain.AuditResult{}, fmt.Errorf("report missing summary")
	case raw.TotalPotentialSavings == nil:
		return domain.AuditResult{}, fmt.Errorf("report missing totalPotentialSavings")
	case raw.WasteScore == nil:
		return domain.AuditResult{}, fmt.Errorf("report missing wasteScore")
	case *raw.WasteScore < 0 || *raw.WasteScore > 100:
		return domain.AuditResult{}, fmt.Errorf("wasteScore %v out of range", *raw.WasteScore)
	}

	leaks := make([]domain.CostLeak, 0, len(raw.Leaks))
	for i, l := range raw.Leaks {
		switch {
		case l.ResourceID == "":
			return domain.AuditResult{}, fmt.Errorf("leak %d: missing resourceId", i)
		case l.ResourceName == "":
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): missing resourceName", i, l.ResourceID)
		case l.Type == "":
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): missing type", i, l.ResourceID)
		case l.Region == "":
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): missing region", i, l.ResourceID)
		case l.MonthlyWaste == nil:
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): missing monthlyWaste", i, l.ResourceID)
		case *l.MonthlyWaste < 0:
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): negative monthlyWaste", i, l.ResourceID)
		case l.Finding == "":
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): missing finding", i, l.ResourceID)
		case l.InDepthAnalysis == "":
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): missing inDepthAnalysis", i, l.ResourceID)
		case l.Recommendation == "":
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): missing recommendation", i, l.ResourceID)
		case l.TaggingSuggestion == "":
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): missing taggingSuggestion", i, l.ResourceID)
		case l.CarbonImpactKg < 0:
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): negative carbonImpactKg", i, l.ResourceID)
		}

		severity := domain.Severity(l.Severity)
		switch severity {
		case domain.SeverityCritical, domain.SeverityWarning, domain.SeverityInfo:
		case "":
			severity = domain.SeverityInfo
		default:
			return domain.AuditResult{}, fmt.Errorf("leak %d (%s): unknown severity %q", i, l.ResourceID, l.Severity)
		}
		status := domain.LeakStatus(l.Status)
		if status == "" {
			status = domain.LeakOpen
		}

		leaks = append(leaks, domain.CostLeak{
			ResourceID:        l.ResourceID,
			ResourceName:      l.ResourceName,
			Type:              domain.ResourceType(l.Type),
			Region:            l.Region,
			MonthlyWaste:      *l.MonthlyWaste,
			Finding:           l.Finding,
			InDepthAnalysis:   l.InDepthAnalysis,
			Recommendation:    l.Recommendation,
			Severity:          severity,
			Status:            status,
			CarbonImpactKg:    l.CarbonImpactKg,
			TaggingSuggestion: l.TaggingSuggestion,
			Assignee:          l.Assignee,
		})
	}

	breakdown := make(map[domain.ResourceType]float64, len(domain.ResourceTypes()))
	for _, rt := range domain.ResourceTypes() {
		breakdown[rt] = 0
	}
	for _, item := range raw.CategoryBreakdown {
		if _, ok := breakdown[domain.ResourceType(item.Category)]; ok {
			breakdown[domain.ResourceType(item.Category)] = item.TotalWaste
		}
	}

	return domain.AuditResult{
		Leaks:                 leaks,
		Summary:               raw.Summary,
		TotalPotentialSavings: *raw.TotalPotentialSavings,
		CarbonSavingsKg:       raw.CarbonSavingsKg,
		ForecastedAnnualWaste: raw.ForecastedAnnualWaste,
		WasteScore:            *raw.WasteScore,
		CategoryBreakdown:     breakdown,
	}, nil
}
