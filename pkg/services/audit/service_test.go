package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/leak-finder/pkg/models/domain"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) ModelName() string {
	return "mock-model"
}

func (m *mockProvider) GenerateReport(ctx context.Context, prompt string) ([]byte, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type staticDueDates map[string]string

func (d staticDueDates) LeakDueDates(context.Context) (map[string]string, error) {
	return d, nil
}

func validReport() string {
	return `{
		"leaks": [{
			"resourceId": "vm-db-replica",
			"resourceName": "vm-db-replica",
			"type": "VM",
			"region": "europe-west1",
			"monthlyWaste": 310.5,
			"finding": "Replica idle for 30 days",
			"inDepthAnalysis": "CPU has averaged under one percent for a month. The replica serves no read traffic. Keeping it warm doubles storage and compute spend for this tier.",
			"recommendation": "Decommission the replica and rely on snapshots.",
			"taggingSuggestion": "lifecycle-tier=decommission",
			"carbonImpactKg": 12.4
		}],
		"categoryBreakdown": [
			{"category": "VM", "totalWaste": 310.5},
			{"category": "WAREHOUSE", "totalWaste": 999}
		],
		"summary": "One idle replica drives the bulk of detected waste. Decommissioning it recovers the full amount immediately.",
		"totalPotentialSavings": 310.5,
		"carbonSavingsKg": 12.4,
		"forecastedAnnualWaste": 3726,
		"wasteScore": 88
	}`
}

func TestService_Run_ValidReport(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GenerateReport", mock.Anything, mock.Anything).Return([]byte(validReport()), nil)

	svc := NewService(provider, staticDueDates{"vm-db-replica": "2024-09-15"})
	result, err := svc.Run(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, result.Leaks, 1)
	leak := result.Leaks[0]
	assert.Equal(t, domain.LeakOpen, leak.Status, "status defaults to OPEN")
	assert.Equal(t, domain.SeverityInfo, leak.Severity, "severity defaults to INFO")
	assert.Equal(t, "2024-09-15", leak.DueDate, "persisted due date carried onto the fresh report")

	assert.Len(t, result.CategoryBreakdown, 7, "breakdown is dense over all resource types")
	assert.Equal(t, 310.5, result.CategoryBreakdown[domain.ResourceVM])
	assert.Equal(t, 0.0, result.CategoryBreakdown[domain.ResourceGKE])
	assert.NotContains(t, result.CategoryBreakdown, domain.ResourceType("WAREHOUSE"))
}

func TestService_Run_ProviderFailure(t *testing.T) {
	provider := &mockProvider{}
	provider.On("GenerateReport", mock.Anything, mock.Anything).Return(nil, errors.New("upstream 429"))

	svc := NewService(provider, nil)
	_, err := svc.Run(context.Background(), nil)

	var aerr *domain.AnalysisError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "mock-model", aerr.Provider)
}

func TestService_Run_MalformedReports(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "not json",
			body:    "I cannot help with that.",
			wantMsg: "decode report",
		},
		{
			name:    "missing summary",
			body:    `{"leaks":[],"categoryBreakdown":[],"totalPotentialSavings":0,"wasteScore":50}`,
			wantMsg: "missing summary",
		},
		{
			name:    "missing totalPotentialSavings",
			body:    `{"leaks":[],"categoryBreakdown":[],"summary":"ok","wasteScore":50}`,
			wantMsg: "missing totalPotentialSavings",
		},
		{
			name:    "waste score out of range",
			body:    `{"leaks":[],"categoryBreakdown":[],"summary":"ok","totalPotentialSavings":0,"wasteScore":140}`,
			wantMsg: "out of range",
		},
		{
			name: "leak missing region",
			body: `{"leaks":[{"resourceId":"a","resourceName":"a","type":"VM","monthlyWaste":1,"finding":"f","inDepthAnalysis":"d","recommendation":"r","taggingSuggestion":"t"}],
				"categoryBreakdown":[],"summary":"ok","totalPotentialSavings":0,"wasteScore":50}`,
			wantMsg: "missing region",
		},
		{
			name: "negative monthly waste",
			body: `{"leaks":[{"resourceId":"a","resourceName":"a","type":"VM","region":"us-central1","monthlyWaste":-5,"finding":"f","inDepthAnalysis":"d","recommendation":"r","taggingSuggestion":"t"}],
				"categoryBreakdown":[],"summary":"ok","totalPotentialSavings":0,"wasteScore":50}`,
			wantMsg: "negative monthlyWaste",
		},
		{
			name: "unknown severity",
			body: `{"leaks":[{"resourceId":"a","resourceName":"a","type":"VM","region":"us-central1","monthlyWaste":5,"finding":"f","inDepthAnalysis":"d","recommendation":"r","taggingSuggestion":"t","severity":"URGENT"}],
				"categoryBreakdown":[],"summary":"ok","totalPotentialSavings":0,"wasteScore":50}`,
			wantMsg: "unknown severity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{}
			provider.On("GenerateReport", mock.Anything, mock.Anything).Return([]byte(tt.body), nil)

			svc := NewService(provider, nil)
			_, err := svc.Run(context.Background(), nil)

			var aerr *domain.AnalysisError
			require.ErrorAs(t, err, &aerr)
			assert.Contains(t, aerr.Error(), tt.wantMsg)
		})
	}
}

func TestBuildPrompt_InlinesInventory(t *testing.T) {
	resources := []domain.CloudResource{
		{ID: "vm-prod-01", Name: "vm-prod-01", Type: domain.ResourceVM, Region: "us-central1"},
	}
	prompt, err := BuildPrompt(resources)
	require.NoError(t, err)
	assert.Contains(t, prompt, `"vm-prod-01"`)
	assert.Contains(t, prompt, "Cost Leakage")
	assert.Contains(t, prompt, "taggingSuggestion")
	assert.Contains(t, prompt, fmt.Sprintf("%q", "us-central1"))
}
