// Package audit turns a resource inventory into a validated waste report
// by way of a pluggable model provider.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/de-tools/leak-finder/pkg/adapters"
	"github.com/de-tools/leak-finder/pkg/models/domain"
)

// Provider is a model backend able to answer an audit prompt with a raw
// JSON report. Implementations must return the report body only, with any
// transport framing already stripped.
type Provider interface {
	ModelName() string
	GenerateReport(ctx context.Context, prompt string) ([]byte, error)
}

// BuildPrompt renders the audit instruction with the inventory inlined as
// JSON. The evaluative vectors and the output contract are part of the
// prompt even for providers that also receive ResponseSchema, since not
// every backend honors a schema.
func BuildPrompt(resources []domain.CloudResource) (string, error) {
	inventory, err := json.Marshal(adapters.MapResourcesDomainToApi(resources))
	if err != nil {
		return "", fmt.Errorf("encode inventory: %w", err)
	}

	return fmt.Sprintf(`Act as an Enterprise FinOps Strategic Lead. Perform an exhaustive multi-dimensional audit of these cloud assets for "Cost Leakage":
  %s

  Critical Evaluative Vectors:
  1. GKE (Kubernetes): Identify node pools with sub-15%% pod density, non-preemptible usage in development environments, or expensive machine series (e.g. A2-series) for low-throughput tasks.
  2. Serverless (Functions): Flag cold/stale functions with high memory reservation (> 512MB) but near-zero monthly invocations.
  3. VM & Storage Tiering: Detect persistent disks unattached for > 48h, orphaned snapshots from deleted instances, and regional replicas with < 1%% CPU utilization over a 30-day window.
  4. Metadata Compliance: Flag assets missing mission-critical "cost-center", "project-owner", or "lifecycle-tier" tagging requirements.
  5. Carbon ROI: Calculate regional energy intensity variance (e.g., us-central1 vs europe-west1) and CO2 impact of wasted cycles.

  For EVERY leak identified, you MUST provide:
  - Specific "taggingSuggestion"
  - The resource's "region"
  - A 3-4 sentence forensic "inDepthAnalysis" explaining the economic and technical root cause.

  Output STRICT JSON format:
  - leaks: Array of {resourceId, resourceName, type, region, monthlyWaste, finding, inDepthAnalysis, recommendation, severity (CRITICAL|WARNING|INFO), status ('OPEN'), carbonImpactKg, taggingSuggestion, assignee}.
  - categoryBreakdown: Array of {category: ResourceType, totalWaste: number}.
  - summary: A 2-sentence executive strategic brief suitable for CTO review.
  - wasteScore: (0-100) 100 being perfectly lean architecture.
  - totalPotentialSavings, carbonSavingsKg, forecastedAnnualWaste.`, inventory), nil
}

// ResponseSchema is the structured-output schema for providers that
// support constrained decoding, in the Gemini REST dialect.
func ResponseSchema() map[string]interface{} {
	str := map[string]interface{}{"type": "STRING"}
	num := map[string]interface{}{"type": "NUMBER"}

	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"leaks": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"resourceId":        str,
						"resourceName":      str,
						"type":              str,
						"region":            str,
						"monthlyWaste":      num,
						"finding":           str,
						"inDepthAnalysis":   str,
						"recommendation":    str,
						"status":            str,
						"carbonImpactKg":    num,
						"severity":          map[string]interface{}{"type": "STRING", "enum": []string{"CRITICAL", "WARNING", "INFO"}},
						"taggingSuggestion": str,
						"assignee":          str,
					},
					"required": []string{
						"resourceId", "resourceName", "type", "region", "monthlyWaste",
						"finding", "inDepthAnalysis", "recommendation", "taggingSuggestion",
					},
				},
			},
			"categoryBreakdown": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"category":   str,
						"totalWaste": num,
					},
					"required": []string{"category", "totalWaste"},
				},
			},
			"summary":               str,
			"totalPotentialSavings": num,
			"carbonSavingsKg":       num,
			"forecastedAnnualWaste": num,
			"wasteScore":            num,
		},
		"required": []string{"leaks", "categoryBreakdown", "summary", "totalPotentialSavings", "wasteScore"},
	}
}
