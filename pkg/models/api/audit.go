package api

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

type AuditResult struct {
	Leaks                 []CostLeak         `json:"leaks"`
	Summary               string             `json:"summary"`
	TotalPotentialSavings float64            `json:"totalPotentialSavings"`
	CarbonSavingsKg       float64            `json:"carbonSavingsKg"`
	ForecastedAnnualWaste float64            `json:"forecastedAnnualWaste"`
	WasteScore            float64            `json:"wasteScore"`
	CategoryBreakdown     map[string]float64 `json:"categoryBreakdown"`
}

type AuditRecord struct {
	ID           string  `json:"id"`
	Timestamp    string  `json:"timestamp"`
	SavingsFound float64 `json:"savingsFound"`
	CarbonSaved  float64 `json:"carbonSaved"`
	LeakCount    int     `json:"leakCount"`
}

type RunAuditRequest struct {
	// ResourceIDs optionally narrows the audit to a subset of the
	// inventory; empty means the whole inventory.
	ResourceIDs []string `json:"resourceIds,omitempty"`
}
