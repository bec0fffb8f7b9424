package api

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

type UpdateTagsRequest struct {
	Tags map[string]string `json:"tags"`
}

type SnoozeRequest struct {
	Hours int `json:"hours"`
}

type SnoozedResources struct {
	ResourceIDs []string `json:"resourceIds"`
}

type DueDateRequest struct {
	DueDate string `json:"dueDate"`
}
