package domain

type ResourceType string

const (
	ResourceVM      ResourceType = "VM"
	ResourceStorage ResourceType = "STORAGE"
	ResourceAPI     ResourceType = "API"
	ResourceSQL     ResourceType = "SQL"
	ResourceLB      ResourceType = "LB"
	ResourceGKE     ResourceType = "GKE"
	ResourceFunc    ResourceType = "FUNC"
)

// ResourceTypes returns every known resource type in a stable order.
// Category breakdowns are keyed by this full set.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceVM,
		ResourceStorage,
		ResourceAPI,
		ResourceSQL,
		ResourceLB,
		ResourceGKE,
		ResourceFunc,
	}
}

type ResourceStatus string

const (
	StatusActive ResourceStatus = "ACTIVE"
	StatusIdle   ResourceStatus = "IDLE"
	StatusUnused ResourceStatus = "UNUSED"
)

// ResourceMetrics carries the sparse utilization signals attached to a
// resource. Fields are pointers so that "zero" and "not reported" stay
// distinguishable; a zero invocation count is itself a finding.
type ResourceMetrics struct {
	CPUAvg          *float64
	MemoryAvg       *float64
	LastAccessed    *string
	RequestCount    *int64
	StorageSizeGB   *float64
	NodeCount       *int64
	PodDensity      *float64
	InvocationCount *int64
}

type CloudResource struct {
	ID          string
	Name        string
	Type        ResourceType
	Region      string
	MonthlyCost float64
	Status      ResourceStatus
	Tags        map[string]string
	Metrics     ResourceMetrics
}
