package adapters

import (
	"maps"
	"time"

	"github.com/de-tools/leak-finder/pkg/models/api"
	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/de-tools/leak-finder/pkg/models/store"
)

// parseTime converts a stored ISO timestamp, tolerating the empty string
// and malformed values as the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func MapResourceStoreToDomain(r store.CloudResource) domain.CloudResource {
	return domain.CloudResource{
		ID:          r.ID,
		Name:        r.Name,
		Type:        domain.ResourceType(r.Type),
		Region:      r.Region,
		MonthlyCost: r.MonthlyCost,
		Status:      domain.ResourceStatus(r.Status),
		Tags:        maps.Clone(r.Tags),
		Metrics: domain.ResourceMetrics{
			CPUAvg:          r.Metrics.CPUAvg,
			MemoryAvg:       r.Metrics.MemoryAvg,
			LastAccessed:    r.Metrics.LastAccessed,
			RequestCount:    r.Metrics.RequestCount,
			StorageSizeGB:   r.Metrics.StorageSizeGB,
			NodeCount:       r.Metrics.NodeCount,
			PodDensity:      r.Metrics.PodDensity,
			InvocationCount: r.Metrics.InvocationCount,
		},
	}
}

func MapResourceDomainToStore(r domain.CloudResource) store.CloudResource {
	return store.CloudResource{
		ID:          r.ID,
		Name:        r.Name,
		Type:        string(r.Type),
		Region:      r.Region,
		MonthlyCost: r.MonthlyCost,
		Status:      string(r.Status),
		Tags:        maps.Clone(r.Tags),
		Metrics: store.ResourceMetrics{
			CPUAvg:          r.Metrics.CPUAvg,
			MemoryAvg:       r.Metrics.MemoryAvg,
			LastAccessed:    r.Metrics.LastAccessed,
			RequestCount:    r.Metrics.RequestCount,
			StorageSizeGB:   r.Metrics.StorageSizeGB,
			NodeCount:       r.Metrics.NodeCount,
			PodDensity:      r.Metrics.PodDensity,
			InvocationCount: r.Metrics.InvocationCount,
		},
	}
}

func MapResourceDomainToApi(r domain.CloudResource) api.CloudResource {
	return api.CloudResource{
		ID:          r.ID,
		Name:        r.Name,
		Type:        string(r.Type),
		Region:      r.Region,
		MonthlyCost: r.MonthlyCost,
		Status:      string(r.Status),
		Tags:        maps.Clone(r.Tags),
		Metrics: api.ResourceMetrics{
			CPUAvg:          r.Metrics.CPUAvg,
			MemoryAvg:       r.Metrics.MemoryAvg,
			LastAccessed:    r.Metrics.LastAccessed,
			RequestCount:    r.Metrics.RequestCount,
			StorageSizeGB:   r.Metrics.StorageSizeGB,
			NodeCount:       r.Metrics.NodeCount,
			PodDensity:      r.Metrics.PodDensity,
			InvocationCount: r.Metrics.InvocationCount,
		},
	}
}

func MapResourcesStoreToDomain(rs []store.CloudResource) []domain.CloudResource {
	out := make([]domain.CloudResource, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapResourceStoreToDomain(r))
	}
	return out
}

func MapResourcesDomainToStore(rs []domain.CloudResource) []store.CloudResource {
	out := make([]store.CloudResource, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapResourceDomainToStore(r))
	}
	return out
}

func MapResourcesDomainToApi(rs []domain.CloudResource) []api.CloudResource {
	out := make([]api.CloudResource, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapResourceDomainToApi(r))
	}
	return out
}
