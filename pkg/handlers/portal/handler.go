package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/leak-finder/pkg/adapters"
	"github.com/de-tools/leak-finder/pkg/models/api"
	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/de-tools/leak-finder/pkg/services/activity"
	"github.com/de-tools/leak-finder/pkg/services/state"
)

// Auditor runs the model-backed waste analysis over an inventory.
type Auditor interface {
	Run(ctx context.Context, resources []domain.CloudResource) (domain.AuditResult, error)
}

type Handler struct {
	state   *state.Service
	auditor Auditor
	feed    *activity.Feed
}

func NewHandler(st *state.Service, auditor Auditor, feed *activity.Feed) *Handler {
	return &Handler{state: st, auditor: auditor, feed: feed}
}

func respondJSON(w http.ResponseWriter, logger *zerolog.Logger, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

// respondError maps the error taxonomy onto HTTP statuses: missing state
// is 404, a broken store is 503, a failed model call is 502, bad caller
// input is 400.
func respondError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var verr *domain.ValidationError
	var aerr *domain.AnalysisError
	var serr *domain.StorageError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &aerr):
		status = http.StatusBadGateway
	case errors.As(err, &serr):
		status = http.StatusServiceUnavailable
	}

	logger.Error().Err(err).Int("status", status).Msg("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, logger, &domain.ValidationError{Field: "body", Reason: "invalid JSON"})
		return false
	}
	return true
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.LoginRequest
	if !decode(w, r, logger, &req) {
		return
	}

	user, err := h.state.Login(ctx, domain.UserPatch{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Role:     req.Role,
		Provider: req.Provider,
	})
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapUserDomainToApi(user))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := h.state.Logout(ctx); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	user, err := h.state.CurrentUser(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	if user == nil {
		respondError(w, logger, domain.ErrNotFound)
		return
	}
	respondJSON(w, logger, adapters.MapUserDomainToApi(*user))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.LoginRequest
	if !decode(w, r, logger, &req) {
		return
	}

	user, err := h.state.UpdateUser(ctx, domain.UserPatch{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Role:     req.Role,
		Provider: req.Provider,
	})
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapUserDomainToApi(user))
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	settings, err := h.state.Settings(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapSettingsDomainToApi(settings))
}

func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.UserSettings
	if !decode(w, r, logger, &req) {
		return
	}
	if err := h.state.SaveSettings(ctx, adapters.MapSettingsApiToDomain(req)); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	complete, err := h.state.OnboardingComplete(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, api.OnboardingState{Complete: complete})
}

func (h *Handler) PutOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.OnboardingState
	if !decode(w, r, logger, &req) {
		return
	}
	if err := h.state.SetOnboardingComplete(ctx, req.Complete); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	resources, err := h.state.Resources(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapResourcesDomainToApi(resources))
}

func (h *Handler) GetResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	resource, err := h.state.Resource(ctx, id)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapResourceDomainToApi(resource))
}

func (h *Handler) UpdateResourceTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	var req api.UpdateTagsRequest
	if !decode(w, r, logger, &req) {
		return
	}
	if err := h.state.UpdateResourceTags(ctx, id, req.Tags); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SnoozeResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	var req api.SnoozeRequest
	if !decode(w, r, logger, &req) {
		return
	}
	if err := h.state.SnoozeResource(ctx, id, req.Hours); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListSnoozedResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	ids, err := h.state.SnoozedResourceIDs(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, api.SnoozedResources{ResourceIDs: ids})
}

func (h *Handler) UpdateLeakDueDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	var req api.DueDateRequest
	if !decode(w, r, logger, &req) {
		return
	}
	if err := h.state.UpdateLeakDueDate(ctx, id, req.DueDate); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListLeakDueDates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	dates, err := h.state.LeakDueDates(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, dates)
}

func (h *Handler) GetRemediationBin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	leaks, err := h.state.RemediationBin(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapLeaksDomainToApi(leaks))
}

func (h *Handler) ResolveLeak(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CostLeak
	if !decode(w, r, logger, &req) {
		return
	}
	if req.ResourceID == "" {
		respondError(w, logger, &domain.ValidationError{Field: "resourceId", Reason: "required"})
		return
	}
	if err := h.state.MarkLeakResolved(ctx, adapters.MapLeakApiToDomain(req)); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearRemediationBin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := h.state.ClearRemediationBin(ctx); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RunAudit executes the analysis over the inventory (or a requested
// subset), appends a history record, and returns the full report.
func (h *Handler) RunAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.RunAuditRequest
	if r.ContentLength > 0 && !decode(w, r, logger, &req) {
		return
	}

	resources, err := h.state.Resources(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	if len(req.ResourceIDs) > 0 {
		wanted := make(map[string]bool, len(req.ResourceIDs))
		for _, id := range req.ResourceIDs {
			wanted[id] = true
		}
		subset := resources[:0]
		for _, res := range resources {
			if wanted[res.ID] {
				subset = append(subset, res)
			}
		}
		resources = subset
	}

	result, err := h.auditor.Run(ctx, resources)
	if err != nil {
		respondError(w, logger, err)
		return
	}

	if err := h.state.RecordAudit(ctx, result.TotalPotentialSavings, result.CarbonSavingsKg, len(result.Leaks)); err != nil {
		respondError(w, logger, err)
		return
	}

	respondJSON(w, logger, adapters.MapAuditResultDomainToApi(result))
}

func (h *Handler) GetAuditHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	records, err := h.state.AuditHistory(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	response := make([]api.AuditRecord, 0, len(records))
	for _, rec := range records {
		response = append(response, adapters.MapAuditRecordDomainToApi(rec))
	}
	respondJSON(w, logger, response)
}

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	notifications, err := h.state.Notifications(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	response := make([]api.Notification, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, adapters.MapNotificationDomainToApi(n))
	}
	respondJSON(w, logger, response)
}

func (h *Handler) ListTaggingStandards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	standards, err := h.state.TaggingStandards(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	response := make([]api.TaggingStandard, 0, len(standards))
	for _, t := range standards {
		response = append(response, adapters.MapTaggingStandardDomainToApi(t))
	}
	respondJSON(w, logger, response)
}

func (h *Handler) AddTaggingStandard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.TaggingStandard
	if !decode(w, r, logger, &req) {
		return
	}
	if req.Key == "" {
		respondError(w, logger, &domain.ValidationError{Field: "key", Reason: "required"})
		return
	}
	if err := h.state.AddTaggingStandard(ctx, adapters.MapTaggingStandardApiToDomain(req)); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) DeleteTaggingStandard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	key := chi.URLParam(r, "key")

	if err := h.state.DeleteTaggingStandard(ctx, key); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) PublishTaggingStandards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req []api.TaggingStandard
	if !decode(w, r, logger, &req) {
		return
	}
	standards := make([]domain.TaggingStandard, 0, len(req))
	for _, t := range req {
		standards = append(standards, adapters.MapTaggingStandardApiToDomain(t))
	}
	if err := h.state.PublishTaggingStandards(ctx, standards); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	identity, err := h.state.Identity(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapIdentityDomainToApi(identity))
}

func (h *Handler) PatchIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.IdentityPatch
	if !decode(w, r, logger, &req) {
		return
	}
	err := h.state.UpdateIdentity(ctx, domain.IdentityPatch{
		Organization:  req.Organization,
		MFAEnabled:    req.MFAEnabled,
		IPAddress:     req.IPAddress,
		RecoveryEmail: req.RecoveryEmail,
	})
	if err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetBilling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	billing, err := h.state.Billing(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapBillingDomainToApi(billing))
}

func (h *Handler) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.PaymentMethod
	if !decode(w, r, logger, &req) {
		return
	}
	if err := h.state.UpdatePaymentMethod(ctx, req.Brand, req.Last4); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetAutoKillConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	cfg, err := h.state.AutoKillConfig(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	respondJSON(w, logger, adapters.MapAutoKillDomainToApi(cfg))
}

func (h *Handler) PutAutoKillConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AutoKillConfig
	if !decode(w, r, logger, &req) {
		return
	}
	if err := h.state.UpdateAutoKillConfig(ctx, adapters.MapAutoKillApiToDomain(req)); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListGovernancePolicies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	policies, err := h.state.Governance(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	response := make([]api.GovernancePolicy, 0, len(policies))
	for _, p := range policies {
		response = append(response, adapters.MapGovernanceDomainToApi(p))
	}
	respondJSON(w, logger, response)
}

func (h *Handler) UploadGovernancePolicy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.PolicyUploadRequest
	if !decode(w, r, logger, &req) {
		return
	}
	if req.Name == "" {
		respondError(w, logger, &domain.ValidationError{Field: "name", Reason: "required"})
		return
	}
	policy, err := h.state.ProcessPolicyUpload(ctx, req.Name, req.Content)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	respondJSON(w, logger, adapters.MapGovernanceDomainToApi(policy))
}

func (h *Handler) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	keys, err := h.state.APIKeys(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	response := make([]api.APIKey, 0, len(keys))
	for _, k := range keys {
		response = append(response, adapters.MapAPIKeyDomainToApi(k))
	}
	respondJSON(w, logger, response)
}

func (h *Handler) GetCompliance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	statuses, err := h.state.Compliance(ctx)
	if err != nil {
		respondError(w, logger, err)
		return
	}
	response := make([]api.ComplianceStatus, 0, len(statuses))
	for _, c := range statuses {
		response = append(response, adapters.MapComplianceDomainToApi(c))
	}
	respondJSON(w, logger, response)
}

func (h *Handler) TriggerComplianceAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := h.state.TriggerComplianceAudit(ctx); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) PutSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.SubscriptionRequest
	if !decode(w, r, logger, &req) {
		return
	}
	tier := domain.SubscriptionTier(req.Tier)
	switch tier {
	case domain.TierFree, domain.TierPro, domain.TierEnterprise:
	default:
		respondError(w, logger, &domain.ValidationError{Field: "tier", Reason: "unknown tier"})
		return
	}
	if err := h.state.ProcessSubscription(ctx, tier); err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.FeedbackRequest
	if !decode(w, r, logger, &req) {
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondError(w, logger, &domain.ValidationError{Field: "rating", Reason: "must be 1-5"})
		return
	}
	err := h.state.SubmitFeedback(ctx, domain.FeedbackSubmission{
		Rating:    req.Rating,
		Category:  domain.FeedbackCategory(req.Category),
		Comment:   req.Comment,
		Timestamp: time.Now().UTC(),
		UserEmail: req.UserEmail,
	})
	if err != nil {
		respondError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) GetActivityLog(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	entries := h.feed.Entries()
	response := make([]api.LogEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, adapters.MapLogEntryDomainToApi(e))
	}
	respondJSON(w, logger, response)
}
