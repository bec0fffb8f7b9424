package state

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/de-tools/leak-finder/pkg/store/document"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type seqIDs struct {
	n int
}

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("%08d-fixed-id", g.n)
}

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	svc := New(document.NewMemoryStore(), nil, clock, &seqIDs{})
	require.NoError(t, svc.Initialize(context.Background()))
	return svc, clock
}

func TestService_Initialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.SetOnboardingComplete(ctx, true))
	require.NoError(t, svc.Initialize(ctx))

	complete, err := svc.OnboardingComplete(ctx)
	require.NoError(t, err)
	assert.True(t, complete, "re-initialize must not reset existing state")

	resources, err := svc.Resources(ctx)
	require.NoError(t, err)
	assert.Len(t, resources, 7)
}

func TestService_Login_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t)

	user, err := svc.Login(ctx, domain.UserPatch{})
	require.NoError(t, err)

	assert.Equal(t, "Platinum Strategic Admin", user.Name)
	assert.Equal(t, "exec-strat@enterprise-global.io", user.Email)
	assert.Equal(t, "Principal Strategic Architect", user.Role)
	assert.Equal(t, "enterprise_sso", user.Provider)
	assert.Equal(t, domain.TierEnterprise, user.Tier)
	assert.Contains(t, user.Avatar, "api.dicebear.com")
	assert.Contains(t, user.Avatar, "seed=Platinum+Strategic+Admin")

	identity, err := svc.Identity(ctx)
	require.NoError(t, err)
	assert.Equal(t, clock.now, identity.LastLogin)
}

func TestService_Login_PatchWins(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	user, err := svc.Login(ctx, domain.UserPatch{
		Name:  "Casey Ops",
		Email: "casey@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Casey Ops", user.Name)
	assert.Equal(t, "casey@example.com", user.Email)
	assert.Contains(t, user.Avatar, "seed=Casey+Ops")
}

func TestService_Logout_PreservesSettings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, domain.UserPatch{})
	require.NoError(t, err)

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	settings.NotificationsEnabled = !settings.NotificationsEnabled
	require.NoError(t, svc.SaveSettings(ctx, settings))

	require.NoError(t, svc.Logout(ctx))

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	after, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, after, "logout clears the session only")
}

func TestService_Resource_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Resource(ctx, "vm-does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_UpdateResourceTags_Replaces(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	before, err := svc.Resource(ctx, "vm-prod-01")
	require.NoError(t, err)
	require.NotEmpty(t, before.Tags)

	tags := map[string]string{"owner": "platform"}
	require.NoError(t, svc.UpdateResourceTags(ctx, "vm-prod-01", tags))

	after, err := svc.Resource(ctx, "vm-prod-01")
	require.NoError(t, err)
	assert.Equal(t, tags, after.Tags, "tag update replaces the full map")

	err = svc.UpdateResourceTags(ctx, "vm-missing", tags)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_SnoozeResource(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		hours   int
		wantErr error
	}{
		{name: "snoozes known resource", id: "vm-prod-01", hours: 24},
		{name: "rejects zero hours", id: "vm-prod-01", hours: 0, wantErr: &domain.ValidationError{}},
		{name: "rejects negative hours", id: "vm-prod-01", hours: -4, wantErr: &domain.ValidationError{}},
		{name: "unknown resource", id: "vm-missing", hours: 24, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			err := svc.SnoozeResource(ctx, tt.id, tt.hours)
			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				ids, err := svc.SnoozedResourceIDs(ctx)
				require.NoError(t, err)
				assert.Equal(t, []string{tt.id}, ids)
			case *domain.ValidationError:
				var verr *domain.ValidationError
				assert.ErrorAs(t, err, &verr)
			default:
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestService_SnoozeResource_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t)

	require.NoError(t, svc.SnoozeResource(ctx, "vm-prod-01", 2))
	require.NoError(t, svc.SnoozeResource(ctx, "api-unused-01", 48))

	clock.now = clock.now.Add(3 * time.Hour)

	ids, err := svc.SnoozedResourceIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"api-unused-01"}, ids, "expired snoozes drop out of the view")
}

func TestService_RemediationBin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	first := domain.CostLeak{ResourceID: "vm-prod-01", ResourceName: "vm-prod-01", Status: domain.LeakOpen}
	second := domain.CostLeak{ResourceID: "api-unused-01", ResourceName: "api-unused-01", Status: domain.LeakAssigned}
	require.NoError(t, svc.MarkLeakResolved(ctx, first))
	require.NoError(t, svc.MarkLeakResolved(ctx, second))

	bin, err := svc.RemediationBin(ctx)
	require.NoError(t, err)
	require.Len(t, bin, 2)
	assert.Equal(t, "api-unused-01", bin[0].ResourceID, "newest entry first")
	assert.Equal(t, domain.LeakResolved, bin[0].Status)
	assert.Equal(t, domain.LeakResolved, bin[1].Status)

	require.NoError(t, svc.ClearRemediationBin(ctx))
	bin, err = svc.RemediationBin(ctx)
	require.NoError(t, err)
	assert.Empty(t, bin)
}

func TestService_RecordAudit_PrependsHistory(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	seeded, err := svc.AuditHistory(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seeded)

	require.NoError(t, svc.RecordAudit(ctx, 1234.5, 42.1, 6))

	history, err := svc.AuditHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, len(seeded)+1)
	assert.Equal(t, 1234.5, history[0].SavingsFound)
	assert.Equal(t, 6, history[0].LeakCount)
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp))
}

func TestService_LeakDueDates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.UpdateLeakDueDate(ctx, "vm-prod-01", "2024-07-01"))
	require.NoError(t, svc.UpdateLeakDueDate(ctx, "vm-prod-01", "2024-08-01"))

	dates, err := svc.LeakDueDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"vm-prod-01": "2024-08-01"}, dates)
}

func TestService_TaggingStandards(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.AddTaggingStandard(ctx, domain.TaggingStandard{
		Key: "team", Description: "Owning team", Required: true,
	}))
	standards, err := svc.TaggingStandards(ctx)
	require.NoError(t, err)
	require.Len(t, standards, 4)

	require.NoError(t, svc.DeleteTaggingStandard(ctx, "team"))
	standards, err = svc.TaggingStandards(ctx)
	require.NoError(t, err)
	assert.Len(t, standards, 3)

	notificationsBefore, err := svc.Notifications(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.PublishTaggingStandards(ctx, standards))
	notifications, err := svc.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, len(notificationsBefore)+1)
	assert.Equal(t, "Tagging Policies Published", notifications[0].Title)
}

func TestService_ProcessPolicyUpload(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	policy, err := svc.ProcessPolicyUpload(ctx, "data_retention_v2.pdf", "...")
	require.NoError(t, err)
	assert.Equal(t, "DATA RETENTION V2", policy.Title)
	assert.Equal(t, domain.PolicyPending, policy.Status)

	policies, err := svc.Governance(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, policies)
	assert.Equal(t, policy.ID, policies[0].ID, "uploaded policy lands at the top")
}

func TestService_ProcessSubscription(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, domain.UserPatch{})
	require.NoError(t, err)

	require.NoError(t, svc.ProcessSubscription(ctx, domain.TierPro))

	settings, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TierPro, settings.Tier)

	user, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.TierPro, user.Tier)
}

func TestService_TriggerComplianceAudit_RaisesScores(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	before, err := svc.Compliance(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	require.NoError(t, svc.TriggerComplianceAudit(ctx))

	after, err := svc.Compliance(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range after {
		assert.Greater(t, after[i].Score, before[i].Score)
		assert.LessOrEqual(t, after[i].Score, 100)
	}
}

func TestService_Mutate_RequiresInitializedDocument(t *testing.T) {
	ctx := context.Background()
	svc := New(document.NewMemoryStore(), nil, &fakeClock{now: time.Now()}, &seqIDs{})

	err := svc.SetOnboardingComplete(ctx, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
