package webhook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/models"
)

type storeCall struct {
	op      string
	tenant  models.Tenant
	clerkID string
}

// fakeUserStore records the calls the dispatcher makes.
type fakeUserStore struct {
	calls        []storeCall
	insertResult bool
	updateResult bool
	deleteResult bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{insertResult: true, updateResult: true, deleteResult: true}
}

func (f *fakeUserStore) InsertUser(_ context.Context, tenant models.Tenant, user *models.ClerkUser) bool {
	f.calls = append(f.calls, storeCall{op: "insert", tenant: tenant, clerkID: user.ClerkID})
	return f.insertResult
}

func (f *fakeUserStore) UpdateUser(_ context.Context, tenant models.Tenant, user *models.ClerkUser) bool {
	f.calls = append(f.calls, storeCall{op: "update", tenant: tenant, clerkID: user.ClerkID})
	return f.updateResult
}

func (f *fakeUserStore) DeleteUserByClerkID(_ context.Context, tenant models.Tenant, clerkID string) bool {
	f.calls = append(f.calls, storeCall{op: "delete", tenant: tenant, clerkID: clerkID})
	return f.deleteResult
}

func signedRequest(t *testing.T, secret, applicationID string, payload []byte) ([]byte, RequestHeaders) {
	t.Helper()
	return payload, signedHeaders(t, secret, applicationID, payload)
}

func Test_ProcessWebhook_UserCreated(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(testClerkConfig(), store, zap.NewNop())

	body, headers := signedRequest(t, testSecret, "app",
		[]byte(`{"type":"user.created","data":{"id":"user_A","first_name":"Ada"}}`))

	require.True(t, svc.ProcessWebhook(context.Background(), body, headers))
	require.Equal(t, []storeCall{{op: "insert", tenant: models.TenantMultiTenant, clerkID: "user_A"}}, store.calls)
}

func Test_ProcessWebhook_UserUpdated_ComgasTenant(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(testClerkConfig(), store, zap.NewNop())

	body, headers := signedRequest(t, testSecretComgas, "comgas",
		[]byte(`{"type":"user.updated","data":{"id":"user_B","first_name":"Y"}}`))

	require.True(t, svc.ProcessWebhook(context.Background(), body, headers))
	require.Equal(t, []storeCall{{op: "update", tenant: models.TenantComgas, clerkID: "user_B"}}, store.calls)
}

func Test_ProcessWebhook_UserDeleted(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(testClerkConfig(), store, zap.NewNop())

	body, headers := signedRequest(t, testSecret, "app",
		[]byte(`{"type":"user.deleted","data":{"id":"user_A","deleted":true}}`))

	require.True(t, svc.ProcessWebhook(context.Background(), body, headers))
	require.Equal(t, []storeCall{{op: "delete", tenant: models.TenantMultiTenant, clerkID: "user_A"}}, store.calls)
}

func Test_ProcessWebhook_UnknownEventAckedWithoutStoreCall(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(testClerkConfig(), store, zap.NewNop())

	for _, eventType := range []string{"organization.created", "session.ended", "email.created", "somethingNew.happened"} {
		body, headers := signedRequest(t, testSecret, "app",
			[]byte(`{"type":"`+eventType+`","data":{"id":"org_1"}}`))

		require.True(t, svc.ProcessWebhook(context.Background(), body, headers))
	}
	require.Empty(t, store.calls)
}

func Test_ProcessWebhook_InvalidSignatureMakesNoStoreCall(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(testClerkConfig(), store, zap.NewNop())

	body := []byte(`{"type":"user.created","data":{"id":"user_A"}}`)
	headers := signedHeaders(t, testSecret, "app", body)
	headers.SvixSignature = "v1,aW52YWxpZHNpZ25hdHVyZQ=="

	require.False(t, svc.ProcessWebhook(context.Background(), body, headers))
	require.Empty(t, store.calls)
}

func Test_ProcessWebhook_MalformedEnvelope(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(testClerkConfig(), store, zap.NewNop())

	body, headers := signedRequest(t, testSecret, "app", []byte(`{"type":"user.created"}`))

	require.False(t, svc.ProcessWebhook(context.Background(), body, headers))
	require.Empty(t, store.calls)
}

func Test_ProcessWebhook_MissingClerkID(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(testClerkConfig(), store, zap.NewNop())

	body, headers := signedRequest(t, testSecret, "app",
		[]byte(`{"type":"user.created","data":{"first_name":"Ada"}}`))

	require.False(t, svc.ProcessWebhook(context.Background(), body, headers))
	require.Empty(t, store.calls)
}

func Test_ProcessWebhook_StoreFailurePropagates(t *testing.T) {
	store := newFakeUserStore()
	store.insertResult = false
	svc := NewService(testClerkConfig(), store, zap.NewNop())

	body, headers := signedRequest(t, testSecret, "app",
		[]byte(`{"type":"user.created","data":{"id":"user_A"}}`))

	require.False(t, svc.ProcessWebhook(context.Background(), body, headers))
}
