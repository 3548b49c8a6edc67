package firebase

import (
	"context"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/domain/service"
)

// fakeAuthClient records calls and returns canned results.
type fakeAuthClient struct {
	created   *auth.UserToCreate
	record    *auth.UserRecord
	claims    map[string]any
	claimsUID string
	token     *auth.Token
	err       error
}

func (f *fakeAuthClient) CreateUser(_ context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	f.created = user

	return f.record, f.err
}

func (f *fakeAuthClient) GetUserByEmail(context.Context, string) (*auth.UserRecord, error) {
	return f.record, f.err
}

func (f *fakeAuthClient) UpdateUser(context.Context, string, *auth.UserToUpdate) (*auth.UserRecord, error) {
	return f.record, f.err
}

func (f *fakeAuthClient) DeleteUser(context.Context, string) error {
	return f.err
}

func (f *fakeAuthClient) SetCustomUserClaims(_ context.Context, uid string, claims map[string]any) error {
	f.claimsUID = uid
	f.claims = claims

	return f.err
}

func (f *fakeAuthClient) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.err
}

func TestIdentityProvider_CreateIdentity(t *testing.T) {
	client := &fakeAuthClient{record: &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "uid-1"}}}
	p := &identityProvider{client: client}

	uid, err := p.CreateIdentity(context.Background(), "ana@example.cl", "Secret123!", "Ana")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	assert.NotNil(t, client.created)
}

func TestIdentityProvider_GetIdentityByEmail(t *testing.T) {
	client := &fakeAuthClient{record: &auth.UserRecord{
		UserInfo: &auth.UserInfo{UID: "uid-1", Email: "ana@example.cl"},
		Disabled: true,
	}}
	p := &identityProvider{client: client}

	identity, err := p.GetIdentityByEmail(context.Background(), "ana@example.cl")
	require.NoError(t, err)
	assert.Equal(t, &service.Identity{UID: "uid-1", Email: "ana@example.cl", Disabled: true}, identity)
}

func TestIdentityProvider_WrapsFailures(t *testing.T) {
	p := &identityProvider{client: &fakeAuthClient{err: errors.New("quota exceeded")}}
	ctx := context.Background()

	_, err := p.GetIdentityByEmail(ctx, "ana@example.cl")
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrIdentityNotFound))

	assert.Error(t, p.UpdatePassword(ctx, "uid-1", "x"))
	assert.Error(t, p.DeleteIdentity(ctx, "uid-1"))
}

func TestIdentityProvider_SetCompanyClaim(t *testing.T) {
	client := &fakeAuthClient{}
	p := &identityProvider{client: client}

	require.NoError(t, p.SetCompanyClaim(context.Background(), "uid-1", "company-1"))
	assert.Equal(t, "uid-1", client.claimsUID)
	assert.Equal(t, map[string]any{CompanyClaim: "company-1"}, client.claims)
}

func TestTokenVerifier_VerifyToken(t *testing.T) {
	client := &fakeAuthClient{token: &auth.Token{
		UID:     "uid-1",
		Expires: 1741953600,
		Claims:  map[string]any{"email": "ana@example.cl", CompanyClaim: "company-1"},
	}}
	v := &tokenVerifier{client: client}

	verified, err := v.VerifyToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", verified.UID)
	assert.Equal(t, "ana@example.cl", verified.Email)
	assert.Equal(t, "company-1", verified.CompanyID)
	assert.Equal(t, int64(1741953600), verified.ExpiresAt.Unix())

	client.err = errors.New("expired")
	_, err = v.VerifyToken(context.Background(), "token")
	assert.Error(t, err)
}
