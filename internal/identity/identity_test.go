// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/internal/mock"
	"github.com/samidy/monosync/models"
)

func newTestProvider(t *testing.T) (*Provider, *mock.MockAuthAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthAPI(ctrl)
	return NewProvider(auth, logger.Nop()), auth
}

func signedInState() models.AuthState {
	return models.AuthState{
		Token: "token-1",
		User: &models.Identity{
			ID:    "u1",
			Email: "listener@example.com",
		},
	}
}

func TestSignIn_StoresState(t *testing.T) {
	provider, auth := newTestProvider(t)

	auth.EXPECT().
		SignInWithPassword(gomock.Any(), "listener@example.com", "secret").
		Return(signedInState(), nil)

	require.Nil(t, provider.Current())

	err := provider.SignIn(context.Background(), "listener@example.com", "secret")
	require.NoError(t, err)

	current := provider.Current()
	require.NotNil(t, current)
	assert.Equal(t, "u1", current.ID)
	assert.Equal(t, "token-1", provider.Token())
}

func TestSignIn_FailureLeavesStateUntouched(t *testing.T) {
	provider, auth := newTestProvider(t)

	auth.EXPECT().
		SignInWithPassword(gomock.Any(), "listener@example.com", "wrong").
		Return(models.AuthState{}, errors.New("Failed to authenticate."))

	err := provider.SignIn(context.Background(), "listener@example.com", "wrong")
	require.Error(t, err)
	assert.Nil(t, provider.Current())
	assert.Empty(t, provider.Token())
}

func TestSignUp_StoresState(t *testing.T) {
	provider, auth := newTestProvider(t)

	auth.EXPECT().
		SignUp(gomock.Any(), "new@example.com", "secret").
		Return(signedInState(), nil)

	err := provider.SignUp(context.Background(), "new@example.com", "secret")
	require.NoError(t, err)
	require.NotNil(t, provider.Current())
}

func TestSignOut_ClearsState(t *testing.T) {
	provider, auth := newTestProvider(t)

	auth.EXPECT().
		SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(signedInState(), nil)
	auth.EXPECT().SignOut()

	require.NoError(t, provider.SignIn(context.Background(), "listener@example.com", "secret"))
	require.NotNil(t, provider.Current())

	provider.SignOut()

	assert.Nil(t, provider.Current())
	assert.Empty(t, provider.Token())
}

func TestRequestPasswordReset_DelegatesToAuthAPI(t *testing.T) {
	provider, auth := newTestProvider(t)

	auth.EXPECT().
		RequestPasswordReset(gomock.Any(), "listener@example.com").
		Return(nil)

	err := provider.RequestPasswordReset(context.Background(), "listener@example.com")
	require.NoError(t, err)
}

func TestSubscribe_DeliversStateChanges(t *testing.T) {
	provider, auth := newTestProvider(t)

	auth.EXPECT().
		SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(signedInState(), nil)
	auth.EXPECT().SignOut()

	events := provider.Subscribe()

	require.NoError(t, provider.SignIn(context.Background(), "listener@example.com", "secret"))

	event := <-events
	require.NotNil(t, event.User)
	assert.Equal(t, "u1", event.User.ID)
	assert.Equal(t, "token-1", event.Token)

	provider.SignOut()

	event = <-events
	assert.Nil(t, event.User)
	assert.Empty(t, event.Token)
}

func TestSubscribe_SlowConsumerSeesLatestStateOnly(t *testing.T) {
	provider, auth := newTestProvider(t)

	auth.EXPECT().
		SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(signedInState(), nil)
	auth.EXPECT().SignOut()

	events := provider.Subscribe()

	// Two state changes before the subscriber reads anything: the sign-in
	// event is superseded by the sign-out.
	require.NoError(t, provider.SignIn(context.Background(), "listener@example.com", "secret"))
	provider.SignOut()

	event := <-events
	assert.Nil(t, event.User)

	select {
	case stale := <-events:
		t.Fatalf("unexpected extra event: %+v", stale)
	default:
	}
}
