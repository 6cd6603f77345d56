package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientsolve/internal/domain/user"
	vo "clientsolve/internal/domain/user/valueobjects"
)

func newStoredUser(t *testing.T, repo *UserRepository, username, email string, role vo.Role, clientID string) *user.User {
	t.Helper()
	u, err := user.NewUser(username, email, "$2a$10$fakehashfakehashfakehash", role, clientID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), u))
	return u
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := newStoredUser(t, repo, "jane", "jane@acme.test", vo.RoleClient, "cl_acme")

	got, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jane", got.Username())

	byEmail, err := repo.FindByEmail(ctx, "jane@acme.test")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())

	missing, err := repo.FindByEmail(ctx, "nobody@acme.test")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_UpdateAndDelete_ReportFound(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := newStoredUser(t, repo, "jane", "jane@acme.test", vo.RoleAdmin, "")

	u.ToggleActive()
	found, err := repo.Update(ctx, u)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.False(t, got.Active())

	found, err = repo.Delete(ctx, u.ID())
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(ctx, u.ID())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserRepository_List_ByClient(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first := newStoredUser(t, repo, "jane", "jane@acme.test", vo.RoleClient, "cl_acme")
	newStoredUser(t, repo, "john", "john@globex.test", vo.RoleClient, "cl_globex")
	second := newStoredUser(t, repo, "jack", "jack@acme.test", vo.RoleClient, "cl_acme")
	newStoredUser(t, repo, "root", "root@clientsolve.test", vo.RoleAdmin, "")

	got, err := repo.List(ctx, user.Filter{ClientID: "cl_acme"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID(), got[0].ID())
	assert.Equal(t, second.ID(), got[1].ID())

	// Unknown client yields an empty result, not an error.
	got, err = repo.List(ctx, user.Filter{ClientID: "cl_unknown"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUserRepository_List_OrphansSurviveClientDeletion(t *testing.T) {
	// Client accounts are not cleaned up when their client record goes
	// away; they simply point at an id that no longer resolves.
	repo := NewUserRepository()
	clients := NewClientRepository()
	ctx := context.Background()

	c := newStoredClient(t, clients, "Acme Corp", "Jane", "jane@acme.test")
	u := newStoredUser(t, repo, "jane", "jane@acme.test", vo.RoleClient, c.ID())

	found, err := clients.Delete(ctx, c.ID())
	require.NoError(t, err)
	require.True(t, found)

	got, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID(), got.ClientID())

	resolved, err := clients.FindByID(ctx, got.ClientID())
	require.NoError(t, err)
	assert.Nil(t, resolved)
}
