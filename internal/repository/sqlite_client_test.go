package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gemdesk/internal/testutil"
)

func TestClientRepo_CreateAndGet(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteClientRepo(conn)

	agent := testutil.NewTestAgent()
	require.NoError(t, NewSQLiteAgentRepo(conn).Create(ctx, agent))

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := testutil.NewTestClient(agent.ID,
		testutil.WithClientName("Acme Gems"),
		testutil.WithClientSince(since))
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Gems", got.ClientName)
	require.NotNil(t, got.ClientSince)
	assert.Equal(t, since, *got.ClientSince)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientRepo_ListByAgent(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteClientRepo(conn)
	agents := NewSQLiteAgentRepo(conn)

	a1 := testutil.NewTestAgent()
	a2 := testutil.NewTestAgent()
	require.NoError(t, agents.Create(ctx, a1))
	require.NoError(t, agents.Create(ctx, a2))

	require.NoError(t, repo.Create(ctx, testutil.NewTestClient(a1.ID, testutil.WithClientName("Beta"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClient(a1.ID, testutil.WithClientName("Alpha"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClient(a2.ID)))

	scoped, err := repo.ListByAgent(ctx, a1.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	assert.Equal(t, "Alpha", scoped[0].ClientName, "sorted by name")

	all, err := repo.ListByAgent(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAgentRepo_List(t *testing.T) {
	conn := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteAgentRepo(conn)

	require.NoError(t, repo.Create(ctx, testutil.NewTestAgent(testutil.WithUsername("zoe"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestAgent(testutil.WithUsername("amir"))))

	agents, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "amir", agents[0].Username)
}
