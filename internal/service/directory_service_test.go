package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
)

func TestDirectory_Agents(t *testing.T) {
	gw := newFakeGateway()
	gw.agents = []domain.Agent{{ID: "7", Username: "maria"}}
	svc := NewDirectoryService(gw)

	agents, err := svc.Agents(context.Background())

	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "maria", agents[0].Username)
}

func TestDirectory_ClientsScoped(t *testing.T) {
	gw := newFakeGateway()
	gw.clients = []domain.Client{{ID: "42", ClientName: "Acme Gems"}}
	svc := NewDirectoryService(gw)

	clients, err := svc.Clients(context.Background(), "7")
	require.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Equal(t, []string{"fetchClients 7"}, gw.calls)

	_, err = svc.Clients(context.Background(), "")
	assert.True(t, domain.IsValidation(err))
}

func TestDirectory_RemoteErrorsWrapped(t *testing.T) {
	gw := newFakeGateway()
	gw.failOp["fetchAgents"] = gateway.ErrUnavailable
	svc := NewDirectoryService(gw)

	_, err := svc.Agents(context.Background())
	assert.True(t, domain.IsRemote(err))
}
