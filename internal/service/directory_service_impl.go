package service

import (
	"context"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
)

type directoryService struct {
	gw gateway.Gateway
}

func NewDirectoryService(gw gateway.Gateway) DirectoryService {
	return &directoryService{gw: gw}
}

func (s *directoryService) Agents(ctx context.Context) ([]domain.Agent, error) {
	agents, err := s.gw.FetchAgents(ctx)
	if err != nil {
		return nil, domain.Remotef("fetch agents", err)
	}
	return agents, nil
}

func (s *directoryService) Clients(ctx context.Context, agentID string) ([]domain.Client, error) {
	if agentID == "" {
		return nil, domain.Validationf("agent scope is required")
	}
	clients, err := s.gw.FetchClients(ctx, agentID)
	if err != nil {
		return nil, domain.Remotef("fetch clients", err)
	}
	return clients, nil
}
