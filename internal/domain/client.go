package domain

import "time"

// Agent is a user who owns a subset of clients and their quotations.
type Agent struct {
	ID       string
	Username string
}

// Client is a customer owned by exactly one agent. The business admin sees
// clients across all agents.
type Client struct {
	ID              string
	ClientName      string
	Email           string
	ShippingAddress string
	City            string
	State           string
	Country         string
	ZipCode         string
	EINNumber       string
	AgentID         string
	ClientSince     *time.Time
}
