package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/gemdesk/internal/domain"
)

// httpGateway implements Gateway against the remote store's HTTP API.
type httpGateway struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPGateway creates a Gateway that talks to the remote store over HTTP.
func NewHTTPGateway(cfg Config, observer Observer) Gateway {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpGateway{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// Wire shapes. Ids arrive sometimes as strings, sometimes as numbers.

type quotationDTO struct {
	QuotationID     domain.FlexID       `json:"quotationId"`
	Price           float64             `json:"price"`
	QuotationStatus string              `json:"quotationStatus"`
	Data            string              `json:"data"`
	ImageURL        string              `json:"imageUrl"`
	ShippingID      domain.FlexID       `json:"shippingId"`
	AgentID         domain.FlexID       `json:"agentId"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	FinalQuotations []finalQuotationDTO `json:"finalQuotations"`
}

type finalQuotationDTO struct {
	FinalQuotationID domain.FlexID `json:"finalQuotationId"`
	Price            float64       `json:"price"`
	QuotationStatus  string        `json:"quotationStatus"`
	Data             string        `json:"data"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type quotationListDTO struct {
	Data         []quotationDTO `json:"data"`
	TotalRecords int            `json:"totalRecords"`
}

type transactionDTO struct {
	TransactionID   domain.FlexID `json:"transactionId"`
	Amount          float64       `json:"amount"`
	TransactionType string        `json:"transactionType"`
	Note            string        `json:"note"`
	ShippingID      domain.FlexID `json:"shippingId"`
	Status          string        `json:"status"`
	CreateDate      string        `json:"createDate"`
}

type clientLedgerDTO struct {
	ClientName      string           `json:"clientName"`
	Email           string           `json:"email"`
	ShippingAddress string           `json:"shippingAddress"`
	City            string           `json:"city"`
	State           string           `json:"state"`
	Country         string           `json:"country"`
	ZipCode         string           `json:"zipCode"`
	EINNumber       string           `json:"einNumber"`
	Transactions    []transactionDTO `json:"transactions"`
	TotalRecords    int              `json:"totalRecords"`
}

type agentDTO struct {
	ID       domain.FlexID `json:"id"`
	Username string        `json:"username"`
}

type clientDTO struct {
	ID              domain.FlexID `json:"id"`
	ClientName      string        `json:"clientName"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	ShippingAddress string        `json:"shippingAddress"`
	City            string        `json:"city"`
	State           string        `json:"state"`
	Country         string        `json:"country"`
	ZipCode         string        `json:"zipCode"`
	EINNumber       string        `json:"einNumber"`
	AgentID         domain.FlexID `json:"agentId"`
}

func (g *httpGateway) FetchQuotations(ctx context.Context, scope QuotationScope) (*QuotationPage, error) {
	query := url.Values{}
	query.Set("offset", fmt.Sprint(scope.Offset))
	query.Set("size", fmt.Sprint(scope.Size))

	var path string
	if scope.AgentID == domain.ScopeAll {
		path = "businessAdmin/quotations"
		query.Set("sortBy", "id")
	} else {
		path = "agent/getAllQuotationsByAgent"
		query.Set("agentId", scope.AgentID)
	}

	var out quotationListDTO
	if err := g.get(ctx, "fetchQuotations", path, query, &out); err != nil {
		return nil, err
	}

	page := &QuotationPage{TotalRecords: out.TotalRecords}
	for _, dto := range out.Data {
		page.Items = append(page.Items, dto.toDomain())
	}
	return page, nil
}

func (g *httpGateway) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.Status) error {
	body := map[string]string{
		"quotationId":     quotationID,
		"quotationStatus": string(status),
	}
	return g.send(ctx, "updateQuotationStatus", http.MethodPost, "agent/updateQuotation", nil, body, nil)
}

func (g *httpGateway) DeleteQuotation(ctx context.Context, quotationID string) error {
	query := url.Values{"quotationId": {quotationID}}
	return g.send(ctx, "deleteQuotation", http.MethodDelete, "agent/deleteQuotation", query, nil, nil)
}

func (g *httpGateway) CreateFinalQuotation(ctx context.Context, quotationID string) error {
	query := url.Values{"quotationId": {quotationID}}
	return g.send(ctx, "createFinalQuotation", http.MethodPost, "agent/createFinalQuotation", query, nil, nil)
}

func (g *httpGateway) MarkForShipping(ctx context.Context, quotationIDs []string) error {
	return g.send(ctx, "markForShipping", http.MethodPost, "shipping/markForShipping", nil, quotationIDs, nil)
}

func (g *httpGateway) AssignTrackingID(ctx context.Context, shippingID, trackingID string) error {
	query := url.Values{
		"shippingId": {shippingID},
		"trackingId": {trackingID},
	}
	return g.send(ctx, "assignTrackingId", http.MethodPost, "shipping/addTrackingId", query, nil, nil)
}

func (g *httpGateway) UpdateShipmentStatus(ctx context.Context, shippingID string, status domain.Status) error {
	body := map[string]string{
		"shippingId": shippingID,
		"status":     string(status),
	}
	return g.send(ctx, "updateShipmentStatus", http.MethodPost, "shipping/update", nil, body, nil)
}

func (g *httpGateway) FetchClientLedger(ctx context.Context, clientID string, offset, size int) (*domain.ClientLedger, error) {
	query := url.Values{}
	query.Set("offset", fmt.Sprint(offset))
	query.Set("size", fmt.Sprint(size))

	var out clientLedgerDTO
	path := "client-ledger/client/" + url.PathEscape(clientID)
	if err := g.get(ctx, "fetchClientLedger", path, query, &out); err != nil {
		return nil, err
	}

	ledger := &domain.ClientLedger{
		Client: domain.Client{
			ID:              clientID,
			ClientName:      out.ClientName,
			Email:           out.Email,
			ShippingAddress: out.ShippingAddress,
			City:            out.City,
			State:           out.State,
			Country:         out.Country,
			ZipCode:         out.ZipCode,
			EINNumber:       out.EINNumber,
		},
	}
	for _, dto := range out.Transactions {
		ledger.Transactions = append(ledger.Transactions, dto.toDomain())
	}
	ledger.TotalRecords = out.TotalRecords
	if ledger.TotalRecords == 0 {
		// Older backends omit the count; the rows seen so far bound it.
		ledger.TotalRecords = offset + len(ledger.Transactions)
	}
	return ledger, nil
}

func (g *httpGateway) AppendLedgerTransaction(ctx context.Context, rec LedgerRecord) (*domain.LedgerTransaction, error) {
	body := map[string]any{
		"clientId":        rec.ClientID,
		"amount":          rec.Amount,
		"transactionType": string(rec.Type),
		"note":            rec.Note,
	}
	var out transactionDTO
	if err := g.send(ctx, "appendLedgerTransaction", http.MethodPost, "client-ledger/add", nil, body, &out); err != nil {
		return nil, err
	}
	tx := out.toDomain()
	return &tx, nil
}

func (g *httpGateway) FetchAgents(ctx context.Context) ([]domain.Agent, error) {
	query := url.Values{"offset": {"0"}, "size": {"100"}}
	var out struct {
		Data []agentDTO `json:"data"`
	}
	if err := g.get(ctx, "fetchAgents", "businessAdmin/getAllAgents", query, &out); err != nil {
		return nil, err
	}
	agents := make([]domain.Agent, 0, len(out.Data))
	for _, dto := range out.Data {
		agents = append(agents, domain.Agent{ID: string(dto.ID), Username: dto.Username})
	}
	return agents, nil
}

func (g *httpGateway) FetchClients(ctx context.Context, agentID string) ([]domain.Client, error) {
	var path string
	query := url.Values{}
	if agentID == domain.ScopeAll {
		path = "businessAdmin/clients"
	} else {
		path = "agent/clients"
		query.Set("agentId", agentID)
		query.Set("offset", "0")
		query.Set("size", "100")
	}

	var out struct {
		Data []clientDTO `json:"data"`
	}
	if err := g.get(ctx, "fetchClients", path, query, &out); err != nil {
		return nil, err
	}

	clients := make([]domain.Client, 0, len(out.Data))
	for _, dto := range out.Data {
		name := dto.ClientName
		if name == "" {
			name = dto.Name
		}
		clients = append(clients, domain.Client{
			ID:              string(dto.ID),
			ClientName:      name,
			Email:           dto.Email,
			ShippingAddress: dto.ShippingAddress,
			City:            dto.City,
			State:           dto.State,
			Country:         dto.Country,
			ZipCode:         dto.ZipCode,
			EINNumber:       dto.EINNumber,
			AgentID:         string(dto.AgentID),
		})
	}
	return clients, nil
}

func (dto quotationDTO) toDomain() *domain.Quotation {
	q := &domain.Quotation{
		ID:         string(dto.QuotationID),
		Price:      dto.Price,
		Status:     statusOrDefault(dto.QuotationStatus),
		AgentID:    string(dto.AgentID),
		ImageURL:   dto.ImageURL,
		ShippingID: string(dto.ShippingID),
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	}
	// Payload parsed once here. A malformed blob leaves the quotation
	// usable in lists but unattributed to a client, same as the old UI.
	_ = q.IngestPayload(dto.Data)
	for _, child := range dto.FinalQuotations {
		fq := domain.FinalQuotation{
			ID:        string(child.FinalQuotationID),
			Price:     child.Price,
			Status:    statusOrDefault(child.QuotationStatus),
			CreatedAt: child.CreatedAt,
			UpdatedAt: child.UpdatedAt,
		}
		if p, err := domain.ParsePayload(child.Data); err == nil {
			fq.Payload = p
			fq.ClientName = p.Client.ClientName
		}
		q.FinalQuotations = append(q.FinalQuotations, fq)
	}
	return q
}

func (dto transactionDTO) toDomain() domain.LedgerTransaction {
	tx := domain.LedgerTransaction{
		ID:         string(dto.TransactionID),
		Amount:     dto.Amount,
		Note:       dto.Note,
		ShippingID: string(dto.ShippingID),
	}
	if t, err := domain.ParseTransactionType(dto.TransactionType); err == nil {
		tx.Type = t
	}
	if dto.Status != "" {
		if s, err := domain.ParseStatus(dto.Status); err == nil {
			tx.ShipmentStatus = s
		}
	}
	if dto.CreateDate != "" {
		// The backend emits bare dates for ledger rows.
		if d, err := time.Parse("2006-01-02", dto.CreateDate); err == nil {
			tx.CreateDate = d
		} else if d, err := time.Parse(time.RFC3339, dto.CreateDate); err == nil {
			tx.CreateDate = d
		}
	}
	return tx
}

func statusOrDefault(raw string) domain.Status {
	if raw == "" {
		return domain.StatusNew
	}
	if s, err := domain.ParseStatus(raw); err == nil {
		return s
	}
	return domain.Status(strings.ToLower(raw))
}

// get issues an idempotent GET with bounded retries.
func (g *httpGateway) get(ctx context.Context, op, path string, query url.Values, out any) error {
	start := time.Now()
	attempts := 1 + g.cfg.MaxRetries

	var lastErr error
	for i := 0; i < attempts; i++ {
		lastErr = g.do(ctx, http.MethodGet, path, query, nil, out)
		if lastErr == nil {
			g.observe(op, start, nil)
			return nil
		}
		if ctx.Err() != nil || !errors.Is(lastErr, ErrUnavailable) {
			break
		}
	}
	g.observe(op, start, lastErr)
	return lastErr
}

// send issues a mutating call. Mutations are never retried here; the
// store's per-call idempotence is for callers to exploit deliberately.
func (g *httpGateway) send(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := g.do(ctx, method, path, query, body, out)
	g.observe(op, start, err)
	return err
}

func (g *httpGateway) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	u := strings.TrimRight(g.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrRemoteRejected, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response: %v", ErrRemoteRejected, err)
		}
	}
	return nil
}

func (g *httpGateway) observe(op string, start time.Time, err error) {
	g.observer.OnCallComplete(CallEvent{
		Op:        op,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}
