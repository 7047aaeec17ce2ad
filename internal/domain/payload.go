package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexID is an identifier that the backend serializes sometimes as a JSON
// string and sometimes as a number.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %s", string(b))
	}
	*f = FlexID(n.String())
	return nil
}

// PayloadClient is the client block embedded in a quotation's data payload.
// Older rows carry the id under "clientId" instead of "id".
type PayloadClient struct {
	ID         FlexID `json:"id"`
	LegacyID   FlexID `json:"clientId"`
	ClientName string `json:"clientName"`
	Email      string `json:"email"`
}

// ClientID returns whichever id field the payload carries.
func (c PayloadClient) ClientID() string {
	if c.ID != "" {
		return string(c.ID)
	}
	return string(c.LegacyID)
}

// QuotationPayload is the typed form of the serialized data blob attached
// to every quotation. It is parsed exactly once at ingestion; nothing else
// in the system touches the raw string.
type QuotationPayload struct {
	Client           PayloadClient    `json:"client"`
	QuotationDetails map[string]any   `json:"quotationDetails"`
	QuotationTable   []map[string]any `json:"quotationTable"`
	ContentRows      []map[string]any `json:"contentRows"`
	TotalsSection    map[string]any   `json:"totalsSection"`
	CalculatorData   map[string]any   `json:"calculatorData"`
}

// ParsePayload decodes the serialized data blob into a QuotationPayload.
// An empty blob is an error: every quotation the backend returns carries
// one, and downstream filtering depends on the client id inside it.
func ParsePayload(raw string) (*QuotationPayload, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty quotation payload")
	}
	var p QuotationPayload
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding quotation payload: %w", err)
	}
	return &p, nil
}
