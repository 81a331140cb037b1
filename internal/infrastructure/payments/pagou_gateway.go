package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingPagouSecretKey = errors.New("missing PAGOU_SECRET_KEY")

	// ErrGatewayUnavailable covers timeouts and 5xx answers. Creation is
	// never retried on this error: a blind retry could issue a second PIX
	// charge for the same checkout.
	ErrGatewayUnavailable = errors.New("pix gateway unavailable")

	// ErrGatewayRejected covers 4xx answers (the gateway understood and
	// refused the request).
	ErrGatewayRejected = errors.New("pix gateway rejected request")

	// ErrMalformedGatewayResponse means the gateway answered 2xx but the
	// body is missing the PIX code or the QR image. A partial intent is
	// never returned.
	ErrMalformedGatewayResponse = errors.New("malformed pix gateway response")
)

const defaultCreateTimeout = 10 * time.Second

type PixPayer struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email,omitempty"`
}

type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CreatePixRequest struct {
	Amount          float64         `json:"amount"`
	Description     string          `json:"description"`
	Expiration      int             `json:"expiration"`
	Payer           PixPayer        `json:"payer"`
	Metadata        []MetadataEntry `json:"metadata,omitempty"`
	NotificationURL string          `json:"notification_url,omitempty"`
	ExternalID      string          `json:"external_id,omitempty"`
	CustomerCode    string          `json:"customer_code,omitempty"`
}

// PixPayment is the normalized creation result: the copy-paste code and the
// QR image are always present, and the image is always a data URI.
type PixPayment struct {
	ID          string
	Amount      float64
	PixCode     string
	QRCodeImage string
}

// PixStatus carries the gateway status as received. StatusCode is set for
// numeric (v1) answers, StatusName for string (v2) answers; the canonical
// mapping lives in entities.PaymentStatusFromGateway.
type PixStatus struct {
	ID         string
	Amount     float64
	StatusCode int
	StatusName string
}

// PagouGateway talks to the Pagou PIX API (X-API-KEY auth, JSON bodies).

type PagouGateway struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewPagouGateway(baseURL, apiKey string) (*PagouGateway, error) {
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[payment][gateway] missing PAGOU_SECRET_KEY")
		return nil, ErrMissingPagouSecretKey
	}
	log.Printf("[payment][gateway] Pagou client initialized base_url=%s", baseURL)
	return &PagouGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultCreateTimeout},
	}, nil
}

// pagouPixResponse tolerates both known response shapes: the documented one
// nests the code and image under payload{}, older deployments return them as
// flat pix_qr_code / pix_qr_code_base64 fields.
type pagouPixResponse struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`

	Payload *struct {
		PayloadID int    `json:"payload_id"`
		Data      string `json:"data"`
		Image     string `json:"image"`
	} `json:"payload"`

	PixQRCode       string `json:"pix_qr_code"`
	PixQRCodeBase64 string `json:"pix_qr_code_base64"`

	Status json.RawMessage `json:"status"`
}

type pagouErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (g *PagouGateway) CreatePix(ctx context.Context, req CreatePixRequest) (PixPayment, error) {
	log.Printf("[payment][gateway] create start amount=%.2f external_id=%s", req.Amount, req.ExternalID)

	body, err := json.Marshal(req)
	if err != nil {
		return PixPayment{}, err
	}

	raw, err := g.do(ctx, http.MethodPost, "/v1/pix", body)
	if err != nil {
		log.Printf("[payment][gateway] create failed external_id=%s err=%v", req.ExternalID, err)
		return PixPayment{}, err
	}

	var resp pagouPixResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return PixPayment{}, fmt.Errorf("%w: %v", ErrMalformedGatewayResponse, err)
	}

	payment, err := normalizePixPayment(resp)
	if err != nil {
		log.Printf("[payment][gateway] create response malformed external_id=%s err=%v", req.ExternalID, err)
		return PixPayment{}, err
	}
	log.Printf("[payment][gateway] create success payment_id=%s external_id=%s", payment.ID, req.ExternalID)
	return payment, nil
}

func (g *PagouGateway) GetPixStatus(ctx context.Context, id string) (PixStatus, error) {
	raw, err := g.do(ctx, http.MethodGet, "/v1/pix/"+id, nil)
	if err != nil {
		return PixStatus{}, err
	}

	var resp pagouPixResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return PixStatus{}, fmt.Errorf("%w: %v", ErrMalformedGatewayResponse, err)
	}

	st := PixStatus{ID: resp.ID, Amount: resp.Amount}
	if st.ID == "" {
		st.ID = id
	}
	st.StatusCode, st.StatusName = decodeGatewayStatus(resp.Status)
	return st, nil
}

func (g *PagouGateway) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", g.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "usecalistar/1.0")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrGatewayUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: %s", ErrGatewayRejected, gatewayErrorMessage(raw, resp.StatusCode))
	}
	return raw, nil
}

func normalizePixPayment(resp pagouPixResponse) (PixPayment, error) {
	code := ""
	image := ""
	if resp.Payload != nil {
		code = resp.Payload.Data
		image = resp.Payload.Image
	}
	if code == "" {
		code = resp.PixQRCode
	}
	if image == "" {
		image = resp.PixQRCodeBase64
	}

	if strings.TrimSpace(resp.ID) == "" || strings.TrimSpace(code) == "" || strings.TrimSpace(image) == "" {
		return PixPayment{}, fmt.Errorf("%w: missing id, pix code or qr image", ErrMalformedGatewayResponse)
	}

	if !strings.HasPrefix(image, "data:") {
		image = "data:image/png;base64," + image
	}

	return PixPayment{
		ID:          resp.ID,
		Amount:      resp.Amount,
		PixCode:     code,
		QRCodeImage: image,
	}, nil
}

func decodeGatewayStatus(raw json.RawMessage) (code int, name string) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, ""
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return 0, str
	}
	return 0, ""
}

func gatewayErrorMessage(raw []byte, statusCode int) string {
	var e pagouErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
	}
	return "status " + strconv.Itoa(statusCode)
}
