package tryon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

var (
	ErrMissingFitRoomAPIKey = errors.New("missing FITROOM_API_KEY")

	// ErrInsufficientCredits maps the provider's 402: the account quota is
	// exhausted, retrying will not help.
	ErrInsufficientCredits = errors.New("try-on provider credits exhausted")

	// ErrRateLimited maps the provider's 429: the caller should back off
	// before retrying.
	ErrRateLimited = errors.New("try-on provider rate limited")
)

const defaultRequestTimeout = 30 * time.Second

type TaskCreated struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

type TaskResult struct {
	Status            string `json:"status"`
	Progress          int    `json:"progress"`
	DownloadSignedURL string `json:"download_signed_url,omitempty"`
	Error             string `json:"error,omitempty"`
}

// FitRoomClient talks to the FitRoom try-on task API: multipart task
// creation, JSON status reads, plus plain downloads of garment images and
// intermediate results (the API takes binary payloads, not URL references).

type FitRoomClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewFitRoomClient(baseURL, apiKey string) (*FitRoomClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[tryon][gateway] missing FITROOM_API_KEY")
		return nil, ErrMissingFitRoomAPIKey
	}
	log.Printf("[tryon][gateway] FitRoom client initialized base_url=%s", baseURL)
	return &FitRoomClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

func (c *FitRoomClient) CreateTask(ctx context.Context, modelImage, clothImage []byte, clothType string) (TaskCreated, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := writeFilePart(mw, "model_image", "model.jpg", modelImage); err != nil {
		return TaskCreated{}, err
	}
	if err := writeFilePart(mw, "cloth_image", "cloth.jpg", clothImage); err != nil {
		return TaskCreated{}, err
	}
	if err := mw.WriteField("cloth_type", clothType); err != nil {
		return TaskCreated{}, err
	}
	if err := mw.Close(); err != nil {
		return TaskCreated{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tryon/v2/tasks", &body)
	if err != nil {
		return TaskCreated{}, err
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	raw, err := c.roundTrip(req)
	if err != nil {
		log.Printf("[tryon][gateway] create task failed cloth_type=%s err=%v", clothType, err)
		return TaskCreated{}, err
	}

	var out TaskCreated
	if err := json.Unmarshal(raw, &out); err != nil {
		return TaskCreated{}, fmt.Errorf("decode create task response: %w", err)
	}
	if strings.TrimSpace(out.TaskID) == "" {
		return TaskCreated{}, errors.New("create task response missing task_id")
	}
	log.Printf("[tryon][gateway] task created task_id=%s cloth_type=%s", out.TaskID, clothType)
	return out, nil
}

func (c *FitRoomClient) GetTask(ctx context.Context, taskID string) (TaskResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tryon/v2/tasks/"+taskID, nil)
	if err != nil {
		return TaskResult{}, err
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	raw, err := c.roundTrip(req)
	if err != nil {
		return TaskResult{}, err
	}

	var out TaskResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return TaskResult{}, fmt.Errorf("decode task status response: %w", err)
	}
	return out, nil
}

// FetchImage downloads an image by URL (garment photos from the catalog CDN,
// intermediate composition results from the provider's signed URLs).
func (c *FitRoomClient) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *FitRoomClient) roundTrip(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrInsufficientCredits
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("fitroom api error: %d - %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

func writeFilePart(mw *multipart.Writer, field, filename string, data []byte) error {
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}
