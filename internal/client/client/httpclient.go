package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pvukovic/mailpilot/internal/client/models"
	"github.com/pvukovic/mailpilot/internal/client/repositories/credentials"
	"github.com/pvukovic/mailpilot/internal/common"
	"github.com/pvukovic/mailpilot/internal/logging"
)

// request/response shapes, one closed set per endpoint
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type fetchEmailResponse struct {
	Content string `json:"content"`
}

type summarizeRequest struct {
	Content string `json:"content"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

type sendEmailRequest struct {
	Summary string `json:"summary"`
}

// HTTPClient is the Client implementation over HTTP/JSON. The credential
// store is read before every call; an unauthorized response clears it
// before the error is returned, so a stale credential is never retried.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	creds   credentials.Repository
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, creds credentials.Repository, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With("component", "api-client"),
	}
}

// do executes one request and maps the outcome onto the common.Err*
// sentinels. contentType may be empty for bodyless requests.
func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnknown, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	token, err := c.creds.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "credential read failed, sending unauthenticated", "error", err)
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// A rejected credential must not be retried silently.
		if clearErr := c.creds.Clear(ctx); clearErr != nil {
			c.log.Error(ctx, "failed to clear rejected credential", "error", clearErr)
		}
		return nil, fmt.Errorf("%w: status %d", common.ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d", common.ErrValidation, resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", common.ErrServer, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", common.ErrUnknown, resp.StatusCode)
	}
}

// doJSON marshals payload (when non-nil) and executes the request.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var (
		body        []byte
		contentType string
		err         error
	)
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrUnknown, err)
		}
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType)
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: string(password)})
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed login response: %v", common.ErrUnknown, err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: login response carries no access token", common.ErrUnknown)
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, email string, password []byte) error {
	// The backend echoes the created account; nothing client-side needs it.
	_, err := c.doJSON(ctx, http.MethodPost, "/register", registerRequest{Email: email, Password: string(password)})
	return err
}

func (c *HTTPClient) GetAgentSettings(ctx context.Context) (*models.AgentSettings, error) {
	data, err := c.do(ctx, http.MethodGet, "/ai-agent-settings", nil, "")
	if err != nil {
		return nil, err
	}

	var settings models.AgentSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%w: malformed settings response: %v", common.ErrUnknown, err)
	}
	return &settings, nil
}

func (c *HTTPClient) SaveAgentSettings(ctx context.Context, settings models.AgentSettings, file *models.TrainingFile) error {
	if file == nil {
		_, err := c.doJSON(ctx, http.MethodPost, "/ai-agent-settings", settings)
		return err
	}

	// A staged attachment switches the whole request to multipart.
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":               settings.Name,
		"description":        settings.Description,
		"promptTemplate":     settings.PromptTemplate,
		"customInstructions": settings.CustomInstructions,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("%w: %v", common.ErrUnknown, err)
		}
	}

	part, err := w.CreateFormFile("trainingFile", file.Name)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnknown, err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnknown, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnknown, err)
	}

	_, err = c.do(ctx, http.MethodPost, "/ai-agent-settings", buf.Bytes(), w.FormDataContentType())
	return err
}

func (c *HTTPClient) FetchEmail(ctx context.Context) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/fetch-email", nil, "")
	if err != nil {
		return "", err
	}

	var resp fetchEmailResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed fetch response: %v", common.ErrUnknown, err)
	}
	return resp.Content, nil
}

func (c *HTTPClient) SummarizeEmail(ctx context.Context, content string) (string, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/summarize-email", summarizeRequest{Content: content})
	if err != nil {
		return "", err
	}

	var resp summarizeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("%w: malformed summarize response: %v", common.ErrUnknown, err)
	}
	return resp.Summary, nil
}

func (c *HTTPClient) SendEmail(ctx context.Context, summary string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/send-email", sendEmailRequest{Summary: summary})
	return err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/healthz", nil, "")
	return err
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
