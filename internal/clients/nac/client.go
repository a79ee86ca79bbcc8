package nac

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/serp-response/serp-backend/internal/pkg/apierr"
	"github.com/serp-response/serp-backend/internal/pkg/envutil"
	"github.com/serp-response/serp-backend/internal/pkg/logger"
)

// Client wraps the operator's Network-as-Code REST API: device lookup,
// device location retrieval and quality-on-demand session management.
// A handle is constructed once at startup and injected into the services
// that need it.
type Client interface {
	GetDevice(ctx context.Context, phoneNumber string) (*Device, error)
	GetLocation(ctx context.Context, phoneNumber string, maxAge time.Duration) (*DeviceLocation, error)
	CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type Config struct {
	BaseURL     string
	APIKey      string
	DefaultIPv4 string
	Timeout     time.Duration
	MaxRetries  int
}

func ConfigFromEnv() Config {
	timeoutSec := envutil.Int("NAC_TIMEOUT_SECONDS", 10)
	maxRetries := envutil.Int("NAC_MAX_RETRIES", 3)

	return Config{
		BaseURL:     envutil.String("NAC_API_URL", ""),
		APIKey:      envutil.String("NAC_API_KEY", ""),
		DefaultIPv4: envutil.String("NAC_DEFAULT_IPV4", ""),
		Timeout:     time.Duration(timeoutSec) * time.Second,
		MaxRetries:  maxRetries,
	}
}

func NewFromEnv(log *logger.Logger) (Client, error) {
	return New(log, ConfigFromEnv())
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("missing NAC_API_URL")
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing NAC_API_KEY")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+cfg.APIKey)

	return &client{
		log:        log.With("client", "NACClient"),
		cfg:        cfg,
		httpClient: httpClient,
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *resty.Client
}

// NormalizePhoneNumber ensures the E.164 leading plus the gateway expects.
func NormalizePhoneNumber(phoneNumber string) string {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" || strings.HasPrefix(phoneNumber, "+") {
		return phoneNumber
	}
	return "+" + phoneNumber
}

func (c *client) GetDevice(ctx context.Context, phoneNumber string) (*Device, error) {
	phoneNumber = NormalizePhoneNumber(phoneNumber)

	var out Device
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("phoneNumber", phoneNumber).
		SetResult(&out).
		Get("/devices")
	if err != nil {
		return nil, fmt.Errorf("get device %s: %v: %w", phoneNumber, err, apierr.ErrGateway)
	}
	if resp.IsError() {
		return nil, gatewayStatusError("get device", resp)
	}
	if out.PhoneNumber == "" {
		out.PhoneNumber = phoneNumber
	}
	return &out, nil
}

func (c *client) GetLocation(ctx context.Context, phoneNumber string, maxAge time.Duration) (*DeviceLocation, error) {
	phoneNumber = NormalizePhoneNumber(phoneNumber)

	body := map[string]any{
		"device": map[string]any{
			"phoneNumber": phoneNumber,
		},
		"maxAge": int(maxAge.Seconds()),
	}

	var out DeviceLocation
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/location/retrieve")
	if err != nil {
		return nil, fmt.Errorf("get location %s: %v: %w", phoneNumber, err, apierr.ErrGateway)
	}
	if resp.IsError() {
		return nil, gatewayStatusError("get location", resp)
	}
	return &out, nil
}

func (c *client) CreateSession(ctx context.Context, req CreateSessionRequest) (*Session, error) {
	phoneNumber := NormalizePhoneNumber(req.PhoneNumber)
	serviceIPv4 := strings.TrimSpace(req.ServiceIPv4)
	if serviceIPv4 == "" {
		serviceIPv4 = c.cfg.DefaultIPv4
	}

	body := map[string]any{
		"qosProfile": req.Profile,
		"device": map[string]any{
			"phoneNumber": phoneNumber,
		},
		"applicationServer": map[string]any{
			"ipv4Address": serviceIPv4,
		},
		"duration": req.Duration,
	}

	var out Session
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post("/sessions")
	if err != nil {
		return nil, fmt.Errorf("create session for %s: %v: %w", phoneNumber, err, apierr.ErrGateway)
	}
	if resp.IsError() {
		return nil, gatewayStatusError("create session", resp)
	}
	if out.ID == "" {
		return nil, fmt.Errorf("create session for %s: empty session id: %w", phoneNumber, apierr.ErrGateway)
	}
	return &out, nil
}

func (c *client) DeleteSession(ctx context.Context, sessionID string) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Delete("/sessions/" + sessionID)
	if err != nil {
		return fmt.Errorf("delete session %s: %v: %w", sessionID, err, apierr.ErrGateway)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusNotFound {
		return gatewayStatusError("delete session", resp)
	}
	return nil
}

func gatewayStatusError(op string, resp *resty.Response) error {
	return fmt.Errorf("%s: HTTP %d: %s: %w", op, resp.StatusCode(), strings.TrimSpace(string(resp.Body())), apierr.ErrGateway)
}
