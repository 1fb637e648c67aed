package gameapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/hksl/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL        = "https://misguided.enterprises/hkgi/"
	DefaultRequestTimeout = 10 * time.Second
	maxResponseBytes      = 4 << 20
)

var ErrUnexpectedStatus = errors.New("unexpected status")

// Client talks to the hkgi HTTP API. Reads are retried once on a transport
// error or a 5xx; mutations are sent exactly once.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

type signupRequest struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

type gibRequest struct {
	Person string        `json:"person"`
	Item   domain.ItemID `json:"item"`
	Amount int           `json:"amount"`
}

type useItemRequest struct {
	Item domain.ItemID `json:"item"`
}

type craftRequest struct {
	PlotIndex   int `json:"plot_index"`
	RecipeIndex int `json:"recipe_index"`
}

type verdictResponse struct {
	OK  *bool  `json:"ok"`
	Msg string `json:"msg"`
}

func (c Client) Manifest(ctx context.Context) (domain.Manifest, error) {
	body, err := c.read(ctx, "manifest", nil)
	if err != nil {
		return domain.Manifest{}, err
	}

	var payload manifestResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}

	return payload.toDomain()
}

func (c Client) Stead(ctx context.Context, creds domain.Credentials) (domain.Stead, error) {
	body, err := c.read(ctx, "getstead", &creds)
	if err != nil {
		return domain.Stead{}, err
	}

	var payload steadResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Stead{}, fmt.Errorf("decode stead: %w", err)
	}

	return payload.toDomain(), nil
}

func (c Client) TestAuth(ctx context.Context, creds domain.Credentials) (domain.Verdict, error) {
	return c.mutate(ctx, "testauth", &creds, struct{}{})
}

func (c Client) Signup(ctx context.Context, creds domain.Credentials) (domain.Verdict, error) {
	return c.mutate(ctx, "signup", nil, signupRequest{User: creds.Username, Pass: creds.Password})
}

func (c Client) Gib(ctx context.Context, creds domain.Credentials, transfer domain.Transfer) (domain.Verdict, error) {
	return c.mutate(ctx, "gib", &creds, gibRequest{
		Person: transfer.Recipient,
		Item:   transfer.Item,
		Amount: transfer.Amount,
	})
}

func (c Client) UseItem(ctx context.Context, creds domain.Credentials, item domain.ItemID) (domain.Result, error) {
	return c.act(ctx, "useitem", &creds, useItemRequest{Item: item})
}

func (c Client) Craft(ctx context.Context, creds domain.Credentials, plotIndex, recipeIndex int) (domain.Result, error) {
	return c.act(ctx, "craft", &creds, craftRequest{PlotIndex: plotIndex, RecipeIndex: recipeIndex})
}

func (c Client) read(ctx context.Context, path string, creds *domain.Credentials) ([]byte, error) {
	body, status, err := c.do(ctx, http.MethodGet, path, creds, nil)
	if retryable(ctx, status, err) {
		c.logger().Warn("retrying game api read", zap.String("path", path), zap.Int("status", status), zap.Error(err))
		body, status, err = c.do(ctx, http.MethodGet, path, creds, nil)
	}
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("get %s: %w %d", path, ErrUnexpectedStatus, status)
	}

	return body, nil
}

// mutate posts payload and decodes the {ok, msg} verdict. A verdict body is
// honoured whatever the status code; only responses without one are errors.
func (c Client) mutate(ctx context.Context, path string, creds *domain.Credentials, payload any) (domain.Verdict, error) {
	body, status, err := c.post(ctx, path, creds, payload)
	if err != nil {
		return domain.Verdict{}, err
	}

	var decoded verdictResponse
	if err := json.Unmarshal(body, &decoded); err != nil || decoded.OK == nil {
		if !isSuccess(status) {
			return domain.Verdict{}, fmt.Errorf("post %s: %w %d", path, ErrUnexpectedStatus, status)
		}
		if err != nil {
			return domain.Verdict{}, fmt.Errorf("decode %s verdict: %w", path, err)
		}
		return domain.Verdict{}, fmt.Errorf("decode %s verdict: missing ok field", path)
	}

	return domain.Verdict{OK: *decoded.OK, Msg: decoded.Msg}, nil
}

// act posts payload and keeps the body as an opaque result. Any 2xx body is a
// success; a non-2xx status is an error unless the body is a verdict.
func (c Client) act(ctx context.Context, path string, creds *domain.Credentials, payload any) (domain.Result, error) {
	body, status, err := c.post(ctx, path, creds, payload)
	if err != nil {
		return domain.Result{}, err
	}

	result := domain.Result{Body: string(body)}
	var decoded verdictResponse
	if json.Unmarshal(body, &decoded) == nil && decoded.OK != nil {
		result.Verdict = &domain.Verdict{OK: *decoded.OK, Msg: decoded.Msg}
	}
	if !isSuccess(status) && result.Verdict == nil {
		return domain.Result{}, fmt.Errorf("post %s: %w %d", path, ErrUnexpectedStatus, status)
	}

	return result, nil
}

func (c Client) post(ctx context.Context, path string, creds *domain.Credentials, payload any) ([]byte, int, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("encode %s request: %w", path, err)
	}

	return c.do(ctx, http.MethodPost, path, creds, encoded)
}

func (c Client) do(ctx context.Context, method, path string, creds *domain.Credentials, payload []byte) ([]byte, int, error) {
	endpoint, err := buildAPIURL(c.baseURL(), path)
	if err != nil {
		return nil, 0, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", strings.ToLower(method), path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read %s response: %w", path, err)
	}

	return body, resp.StatusCode, nil
}

func (c Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func retryable(ctx context.Context, status int, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		return true
	}
	return status >= http.StatusInternalServerError
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// buildAPIURL resolves path against baseURL. The base is treated as a
// directory so "https://host/hkgi" and "https://host/hkgi/" are equivalent.
func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	endpoint, err := parsed.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
