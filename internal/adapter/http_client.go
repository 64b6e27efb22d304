package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/airdash/airdash/internal/config"
	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/models"
)

// namespaceHeader carries the deployment namespace on every request. The
// server rejects requests from a foreign namespace with HTTP 400.
const namespaceHeader = "X-Airdash-Namespace"

type httpRemoteAdapter struct {
	client    *resty.Client
	namespace string

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

// HTTPRemoteAdapter is the combined transport surface of the HTTP client:
// record operations plus session management over one shared bearer session.
type HTTPRemoteAdapter interface {
	RemoteStore
	SessionClient
}

// NewHTTPRemoteAdapter constructs the HTTP/REST implementation of
// [RemoteStore] and [SessionClient]. It normalises and validates the base URL
// from remoteCfg.ServerURL and configures the underlying resty client with
// the resolved base URL, request timeout, and namespace header.
//
// Returns an error if remoteCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAdapter(remoteCfg config.ClientRemote, appCfg config.ClientApp, logger *logger.Logger) (HTTPRemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(remoteCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote server url: %w", err)
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(remoteCfg.RequestTimeout).
		SetHeader(namespaceHeader, appCfg.Namespace)

	return &httpRemoteAdapter{client: cli, namespace: appCfg.Namespace, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteAdapter) SetSession(session models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = session
}

func (h *httpRemoteAdapter) Session() models.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

func (h *httpRemoteAdapter) ClearSession() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = models.Session{}
}

func (h *httpRemoteAdapter) Register(ctx context.Context, login, password string) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", login, password)
}

func (h *httpRemoteAdapter) Login(ctx context.Context, login, password string) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", login, password)
}

func (h *httpRemoteAdapter) authenticate(ctx context.Context, path, login, password string) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: login, Password: password}).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	identity, err := parseIdentityFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth parse identity: %w", err)
	}

	session := models.Session{Identity: identity, Token: token, SavedAt: time.Now().UTC()}
	h.SetSession(session)
	return session, nil
}

func (h *httpRemoteAdapter) Save(ctx context.Context, collection string, record models.Record) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put(recordPath(collection, record.Key))
	if err != nil {
		return fmt.Errorf("save record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) Load(ctx context.Context, collection, key string) (models.Record, error) {
	resp, err := h.authedRequest(ctx).Get(recordPath(collection, key))
	if err != nil {
		return models.Record{}, fmt.Errorf("load record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	var record models.Record
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.Record{}, fmt.Errorf("decode record response: %w", err)
	}

	return record, nil
}

func (h *httpRemoteAdapter) LoadCollection(ctx context.Context, collection, keyPrefix string) (map[string]models.Record, error) {
	req := h.authedRequest(ctx)
	if keyPrefix != "" {
		req.SetQueryParam("prefix", keyPrefix)
	}

	resp, err := req.Get("/api/records/" + url.PathEscape(collection))
	if err != nil {
		return nil, fmt.Errorf("load collection request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var list models.RecordListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decode collection response: %w", err)
	}
	if list.Length != len(list.Records) {
		return nil, fmt.Errorf("collection response length mismatch: declared %d, got %d", list.Length, len(list.Records))
	}

	return list.Records, nil
}

func (h *httpRemoteAdapter) Delete(ctx context.Context, collection, key string) error {
	resp, err := h.authedRequest(ctx).Delete(recordPath(collection, key))
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session := h.Session(); session.Token != "" {
		req.SetHeader("Authorization", "Bearer "+session.Token)
	}
	return req
}

func recordPath(collection, key string) string {
	return "/api/records/" + url.PathEscape(collection) + "/" + url.PathEscape(key)
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// parseIdentityFromJWT reads the subject claim without verifying the
// signature. Verification is the server's job; the client only needs the
// identity segment for remote paths and status reporting.
func parseIdentityFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}

	return sub, nil
}
