// Package rest implements ports.AdminClient over the application server's
// REST management API. Every method issues exactly one HTTP call; any
// non-2xx response is an error, which keeps the runner's fail-fast
// semantics intact.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/provtools/wlsprov/pkg/domain"
	"github.com/provtools/wlsprov/pkg/ports"
)

const (
	editBase      = "/management/weblogic/latest/edit"
	lifecycleBase = "/management/lifecycle/latest/domainCreation"
)

// Client talks to a single admin instance.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.AdminClient = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests and for
// custom TLS setups).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a structured logger for request-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for the admin instance at baseURL.
func New(baseURL, username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// targetIdentity serializes a deployment target the way the management API
// expects it.
func targetIdentity(t domain.Target) map[string]any {
	collection := "servers"
	if strings.EqualFold(t.Type, "cluster") {
		collection = "clusters"
	}
	return map[string]any{"identity": []string{collection, t.Name}}
}

func (c *Client) do(ctx context.Context, method, path string, body any) error {
	_, err := c.doRead(ctx, method, path, body)
	return err
}

func (c *Client) doRead(ctx context.Context, method, path string, body any) (int, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	// The management API rejects state-changing requests without this header.
	req.Header.Set("X-Requested-By", "wlsprov")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("admin call", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode == http.StatusBadRequest && bytes.Contains(detail, []byte("already exists")) {
		return resp.StatusCode, fmt.Errorf("%s %s: %w", method, path, domain.ErrResourceExists)
	}
	return resp.StatusCode, fmt.Errorf("%s %s: server returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(detail)))
}

// Ping verifies the management endpoint answers with the configured
// credentials.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/management/weblogic/latest/domainConfig?links=none", nil); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrNotConnected, err)
	}
	return nil
}

func (c *Client) ReadTemplate(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodPost, lifecycleBase+"/template", map[string]any{"path": path})
}

func (c *Client) SetDomainName(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, lifecycleBase+"/name", map[string]any{"name": name})
}

func (c *Client) ConfigureAdminServer(ctx context.Context, spec domain.AdminServerSpec) error {
	return c.do(ctx, http.MethodPost, lifecycleBase+"/adminServer", map[string]any{
		"name":       spec.Name,
		"listenPort": spec.ListenPort,
	})
}

func (c *Client) SetCredentials(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, lifecycleBase+"/credentials", map[string]any{
		"username": username,
		"password": password,
	})
}

func (c *Client) SetProductionMode(ctx context.Context, enabled bool) error {
	return c.do(ctx, http.MethodPost, lifecycleBase+"/productionMode", map[string]any{"enabled": enabled})
}

func (c *Client) EnableAdministrationPort(ctx context.Context, port int) error {
	return c.do(ctx, http.MethodPost, lifecycleBase+"/administrationPort", map[string]any{
		"enabled": true,
		"port":    port,
	})
}

func (c *Client) CreateAdminSSLChannel(ctx context.Context, server string, port int) error {
	return c.do(ctx, http.MethodPost, lifecycleBase+"/adminServer/channels", map[string]any{
		"name":       "AdminSSLChannel",
		"server":     server,
		"listenPort": port,
		"protocol":   "admin",
	})
}

func (c *Client) WriteDomain(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, lifecycleBase+"/write", map[string]any{"name": name})
}

func (c *Client) StartEdit(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, editBase+"/changeManager/startEdit", map[string]any{})
}

func (c *Client) Activate(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, editBase+"/changeManager/activate", map[string]any{})
}

// JMSServerExists probes the edit tree for the named JMS server. A 404 means
// the server is absent; any other non-2xx status is a real error.
func (c *Client) JMSServerExists(ctx context.Context, name string) (bool, error) {
	status, err := c.doRead(ctx, http.MethodGet, editBase+"/JMSServers/"+url.PathEscape(name)+"?links=none", nil)
	if status == http.StatusNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) CreateJMSServer(ctx context.Context, name string, target domain.Target) error {
	return c.do(ctx, http.MethodPost, editBase+"/JMSServers", map[string]any{
		"name":    name,
		"targets": []any{targetIdentity(target)},
	})
}

func (c *Client) CreateJMSModule(ctx context.Context, name string, target domain.Target) error {
	return c.do(ctx, http.MethodPost, editBase+"/JMSSystemResources", map[string]any{
		"name":    name,
		"targets": []any{targetIdentity(target)},
	})
}

func (c *Client) CreateSubDeployment(ctx context.Context, module, name, jmsServer string) error {
	return c.do(ctx, http.MethodPost, c.modulePath(module)+"/subDeployments", map[string]any{
		"name":    name,
		"targets": []any{map[string]any{"identity": []string{"JMSServers", jmsServer}}},
	})
}

func (c *Client) CreateConnectionFactory(ctx context.Context, module string, cf domain.ConnectionFactory) error {
	return c.do(ctx, http.MethodPost, c.resourcePath(module)+"/connectionFactories", map[string]any{
		"name":                    cf.Name,
		"jndiName":                cf.JNDI,
		"defaultTargetingEnabled": true,
	})
}

func (c *Client) CreateQueue(ctx context.Context, module string, q domain.Queue, subDeployment string) error {
	return c.do(ctx, http.MethodPost, c.resourcePath(module)+"/queues", map[string]any{
		"name":              q.Name,
		"jndiName":          q.JNDI,
		"subDeploymentName": subDeployment,
	})
}

func (c *Client) CreateDistributedQueue(ctx context.Context, module string, dq domain.DistributedQueue) error {
	return c.do(ctx, http.MethodPost, c.resourcePath(module)+"/distributedQueues", map[string]any{
		"name":                dq.Name,
		"jndiName":            dq.JNDI,
		"loadBalancingPolicy": "Round-Robin",
	})
}

func (c *Client) AddDistributedQueueMember(ctx context.Context, module, distributedQueue, member string) error {
	path := c.resourcePath(module) + "/distributedQueues/" + url.PathEscape(distributedQueue) + "/distributedQueueMembers"
	return c.do(ctx, http.MethodPost, path, map[string]any{"name": member})
}

// Close releases idle connections. The REST transport has no session to
// tear down; the edit session ends with Activate.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) modulePath(module string) string {
	return editBase + "/JMSSystemResources/" + url.PathEscape(module)
}

func (c *Client) resourcePath(module string) string {
	return c.modulePath(module) + "/JMSResource"
}
