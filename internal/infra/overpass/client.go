// Package overpass implements the geodata client against Overpass API interpreter endpoints.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"servicelocator/config"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxErrorBodyBytes bounds how much of an error response is kept for logging.
const maxErrorBodyBytes = 512

type interpreterResponse struct {
	Elements []entity.GeoElement `json:"elements"`
}

type client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// ClientParams holds dependencies for the Overpass client, injected by Fx
type ClientParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client `optional:"true"`
}

// NewClient creates a GeodataClient. Deadlines come from the caller's context.
func NewClient(params ClientParams) service.GeodataClient {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	userAgent := params.Config.Env.ServiceName
	if params.Config.Details != nil && params.Config.Details.UserAgent != "" {
		userAgent = params.Config.Details.UserAgent
	}

	return &client{
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     params.Logger,
	}
}

// Interpret posts the query as a plain-text body and decodes the element list.
func (c *client) Interpret(ctx context.Context, endpoint, query string) ([]entity.GeoElement, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build overpass request")
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "overpass request to %s failed", endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		logger.Debug("Overpass returned non-success status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)

		return nil, domainerrors.ErrUpstreamError.WithDetails(fmt.Sprintf("%s returned status %d", endpoint, resp.StatusCode))
	}

	var decoded interpreterResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrapf(err, "failed to decode overpass response from %s", endpoint)
	}

	if decoded.Elements == nil {
		return []entity.GeoElement{}, nil
	}

	return decoded.Elements, nil
}
