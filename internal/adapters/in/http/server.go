// Package http is the inbound HTTP adapter: webhook ingestion from the shop
// automation, the public tracker lookup, and the admin link backfill.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// eventFailedUpdate is the webhook event value that routes a request to the
// failed-update log instead of the upsert engine.
const eventFailedUpdate = "failed_update"

// Server coordinates between HTTP handlers and application use cases.
// All negative outcomes are reported as structured {ok:false, error} bodies;
// raw faults never reach the caller.
type Server struct {
	sharedSecret string

	// Command handlers
	upsertOrderHandler     commands.UpsertOrderCommandHandler
	logFailedUpdateHandler commands.LogFailedUpdateCommandHandler
	refreshLinksHandler    commands.RefreshTrackerLinksCommandHandler

	// Query handlers
	trackOrderHandler queries.TrackOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers. An empty shared secret disables webhook authentication; that is
// meant for local development only.
func NewServer(
	sharedSecret string,
	upsertOrderHandler commands.UpsertOrderCommandHandler,
	logFailedUpdateHandler commands.LogFailedUpdateCommandHandler,
	refreshLinksHandler commands.RefreshTrackerLinksCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
) *Server {
	return &Server{
		sharedSecret:           sharedSecret,
		upsertOrderHandler:     upsertOrderHandler,
		logFailedUpdateHandler: logFailedUpdateHandler,
		refreshLinksHandler:    refreshLinksHandler,
		trackOrderHandler:      trackOrderHandler,
	}
}

// RegisterRoutes attaches all handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhook", s.HandleWebhook)
	e.GET("/webhook", s.HandleWebhook) // ping only; the shop pings with GET
	e.GET("/track", s.HandleTrack)
	e.POST("/admin/refresh-links", s.HandleRefreshLinks)
}

// errorBody is the uniform negative result payload.
type errorBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func fail(message string) errorBody {
	return errorBody{OK: false, Error: message}
}

// upsertResponse answers a successful order upsert.
type upsertResponse struct {
	OK         bool   `json:"ok"`
	OrderID    string `json:"order_id"`
	TrackerURL string `json:"tracker_url"`
}

// loggedResponse answers a successful failed-update log append.
type loggedResponse struct {
	OK     bool `json:"ok"`
	Logged bool `json:"logged"`
}

// trackResponse is the public order status payload.
type trackResponse struct {
	OK           bool   `json:"ok"`
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	StatusStep   int    `json:"status_step"`
	StatusLabel  string `json:"status_label"`
	UpdatedAt    string `json:"updated_at"`
}

// refreshResponse answers the admin link backfill.
type refreshResponse struct {
	OK        bool `json:"ok"`
	Scanned   int  `json:"scanned"`
	Refreshed int  `json:"refreshed"`
}

// HandleWebhook handles POST /webhook: either one order upsert or one
// failed-update log append per call, authenticated by the shared secret.
func (s *Server) HandleWebhook(ctx echo.Context) error {
	if isPing(ctx) {
		return ctx.String(http.StatusOK, "PONG")
	}

	payload := map[string]any{}
	if ctx.Request().Body != nil {
		// A bad body is not fatal: the secret may still arrive via query.
		_ = json.NewDecoder(ctx.Request().Body).Decode(&payload)
	}

	if !s.authorized(ctx, payload) {
		return ctx.JSON(http.StatusUnauthorized, fail("unauthorized"))
	}

	if stringField(payload, "event") == eventFailedUpdate {
		cmd := commands.NewLogFailedUpdateCommand(
			stringField(payload, "order_id"),
			stringField(payload, "customer_name"),
			intField(payload, "status_step", 0),
			stringField(payload, "reason"),
			ctx.RealIP(),
		)
		if err := s.logFailedUpdateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return ctx.JSON(http.StatusInternalServerError, fail(err.Error()))
		}
		return ctx.JSON(http.StatusOK, loggedResponse{OK: true, Logged: true})
	}

	rawID := orderIDField(payload)
	if rawID == "" {
		return ctx.JSON(http.StatusBadRequest, fail("missing order_id"))
	}

	orderID, err := kernel.NewOrderID(rawID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail("missing order_id"))
	}

	cmd, err := commands.NewUpsertOrderCommand(
		orderID,
		stringField(payload, "customer_name"),
		intField(payload, "status_step", 1),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	result, err := s.upsertOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, fail(err.Error()))
	}

	return ctx.JSON(http.StatusOK, upsertResponse{
		OK:         true,
		OrderID:    result.OrderID,
		TrackerURL: result.TrackerURL,
	})
}

// HandleTrack handles GET /track: the public status lookup behind the
// tracker page. Supports JSONP via the callback query parameter for
// script-tag embedding.
func (s *Server) HandleTrack(ctx echo.Context) error {
	if isPing(ctx) {
		return ctx.String(http.StatusOK, "PONG")
	}

	query, err := queries.NewTrackOrderQuery(ctx.QueryParam("o"), ctx.QueryParam("t"))
	if err != nil {
		return s.respondTrack(ctx, http.StatusBadRequest, fail("order id and token are required"))
	}

	status, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.respondTrack(ctx, http.StatusNotFound, fail("not found"))
		}
		return s.respondTrack(ctx, http.StatusInternalServerError, fail(err.Error()))
	}

	return s.respondTrack(ctx, http.StatusOK, trackResponse{
		OK:           true,
		OrderID:      status.OrderID,
		CustomerName: status.CustomerName,
		StatusStep:   status.StatusStep,
		StatusLabel:  status.StatusLabel,
		UpdatedAt:    status.LastUpdated,
	})
}

// HandleRefreshLinks handles POST /admin/refresh-links: recompute tokens and
// tracker links across all orders. Guarded by the same shared secret as the
// webhook.
func (s *Server) HandleRefreshLinks(ctx echo.Context) error {
	if !s.authorized(ctx, nil) {
		return ctx.JSON(http.StatusUnauthorized, fail("unauthorized"))
	}

	result, err := s.refreshLinksHandler.Handle(ctx.Request().Context(), commands.NewRefreshTrackerLinksCommand())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, fail(err.Error()))
	}

	return ctx.JSON(http.StatusOK, refreshResponse{
		OK:        true,
		Scanned:   result.Scanned,
		Refreshed: result.Refreshed,
	})
}

// respondTrack writes the lookup result either as plain JSON or wrapped in a
// callback invocation when the page asked for JSONP.
func (s *Server) respondTrack(ctx echo.Context, status int, body any) error {
	if callback := strings.TrimSpace(ctx.QueryParam("callback")); callback != "" {
		// Script tags cannot read non-200 responses, so JSONP always ships
		// the structured body with a 200.
		return ctx.JSONP(http.StatusOK, callback, body)
	}
	return ctx.JSON(status, body)
}

// authorized checks the shared secret against the body and the query string.
func (s *Server) authorized(ctx echo.Context, payload map[string]any) bool {
	if s.sharedSecret == "" {
		return true
	}
	if stringField(payload, "secret") == s.sharedSecret {
		return true
	}
	return ctx.QueryParam("secret") == s.sharedSecret
}

func isPing(ctx echo.Context) bool {
	return ctx.QueryParam("ping") == "1"
}

// orderIDField extracts the order identifier from its known spellings:
// order_id, id, or nested order.id.
func orderIDField(payload map[string]any) string {
	if v := stringField(payload, "order_id"); v != "" {
		return v
	}
	if v := stringField(payload, "id"); v != "" {
		return v
	}
	if nested, ok := payload["order"].(map[string]any); ok {
		return stringField(nested, "id")
	}
	return ""
}

// stringField reads a payload field as a trimmed string. Numeric identifiers
// arrive as JSON numbers and are rendered without a decimal part.
func stringField(payload map[string]any, key string) string {
	switch v := payload[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return ""
}

// intField reads a payload field as an integer, accepting JSON numbers and
// numeric strings. Anything else yields the default.
func intField(payload map[string]any, key string, def int) int {
	switch v := payload[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}
