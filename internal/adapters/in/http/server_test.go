package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "droneflow/internal/adapters/in/http"
	"droneflow/internal/adapters/out/scheduler"
	"droneflow/internal/adapters/out/walletprovider"
	"droneflow/internal/core/application/workflow"
	"droneflow/internal/core/domain/model/order"
	"droneflow/internal/core/domain/model/payment"
	"droneflow/internal/core/domain/model/wallet"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, intent workflow.Intent) (workflow.Snapshot, error) {
	args := m.Called(ctx, intent)
	return args.Get(0).(workflow.Snapshot), args.Error(1)
}

func newEcho(d httpin.Dispatcher, feed *httpin.Feed) *echo.Echo {
	e := echo.New()
	httpin.NewServer(d, feed, slog.Default()).Register(e)
	return e
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workflow/intents", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestServer_Health(t *testing.T) {
	rec := get(newEcho(&mockDispatcher{}, httpin.NewFeed(0)), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_PostIntent(t *testing.T) {
	t.Run("should dispatch a parsed intent", func(t *testing.T) {
		d := &mockDispatcher{}
		d.On("Dispatch", mock.Anything, mock.MatchedBy(func(i workflow.Intent) bool {
			set, ok := i.(workflow.SetFieldIntent)
			return ok && set.Field() == order.RecipientAddress && set.Value() == "456 Oak Ave"
		})).Return(workflow.Snapshot{Version: 7}, nil).Once()

		rec := post(newEcho(d, httpin.NewFeed(0)), `{"type":"setField","field":"deliveryAddress","value":"456 Oak Ave"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		res := decode[map[string]any](t, rec)
		assert.NotContains(t, res, "error")
		assert.EqualValues(t, 7, res["snapshot"].(map[string]any)["version"])
		d.AssertExpectations(t)
	})

	t.Run("should reject malformed requests", func(t *testing.T) {
		e := newEcho(&mockDispatcher{}, httpin.NewFeed(0))

		for _, body := range []string{`{`, `{"type":"teleport"}`, `{"type":"setField","field":"color"}`} {
			rec := post(e, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})

	t.Run("should map errors onto status codes", func(t *testing.T) {
		tests := []struct {
			err    error
			status int
			code   string
		}{
			{wallet.ErrNotConnected, http.StatusUnprocessableEntity, "NotConnected"},
			{order.ErrValidationBlocked, http.StatusConflict, "ValidationBlocked"},
			{workflow.ErrDraftFrozen, http.StatusConflict, "DraftFrozen"},
			{workflow.ErrWorkflowBusy, http.StatusConflict, "WorkflowBusy"},
			{workflow.ErrNoTracker, http.StatusNotFound, "NoTracker"},
			{workflow.ErrWorkflowClosed, http.StatusServiceUnavailable, "WorkflowClosed"},
			{errors.New("boom"), http.StatusInternalServerError, "Internal"},
		}

		for _, tt := range tests {
			d := &mockDispatcher{}
			d.On("Dispatch", mock.Anything, mock.Anything).Return(workflow.Snapshot{Version: 3}, tt.err).Once()

			rec := post(newEcho(d, httpin.NewFeed(0)), `{"type":"confirmPayment"}`)

			assert.Equal(t, tt.status, rec.Code, tt.code)
			res := decode[httpin.IntentResponse](t, rec)
			require.NotNil(t, res.Error, tt.code)
			assert.Equal(t, tt.code, res.Error.Code)
			assert.Equal(t, uint64(3), res.Snapshot.Version)
		}
	})
}

func TestServer_WithController(t *testing.T) {
	feed := httpin.NewFeed(0)
	ext := walletprovider.NewExtension([]string{"sei1abc"})
	ctrl, err := workflow.NewController(
		workflow.DefaultConfig(),
		walletprovider.NewRegistry(walletprovider.NewCompass(ext)),
		scheduler.NewTimers(),
		scheduler.NewSystemClock(),
		feed,
		slog.Default(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctrl.Close() })
	e := newEcho(ctrl, feed)

	t.Run("should surface an invalid promo code as a rejection", func(t *testing.T) {
		rec := post(e, `{"type":"applyPromo","code":"summer"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		res := decode[httpin.IntentResponse](t, rec)
		assert.Equal(t, "InvalidPromoCode", res.Error.Code)
		assert.Equal(t, "15.50", res.Snapshot.Price.Total.String())
	})

	t.Run("should connect through the extension", func(t *testing.T) {
		rec := post(e, `{"type":"connectWallet"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		res := decode[map[string]any](t, rec)
		w := res["snapshot"].(map[string]any)["wallet"].(map[string]any)
		assert.Equal(t, "Connected", w["status"])
		assert.Equal(t, "sei1abc", w["address"])
		assert.EqualValues(t, 123.45, w["balance"])
	})

	t.Run("should serve the latest snapshot and notifications", func(t *testing.T) {
		rec := get(e, "/api/v1/workflow")
		assert.Equal(t, http.StatusOK, rec.Code)
		snapshot := decode[map[string]any](t, rec)
		assert.Equal(t, "Addresses", snapshot["step"])

		rec = get(e, "/api/v1/notifications")
		assert.Equal(t, http.StatusOK, rec.Code)
		notifications := decode[[]workflow.Notification](t, rec)
		require.Len(t, notifications, 2)
		assert.Equal(t, workflow.CodeWalletConnected, notifications[0].Code)
		assert.Equal(t, workflow.CodeInvalidPromoCode, notifications[1].Code)
	})
}

func TestServer_RepeatedIntents(t *testing.T) {
	feed := httpin.NewFeed(0)
	cfg := workflow.DefaultConfig()
	cfg.SettlementDelay = 10 * time.Millisecond
	cfg.HandoffDelay = time.Hour
	ext := walletprovider.NewExtension([]string{"sei1abc"})
	ctrl, err := workflow.NewController(
		cfg,
		walletprovider.NewRegistry(walletprovider.NewCompass(ext)),
		scheduler.NewTimers(),
		scheduler.NewSystemClock(),
		feed,
		slog.Default(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctrl.Close() })
	e := newEcho(ctrl, feed)

	for _, body := range []string{
		`{"type":"connectWallet"}`,
		`{"type":"setField","field":"senderName","value":"John Doe"}`,
		`{"type":"setField","field":"senderAddress","value":"123 Main St"}`,
		`{"type":"setField","field":"deliveryAddress","value":"456 Oak Ave"}`,
		`{"type":"setField","field":"recipientName","value":"Jane Smith"}`,
		`{"type":"advanceStep"}`,
		`{"type":"setField","field":"packageDescription","value":"Books"}`,
		`{"type":"setField","field":"packageWeight","value":"2.5"}`,
		`{"type":"advanceStep"}`,
	} {
		require.Equal(t, http.StatusOK, post(e, body).Code, body)
	}

	t.Run("should keep advance on the review step a no-op", func(t *testing.T) {
		rec := post(e, `{"type":"advanceStep"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		res := decode[httpin.IntentResponse](t, rec)
		assert.Nil(t, res.Error)
		assert.Equal(t, order.Review, res.Snapshot.Step)
	})

	t.Run("should answer a confirm after settlement with the current snapshot", func(t *testing.T) {
		require.Equal(t, http.StatusOK, post(e, `{"type":"confirmPayment"}`).Code)
		require.Eventually(t, func() bool {
			return ctrl.Snapshot().Payment.Status == payment.Completed
		}, 2*time.Second, 5*time.Millisecond)

		rec := post(e, `{"type":"confirmPayment"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		res := decode[httpin.IntentResponse](t, rec)
		assert.Nil(t, res.Error)
		assert.Equal(t, payment.Completed, res.Snapshot.Payment.Status)
	})
}

func TestFeed(t *testing.T) {
	t.Run("should keep the newest notifications up to the limit", func(t *testing.T) {
		feed := httpin.NewFeed(2)
		for _, code := range []workflow.Code{workflow.CodePromoApplied, workflow.CodeWalletConnected, workflow.CodeOrderConfirmed} {
			feed.Notify(workflow.Notification{Code: code, At: time.Now()})
		}

		got := feed.Notifications()

		require.Len(t, got, 2)
		assert.Equal(t, workflow.CodeOrderConfirmed, got[0].Code)
		assert.Equal(t, workflow.CodeWalletConnected, got[1].Code)
	})

	t.Run("should never go back to an older snapshot", func(t *testing.T) {
		feed := httpin.NewFeed(0)

		feed.Render(workflow.Snapshot{Version: 4})
		feed.Render(workflow.Snapshot{Version: 3})

		assert.Equal(t, uint64(4), feed.Latest().Version)
	})
}
