package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kairos/turn-engine/internal/api/middleware"
	"kairos/turn-engine/internal/constant"
	"kairos/turn-engine/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeQueueService struct {
	requestTicket func(serviceId int64, document, name string) (domain.Ticket, error)
	advanceQueue  func(serviceId, staffUserId int64) (*domain.Ticket, error)
	summary       domain.QueueSummary
	pending       *domain.Ticket
	cancelled     bool
}

func (f *fakeQueueService) RequestTicket(_ context.Context, serviceId int64, document, name string) (domain.Ticket, error) {
	return f.requestTicket(serviceId, document, name)
}

func (f *fakeQueueService) CancelTicket(_ context.Context, _ int64, _ string) (bool, error) {
	return f.cancelled, nil
}

func (f *fakeQueueService) AdvanceQueue(_ context.Context, serviceId, staffUserId int64) (*domain.Ticket, error) {
	return f.advanceQueue(serviceId, staffUserId)
}

func (f *fakeQueueService) GetSummary(_ context.Context, _ int64) (domain.QueueSummary, error) {
	return f.summary, nil
}

func (f *fakeQueueService) GetPendingTicketForClient(_ context.Context, _ string, _ int64) (*domain.Ticket, error) {
	return f.pending, nil
}

func (f *fakeQueueService) GetRecentCalled(_ context.Context, _ int) ([]domain.Ticket, error) {
	return nil, nil
}

func (f *fakeQueueService) ListTickets(_ context.Context, _, _ int) ([]domain.Ticket, int64, error) {
	return nil, 0, nil
}

func (f *fakeQueueService) ListServices(_ context.Context) ([]domain.Service, error) {
	return nil, nil
}

func (f *fakeQueueService) HandledTotals(_ context.Context) ([]domain.HandledCount, error) {
	return nil, nil
}

type fakeSubscriber struct{}

func (fakeSubscriber) Subscribe() (<-chan domain.QueueEvent, func()) {
	ch := make(chan domain.QueueEvent)
	close(ch)
	return ch, func() {}
}

func newRouter(svc *fakeQueueService) *gin.Engine {
	h := New(svc, fakeSubscriber{})

	r := gin.New()
	r.POST("/v1/tickets", h.Create)
	r.POST("/v1/tickets/cancel", h.Cancel)
	r.GET("/v1/tickets/status", h.Status)
	r.GET("/v1/services/:id/summary", h.Summary)

	staff := r.Group("", middleware.HandleAuth())
	staff.POST("/v1/services/:id/advance", h.Advance)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTicket(t *testing.T) {
	svc := &fakeQueueService{
		requestTicket: func(serviceId int64, document, name string) (domain.Ticket, error) {
			assert.Equal(t, int64(1), serviceId)
			assert.Equal(t, "doc-1", document)
			return domain.Ticket{Id: 10, ServiceId: serviceId, Number: 1, State: domain.StatePending}, nil
		},
	}

	w := postJSON(newRouter(svc), "/v1/tickets", map[string]interface{}{
		"service_id": 1,
		"document":   "doc-1",
		"name":       "ada",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var ticket domain.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(t, 1, ticket.Number)
}

func TestCreateTicketConflict(t *testing.T) {
	svc := &fakeQueueService{
		requestTicket: func(int64, string, string) (domain.Ticket, error) {
			return domain.Ticket{}, constant.PendingTicketExistsErr
		},
	}

	w := postJSON(newRouter(svc), "/v1/tickets", map[string]interface{}{
		"service_id": 1,
		"document":   "doc-1",
		"name":       "ada",
	}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), constant.PendingTicketExistsErrMsg)
}

func TestCreateTicketInvalidBody(t *testing.T) {
	svc := &fakeQueueService{}

	w := postJSON(newRouter(svc), "/v1/tickets", map[string]interface{}{"service_id": 1}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvanceRequiresAuth(t *testing.T) {
	svc := &fakeQueueService{}

	w := postJSON(newRouter(svc), "/v1/services/1/advance", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdvanceEmptyQueue(t *testing.T) {
	svc := &fakeQueueService{
		advanceQueue: func(serviceId, staffUserId int64) (*domain.Ticket, error) {
			assert.Equal(t, int64(42), staffUserId)
			return nil, nil
		},
	}

	w := postJSON(newRouter(svc), "/v1/services/1/advance", nil, map[string]string{"X-Auth-User-Id": "42"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no pending tickets")
}

func TestAdvanceReturnsCalledTicket(t *testing.T) {
	svc := &fakeQueueService{
		advanceQueue: func(serviceId, staffUserId int64) (*domain.Ticket, error) {
			return &domain.Ticket{Id: 5, ServiceId: serviceId, Number: 3, State: domain.StateCalled}, nil
		},
	}

	w := postJSON(newRouter(svc), "/v1/services/1/advance", nil, map[string]string{"X-Auth-User-Id": "42"})

	require.Equal(t, http.StatusOK, w.Code)

	var ticket domain.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(t, domain.StateCalled, ticket.State)
	assert.Equal(t, 3, ticket.Number)
}

func TestSummary(t *testing.T) {
	svc := &fakeQueueService{
		summary: domain.QueueSummary{ServiceId: 1, CurrentNumber: 1, LastNumber: 2, PendingCount: 1},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/services/1/summary", nil)
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary domain.QueueSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, svc.summary, summary)
}

func TestStatusValidation(t *testing.T) {
	svc := &fakeQueueService{}

	req := httptest.NewRequest(http.MethodGet, "/v1/tickets/status?document=", nil)
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
