package payment

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/membership"
)

func setupRouter(repo *MockRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc, _, _ := newTestService(repo)
	h := NewHandler(svc)

	r := gin.New()
	r.POST("/payments", h.RecordPayment)
	r.GET("/payments", h.ListPayments)
	r.GET("/payments/:id", h.GetPayment)
	r.POST("/admin/payments/:id/refund", h.RefundPayment)
	r.GET("/admin/payments/summary", h.Summary)
	return r
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_RecordPayment(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Record", mock.Anything, mock.MatchedBy(func(p *Payment) bool {
		return p.IdempotencyKey != nil && *p.IdempotencyKey == "hdr-key"
	}), mock.Anything, mock.Anything).Return(&Result{
		Payment:       &Payment{ID: 5, MemberID: 20, AmountCents: 1000, Method: MethodCash},
		AmountPending: 0,
		PaymentStatus: membership.PaymentPaid,
	}, nil)

	w := do(setupRouter(repo), http.MethodPost, "/payments",
		`{"membership_id":3,"amount_cents":1000,"method":"cash"}`,
		map[string]string{"Idempotency-Key": "hdr-key"})
	require.Equal(t, http.StatusCreated, w.Code)

	var res Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 5, res.Payment.ID)
	assert.Equal(t, membership.PaymentPaid, res.PaymentStatus)
}

func TestHandler_RecordPayment_Replay(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&Result{Payment: &Payment{ID: 5}, Replayed: true}, nil)

	w := do(setupRouter(repo), http.MethodPost, "/payments",
		`{"membership_id":3,"amount_cents":1000,"method":"cash","idempotency_key":"k"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RecordPayment_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{
			name: "bad method",
			body: `{"membership_id":3,"amount_cents":1000,"method":"barter"}`,
			want: http.StatusBadRequest,
		},
		{
			name: "overpayment",
			body: `{"membership_id":3,"amount_cents":1000,"method":"card"}`,
			err:  ErrOverpayment,
			want: http.StatusConflict,
		},
		{
			name: "installment not open",
			body: `{"membership_id":3,"amount_cents":1000,"method":"card","installment_id":8}`,
			err:  ErrInstallmentNotOpen,
			want: http.StatusConflict,
		},
		{
			name: "unknown membership",
			body: `{"membership_id":99,"amount_cents":1000,"method":"card"}`,
			err:  membership.ErrMembershipNotFound,
			want: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			if tt.err != nil {
				repo.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			w := do(setupRouter(repo), http.MethodPost, "/payments", tt.body, nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_ListPayments_Filters(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f ListFilter) bool {
		return f.MemberID == 20 && f.Method == MethodCard &&
			f.From != nil && f.From.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			f.To != nil && f.To.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	})).Return([]Payment{{ID: 1}}, nil)

	w := do(setupRouter(repo), http.MethodGet, "/payments?member_id=20&method=card&from=2024-03-01&to=2024-03-31", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestHandler_ListPayments_BadDate(t *testing.T) {
	w := do(setupRouter(new(MockRepository)), http.MethodGet, "/payments?from=03/01/2024", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListPayments_BadIDFilter(t *testing.T) {
	repo := new(MockRepository)
	for _, q := range []string{"member_id=abc", "membership_id=-3", "member_id=1.5"} {
		w := do(setupRouter(repo), http.MethodGet, "/payments?"+q, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_GetPayment_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, 7).Return(nil, ErrPaymentNotFound)

	w := do(setupRouter(repo), http.MethodGet, "/payments/7", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Refund(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Refund", mock.Anything, 7, "mistake", mock.Anything).Return(nil, ErrAlreadyRefunded)

	r := setupRouter(repo)
	w := do(r, http.MethodPost, "/admin/payments/7/refund", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/admin/payments/7/refund", `{"reason":"mistake"}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
