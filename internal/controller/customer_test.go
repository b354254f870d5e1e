package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appcontext "github.com/timelogger/timelogger/internal/app_context"
	"github.com/timelogger/timelogger/internal/controller"
	"github.com/timelogger/timelogger/internal/model"
	"github.com/timelogger/timelogger/internal/route"
	"github.com/timelogger/timelogger/internal/service"
	"github.com/timelogger/timelogger/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type memCustomerStore struct {
	rows   []model.Customer
	nextID uint
}

func newMemCustomerStore(rows ...model.Customer) *memCustomerStore {
	next := uint(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &memCustomerStore{rows: rows, nextID: next}
}

func (m *memCustomerStore) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Customer, error) {
	return append([]model.Customer(nil), m.rows...), nil
}

func (m *memCustomerStore) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Customer, error) {
	for _, r := range m.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return nil, nil
}

func (m *memCustomerStore) Create(ctx context.Context, tx *gorm.DB, customer *model.Customer) (*model.Customer, error) {
	customer.ID = m.nextID
	m.nextID++
	m.rows = append(m.rows, *customer)
	return customer, nil
}

func (m *memCustomerStore) Update(ctx context.Context, tx *gorm.DB, customer *model.Customer) (*model.Customer, error) {
	for i, r := range m.rows {
		if r.ID == customer.ID {
			m.rows[i] = *customer
			return customer, nil
		}
	}
	return nil, nil
}

func (m *memCustomerStore) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Customer, error) {
	for i, r := range m.rows {
		if r.ID == id {
			row := r
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, nil
}

func newCustomerRouter(rows ...model.Customer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop().Sugar()

	app := &appcontext.Application{
		Logger: logger,
		Service: &service.Service{
			Customer: service.NewCustomerService(logger, newMemCustomerStore(rows...)),
		},
	}

	r := gin.New()
	route.V1_Customers(r.Group("/"), controller.NewController(app).Customer)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestGetAllCustomers(t *testing.T) {
	r := newCustomerRouter(
		model.Customer{ID: 1, Name: "Visma"},
		model.Customer{ID: 2, Name: "Farfetch"},
	)

	w, resp := doRequest(t, r, http.MethodGet, "/v1/Customer?pageIndex=1&pageSize=1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, data["pageIndex"])
	assert.EqualValues(t, 2, data["totalPages"])
	items, ok := data["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Visma", first["customerName"])
}

func TestGetAllCustomersDefaultsPageValues(t *testing.T) {
	r := newCustomerRouter(model.Customer{ID: 1, Name: "Visma"})

	w, resp := doRequest(t, r, http.MethodGet, "/v1/Customer", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestGetAllCustomersEmpty(t *testing.T) {
	r := newCustomerRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/v1/Customer", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "No customers found", resp.Message)
}

func TestGetAllCustomersRejectsNegativePageIndex(t *testing.T) {
	r := newCustomerRouter(model.Customer{ID: 1, Name: "Visma"})

	w, resp := doRequest(t, r, http.MethodGet, "/v1/Customer?pageIndex=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "page values must not be negative", resp.Message)
}

func TestGetCustomerById(t *testing.T) {
	r := newCustomerRouter(model.Customer{ID: 1, Name: "Visma"})

	w, resp := doRequest(t, r, http.MethodGet, "/v1/Customer/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Visma", data["customerName"])

	w, resp = doRequest(t, r, http.MethodGet, "/v1/Customer/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Customer not found", resp.Message)
}

func TestAddCustomer(t *testing.T) {
	r := newCustomerRouter()

	w, resp := doRequest(t, r, http.MethodPost, "/v1/Customer", `{"customerName":"Visma"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Visma", data["customerName"])
	assert.EqualValues(t, 1, data["customerId"])
}

func TestAddCustomerInvalidName(t *testing.T) {
	r := newCustomerRouter()

	w, resp := doRequest(t, r, http.MethodPost, "/v1/Customer", `{"customerName":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "customer name is not valid", resp.Message)
}

func TestUpdateCustomerUnknownId(t *testing.T) {
	r := newCustomerRouter(model.Customer{ID: 1, Name: "Visma"})

	w, resp := doRequest(t, r, http.MethodPut, "/v1/Customer?id=123", `{"customerName":"Farfetch"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Invalid CustomerId", resp.Message)
}

func TestDeleteCustomer(t *testing.T) {
	r := newCustomerRouter(model.Customer{ID: 1, Name: "Visma"})

	w, resp := doRequest(t, r, http.MethodDelete, "/v1/Customer/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Visma", data["customerName"])

	w, resp = doRequest(t, r, http.MethodDelete, "/v1/Customer/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Invalid CustomerId", resp.Message)
}
