package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timelogger/timelogger/internal/apperror"
	"github.com/timelogger/timelogger/internal/model"
)

func newCustomerServiceForTest(rows ...model.Customer) (*CustomerService, *fakeCustomerStore) {
	store := newFakeCustomerStore(rows...)
	return NewCustomerService(testLogger(), store), store
}

func TestCustomerGetAllPaginates(t *testing.T) {
	svc, _ := newCustomerServiceForTest(
		model.Customer{ID: 1, Name: "Test Customer 1"},
		model.Customer{ID: 2, Name: "Test Customer 2"},
		model.Customer{ID: 3, Name: "Test Customer 3"},
	)

	page, err := svc.GetAll(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Test Customer 1", page.Items[0].CustomerName)
	assert.Equal(t, uint(1), page.Items[0].CustomerID)
	assert.Equal(t, 1, page.PageIndex)
	assert.Equal(t, 3, page.TotalPages)
}

func TestCustomerGetAllRejectsBadPageValues(t *testing.T) {
	svc, _ := newCustomerServiceForTest(model.Customer{ID: 1, Name: "Test Customer 1"})

	_, err := svc.GetAll(context.Background(), -1, 10)
	require.Error(t, err)
	assert.EqualError(t, err, ErrPageValues)

	_, err = svc.GetAll(context.Background(), 1, 0)
	require.Error(t, err)
	assert.EqualError(t, err, ErrPageValues)
}

func TestCustomerGetById(t *testing.T) {
	svc, _ := newCustomerServiceForTest(model.Customer{ID: 7, Name: "Visma"})

	got, err := svc.GetById(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Visma", got.CustomerName)

	got, err = svc.GetById(context.Background(), 123)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCustomerAddValidatesName(t *testing.T) {
	svc, store := newCustomerServiceForTest()

	for _, name := range []string{"", "   ", strings.Repeat("x", 31)} {
		_, err := svc.Add(context.Background(), CustomerRequest{CustomerName: name})
		require.Error(t, err)
		assert.EqualError(t, err, "customer name is not valid")
	}
	assert.Empty(t, store.rows)

	created, err := svc.Add(context.Background(), CustomerRequest{CustomerName: strings.Repeat("x", 30)})
	require.NoError(t, err)
	assert.NotZero(t, created.CustomerID)
}

func TestCustomerUpdate(t *testing.T) {
	svc, store := newCustomerServiceForTest(model.Customer{ID: 1, Name: "Visma"})

	updated, err := svc.Update(context.Background(), 1, CustomerRequest{CustomerName: "Farfetch"})
	require.NoError(t, err)
	assert.Equal(t, "Farfetch", updated.CustomerName)
	assert.Equal(t, "Farfetch", store.rows[0].Name)
}

func TestCustomerUpdateUnknownId(t *testing.T) {
	svc, _ := newCustomerServiceForTest(model.Customer{ID: 1, Name: "Visma"})

	_, err := svc.Update(context.Background(), 123, CustomerRequest{CustomerName: "Farfetch"})
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "Invalid CustomerId", appErr.Message)
}

func TestCustomerDelete(t *testing.T) {
	svc, store := newCustomerServiceForTest(model.Customer{ID: 1, Name: "Visma"})

	deleted, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Visma", deleted.CustomerName)
	assert.Empty(t, store.rows)

	_, err = svc.Delete(context.Background(), 1)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, "Invalid CustomerId", appErr.Message)
}
