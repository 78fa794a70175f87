package records

import (
	"context"
	"errors"
	"testing"

	"Backend-Hostel-Billing/src/models"
	"Backend-Hostel-Billing/src/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBillQueue struct {
	mock.Mock
}

func (m *MockBillQueue) EnqueueBillRefresh(ctx context.Context, regNo string) error {
	return m.Called(ctx, regNo).Error(0)
}

func newTestService(t *testing.T, queue BillQueue) *Service {
	t.Helper()
	return NewService(NewXLSXStore(testutil.SampleWorkbook(t), ""), queue)
}

func TestServiceLogin(t *testing.T) {
	svc := newTestService(t, nil)

	rec, err := svc.Login(context.Background(), "S1", "2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, "S1", rec.RegNo())

	_, err = svc.Login(context.Background(), "S1", "1999-01-01")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestServiceUpdateField(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	t.Run("plain column", func(t *testing.T) {
		require.NoError(t, svc.UpdateField(ctx, "S1", "Name", "Asha K"))
		rec, _ := svc.Get(ctx, "S1")
		assert.Equal(t, "Asha K", rec.Value("Name"))
	})

	t.Run("amount is normalised", func(t *testing.T) {
		require.NoError(t, svc.UpdateField(ctx, "S1", models.ColTotalPayable, " 1200.50 "))
		rec, _ := svc.Get(ctx, "S1")
		assert.True(t, rec.Amount(models.ColTotalPayable).Equal(decimal.RequireFromString("1200.5")))
	})

	t.Run("reg no is not editable", func(t *testing.T) {
		err := svc.UpdateField(ctx, "S1", models.ColRegNo, "S9")
		assert.ErrorIs(t, err, ErrFieldNotEditable)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := svc.UpdateField(ctx, "S1", "Colour", "blue")
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		err := svc.UpdateField(ctx, "S1", models.ColTotalPaid, "lots")
		assert.ErrorIs(t, err, ErrInvalidAmount)

		rec, _ := svc.Get(ctx, "S1")
		assert.Equal(t, "600", rec.Value(models.ColTotalPaid))
	})

	t.Run("unknown student", func(t *testing.T) {
		err := svc.UpdateField(ctx, "S404", "Name", "x")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestServiceAddPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("S1 scenario enqueues a bill refresh", func(t *testing.T) {
		queue := new(MockBillQueue)
		queue.On("EnqueueBillRefresh", mock.Anything, "S1").Return(nil).Once()
		svc := newTestService(t, queue)

		require.NoError(t, svc.AddPayment(ctx, "S1", decimal.NewFromInt(500)))

		rec, err := svc.Get(ctx, "S1")
		require.NoError(t, err)
		assert.Equal(t, "1100", rec.Value(models.ColTotalPaid))
		queue.AssertExpectations(t)
	})

	t.Run("queue failure does not fail the payment", func(t *testing.T) {
		queue := new(MockBillQueue)
		queue.On("EnqueueBillRefresh", mock.Anything, "S2").Return(errors.New("redis down"))
		svc := newTestService(t, queue)

		assert.NoError(t, svc.AddPayment(ctx, "S2", decimal.NewFromInt(10)))
	})

	t.Run("unknown student is not enqueued", func(t *testing.T) {
		queue := new(MockBillQueue)
		svc := newTestService(t, queue)

		err := svc.AddPayment(ctx, "S404", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, ErrStudentNotFound)
		queue.AssertNotCalled(t, "EnqueueBillRefresh", mock.Anything, mock.Anything)
	})
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount(" 500 ")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(500)))

	_, err = ParseAmount("five hundred")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseAmount("")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
