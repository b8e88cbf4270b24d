package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/biztime/internal/invoice"
)

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    invoice.CreateParams
		setupMock func(m *invoice.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: invoice.CreateParams{CompCode: "hbo", Amt: 200},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						inv.ID = 1
						inv.AddDate = today()
						return nil
					})
			},
		},
		{
			name:   "UnknownCompany",
			params: invoice.CreateParams{CompCode: "nope", Amt: 200},
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					CreateInvoice(gomock.Any(), gomock.Any()).
					Return(invoice.ErrCompanyNotFound)
			},
			wantErr: invoice.ErrCompanyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := invoice.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "hbo", got.CompCode)
			assert.False(t, got.Paid)
			assert.Nil(t, got.PaidDate)
		})
	}
}

func TestService_Update(t *testing.T) {
	yesterday := today().AddDate(0, 0, -1)

	type testCase struct {
		name         string
		params       invoice.UpdateParams
		existing     *invoice.Invoice
		wantPaid     bool
		wantPaidDate *time.Time
	}

	tests := []testCase{
		{
			name:         "PayUnpaidStampsToday",
			params:       invoice.UpdateParams{Amt: 400, Paid: true},
			existing:     &invoice.Invoice{ID: 1, CompCode: "hbo", Amt: 200},
			wantPaid:     true,
			wantPaidDate: ptr(today()),
		},
		{
			name:         "PayAlreadyPaidKeepsPaidDate",
			params:       invoice.UpdateParams{Amt: 400, Paid: true},
			existing:     &invoice.Invoice{ID: 1, CompCode: "hbo", Amt: 400, Paid: true, PaidDate: ptr(yesterday)},
			wantPaid:     true,
			wantPaidDate: ptr(yesterday),
		},
		{
			name:     "UnpayClearsPaidDate",
			params:   invoice.UpdateParams{Amt: 400, Paid: false},
			existing: &invoice.Invoice{ID: 1, CompCode: "hbo", Amt: 400, Paid: true, PaidDate: ptr(yesterday)},
			wantPaid: false,
		},
		{
			name:     "UnpayUnpaidStaysClear",
			params:   invoice.UpdateParams{Amt: 150, Paid: false},
			existing: &invoice.Invoice{ID: 1, CompCode: "hbo", Amt: 200},
			wantPaid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			repo.EXPECT().
				GetInvoice(gomock.Any(), int64(1)).
				Return(tt.existing, nil)

			var updated *invoice.Invoice

			repo.EXPECT().
				UpdateInvoice(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
					updated = inv
					return nil
				})

			svc := invoice.NewService(repo)
			got, err := svc.Update(context.Background(), 1, tt.params)

			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, tt.params.Amt, got.Amt)
			assert.Equal(t, tt.wantPaid, got.Paid)

			if tt.wantPaidDate == nil {
				assert.Nil(t, got.PaidDate)
			} else {
				require.NotNil(t, got.PaidDate)
				assert.Equal(t, *tt.wantPaidDate, *got.PaidDate)
			}
		})
	}
}

func TestService_Update_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	svc := invoice.NewService(repo)

	state := &invoice.Invoice{ID: 7, CompCode: "hbo", Amt: 200, AddDate: today()}

	repo.EXPECT().
		GetInvoice(gomock.Any(), int64(7)).
		DoAndReturn(func(context.Context, int64) (*invoice.Invoice, error) {
			copied := *state
			return &copied, nil
		}).
		Times(2)
	repo.EXPECT().
		UpdateInvoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
			*state = *inv
			return nil
		}).
		Times(2)

	first, err := svc.Update(context.Background(), 7, invoice.UpdateParams{Amt: 400, Paid: true})
	require.NoError(t, err)
	require.NotNil(t, first.PaidDate)

	second, err := svc.Update(context.Background(), 7, invoice.UpdateParams{Amt: 400, Paid: true})
	require.NoError(t, err)
	require.NotNil(t, second.PaidDate)
	assert.Equal(t, *first.PaidDate, *second.PaidDate)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		GetInvoice(gomock.Any(), int64(99)).
		Return(nil, invoice.ErrNotFound)

	svc := invoice.NewService(repo)
	got, err := svc.Update(context.Background(), 99, invoice.UpdateParams{Amt: 1, Paid: true})

	assert.ErrorIs(t, err, invoice.ErrNotFound)
	assert.Nil(t, got)
}

func TestService_Delete(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *invoice.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().DeleteInvoice(gomock.Any(), int64(3)).Return(nil)
			},
		},
		{
			name: "NotFound",
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().DeleteInvoice(gomock.Any(), int64(3)).Return(invoice.ErrNotFound)
			},
			wantErr: invoice.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := invoice.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := invoice.NewService(repo)
			err := svc.Delete(context.Background(), 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		ListInvoices(gomock.Any()).
		Return([]*invoice.Invoice{{ID: 1}, {ID: 2}}, nil)

	svc := invoice.NewService(repo)
	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_Get_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := invoice.NewMockRepository(ctrl)
	repo.EXPECT().
		GetInvoice(gomock.Any(), int64(1)).
		Return(nil, errors.New("db error"))

	svc := invoice.NewService(repo)
	got, err := svc.Get(context.Background(), 1)

	assert.Error(t, err)
	assert.Nil(t, got)
}

func ptr[T any](v T) *T { return &v }
