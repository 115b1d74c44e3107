package recording

import (
	"testing"
	"time"

	"github.com/halsbagel/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockSalesRepository, *mocks.MockTargetRepository, *mocks.MockMinimumTargetRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	salesRepo := mocks.NewMockSalesRepository(ctrl)
	targetRepo := mocks.NewMockTargetRepository(ctrl)
	minimumRepo := mocks.NewMockMinimumTargetRepository(ctrl)

	service := &Service{
		salesRepository:         salesRepo,
		targetRepository:        targetRepo,
		minimumTargetRepository: minimumRepo,
	}

	return service, salesRepo, targetRepo, minimumRepo
}

func TestService_UpsertSalesRecord(t *testing.T) {
	service, salesRepo, _, _ := newServiceWithMocks(t)

	salesRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(record *domain.SalesRecord) error {
			// Os campos derivados são recalculados antes da gravação.
			assert.Equal(t, int64(11500), record.ActualSales)
			assert.Equal(t, int64(500), record.UnitPrice) // 8000 / 16
			assert.Equal(t, 2025, record.Year)
			assert.Equal(t, 3, record.Month)
			return nil
		})

	record, err := service.UpsertSalesRecord(&domain.SalesRecordRequest{
		Date:          "2025-03-10",
		StoreSales:    8000,
		DeliverySales: 2500,
		OtherSales:    1000,
		CustomerCount: 16,
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), record.Date)
}

func TestService_UpsertSalesRecord_DataInvalida(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	tests := []struct {
		name string
		date string
	}{
		{name: "Data vazia", date: ""},
		{name: "Formato errado", date: "10/03/2025"},
		{name: "Data inexistente", date: "2025-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := service.UpsertSalesRecord(&domain.SalesRecordRequest{Date: tt.date})

			assert.Nil(t, record)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestService_UpsertSalesRecord_ValoresNegativosViramZero(t *testing.T) {
	service, salesRepo, _, _ := newServiceWithMocks(t)

	salesRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(record *domain.SalesRecord) error {
			assert.Equal(t, int64(0), record.DeliverySales)
			assert.Equal(t, int64(0), record.CustomerCount)
			assert.Equal(t, int64(0), record.UnitPrice)
			return nil
		})

	_, err := service.UpsertSalesRecord(&domain.SalesRecordRequest{
		Date:          "2025-03-10",
		StoreSales:    5000,
		DeliverySales: -100,
		CustomerCount: -3,
	})

	assert.NoError(t, err)
}

func TestService_GetSalesRecord_NaoEncontrado(t *testing.T) {
	service, salesRepo, _, _ := newServiceWithMocks(t)

	salesRepo.EXPECT().
		GetByDate(gomock.Any()).
		Return(nil, nil)

	record, err := service.GetSalesRecord("2025-03-10")

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestService_DeleteSalesRecord(t *testing.T) {
	service, salesRepo, _, _ := newServiceWithMocks(t)

	tests := []struct {
		name    string
		deleted bool
		wantErr error
	}{
		{name: "Remoção bem sucedida", deleted: true, wantErr: nil},
		{name: "Data sem lançamento", deleted: false, wantErr: ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salesRepo.EXPECT().
				DeleteByDate(gomock.Any()).
				Return(tt.deleted, nil)

			err := service.DeleteSalesRecord("2025-03-10")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_UpsertTargetRecord(t *testing.T) {
	service, _, targetRepo, _ := newServiceWithMocks(t)

	targetRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(target *domain.TargetRecord) error {
			assert.Equal(t, int64(150000), target.TargetSales)
			assert.Equal(t, 2025, target.Year)
			assert.Equal(t, 4, target.Month)
			return nil
		})

	target, err := service.UpsertTargetRecord(&domain.TargetRecordRequest{
		Date:        "2025-04-01",
		TargetSales: 150000,
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), target.Date)
}

func TestService_ListSalesRecords_MesInvalido(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	records, err := service.ListSalesRecords(2025, 13)

	assert.Nil(t, records)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestService_UpsertMinimumTarget(t *testing.T) {
	service, _, _, minimumRepo := newServiceWithMocks(t)

	tests := []struct {
		name     string
		month    int
		minSales int64
		want     int64
		wantErr  error
	}{
		{name: "Piso válido", month: 2, minSales: 900000, want: 900000},
		{name: "Piso negativo vira zero", month: 6, minSales: -500, want: 0},
		{name: "Mês zero é inválido", month: 0, minSales: 1000, wantErr: ErrInvalidMonth},
		{name: "Mês treze é inválido", month: 13, minSales: 1000, wantErr: ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil {
				minimumRepo.EXPECT().
					Upsert(gomock.Any()).
					Return(nil)
			}

			target, err := service.UpsertMinimumTarget(tt.month, tt.minSales)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.month, target.Month)
			assert.Equal(t, tt.want, target.MinSales)
		})
	}
}
