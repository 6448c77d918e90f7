package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/syarief02/bubatbook-sub000/internal/domain"
	"github.com/syarief02/bubatbook-sub000/internal/service/ports/mocks"
)

func TestCarService_Create_Success(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	car, err := svc.Create(context.Background(), domain.CreateCarInput{
		Make:      "Perodua",
		Model:     "Myvi",
		Plate:     "WXY 1234",
		DailyRate: 150,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, car.ID)
	assert.Equal(t, "Perodua", car.Make)
	assert.True(t, car.Available)
}

func TestCarService_Create_AvailableOverride(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	unavailable := false
	car, err := svc.Create(context.Background(), domain.CreateCarInput{
		Make:      "Proton",
		Model:     "Saga",
		Plate:     "VBB 5678",
		DailyRate: 120,
		Available: &unavailable,
	})

	require.NoError(t, err)
	assert.False(t, car.Available)
}

func TestCarService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateCarInput
	}{
		{"missing make", domain.CreateCarInput{Model: "Myvi", Plate: "WXY 1234", DailyRate: 150}},
		{"missing model", domain.CreateCarInput{Make: "Perodua", Plate: "WXY 1234", DailyRate: 150}},
		{"missing plate", domain.CreateCarInput{Make: "Perodua", Model: "Myvi", DailyRate: 150}},
		{"zero rate", domain.CreateCarInput{Make: "Perodua", Model: "Myvi", Plate: "WXY 1234"}},
		{"negative rate", domain.CreateCarInput{Make: "Perodua", Model: "Myvi", Plate: "WXY 1234", DailyRate: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCarRepo(t)
			svc := NewCarService(repo)

			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCarService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Create(context.Background(), domain.CreateCarInput{
		Make:      "Perodua",
		Model:     "Myvi",
		Plate:     "WXY 1234",
		DailyRate: 150,
	})

	require.Error(t, err)
}

func TestCarService_GetByID_Success(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Car{ID: "c1", Make: "Perodua"}, nil)

	car, err := svc.GetByID(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "c1", car.ID)
}

func TestCarService_List_Success(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	cars := []*domain.Car{
		{ID: "c1", Make: "Perodua"},
		{ID: "c2", Make: "Proton"},
	}
	repo.EXPECT().List(mock.Anything).Return(cars, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
