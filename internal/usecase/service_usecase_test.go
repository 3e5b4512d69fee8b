package usecase

import (
	"context"
	"errors"
	"testing"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase/interfaces"
	mock_interfaces "paygo_market/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validService() entities.Service {
	return entities.Service{
		VendorID: "vendor-1",
		Name:     "4k-stream",
		Category: "video",
		Rate:     decimal.RequireFromString("0.05"),
		Unit:     entities.UnitPerSecond,
		Token:    "NGNX",
	}
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("invalid vendor id", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		s := validService()
		s.VendorID = "   "
		_, err := uc.Create(context.Background(), s)
		if !errors.Is(err, ErrInvalidVendorID) {
			t.Fatalf("expected ErrInvalidVendorID, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		s := validService()
		s.Name = ""
		_, err := uc.Create(context.Background(), s)
		if !errors.Is(err, ErrInvalidServiceName) {
			t.Fatalf("expected ErrInvalidServiceName, got %v", err)
		}
	})

	t.Run("negative rate", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		s := validService()
		s.Rate = decimal.RequireFromString("-1")
		_, err := uc.Create(context.Background(), s)
		if !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("expected ErrInvalidRate, got %v", err)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		s := validService()
		s.Unit = "per_byte"
		_, err := uc.Create(context.Background(), s)
		if !errors.Is(err, ErrInvalidUnit) {
			t.Fatalf("expected ErrInvalidUnit, got %v", err)
		}
	})

	t.Run("denied by policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authorizer := mock_interfaces.NewMockIAuthorizer(ctrl)
		uc := NewServiceUseCase(nil, authorizer)

		authorizer.EXPECT().CanCreateService(gomock.Any(), "vendor-1", "video").Return(interfaces.ErrPolicyDenied)

		_, err := uc.Create(context.Background(), validService())
		if !errors.Is(err, ErrCreateNotAllowed) {
			t.Fatalf("expected ErrCreateNotAllowed, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || !s.Active {
					t.Fatalf("expected generated id and active flag: %+v", s)
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)

		res, err := uc.Create(context.Background(), validService())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestServiceUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)

		_, err := uc.GetByID(context.Background(), "svc-1")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1"}, nil)

		res, err := uc.GetByID(context.Background(), " svc-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "svc-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
