package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"paygo_market/internal/domain/entities"
	"paygo_market/internal/usecase/interfaces"
)

var (
	ErrInvalidVendorID     = errors.New("invalid vendor id")
	ErrInvalidRate         = errors.New("rate must not be negative")
	ErrInvalidUnit         = errors.New("invalid billing unit")
	ErrCreateNotAllowed    = errors.New("vendor is not allowed to register services")
	ErrInvalidServiceName  = errors.New("invalid service name")
	ErrInvalidServiceToken = errors.New("invalid service token")
)

// IServiceUseCase registers and resolves metered services. Billing fields
// only; vendor profile management lives elsewhere.

type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
}

type ServiceUseCase struct {
	repo       interfaces.IServiceRepository
	authorizer interfaces.IAuthorizer
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, authorizer interfaces.IAuthorizer) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, authorizer: authorizer}
}

func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.VendorID = strings.TrimSpace(s.VendorID)
	s.Name = strings.TrimSpace(s.Name)
	s.Category = strings.TrimSpace(s.Category)
	s.Token = strings.TrimSpace(s.Token)

	if s.VendorID == "" {
		return entities.Service{}, ErrInvalidVendorID
	}
	if s.Name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}
	if s.Token == "" {
		return entities.Service{}, ErrInvalidServiceToken
	}
	if s.Rate.IsNegative() {
		return entities.Service{}, ErrInvalidRate
	}
	if !s.Unit.Valid() {
		return entities.Service{}, ErrInvalidUnit
	}

	if u.authorizer != nil {
		if err := u.authorizer.CanCreateService(ctx, s.VendorID, s.Category); err != nil {
			if errors.Is(err, interfaces.ErrPolicyDenied) {
				return entities.Service{}, ErrCreateNotAllowed
			}
			return entities.Service{}, err
		}
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.Active = true
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[service][usecase] create failed vendor_id=%s err=%v", s.VendorID, err)
		return entities.Service{}, err
	}
	log.Printf("[service][usecase] created service_id=%s vendor_id=%s rate=%s unit=%s", created.ID, created.VendorID, created.Rate, created.Unit)
	return created, nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}
