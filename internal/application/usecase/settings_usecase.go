package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/billing-pos/internal/application/dto"
	"github.com/jhoicas/billing-pos/internal/domain"
	"github.com/jhoicas/billing-pos/internal/domain/entity"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

// SettingsUseCase casos de uso para la configuración del negocio (fila única).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración actual. Si aún no existe retorna valores por
// defecto sin persistirlos.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &dto.SettingsResponse{Name: "My Business", Currency: "USD", BusinessType: "general"}, nil
	}
	return toSettingsResponse(settings), nil
}

// Update crea o actualiza la fila única de configuración.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.Name == "" || in.TaxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	businessType := in.BusinessType
	if businessType == "" {
		businessType = "general"
	}

	now := time.Now()
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.BusinessSettings{ID: uuid.New().String(), CreatedAt: now}
	}
	settings.Name = in.Name
	settings.Address = in.Address
	settings.Phone = in.Phone
	settings.Email = in.Email
	settings.TaxNumber = in.TaxNumber
	settings.Currency = currency
	settings.TaxRate = in.TaxRate
	settings.BusinessType = businessType
	settings.UpdatedAt = now

	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.BusinessSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ID:           s.ID,
		Name:         s.Name,
		Address:      s.Address,
		Phone:        s.Phone,
		Email:        s.Email,
		TaxNumber:    s.TaxNumber,
		Currency:     s.Currency,
		TaxRate:      s.TaxRate,
		BusinessType: s.BusinessType,
	}
}
