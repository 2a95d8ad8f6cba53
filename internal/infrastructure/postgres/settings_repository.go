package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/billing-pos/internal/domain/entity"
	"github.com/jhoicas/billing-pos/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository. Hay una sola fila activa.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get obtiene la configuración del negocio. Devuelve nil si aún no se configuró.
func (r *SettingsRepo) Get() (*entity.BusinessSettings, error) {
	query := `
		SELECT id, name, address, phone, email, tax_number, currency, tax_rate, business_type, created_at, updated_at
		FROM business_settings ORDER BY created_at LIMIT 1`
	var s entity.BusinessSettings
	var address, phone, email, taxNumber *string
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.Name, &address, &phone, &email, &taxNumber,
		&s.Currency, &s.TaxRate, &s.BusinessType, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	s.Address = derefStr(address)
	s.Phone = derefStr(phone)
	s.Email = derefStr(email)
	s.TaxNumber = derefStr(taxNumber)
	return &s, nil
}

// Upsert crea la fila de configuración si no existe o actualiza la existente.
func (r *SettingsRepo) Upsert(settings *entity.BusinessSettings) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	if existing == nil {
		if settings.ID == "" {
			settings.ID = uuid.New().String()
		}
		query := `
			INSERT INTO business_settings (id, name, address, phone, email, tax_number, currency, tax_rate, business_type, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		_, err := r.q.Exec(context.Background(), query,
			settings.ID, settings.Name, nullIfEmpty(settings.Address), nullIfEmpty(settings.Phone),
			nullIfEmpty(settings.Email), nullIfEmpty(settings.TaxNumber), settings.Currency,
			settings.TaxRate, settings.BusinessType, settings.CreatedAt, settings.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert settings: %w", err)
		}
		return nil
	}

	settings.ID = existing.ID
	query := `
		UPDATE business_settings
		SET name = $2, address = $3, phone = $4, email = $5, tax_number = $6,
		    currency = $7, tax_rate = $8, business_type = $9, updated_at = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		settings.ID, settings.Name, nullIfEmpty(settings.Address), nullIfEmpty(settings.Phone),
		nullIfEmpty(settings.Email), nullIfEmpty(settings.TaxNumber), settings.Currency,
		settings.TaxRate, settings.BusinessType, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
