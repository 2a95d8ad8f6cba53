package repository

import "github.com/jhoicas/billing-pos/internal/domain/entity"

// SettingsRepository define el puerto para la configuración del negocio.
// Hay una sola fila activa; Get devuelve nil si aún no se configuró.
type SettingsRepository interface {
	Get() (*entity.BusinessSettings, error)
	Upsert(settings *entity.BusinessSettings) error
}
