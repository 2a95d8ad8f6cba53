package repository

import "github.com/jhoicas/billing-pos/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
}
