package repository

import (
	"context"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
)

// RecordRepository define el puerto de la colección ordenada de un tipo de registro (DIP).
//
// List devuelve una copia en el orden de la colección; GetByID devuelve (nil, nil) si no existe.
// Update y Delete devuelven false cuando el ID no existe y no modifican nada.
type RecordRepository[T entity.Record] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record T) error
	Update(ctx context.Context, record T) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Puertos por colección.
type (
	SupplierRepository        = RecordRepository[entity.Supplier]
	BonusRepository           = RecordRepository[entity.Bonus]
	LossRepository            = RecordRepository[entity.Loss]
	GondolaContractRepository = RecordRepository[entity.GondolaContract]
	NegotiationRepository     = RecordRepository[entity.Negotiation]
)
