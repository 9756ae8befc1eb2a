// Package memory implementa el store de registros en memoria: una colección ordenada
// por tipo de registro, dueña de todas las instancias. Los lectores reciben copias.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jhoicas/gestao-fornecedores/internal/domain"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
	"github.com/jhoicas/gestao-fornecedores/internal/domain/repository"
)

var (
	_ repository.SupplierRepository        = (*Collection[entity.Supplier])(nil)
	_ repository.BonusRepository           = (*Collection[entity.Bonus])(nil)
	_ repository.LossRepository            = (*Collection[entity.Loss])(nil)
	_ repository.GondolaContractRepository = (*Collection[entity.GondolaContract])(nil)
	_ repository.NegotiationRepository     = (*Collection[entity.Negotiation])(nil)
)

// InsertPolicy define dónde se ubica un registro nuevo.
type InsertPolicy int

const (
	// InsertFront agrega al inicio: lo último registrado aparece primero en el panel.
	InsertFront InsertPolicy = iota
	// InsertBack agrega al final.
	InsertBack
)

// Collection colección ordenada de registros identificados por ID.
// Todas las operaciones toman el lock completo, así ningún lector ve una escritura a medias.
type Collection[T entity.Record] struct {
	mu      sync.RWMutex
	records []T
	policy  InsertPolicy
}

// NewCollection construye la colección con registros iniciales en el orden dado.
func NewCollection[T entity.Record](policy InsertPolicy, seed ...T) *Collection[T] {
	return &Collection[T]{records: slices.Clone(seed), policy: policy}
}

// List devuelve una copia de la colección en su orden actual.
func (c *Collection[T]) List(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

// GetByID devuelve una copia del registro o (nil, nil) si no existe.
func (c *Collection[T]) GetByID(_ context.Context, id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	rec := c.records[i]
	return &rec, nil
}

// Create agrega el registro según la política de inserción.
// Devuelve domain.ErrDuplicate si ya existe un registro con el mismo ID.
func (c *Collection[T]) Create(_ context.Context, record T) error {
	id := record.RecordID()
	if id == "" {
		return fmt.Errorf("%w: registro sin id", domain.ErrInvalidInput)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(id) >= 0 {
		return fmt.Errorf("%w: id %s", domain.ErrDuplicate, id)
	}
	if c.policy == InsertFront {
		c.records = slices.Insert(c.records, 0, record)
	} else {
		c.records = append(c.records, record)
	}
	return nil
}

// Update reemplaza el registro con el mismo ID conservando su posición.
// Si no existe, no hace nada y devuelve false.
func (c *Collection[T]) Update(_ context.Context, record T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(record.RecordID())
	if i < 0 {
		return false, nil
	}
	c.records[i] = record
	return true, nil
}

// Delete elimina el registro con el ID dado. Si no existe, no hace nada y devuelve false.
func (c *Collection[T]) Delete(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	c.records = slices.Delete(c.records, i, i+1)
	return true, nil
}

// Len cantidad de registros.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *Collection[T]) indexOf(id string) int {
	return slices.IndexFunc(c.records, func(r T) bool { return r.RecordID() == id })
}
