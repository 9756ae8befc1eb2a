package memory

import "github.com/jhoicas/gestao-fornecedores/internal/domain/entity"

// Store agrupa las colecciones del panel. Es la única dueña de los registros.
type Store struct {
	Suppliers    *Collection[entity.Supplier]
	Bonuses      *Collection[entity.Bonus]
	Losses       *Collection[entity.Loss]
	Gondolas     *Collection[entity.GondolaContract]
	Negotiations *Collection[entity.Negotiation]
}

// NewStore crea un store vacío. Los registros nuevos se agregan al inicio de cada colección.
func NewStore() *Store {
	return &Store{
		Suppliers:    NewCollection[entity.Supplier](InsertFront),
		Bonuses:      NewCollection[entity.Bonus](InsertFront),
		Losses:       NewCollection[entity.Loss](InsertFront),
		Gondolas:     NewCollection[entity.GondolaContract](InsertFront),
		Negotiations: NewCollection[entity.Negotiation](InsertFront),
	}
}

// NewDemoStore crea un store con los datos de demostración del panel.
func NewDemoStore() *Store {
	return &Store{
		Suppliers:    NewCollection(InsertFront, DemoSuppliers()...),
		Bonuses:      NewCollection(InsertFront, DemoBonuses()...),
		Losses:       NewCollection(InsertFront, DemoLosses()...),
		Gondolas:     NewCollection(InsertFront, DemoGondolaContracts()...),
		Negotiations: NewCollection(InsertFront, DemoNegotiations()...),
	}
}
