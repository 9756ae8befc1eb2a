package entity

// SupplierType tipo de proveedor.
type SupplierType string

const (
	SupplierTypeIndustry       SupplierType = "Indústria"
	SupplierTypeDistributor    SupplierType = "Distribuidor"
	SupplierTypeRepresentative SupplierType = "Representante"
)

// IsValid indica si t es un tipo de proveedor conocido.
func (t SupplierType) IsValid() bool {
	switch t {
	case SupplierTypeIndustry, SupplierTypeDistributor, SupplierTypeRepresentative:
		return true
	}
	return false
}

// Supplier representa un proveedor de la cadena de suministro.
// TaxID es el CNPJ con máscara XX.XXX.XXX/XXXX-XX; Rating va de 1 a 5.
type Supplier struct {
	ID                   string
	Name                 string
	TaxID                string
	ContactName          string
	Phone                string
	Category             Category
	Type                 SupplierType
	PartnershipStartDate Date // no puede estar en el futuro
	Active               bool
	Rating               int
}

// RecordID implementa Record.
func (s Supplier) RecordID() string { return s.ID }
