package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestao-fornecedores/internal/domain/entity"
)

// Datos de demostración del panel (STORE_SEED_DEMO=true).

func DemoSuppliers() []entity.Supplier {
	return []entity.Supplier{
		{ID: "1", Name: "Indústria Alimentícia ABC", TaxID: "11.222.333/0001-44", ContactName: "Carlos Silva", Phone: "(11) 98765-4321", Category: entity.CategoryFood, Type: entity.SupplierTypeIndustry, PartnershipStartDate: entity.MustParseDate("2020-01-15"), Active: true, Rating: 5},
		{ID: "2", Name: "Distribuidora de Bebidas XYZ", TaxID: "22.333.444/0001-55", ContactName: "Ana Pereira", Phone: "(21) 91234-5678", Category: entity.CategoryBeverage, Type: entity.SupplierTypeDistributor, PartnershipStartDate: entity.MustParseDate("2019-05-20"), Active: true, Rating: 4},
		{ID: "3", Name: "Limpeza Total Ltda", TaxID: "33.444.555/0001-66", ContactName: "João Mendes", Phone: "(31) 95555-4444", Category: entity.CategoryCleaning, Type: entity.SupplierTypeIndustry, PartnershipStartDate: entity.MustParseDate("2022-11-10"), Active: false, Rating: 3},
		{ID: "4", Name: "Hortifruti Frescor da Terra", TaxID: "44.555.666/0001-77", ContactName: "Mariana Costa", Phone: "(41) 98888-7777", Category: entity.CategoryProduce, Type: entity.SupplierTypeDistributor, PartnershipStartDate: entity.MustParseDate("2021-02-25"), Active: true, Rating: 4},
		{ID: "5", Name: "Açougue Nobre Carnes", TaxID: "55.666.777/0001-88", ContactName: "Ricardo Souza", Phone: "(51) 97777-6666", Category: entity.CategoryButchery, Type: entity.SupplierTypeRepresentative, PartnershipStartDate: entity.MustParseDate("2023-01-05"), Active: false, Rating: 2},
	}
}

func DemoBonuses() []entity.Bonus {
	return []entity.Bonus{
		{ID: "1", SupplierID: "1", Type: entity.BonusTypeProduct, TotalValue: decimal.NewFromInt(5000), NegotiationDate: entity.MustParseDate("2024-07-01"), Status: entity.BonusStatusReceived, Notes: "Bonificação referente a compra de alto volume."},
		{ID: "2", SupplierID: "2", Type: entity.BonusTypeInvoiceDiscount, TotalValue: decimal.NewFromInt(1200), NegotiationDate: entity.MustParseDate("2024-07-05"), Status: entity.BonusStatusReceived, Notes: "Desconto de 5% na nota fiscal #12345."},
		{ID: "3", SupplierID: "1", Type: entity.BonusTypeCredit, TotalValue: decimal.NewFromInt(800), NegotiationDate: entity.MustParseDate("2024-07-10"), Status: entity.BonusStatusPending, Notes: "Crédito para próxima compra."},
	}
}

func DemoLosses() []entity.Loss {
	return []entity.Loss{
		{ID: "1", Product: "Tomate Italiano", Category: entity.CategoryProduce, Reason: entity.LossReasonExpiration, Quantity: decimal.NewFromInt(10), TotalValue: decimal.NewFromInt(50), ResponsibleParty: entity.ResponsibleStore, OccurrenceDate: entity.MustParseDate("2024-07-18")},
		{ID: "2", Product: "Pão Francês", Category: entity.CategoryFood, Reason: entity.LossReasonOperationalBreakage, Quantity: decimal.NewFromInt(20), TotalValue: decimal.NewFromInt(15), ResponsibleParty: entity.ResponsibleStore, OccurrenceDate: entity.MustParseDate("2024-07-18")},
		{ID: "3", Product: "Leite Integral", Category: entity.CategoryFood, Reason: entity.LossReasonDamage, Quantity: decimal.NewFromInt(5), TotalValue: decimal.NewFromInt(25), ResponsibleParty: entity.ResponsibleTransport, SupplierID: "1", OccurrenceDate: entity.MustParseDate("2024-07-17")},
		{ID: "4", Product: "Vinho Tinto", Category: entity.CategoryBeverage, Reason: entity.LossReasonTheft, Quantity: decimal.NewFromInt(1), TotalValue: decimal.NewFromInt(80), ResponsibleParty: entity.ResponsibleStore, OccurrenceDate: entity.MustParseDate("2024-07-16")},
	}
}

func DemoGondolaContracts() []entity.GondolaContract {
	return []entity.GondolaContract{
		{ID: "1", SupplierID: "2", PlacementType: entity.PlacementEndCap, AgreedValue: decimal.NewFromInt(2000), Counterpart: "Aumento de 10% no volume de compra", ValidityStart: entity.MustParseDate("2024-07-01"), ValidityEnd: entity.MustParseDate("2024-07-31"), Status: entity.ContractActive},
		{ID: "2", SupplierID: "1", PlacementType: entity.PlacementIsland, AgreedValue: decimal.NewFromInt(3500), Counterpart: "Bonificação de 50 caixas de produto", ValidityStart: entity.MustParseDate("2024-06-15"), ValidityEnd: entity.MustParseDate("2024-07-15"), Status: entity.ContractActive},
		{ID: "3", SupplierID: "3", PlacementType: entity.PlacementCheckout, AgreedValue: decimal.NewFromInt(1000), Counterpart: "Pagamento em dinheiro", ValidityStart: entity.MustParseDate("2024-05-01"), ValidityEnd: entity.MustParseDate("2024-05-31"), Status: entity.ContractExpired},
		{ID: "4", SupplierID: "1", PlacementType: entity.PlacementDisplay, AgreedValue: decimal.NewFromInt(750), Counterpart: "Exclusividade no display", ValidityStart: entity.MustParseDate("2024-08-01"), ValidityEnd: entity.MustParseDate("2024-08-31"), Status: entity.ContractActive},
	}
}

func DemoNegotiations() []entity.Negotiation {
	return []entity.Negotiation{
		{ID: "1", SupplierID: "1", NegotiationDate: entity.MustParseDate("2024-07-15"), NegotiatedItems: "Arroz, Feijão, Óleo", CommercialTerms: "Desconto de 5% no volume, prazo 30/60/90", Outcome: "Acordo fechado, economia de 8%", TotalGain: decimal.NewFromInt(12000)},
		{ID: "2", SupplierID: "2", NegotiationDate: entity.MustParseDate("2024-07-12"), NegotiatedItems: "Refrigerantes, Sucos", CommercialTerms: "Bonificação de 10 caixas a cada 100", Outcome: "Acordo fechado", TotalGain: decimal.NewFromInt(3500)},
		{ID: "3", SupplierID: "3", NegotiationDate: entity.MustParseDate("2024-07-10"), NegotiatedItems: "Detergente, Sabão em pó", CommercialTerms: "Aumento de 2%, sem contrapartida", Outcome: "Negociação não avançou", TotalGain: decimal.Zero},
		{ID: "4", SupplierID: "4", NegotiationDate: entity.MustParseDate("2024-07-08"), NegotiatedItems: "Carnes diversas", CommercialTerms: "Preço mantido, prazo estendido para 45 dias", Outcome: "Acordo fechado", TotalGain: decimal.NewFromInt(8500)},
	}
}
