package entity

// Category categoría de producto con la que trabaja el proveedor o a la que pertenece una pérdida.
// Los valores son las etiquetas pt-BR que muestra el panel y que se exportan tal cual.
type Category string

const (
	CategoryFood     Category = "Alimento"
	CategoryBeverage Category = "Bebida"
	CategoryCleaning Category = "Limpeza"
	CategoryHygiene  Category = "Higiene"
	CategoryProduce  Category = "Hortifruti"
	CategoryButchery Category = "Açougue"
)

// Categories devuelve todas las categorías en el orden del panel.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryBeverage, CategoryCleaning,
		CategoryHygiene, CategoryProduce, CategoryButchery,
	}
}

// IsValid indica si c es una categoría conocida.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
