package entity

// Supplier es un registro simple de proveedor, sin acoplamiento transaccional
// con el inventario (los artículos solo guardan una referencia débil).
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
}
