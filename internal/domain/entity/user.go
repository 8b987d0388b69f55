package entity

// User usuario autenticado contra la API de inventario (solo datos de sesión).
type User struct {
	ID    string
	Name  string
	Email string
}
