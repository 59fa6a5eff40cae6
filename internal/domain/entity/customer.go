package entity

// Customer representa el titular de una cuenta, identificado por su CPF.
type Customer struct {
	ID        string
	CPF       string
	Name      string
	Statement []Operation
}

// Clone devuelve una copia profunda (el extracto no se comparte con el original).
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	out := *c
	out.Statement = make([]Operation, len(c.Statement))
	copy(out.Statement, c.Statement)
	return &out
}
