package sqldoc

// Rebind exposes placeholder rewriting to tests.
func Rebind(ph Placeholders, query string) string {
	return (&Store{ph: ph}).rebind(query)
}
