package repository

// rowScanner is satisfied by both pgx.Row and pgx.Rows, so the per-entity
// scan helpers work for single-row and multi-row queries alike.
type rowScanner interface {
	Scan(dest ...any) error
}
