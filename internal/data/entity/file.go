package entity

// File is an uploaded blob stored as a database row.
type File struct {
	BaseSimple
	Name        string `db:"name"`
	ContentType string `db:"content_type"`
	Data        []byte `db:"data"`
}
