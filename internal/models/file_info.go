package models

// FileInfo is a metadata snapshot of the dataset currently served.
// It is always replaced together with the dataset it describes; the
// two never drift apart.
type FileInfo struct {
	Name        string            `json:"name"`
	Path        string            `json:"path"` // filesystem path, or "uploaded:<name>"
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	ColumnNames []string          `json:"column_names"`
	DTypes      map[string]string `json:"dtypes"`
}
