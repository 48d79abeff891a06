package domain

// Document is a record read back from the database. Top-level fields are a
// map; nested documents keep the driver's ordered bson.D form.
type Document map[string]any

// InsertResult acknowledges a single insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// GetString returns the string value stored under key, or "".
func (d Document) GetString(key string) string {
	s, _ := d[key].(string)
	return s
}
