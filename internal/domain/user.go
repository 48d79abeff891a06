package domain

// UserFilter selects users. Empty fields are ignored; set fields are ANDed.
type UserFilter struct {
	ID    string
	Email string
}

func (f UserFilter) IsEmpty() bool {
	return f.ID == "" && f.Email == ""
}
