package form

import "fmt"

// Contact holds the singleton contact fields of a resume.
type Contact struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Address string `json:"address" yaml:"address"`
	Phone   string `json:"phone" yaml:"phone"`
}

var contactFields = []Field{
	{Name: "name", Label: "Name"},
	{Name: "email", Label: "Email"},
	{Name: "address", Label: "Address"},
	{Name: "phone", Label: "Phone"},
}

func (Contact) Fields() []Field {
	return append([]Field(nil), contactFields...)
}

func (c Contact) Get(name string) (string, bool) {
	switch name {
	case "name":
		return c.Name, true
	case "email":
		return c.Email, true
	case "address":
		return c.Address, true
	case "phone":
		return c.Phone, true
	}
	return "", false
}

func (c Contact) Set(name, value string) (Contact, bool) {
	switch name {
	case "name":
		c.Name = value
	case "email":
		c.Email = value
	case "address":
		c.Address = value
	case "phone":
		c.Phone = value
	default:
		return c, false
	}
	return c, true
}

// SetField returns a copy of c with one field overwritten.
func (c Contact) SetField(name, value string) (Contact, error) {
	next, ok := c.Set(name, value)
	if !ok {
		return c, fmt.Errorf("set contact %q: %w", name, ErrInvalidFieldName)
	}
	return next, nil
}
