// Package types holds the data structures shared by the handlers and the
// storage backends. Keeping them in one place prevents import cycles.
package types

// User is a stored user record.
//
// ID is assigned by the storage layer when the record is created and never
// changes afterwards. The remaining fields are replaced wholesale on update.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   Age    `json:"age"`
}

// UserInput is the request body accepted by create and update.
//
// The validate:"..." tags are checked by go-playground/validator:
//
//   - required   — the field must be present and non-zero. For Age this means
//     "truthy": null, 0 and "" all count as missing.
//   - emailshape — a custom rule registered by the user handlers that matches
//     local@domain.tld.
//
// An "id" key in the body is not part of the schema and is ignored.
type UserInput struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,emailshape"`
	Age   Age    `json:"age"   validate:"required"`
}

// WithID builds the record stored for this input under the given id.
func (in UserInput) WithID(id string) User {
	return User{
		ID:    id,
		Name:  in.Name,
		Email: in.Email,
		Age:   in.Age,
	}
}
