package model

// UserEntity represents a row of the users table
type UserEntity struct {
	ID        uint64 `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Password  string `db:"password"`
	Address   string `db:"address"`
}

// RegisterUserRequest for creating a new user. All fields are required and
// the confirmation must match the password exactly.
type RegisterUserRequest struct {
	FirstName       string `json:"firstName" validate:"required,min=3,max=30"`
	LastName        string `json:"lastName" validate:"required,min=3,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Address         string `json:"address" validate:"required,min=10,max=250"`
	Password        string `json:"password" validate:"required,userpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// UpdateUserRequest for partial updates. Every field is optional, absent
// fields leave the stored value untouched; at least one field must be set
// (enforced by a struct-level validation).
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=3,max=30"`
	LastName  *string `json:"lastName" validate:"omitempty,min=3,max=30"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address" validate:"omitempty,min=10,max=250"`
	Password  *string `json:"password" validate:"omitempty,userpassword"`
}

// UserResponse is the wire representation of a user. Password always holds
// the mask literal, never the stored value.
type UserResponse struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Password  string `json:"password"`
}
