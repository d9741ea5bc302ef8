package mapper

import "github.com/vibecommerce/user-service/model"

// PasswordMask replaces the stored password in every outbound representation.
const PasswordMask = "*****"

// ToUserResponse maps a persisted user to its wire representation.
func ToUserResponse(user *model.UserEntity) *model.UserResponse {
	return &model.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Address:   user.Address,
		Password:  PasswordMask,
	}
}

// ToUserEntity maps a registration request to a new entity. ID is left zero,
// the store assigns it on insert. The password is stored as received;
// hashing is deliberately out of scope here.
func ToUserEntity(req *model.RegisterUserRequest) *model.UserEntity {
	return &model.UserEntity{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Address:   req.Address,
	}
}

// ApplyUpdate overwrites each field of the loaded entity whose request field
// is set. Absent fields are never cleared. Mutates user in place.
func ApplyUpdate(req *model.UpdateUserRequest, user *model.UserEntity) {
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		user.Password = *req.Password
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
}
