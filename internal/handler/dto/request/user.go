package request

import "mime/multipart"

// CreateUserRequest binds the multipart form of a user registration. The
// logo is optional; posts for a user without one fall back to the default
// mark.
type CreateUserRequest struct {
	Phone   string                `form:"phone" binding:"required"`
	Mail    string                `form:"mail" binding:"required"`
	Website string                `form:"website" binding:"required"`
	Logo    *multipart.FileHeader `form:"logo"`
}

type UpdateUserRequest struct {
	Phone   *string               `form:"phone"`
	Mail    *string               `form:"mail"`
	Website *string               `form:"website"`
	Logo    *multipart.FileHeader `form:"logo"`
}
