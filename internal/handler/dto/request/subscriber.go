package request

import "mime/multipart"

type CreateSubscriberRequest struct {
	Name    string                `form:"name" binding:"required"`
	Phone   string                `form:"phone" binding:"required"`
	Overlay *multipart.FileHeader `form:"overlay" binding:"required"`
}

type UpdateSubscriberRequest struct {
	Name    *string               `form:"name"`
	Phone   *string               `form:"phone"`
	Overlay *multipart.FileHeader `form:"overlay"`
}
