package service

import "errors"

// 服務層共用錯誤，repository 層的 sentinel 錯誤會原樣往上傳
var (
	ErrInvalidParam     = errors.New("invalid parameter")
	ErrWrongCredentials = errors.New("incorrect email or password")
	ErrForbidden        = errors.New("operation not allowed")
	ErrUserInactive     = errors.New("user is not active")
	ErrNotPurchased     = errors.New("user has not purchased this product")
)
