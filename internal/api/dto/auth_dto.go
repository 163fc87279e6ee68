package dto

import "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"

type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` //密碼明文
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenInfo 表示令牌資訊
type TokenInfo struct {
	Value     string `json:"value"`
	ExpiresIn int    `json:"expires_in"`
}

type LoginResponse struct {
	AccessToken TokenInfo   `json:"access_token"`
	User        *model.User `json:"user"`
}

type AdminLoginResponse struct {
	AccessToken TokenInfo    `json:"access_token"`
	Admin       *model.Admin `json:"admin"`
}

type UpdateProfileDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
