package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AuthHandler struct {
	authService service.IAuthService
	userService service.IUserService
}

func NewAuthHandler(authService service.IAuthService, userService service.IUserService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Register 註冊新使用者
//
// POST /auth/register
func (a *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.userService.Register(r.Context(), registerDTO.Name, registerDTO.Email, registerDTO.Password, registerDTO.Phone, registerDTO.Address)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, user)
}

// Login 使用者登入
//
// POST /auth/login
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loginRes, err := a.authService.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: loginRes.User,
	})
}

// AdminLogin 管理員登入
//
// POST /auth/admin/login
func (a *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.AdminLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loginRes, err := a.authService.AdminLogin(r.Context(), loginDTO.Username, loginDTO.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.AdminLoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     loginRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		Admin: loginRes.Admin,
	})
}

// RefreshToken 換發新 token，舊會話失效
//
// POST /auth/refresh-token
func (a *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshRes, err := a.authService.RefreshToken(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     refreshRes.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: refreshRes.User,
	})
}

// Logout 登出，刪除會話
//
// POST /auth/logout
func (a *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.Logout(r.Context()); err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]string{"message": "logged out"})
}

// Me 取得當前登入user資訊
//
// GET /auth/me
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := a.authService.Me(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	api.SuccessJSON(w, user)
}
