package service

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *model.User
}

type AdminLoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Admin       *model.Admin
}

type IAuthService interface {
	// Login 驗證帳密，建立 redis 會話並簽發 access token
	// token 的 payload ID 即會話 key，登出後 token 隨即失效
	//
	// 錯誤:
	//   - ErrWrongCredentials: 帳號不存在或密碼錯誤
	//   - ErrUserInactive: 帳號已停用
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// AdminLogin 管理員登入，會話標記 is_admin
	AdminLogin(ctx context.Context, username, password string) (*AdminLoginResult, error)
	// ValidateSession 檢查 token 對應的會話仍然有效
	//
	// 錯誤:
	//   - redis_repo.ErrSessionNotFound: 會話不存在或已到期
	//   - redis_repo.ErrSessionBlocked: 會話已被封鎖
	ValidateSession(ctx context.Context, payload *token.Payload) error
	// RefreshToken 在 token 過期前換發新 token 與新會話，舊會話隨即刪除
	//
	// 錯誤:
	//   - ErrForbidden: ctx 內沒有 token payload
	//   - redis_repo.ErrSessionNotFound: 會話不存在或已到期
	//   - redis_repo.ErrSessionBlocked: 會話已被封鎖
	RefreshToken(ctx context.Context) (*LoginResult, error)
	// Logout 刪除會話，該 token 立即失效
	Logout(ctx context.Context) error
	// Me 取得當前登入user資訊
	Me(ctx context.Context) (*model.User, error)
}

type AuthService struct {
	store       db.Store
	userService IUserService
	sessionRepo redis_repo.ISessionRepository
	tokenMaker  token.Maker
}

func NewAuthService(store db.Store, userService IUserService, sessionRepo redis_repo.ISessionRepository, tokenMaker token.Maker) IAuthService {
	if reflect.ValueOf(store).IsNil() {
		panic("auth service initialization failed: store cannot be nil")
	}
	if reflect.ValueOf(userService).IsNil() {
		panic("auth service initialization failed: userService cannot be nil")
	}
	if reflect.ValueOf(sessionRepo).IsNil() {
		panic("auth service initialization failed: sessionRepo cannot be nil")
	}
	if reflect.ValueOf(tokenMaker).IsNil() {
		panic("auth service initialization failed: tokenMaker cannot be nil")
	}

	return &AuthService{
		store:       store,
		userService: userService,
		sessionRepo: sessionRepo,
		tokenMaker:  tokenMaker,
	}
}

func (a *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := a.userService.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	accessToken, payload, err := a.createSession(ctx, user.UserID, false)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: accessToken,
		ExpiresAt:   payload.ExpiredAt,
		User:        user,
	}, nil
}

func (a *AuthService) AdminLogin(ctx context.Context, username, password string) (*AdminLoginResult, error) {
	admin, err := a.store.GetAdminByUsername(ctx, username)
	if err != nil {
		return nil, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongCredentials
	}

	if !admin.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, payload, err := a.createSession(ctx, admin.AdminID, true)
	if err != nil {
		return nil, err
	}

	return &AdminLoginResult{
		AccessToken: accessToken,
		ExpiresAt:   payload.ExpiredAt,
		Admin:       admin,
	}, nil
}

func (a *AuthService) ValidateSession(ctx context.Context, payload *token.Payload) error {
	session, err := a.sessionRepo.GetSession(ctx, payload.ID)
	if err != nil {
		return err
	}
	if session.IsBlocked {
		return redis_repo.ErrSessionBlocked
	}
	return nil
}

func (a *AuthService) RefreshToken(ctx context.Context) (*LoginResult, error) {
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		return nil, ErrForbidden
	}

	session, err := a.sessionRepo.GetSession(ctx, payload.ID)
	if err != nil {
		return nil, err
	}
	if session.IsBlocked {
		return nil, redis_repo.ErrSessionBlocked
	}

	accessToken, newPayload, err := a.createSession(ctx, session.UserID, session.IsAdmin)
	if err != nil {
		return nil, err
	}
	// 換發後舊會話失效，刪除失敗不影響換發結果
	_ = a.sessionRepo.DeleteSession(ctx, payload.ID)

	result := &LoginResult{
		AccessToken: accessToken,
		ExpiresAt:   newPayload.ExpiredAt,
	}
	if !session.IsAdmin {
		user, err := a.userService.GetUserByID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		result.User = user
	}
	return result, nil
}

func (a *AuthService) Logout(ctx context.Context) error {
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		return ErrForbidden
	}

	err := a.sessionRepo.DeleteSession(ctx, payload.ID)
	if errors.Is(err, redis_repo.ErrSessionNotFound) {
		// 會話已到期，視為登出成功
		return nil
	}
	return err
}

// Me 取得當前登入user資訊
func (a *AuthService) Me(ctx context.Context) (*model.User, error) {
	payload := util.GetTokenPayloadFromContext(ctx)
	if payload == nil {
		return nil, ErrForbidden
	}
	return a.userService.GetUserByID(ctx, payload.UserID)
}

// createSession 簽發 token 並寫入 redis 會話，TTL 與 token 效期一致
func (a *AuthService) createSession(ctx context.Context, userID uint, isAdmin bool) (string, *token.Payload, error) {
	dur := time.Duration(constants.AccessTokenDuration) * time.Hour
	accessToken, payload, err := a.tokenMaker.CreateToken(userID, isAdmin, dur)
	if err != nil {
		return "", nil, err
	}

	session := &redis_repo.Session{
		SessionID: payload.ID,
		UserID:    userID,
		IsAdmin:   isAdmin,
		UserAgent: util.GetUserAgentFromContext(ctx),
		ClientIP:  util.GetClientIPFromContext(ctx),
		ExpiresAt: payload.ExpiredAt,
	}
	if err := a.sessionRepo.CreateSession(ctx, session, dur); err != nil {
		return "", nil, err
	}

	return accessToken, payload, nil
}

var _ IAuthService = (*AuthService)(nil)
