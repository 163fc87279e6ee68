package service

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	// Register 註冊新使用者，密碼以 bcrypt 雜湊後落庫
	//
	// 錯誤:
	//   - ErrInvalidParam: email 或密碼格式不合法
	//   - db.ErrEmailTaken: email 已被註冊
	Register(ctx context.Context, name, email, password, phone, address string) (*model.User, error)
	// VerifyCredentials 驗證帳密，登入流程用
	//
	// 錯誤:
	//   - ErrWrongCredentials: 帳號不存在或密碼錯誤
	//   - ErrUserInactive: 帳號已停用
	VerifyCredentials(ctx context.Context, email, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]model.User, int64, error)
	// UpdateProfile 更新姓名、電話、地址，email 不可變更
	UpdateProfile(ctx context.Context, userID uint, name, phone, address string) (*model.User, error)
	// Deactivate 停用帳號並軟刪除，資料保留
	Deactivate(ctx context.Context, userID uint) error
}

type UserService struct {
	store db.Store
}

func NewUserService(store db.Store) IUserService {
	if reflect.ValueOf(store).IsNil() {
		panic("user service initialization failed: store cannot be nil")
	}
	return &UserService{store: store}
}

func (u *UserService) Register(ctx context.Context, name, email, password, phone, address string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidParam)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidParam)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return u.store.CreateUser(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        phone,
		Address:      address,
		IsActive:     true,
	})
}

func (u *UserService) VerifyCredentials(ctx context.Context, email, password string) (*model.User, error) {
	user, err := u.store.GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		// 帳號不存在與密碼錯誤回同一個錯誤，避免帳號探測
		return nil, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

func (u *UserService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	return u.store.GetUserByID(ctx, id)
}

func (u *UserService) ListUsers(ctx context.Context, offset, limit int) ([]model.User, int64, error) {
	return u.store.ListUsers(ctx, offset, limit)
}

func (u *UserService) UpdateProfile(ctx context.Context, userID uint, name, phone, address string) (*model.User, error) {
	user, err := u.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if address != "" {
		user.Address = address
	}

	if err := u.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserService) Deactivate(ctx context.Context, userID uint) error {
	return u.store.DeactivateUser(ctx, userID)
}

var _ IUserService = (*UserService)(nil)
