// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/store"
)

// MinPasswordLength 密碼最短長度（以字元計）
const MinPasswordLength = 8

// MaxPasswordBytes bcrypt 只接受 72 bytes 以內的密碼，多位元組字元會提早到達上限
const MaxPasswordBytes = 72

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// store 層函式，測試時替換為記憶體實作
var (
	storeCreateUser     = store.CreateUser
	storeGetUserByEmail = store.GetUserByEmail
	storeUpdateUserRole = store.UpdateUserRole
)

// AuthService 註冊、登入、session 解析與權限提升
type AuthService struct {
	db     database.DB
	tokens *TokenService
	cost   int
}

func NewAuthService(db database.DB, tokens *TokenService, bcryptCost int) *AuthService {
	return &AuthService{db: db, tokens: tokens, cost: bcryptCost}
}

type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	RepeatPassword string
}

// LoginResult 登入成功時的 token 與公開使用者資料
type LoginResult struct {
	Token string
	User  *model.User
}

// IsValidEmail 檢查 email 格式
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Register 建立一般使用者，不會自動登入
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.RepeatPassword == "" {
		return nil, newError(Validation, "All fields are required")
	}
	if !IsValidEmail(in.Email) {
		return nil, newError(Validation, "Invalid email format")
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return nil, newError(Validation, "Password must be at least 8 characters long")
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, newError(Validation, "Password cannot exceed 72 bytes")
	}
	if in.Password != in.RepeatPassword {
		return nil, newError(Validation, "Passwords do not match")
	}

	_, err := storeGetUserByEmail(ctx, s.db, in.Email)
	switch {
	case err == nil:
		return nil, newError(Conflict, "Email already registered")
	case !errors.Is(err, store.ErrNotFound):
		return nil, internalError("lookup user", err)
	}

	hash, err := HashPassword(in.Password, s.cost)
	if err != nil {
		return nil, internalError("hash password", err)
	}

	user, err := storeCreateUser(ctx, s.db, &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
	if errors.Is(err, store.ErrDuplicate) {
		// 併發註冊同一 email 時由唯一索引攔下
		return nil, newError(Conflict, "Email already registered")
	}
	if err != nil {
		return nil, internalError("create user", err)
	}
	return publicUser(user), nil
}

// Login 帳號不存在與密碼錯誤回傳相同錯誤，避免洩漏 email 是否已註冊
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, newError(Validation, "Email and password are required")
	}
	if !IsValidEmail(email) {
		return nil, newError(Validation, "Invalid email format")
	}

	user, err := storeGetUserByEmail(ctx, s.db, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, newError(InvalidCredentials, "Invalid credentials")
	}
	if err != nil {
		return nil, internalError("lookup user", err)
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, newError(InvalidCredentials, "Invalid credentials")
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, internalError("issue token", err)
	}
	return &LoginResult{Token: token, User: publicUser(user)}, nil
}

// GetSessionUser 驗證 token 後以 email 重新查詢使用者，角色以資料庫為準
func (s *AuthService) GetSessionUser(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, newError(Unauthenticated, "user not authenticated")
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, &Error{Kind: Unauthenticated, Msg: "user not authenticated", Err: err}
	}

	user, err := storeGetUserByEmail(ctx, s.db, claims.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, newError(NotFound, "User not found")
	}
	if err != nil {
		return nil, internalError("lookup session user", err)
	}
	return publicUser(user), nil
}

// PromoteToAdmin 僅管理員可將既有使用者提升為管理員
func (s *AuthService) PromoteToAdmin(ctx context.Context, requesterRole model.Role, targetEmail string) (*model.User, error) {
	if requesterRole != model.RoleAdmin {
		return nil, newError(Forbidden, "Admin access required")
	}
	if targetEmail == "" {
		return nil, newError(Validation, "Email is required")
	}

	target, err := storeGetUserByEmail(ctx, s.db, targetEmail)
	if errors.Is(err, store.ErrNotFound) {
		return nil, newError(NotFound, "User not found")
	}
	if err != nil {
		return nil, internalError("lookup target user", err)
	}
	if target.IsAdmin() {
		return nil, newError(AlreadyAdmin, "User is already an admin")
	}

	err = storeUpdateUserRole(ctx, s.db, target.ID, model.RoleAdmin)
	if errors.Is(err, store.ErrNotFound) {
		return nil, newError(NotFound, "User not found")
	}
	if err != nil {
		return nil, internalError("update role", err)
	}
	target.Role = model.RoleAdmin
	return publicUser(target), nil
}

// publicUser 去除密碼雜湊
func publicUser(u *model.User) *model.User {
	out := *u
	out.PasswordHash = ""
	return &out
}
