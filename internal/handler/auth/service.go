// File: internal/handler/auth/service.go
package auth

import (
	"context"

	"storefront/internal/model"
	"storefront/internal/service"
)

// Service 為 auth handler 所需的服務介面，*service.AuthService 實作
type Service interface {
	Register(ctx context.Context, in service.RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
	PromoteToAdmin(ctx context.Context, requesterRole model.Role, targetEmail string) (*model.User, error)
}
