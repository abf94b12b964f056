package usecase

import (
	"context"
	"fmt"
	"time"

	"wheelio-backend/internal/data/entity"
	"wheelio-backend/internal/data/repository"
	"wheelio-backend/internal/dto/request"
	"wheelio-backend/internal/dto/response"
	"wheelio-backend/pkg/mailer"
	"wheelio-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// Admin endpoints
	UpdateRole(ctx context.Context, email string, req *request.UpdateRoleRequest) (*response.UserResponse, error)
	DeleteByEmail(ctx context.Context, email string) error

	// Password reset flow
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   *mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, mail *mailer.Mailer, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	return utils.GenerateToken(utils.TokenClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
	}, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	exists, err := s.repo.User.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email availability: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email %s is already registered", ErrConflict, req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.RoleUser
	if req.Role != nil {
		parsed, ok := entity.ParseUserRole(*req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %s", ErrValidation, *req.Role)
		}
		role = parsed
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		Phone:        req.Phone,
		City:         req.City,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !utils.CheckPassword(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID.String())
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID.String())
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.City != nil {
		user.City = req.City
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	// Keep the denormalized driver contact fields in sync.
	if user.Role == entity.RoleDriver {
		if err := s.syncDriverContact(ctx, user); err != nil {
			s.log.Warn("Failed to sync driver profile", zap.Error(err))
		}
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) syncDriverContact(ctx context.Context, user *entity.User) error {
	driver, err := s.repo.Driver.FindByUserID(ctx, user.ID)
	if err != nil || driver == nil {
		return err
	}

	driver.FullName = user.FullName
	driver.Email = user.Email
	driver.Phone = user.Phone
	driver.City = user.City
	driver.AvatarURL = user.AvatarURL

	return s.repo.Driver.Update(ctx, driver)
}

func (s *authService) UpdateRole(ctx context.Context, email string, req *request.UpdateRoleRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	role, ok := entity.ParseUserRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %s", ErrValidation, req.Role)
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	user.Role = role
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}

	s.log.Info("User role updated",
		zap.String("email", email),
		zap.String("role", string(role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) DeleteByEmail(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	if user.Role == entity.RoleDriver {
		if err := s.repo.Driver.Delete(ctx, user.ID); err != nil {
			s.log.Warn("Failed to delete driver profile", zap.Error(err))
		}
	}

	if err := s.repo.User.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		// Do not reveal whether the email exists.
		s.log.Info("Password reset requested for unknown email", zap.String("email", req.Email))
		return nil
	}

	token := utils.GenerateResetToken()
	expiry := time.Now().Add(1 * time.Hour)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	// Email delivery is best effort, the token is already persisted.
	go func() {
		if err := s.mail.SendPasswordReset(user.Email, user.FullName, token); err != nil {
			s.log.Error("Failed to send password reset email",
				zap.String("email", user.Email),
				zap.Error(err))
		}
	}()

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByResetToken(ctx, req.Token)
	if err != nil {
		return fmt.Errorf("find user by reset token: %w", err)
	}
	if user == nil || user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return fmt.Errorf("%w: invalid or expired reset token", ErrValidation)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password reset completed", zap.String("user_id", user.ID.String()))
	return nil
}
