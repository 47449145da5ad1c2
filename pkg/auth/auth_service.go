package auth

import (
	"context"
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"
	"fitcoach-backend/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	AuthService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, adminID string) (domain.AdminResponse, error)
		SeedAdmin(ctx context.Context, name, email, password string) error
	}

	authService struct {
		adminRepository AdminRepository
		jwtService      jwt.JWTService
	}
)

func NewAuthService(adminRepository AdminRepository, jwtService jwt.JWTService) AuthService {
	return &authService{
		adminRepository: adminRepository,
		jwtService:      jwtService,
	}
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	admin, err := s.adminRepository.GetAdminByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(admin.ID.String(), admin.Role),
		Admin: toAdminResponse(admin),
	}, nil
}

func (s *authService) Me(ctx context.Context, adminID string) (domain.AdminResponse, error) {
	if _, err := uuid.Parse(adminID); err != nil {
		return domain.AdminResponse{}, domain.ErrParseUUID
	}
	admin, err := s.adminRepository.GetAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AdminResponse{}, domain.ErrAdminNotFound
		}
		return domain.AdminResponse{}, err
	}
	return toAdminResponse(admin), nil
}

// SeedAdmin creates the coach account on first start. It does nothing when
// the email is empty or the account already exists.
func (s *authService) SeedAdmin(ctx context.Context, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	_, err := s.adminRepository.GetAdminByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entities.Admin{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	}
	if err := s.adminRepository.CreateAdmin(ctx, admin); err != nil {
		return err
	}
	log.Infof("seeded admin account %s", email)
	return nil
}

func toAdminResponse(admin *entities.Admin) domain.AdminResponse {
	return domain.AdminResponse{
		ID:        admin.ID.String(),
		Name:      admin.Name,
		Email:     admin.Email,
		Role:      admin.Role,
		CreatedAt: admin.CreatedAt,
	}
}
