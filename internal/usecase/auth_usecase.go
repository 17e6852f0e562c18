package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctor-portal-api/internal/converter"
	"doctor-portal-api/internal/delivery/dto"
	"doctor-portal-api/internal/domain/entity"
	"doctor-portal-api/internal/domain/repository"
	"doctor-portal-api/internal/service"
	"doctor-portal-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrLicenseNumberExists = errors.New("license number already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
	ErrDoctorNotVerified   = errors.New("doctor account pending verification")
	ErrNotADoctor          = errors.New("account has no doctor role")
)

type AuthUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	userRoleRepo       repository.UserRoleRepository
	doctorRepo         repository.DoctorRepository
	doctorApprovalRepo repository.DoctorApprovalRequestRepository
	auditService       service.AuditService
	jwtService         *jwt.JWTService
	redisClient        *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	userRoleRepo repository.UserRoleRepository,
	doctorRepo repository.DoctorRepository,
	doctorApprovalRepo repository.DoctorApprovalRequestRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		userRoleRepo:       userRoleRepo,
		doctorRepo:         doctorRepo,
		doctorApprovalRepo: doctorApprovalRepo,
		auditService:       auditService,
		jwtService:         jwtService,
		redisClient:        redisClient,
	}
}

// RegisterDoctor creates the login user, its doctor role and the doctor
// profile in one transaction. A half-created account can never be observed:
// any failure rolls back all three inserts.
func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// New accounts stay inactive until an admin approves the doctor.
	isActive := false
	user := &entity.User{
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    string(hashedPassword),
		FirstName:   &req.FirstName,
		LastName:    &req.LastName,
		PhoneNumber: req.PhoneNumber,
		IsActive:    &isActive,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	role := &entity.UserRole{
		UserID: user.ID,
		Role:   entity.RoleDoctor,
	}
	if err := u.userRoleRepo.Create(tx, role); err != nil {
		u.log.Warnf("Failed to create user role: %+v", err)
		return nil, err
	}

	licenseNumber := strings.TrimSpace(req.LicenseNumber)
	existing, err := u.doctorRepo.FindByLicenseNumber(tx, licenseNumber)
	if err != nil {
		u.log.Warnf("Failed to check license number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrLicenseNumberExists
	}

	doctor := &entity.Doctor{
		UserID:        user.ID,
		Title:         req.Title,
		Specialty:     req.Specialty,
		LicenseNumber: licenseNumber,
		PhoneNumber:   req.PhoneNumber,
		Address: entity.JSON{
			"street":      req.Address.Street,
			"city":        req.Address.City,
			"postal_code": req.Address.PostalCode,
			"country":     req.Address.Country,
		},
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseNumberExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, tx, &user.ID, entity.AuditActionDoctorRegister, map[string]interface{}{
		"doctor_id":      doctor.ID.String(),
		"license_number": doctor.LicenseNumber,
	}); err != nil {
		// Never fail registration for audit log errors
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Queue the account for manual review. Best effort: the account exists
	// either way and stays unverified until an admin approves it.
	approval := &entity.DoctorApprovalRequest{
		DoctorID: doctor.ID,
		Status:   entity.DoctorApprovalPending,
	}
	if err := u.doctorApprovalRepo.Create(u.db.WithContext(ctx), approval); err != nil {
		u.log.Warnf("Failed to create doctor approval request: %+v", err)
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	roles, err := u.userRoleRepo.FindByUserID(u.db.WithContext(ctx), user.ID)
	if err != nil {
		u.log.Warnf("Failed to find user roles: %+v", err)
		return nil, err
	}
	role := primaryRole(roles)
	if role != entity.RoleDoctor && role != entity.RoleAdmin {
		return nil, ErrNotADoctor
	}

	if role == entity.RoleDoctor {
		doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), user.ID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return nil, err
		}
		// Unverified covers the freshly registered, still inactive account.
		if doctor == nil || !doctor.IsVerified {
			return nil, ErrDoctorNotVerified
		}
	}

	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:         converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}

	// Drop refresh tokens too; a logout invalidates the whole session.
	refreshPattern := fmt.Sprintf("refresh_token:%s:*", userID.String())
	refreshKeys, err := u.redisClient.Keys(ctx, refreshPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to get refresh token keys: %+v", err)
		return err
	}
	if len(refreshKeys) > 0 {
		if err := u.redisClient.Del(ctx, refreshKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh tokens: %+v", err)
			return err
		}
	}

	if err := u.auditService.LogAction(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKeyNew := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), accessTokenID)
	refreshKeyNew := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKeyNew, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKeyNew, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// primaryRole picks the role used for token claims: doctor beats admin beats
// anything else.
func primaryRole(roles []entity.UserRole) string {
	var role string
	for _, r := range roles {
		switch r.Role {
		case entity.RoleDoctor:
			return entity.RoleDoctor
		case entity.RoleAdmin:
			role = entity.RoleAdmin
		default:
			if role == "" {
				role = r.Role
			}
		}
	}
	return role
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
