package usecase

import (
	"context"

	"medical-appointments-api/internal/converter"
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
	"medical-appointments-api/internal/domain/repository"
	"medical-appointments-api/internal/service"
	"medical-appointments-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, accountID int64, tokenID string) error
	GetCurrentAccount(ctx context.Context, accountID int64) (*dto.AccountResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AccountResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	transactor   repository.Transactor
	accountRepo  repository.AccountRepository
	auditService service.AuditService
	sessions     service.SessionStore
	jwtService   *jwt.JWTService
	hashCost     int
}

func NewAuthUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	accountRepo repository.AccountRepository,
	auditService service.AuditService,
	sessions service.SessionStore,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		transactor:   transactor,
		accountRepo:  accountRepo,
		auditService: auditService,
		sessions:     sessions,
		jwtService:   jwtService,
		hashCost:     bcrypt.DefaultCost,
	}
}

// Login answers the same error for an unknown email and a wrong password.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	db := u.transactor.DB(ctx)

	account, err := u.accountRepo.FindByEmail(db, entity.NormalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find account by email: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !account.Active {
		return nil, ErrInactiveAccount
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Register(ctx, account.ID, tokenID, u.jwtService.GetAccessExpiry()); err != nil {
		return nil, err
	}

	actorCtx := service.WithActor(ctx, account.ID)
	if err := u.auditService.LogCreate(actorCtx, db, entity.AuditActionAccountLogin, "usuario", account.ID, nil); err != nil {
		u.log.Warnf("Failed to audit login: %+v", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		Account:     *converter.AccountToResponse(account),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accountID int64, tokenID string) error {
	if err := u.sessions.Revoke(ctx, accountID, tokenID); err != nil {
		return err
	}

	if err := u.auditService.LogDelete(ctx, u.transactor.DB(ctx), entity.AuditActionAccountLogout, "usuario", accountID, nil); err != nil {
		u.log.Warnf("Failed to audit logout: %+v", err)
	}

	return nil
}

func (u *authUsecase) GetCurrentAccount(ctx context.Context, accountID int64) (*dto.AccountResponse, error) {
	account, err := u.accountRepo.FindByID(u.transactor.DB(ctx), accountID)
	if err != nil {
		u.log.Warnf("Failed to find account by ID: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return converter.AccountToResponse(account), nil
}

// CreateAdmin provisions an administrator account. It is reached from the
// command line only.
func (u *authUsecase) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.AccountResponse, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.hashCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	account := &entity.Account{
		Email:        entity.NormalizeEmail(req.Email),
		PasswordHash: string(passwordHash),
		Role:         entity.RoleAdmin,
		Active:       true,
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		existing, err := u.accountRepo.FindByEmail(tx, account.Email)
		if err != nil {
			u.log.Warnf("Failed to find account by email: %+v", err)
			return err
		}
		if existing != nil {
			return ErrAccountEmailExists
		}

		if err := u.accountRepo.Create(tx, account); err != nil {
			u.log.Warnf("Failed to create admin account: %+v", err)
			return translateConstraintError(err)
		}

		return u.auditService.LogCreate(ctx, tx, entity.AuditActionAccountCreate, "usuario", account.ID,
			map[string]interface{}{"correo": account.Email, "rol": account.Role},
		)
	})
	if err != nil {
		return nil, err
	}

	return converter.AccountToResponse(account), nil
}
