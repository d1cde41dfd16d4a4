package usecase

import (
	"context"

	"medical-appointments-api/config"
	"medical-appointments-api/internal/converter"
	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, query dto.PageQuery) ([]dto.AuditLogResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	transactor   repository.Transactor
	auditLogRepo repository.AuditLogRepository
	maxLimit     int
}

func NewAuditLogUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	auditLogRepo repository.AuditLogRepository,
	pagination config.PaginationConfig,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		transactor:   transactor,
		auditLogRepo: auditLogRepo,
		maxLimit:     pagination.MaxLimit,
	}
}

func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, query dto.PageQuery) ([]dto.AuditLogResponse, error) {
	page, err := toPage(query, u.maxLimit)
	if err != nil {
		return nil, err
	}

	logs, err := u.auditLogRepo.FindAll(u.transactor.DB(ctx), page)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return converter.AuditLogsToResponses(logs), nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
