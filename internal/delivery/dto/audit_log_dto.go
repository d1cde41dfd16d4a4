package dto

import (
	"time"

	"medical-appointments-api/internal/domain/entity"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	AccountID *int64      `json:"id_usuario"`
	Action    string      `json:"accion"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}
