package entity

import "time"

// Account is a login identity, optionally linked to a patient or doctor row.
type Account struct {
	ID           int64     `gorm:"column:id_usuario;primaryKey;autoIncrement" json:"id_usuario"`
	Email        string    `gorm:"column:correo;type:varchar(100);uniqueIndex;not null" json:"correo"`
	PasswordHash string    `gorm:"column:contrasena_hash;type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"column:rol;type:varchar(20);not null;index" json:"rol"`
	ReferenceID  *int64    `gorm:"column:id_referencia;index" json:"id_referencia"`
	Active       bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "usuario"
}
