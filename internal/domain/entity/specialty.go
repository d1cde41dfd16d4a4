package entity

import "time"

type Specialty struct {
	ID          int64     `gorm:"column:id_especialidad;primaryKey;autoIncrement" json:"id_especialidad"`
	Name        string    `gorm:"column:nombre;type:varchar(100);uniqueIndex;not null" json:"nombre"`
	Description *string   `gorm:"column:descripcion;type:text" json:"descripcion"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Specialty) TableName() string {
	return "especialidad"
}
