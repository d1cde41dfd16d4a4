package entity

import "time"

type PaymentMethod struct {
	ID          int64     `gorm:"column:id_metodo_pago;primaryKey;autoIncrement" json:"id_metodo_pago"`
	Name        string    `gorm:"column:nombre;type:varchar(50);uniqueIndex;not null" json:"nombre"`
	Description *string   `gorm:"column:descripcion;type:varchar(200)" json:"descripcion"`
	Active      bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "metodo_pago"
}
