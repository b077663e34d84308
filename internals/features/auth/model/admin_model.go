// file: internals/features/auth/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: admins
============================================================================= */
type AdminModel struct {
	// PK
	AdminID uuid.UUID `json:"admin_id" gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AdminEmail        string `json:"admin_email" gorm:"column:admin_email;type:varchar(160);not null;uniqueIndex:uq_admins_email"`
	AdminFullName     string `json:"admin_full_name" gorm:"column:admin_full_name;type:varchar(120);not null"`
	AdminPasswordHash string `json:"-" gorm:"column:admin_password_hash;type:varchar(100);not null"`

	// Audit
	AdminCreatedAt time.Time `json:"admin_created_at" gorm:"column:admin_created_at;type:timestamptz;not null;default:now()"`
	AdminUpdatedAt time.Time `json:"admin_updated_at" gorm:"column:admin_updated_at;type:timestamptz;not null;default:now()"`
}

func (AdminModel) TableName() string { return "admins" }

func (m *AdminModel) BeforeSave(_ *gorm.DB) error {
	m.AdminUpdatedAt = time.Now()
	return nil
}
