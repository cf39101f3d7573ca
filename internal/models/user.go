package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	UsertypeID   uint       `gorm:"not null" json:"usertypeId"`
	EmployeeID   uint       `gorm:"index;not null" json:"employeeId"`
	OfficeID     *uint      `gorm:"index" json:"officeId"`
	IsFirstLogin bool       `gorm:"not null;default:true" json:"isFirstLogin"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdOn"`
	UpdatedAt    time.Time  `json:"-"`
}

func (u User) PrimaryID() uint { return u.ID }
