package models

import "time"

type Shift struct {
	ID        uint      `gorm:"primaryKey" json:"shiftId"`
	ShiftName string    `gorm:"size:100;not null" json:"shiftName"`
	ShiftCode string    `gorm:"size:20" json:"shiftCode"`
	StartTime string    `gorm:"size:8;not null" json:"startTime"` // "06:00:00"
	EndTime   string    `gorm:"size:8;not null" json:"endTime"`
	OfficeID  uint      `gorm:"index;not null" json:"officeId"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdOn"`
	UpdatedAt time.Time `json:"updatedOn"`
}

func (s Shift) PrimaryID() uint { return s.ID }
