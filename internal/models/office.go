package models

import "time"

// Office is the tenant scope: almost every other record carries an OfficeID.
type Office struct {
	ID            uint      `gorm:"primaryKey" json:"officeId"`
	OfficeName    string    `gorm:"size:150;not null" json:"officeName"`
	OfficeType    string    `gorm:"size:50" json:"officeType"`
	Region        string    `gorm:"size:100" json:"region"`
	AddressLine1  string    `gorm:"size:255" json:"addressLine1"`
	AddressLine2  string    `gorm:"size:255" json:"addressLine2"`
	City          string    `gorm:"size:100" json:"city"`
	State         string    `gorm:"size:100" json:"state"`
	Pincode       *string   `gorm:"size:10" json:"pincode"`
	ContactNumber string    `gorm:"size:20" json:"contactNumber"`
	Email         string    `gorm:"size:100" json:"email"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy     uint      `json:"createdBy"`
	ModifiedBy    *uint     `json:"modifiedBy"`
	CreatedAt     time.Time `json:"createdOn"`
	UpdatedAt     time.Time `json:"updatedOn"`
}

func (o Office) PrimaryID() uint { return o.ID }
