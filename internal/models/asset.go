package models

import "time"

type Asset struct {
	ID             uint       `gorm:"primaryKey" json:"assetId"`
	AssetCode      string     `gorm:"size:50;not null;index" json:"assetCode"`
	AssetName      string     `gorm:"size:150;not null" json:"assetName"`
	AssetTypeID    uint       `gorm:"not null" json:"assetTypeId"`
	OfficeID       uint       `gorm:"index;not null" json:"officeId"`
	ModelNumber    *string    `gorm:"size:100" json:"modelNumber"`
	SerialNumber   *string    `gorm:"size:100" json:"serialNumber"`
	PurchaseDate   *time.Time `json:"purchaseDate"`
	WarrantyExpiry *time.Time `json:"warrantyExpiry"`
	Manufacturer   *string    `gorm:"size:150" json:"manufacturer"`
	Supplier       *string    `gorm:"size:150" json:"supplier"`
	IsActive       bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedBy      *uint      `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdOn"`
	UpdatedAt      time.Time  `json:"updatedOn"`
}

func (a Asset) PrimaryID() uint { return a.ID }

// AssetOperation mirrors EmployeeOperation for machines.
type AssetOperation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AssetID     uint      `gorm:"index;not null" json:"assetId"`
	OperationID uint      `gorm:"index;not null" json:"operationId"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy   *uint     `json:"createdBy"`
	UpdatedBy   *uint     `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdOn"`
	UpdatedAt   time.Time `json:"updatedOn"`
}

func (ao AssetOperation) PrimaryID() uint { return ao.ID }
