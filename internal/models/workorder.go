package models

import "time"

// Party is the customer a work order is raised for.
type Party struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	OfficeID          uint      `gorm:"index;not null" json:"officeId"`
	Name              string    `gorm:"size:150;not null" json:"name"`
	ContactPerson     *string   `gorm:"size:100" json:"contactPerson"`
	ContactNumber     *string   `gorm:"size:20" json:"contactNumber"`
	Email             *string   `gorm:"size:100" json:"email"`
	Address           *string   `gorm:"size:255" json:"address"`
	GSTNumber         *string   `gorm:"column:gst_number;size:20" json:"gstNumber"`
	PANNumber         *string   `gorm:"column:pan_number;size:20" json:"panNumber"`
	PANFileURL        *string   `gorm:"column:pan_url;size:255" json:"panUrl"`
	GSTCertificateURL *string   `gorm:"column:gst_certificate_url;size:255" json:"gstCertificateUrl"`
	BrochureURL       *string   `gorm:"size:255" json:"companyBrochureUrl"`
	WebsiteURL        *string   `gorm:"size:255" json:"websiteUrl"`
	IsActive          bool      `gorm:"not null;default:true" json:"isActive"`
	IsApproved        bool      `gorm:"not null;default:false" json:"isApproved"`
	ApprovedBy        *uint     `json:"approvedBy"`
	CreatedBy         *uint     `json:"createdBy"`
	CreatedAt         time.Time `json:"createdOn"`
	UpdatedAt         time.Time `json:"updatedOn"`
}

func (p Party) PrimaryID() uint { return p.ID }

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductName string    `gorm:"size:150;not null" json:"productName"`
	Description *string   `gorm:"size:255" json:"description"`
	Rate        *int      `json:"rate"`
	Unit        *string   `gorm:"size:20" json:"unit"`
	OfficeID    uint      `gorm:"index;not null" json:"officeId"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy   *uint     `json:"createdBy"`
	UpdatedBy   *uint     `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdOn"`
	UpdatedAt   time.Time `json:"updatedOn"`
}

func (p Product) PrimaryID() uint { return p.ID }

// WorkOrder owns its product lines: they are written only inside the
// parent's transaction and never exist on their own.
type WorkOrder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PartyID   uint      `gorm:"index;not null" json:"partyId"`
	PoNo      *string   `gorm:"size:50" json:"poNo"`
	BoardName *string   `gorm:"size:150" json:"boardName"`
	PoAmount  *int      `json:"poAmount"`
	OfficeID  uint      `gorm:"index;not null" json:"officeId"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy *uint     `json:"createdBy"`
	UpdatedBy *uint     `json:"updatedBy"`
	CreatedAt time.Time `json:"createdOn"`
	UpdatedAt time.Time `json:"updatedOn"`

	Products []WorkOrderProduct `gorm:"foreignKey:WorkOrderID" json:"products"`
}

func (w WorkOrder) PrimaryID() uint { return w.ID }

type WorkOrderProduct struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WorkOrderID uint      `gorm:"column:wo_id;index;not null" json:"woId"`
	ProductID   uint      `gorm:"index;not null" json:"productId"`
	Quantity    *int      `json:"quantity"`
	Store       *string   `gorm:"size:100" json:"store"`
	CreatedBy   *uint     `json:"createdBy"`
	UpdatedBy   *uint     `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdOn"`
	UpdatedAt   time.Time `json:"updatedOn"`
}

func (w WorkOrderProduct) PrimaryID() uint { return w.ID }
