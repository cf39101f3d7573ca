package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OfficeID    uint      `gorm:"index;not null" json:"officeId"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description *string   `gorm:"size:255" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	IsApproved  bool      `gorm:"not null;default:false" json:"isApproved"`
	ApprovedBy  *uint     `json:"approvedBy"`
	CreatedBy   uint      `json:"createdBy"`
	CreatedAt   time.Time `json:"createdOn"`
	UpdatedAt   time.Time `json:"updatedOn"`
}

func (c Category) PrimaryID() uint { return c.ID }

type Item struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OfficeID        uint      `gorm:"index;not null" json:"officeId"`
	CategoryID      uint      `gorm:"index;not null" json:"categoryId"`
	Name            string    `gorm:"size:150;not null" json:"name"`
	Description     *string   `gorm:"size:255" json:"description"`
	MeasurementUnit *string   `gorm:"size:20" json:"measurementUnit"`
	MinStockLevel   int       `gorm:"not null;default:0" json:"minStockLevel"`
	BrandName       *string   `gorm:"size:100" json:"brandName"`
	HSNCode         *string   `gorm:"column:hsn_code;size:20" json:"hsnCode"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
	IsApproved      bool      `gorm:"not null;default:false" json:"isApproved"`
	ApprovedBy      *uint     `json:"approvedBy"`
	CreatedBy       uint      `json:"createdBy"`
	CreatedAt       time.Time `json:"createdOn"`
	UpdatedAt       time.Time `json:"updatedOn"`
}

func (i Item) PrimaryID() uint { return i.ID }

type Vendor struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	OfficeID          uint      `gorm:"index;not null" json:"officeId"`
	Name              string    `gorm:"size:150;not null" json:"name"`
	ContactPerson     *string   `gorm:"size:100" json:"contactPerson"`
	ContactNumber     *string   `gorm:"size:20" json:"contactNumber"`
	Email             *string   `gorm:"size:100" json:"email"`
	Address           *string   `gorm:"size:255" json:"address"`
	GSTNumber         *string   `gorm:"column:gst_number;size:20" json:"gstNumber"`
	PANNumber         *string   `gorm:"column:pan_number;size:20" json:"panNumber"`
	PANFileURL        *string   `gorm:"column:pan_file_url;size:255" json:"panFileUrl"`
	GSTCertificateURL *string   `gorm:"column:gst_certificate_url;size:255" json:"gstCertificateUrl"`
	BrochureURL       *string   `gorm:"size:255" json:"brochureUrl"`
	WebsiteURL        *string   `gorm:"size:255" json:"websiteUrl"`
	IsActive          bool      `gorm:"not null;default:true" json:"isActive"`
	IsApproved        bool      `gorm:"not null;default:false" json:"isApproved"`
	ApprovedBy        *uint     `json:"approvedBy"`
	CreatedBy         uint      `json:"createdBy"`
	CreatedAt         time.Time `json:"createdOn"`
	UpdatedAt         time.Time `json:"updatedOn"`
}

func (v Vendor) PrimaryID() uint { return v.ID }

// RateCard is a vendor-and-item price valid until an optional expiry date.
type RateCard struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ItemID     uint       `gorm:"index;not null" json:"itemId"`
	VendorID   uint       `gorm:"index;not null" json:"vendorId"`
	Price      float64    `gorm:"not null" json:"price"`
	ValidTill  *time.Time `json:"validTill"`
	IsActive   bool       `gorm:"not null;default:true" json:"isActive"`
	IsApproved bool       `gorm:"not null;default:false" json:"isApproved"`
	ApprovedBy *uint      `json:"approvedBy"`
	CreatedBy  uint       `json:"createdBy"`
	CreatedAt  time.Time  `json:"createdOn"`
	UpdatedAt  time.Time  `json:"updatedOn"`
}

func (r RateCard) PrimaryID() uint { return r.ID }

type Stock struct {
	ID         uint      `gorm:"primaryKey" json:"stockId"`
	ItemID     uint      `gorm:"index;not null" json:"itemId"`
	OfficeID   uint      `gorm:"index;not null" json:"officeId"`
	CurrentQty int       `gorm:"not null;default:0" json:"currentQty"`
	MinQty     int       `gorm:"not null;default:0" json:"minQty"`
	IsActive   bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (s Stock) PrimaryID() uint { return s.ID }
