package models

import "time"

// PurchaseOrder is an internal order to a vendor. The human-readable number
// is derived from the generated id, so creation stamps a placeholder first
// and rewrites it once the id is known.
type PurchaseOrder struct {
	ID              uint      `gorm:"primaryKey" json:"purchaseOrderId"`
	PONumber        string    `gorm:"column:po_number;size:50;not null;index" json:"poNumber"`
	VendorID        uint      `gorm:"index;not null" json:"vendorId"`
	BillingAddress  *string   `gorm:"size:255" json:"billingAddress"`
	ShippingAddress *string   `gorm:"size:255" json:"shippingAddress"`
	TotalAmount     float64   `gorm:"not null" json:"totalAmount"`
	OfficeID        uint      `gorm:"index;not null" json:"officeId"`
	IsApproved      bool      `gorm:"not null;default:false" json:"isApproved"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedBy       uint      `json:"createdBy"`
	CreatedAt       time.Time `json:"poDateTime"`
	UpdatedAt       time.Time `json:"-"`

	Items []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

func (p PurchaseOrder) PrimaryID() uint { return p.ID }

type PurchaseOrderItem struct {
	ID              uint      `gorm:"primaryKey" json:"purchaseOrderItemId"`
	PurchaseOrderID uint      `gorm:"index;not null" json:"purchaseOrderId"`
	ItemID          uint      `gorm:"index;not null" json:"itemId"`
	Quantity        float64   `gorm:"not null;check:chk_po_item_quantity,quantity > 0" json:"quantity"`
	Rate            float64   `gorm:"not null" json:"rate"`
	CreatedBy       uint      `json:"createdBy"`
	CreatedAt       time.Time `json:"createdOn"`
	UpdatedAt       time.Time `json:"-"`
}

func (p PurchaseOrderItem) PrimaryID() uint { return p.ID }

// GoodsReceipt records a delivery (or rejection) against one PO line item.
// A line item can have any number of receipts; the aggregator sums them.
type GoodsReceipt struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	PurchaseOrderItemID uint      `gorm:"index;not null" json:"purchaseOrderItemId"`
	QuantityReceived    float64   `gorm:"not null;default:0" json:"quantityReceived"`
	IsRejected          bool      `gorm:"not null;default:false" json:"isRejected"`
	RejectionRemarks    *string   `gorm:"size:255" json:"rejectionRemarks"`
	IsCompleted         bool      `gorm:"not null;default:false" json:"isCompleted"`
	CreatedBy           uint      `json:"createdBy"`
	CreatedAt           time.Time `json:"createdOn"`
	UpdatedAt           time.Time `json:"-"`
}

func (g GoodsReceipt) PrimaryID() uint { return g.ID }
