package inventory

import (
	"time"

	"gorm.io/gorm"
)

// poDetailRow is one row of the joined header × vendor × line-item ×
// receiving query. Header columns repeat on every row of an order;
// receiving columns are already aggregated per line item by the store.
type poDetailRow struct {
	PurchaseOrderID     uint      `gorm:"column:purchase_order_id"`
	PONumber            string    `gorm:"column:po_number"`
	PODateTime          time.Time `gorm:"column:po_date_time"`
	BillingAddress      *string   `gorm:"column:billing_address"`
	ShippingAddress     *string   `gorm:"column:shipping_address"`
	OfficeID            uint      `gorm:"column:office_id"`
	IsApproved          bool      `gorm:"column:is_approved"`
	TotalAmount         float64   `gorm:"column:total_amount"`
	CreatedBy           uint      `gorm:"column:created_by"`
	VendorID            uint      `gorm:"column:vendor_id"`
	VendorName          string    `gorm:"column:vendor_name"`
	ContactPerson       *string   `gorm:"column:contact_person"`
	ContactNumber       *string   `gorm:"column:contact_number"`
	Email               *string   `gorm:"column:email"`
	PurchaseOrderItemID uint      `gorm:"column:purchase_order_item_id"`
	ItemID              uint      `gorm:"column:item_id"`
	ItemName            string    `gorm:"column:item_name"`
	Quantity            float64   `gorm:"column:quantity"`
	Rate                float64   `gorm:"column:rate"`
	LineTotal           float64   `gorm:"column:line_total"`
	QuantityReceived    float64   `gorm:"column:quantity_received"`
	RejectedCount       int       `gorm:"column:rejected_count"`
	CompletedCount      int       `gorm:"column:completed_count"`
	RejectionRemarks    *string   `gorm:"column:rejection_remarks"`
}

type PODetails struct {
	PurchaseOrderID uint        `json:"purchaseOrderId"`
	PONumber        string      `json:"poNumber"`
	PODateTime      time.Time   `json:"poDateTime"`
	BillingAddress  *string     `json:"billingAddress"`
	ShippingAddress *string     `json:"shippingAddress"`
	OfficeID        uint        `json:"officeId"`
	IsApproved      bool        `json:"isApproved"`
	TotalAmount     float64     `json:"totalAmount"`
	CreatedBy       uint        `json:"createdBy"`
	VendorID        uint        `json:"vendorId"`
	VendorName      string      `json:"vendorName"`
	ContactPerson   *string     `json:"contactPerson"`
	ContactNumber   *string     `json:"contactNumber"`
	Email           *string     `json:"email"`
	Items           []POItemRow `json:"items"`
}

type POItemRow struct {
	PurchaseOrderItemID uint    `json:"purchaseOrderItemId"`
	ItemID              uint    `json:"itemId"`
	ItemName            string  `json:"itemName"`
	Quantity            float64 `json:"quantity"`
	Rate                float64 `json:"rate"`
	LineTotal           float64 `json:"lineTotal"`
	QuantityReceived    float64 `json:"quantityReceived"`
	IsRejected          bool    `json:"isRejected"`
	RejectionRemarks    *string `json:"rejectionRemarks"`
	IsCompleted         bool    `json:"isCompleted"`
}

// The store groups by every header and line-item column so the receiving
// rows can be summed per line item. The flag aggregates come back as
// match counts and are folded to booleans in Go, which keeps the SQL
// portable across Postgres and SQLite.
const poDetailQuery = `
SELECT
    po.id AS purchase_order_id,
    po.po_number,
    po.created_at AS po_date_time,
    po.billing_address,
    po.shipping_address,
    po.office_id,
    po.is_approved,
    po.total_amount,
    po.created_by,
    v.id AS vendor_id,
    v.name AS vendor_name,
    v.contact_person,
    v.contact_number,
    v.email,
    poi.id AS purchase_order_item_id,
    i.id AS item_id,
    i.name AS item_name,
    poi.quantity,
    poi.rate,
    poi.quantity * poi.rate AS line_total,
    COALESCE(SUM(gr.quantity_received), 0) AS quantity_received,
    COALESCE(SUM(CASE WHEN gr.is_rejected THEN 1 ELSE 0 END), 0) AS rejected_count,
    COALESCE(SUM(CASE WHEN gr.is_completed THEN 1 ELSE 0 END), 0) AS completed_count,
    STRING_AGG(gr.rejection_remarks, '; ') AS rejection_remarks
FROM purchase_orders po
JOIN vendors v ON v.id = po.vendor_id
JOIN purchase_order_items poi ON poi.purchase_order_id = po.id
JOIN items i ON i.id = poi.item_id
LEFT JOIN goods_receipts gr ON gr.purchase_order_item_id = poi.id
WHERE po.office_id = ? AND po.is_active = ?`

const poDetailGroupOrder = `
GROUP BY po.id, po.po_number, po.created_at, po.billing_address,
         po.shipping_address, po.office_id, po.is_approved, po.total_amount,
         po.created_by, v.id, v.name, v.contact_person, v.contact_number,
         v.email, poi.id, i.id, i.name, poi.quantity, poi.rate
ORDER BY po.id, poi.id`

func fetchPODetailRows(db *gorm.DB, officeID uint, poID, vendorID *uint) ([]poDetailRow, error) {
	query := poDetailQuery
	args := []any{officeID, true}

	if poID != nil {
		query += " AND po.id = ?"
		args = append(args, *poID)
	}
	if vendorID != nil {
		query += " AND po.vendor_id = ?"
		args = append(args, *vendorID)
	}
	query += poDetailGroupOrder

	var rows []poDetailRow
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// groupPODetailRows folds the flat row-set into nested orders. Header
// fields come from the first row of each group; every row contributes a
// line item. Input order is preserved, so each order appears exactly once
// and always with at least one item (a headerless order cannot occur: the
// join requires a line item to produce a row at all).
func groupPODetailRows(rows []poDetailRow) []PODetails {
	orders := make([]PODetails, 0)
	index := make(map[uint]int, len(rows))

	for _, row := range rows {
		pos, seen := index[row.PurchaseOrderID]
		if !seen {
			orders = append(orders, PODetails{
				PurchaseOrderID: row.PurchaseOrderID,
				PONumber:        row.PONumber,
				PODateTime:      row.PODateTime,
				BillingAddress:  row.BillingAddress,
				ShippingAddress: row.ShippingAddress,
				OfficeID:        row.OfficeID,
				IsApproved:      row.IsApproved,
				TotalAmount:     row.TotalAmount,
				CreatedBy:       row.CreatedBy,
				VendorID:        row.VendorID,
				VendorName:      row.VendorName,
				ContactPerson:   row.ContactPerson,
				ContactNumber:   row.ContactNumber,
				Email:           row.Email,
			})
			pos = len(orders) - 1
			index[row.PurchaseOrderID] = pos
		}

		orders[pos].Items = append(orders[pos].Items, POItemRow{
			PurchaseOrderItemID: row.PurchaseOrderItemID,
			ItemID:              row.ItemID,
			ItemName:            row.ItemName,
			Quantity:            row.Quantity,
			Rate:                row.Rate,
			LineTotal:           row.LineTotal,
			QuantityReceived:    row.QuantityReceived,
			IsRejected:          row.RejectedCount > 0,
			RejectionRemarks:    row.RejectionRemarks,
			IsCompleted:         row.CompletedCount > 0,
		})
	}

	return orders
}
