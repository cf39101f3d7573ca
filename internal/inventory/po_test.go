package inventory

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Vendor{}, &models.Item{},
		&models.PurchaseOrder{}, &models.PurchaseOrderItem{}, &models.GoodsReceipt{},
	))
	return db
}

func newPOApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Get("/po/GetGroupedPurchaseOrderDetails", GetGroupedPurchaseOrderDetailsHandler(db))
	app.Post("/po/CreatePurchaseOrders", CreatePurchaseOrdersHandler(db, zerolog.Nop()))
	app.Post("/po/receipt", CreateGoodsReceiptHandler(db))
	app.Delete("/po/:id/office/:officeId", DeletePurchaseOrderHandler(db))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func seedVendorAndItem(t *testing.T, db *gorm.DB, officeID uint) (models.Vendor, models.Item) {
	t.Helper()
	vendor := models.Vendor{OfficeID: officeID, Name: "Acme Wires", IsActive: true, IsApproved: true}
	require.NoError(t, db.Create(&vendor).Error)
	item := models.Item{OfficeID: officeID, CategoryID: 1, Name: "Copper Rod", IsActive: true, IsApproved: true}
	require.NoError(t, db.Create(&item).Error)
	return vendor, item
}

func str(s string) *string { return &s }

func TestGroupPODetailRows(t *testing.T) {
	rows := []poDetailRow{
		{PurchaseOrderID: 10, PONumber: "PO-710", VendorName: "Acme", PurchaseOrderItemID: 1, ItemName: "Rod", Quantity: 10, Rate: 5, LineTotal: 50},
		{PurchaseOrderID: 10, PONumber: "PO-710", VendorName: "Acme", PurchaseOrderItemID: 2, ItemName: "Wire", Quantity: 2, Rate: 50, LineTotal: 100, RejectedCount: 2, RejectionRemarks: str("damaged; bent")},
		{PurchaseOrderID: 11, PONumber: "PO-711", VendorName: "Acme", PurchaseOrderItemID: 3, ItemName: "Rod", Quantity: 1, Rate: 9, LineTotal: 9, CompletedCount: 1},
	}

	orders := groupPODetailRows(rows)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, uint(10), first.PurchaseOrderID)
	require.Len(t, first.Items, 2)
	assert.False(t, first.Items[0].IsRejected)
	assert.True(t, first.Items[1].IsRejected)
	require.NotNil(t, first.Items[1].RejectionRemarks)
	assert.Equal(t, "damaged; bent", *first.Items[1].RejectionRemarks)

	second := orders[1]
	assert.Equal(t, uint(11), second.PurchaseOrderID)
	require.Len(t, second.Items, 1)
	assert.True(t, second.Items[0].IsCompleted)
}

func TestGroupPODetailRowsEmpty(t *testing.T) {
	orders := groupPODetailRows(nil)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestCreatePurchaseOrderBatch(t *testing.T) {
	db := newTestDB(t, "po_batch")
	app := newPOApp(db)
	vendor, item := seedVendorAndItem(t, db, 7)

	batch := []CreatePORequest{
		{
			VendorID: vendor.ID, OfficeID: 7, CreatedBy: 1, TotalAmount: 150,
			Items: []CreatePOItem{
				{ItemID: item.ID, Quantity: 10, Rate: 5},
				{ItemID: item.ID, Quantity: 2, Rate: 50},
			},
		},
		{VendorID: vendor.ID, OfficeID: 7, CreatedBy: 1}, // no items: skipped
		{
			VendorID: vendor.ID, OfficeID: 7, CreatedBy: 1, TotalAmount: 9,
			Items: []CreatePOItem{{ItemID: item.ID, Quantity: 1, Rate: 9}},
		},
	}

	status, body := postJSON(t, app, "/po/CreatePurchaseOrders", batch)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var results []CreatePOResult
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 2)

	var headers []models.PurchaseOrder
	require.NoError(t, db.Order("id").Find(&headers).Error)
	require.Len(t, headers, 2)

	// The number is stamped from the generated id after insert.
	for _, h := range headers {
		assert.Equal(t, "PO-7"+itoa(h.ID), h.PONumber)
	}

	var lineCount int64
	require.NoError(t, db.Model(&models.PurchaseOrderItem{}).Count(&lineCount).Error)
	assert.EqualValues(t, 3, lineCount)
}

func TestCreatePurchaseOrderBatchRollsBack(t *testing.T) {
	db := newTestDB(t, "po_rollback")
	app := newPOApp(db)
	vendor, item := seedVendorAndItem(t, db, 7)

	batch := []CreatePORequest{
		{
			VendorID: vendor.ID, OfficeID: 7, CreatedBy: 1,
			Items: []CreatePOItem{{ItemID: item.ID, Quantity: 10, Rate: 5}},
		},
		{
			// Negative quantity violates the line-item check constraint.
			VendorID: vendor.ID, OfficeID: 7, CreatedBy: 1,
			Items: []CreatePOItem{{ItemID: item.ID, Quantity: -1, Rate: 5}},
		},
	}

	status, _ := postJSON(t, app, "/po/CreatePurchaseOrders", batch)
	require.Equal(t, fiber.StatusInternalServerError, status)

	// Nothing from the batch survives, including the valid first order.
	var headerCount, lineCount int64
	require.NoError(t, db.Model(&models.PurchaseOrder{}).Count(&headerCount).Error)
	require.NoError(t, db.Model(&models.PurchaseOrderItem{}).Count(&lineCount).Error)
	assert.Zero(t, headerCount)
	assert.Zero(t, lineCount)
}

func TestGroupedPurchaseOrderDetails(t *testing.T) {
	db := newTestDB(t, "po_details")
	app := newPOApp(db)
	vendor, item := seedVendorAndItem(t, db, 7)

	batch := []CreatePORequest{{
		VendorID: vendor.ID, OfficeID: 7, CreatedBy: 1, TotalAmount: 150,
		Items: []CreatePOItem{
			{ItemID: item.ID, Quantity: 10, Rate: 5},
			{ItemID: item.ID, Quantity: 2, Rate: 50},
		},
	}}
	status, body := postJSON(t, app, "/po/CreatePurchaseOrders", batch)
	require.Equal(t, fiber.StatusOK, status, string(body))

	req := httptest.NewRequest(fiber.MethodGet, "/po/GetGroupedPurchaseOrderDetails?officeId=7", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var orders []PODetails
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &orders))

	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, "Acme Wires", order.VendorName)
	assert.Equal(t, uint(7), order.OfficeID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 50.0, order.Items[0].LineTotal)
	assert.Equal(t, 100.0, order.Items[1].LineTotal)

	// No receipts yet: everything reads as zero received, nothing flagged.
	for _, it := range order.Items {
		assert.Zero(t, it.QuantityReceived)
		assert.False(t, it.IsRejected)
		assert.False(t, it.IsCompleted)
	}
}

func TestGroupedDetailsAggregateReceipts(t *testing.T) {
	db := newTestDB(t, "po_receipts")
	app := newPOApp(db)
	vendor, item := seedVendorAndItem(t, db, 7)

	batch := []CreatePORequest{{
		VendorID: vendor.ID, OfficeID: 7, CreatedBy: 1,
		Items: []CreatePOItem{{ItemID: item.ID, Quantity: 10, Rate: 5}},
	}}
	status, body := postJSON(t, app, "/po/CreatePurchaseOrders", batch)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var line models.PurchaseOrderItem
	require.NoError(t, db.First(&line).Error)

	status, _ = postJSON(t, app, "/po/receipt", GoodsReceiptRequest{
		PurchaseOrderItemID: line.ID, QuantityReceived: 6, CreatedBy: 1,
	})
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = postJSON(t, app, "/po/receipt", GoodsReceiptRequest{
		PurchaseOrderItemID: line.ID, QuantityReceived: 3, IsRejected: true,
		RejectionRemarks: str("bent"), IsCompleted: true, CreatedBy: 1,
	})
	require.Equal(t, fiber.StatusCreated, status)

	// Receipts against an unknown line item are rejected outright.
	status, _ = postJSON(t, app, "/po/receipt", GoodsReceiptRequest{
		PurchaseOrderItemID: 9999, QuantityReceived: 1,
	})
	require.Equal(t, fiber.StatusNotFound, status)

	rows, err := fetchPODetailRows(db, 7, nil, nil)
	require.NoError(t, err)
	orders := groupPODetailRows(rows)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)

	got := orders[0].Items[0]
	assert.Equal(t, 9.0, got.QuantityReceived)
	assert.True(t, got.IsRejected)
	assert.True(t, got.IsCompleted)
	require.NotNil(t, got.RejectionRemarks)
	assert.Equal(t, "bent", *got.RejectionRemarks)
}

func TestDeletePurchaseOrderTwice(t *testing.T) {
	db := newTestDB(t, "po_delete")
	app := newPOApp(db)
	vendor, item := seedVendorAndItem(t, db, 7)

	batch := []CreatePORequest{{
		VendorID: vendor.ID, OfficeID: 7, CreatedBy: 1,
		Items: []CreatePOItem{{ItemID: item.ID, Quantity: 1, Rate: 1}},
	}}
	status, body := postJSON(t, app, "/po/CreatePurchaseOrders", batch)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var results []CreatePOResult
	require.NoError(t, json.Unmarshal(body, &results))
	id := itoa(results[0].PurchaseOrderID)

	req := httptest.NewRequest(fiber.MethodDelete, "/po/"+id+"/office/7", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Deleted orders drop out of the grouped detail view.
	rows, err := fetchPODetailRows(db, 7, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	req = httptest.NewRequest(fiber.MethodDelete, "/po/"+id+"/office/7", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Wrong office never matches.
	req = httptest.NewRequest(fiber.MethodDelete, "/po/"+id+"/office/99", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func itoa(v uint) string { return strconv.FormatUint(uint64(v), 10) }
