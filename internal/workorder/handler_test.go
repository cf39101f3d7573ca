package workorder

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
		&models.Party{}, &models.Product{},
		&models.WorkOrder{}, &models.WorkOrderProduct{},
	))
	return db
}

func newWOApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	app.Post("/master", CreateWorkOrderHandler(db, zerolog.Nop()))
	app.Put("/master/:id", UpdateWorkOrderHandler(db, zerolog.Nop()))
	app.Delete("/master/:id/office/:officeId", DeleteWorkOrderHandler(db))
	app.Get("/master/office/:officeId", ListWorkOrdersByOfficeHandler(db))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }
func uintp(v uint) *uint    { return &v }
func itoa(v uint) string    { return strconv.FormatUint(uint64(v), 10) }

func createWorkOrder(t *testing.T, app *fiber.App, body WorkOrderRequest) uint {
	t.Helper()
	status, out := doJSON(t, app, fiber.MethodPost, "/master", body)
	require.Equal(t, fiber.StatusCreated, status, string(out))

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(out, &created))
	require.NotZero(t, created.ID)
	return created.ID
}

func TestCreateWorkOrderWithProducts(t *testing.T) {
	db := newTestDB(t, "wo_create")
	app := newWOApp(db)

	id := createWorkOrder(t, app, WorkOrderRequest{
		PartyID: 1, OfficeID: 7, PoNo: strp("CUST-99"), CreatedBy: uintp(1),
		Products: []WorkOrderProductRequest{
			{ProductID: 1, Quantity: intp(100), Store: strp("A")},
			{ProductID: 2, Quantity: intp(50)},
		},
	})

	var master models.WorkOrder
	require.NoError(t, db.Preload("Products").First(&master, "id = ?", id).Error)
	assert.True(t, master.IsActive)
	require.NotNil(t, master.PoNo)
	assert.Equal(t, "CUST-99", *master.PoNo)
	require.Len(t, master.Products, 2)
	assert.Equal(t, id, master.Products[0].WorkOrderID)
}

func TestCreateWorkOrderRequiresPartyAndOffice(t *testing.T) {
	db := newTestDB(t, "wo_validate")
	app := newWOApp(db)

	status, _ := doJSON(t, app, fiber.MethodPost, "/master", WorkOrderRequest{OfficeID: 7})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, fiber.MethodPost, "/master", WorkOrderRequest{PartyID: 1})
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	require.NoError(t, db.Model(&models.WorkOrder{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateWorkOrderSkipsUnknownProducts(t *testing.T) {
	db := newTestDB(t, "wo_update")
	app := newWOApp(db)

	id := createWorkOrder(t, app, WorkOrderRequest{
		PartyID: 1, OfficeID: 7, CreatedBy: uintp(1),
		Products: []WorkOrderProductRequest{{ProductID: 1, Quantity: intp(100)}},
	})

	// Product 2 never existed on this work order; only product 1 matches.
	status, out := doJSON(t, app, fiber.MethodPut, "/master/"+itoa(id), WorkOrderRequest{
		PartyID: 2, OfficeID: 7, UpdatedBy: uintp(9),
		Products: []WorkOrderProductRequest{
			{ProductID: 1, Quantity: intp(75), Store: strp("B")},
			{ProductID: 2, Quantity: intp(10)},
		},
	})
	require.Equal(t, fiber.StatusOK, status, string(out))

	var result struct {
		ProductsMatched int64 `json:"productsMatched"`
	}
	require.NoError(t, json.Unmarshal(out, &result))
	assert.EqualValues(t, 1, result.ProductsMatched)

	var lines []models.WorkOrderProduct
	require.NoError(t, db.Where("wo_id = ?", id).Find(&lines).Error)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Quantity)
	assert.Equal(t, 75, *lines[0].Quantity)

	var master models.WorkOrder
	require.NoError(t, db.First(&master, "id = ?", id).Error)
	assert.Equal(t, uint(2), master.PartyID)
}

func TestUpdateMissingWorkOrder(t *testing.T) {
	db := newTestDB(t, "wo_update_missing")
	app := newWOApp(db)

	status, _ := doJSON(t, app, fiber.MethodPut, "/master/9999", WorkOrderRequest{
		PartyID: 1, OfficeID: 7,
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteWorkOrderTwice(t *testing.T) {
	db := newTestDB(t, "wo_delete")
	app := newWOApp(db)

	id := createWorkOrder(t, app, WorkOrderRequest{
		PartyID: 1, OfficeID: 7,
		Products: []WorkOrderProductRequest{{ProductID: 1}},
	})

	status, _ := doJSON(t, app, fiber.MethodDelete, "/master/"+itoa(id)+"/office/7", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, fiber.MethodDelete, "/master/"+itoa(id)+"/office/7", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	// Wrong office behaves the same as a missing work order.
	id2 := createWorkOrder(t, app, WorkOrderRequest{PartyID: 1, OfficeID: 7})
	status, _ = doJSON(t, app, fiber.MethodDelete, "/master/"+itoa(id2)+"/office/99", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestListWorkOrdersByOffice(t *testing.T) {
	db := newTestDB(t, "wo_list")
	app := newWOApp(db)

	first := createWorkOrder(t, app, WorkOrderRequest{
		PartyID: 1, OfficeID: 7,
		Products: []WorkOrderProductRequest{{ProductID: 1, Quantity: intp(5)}},
	})
	createWorkOrder(t, app, WorkOrderRequest{PartyID: 1, OfficeID: 8})

	deleted := createWorkOrder(t, app, WorkOrderRequest{PartyID: 1, OfficeID: 7})
	status, _ := doJSON(t, app, fiber.MethodDelete, "/master/"+itoa(deleted)+"/office/7", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, out := doJSON(t, app, fiber.MethodGet, "/master/office/7", nil)
	require.Equal(t, fiber.StatusOK, status)

	var orders []models.WorkOrder
	require.NoError(t, json.Unmarshal(out, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, first, orders[0].ID)
	require.Len(t, orders[0].Products, 1)
}
