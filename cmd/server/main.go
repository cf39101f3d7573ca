package main

import (
	"strings"

	"vaulterp-backend/internal/asset"
	"vaulterp-backend/internal/attendance"
	"vaulterp-backend/internal/auth"
	"vaulterp-backend/internal/config"
	"vaulterp-backend/internal/database"
	"vaulterp-backend/internal/employee"
	"vaulterp-backend/internal/inventory"
	"vaulterp-backend/internal/logging"
	"vaulterp-backend/internal/office"
	"vaulterp-backend/internal/planning"
	"vaulterp-backend/internal/upload"
	"vaulterp-backend/internal/workorder"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	logger := logging.New()

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("database migration failed")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Error().Err(err).Str("path", c.Path()).Msg("unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(logging.RequestLogger(logger))

	app.Static("/uploads", cfg.UploadPath)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(db, cfg))

	// Everything else requires a valid token.
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	// Users
	protected.Get("/user", auth.ListUsersHandler(db))
	protected.Post("/user", auth.CreateUserHandler(db))
	protected.Put("/user/:id", auth.UpdateUserHandler(db))
	protected.Delete("/user/:id", auth.DeleteUserHandler(db))

	// Offices
	protected.Get("/office", office.ListOfficesHandler(db))
	protected.Get("/office/:id", office.GetOfficeHandler(db))
	protected.Post("/office", office.CreateOfficeHandler(db))
	protected.Put("/office/:id", office.UpdateOfficeHandler(db))
	protected.Delete("/office/:id", office.DeleteOfficeHandler(db))

	// Employees
	protected.Get("/employee", employee.ListEmployeesHandler(db))
	protected.Get("/employee/getBy/:imageName", employee.GetProfileImageHandler(cfg))
	protected.Get("/employee/:id", employee.GetEmployeeHandler(db))
	protected.Post("/employee", employee.CreateEmployeeHandler(db))
	protected.Put("/employee/:id", employee.UpdateEmployeeHandler(db))
	protected.Delete("/employee/:id", employee.DeleteEmployeeHandler(db))

	// Operations and employee-operation mappings
	protected.Post("/empOps/create", employee.CreateOperationHandler(db))
	protected.Get("/empOps/operations-by-office", employee.ListOperationsByOfficeHandler(db))
	protected.Get("/empOps/operations-by-employee", employee.ListOperationsByEmployeeHandler(db))
	protected.Post("/empOps/map", employee.MapEmployeeOperationsHandler(db))
	protected.Delete("/empOps/:id", employee.DeleteEmployeeOperationHandler(db))

	// Shifts
	protected.Get("/attendance/shift", attendance.ListShiftsHandler(db))
	protected.Get("/attendance/shift/:id", attendance.GetShiftHandler(db))
	protected.Post("/attendance/shift", attendance.CreateShiftHandler(db))
	protected.Put("/attendance/shift/:id", attendance.UpdateShiftHandler(db))
	protected.Delete("/attendance/shift/:id", attendance.DeleteShiftHandler(db))

	// Shift assignments
	protected.Get("/attendance/empShift/by-office", attendance.ListEmployeeShiftsByOfficeHandler(db))
	protected.Get("/attendance/empShift/by-employee/:employeeId", attendance.ListEmployeeShiftsByEmployeeHandler(db))
	protected.Post("/attendance/empShift", attendance.AssignEmployeeShiftHandler(db))
	protected.Put("/attendance/empShift/:employeeId/:shiftId", attendance.UpdateEmployeeShiftHandler(db))
	protected.Delete("/attendance/empShift/:employeeId/:shiftId", attendance.DeleteEmployeeShiftHandler(db))

	// Assets and asset-operation mappings
	protected.Get("/asset/asset", asset.ListAssetsHandler(db))
	protected.Get("/asset/asset/:id", asset.GetAssetHandler(db))
	protected.Post("/asset/asset", asset.CreateAssetHandler(db))
	protected.Put("/asset/asset/:id", asset.UpdateAssetHandler(db))
	protected.Delete("/asset/asset/:id", asset.DeleteAssetHandler(db))
	protected.Get("/asset/assetOps/operations-by-asset", asset.ListOperationsByAssetHandler(db))
	protected.Post("/asset/assetOps/map", asset.MapAssetOperationsHandler(db))
	protected.Delete("/asset/assetOps/:id", asset.DeleteAssetOperationHandler(db))

	// Inventory masters (approval gated)
	protected.Get("/inventory/category", inventory.ListCategoriesHandler(db))
	protected.Get("/inventory/category/pendingApproval", inventory.PendingCategoriesHandler(db))
	protected.Get("/inventory/category/:id", inventory.GetCategoryHandler(db))
	protected.Post("/inventory/category", inventory.CreateCategoryHandler(db))
	protected.Put("/inventory/category/:id", inventory.UpdateCategoryHandler(db))
	protected.Put("/inventory/category/:id/approve", inventory.ApproveCategoryHandler(db))
	protected.Delete("/inventory/category/:id", inventory.DeleteCategoryHandler(db))

	protected.Get("/inventory/item", inventory.ListItemsHandler(db))
	protected.Get("/inventory/item/pendingApproval", inventory.PendingItemsHandler(db))
	protected.Get("/inventory/item/:id", inventory.GetItemHandler(db))
	protected.Post("/inventory/item", inventory.CreateItemHandler(db))
	protected.Put("/inventory/item/:id", inventory.UpdateItemHandler(db))
	protected.Put("/inventory/item/:id/approve", inventory.ApproveItemHandler(db))
	protected.Delete("/inventory/item/:id", inventory.DeleteItemHandler(db))

	protected.Get("/inventory/vendor", inventory.ListVendorsHandler(db))
	protected.Get("/inventory/vendor/pendingApproval", inventory.PendingVendorsHandler(db))
	protected.Get("/inventory/vendor/:id", inventory.GetVendorHandler(db))
	protected.Post("/inventory/vendor", inventory.CreateVendorHandler(db))
	protected.Put("/inventory/vendor/:id", inventory.UpdateVendorHandler(db))
	protected.Put("/inventory/vendor/:id/approve", inventory.ApproveVendorHandler(db))
	protected.Delete("/inventory/vendor/:id", inventory.DeleteVendorHandler(db))

	// Rate cards
	protected.Get("/inventory/rateCard", inventory.ListRateCardsHandler(db))
	protected.Get("/inventory/rateCard/pendingApproval", inventory.PendingRateCardsHandler(db))
	protected.Post("/inventory/rateCard", inventory.CreateRateCardHandler(db))
	protected.Put("/inventory/rateCard/:id", inventory.UpdateRateCardHandler(db))
	protected.Put("/inventory/rateCard/:id/approve", inventory.ApproveRateCardHandler(db))
	protected.Delete("/inventory/rateCard/:id", inventory.DeleteRateCardHandler(db))

	// Stock
	protected.Get("/stock/office", inventory.ListStockByOfficeHandler(db))

	// Purchase orders
	protected.Get("/inventory/po/GetGroupedPurchaseOrderDetails", inventory.GetGroupedPurchaseOrderDetailsHandler(db))
	protected.Post("/inventory/po/CreatePurchaseOrders", inventory.CreatePurchaseOrdersHandler(db, logger))
	protected.Post("/inventory/po/receipt", inventory.CreateGoodsReceiptHandler(db))
	protected.Delete("/inventory/po/:id/office/:officeId", inventory.DeletePurchaseOrderHandler(db))

	// Work orders
	protected.Post("/work_order/master", workorder.CreateWorkOrderHandler(db, logger))
	protected.Put("/work_order/master/:id", workorder.UpdateWorkOrderHandler(db, logger))
	protected.Delete("/work_order/master/:id/office/:officeId", workorder.DeleteWorkOrderHandler(db))
	protected.Get("/work_order/master/office/:officeId", workorder.ListWorkOrdersByOfficeHandler(db))

	protected.Get("/work_order/party/pendingApproval", workorder.PendingPartiesHandler(db))
	protected.Get("/work_order/party/office/:officeId", workorder.ListPartiesByOfficeHandler(db))
	protected.Get("/work_order/party/:id", workorder.GetPartyHandler(db))
	protected.Post("/work_order/party", workorder.CreatePartyHandler(db))
	protected.Put("/work_order/party/:id", workorder.UpdatePartyHandler(db))
	protected.Put("/work_order/party/:id/approve", workorder.ApprovePartyHandler(db))
	protected.Delete("/work_order/party/:id", workorder.DeletePartyHandler(db))

	protected.Get("/work_order/product/office/:officeId", workorder.ListProductsByOfficeHandler(db))
	protected.Get("/work_order/product/:id", workorder.GetProductHandler(db))
	protected.Post("/work_order/product", workorder.CreateProductHandler(db))
	protected.Put("/work_order/product/:id", workorder.UpdateProductHandler(db))
	protected.Delete("/work_order/product/:id", workorder.DeleteProductHandler(db))

	// Planning
	protected.Get("/planning/dps", planning.ListPlanningSheetsHandler(db))
	protected.Post("/planning/dps", planning.CreatePlanningSheetHandler(db))
	protected.Put("/planning/dps/:id", planning.UpdatePlanningSheetHandler(db))
	protected.Delete("/planning/dps/:id", planning.DeletePlanningSheetHandler(db))

	protected.Get("/job_card", planning.ListJobCardsHandler(db))
	protected.Get("/job_card/:id", planning.GetJobCardHandler(db))
	protected.Post("/job_card", planning.CreateJobCardHandler(db))
	protected.Put("/job_card/:id", planning.UpdateJobCardHandler(db))
	protected.Delete("/job_card/:id", planning.DeleteJobCardHandler(db))

	// File uploads
	protected.Post("/upload", upload.UploadFileHandler(cfg))

	logger.Info().Str("port", cfg.HTTPPort).Msg("server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
