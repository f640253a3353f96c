package main

import (
	"errors"
	"flag"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
	"github.com/ProfStephanos/school-finance-management-system/app/database"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/accounts"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/dashboard"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/feestructure"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/payables"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/receivables"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/students"
	"github.com/ProfStephanos/school-finance-management-system/app/routes/transactions"
	"github.com/ProfStephanos/school-finance-management-system/app/services"
)

// errorHandler converts unhandled fiber errors into the same JSON envelope
// the route packages use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	log := config.GetLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	defer cfg.DB.Close()

	if err := database.InitializeDatabase(cfg.DB); err != nil {
		log.WithError(err).Fatal("Failed to initialize database schema")
	}

	services.StartScheduler(cfg.DB, cfg.Reminders.LookaheadDays)

	app := fiber.New(fiber.Config{
		AppName:      "School Finance System",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	students.SetupStudentsRoutes(app)
	accounts.SetupAccountsRoutes(app)
	transactions.SetupTransactionsRoutes(app)
	receivables.SetupReceivablesRoutes(app)
	payables.SetupPayablesRoutes(app)
	feestructure.SetupFeeStructureRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	log.Infof("Starting server on %s", cfg.Server.Addr)
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
