package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"parceltrack/cmd"
	httpin "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/generated/servers"
	"parceltrack/internal/jobs"

	_ "parceltrack/docs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const openAPIContract = "api/openapi.yml"

func main() {
	configs := getConfigs()

	validateOpenAPIContract()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateOverdueParcelsQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// validateOpenAPIContract refuses to boot with a broken API contract.
func validateOpenAPIContract() {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(openAPIContract)
	if err != nil {
		log.Fatalf("Error loading OpenAPI contract: %v", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		log.Fatalf("Invalid OpenAPI contract: %v", err)
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}
	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error initializing gorm: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(httpin.Handlers{
		CreateParcel:       app.CreateCreateParcelCommandHandler(),
		ChangeParcelStatus: app.CreateChangeParcelStatusCommandHandler(),
		UpdateParcel:       app.CreateUpdateParcelCommandHandler(),
		DeleteParcel:       app.CreateDeleteParcelCommandHandler(),
		AddParcelProduct:   app.CreateAddParcelProductCommandHandler(),
		RemoveProduct:      app.CreateRemoveParcelProductCommandHandler(),
		RegisterClient:     app.CreateRegisterClientCommandHandler(),
		RegisterRecipient:  app.CreateRegisterRecipientCommandHandler(),
		RegisterCourier:    app.CreateRegisterCourierCommandHandler(),
		RegisterZone:       app.CreateRegisterZoneCommandHandler(),
		RegisterProduct:    app.CreateRegisterProductCommandHandler(),

		GetParcels:            app.CreateGetParcelsQueryHandler(),
		GetParcel:             app.CreateGetParcelQueryHandler(),
		SearchParcels:         app.CreateSearchParcelsQueryHandler(),
		FilterParcels:         app.CreateFilterParcelsQueryHandler(),
		GetParcelsByClient:    app.CreateGetParcelsByClientQueryHandler(),
		GetParcelsByRecipient: app.CreateGetParcelsByRecipientQueryHandler(),
		GetParcelsByCourier:   app.CreateGetParcelsByCourierQueryHandler(),
		GetParcelHistory:      app.CreateGetParcelHistoryQueryHandler(),
		GetParcelProducts:     app.CreateGetParcelProductsQueryHandler(),
		StatsByCourier:        app.CreateStatsByCourierQueryHandler(),
		StatsByZone:           app.CreateStatsByZoneQueryHandler(),
		OverdueParcels:        app.CreateOverdueParcelsQueryHandler(),
	})
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
