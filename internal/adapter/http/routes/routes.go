package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "paygo_market/docs" // This will be auto-generated
	"paygo_market/internal/adapter/http/handlers"
	repository2 "paygo_market/internal/adapter/persistence/repository"
	"paygo_market/internal/infrastructure/database"
	"paygo_market/internal/infrastructure/escrow"
	"paygo_market/internal/infrastructure/notify"
	"paygo_market/internal/infrastructure/policy"
	"paygo_market/internal/usecase"
	"paygo_market/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)
	ledgerRepo := repository2.NewLedgerDynamoRepository(ddb)

	var escrowClient interfaces.IEscrowClient
	vault, err := escrow.NewVaultClient(os.Getenv("ESCROW_RPC_URL"))
	if err != nil {
		log.Printf("Escrow vault client not configured: %v", err)
	} else {
		escrowClient = vault
	}

	notifier := notify.NewWebhookNotifier(os.Getenv("NOTIFY_WEBHOOK_URL"))
	authorizer := policy.NewHTTPAuthorizer(os.Getenv("POLICY_URL"))

	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, authorizer)
	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, serviceRepo, ledgerRepo, authorizer)
	settlementUseCase := usecase.NewSettlementUseCase(sessionRepo, ledgerRepo, notifier, lowBalanceThreshold())
	balanceUseCase := usecase.NewBalanceUseCase(ledgerRepo, escrowClient, defaultToken(), escrowQueryTimeout())

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase, settlementUseCase)
	walletHandler := handlers.NewWalletHandler(balanceUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketRoutes(v1, serviceHandler, sessionHandler, walletHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func lowBalanceThreshold() decimal.Decimal {
	raw := os.Getenv("LOW_BALANCE_THRESHOLD")
	if raw == "" {
		return decimal.NewFromInt(10)
	}
	threshold, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Invalid LOW_BALANCE_THRESHOLD %q, using default: %v", raw, err)
		return decimal.NewFromInt(10)
	}
	return threshold
}

func defaultToken() string {
	if token := os.Getenv("DEFAULT_TOKEN"); token != "" {
		return token
	}
	return "NGNX"
}

func escrowQueryTimeout() time.Duration {
	raw := os.Getenv("ESCROW_RPC_TIMEOUT_SECONDS")
	if raw == "" {
		return 5 * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("Invalid ESCROW_RPC_TIMEOUT_SECONDS %q, using default", raw)
		return 5 * time.Second
	}
	return time.Duration(seconds) * time.Second
}
