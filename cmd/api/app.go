package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/liora/docs"
	"github.com/hugohenrick/liora/internal/adapter/api/controller"
	"github.com/hugohenrick/liora/internal/adapter/api/dto"
	"github.com/hugohenrick/liora/internal/adapter/api/route"
	"github.com/hugohenrick/liora/internal/adapter/repository"
	"github.com/hugohenrick/liora/internal/domain/menu"
	"github.com/hugohenrick/liora/internal/domain/user"
	"github.com/hugohenrick/liora/internal/infrastructure/config"
	"github.com/hugohenrick/liora/internal/infrastructure/database"
	"github.com/hugohenrick/liora/pkg/assistant"
	"github.com/hugohenrick/liora/pkg/auth"
	"github.com/hugohenrick/liora/pkg/logger"
	"github.com/hugohenrick/liora/pkg/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App representa a aplicação e suas dependências
type App struct {
	config *config.Config
	logger logger.Logger
	router *gin.Engine
	db     *database.PostgresDB
	server *http.Server

	// protected autentica o token e restringe aos papéis de usuário e serviço
	protected []gin.HandlerFunc

	recipeController    *controller.RecipeController
	favoriteController  *controller.FavoriteController
	menuController      *controller.MenuController
	shoppingController  *controller.ShoppingController
	profileController   *controller.ProfileController
	assistantController *controller.AssistantController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	// Configurar banco de dados
	db, err := database.NewPostgresDB(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	pool := db.Pool()

	// Criar repositórios
	recipeRepo := repository.NewRecipeRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)
	menuRepo := repository.NewMenuRepository(pool, log)
	completionRepo := repository.NewCompletionRepository(pool)
	shoppingRepo := repository.NewShoppingRepository(pool)
	chatRepo := repository.NewChatRepository(pool)

	// Serviços
	menuService := menu.NewService(menuRepo, completionRepo, recipeRepo)

	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if err != nil {
		db.Close()
		return nil, err
	}

	generator, err := assistant.NewOpenAIGenerator(assistant.GeneratorOptions{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
		Timeout:     cfg.AI.Timeout,
	}, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	assembler := assistant.NewAssembler(profileRepo, favoriteRepo, menuRepo, shoppingRepo, log).
		WithTimeout(cfg.Assistant.ContextTimeout)
	liora := assistant.New(assembler, generator, chatRepo, log, cfg.Assistant.HistoryWindow)

	// Configurar router com modo correto
	gin.SetMode(cfg.HTTP.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	protected := []gin.HandlerFunc{
		auth.JWTAuthMiddleware(jwtService),
		auth.RoleAuthMiddleware(string(user.RoleAuthenticated), string(user.RoleServiceRole)),
	}

	return &App{
		config:              cfg,
		logger:              log,
		router:              router,
		db:                  db,
		protected:           protected,
		recipeController:    controller.NewRecipeController(recipeRepo, log),
		favoriteController:  controller.NewFavoriteController(favoriteRepo, profileRepo, recipeRepo, log),
		menuController:      controller.NewMenuController(menuService, menuRepo, log),
		shoppingController:  controller.NewShoppingController(shoppingRepo, log),
		profileController:   controller.NewProfileController(profileRepo, log),
		assistantController: controller.NewAssistantController(liora, log),
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	basePath := a.config.HTTP.BasePath
	docs.SwaggerInfo.BasePath = basePath

	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", a.health)

	route.RegisterRecipeRoutes(api, a.recipeController, a.protected...)
	route.RegisterFavoriteRoutes(api, a.favoriteController, a.protected...)
	route.RegisterMenuRoutes(api, a.menuController, a.protected...)
	route.RegisterShoppingRoutes(api, a.shoppingController, a.protected...)
	route.RegisterProfileRoutes(api, a.profileController, a.protected...)
	route.RegisterAssistantRoutes(api, a.assistantController, a.protected...)

	// Documentação
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Warn("Banco de dados indisponível", "error", err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}

// Start inicia o servidor HTTP e bloqueia até ctx ser cancelado
func (a *App) Start(ctx context.Context) error {
	a.server = &http.Server{
		Addr:              ":" + a.config.HTTP.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado", "port", a.config.HTTP.Port, "base_path", a.config.HTTP.BasePath)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
