package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"arayWorlds/api"
	"arayWorlds/envvars"
	"arayWorlds/services/identity"
	"arayWorlds/validator"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginmiddleware "github.com/oapi-codegen/gin-middleware"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "aray",
	Short:         "Progress, candies and leaderboards for Los Mundos de Aray",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(leaderboardCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.With("error", err.Error()).Error("command failed")
		os.Exit(1)
	}
}

// validationErrorHandler turns request validation failures into the API's
// error body with a status that matches the failure.
func validationErrorHandler(c *gin.Context, message string, statusCode int) {
	switch {
	case strings.Contains(message, "security requirements failed"):
		statusCode = http.StatusUnauthorized
	case strings.Contains(message, "no matching operation was found"):
		statusCode = http.StatusNotFound
	case strings.Contains(message, "method not allowed"):
		statusCode = http.StatusMethodNotAllowed
	}
	c.AbortWithStatusJSON(statusCode, api.Error{Message: message})
}

func NewRouter(server Server, verifier identity.Verifier) (*gin.Engine, error) {
	// Load OpenAPI spec file
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	// Clear out the servers array in the swagger spec, that skips validating
	// that server names match. We don't know how this thing will be run.
	swagger.Servers = nil

	r := gin.Default()
	// handlers take the gin context; it has to follow the request's lifetime
	r.ContextWithFallback = true
	r.Use(cors.Default())

	r.GET("/openapi", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/x-yaml", api.Spec())
	})

	r.Use(ginmiddleware.OapiRequestValidatorWithOptions(swagger, &ginmiddleware.Options{
		ErrorHandler: validationErrorHandler,
		Options: openapi3filter.Options{
			AuthenticationFunc: validator.NewAuthenticator(verifier),
		},
	}))
	h := api.NewStrictHandler(server, []api.StrictMiddlewareFunc{errorMiddleware})
	api.RegisterHandlersWithOptions(r, h, api.GinServerOptions{
		ErrorHandler: func(c *gin.Context, err error, statusCode int) {
			c.AbortWithStatusJSON(statusCode, api.Error{Message: err.Error()})
		},
	})
	return r, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	env := envvars.GetEnv()
	if env.FirebaseProjectID == "" {
		return fmt.Errorf("%s required to verify id tokens", envvars.FirebaseProjectID)
	}
	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}
	if envvars.IsDev(env) {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, env)
	if err != nil {
		return err
	}
	defer app.Close()
	app.StartMirror(ctx)

	verifier, err := app.Verifier(ctx)
	if err != nil {
		return err
	}
	server := NewServer(app.Ledger, app.Nickname, app.Users, app.Ranking, app.AuthService(), app.Catalog, app.Bus)
	r, err := NewRouter(server, verifier)
	if err != nil {
		return err
	}
	s := &http.Server{
		Handler: r,
		Addr:    "0.0.0.0:" + env.Port,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		// open event streams would otherwise hold the shutdown
		app.Bus.Close()
		if err := s.Shutdown(shutdownCtx); err != nil {
			slog.With("error", err.Error()).Error("failed to shut down")
		}
	}()

	slog.Info("Starting HTTP server", "port", env.Port, "store", env.StoreBackend, "appId", env.AppID)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
