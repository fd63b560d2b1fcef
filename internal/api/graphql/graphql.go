package graphql

import (
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-partner-ledger/internal/api/middleware"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/executor"
)

// ComplexityLimit caps the weighted size of one query
const ComplexityLimit = 5000

// Handler defines the interface for GraphQL API handlers
type Handler interface {
	// HandleGraphQL handles GraphQL requests
	HandleGraphQL(c *gin.Context)

	// HandlePlayground serves the GraphQL Playground
	HandlePlayground(c *gin.Context)
}

type gqlHandler struct {
	server *handler.Server
}

// NewHandler creates a read-only GraphQL handler over the shared executor
func NewHandler(exec executor.Executor) Handler {
	srv := handler.New(NewExecutableSchema(NewResolver(exec)))
	srv.AddTransport(transport.POST{})
	srv.Use(extension.FixedComplexityLimit(ComplexityLimit))
	srv.SetErrorPresenter(ErrorPresenter)
	srv.SetRecoverFunc(RecoverFunc)

	return &gqlHandler{server: srv}
}

// HandleGraphQL runs a query as the caller authenticated by the route's auth middleware
func (h *gqlHandler) HandleGraphQL(c *gin.Context) {
	ctx := withGinContext(c.Request.Context(), c)
	h.server.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
}

// HandlePlayground serves the GraphQL Playground interface
func (h *gqlHandler) HandlePlayground(c *gin.Context) {
	playground.Handler("Partner Ledger GraphQL Playground", "/api/v1/graphql").ServeHTTP(c.Writer, c.Request)
}

// SetupRoutes configures GraphQL API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, limiter ...gin.HandlerFunc) {
	// Queries share the REST auth and rate limit
	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	v1.Use(limiter...)
	v1.POST("/graphql", handler.HandleGraphQL)

	// GraphQL Playground (GET for interactive IDE)
	router.GET("/graphql", handler.HandlePlayground)
}
