package api

import (
	"net/http"

	importsHandler "renewal-server/internal/imports/handler"
	interactionsHandler "renewal-server/internal/interactions/handler"
	policiesHandler "renewal-server/internal/policies/handler"
	renewalHandler "renewal-server/internal/renewal/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	policiesHandler     policiesHandler.Handler
	interactionsHandler interactionsHandler.Handler
	renewalHandler      renewalHandler.Handler
	importsHandler      importsHandler.Handler
}

func New(
	router *gin.RouterGroup,
	policiesHandler policiesHandler.Handler,
	interactionsHandler interactionsHandler.Handler,
	renewalHandler renewalHandler.Handler,
	importsHandler importsHandler.Handler,
) API {
	return API{
		router:              router,
		policiesHandler:     policiesHandler,
		interactionsHandler: interactionsHandler,
		renewalHandler:      renewalHandler,
		importsHandler:      importsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		policiesGroup := apiGroup.Group("/policies")
		policiesGroup.GET("", a.policiesHandler.HandleListPolicies)
		policiesGroup.POST("", a.policiesHandler.HandleCreatePolicy)
		policiesGroup.GET("/:policy_id", a.policiesHandler.HandleGetPolicy)
		policiesGroup.PATCH("/:policy_id", a.policiesHandler.HandleUpdatePolicy)
		policiesGroup.GET("/:policy_id/interactions", a.interactionsHandler.HandleListInteractions)
		policiesGroup.POST("/:policy_id/interactions", a.interactionsHandler.HandleLogInteraction)
		policiesGroup.POST("/:policy_id/renew", a.renewalHandler.HandleRenewPolicy)

		importsGroup := apiGroup.Group("/imports")
		importsGroup.POST("/preview", a.importsHandler.HandlePreviewImport)
		importsGroup.POST("/commit", a.importsHandler.HandleCommitImport)

		apiGroup.GET("/stats", a.policiesHandler.HandleGetStats)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
