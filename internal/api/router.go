package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "smsbridge/docs"
)

var smsRejectedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

type RouterOptions struct {
	DocsEnabled bool
}

func NewRouter(handler *Handler, logger *zap.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(logger))

	r.GET("/", handler.Index)
	r.POST("/sms", handler.ReceiveSMS)
	r.Match(smsRejectedMethods, "/sms", handler.MethodNotAllowed)
	// Method tokens outside the list above have no tree in gin and land here.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == "/sms" {
			handler.MethodNotAllowed(c)
			return
		}
		c.String(http.StatusNotFound, "Not found")
	})

	if opts.DocsEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}
