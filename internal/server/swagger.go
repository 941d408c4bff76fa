package server

//go:generate swag init -d ../../ -g cmd/app/main.go -o ../../docs

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/p0sidonz/shacdn-gym-sub001/docs"
)

// SetupSwagger registers the Swagger UI and the generated doc.json.
func SetupSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
