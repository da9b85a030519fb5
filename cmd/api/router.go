package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		books := v1.Group("/books")
		{
			books.POST("", c.CatalogHandler.AddBook)
			books.GET("", c.CatalogHandler.ListBooks)
			books.GET("/search", c.CatalogHandler.SearchBooks)
		}

		v1.POST("/borrow", c.BorrowingHandler.BorrowBook)
		v1.POST("/return", c.BorrowingHandler.ReturnBook)

		patrons := v1.Group("/patrons")
		{
			patrons.GET("/:patron_id/status", c.BorrowingHandler.PatronStatus)
			patrons.GET("/:patron_id/books/:book_id/late-fee", c.BorrowingHandler.LateFee)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("/late-fees", c.PaymentHandler.PayLateFees)
			payments.POST("/refunds", c.PaymentHandler.RefundLateFeePayment)
		}
	}

	return router
}
