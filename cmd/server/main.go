package main

import (
	"log"
	"net/http"
	"os"

	"go-linkedin-job-source/internal/app"
	"go-linkedin-job-source/internal/config"
	"go-linkedin-job-source/internal/protocol"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := newRouter()

	log.Printf("Server listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newRouter() *gin.Engine {
	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "LinkedIn job source is running!",
			"status":  "healthy",
		})
	})

	r.GET("/spec", func(c *gin.Context) {
		c.JSON(http.StatusOK, protocol.Message{Type: protocol.TypeSpec, Spec: ptr(protocol.ConnectorSpec())})
	})

	r.GET("/discover", func(c *gin.Context) {
		c.JSON(http.StatusOK, protocol.Message{Type: protocol.TypeCatalog, Catalog: ptr(protocol.DiscoverCatalog())})
	})

	r.POST("/check", func(c *gin.Context) {
		c.JSON(http.StatusOK, protocol.NewConnectionStatus(true, ""))
	})

	// POST /read takes the connector config as the body and streams NDJSON
	// messages until the run ends.
	r.POST("/read", func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cfg, err := config.LoadBytes(body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Type", "application/x-ndjson")
		c.Status(http.StatusOK)
		if _, err := app.Read(c.Request.Context(), cfg, protocol.NewJSONWriter(c.Writer)); err != nil {
			log.Printf("❌ read request failed: %v", err)
		}
	})

	return r
}

func ptr[T any](v T) *T { return &v }
