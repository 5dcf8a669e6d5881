package main

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminStats is the live counterpart of the support page's placeholder
// visitor counters.
type AdminStats struct {
	TotalVisits    int64 `json:"total_visits"`
	UniqueVisitors int64 `json:"unique_visitors"`
	VisitorsToday  int64 `json:"visitors_today"`
}

func randomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(bytes)
}

// setupAdminRoutes registers the token-gated stats endpoint. With no
// ADMIN_TOKEN configured a fresh token is generated per process and
// printed only in debug mode.
func setupAdminRoutes(r *gin.Engine, cfg Config, visitors *VisitorLog) {
	token := cfg.AdminToken
	if token == "" {
		token = randomToken()
		if gin.Mode() == gin.DebugMode {
			log.Printf("Admin token (dev only): %s", token)
		}
	}

	admin := r.Group("/admin", requireAdminToken(token))

	admin.GET("/stats", func(c *gin.Context) {
		stats, err := visitors.Stats()
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}

func requireAdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
