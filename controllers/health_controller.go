package controllers

import (
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops/response"
)

func envSet(key string) string {
	if os.Getenv(key) != "" {
		return "Set"
	}
	return "Not set"
}

// HealthCheck báo trạng thái service và các biến môi trường bắt buộc
func HealthCheck(c *gin.Context) {
	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	response.Success(c, gin.H{
		"status":      "ok",
		"environment": env,
		"database":    envSet(strings.ToUpper(env) + "_DB_HOST"),
		"redis":       envSet("REDIS_ADDR"),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
