package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CacheConfig represents cache control configuration
type CacheConfig struct {
	MaxAge               int
	Private              bool
	NoStore              bool
	MustRevalidate       bool
	NoCache              bool
	StaleWhileRevalidate int
	StaleIfError         int
	Vary                 []string
}

// PageCacheConfig lets shared caches hold rendered directory pages briefly.
func PageCacheConfig() CacheConfig {
	return CacheConfig{
		MaxAge:               300,
		StaleWhileRevalidate: 600,
		StaleIfError:         86400,
		Vary:                 []string{"Accept-Encoding"},
	}
}

// NoStoreConfig is for responses that must never be cached.
func NoStoreConfig() CacheConfig {
	return CacheConfig{NoStore: true}
}

// Directives renders the Cache-Control value.
func (config CacheConfig) Directives() string {
	if config.NoStore {
		return "no-store"
	}

	directives := make([]string, 0, 6)
	if config.Private {
		directives = append(directives, "private")
	} else {
		directives = append(directives, "public")
	}
	if config.MaxAge > 0 {
		directives = append(directives, "max-age="+strconv.Itoa(config.MaxAge))
	}
	if config.NoCache {
		directives = append(directives, "no-cache")
	}
	if config.MustRevalidate {
		directives = append(directives, "must-revalidate")
	}
	if config.StaleWhileRevalidate > 0 {
		directives = append(directives, "stale-while-revalidate="+strconv.Itoa(config.StaleWhileRevalidate))
	}
	if config.StaleIfError > 0 {
		directives = append(directives, "stale-if-error="+strconv.Itoa(config.StaleIfError))
	}
	return strings.Join(directives, ", ")
}

// Cache adds cache control headers to GET and HEAD responses; other methods
// get no-store.
func Cache(config CacheConfig) gin.HandlerFunc {
	value := config.Directives()
	vary := strings.Join(config.Vary, ", ")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		c.Header("Cache-Control", value)
		if vary != "" {
			c.Header("Vary", vary)
		}
		c.Next()
	}
}
