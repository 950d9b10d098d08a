package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// OriginMatcher matches Origin headers against patterns where '*' stands for any run of
// characters other than '/', e.g. "http://localhost:*" or "https://*.example.com".
type OriginMatcher struct {
	anyOrigin bool
	patterns  []*regexp.Regexp
}

// NewOriginMatcher compiles patterns. A lone "*" allows every origin.
func NewOriginMatcher(patterns []string) *OriginMatcher {
	m := &OriginMatcher{}
	for _, p := range patterns {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		switch p {
		case "":
			continue
		case "*":
			m.anyOrigin = true
			continue
		}
		expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(p), `\*`, `[^/]*`) + "$"
		m.patterns = append(m.patterns, regexp.MustCompile(expr))
	}
	return m
}

// Allowed reports whether origin matches any configured pattern.
func (m *OriginMatcher) Allowed(origin string) bool {
	if origin == "" {
		return false
	}
	if m.anyOrigin {
		return true
	}
	for _, re := range m.patterns {
		if re.MatchString(origin) {
			return true
		}
	}
	return false
}

// CORS allows GET and POST with credentials from the configured origin patterns.
// Requested headers are reflected back on preflight.
func CORS(allowedOrigins []string) fiber.Handler {
	matcher := NewOriginMatcher(allowedOrigins)
	return cors.New(cors.Config{
		AllowOriginsFunc: matcher.Allowed,
		AllowMethods:     strings.Join([]string{fiber.MethodGet, fiber.MethodPost}, ","),
		AllowCredentials: true,
		MaxAge:           300,
	})
}
