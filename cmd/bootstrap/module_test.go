//go:build unit

package bootstrap_test

import (
	"log/slog"
	"testing"

	"postify/cmd/bootstrap"
	"postify/internal/handler/middleware"
	"postify/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

// TestModuleGraph resolves the full dependency graph with the same extra
// providers main adds, without executing any constructor. A provider whose
// arguments nobody supplies fails here instead of at process start.
func TestModuleGraph(t *testing.T) {
	err := fx.ValidateApp(
		bootstrap.Module,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				return middleware.NewLogger(cfg.Log).GetSlogLogger()
			},
			func() *gin.Engine {
				return gin.New()
			},
		),
	)

	assert.NoError(t, err)
}
