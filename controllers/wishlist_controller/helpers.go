package wishlist_controller

import (
	"github.com/Mhd-Shakir/carlet/catalog"
	"github.com/Mhd-Shakir/carlet/middleware"
	"github.com/Mhd-Shakir/carlet/wishlist"
	"github.com/gin-gonic/gin"
)

var (
	registry *wishlist.Registry
	cat      *catalog.Catalog
)

// Init wires the session store registry and the catalog used to join saved
// ids to listings. Called once at startup (and by tests with fixtures).
func Init(r *wishlist.Registry, c *catalog.Catalog) {
	registry = r
	cat = c
}

// storeFor resolves the calling session's wishlist store.
func storeFor(c *gin.Context) *wishlist.Store {
	return registry.For(middleware.SessionID(c))
}
