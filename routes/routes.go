package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRoutes wires store -> services -> controllers and mounts the API.
// db may be nil; everything downstream treats that as an unavailable store.
func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *configs.Config) {
	store := repository.NewStore(db)
	content := services.NewContentService(store)
	reservations := services.NewReservationService(store)

	// Controllers
	sysCtrl := controllers.NewSystemController(store, cfg, db != nil)
	contentCtrl := controllers.NewContentController(content)
	resCtrl := controllers.NewReservationController(reservations)

	r.GET("/", sysCtrl.Root)
	r.GET("/test", sysCtrl.Test)

	api := r.Group("/api")
	{
		api.GET("/info", contentCtrl.Info)
		api.GET("/menu", contentCtrl.Menu)
		api.GET("/testimonials", contentCtrl.Testimonials)
		api.POST("/reservations", resCtrl.Create)
	}
}
