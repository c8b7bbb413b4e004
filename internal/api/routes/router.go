package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Endogen/antique-catalogue-sub001/docs"
	"github.com/Endogen/antique-catalogue-sub001/internal/api/handlers"
	"github.com/Endogen/antique-catalogue-sub001/internal/api/middleware"
	"github.com/Endogen/antique-catalogue-sub001/internal/application"
	"github.com/Endogen/antique-catalogue-sub001/internal/config/db"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)
	h := handlers.New(services, r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
		auth.POST("/verify", h.Auth.Verify)
		auth.POST("/verify/resend", h.Auth.ResendVerification)
		auth.POST("/forgot", h.Auth.Forgot)
		auth.POST("/reset", h.Auth.Reset)
		auth.DELETE("/me", middleware.JWTAuthMiddleware(), h.Auth.DeleteMe)
	}

	// Activity feed websocket; the token travels as a query parameter.
	r.GET("/ws/activity", h.Activity.Feed)

	// Anonymous or authenticated: owners see their own unpublished content.
	public := r.Group("/")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/search", h.Item.Search)
		public.GET("/profiles/:handle", h.Profile.Public)
		public.GET("/images/:imageId/:variant", h.Image.Serve)
		public.GET("/items/:itemId/images", h.Image.List)

		pubCollections := public.Group("/public/collections")
		{
			pubCollections.GET("", h.Collection.ListPublic)
			pubCollections.GET("/featured", h.Collection.Featured)
			pubCollections.GET("/featured/items", h.Collection.FeaturedItems)
			pubCollections.GET("/:id", h.Collection.GetPublic)
			pubCollections.GET("/:id/items", h.Item.ListPublic)
			pubCollections.GET("/:id/items/:itemId", h.Item.GetPublic)
		}
	}

	user := r.Group("/")
	user.Use(middleware.JWTAuthMiddleware())
	{
		me := user.Group("/me")
		{
			me.GET("", h.Profile.Me)
			me.PATCH("", h.Profile.Update)
			me.GET("/starred/collections", h.Star.StarredCollections)
			me.GET("/starred/items", h.Star.StarredItems)
		}

		user.GET("/activity", h.Activity.List)

		collections := user.Group("/collections")
		{
			collections.GET("", h.Collection.List)
			collections.POST("", h.Collection.Create)
			collections.GET("/:id", h.Collection.Get)
			collections.PATCH("/:id", h.Collection.Update)
			collections.DELETE("/:id", h.Collection.Delete)

			collections.GET("/:id/fields", h.Field.List)
			collections.POST("/:id/fields", h.Field.Create)
			collections.PATCH("/:id/fields/:fieldId", h.Field.Update)
			collections.DELETE("/:id/fields/:fieldId", h.Field.Delete)
			collections.PUT("/:id/fields/reorder", h.Field.Reorder)

			collections.GET("/:id/items", h.Item.List)
			collections.POST("/:id/items", h.Item.Create)
			collections.GET("/:id/items/:itemId", h.Item.Get)
			collections.PATCH("/:id/items/:itemId", h.Item.Update)
			collections.DELETE("/:id/items/:itemId", h.Item.Delete)

			collections.GET("/:id/star", h.Star.CollectionStatus)
			collections.PUT("/:id/star", h.Star.StarCollection)
			collections.DELETE("/:id/star", h.Star.UnstarCollection)
			collections.GET("/:id/items/:itemId/star", h.Star.ItemStatus)
			collections.PUT("/:id/items/:itemId/star", h.Star.StarItem)
			collections.DELETE("/:id/items/:itemId/star", h.Star.UnstarItem)
		}

		items := user.Group("/items")
		{
			items.POST("/:itemId/images", h.Image.Upload)
			items.PATCH("/:itemId/images/:imageId", h.Image.Reorder)
			items.DELETE("/:itemId/images/:imageId", h.Image.Delete)
		}

		templates := user.Group("/templates")
		{
			templates.GET("", h.Template.List)
			templates.POST("", h.Template.Create)
			templates.POST("/import", h.Template.Import)
			templates.GET("/:id", h.Template.Get)
			templates.PATCH("/:id", h.Template.Update)
			templates.DELETE("/:id", h.Template.Delete)
			templates.POST("/:id/copy", h.Template.Copy)
			templates.GET("/:id/export", h.Template.Export)

			templates.POST("/:id/fields", h.Template.CreateField)
			templates.PATCH("/:id/fields/:fieldId", h.Template.UpdateField)
			templates.DELETE("/:id/fields/:fieldId", h.Template.DeleteField)
			templates.PUT("/:id/fields/reorder", h.Template.ReorderFields)
		}
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", h.Admin.Login)

		protected := admin.Group("/")
		protected.Use(middleware.AdminAuthMiddleware())
		{
			protected.GET("/stats", h.Admin.Stats)
			protected.GET("/users", h.Admin.ListUsers)
			protected.PATCH("/users/:id/lock", h.Admin.SetUserLock)
			protected.DELETE("/users/:id", h.Admin.DeleteUser)
			protected.GET("/collections", h.Admin.ListCollections)
			protected.DELETE("/collections/:id", h.Admin.DeleteCollection)
			protected.GET("/items", h.Admin.ListItems)
			protected.DELETE("/items/:id", h.Admin.DeleteItem)
			protected.POST("/featured", h.Admin.SetFeaturedCollection)
			protected.GET("/featured/items", h.Admin.ListFeaturedItems)
			protected.POST("/featured/items", h.Admin.SetFeaturedItems)
		}
	}
}
