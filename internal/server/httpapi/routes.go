package httpapi

func (s *HTTPServer) registerRoutes() {
	api := s.echo.Group("/api")

	// Public routes.
	api.POST("/signup", s.signup)
	api.POST("/login", s.login)
	api.POST("/logout", s.logout)
	api.GET("/users", s.listUsers)

	// Routes behind bearer-token auth. Every item and permission mutation
	// requires a valid token.
	authed := api.Group("", s.requireAuth)
	authed.POST("/item", s.createItem)
	authed.GET("/items", s.listItems)
	authed.PUT("/item/:id", s.updateItem)
	authed.DELETE("/item/:id", s.deleteItem)
	authed.POST("/items/authorize-all", s.authorizeAll)
	authed.POST("/authorizations", s.grantPermission)
	authed.GET("/all-authorizations", s.listPermissions)
	authed.DELETE("/permission/:id", s.deletePermission)
}
