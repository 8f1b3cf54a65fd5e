package router

import (
	"net/http"
	"taskboard/app/controllers"
	"taskboard/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, taskCtrl *controllers.TaskController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /ping", httpCtrl.Ping)
	mux.HandleFunc("POST /signup", authCtrl.Signup)
	mux.HandleFunc("POST /login", authCtrl.Login)
	mux.HandleFunc("POST /admin/login", authCtrl.AdminLogin)

	// authenticated, owner-scoped
	mux.Handle("GET /tasks", mw.RequireAuth(http.HandlerFunc(taskCtrl.ListMine)))
	mux.Handle("GET /tasks/stats", mw.RequireAuth(http.HandlerFunc(taskCtrl.Stats)))
	mux.Handle("POST /tasks", mw.RequireAuth(http.HandlerFunc(taskCtrl.Create)))

	// admin only
	mux.Handle("GET /tasks/all", mw.RequireAdmin(http.HandlerFunc(taskCtrl.ListAll)))
	mux.Handle("DELETE /tasks/{id}", mw.RequireAdmin(http.HandlerFunc(taskCtrl.Delete)))

	return mux
}
