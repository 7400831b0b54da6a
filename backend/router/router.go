package router

import (
	"net/http"

	"quora-backend/backend/app/controllers"
	"quora-backend/backend/app/middleware"
)

// NewRouter builds the route table. Sign-up and sign-in are the only
// endpoints that skip bearer-token extraction.
func NewRouter(authCtrl *controllers.AuthController, commonCtrl *controllers.CommonController, adminCtrl *controllers.AdminController, questionCtrl *controllers.QuestionController, answerCtrl *controllers.AnswerController) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /user/signup", authCtrl.SignUp)
	mux.HandleFunc("POST /user/signin", authCtrl.SignIn)

	// bearer token required
	protected := func(h http.HandlerFunc) http.Handler { return middleware.RequireToken(h) }

	mux.Handle("POST /user/signout", protected(authCtrl.SignOut))
	mux.Handle("GET /userprofile/{userId}", protected(commonCtrl.UserProfile))
	mux.Handle("DELETE /admin/user/{userId}", protected(adminCtrl.DeleteUser))

	mux.Handle("POST /question/create", protected(questionCtrl.Create))
	mux.Handle("GET /question/all", protected(questionCtrl.GetAll))
	mux.Handle("GET /question/all/{userId}", protected(questionCtrl.GetAllByUser))
	mux.Handle("PUT /question/edit/{questionId}", protected(questionCtrl.Edit))
	mux.Handle("DELETE /question/delete/{questionId}", protected(questionCtrl.Delete))

	mux.Handle("POST /question/{questionId}/answer/create", protected(answerCtrl.Create))
	mux.Handle("PUT /answer/edit/{answerId}", protected(answerCtrl.Edit))
	mux.Handle("DELETE /answer/delete/{answerId}", protected(answerCtrl.Delete))
	mux.Handle("GET /answer/all/{questionId}", protected(answerCtrl.GetAllForQuestion))

	return mux
}
