package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	optionalAuthMiddleware := standardMiddleware.Append(app.attachIdentity)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/sign_in_google", standardMiddleware.ThenFunc(app.userHandler.SignInGoogle))
	mux.Post("/user/sign_out", standardMiddleware.ThenFunc(app.userHandler.SignOut))
	mux.Get("/user/session", standardMiddleware.ThenFunc(app.userHandler.Session))

	// Jobs
	mux.Get("/jobs", standardMiddleware.ThenFunc(app.jobHandler.GetJobs))
	mux.Post("/jobs", authMiddleware.ThenFunc(app.jobHandler.CreateJob))
	mux.Get("/jobs/:id", optionalAuthMiddleware.ThenFunc(app.jobHandler.GetJobByID))
	mux.Del("/jobs/:id", authMiddleware.ThenFunc(app.jobHandler.DeleteJob))

	// Homes
	mux.Get("/homes", standardMiddleware.ThenFunc(app.homeHandler.GetHomes))
	mux.Post("/homes", authMiddleware.ThenFunc(app.homeHandler.CreateHome))
	mux.Get("/homes/:id", optionalAuthMiddleware.ThenFunc(app.homeHandler.GetHomeByID))
	mux.Del("/homes/:id", authMiddleware.ThenFunc(app.homeHandler.DeleteHome))

	// Translations
	mux.Get("/i18n/:lang", standardMiddleware.ThenFunc(app.i18nHandler.GetCatalog))

	// Live listing feed
	mux.Get("/ws/listings", http.HandlerFunc(app.ListingFeedHandler))

	return standardMiddleware.Then(mux)
}
