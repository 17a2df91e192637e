// Package form connects record validators to net/http.
//
// Values gathers query, form body and chi route parameters into
// validator.Values; Validate runs a validator.RecordValidator over them and
// returns a ValidationError keyed by field; Middleware does both for every
// request and answers invalid submissions with 422 and a JSON body:
//
//	{"error": {"code": "validation_failed", "message": "Validation failed",
//	           "details": {"email": ["Email is required"]}}}
//
// Usage with chi:
//
//	signup := validator.Combine(map[string]validator.Check{
//		"email": validator.Compose(validator.IsRequired, validator.IsEmail).Field("Email"),
//	})
//
//	log := logger.New(logger.WithContextExtractors(form.RequestIDExtractor()))
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID)
//	r.With(form.Middleware(signup, form.WithLogger(log))).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//		values, _ := form.FromContext(r.Context())
//		// values["email"] is a valid address
//	})
package form
