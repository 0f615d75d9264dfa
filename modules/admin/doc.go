// Package admin mounts the administrator REST surface over the plan
// lifecycle and entitlement services. It owns the HTTP envelope
// ({success, data} / {success:false, message}) and the error-kind to
// status-code mapping; the services underneath never shape HTTP responses.
//
//	r := chi.NewRouter()
//	r.Mount("/", admin.Router(admin.RouterOptions{
//		Plans:  planSvc,
//		Stores: entitlementSvc,
//		Logger: log,
//	}))
package admin
