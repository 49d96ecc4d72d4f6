package handler

import (
	"log/slog"
	"net/http"

	"github.com/johndosdos/chirp/internal/model"
)

// ServeRegister handles account creation.
func ServeRegister(svc SocialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var acct model.Account
		if err := decodeBody(r, &acct); err != nil {
			badRequest(w, r, err)
			return
		}

		created, err := svc.RegisterAccount(r.Context(), acct)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, created)
	}
}

// ServeLogin checks credentials and answers 401 when they do not match.
func ServeLogin(svc SocialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var acct model.Account
		if err := decodeBody(r, &acct); err != nil {
			badRequest(w, r, err)
			return
		}

		matched, ok, err := svc.Login(r.Context(), acct)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		writeJSON(w, r, http.StatusOK, matched)

		slog.InfoContext(r.Context(), "user logged in",
			slog.String("username", matched.Username))
	}
}
