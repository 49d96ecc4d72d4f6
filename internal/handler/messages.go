package handler

import (
	"net/http"

	"github.com/johndosdos/chirp/internal/model"
)

func ServeCreateMessage(svc SocialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg model.Message
		if err := decodeBody(r, &msg); err != nil {
			badRequest(w, r, err)
			return
		}

		created, err := svc.CreateMessage(r.Context(), msg)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, created)
	}
}

func ServeListMessages(svc SocialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := svc.GetAllMessages(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, msgs)
	}
}

// ServeGetMessage answers 200 with an empty body when the message is absent.
func ServeGetMessage(svc SocialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			badRequest(w, r, err)
			return
		}

		msg, found, err := svc.GetMessage(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !found {
			w.WriteHeader(http.StatusOK)
			return
		}

		writeJSON(w, r, http.StatusOK, msg)
	}
}

func ServeListAccountMessages(svc SocialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			badRequest(w, r, err)
			return
		}

		msgs, err := svc.GetMessagesByAccount(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, msgs)
	}
}

// ServeUpdateMessage takes the id from the path; only message_text is read
// from the body.
func ServeUpdateMessage(svc SocialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			badRequest(w, r, err)
			return
		}

		var body model.Message
		if err := decodeBody(r, &body); err != nil {
			badRequest(w, r, err)
			return
		}

		updated, err := svc.UpdateMessage(r.Context(), model.Message{ID: id, Text: body.Text})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

// ServeDeleteMessage answers 200 with the deleted message, or an empty body
// when nothing was stored under the id.
func ServeDeleteMessage(svc SocialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			badRequest(w, r, err)
			return
		}

		msg, found, err := svc.DeleteMessage(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !found {
			w.WriteHeader(http.StatusOK)
			return
		}

		writeJSON(w, r, http.StatusOK, msg)
	}
}
