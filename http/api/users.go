package api

import (
	"net/http"

	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/http/resp"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var u hostcfg.User
	if err := h.parser.ParseBody(r.Body, &u); err != nil {
		h.resp.Err(w, r, err, resp.Code(http.StatusBadRequest))
		return
	}

	created, err := h.users.Create(u)
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(http.StatusBadRequest))
		return
	}

	_ = h.resp.Json(w, r, resp.Data(created))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var u hostcfg.User
	if err := h.parser.ParseBody(r.Body, &u); err != nil {
		h.resp.Err(w, r, err, resp.Code(http.StatusBadRequest))
		return
	}

	token, err := h.sessions.Login(u.Name, u.Password)
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(http.StatusBadRequest))
		return
	}

	_ = h.resp.Json(w, r, resp.Data(map[string]string{"authToken": token}))
}

// logout never says whether the token was ever valid.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token := r.Header.Get(h.tokenHeader); token != "" {
		h.sessions.Logout(token)
	}

	h.resp.NoContent(w, r)
}
