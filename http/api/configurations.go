package api

import (
	"net/http"

	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/configuration"
	"github.com/xy-planning-network/hostcfg/http/resp"
)

// Reads answer failures with 404; writes with 400.
const (
	readErrCode  = http.StatusNotFound
	writeErrCode = http.StatusBadRequest
)

func (h *Handler) getConfigurations(w http.ResponseWriter, r *http.Request) {
	u, err := h.authorize(r, pathVar(r, 0))
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(readErrCode))
		return
	}

	var q configuration.Query
	if err := h.parser.ParseQueryParams(r.URL.Query(), &q); err != nil {
		h.resp.Err(w, r, err, resp.Code(readErrCode))
		return
	}

	page, err := h.configs.Get(u.Name, q)
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(readErrCode))
		return
	}

	_ = h.resp.Json(w, r, resp.Data(page))
}

func (h *Handler) getConfiguration(w http.ResponseWriter, r *http.Request) {
	u, err := h.authorize(r, pathVar(r, 0))
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(readErrCode))
		return
	}

	cfg, err := h.configs.GetByName(u.Name, pathVar(r, 1))
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(readErrCode))
		return
	}

	_ = h.resp.Json(w, r, resp.Data(cfg))
}

func (h *Handler) deleteConfiguration(w http.ResponseWriter, r *http.Request) {
	u, err := h.authorize(r, pathVar(r, 0))
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(writeErrCode))
		return
	}

	if err := h.configs.Delete(u.Name, pathVar(r, 1)); err != nil {
		h.resp.Err(w, r, err, resp.Code(writeErrCode))
		return
	}

	_ = h.resp.Json(w, r, resp.Message("Config deleted"))
}

func (h *Handler) createConfiguration(w http.ResponseWriter, r *http.Request) {
	u, cfg, err := h.parseConfiguration(r)
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(writeErrCode))
		return
	}

	if err := h.configs.Create(u.Name, cfg); err != nil {
		h.resp.Err(w, r, err, resp.Code(writeErrCode))
		return
	}

	_ = h.resp.Json(w, r, resp.Message("Config created"))
}

func (h *Handler) updateConfiguration(w http.ResponseWriter, r *http.Request) {
	u, cfg, err := h.parseConfiguration(r)
	if err != nil {
		h.resp.Err(w, r, err, resp.Code(writeErrCode))
		return
	}

	if err := h.configs.Update(u.Name, cfg); err != nil {
		h.resp.Err(w, r, err, resp.Code(writeErrCode))
		return
	}

	_ = h.resp.Json(w, r, resp.Message("Config updated"))
}

// parseConfiguration authorizes the request before decoding the Configuration in its body.
func (h *Handler) parseConfiguration(r *http.Request) (hostcfg.User, hostcfg.Configuration, error) {
	u, err := h.authorize(r, pathVar(r, 0))
	if err != nil {
		return hostcfg.User{}, hostcfg.Configuration{}, err
	}

	var cfg hostcfg.Configuration
	if err := h.parser.ParseBody(r.Body, &cfg); err != nil {
		return hostcfg.User{}, hostcfg.Configuration{}, err
	}

	return u, cfg, nil
}
