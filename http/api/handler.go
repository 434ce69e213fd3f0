package api

import (
	"net/http"

	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/configuration"
	"github.com/xy-planning-network/hostcfg/http/middleware"
	"github.com/xy-planning-network/hostcfg/http/req"
	"github.com/xy-planning-network/hostcfg/http/resp"
	"github.com/xy-planning-network/hostcfg/http/router"
)

// DefaultTokenHeader is the request header carrying auth tokens.
const DefaultTokenHeader = "Auth-Token"

// A UserCreator registers new Users.
type UserCreator interface {
	Create(u hostcfg.User) (hostcfg.User, error)
}

// A SessionService logs Users in and out.
type SessionService interface {
	Login(name, password string) (string, error)
	Logout(token string)
}

// A ConfigurationStore keeps each User's Configurations.
type ConfigurationStore interface {
	Get(owner string, q configuration.Query) (configuration.Page, error)
	GetByName(owner, name string) (hostcfg.Configuration, error)
	Create(owner string, cfg hostcfg.Configuration) error
	Update(owner string, cfg hostcfg.Configuration) error
	Delete(owner, name string) error
}

// A Handler answers the API's requests.
//
// Handlers expect middleware.CurrentUser to have run ahead of them.
type Handler struct {
	configs     ConfigurationStore
	parser      *req.Parser
	resp        *resp.Responder
	sessions    SessionService
	tokenHeader string
	users       UserCreator
}

// A HandlerOptFn configures a *Handler.
type HandlerOptFn func(*Handler)

// WithResponder sets the *resp.Responder a Handler writes responses with.
func WithResponder(d *resp.Responder) HandlerOptFn {
	return func(h *Handler) {
		if d != nil {
			h.resp = d
		}
	}
}

// WithTokenHeader sets the request header auth tokens are read from.
func WithTokenHeader(header string) HandlerOptFn {
	return func(h *Handler) {
		if header != "" {
			h.tokenHeader = header
		}
	}
}

// NewHandler constructs a *Handler over the services backing the API.
func NewHandler(users UserCreator, sessions SessionService, configs ConfigurationStore, opts ...HandlerOptFn) *Handler {
	h := &Handler{
		configs:     configs,
		parser:      req.NewParser(),
		resp:        resp.NewResponder(),
		sessions:    sessions,
		tokenHeader: DefaultTokenHeader,
		users:       users,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Routes lists the API's Routes.
func (h *Handler) Routes() []router.Route {
	return []router.Route{
		{Path: "/users", Method: http.MethodPost, Handler: h.createUser},
		{Path: "/login", Method: http.MethodPost, Handler: h.login},
		{Path: "/logout", Method: http.MethodGet, Handler: h.logout},
		{Path: "/configurations/{}", Method: http.MethodGet, Handler: h.getConfigurations},
		{Path: "/configurations/{}/{}", Method: http.MethodGet, Handler: h.getConfiguration},
		{Path: "/configurations/{}/{}", Method: http.MethodDelete, Handler: h.deleteConfiguration},
		{Path: "/configurations/{}", Method: http.MethodPost, Handler: h.createConfiguration},
		{Path: "/configurations/{}", Method: http.MethodPut, Handler: h.updateConfiguration},
	}
}

// authorize confirms the request carries a valid auth token for owner.
func (h *Handler) authorize(r *http.Request, owner string) (hostcfg.User, error) {
	u, ok := middleware.CurrentUserFromContext(r.Context())
	if !ok {
		return hostcfg.User{}, hostcfg.Errorf(hostcfg.ErrInvalidToken, "Invalid auth token.")
	}

	if u.Name != owner {
		return hostcfg.User{}, hostcfg.Errorf(
			hostcfg.ErrForbidden,
			"%s does not have access to resources belonging to %s",
			u.Name,
			owner,
		)
	}

	return u, nil
}

// pathVar retrieves the i-th placeholder captured for the request's Route.
func pathVar(r *http.Request, i int) string {
	vars := router.Vars(r)
	if i >= len(vars) {
		return ""
	}

	return vars[i]
}
