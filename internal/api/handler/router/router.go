package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/sales-charts-api/pkg/apiErrors"
)

type Middleware func(http.Handler) http.Handler

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // aplicados na ordem da lista, o primeiro é o mais externo
}

type Router struct {
	router *httprouter.Router
	routes []Route
}

type ConfigRouter func(router *Router)

// WithRoutes registra as rotas informadas
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// WithMiddlewares registra as rotas envolvendo cada uma com os middlewares informados
func WithMiddlewares(middlewares []Middleware, routes ...Route) ConfigRouter {
	return func(router *Router) {
		for _, route := range routes {
			route.Middlewares = append(append([]Middleware{}, middlewares...), route.Middlewares...)
			router.AddRoutes(route)
		}
	}
}

func New(configs ...ConfigRouter) *Router {
	rt := httprouter.New()
	rt.HandleOPTIONS = false
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", map[string]any{"path": r.URL.Path})
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]any{"method": r.Method})
	})

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.routes = append(r.routes, route)
	}
}

// Routes lista as rotas registradas, na ordem de registro
func (r *Router) Routes() []Route {
	return append([]Route(nil), r.routes...)
}

// Param devolve o parâmetro de caminho nomeado da requisição
func Param(req *http.Request, name string) string {
	return httprouter.ParamsFromContext(req.Context()).ByName(name)
}
