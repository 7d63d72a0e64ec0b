package contracts

import "github.com/julienschmidt/httprouter"

// Handler mounts a module's routes under the service prefix.
type Handler interface {
	RegisterRoutes(router *httprouter.Router, prefix string)
}
