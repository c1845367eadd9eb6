package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// IMPORTANTE: REGISTRO DE MIDDLEWARE EN FIBER V3
// ============================================================================
//
// Fiber v3 tiene un problema con el registro directo de middleware en la ruta:
// el middleware NO se ejecuta si se pasa directo.
//
// INCORRECTO (no funciona):
//    router.Get("/path", middleware.CronAuthMiddleware(), handler)
//    → El middleware no se invoca, el request lo saltea.
//
// CORRECTO (usar siempre):
//    mw := middleware.CronAuthMiddleware()
//    RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{mw}, handler)
//    → El middleware se aplica vía .Use() sobre un group.
//
// ============================================================================

// CONFIGS

// CRUDHandler define la interfaz de los handlers CRUD
type CRUDHandler interface {
	// Create
	InsertOne(c fiber.Ctx) error
	InsertMany(c fiber.Ctx) error

	// Read
	Find(c fiber.Ctx) error
	FindOne(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindManyByIds(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error

	// Update
	UpdateOne(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteOne(c fiber.Ctx) error
	DeleteMany(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error

	// Other
	CountDocuments(c fiber.Ctx) error
	Distinct(c fiber.Ctx) error
	Upsert(c fiber.Ctx) error
	DocumentExists(c fiber.Ctx) error
}

// Router administra el ruteo de la API
type Router struct {
	app *fiber.App
}

// CRUDConfig configura las operaciones permitidas por colección
type CRUDConfig struct {
	// Create
	InsOne  bool // Insert One
	InsMany bool // Insert Many

	// Read
	Find     bool // Find All
	FindOne  bool // Find One
	FindById bool // Find By Id
	FindIds  bool // Find Many By Ids
	Paginate bool // Find With Pagination

	// Update
	UpdOne  bool // Update One
	UpdById bool // Update By Id

	// Delete
	DelOne  bool // Delete One
	DelMany bool // Delete Many
	DelById bool // Delete By Id

	// Other
	Count    bool // Count Documents
	Distinct bool // Distinct
	Upsert   bool // Upsert One
	Exists   bool // Document Exists
}

// Configs compartidas entre dominios.
var (
	// ReadOnlyConfig solo permite lectura (find, find-one, count, distinct, exists).
	// Las colecciones sincronizadas desde el GIS se exponen así: la escritura
	// la hace únicamente el proceso de sincronización. Sin rutas por ObjectID
	// porque estas colecciones usan la clave canónica del GIS como _id.
	ReadOnlyConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: false,
		FindIds: false, Paginate: true,
		UpdOne: false, UpdById: false,
		DelOne: false, DelMany: false, DelById: false,
		Count: true, Distinct: true,
		Upsert: false, Exists: true,
	}

	// ReadWriteConfig permite CRUD completo.
	ReadWriteConfig = CRUDConfig{
		InsOne: true, InsMany: true,
		Find: true, FindOne: true, FindById: true,
		FindIds: true, Paginate: true,
		UpdOne: true, UpdById: true,
		DelOne: true, DelMany: true, DelById: true,
		Count: true, Distinct: true,
		Upsert: true, Exists: true,
	}

	// ContactoConfig para el directorio sincronizado: lectura completa más
	// update de los campos de contacto propios (cuit, teléfono). Sin alta ni
	// baja manual, eso lo gobierna la sincronización.
	ContactoConfig = CRUDConfig{
		InsOne: false, InsMany: false,
		Find: true, FindOne: true, FindById: false,
		FindIds: false, Paginate: true,
		UpdOne: true, UpdById: false,
		DelOne: false, DelMany: false, DelById: false,
		Count: true, Distinct: true,
		Upsert: false, Exists: true,
	}
)

// RoutePrefix contiene los prefijos base de la API
type RoutePrefix struct {
	Base string // Prefijo base (/api)
	V1   string // Prefijo de la versión 1 (/api/v1)
}

// NewRoutePrefix crea un RoutePrefix con los valores por defecto
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter crea una instancia de Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware registra una ruta con middleware usando .Use()
// sobre un group (la única forma que funciona bien en Fiber v3, ver el
// comentario al inicio del archivo). Se usa desde los routers de dominio.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// El group con prefix acota el middleware a las rutas del group
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Path relativo, el prefix ya está en el group
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes registra las rutas CRUD de una colección según su config.
// Se usa desde los routers de dominio.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	group := router.Group(prefix)

	// Create
	if config.InsOne {
		group.Post("/insert-one", h.InsertOne)
	}
	if config.InsMany {
		group.Post("/insert-many", h.InsertMany)
	}

	// Read
	if config.Find {
		group.Get("/find", h.Find)
	}
	if config.FindOne {
		group.Get("/find-one", h.FindOne)
	}
	if config.FindById {
		group.Get("/find-by-id/:id", h.FindOneById)
	}
	if config.FindIds {
		group.Post("/find-by-ids", h.FindManyByIds)
	}
	if config.Paginate {
		group.Get("/find-with-pagination", h.FindWithPagination)
	}

	// Update
	if config.UpdOne {
		group.Put("/update-one", h.UpdateOne)
	}
	if config.UpdById {
		group.Put("/update-by-id/:id", h.UpdateById)
	}

	// Delete
	if config.DelOne {
		group.Delete("/delete-one", h.DeleteOne)
	}
	if config.DelMany {
		group.Delete("/delete-many", h.DeleteMany)
	}
	if config.DelById {
		group.Delete("/delete-by-id/:id", h.DeleteById)
	}

	// Other
	if config.Count {
		group.Get("/count", h.CountDocuments)
	}
	if config.Distinct {
		group.Get("/distinct/:field", h.Distinct)
	}
	if config.Upsert {
		group.Post("/upsert-one", h.Upsert)
	}
	if config.Exists {
		group.Get("/exists", h.DocumentExists)
	}
}

// RegisterFunc es la función de registro de rutas de un dominio (exportada por su router).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes configura todas las rutas de la aplicación. El caller pasa el
// Register de cada dominio para evitar import cycles.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
