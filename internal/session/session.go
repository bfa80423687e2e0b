package session

import (
	"encoding/gob"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	nombreSesion = "vyv_session"
	claveCarrito = "carrito"
	claveUsuario = "user"
)

var store *sessions.CookieStore

// Flash es un mensaje de una sola lectura para la siguiente página.
type Flash struct {
	Categoria string // success | danger | info
	Texto     string
}

func init() {
	gob.Register(map[string]int{})
	gob.Register(Flash{})
}

// Init configura el almacén de cookies. El secreto es obligatorio.
func Init(secret string) {
	if secret == "" {
		log.Fatal("❌ SESSION_SECRET faltante en .env")
	}

	store = sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false, // true detrás de HTTPS
		SameSite: http.SameSiteLaxMode,
	}
}

func obtener(c *gin.Context) *sessions.Session {
	// Get devuelve una sesión nueva cuando la cookie es inválida; el error
	// solo indica que no se pudo decodificar la anterior.
	s, _ := store.Get(c.Request, nombreSesion)
	return s
}

func guardar(c *gin.Context, s *sessions.Session) {
	if err := s.Save(c.Request, c.Writer); err != nil {
		log.Println("⚠️  Error guardando sesión:", err)
	}
}

// --- Carrito ---

// Carrito devuelve el mapa producto→cantidad de la sesión (copia mutable).
func Carrito(c *gin.Context) map[string]int {
	s := obtener(c)
	if carrito, ok := s.Values[claveCarrito].(map[string]int); ok {
		copia := make(map[string]int, len(carrito))
		for id, qty := range carrito {
			copia[id] = qty
		}
		return copia
	}
	return map[string]int{}
}

func GuardarCarrito(c *gin.Context, carrito map[string]int) {
	s := obtener(c)
	s.Values[claveCarrito] = carrito
	guardar(c, s)
}

func LimpiarCarrito(c *gin.Context) {
	s := obtener(c)
	delete(s.Values, claveCarrito)
	guardar(c, s)
}

// --- Flash ---

func AgregarFlash(c *gin.Context, categoria, texto string) {
	s := obtener(c)
	s.AddFlash(Flash{Categoria: categoria, Texto: texto})
	guardar(c, s)
}

// Flashes consume y devuelve los mensajes pendientes.
func Flashes(c *gin.Context) []Flash {
	s := obtener(c)
	crudos := s.Flashes()
	if len(crudos) == 0 {
		return nil
	}
	guardar(c, s) // persistir el consumo

	mensajes := make([]Flash, 0, len(crudos))
	for _, f := range crudos {
		if flash, ok := f.(Flash); ok {
			mensajes = append(mensajes, flash)
		}
	}
	return mensajes
}

// --- Marca de admin ---

func MarcarAdmin(c *gin.Context, usuario string) {
	s := obtener(c)
	s.Values[claveUsuario] = usuario
	guardar(c, s)
}

func EsAdmin(c *gin.Context) bool {
	s := obtener(c)
	usuario, ok := s.Values[claveUsuario].(string)
	return ok && usuario != ""
}

func CerrarSesion(c *gin.Context) {
	s := obtener(c)
	delete(s.Values, claveUsuario)
	guardar(c, s)
}
