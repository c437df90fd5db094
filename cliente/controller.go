package cliente

import (
	"context"
	"log"
	"strconv"

	"catalogo-productos/models"
	"catalogo-productos/service"
	"catalogo-productos/utils"
)

// Placeholder photo references used before a picture is taken and as the
// fallback when a reference fails to render.
const (
	PlaceholderPhotoURL        = "https://placehold.co/100x100"
	PlaceholderPhotoDetailsURL = "https://placehold.co/200x200"
)

// View identifies one of the three mutually exclusive screens
type View int

const (
	ViewList View = iota
	ViewForm
	ViewDetails
)

func (v View) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewDetails:
		return "details"
	default:
		return "list"
	}
}

// FormDraft holds the unsaved form fields. Precio stays text until
// submit, like the form input it models.
type FormDraft struct {
	Nombre        string
	Descripcion   string
	Precio        string
	Estado        string
	Categoria     string
	URLFotografia string
}

// viewState is the tagged variant for the current screen. Per-screen
// data lives on the variant, so "in Form" and "viewing Details" cannot
// hold at the same time.
type viewState interface {
	view() View
}

type listState struct{}

type formState struct {
	draft FormDraft
}

type detailsState struct {
	selected models.Product
}

func (listState) view() View     { return ViewList }
func (*formState) view() View    { return ViewForm }
func (*detailsState) view() View { return ViewDetails }

// Alerter surfaces a user-visible alert. Every failed action produces
// exactly one alert and no state change.
type Alerter interface {
	Alert(title, message string)
}

// LogAlerter writes alerts to the process log
type LogAlerter struct{}

func (LogAlerter) Alert(title, message string) {
	log.Printf("⚠️  %s: %s", title, message)
}

// Controller drives the three-screen state machine and keeps it
// synchronized with the server by refetching the whole list after every
// successful mutation. It is single-threaded: one action completes
// before the next is accepted.
type Controller struct {
	api    *APIClient
	camera PhotoSource
	alert  Alerter

	state    viewState
	products []models.Product // last known snapshot, not authoritative
}

// NewController creates a Controller starting on the list screen.
// camera may be nil when no capture device is attached.
func NewController(api *APIClient, camera PhotoSource, alert Alerter) *Controller {
	if alert == nil {
		alert = LogAlerter{}
	}
	return &Controller{
		api:    api,
		camera: camera,
		alert:  alert,
		state:  listState{},
	}
}

// View returns the current screen
func (c *Controller) View() View {
	return c.state.view()
}

// Products returns the cached product list
func (c *Controller) Products() []models.Product {
	return c.products
}

// Draft returns the form draft, or nil when not on the form screen
func (c *Controller) Draft() *FormDraft {
	if s, ok := c.state.(*formState); ok {
		return &s.draft
	}
	return nil
}

// Selected returns the product being viewed, or nil when not on the
// details screen
func (c *Controller) Selected() *models.Product {
	if s, ok := c.state.(*detailsState); ok {
		return &s.selected
	}
	return nil
}

// Refresh refetches the full product list from the server. On failure
// the cached list is left as it was and an alert is shown.
func (c *Controller) Refresh(ctx context.Context) {
	products, err := c.api.FetchProducts(ctx)
	if err != nil {
		log.Printf("❌ Refresh: %v", err)
		c.alert.Alert("Error", "No se pudieron obtener los productos.")
		return
	}
	c.products = products
}

// ShowForm moves from the list to the form with a fresh draft
func (c *Controller) ShowForm() {
	if _, ok := c.state.(listState); !ok {
		return
	}
	c.state = &formState{draft: FormDraft{
		Estado:        models.EstadoDisponible,
		URLFotografia: PlaceholderPhotoURL,
	}}
}

// CancelForm abandons the draft and returns to the list
func (c *Controller) CancelForm() {
	if _, ok := c.state.(*formState); !ok {
		return
	}
	c.state = listState{}
}

// SubmitForm sends the draft to the server. On success the list is
// refetched and the controller returns to the list screen; on any
// failure an alert is shown and the form stays as it was.
func (c *Controller) SubmitForm(ctx context.Context) {
	s, ok := c.state.(*formState)
	if !ok {
		return
	}

	req := &models.CreateProductRequest{
		Nombre:        s.draft.Nombre,
		Descripcion:   s.draft.Descripcion,
		Estado:        s.draft.Estado,
		Categoria:     s.draft.Categoria,
		URLFotografia: s.draft.URLFotografia,
	}
	// An empty or unparseable precio is sent as absent; the server
	// answers with the missing-fields error.
	if precio, err := strconv.ParseFloat(s.draft.Precio, 64); err == nil {
		req.Precio = &precio
	}

	if _, err := c.api.CreateProduct(ctx, req); err != nil {
		log.Printf("❌ SubmitForm: %v", err)
		c.alert.Alert("Error", err.Error())
		return
	}

	c.alert.Alert("Éxito", "Producto creado con éxito.")
	c.Refresh(ctx)
	c.state = listState{}
}

// SelectProduct moves from the list to the details screen with a
// snapshot of the product copied from the cache. There is no
// single-product fetch.
func (c *Controller) SelectProduct(id int) {
	if _, ok := c.state.(listState); !ok {
		return
	}
	for _, p := range c.products {
		if p.ID == id {
			c.state = &detailsState{selected: p}
			return
		}
	}
}

// Back returns from the details screen to the list
func (c *Controller) Back() {
	if _, ok := c.state.(*detailsState); !ok {
		return
	}
	c.state = listState{}
}

// DeleteSelected deletes the product being viewed. On success the list
// is refetched and the controller returns to the list screen; on any
// failure an alert is shown and the details screen stays.
func (c *Controller) DeleteSelected(ctx context.Context) {
	s, ok := c.state.(*detailsState)
	if !ok {
		return
	}

	if err := c.api.DeleteProduct(ctx, s.selected.ID); err != nil {
		log.Printf("❌ DeleteSelected: %v", err)
		c.alert.Alert("Error", err.Error())
		return
	}

	c.alert.Alert("Éxito", "Producto eliminado con éxito.")
	c.Refresh(ctx)
	c.state = listState{}
}

// TakePhoto captures a photo, optimizes it and writes it into the draft
// as a JPEG data URI, overwriting whatever reference was there. Only
// available on the form screen. There is no retry; a failed capture is
// simply not attempted again until invoked.
func (c *Controller) TakePhoto(ctx context.Context) {
	s, ok := c.state.(*formState)
	if !ok {
		return
	}
	if c.camera == nil {
		c.alert.Alert("Error", "No se tiene permiso para acceder a la cámara.")
		return
	}

	imageData, err := c.camera.TakePhoto(ctx)
	if err != nil {
		log.Printf("❌ TakePhoto: %v", err)
		c.alert.Alert("Error", "No se pudo tomar la foto.")
		return
	}

	optimized, err := service.OptimizePhoto(imageData)
	if err != nil {
		log.Printf("❌ TakePhoto: %v", err)
		c.alert.Alert("Error", "No se pudo procesar la foto.")
		return
	}

	s.draft.URLFotografia = utils.JPEGDataURI(optimized)
}

// PhotoFailed replaces a photo reference that failed to render with the
// fallback placeholder. Render failures are never surfaced as errors.
func (c *Controller) PhotoFailed() {
	switch s := c.state.(type) {
	case *formState:
		s.draft.URLFotografia = PlaceholderPhotoURL
	case *detailsState:
		s.selected.URLFotografia = PlaceholderPhotoDetailsURL
	}
}
