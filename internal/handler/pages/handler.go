package pages

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/directory-web/internal/middleware"
	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/service/clinic"
	"github.com/jwalitptl/directory-web/internal/service/doctor"
	"github.com/jwalitptl/directory-web/internal/service/search"
	"github.com/jwalitptl/directory-web/internal/web"
	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
)

// ContactSubjects are the choices of the contact form.
var ContactSubjects = []string{
	"Registrar mi consultorio",
	"Problema con mi listado",
	"Consulta general",
	"Reportar un error",
	"Otro",
}

type SpecialtyLister interface {
	List(ctx context.Context) ([]*model.Specialty, error)
}

// Site holds the values every page header needs.
type Site struct {
	Name         string
	BaseURL      string
	SupportEmail string
}

// Meta is the per-page title, description and OpenGraph data.
type Meta struct {
	Title       string
	Description string
	Image       string
	URL         string
}

// View is the root value handed to every template.
type View struct {
	SiteName string
	Meta     Meta
	Data     interface{}
}

// SearchForm feeds the specialty selector.
type SearchForm struct {
	Specialties []*model.Specialty
	Selected    string
}

type homeData struct {
	Form SearchForm
}

type searchData struct {
	Result  *search.Result
	Heading string
	Form    SearchForm
	Pager   *Pager
}

type contactData struct {
	Subjects     []string
	SupportEmail string
}

type Handler struct {
	site        Site
	search      search.SearchServicer
	clinics     clinic.ClinicServicer
	doctors     doctor.DoctorServicer
	specialties SpecialtyLister
}

func NewHandler(
	site Site,
	searchSvc search.SearchServicer,
	clinicSvc clinic.ClinicServicer,
	doctorSvc doctor.DoctorServicer,
	specialties SpecialtyLister,
) *Handler {
	site.BaseURL = strings.TrimSuffix(site.BaseURL, "/")
	return &Handler{
		site:        site,
		search:      searchSvc,
		clinics:     clinicSvc,
		doctors:     doctorSvc,
		specialties: specialties,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Home)
	r.GET("/buscar", h.Search)
	r.GET("/consultorio/:slug", h.Clinic)
	r.GET("/doctor/:slug", h.Doctor)
	r.GET("/contacto", h.Contact)
}

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, web.TemplateHome, Meta{
		Description: "Encuentra los mejores doctores y especialistas médicos en Ecuador. Agenda citas online de forma rápida y segura.",
		URL:         h.url("/"),
	}, homeData{Form: h.searchForm(c, "")})
}

func (h *Handler) Search(c *gin.Context) {
	query := search.Query{
		SpecialtyID: c.Query("especialidad"),
		Page:        search.ParsePage(c.Query("page")),
	}
	result := h.search.Search(c.Request.Context(), query)

	meta := Meta{
		Title:       "Buscar Consultorios",
		Description: "Encuentra los mejores consultorios médicos.",
		URL:         h.url("/buscar"),
	}
	heading := "Todos los Consultorios"
	if result.SpecialtyName != "" {
		meta.Title = "Consultorios de " + result.SpecialtyName
		meta.Description = "Encuentra consultorios con especialistas en " + result.SpecialtyName + "."
		meta.URL = h.url("/buscar?especialidad=" + result.SpecialtyID)
		heading = meta.Title
	}

	h.render(c, http.StatusOK, web.TemplateSearch, meta, searchData{
		Result:  result,
		Heading: heading,
		Form:    h.searchForm(c, query.SpecialtyID),
		Pager:   NewPager(c.Request.URL.Path, c.Request.URL.Query(), result.Page, result.TotalPages),
	})
}

func (h *Handler) Clinic(c *gin.Context) {
	slug := c.Param("slug")
	page, err := h.clinics.GetPage(c.Request.Context(), slug)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, web.TemplateClinic, Meta{
		Title:       page.Title,
		Description: page.Description,
		Image:       page.Image,
		URL:         h.url("/consultorio/" + slug),
	}, page)
}

func (h *Handler) Doctor(c *gin.Context) {
	slug := c.Param("slug")
	page, err := h.doctors.GetPage(c.Request.Context(), slug)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, web.TemplateDoctor, Meta{
		Title:       page.Title,
		Description: page.Description,
		Image:       page.Image,
		URL:         h.url("/doctor/" + slug),
	}, page)
}

func (h *Handler) Contact(c *gin.Context) {
	h.render(c, http.StatusOK, web.TemplateContact, Meta{
		Title:       "Contacto",
		Description: "Ponte en contacto con nosotros. Responderemos a la brevedad.",
		URL:         h.url("/contacto"),
	}, contactData{Subjects: ContactSubjects, SupportEmail: h.site.SupportEmail})
}

// NotFound renders the 404 page. API paths get a JSON body instead.
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "No encontrado"})
		return
	}
	h.render(c, http.StatusNotFound, web.TemplateNotFound, Meta{Title: "Página no encontrada"}, nil)
}

// RenderError writes the 500 page with whatever status is already set.
func (h *Handler) RenderError(c *gin.Context) {
	h.render(c, http.StatusInternalServerError, web.TemplateError, Meta{Title: "Error"}, nil)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if apperrors.IsNotFound(err) {
		h.NotFound(c)
		return
	}
	log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString(middleware.ContextRequestID)).
		Msg("failed to load page")
	h.RenderError(c)
}

func (h *Handler) searchForm(c *gin.Context, selected string) SearchForm {
	form := SearchForm{Selected: selected, Specialties: []*model.Specialty{}}
	specialties, err := h.specialties.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching especialidades")
		return form
	}
	form.Specialties = specialties
	return form
}

func (h *Handler) render(c *gin.Context, status int, name string, meta Meta, data interface{}) {
	c.HTML(status, name, View{SiteName: h.site.Name, Meta: meta, Data: data})
}

func (h *Handler) url(path string) string {
	if path == "/" {
		return h.site.BaseURL
	}
	return h.site.BaseURL + path
}
