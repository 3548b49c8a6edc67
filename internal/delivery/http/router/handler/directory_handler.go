package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pymerp/internal/delivery/http/response"
	"pymerp/internal/domain/directory"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/usecase"
)

const (
	sitemapCacheControl = "public, max-age=3600"
	qrCacheControl      = "public, max-age=86400"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	CompanyQRUC usecase.CompanyQRUsecase
}

// DirectoryHandler serves the public company directory and public page assets.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	companyQRUC usecase.CompanyQRUsecase
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		companyQRUC: params.CompanyQRUC,
	}
}

// SearchCompanies filters public companies by location, category, text and radius.
func (h *DirectoryHandler) SearchCompanies(c echo.Context) error {
	var (
		filter   directory.FilterState
		lat, lng float64
	)

	binder := echo.QueryParamsBinder(c).
		String("region", &filter.Region).
		String("province", &filter.Province).
		String("commune", &filter.Commune).
		String("sector", &filter.Sector).
		String("categoryId", &filter.CategoryID).
		String("q", &filter.SearchQuery).
		Bool("showAll", &filter.ShowAll).
		Float64("radiusKm", &filter.RadiusKm).
		Float64("lat", &lat).
		Float64("lng", &lng)
	if err := binder.BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	input := &usecase.SearchCompaniesInput{Filter: filter}
	if c.QueryParam("lat") != "" {
		input.Lat = &lat
	}
	if c.QueryParam("lng") != "" {
		input.Lng = &lng
	}

	listings, err := h.directoryUC.SearchCompanies(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newListingDTOs(listings), "")
}

// ListCommunes lists communes that have public companies.
func (h *DirectoryHandler) ListCommunes(c echo.Context) error {
	groups, err := h.directoryUC.ListCommuneGroups(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newCommuneGroupDTOs(groups), "")
}

// LookupCommune resolves ?name= to its region and province.
func (h *DirectoryHandler) LookupCommune(c echo.Context) error {
	match, err := h.directoryUC.FindCommune(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, match, "")
}

// Sitemap serves sitemap.xml.
func (h *DirectoryHandler) Sitemap(c echo.Context) error {
	out, err := h.directoryUC.Sitemap(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Blob(c, http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, out, sitemapCacheControl)
}

// CompanyQR serves the PNG QR code of a company's public page.
func (h *DirectoryHandler) CompanyQR(c echo.Context) error {
	png, err := h.companyQRUC.CompanyQR(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	return response.Blob(c, http.StatusOK, "image/png", png, qrCacheControl)
}
