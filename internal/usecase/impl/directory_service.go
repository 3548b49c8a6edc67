package impl

import (
	"context"
	"encoding/xml"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"pymerp/config"
	deliverycontext "pymerp/internal/delivery/context"
	"pymerp/internal/domain/directory"
	"pymerp/internal/domain/entity"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
	"pymerp/internal/domain/service"
	"pymerp/internal/usecase"
)

const defaultMaxRadiusKm = 100

type directoryService struct {
	companyRepo repository.CompanyRepository
	cache       service.DirectoryCache
	baseURL     string
	maxRadiusKm float64
	now         func() time.Time
	logger      *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	Cache       service.DirectoryCache `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDirectoryService creates the public directory service.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	maxRadius := float64(defaultMaxRadiusKm)
	baseURL := ""
	if params.Config != nil {
		baseURL = strings.TrimRight(params.Config.App.PublicBaseURL, "/")
		if params.Config.Directory != nil && params.Config.Directory.MaxRadiusKm > 0 {
			maxRadius = params.Config.Directory.MaxRadiusKm
		}
	}

	return &directoryService{
		companyRepo: params.CompanyRepo,
		cache:       params.Cache,
		baseURL:     baseURL,
		maxRadiusKm: maxRadius,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// publicCompanies returns the directory snapshot, from the cache when warm.
// Cache failures degrade to the repository.
func (srv *directoryService) publicCompanies(ctx context.Context) ([]*entity.Company, error) {
	if srv.cache != nil {
		companies, ok, err := srv.cache.GetPublicCompanies(ctx)
		switch {
		case err != nil:
			srv.log(ctx).Warn("Directory cache read failed", slog.Any("error", err))
		case ok:
			return companies, nil
		}
	}

	companies, err := srv.companyRepo.ListPublic(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public companies")
	}

	if srv.cache != nil {
		if err := srv.cache.SetPublicCompanies(ctx, companies); err != nil {
			srv.log(ctx).Warn("Directory cache write failed", slog.Any("error", err))
		}
	}

	return companies, nil
}

// SearchCompanies filters the public directory.
func (srv *directoryService) SearchCompanies(ctx context.Context, input *usecase.SearchCompaniesInput) ([]directory.Listing, error) {
	reference, err := srv.validateSearch(input)
	if err != nil {
		return nil, err
	}

	companies, err := srv.publicCompanies(ctx)
	if err != nil {
		return nil, err
	}

	return directory.FilterCompanies(companies, input.Filter, reference), nil
}

func (srv *directoryService) validateSearch(input *usecase.SearchCompaniesInput) (*orb.Point, error) {
	var fields []domainerrors.FieldError

	if r := input.Filter.RadiusKm; !isFinite(r) || r < 0 || r > srv.maxRadiusKm {
		fields = append(fields, domainerrors.FieldError{Field: "radius_km", Reason: "out of range"})
	}

	var reference *orb.Point
	switch {
	case input.Lat == nil && input.Lng == nil:
	case input.Lat == nil || input.Lng == nil:
		fields = append(fields, domainerrors.FieldError{Field: "lat,lng", Reason: "must be given together"})
	case !isFinite(*input.Lat) || *input.Lat < -90 || *input.Lat > 90:
		fields = append(fields, domainerrors.FieldError{Field: "lat", Reason: "must be between -90 and 90"})
	case !isFinite(*input.Lng) || *input.Lng < -180 || *input.Lng > 180:
		fields = append(fields, domainerrors.FieldError{Field: "lng", Reason: "must be between -180 and 180"})
	default:
		reference = &orb.Point{*input.Lng, *input.Lat}
	}

	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(domainerrors.ErrValidationFailed, fields...)
	}

	return reference, nil
}

// isFinite rejects NaN and ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ListCommuneGroups lists communes that have public companies.
func (srv *directoryService) ListCommuneGroups(ctx context.Context) ([]directory.CommuneGroup, error) {
	companies, err := srv.publicCompanies(ctx)
	if err != nil {
		return nil, err
	}

	return directory.GroupByCommune(companies), nil
}

// FindCommune resolves a free-text commune name to its region and province.
func (srv *directoryService) FindCommune(_ context.Context, name string) (*directory.CommuneMatch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.NewValidationError(domainerrors.ErrValidationFailed,
			domainerrors.FieldError{Field: "name", Reason: "is required"})
	}

	match, ok := directory.FindCommune(name)
	if !ok {
		return nil, domainerrors.ErrCommuneNotFound.WrapMessage(name)
	}

	return match, nil
}

type sitemapPage struct {
	path       string
	priority   string
	changeFreq string
}

var sitemapStaticPages = []sitemapPage{
	{"/", "1.0", "daily"},
	{"/login", "0.8", "monthly"},
	{"/request-access", "0.8", "monthly"},
	{"/pymes-cercanas", "0.7", "weekly"},
	{"/transparencia", "0.6", "monthly"},
	{"/que-es-pymerp", "0.6", "monthly"},
	{"/costos", "0.7", "monthly"},
	{"/privacidad", "0.5", "yearly"},
	{"/terminos", "0.5", "yearly"},
	{"/contacto", "0.6", "monthly"},
	{"/condiciones-beta", "0.5", "monthly"},
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders sitemap.xml with the static pages and every public company page.
func (srv *directoryService) Sitemap(ctx context.Context) ([]byte, error) {
	companies, err := srv.publicCompanies(ctx)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC().Format(time.RFC3339)
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(sitemapStaticPages)+len(companies)),
	}
	for _, p := range sitemapStaticPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: srv.baseURL + p.path, LastMod: now, ChangeFreq: p.changeFreq, Priority: p.priority})
	}
	for _, c := range companies {
		if c.Slug == "" {
			continue
		}
		lastMod := now
		if !c.UpdatedAt.IsZero() {
			lastMod = c.UpdatedAt.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: c.PublicURL(srv.baseURL), LastMod: lastMod, ChangeFreq: "daily", Priority: "0.9"})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to render sitemap")
	}

	return append([]byte(xml.Header), out...), nil
}
