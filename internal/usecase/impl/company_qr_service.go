package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"pymerp/config"
	deliverycontext "pymerp/internal/delivery/context"
	domainerrors "pymerp/internal/domain/errors"
	"pymerp/internal/domain/repository"
	"pymerp/internal/domain/service"
	"pymerp/internal/usecase"
)

const qrContentType = "image/png"

type companyQRService struct {
	companyRepo repository.CompanyRepository
	qrCode      service.QRCodeService
	assets      service.AssetStore
	baseURL     string
	logger      *slog.Logger
}

// CompanyQRServiceParams holds dependencies for CompanyQRService, injected by Fx.
type CompanyQRServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	QRCode      service.QRCodeService
	Assets      service.AssetStore `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCompanyQRService creates the public page QR code service.
func NewCompanyQRService(params CompanyQRServiceParams) usecase.CompanyQRUsecase {
	return &companyQRService{
		companyRepo: params.CompanyRepo,
		qrCode:      params.QRCode,
		assets:      params.Assets,
		baseURL:     params.Config.App.PublicBaseURL,
		logger:      params.Logger,
	}
}

func (srv *companyQRService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompanyQR returns a PNG QR code for the company's public page. Generated images are
// kept in the asset store under qr/{companyID}.png when one is configured.
func (srv *companyQRService) CompanyQR(ctx context.Context, slug string) ([]byte, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domainerrors.ErrMissingResourceID.WrapMessage("slug is required")
	}

	company, err := srv.companyRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound.WrapMessage("slug " + slug)
		}

		return nil, errors.Wrap(err, "failed to find company")
	}

	key := "qr/" + company.ID + ".png"
	if srv.assets != nil {
		png, err := srv.assets.Get(ctx, key)
		switch {
		case err == nil:
			return png, nil
		case !errors.Is(err, service.ErrAssetNotFound):
			srv.log(ctx).Warn("QR asset read failed, regenerating", slog.String("key", key), slog.Any("error", err))
		}
	}

	png, err := srv.qrCode.GeneratePNG(company.PublicURL(srv.baseURL))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	if srv.assets != nil {
		if err := srv.assets.Put(ctx, key, png, qrContentType); err != nil {
			srv.log(ctx).Warn("QR asset write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return png, nil
}
