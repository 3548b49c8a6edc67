package handler

import (
	"time"

	"pymerp/internal/domain/directory"
	"pymerp/internal/domain/entity"
)

// LocationDTO is a WGS84 coordinate.
type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CompanyListingDTO is a company as shown in the public directory.
type CompanyListingDTO struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Slug             string       `json:"slug"`
	Region           string       `json:"region,omitempty"`
	Province         string       `json:"province,omitempty"`
	Commune          string       `json:"commune,omitempty"`
	Sector           string       `json:"sector,omitempty"`
	CategoryID       string       `json:"categoryId,omitempty"`
	ShortDescription string       `json:"shortDescription,omitempty"`
	WhatsApp         string       `json:"whatsapp,omitempty"`
	Address          string       `json:"address,omitempty"`
	Location         *LocationDTO `json:"location,omitempty"`
	DistanceMeters   *float64     `json:"distanceMeters,omitempty"`
}

func newCompanyListingDTO(c *entity.Company, distance *float64) CompanyListingDTO {
	dto := CompanyListingDTO{
		ID:               c.ID,
		Name:             c.Name,
		Slug:             c.Slug,
		Region:           c.Region,
		Province:         c.Province,
		Commune:          c.Commune,
		Sector:           c.Sector,
		CategoryID:       c.CategoryID,
		ShortDescription: c.ShortDescription,
		WhatsApp:         c.WhatsApp,
		Address:          c.Address,
		DistanceMeters:   distance,
	}
	if c.Location != nil {
		dto.Location = &LocationDTO{Lat: c.Location.Lat, Lng: c.Location.Lng}
	}

	return dto
}

func newListingDTOs(listings []directory.Listing) []CompanyListingDTO {
	out := make([]CompanyListingDTO, 0, len(listings))
	for _, l := range listings {
		out = append(out, newCompanyListingDTO(l.Company, l.DistanceMeters))
	}

	return out
}

// CommuneGroupDTO is a commune with its public companies.
type CommuneGroupDTO struct {
	Name      string              `json:"name"`
	Key       string              `json:"key"`
	Companies []CompanyListingDTO `json:"companies"`
}

func newCommuneGroupDTOs(groups []directory.CommuneGroup) []CommuneGroupDTO {
	out := make([]CommuneGroupDTO, 0, len(groups))
	for _, g := range groups {
		companies := make([]CompanyListingDTO, 0, len(g.Companies))
		for _, c := range g.Companies {
			companies = append(companies, newCompanyListingDTO(c, nil))
		}
		out = append(out, CommuneGroupDTO{Name: g.Name, Key: g.Key, Companies: companies})
	}

	return out
}

// AccessRequestDTO is an access request as seen by operators.
type AccessRequestDTO struct {
	ID                string     `json:"id"`
	FullName          string     `json:"fullName"`
	Email             string     `json:"email"`
	BusinessName      string     `json:"businessName"`
	WhatsApp          string     `json:"whatsapp"`
	Plan              string     `json:"plan"`
	Status            string     `json:"status"`
	Language          string     `json:"language,omitempty"`
	RejectionReason   string     `json:"rejectionReason,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	ProcessedAt       *time.Time `json:"processedAt,omitempty"`
	LastPasswordReset *time.Time `json:"lastPasswordReset,omitempty"`
}

func newAccessRequestDTO(r *entity.AccessRequest) AccessRequestDTO {
	return AccessRequestDTO{
		ID:                r.ID,
		FullName:          r.FullName,
		Email:             r.Email,
		BusinessName:      r.BusinessName,
		WhatsApp:          r.WhatsApp,
		Plan:              string(r.Plan),
		Status:            string(r.Status),
		Language:          r.Language,
		RejectionReason:   r.RejectionReason,
		CreatedAt:         r.CreatedAt,
		ProcessedAt:       r.ProcessedAt,
		LastPasswordReset: r.LastPasswordReset,
	}
}

// UserDTO is the caller's user record.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	Role      string `json:"role"`
	CompanyID string `json:"companyId,omitempty"`
}

func newUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Status:    string(u.Status),
		Role:      u.Role.String(),
		CompanyID: u.CompanyID,
	}
}
