package entity

import (
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the number of characters of stored company geohashes.
const GeohashPrecision = 10

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Company is a tenant: one customer business account. Records owned by a tenant
// carry its ID as company_id.
type Company struct {
	ID               string
	OwnerUserID      string
	Name             string
	RUT              string
	Industry         string
	WhatsApp         string
	Address          string
	Slug             string // Derived from the name, not guaranteed unique.
	SetupCompleted   bool   // Flips true only when the setup wizard finishes.
	SubscriptionPlan Plan
	Schedule         Schedule // Business hours, optional.

	// Public directory fields
	IsPublic         bool
	Region           string
	Province         string
	Commune          string
	Sector           string
	CategoryID       string
	ShortDescription string
	Description      string
	Location         *GeoPoint
	Geohash          string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeGeohash encodes the company location. Returns "" when the location is unknown.
func (c *Company) ComputeGeohash() string {
	if c.Location == nil {
		return ""
	}

	return geohash.EncodeWithPrecision(c.Location.Lat, c.Location.Lng, GeohashPrecision)
}

// PublicURL is the address of the company's public page under baseURL.
func (c *Company) PublicURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + c.Slug
}

// ResourceKind distinguishes the bookable things a company publishes.
type ResourceKind string

const (
	ResourceService      ResourceKind = "service"
	ResourceProfessional ResourceKind = "professional"
)

// Resource is a bookable service or professional belonging to a company.
type Resource struct {
	ID        string
	Kind      ResourceKind
	CompanyID string
	Name      string
	Schedule  Schedule
	UpdatedAt time.Time
}
