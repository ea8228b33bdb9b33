// Package model defines the core data types for the EDI publication monitor.
package model

import "time"

// Known platform values produced by the legacy publication pipeline.
// The set is open-ended: rows with platforms outside this list are still
// valid, these are just the values the operator UI offers as filters.
const (
	PlatformEDI         = "EDI"
	PlatformAltaEmpresa = "AltaEmpresa"
	PlatformBajaEmpresa = "BajaEmpresa"
	PlatformAltaUsuario = "AltaUsuario"
)

// KnownPlatforms returns the platform filter choices offered to operators.
// A nil platform filter means "any platform".
func KnownPlatforms() []string {
	return []string{PlatformEDI, PlatformAltaEmpresa, PlatformBajaEmpresa, PlatformAltaUsuario}
}

// Job is one row of the legacy publication job table, joined with the
// denormalized company attributes used for display. IDs are assigned by the
// upstream legacy system and are read-only here.
type Job struct {
	ID              int64     `json:"id"                         db:"id"`
	CreatedAt       time.Time `json:"created_at"                 db:"created_at"`
	Platform        string    `json:"platform"                   db:"platform"`
	Method          string    `json:"method"                     db:"method"`
	RejectionReason *string   `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CompanyID       *int64    `json:"company_id,omitempty"       db:"company_id"`
	CompanyCode     *string   `json:"company_code,omitempty"     db:"company_code"`
	CompanyName     *string   `json:"company_name,omitempty"     db:"company_name"`
	CompanyTaxID    *string   `json:"company_tax_id,omitempty"   db:"company_tax_id"`
}
