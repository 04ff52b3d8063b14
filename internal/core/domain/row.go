package domain

import "encoding/json"

// Output column names, in schema order. The host supplies the subset of
// requested columns; the core always computes the full Row and lets the
// host project via Cell.
const (
	ColHash                   = "hash"
	ColEmail                  = "email"
	ColDisplayName            = "display_name"
	ColProfileURL             = "profile_url"
	ColAvatarURL              = "avatar_url"
	ColAvatarAltText          = "avatar_alt_text"
	ColLocation               = "location"
	ColDescription            = "description"
	ColJobTitle               = "job_title"
	ColCompany                = "company"
	ColPronunciation          = "pronunciation"
	ColPronouns               = "pronouns"
	ColTimezone               = "timezone"
	ColFirstName              = "first_name"
	ColLastName               = "last_name"
	ColIsOrganization         = "is_organization"
	ColNumberVerifiedAccounts = "number_verified_accounts"
	ColLastProfileEdit        = "last_profile_edit"
	ColRegistrationDate       = "registration_date"
	ColVerifiedAccounts       = "verified_accounts"
	ColLanguages              = "languages"
	ColLinks                  = "links"
	ColInterests              = "interests"
	ColPayments               = "payments"
	ColContactInfo            = "contact_info"
	ColJSON                   = "json"
)

// Columns returns the fixed output column set in schema order.
func Columns() []string {
	return []string{
		ColHash, ColEmail, ColDisplayName, ColProfileURL, ColAvatarURL,
		ColAvatarAltText, ColLocation, ColDescription, ColJobTitle,
		ColCompany, ColPronunciation, ColPronouns, ColTimezone,
		ColFirstName, ColLastName, ColIsOrganization,
		ColNumberVerifiedAccounts, ColLastProfileEdit, ColRegistrationDate,
		ColVerifiedAccounts, ColLanguages, ColLinks, ColInterests,
		ColPayments, ColContactInfo, ColJSON,
	}
}

// Row is the fixed output tuple for one profile. Hash and Email are
// always populated, derived locally from the scan context rather than
// from the remote document (the service never echoes the submitted
// address back). Nil pointer and nil RawMessage fields are null columns.
type Row struct {
	Hash  string
	Email string

	DisplayName   *string
	ProfileURL    *string
	AvatarURL     *string
	AvatarAltText *string
	Location      *string
	Description   *string
	JobTitle      *string
	Company       *string
	Pronunciation *string
	Pronouns      *string
	Timezone      *string
	FirstName     *string
	LastName      *string

	IsOrganization         *bool
	NumberVerifiedAccounts *int64

	// Timestamp strings as sent by the service; the host casts them.
	LastProfileEdit  *string
	RegistrationDate *string

	// Nested-field JSON passthrough columns.
	VerifiedAccounts json.RawMessage
	Languages        json.RawMessage
	Links            json.RawMessage
	Interests        json.RawMessage
	Payments         json.RawMessage
	ContactInfo      json.RawMessage

	// Document is the catch-all column: the entire original response
	// document, verbatim.
	Document json.RawMessage
}

// Cell returns the value of the named column for host-side projection.
// Nullable columns report (nil, true) when null. Unknown column names
// report ok=false.
func (r *Row) Cell(name string) (any, bool) {
	switch name {
	case ColHash:
		return r.Hash, true
	case ColEmail:
		return r.Email, true
	case ColDisplayName:
		return strCell(r.DisplayName), true
	case ColProfileURL:
		return strCell(r.ProfileURL), true
	case ColAvatarURL:
		return strCell(r.AvatarURL), true
	case ColAvatarAltText:
		return strCell(r.AvatarAltText), true
	case ColLocation:
		return strCell(r.Location), true
	case ColDescription:
		return strCell(r.Description), true
	case ColJobTitle:
		return strCell(r.JobTitle), true
	case ColCompany:
		return strCell(r.Company), true
	case ColPronunciation:
		return strCell(r.Pronunciation), true
	case ColPronouns:
		return strCell(r.Pronouns), true
	case ColTimezone:
		return strCell(r.Timezone), true
	case ColFirstName:
		return strCell(r.FirstName), true
	case ColLastName:
		return strCell(r.LastName), true
	case ColIsOrganization:
		if r.IsOrganization == nil {
			return nil, true
		}
		return *r.IsOrganization, true
	case ColNumberVerifiedAccounts:
		if r.NumberVerifiedAccounts == nil {
			return nil, true
		}
		return *r.NumberVerifiedAccounts, true
	case ColLastProfileEdit:
		return strCell(r.LastProfileEdit), true
	case ColRegistrationDate:
		return strCell(r.RegistrationDate), true
	case ColVerifiedAccounts:
		return jsonCell(r.VerifiedAccounts), true
	case ColLanguages:
		return jsonCell(r.Languages), true
	case ColLinks:
		return jsonCell(r.Links), true
	case ColInterests:
		return jsonCell(r.Interests), true
	case ColPayments:
		return jsonCell(r.Payments), true
	case ColContactInfo:
		return jsonCell(r.ContactInfo), true
	case ColJSON:
		return jsonCell(r.Document), true
	default:
		return nil, false
	}
}

func strCell(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func jsonCell(m json.RawMessage) any {
	if m == nil {
		return nil
	}
	return m
}
