package gravatar

import (
	"github.com/custodia-labs/gravatar-fdw/internal/core/domain"
)

// MapProfile converts a fetched document into the fixed row shape.
// Returns nil for a nil document (profile absent).
//
// Scalar fields copy 1:1 into typed columns, with absent fields becoming
// null rather than errors. Nested object and list fields pass through as
// JSON columns. Hash and email come from the scan context, not from the
// document: the service never echoes the submitted address back. The
// catch-all column holds the full original document so no field is ever
// lost, even when the fixed column set lags the upstream schema.
func MapProfile(doc *domain.ProfileDocument, key domain.LookupKey, hash string) *domain.Row {
	if doc == nil {
		return nil
	}

	return &domain.Row{
		Hash:  hash,
		Email: string(key),

		DisplayName:   doc.String("display_name"),
		ProfileURL:    doc.String("profile_url"),
		AvatarURL:     doc.String("avatar_url"),
		AvatarAltText: doc.String("avatar_alt_text"),
		Location:      doc.String("location"),
		Description:   doc.String("description"),
		JobTitle:      doc.String("job_title"),
		Company:       doc.String("company"),
		Pronunciation: doc.String("pronunciation"),
		Pronouns:      doc.String("pronouns"),
		Timezone:      doc.String("timezone"),
		FirstName:     doc.String("first_name"),
		LastName:      doc.String("last_name"),

		IsOrganization:         doc.Bool("is_organization"),
		NumberVerifiedAccounts: doc.Int64("number_verified_accounts"),

		LastProfileEdit:  doc.String("last_profile_edit"),
		RegistrationDate: doc.String("registration_date"),

		VerifiedAccounts: doc.JSON("verified_accounts"),
		Languages:        doc.JSON("languages"),
		Links:            doc.JSON("links"),
		Interests:        doc.JSON("interests"),
		Payments:         doc.JSON("payments"),
		ContactInfo:      doc.JSON("contact_info"),

		Document: doc.Raw(),
	}
}
