package store

// OrganizationProfile is an organization section of the profiles INI file.
type OrganizationProfile struct {
	Name           string
	Sector         string
	Size           string
	Budget         string
	Maturity       string
	Infrastructure []string
	AnnualRevenue  *float64
}
