package entities

// OrgType is the kind of organization a caller acts for.
type OrgType string

const (
	OrgTypeVendor  OrgType = "vendor"
	OrgTypeCompany OrgType = "company"
)

func (t OrgType) IsValid() bool {
	return t == OrgTypeVendor || t == OrgTypeCompany
}

// Caller is the authenticated identity supplied by the session layer.
type Caller struct {
	UserID  string
	OrgID   string
	OrgType OrgType
}

func (c Caller) IsVendor() bool  { return c.OrgType == OrgTypeVendor }
func (c Caller) IsCompany() bool { return c.OrgType == OrgTypeCompany }

// CatalogItem is the slice of a catalog entry the settlement core reads.
type CatalogItem struct {
	ID      string `json:"id"`
	Price   int64  `json:"price"`
	OwnerID string `json:"owner_id"`
}
