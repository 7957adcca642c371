package core

// DatabaseType is the static description of one database product.
// Values are created once at package init and never mutated.
type DatabaseType struct {
	// Name is the human readable product name.
	Name string
	// ShortName is the type code dialects are registered under.
	ShortName string
	// AccessTypes lists the supported ways of connecting.
	AccessTypes []AccessType
	// DefaultPort is the port used when a connection does not name one (0 when not networked).
	DefaultPort int
	// ExtraOptionsHelpURL points at the vendor documentation for URL options.
	ExtraOptionsHelpURL string
}

// SupportsAccessType reports whether the product can be reached with the given access type.
func (d DatabaseType) SupportsAccessType(a AccessType) bool {
	for _, t := range d.AccessTypes {
		if t == a {
			return true
		}
	}
	return false
}
