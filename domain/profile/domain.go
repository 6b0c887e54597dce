package profile

// Domain represents a measured cognitive ability category
type Domain string

// The fixed set of cognitive domains tracked per session
const (
	DomainAttention         Domain = "attention"
	DomainMemory            Domain = "memory"
	DomainExecutiveFunction Domain = "executiveFunction"
	DomainBehavioral        Domain = "behavioral"
)

// AllDomains returns the fixed domain set in presentation order
func AllDomains() []Domain {
	return []Domain{
		DomainAttention,
		DomainMemory,
		DomainExecutiveFunction,
		DomainBehavioral,
	}
}

// DisplayName returns the clinical label for a domain
func (d Domain) DisplayName() string {
	switch d {
	case DomainAttention:
		return "Attention"
	case DomainMemory:
		return "Memory"
	case DomainExecutiveFunction:
		return "Executive Function"
	case DomainBehavioral:
		return "Behavioral"
	default:
		return string(d)
	}
}

// IsValid reports whether d is one of the fixed cognitive domains
func (d Domain) IsValid() bool {
	switch d {
	case DomainAttention, DomainMemory, DomainExecutiveFunction, DomainBehavioral:
		return true
	}
	return false
}
