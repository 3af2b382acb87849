package domain

type ShieldingMaterial string

const (
	ShieldingNone         ShieldingMaterial = "none"
	ShieldingAluminum     ShieldingMaterial = "aluminum"
	ShieldingPolyethylene ShieldingMaterial = "polyethylene"
)

type Location string

const (
	LocationSeaLevel Location = "sea_level"
	LocationAirplane Location = "airplane"
	LocationISSOrbit Location = "iss_orbit"
)

type FluxSource string

const (
	FluxLive     FluxSource = "live"
	FluxFallback FluxSource = "fallback"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type RiskBand string

const (
	RiskSafe     RiskBand = "safe"
	RiskElevated RiskBand = "elevated"
)

// ValidShieldingMaterials is the canonical set of accepted shielding material strings.
var ValidShieldingMaterials = map[string]bool{
	"none": true, "aluminum": true, "polyethylene": true,
}

// ValidLocations is the canonical set of accepted mission environment strings.
var ValidLocations = map[string]bool{
	"sea_level": true, "airplane": true, "iss_orbit": true,
}

// ValidSexes is the canonical set of accepted sex strings.
var ValidSexes = map[string]bool{
	"male": true, "female": true,
}

// Label returns the display name for a shielding material.
func (m ShieldingMaterial) Label() string {
	switch m {
	case ShieldingNone:
		return "None"
	case ShieldingAluminum:
		return "Aluminum"
	case ShieldingPolyethylene:
		return "Polyethylene"
	default:
		return string(m)
	}
}

// Label returns the display name for a mission environment.
func (l Location) Label() string {
	switch l {
	case LocationSeaLevel:
		return "Sea Level"
	case LocationAirplane:
		return "Airplane (~10 km)"
	case LocationISSOrbit:
		return "ISS Orbit (~400 km)"
	default:
		return string(l)
	}
}

// Label returns the display name for a sex.
func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return string(s)
	}
}
