package data

// DriverNames are suggestions offered on the title screen
var DriverNames = []string{
	"Nova", "Blaze", "Vector", "Echo", "Comet", "Rook", "Jinx", "Orbit",
	"Pulse", "Axel", "Dash", "Rally", "Turbo", "Vixen", "Nitro", "Sable",
	"Flux", "Ghost", "Raven", "Spark", "Talon", "Volt", "Zephyr", "Lynx",
	"James", "Mary", "Robert", "Linda", "Michael", "Sarah", "Daniel", "Emma",
}

// Picker is the subset of *rand.Rand used to choose a name
type Picker interface {
	Intn(n int) int
}

// RandomName returns a suggestion chosen by rng
func RandomName(rng Picker) string {
	return DriverNames[rng.Intn(len(DriverNames))]
}
