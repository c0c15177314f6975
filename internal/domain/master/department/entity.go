package department

// Fixed enumeration the department set is seeded from. The set itself is
// free text and grows at runtime via admin additions.
const (
	Cardiology     = "Cardiology"
	Neurology      = "Neurology"
	Pediatrics     = "Pediatrics"
	Emergency      = "Emergency"
	Administration = "Administration"
	Nursing        = "Nursing"
	Laboratory     = "Laboratory"
)

// Defaults returns the seed enumeration in display order.
func Defaults() []string {
	return []string{
		Cardiology,
		Neurology,
		Pediatrics,
		Emergency,
		Administration,
		Nursing,
		Laboratory,
	}
}
