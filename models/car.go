package models

// Fuel types
const (
	FuelPetrol   = "Petrol"
	FuelDiesel   = "Diesel"
	FuelElectric = "Electric"
	FuelHybrid   = "Hybrid"
)

// Transmissions
const (
	TransmissionManual    = "Manual"
	TransmissionAutomatic = "Automatic"
)

// Body types
const (
	BodySedan       = "Sedan"
	BodySUV         = "SUV"
	BodyHatchback   = "Hatchback"
	BodyCoupe       = "Coupe"
	BodyConvertible = "Convertible"
	BodyWagon       = "Wagon"
)

// Dealer is the contact record attached to every listing.
type Dealer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Car is a single catalog listing. The catalog is seeded once at startup and
// never mutated, so Car values are treated as read-only everywhere.
type Car struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Make             string   `json:"make"`
	Model            string   `json:"model"`
	Year             int      `json:"year"`
	Price            int      `json:"price"`
	OriginalPrice    int      `json:"originalPrice,omitempty"` // 0 = no list price
	Mileage          int      `json:"mileage"`
	FuelType         string   `json:"fuelType"`
	Transmission     string   `json:"transmission"`
	BodyType         string   `json:"bodyType"`
	Color            string   `json:"color"`
	Images           []string `json:"images"`
	Featured         bool     `json:"featured"`
	IsNew            bool     `json:"isNew"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Features         []string `json:"features"`
	Condition        string   `json:"condition"`
	Owners           int      `json:"owners"`
	RegistrationYear int      `json:"registrationYear"`
	InsuranceType    string   `json:"insuranceType,omitempty"`
	FuelEfficiency   string   `json:"fuelEfficiency,omitempty"`
	EngineCapacity   string   `json:"engineCapacity,omitempty"`
	Power            string   `json:"power,omitempty"`
	SeatingCapacity  int      `json:"seatingCapacity,omitempty"`
	Dealer           Dealer   `json:"dealer"`
}

// Savings returns the discount against the original list price, or 0 when no
// list price is set or the listing is not discounted.
func (c Car) Savings() int {
	if c.OriginalPrice > c.Price {
		return c.OriginalPrice - c.Price
	}
	return 0
}
