package catalog

import "github.com/Mhd-Shakir/carlet/models"

var defaultDealer = models.Dealer{
	Name:    "CarLet by True Choice",
	Phone:   "+44 20 1234 5678",
	Email:   "info@carlet.co.uk",
	Address: "42 Kingsway, London WC2B 6EX",
}

// Seed returns the catalog dataset. There is no database behind the site;
// this slice is the whole inventory and is treated as immutable.
func Seed() []models.Car {
	return []models.Car{
		{
			ID:               "1",
			Title:            "BMW 3 Series 320d M Sport",
			Make:             "BMW",
			Model:            "3 Series",
			Year:             2022,
			Price:            28500,
			OriginalPrice:    31000,
			Mileage:          18500,
			FuelType:         models.FuelDiesel,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodySedan,
			Color:            "Alpine White",
			Images:           []string{"https://images.unsplash.com/photo-1555215695-3004980ad54e", "https://images.unsplash.com/photo-1520050206274-a1ae44613e6d"},
			Featured:         true,
			IsNew:            false,
			Location:         "London",
			Description:      "One-owner 320d M Sport with full BMW service history, heated seats and adaptive cruise control.",
			Features:         []string{"Heated Seats", "Adaptive Cruise Control", "Parking Sensors", "Apple CarPlay"},
			Condition:        "Excellent",
			Owners:           1,
			RegistrationYear: 2022,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "55 mpg",
			EngineCapacity:   "2.0L",
			Power:            "190 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "2",
			Title:            "Audi Q5 40 TDI Quattro S Line",
			Make:             "Audi",
			Model:            "Q5",
			Year:             2021,
			Price:            34900,
			Mileage:          26400,
			FuelType:         models.FuelDiesel,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodySUV,
			Color:            "Daytona Grey",
			Images:           []string{"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6"},
			Featured:         true,
			IsNew:            false,
			Location:         "Manchester",
			Description:      "Quattro all-wheel drive S Line with virtual cockpit, panoramic roof and electric tailgate.",
			Features:         []string{"Quattro AWD", "Virtual Cockpit", "Panoramic Roof", "Electric Tailgate"},
			Condition:        "Excellent",
			Owners:           1,
			RegistrationYear: 2021,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "44 mpg",
			EngineCapacity:   "2.0L",
			Power:            "204 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "3",
			Title:            "Tesla Model 3 Long Range",
			Make:             "Tesla",
			Model:            "Model 3",
			Year:             2023,
			Price:            36800,
			OriginalPrice:    39500,
			Mileage:          9800,
			FuelType:         models.FuelElectric,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodySedan,
			Color:            "Pearl White",
			Images:           []string{"https://images.unsplash.com/photo-1560958089-b8a1929cea89"},
			Featured:         true,
			IsNew:            true,
			Location:         "Birmingham",
			Description:      "Long Range dual motor with Autopilot, premium interior and 350+ miles of range.",
			Features:         []string{"Autopilot", "Dual Motor AWD", "Premium Audio", "Glass Roof"},
			Condition:        "Excellent",
			Owners:           1,
			RegistrationYear: 2023,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "4.1 mi/kWh",
			Power:            "434 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "4",
			Title:            "Volkswagen Golf GTI",
			Make:             "Volkswagen",
			Model:            "Golf",
			Year:             2020,
			Price:            23500,
			Mileage:          31200,
			FuelType:         models.FuelPetrol,
			Transmission:     models.TransmissionManual,
			BodyType:         models.BodyHatchback,
			Color:            "Tornado Red",
			Images:           []string{"https://images.unsplash.com/photo-1589148938909-4d241c91ba52"},
			Featured:         false,
			IsNew:            false,
			Location:         "Leeds",
			Description:      "Enthusiast-owned GTI with honeycomb trim, digital cockpit and recent cambelt service.",
			Features:         []string{"Sports Seats", "Digital Cockpit", "LED Headlights"},
			Condition:        "Good",
			Owners:           2,
			RegistrationYear: 2020,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "38 mpg",
			EngineCapacity:   "2.0L",
			Power:            "245 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "5",
			Title:            "Mercedes GLC 300 AMG Line",
			Make:             "Mercedes",
			Model:            "GLC",
			Year:             2022,
			Price:            41200,
			OriginalPrice:    44000,
			Mileage:          14100,
			FuelType:         models.FuelHybrid,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodySUV,
			Color:            "Obsidian Black",
			Images:           []string{"https://images.unsplash.com/photo-1617469767053-d3b523a0b982"},
			Featured:         true,
			IsNew:            false,
			Location:         "London",
			Description:      "Mild-hybrid GLC 300 AMG Line with Burmester audio, 360 camera and keyless go.",
			Features:         []string{"Burmester Audio", "360 Camera", "Keyless Go", "AMG Styling"},
			Condition:        "Excellent",
			Owners:           1,
			RegistrationYear: 2022,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "40 mpg",
			EngineCapacity:   "2.0L",
			Power:            "258 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "6",
			Title:            "Toyota Corolla 1.8 Hybrid Icon",
			Make:             "Toyota",
			Model:            "Corolla",
			Year:             2021,
			Price:            19800,
			Mileage:          22900,
			FuelType:         models.FuelHybrid,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodyHatchback,
			Color:            "Silver",
			Images:           []string{"https://images.unsplash.com/photo-1623869675781-80aa31012a5a"},
			Featured:         false,
			IsNew:            false,
			Location:         "Bristol",
			Description:      "Self-charging hybrid with Toyota Safety Sense, reversing camera and balance of warranty.",
			Features:         []string{"Safety Sense", "Reversing Camera", "Adaptive Cruise Control"},
			Condition:        "Excellent",
			Owners:           1,
			RegistrationYear: 2021,
			InsuranceType:    "Third Party",
			FuelEfficiency:   "62 mpg",
			EngineCapacity:   "1.8L",
			Power:            "122 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "7",
			Title:            "Ford Mustang 5.0 V8 GT Fastback",
			Make:             "Ford",
			Model:            "Mustang",
			Year:             2019,
			Price:            33900,
			Mileage:          28700,
			FuelType:         models.FuelPetrol,
			Transmission:     models.TransmissionManual,
			BodyType:         models.BodyCoupe,
			Color:            "Race Red",
			Images:           []string{"https://images.unsplash.com/photo-1584345604476-8ec5e12e42dd"},
			Featured:         true,
			IsNew:            false,
			Location:         "Glasgow",
			Description:      "Naturally aspirated 5.0 V8 GT with active exhaust, Recaro seats and custom pack.",
			Features:         []string{"Active Exhaust", "Recaro Seats", "Launch Control"},
			Condition:        "Good",
			Owners:           2,
			RegistrationYear: 2019,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "25 mpg",
			EngineCapacity:   "5.0L",
			Power:            "450 bhp",
			SeatingCapacity:  4,
			Dealer:           defaultDealer,
		},
		{
			ID:               "8",
			Title:            "Nissan Qashqai 1.3 DiG-T Tekna",
			Make:             "Nissan",
			Model:            "Qashqai",
			Year:             2020,
			Price:            17400,
			Mileage:          35600,
			FuelType:         models.FuelPetrol,
			Transmission:     models.TransmissionManual,
			BodyType:         models.BodySUV,
			Color:            "Gun Metallic",
			Images:           []string{"https://images.unsplash.com/photo-1609521263047-f8f205293f24"},
			Featured:         false,
			IsNew:            false,
			Location:         "Liverpool",
			Description:      "Tekna grade with ProPilot assist, panoramic roof and around-view monitor.",
			Features:         []string{"ProPilot", "Panoramic Roof", "Around View Monitor"},
			Condition:        "Good",
			Owners:           1,
			RegistrationYear: 2020,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "44 mpg",
			EngineCapacity:   "1.3L",
			Power:            "158 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "9",
			Title:            "Honda Civic 1.5 VTEC Turbo Sport",
			Make:             "Honda",
			Model:            "Civic",
			Year:             2019,
			Price:            16900,
			Mileage:          41200,
			FuelType:         models.FuelPetrol,
			Transmission:     models.TransmissionManual,
			BodyType:         models.BodyHatchback,
			Color:            "Sonic Grey",
			Images:           []string{"https://images.unsplash.com/photo-1605559424843-9e4c228bf1c2"},
			Featured:         false,
			IsNew:            false,
			Location:         "Sheffield",
			Description:      "Sport trim VTEC Turbo with full service history and two keys.",
			Features:         []string{"Honda Sensing", "Sports Suspension", "Dual-Zone Climate"},
			Condition:        "Good",
			Owners:           2,
			RegistrationYear: 2019,
			InsuranceType:    "Third Party",
			FuelEfficiency:   "46 mpg",
			EngineCapacity:   "1.5L",
			Power:            "182 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "10",
			Title:            "BMW X5 xDrive40i M Sport",
			Make:             "BMW",
			Model:            "X5",
			Year:             2021,
			Price:            52800,
			OriginalPrice:    56500,
			Mileage:          19800,
			FuelType:         models.FuelPetrol,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodySUV,
			Color:            "Carbon Black",
			Images:           []string{"https://images.unsplash.com/photo-1556189250-72ba954cfc2b"},
			Featured:         true,
			IsNew:            false,
			Location:         "London",
			Description:      "xDrive40i with seven seats, laser lights, air suspension and towing pack.",
			Features:         []string{"7 Seats", "Laser Lights", "Air Suspension", "Tow Bar"},
			Condition:        "Excellent",
			Owners:           1,
			RegistrationYear: 2021,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "29 mpg",
			EngineCapacity:   "3.0L",
			Power:            "340 bhp",
			SeatingCapacity:  7,
			Dealer:           defaultDealer,
		},
		{
			ID:               "11",
			Title:            "Audi A3 35 TFSI S Line Cabriolet",
			Make:             "Audi",
			Model:            "A3",
			Year:             2018,
			Price:            18700,
			Mileage:          38900,
			FuelType:         models.FuelPetrol,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodyConvertible,
			Color:            "Navarra Blue",
			Images:           []string{"https://images.unsplash.com/photo-1502877338535-766e1452684a"},
			Featured:         false,
			IsNew:            false,
			Location:         "Brighton",
			Description:      "S Line cabriolet with electric acoustic hood, heated seats and S tronic gearbox.",
			Features:         []string{"Acoustic Hood", "Heated Seats", "S Tronic"},
			Condition:        "Good",
			Owners:           3,
			RegistrationYear: 2018,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "42 mpg",
			EngineCapacity:   "1.5L",
			Power:            "150 bhp",
			SeatingCapacity:  4,
			Dealer:           defaultDealer,
		},
		{
			ID:               "12",
			Title:            "Volkswagen Passat Estate 2.0 TDI SEL",
			Make:             "Volkswagen",
			Model:            "Passat",
			Year:             2019,
			Price:            15900,
			Mileage:          52300,
			FuelType:         models.FuelDiesel,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodyWagon,
			Color:            "Atlantic Blue",
			Images:           []string{"https://images.unsplash.com/photo-1541899481282-d53bffe3c35d"},
			Featured:         false,
			IsNew:            false,
			Location:         "Cardiff",
			Description:      "SEL estate with ergoComfort seats, Discover Navigation and huge boot.",
			Features:         []string{"Navigation", "ergoComfort Seats", "Roof Rails"},
			Condition:        "Good",
			Owners:           2,
			RegistrationYear: 2019,
			InsuranceType:    "Third Party",
			FuelEfficiency:   "54 mpg",
			EngineCapacity:   "2.0L",
			Power:            "150 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "13",
			Title:            "Toyota RAV4 2.5 Hybrid Excel AWD",
			Make:             "Toyota",
			Model:            "RAV4",
			Year:             2022,
			Price:            31500,
			Mileage:          16700,
			FuelType:         models.FuelHybrid,
			Transmission:     models.TransmissionAutomatic,
			BodyType:         models.BodySUV,
			Color:            "Urban Khaki",
			Images:           []string{"https://images.unsplash.com/photo-1633867179970-c37b75a748dc"},
			Featured:         false,
			IsNew:            true,
			Location:         "Newcastle",
			Description:      "AWD Excel hybrid with JBL audio, digital rear-view mirror and heated everything.",
			Features:         []string{"JBL Audio", "AWD", "Heated Steering Wheel"},
			Condition:        "Excellent",
			Owners:           1,
			RegistrationYear: 2022,
			InsuranceType:    "Comprehensive",
			FuelEfficiency:   "48 mpg",
			EngineCapacity:   "2.5L",
			Power:            "219 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
		{
			ID:               "14",
			Title:            "Ford Fiesta 1.0 EcoBoost ST-Line",
			Make:             "Ford",
			Model:            "Fiesta",
			Year:             2020,
			Price:            12400,
			Mileage:          29400,
			FuelType:         models.FuelPetrol,
			Transmission:     models.TransmissionManual,
			BodyType:         models.BodyHatchback,
			Color:            "Magnetic Grey",
			Images:           []string{"https://images.unsplash.com/photo-1551830820-330a71b99659"},
			Featured:         false,
			IsNew:            false,
			Location:         "Nottingham",
			Description:      "ST-Line EcoBoost, ideal first car with low insurance group and B&O sound.",
			Features:         []string{"B&O Audio", "Sync 3", "Lane Keep Assist"},
			Condition:        "Good",
			Owners:           1,
			RegistrationYear: 2020,
			InsuranceType:    "Third Party",
			FuelEfficiency:   "52 mpg",
			EngineCapacity:   "1.0L",
			Power:            "125 bhp",
			SeatingCapacity:  5,
			Dealer:           defaultDealer,
		},
	}
}
