package seed

import (
	"webcars/internal/domain/entity"
)

// Listings is the fixed sample set inserted by cmd/seed when the cars
// collection is empty.
func Listings() []*entity.Listing {
	return []*entity.Listing{
		{
			Name:        "Porsche 911 Turbo S",
			Model:       "992",
			Year:        "2024",
			KM:          "2,500 mi",
			Price:       230000,
			City:        "Los Angeles",
			Phone:       "13105550142",
			Description: "The Porsche 911 Turbo S combines breathtaking performance with everyday usability. With its 3.8-liter twin-turbo flat-six engine producing 640 horsepower, this iconic sports car delivers 0-60 mph in just 2.6 seconds.",
			Status:      "New Arrival",
			Image:       "/porsche-911-turbo-s-silver.jpg",

			Engine:       "3.8L Twin-Turbo Flat-6",
			Horsepower:   "640 HP",
			Torque:       "590 lb-ft",
			Acceleration: "2.6s 0-60 mph",
			TopSpeed:     "205 mph",
			Drivetrain:   "All-Wheel Drive",
			Transmission: "8-Speed PDK",
			FuelType:     "Gasoline",

			Images: []entity.ListingImage{
				{Name: "porsche-911-turbo-s-silver", URL: "/porsche-911-turbo-s-silver.jpg"},
				{Name: "porsche-911-interior", URL: "/porsche-911-interior.jpg"},
			},
		},
		{
			Name:        "Mercedes-AMG GT",
			Model:       "C190",
			Year:        "2024",
			KM:          "1,200 mi",
			Price:       165000,
			City:        "Miami",
			Phone:       "13055550197",
			Description: "The Mercedes-AMG GT represents the pinnacle of AMG performance. With its handcrafted 4.0-liter V8 biturbo engine and rear-wheel drive, it delivers an exhilarating driving experience with unmatched luxury.",
			Status:      "Featured",
			Image:       "/mercedes-amg-gt-black.jpg",

			Engine:       "4.0L V8 Biturbo",
			Horsepower:   "469 HP",
			Torque:       "465 lb-ft",
			Acceleration: "3.7s 0-60 mph",
			TopSpeed:     "189 mph",
			Drivetrain:   "Rear-Wheel Drive",
			Transmission: "7-Speed AMG SPEEDSHIFT",
			FuelType:     "Gasoline",

			Images: []entity.ListingImage{
				{Name: "mercedes-amg-gt-black", URL: "/mercedes-amg-gt-black.jpg"},
				{Name: "mercedes-amg-gt-interior", URL: "/mercedes-amg-gt-interior.jpg"},
			},
		},
		{
			Name:        "BMW M4 Competition",
			Model:       "G82",
			Year:        "2024",
			KM:          "3,800 mi",
			Price:       95000,
			City:        "Chicago",
			Phone:       "13125550173",
			Description: "The BMW M4 Competition combines high-performance engineering with everyday practicality. Its 3.0-liter inline-six engine with M TwinPower Turbo technology delivers exceptional power and efficiency.",
			Status:      "Hot Deal",
			Image:       "/bmw-m4-competition-blue.png",

			Engine:       "3.0L Inline-6 TwinPower Turbo",
			Horsepower:   "503 HP",
			Torque:       "479 lb-ft",
			Acceleration: "3.4s 0-60 mph",
			TopSpeed:     "180 mph",
			Drivetrain:   "M xDrive All-Wheel Drive",
			Transmission: "8-Speed M Steptronic",
			FuelType:     "Gasoline",

			Images: []entity.ListingImage{
				{Name: "bmw-m4-competition-blue", URL: "/bmw-m4-competition-blue.png"},
				{Name: "bmw-m4-interior", URL: "/bmw-m4-interior.jpg"},
			},
		},
		{
			Name:        "Audi RS e-tron GT",
			Model:       "F83",
			Year:        "2024",
			KM:          "1,500 mi",
			Price:       145000,
			City:        "Austin",
			Phone:       "15125550118",
			Description: "The Audi RS e-tron GT represents the future of electric performance. With its dual-motor all-wheel drive system and 93.4 kWh battery, it delivers instant torque and impressive range while maintaining Audi's signature luxury.",
			Status:      "New Arrival",
			Image:       "/audi-rs-etron-gt-white.jpg",

			Engine:       "Dual Electric Motors",
			Horsepower:   "590 HP",
			Torque:       "612 lb-ft",
			Acceleration: "3.1s 0-60 mph",
			TopSpeed:     "155 mph",
			Drivetrain:   "All-Wheel Drive",
			Transmission: "Single-Speed Automatic",
			FuelType:     "Electric",

			Images: []entity.ListingImage{
				{Name: "audi-rs-etron-gt-white", URL: "/audi-rs-etron-gt-white.jpg"},
				{Name: "audi-rs-etron-gt-interior", URL: "/audi-rs-etron-gt-interior.jpg"},
			},
		},
	}
}
