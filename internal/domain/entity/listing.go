package entity

import (
	"time"
)

// ListingImage is one stored image reference on a listing. The first
// element of a listing's Images slice is treated as the main image.
type ListingImage struct {
	UID  string `json:"uid" firestore:"uid"`
	Name string `json:"name" firestore:"name"`
	URL  string `json:"url" firestore:"url"`
}

type Listing struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Model       string  `json:"model" firestore:"model"`
	Year        string  `json:"year" firestore:"year"`
	KM          string  `json:"km" firestore:"km"`
	Price       float64 `json:"price" firestore:"price"`
	City        string  `json:"city" firestore:"city"`
	Phone       string  `json:"phone" firestore:"phone"`
	Description string  `json:"description" firestore:"description"`
	Status      string  `json:"status" firestore:"status"`
	Image       string  `json:"image" firestore:"image"`

	Engine       string `json:"engine,omitempty" firestore:"engine,omitempty"`
	Horsepower   string `json:"horsepower,omitempty" firestore:"horsepower,omitempty"`
	Torque       string `json:"torque,omitempty" firestore:"torque,omitempty"`
	Acceleration string `json:"acceleration,omitempty" firestore:"acceleration,omitempty"`
	TopSpeed     string `json:"topSpeed,omitempty" firestore:"topSpeed,omitempty"`
	Drivetrain   string `json:"drivetrain,omitempty" firestore:"drivetrain,omitempty"`
	Transmission string `json:"transmission,omitempty" firestore:"transmission,omitempty"`
	FuelType     string `json:"fuelType,omitempty" firestore:"fuelType,omitempty"`

	Owner  string         `json:"owner" firestore:"owner"`
	UID    string         `json:"uid" firestore:"uid"`
	Images []ListingImage `json:"images" firestore:"images"`

	Created time.Time `json:"created" firestore:"created"`
}
