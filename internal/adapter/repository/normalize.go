package repository

import (
	"fmt"
	"strconv"
	"time"

	"webcars/internal/domain/entity"
)

const (
	defaultName      = "Unknown Car"
	defaultStatus    = "Available"
	defaultMileage   = "N/A"
	placeholderImage = "/placeholder.svg"
)

// docToListing converts one raw Firestore document into the canonical
// listing shape. Documents written by older clients carry inconsistent
// field types (price as string or number, year as number), so every
// read path goes through this single chokepoint.
func docToListing(id string, data map[string]interface{}) *entity.Listing {
	l := &entity.Listing{
		ID:          id,
		Name:        stringField(data, "name"),
		Model:       stringField(data, "model"),
		Year:        stringField(data, "year"),
		KM:          stringField(data, "km"),
		Price:       numberField(data, "price"),
		City:        stringField(data, "city"),
		Phone:       stringField(data, "phone"),
		Description: stringField(data, "description"),
		Status:      stringField(data, "status"),
		Image:       stringField(data, "image"),

		Engine:       stringField(data, "engine"),
		Horsepower:   stringField(data, "horsepower"),
		Torque:       stringField(data, "torque"),
		Acceleration: stringField(data, "acceleration"),
		TopSpeed:     stringField(data, "topSpeed"),
		Drivetrain:   stringField(data, "drivetrain"),
		Transmission: stringField(data, "transmission"),
		FuelType:     stringField(data, "fuelType"),

		Owner:   stringField(data, "owner"),
		UID:     stringField(data, "uid"),
		Images:  imagesField(data),
		Created: timeField(data, "created"),
	}

	if l.KM == "" {
		l.KM = stringField(data, "mileage")
	}

	normalizeListing(l)
	return l
}

// normalizeListing fills the stated defaults for absent fields. Applying
// it twice yields the same listing as applying it once.
func normalizeListing(l *entity.Listing) {
	if l.Name == "" {
		l.Name = defaultName
	}
	if l.Status == "" {
		l.Status = defaultStatus
	}
	if l.KM == "" {
		l.KM = defaultMileage
	}
	if l.Images == nil {
		l.Images = []entity.ListingImage{}
	}
	if l.Image == "" {
		if len(l.Images) > 0 {
			l.Image = l.Images[0].URL
		} else {
			l.Image = placeholderImage
		}
	}
}

func stringField(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func numberField(data map[string]interface{}, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func timeField(data map[string]interface{}, key string) time.Time {
	if t, ok := data[key].(time.Time); ok {
		return t
	}
	return time.Time{}
}

func imagesField(data map[string]interface{}) []entity.ListingImage {
	raw, ok := data["images"].([]interface{})
	if !ok {
		return nil
	}

	images := make([]entity.ListingImage, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		images = append(images, entity.ListingImage{
			UID:  stringField(m, "uid"),
			Name: stringField(m, "name"),
			URL:  stringField(m, "url"),
		})
	}
	return images
}
