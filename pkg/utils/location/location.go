// pkg/utils/location/location.go
package location

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// City il, plaka koduyla birlikte
type City struct {
	Plate int    `json:"plate"` // 26 = Eskişehir
	Name  string `json:"name"`
}

//go:embed cities.json
var citiesJSON []byte

var (
	cities []City
	byName map[string]City
)

// Init gömülü il listesini yükler
func Init() error {
	var parsed []City
	if err := json.Unmarshal(citiesJSON, &parsed); err != nil {
		return fmt.Errorf("could not parse city data: %w", err)
	}

	index := make(map[string]City, len(parsed))
	for _, city := range parsed {
		index[city.Name] = city
	}

	cities = parsed
	byName = index
	return nil
}

// GetCities illeri alfabetik sırayla döner
func GetCities() []City {
	return cities
}

// IsKnownCity şehir filtresindeki seçeneklerden biri mi? Karşılaştırma birebirdir.
func IsKnownCity(name string) bool {
	_, ok := byName[name]
	return ok
}
