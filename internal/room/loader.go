package room

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"room-booking/internal/model"
)

// fileConfig mirrors the rooms file:
//
//	buildings:
//	  sf_commons:
//	    address: "123 Market St, San Francisco, CA"
//	    coordinates: {lat: 37.79, lon: -122.39}
//	    rooms:
//	      - name: "Hogwarts Hall"
//	        description: "Main hall"
//	        conflicts: ["Gryffindor", "Slytherin"]
type fileConfig struct {
	Buildings map[string]buildingConfig `mapstructure:"buildings"`
}

type buildingConfig struct {
	Address     string `mapstructure:"address"`
	Coordinates struct {
		Lat float64 `mapstructure:"lat"`
		Lon float64 `mapstructure:"lon"`
	} `mapstructure:"coordinates"`
	Rooms []roomConfig `mapstructure:"rooms"`
}

type roomConfig struct {
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Conflicts   []string `mapstructure:"conflicts"`
}

// LoadFile reads a YAML or JSON rooms file and builds a Registry.
// Building ids are sorted so the registry order does not depend on map iteration.
func LoadFile(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rooms file %q: %w", path, err)
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode rooms file %q: %w", path, err)
	}
	if len(cfg.Buildings) == 0 {
		return nil, ErrNoBuildings
	}

	ids := make([]string, 0, len(cfg.Buildings))
	for id := range cfg.Buildings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	buildings := make([]model.Building, 0, len(ids))
	for _, id := range ids {
		bc := cfg.Buildings[id]
		b := model.Building{
			ID:        id,
			Address:   bc.Address,
			Latitude:  bc.Coordinates.Lat,
			Longitude: bc.Coordinates.Lon,
		}
		for _, rc := range bc.Rooms {
			b.Rooms = append(b.Rooms, model.Room{
				Name:          rc.Name,
				Description:   rc.Description,
				ConflictsWith: rc.Conflicts,
			})
		}
		buildings = append(buildings, b)
	}

	return New(buildings)
}
