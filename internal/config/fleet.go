package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"express/internal/domain"
)

// fleetFile is the on-disk roster layout:
//
//	vehicles:
//	  - name: Vehicle01
//	    speed: 100
//	    max_weight: 200
type fleetFile struct {
	Vehicles []domain.VehicleConfig `mapstructure:"vehicles" validate:"required,min=1,unique=Name,dive"`
}

// LoadFleet reads the vehicle roster from path (YAML, JSON or TOML by
// extension). An empty path yields the reference roster.
func LoadFleet(path string) ([]domain.VehicleConfig, error) {
	if path == "" {
		return domain.DefaultFleet(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read fleet config %s: %w", path, err)
	}

	var file fleetFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode fleet config %s: %w", path, err)
	}

	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("invalid fleet config %s: %w", path, err)
	}

	return file.Vehicles, nil
}
