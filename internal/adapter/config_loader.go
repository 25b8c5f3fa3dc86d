package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/scramble/internal/model"
)

// DefaultConfigFile is looked up in the working directory when no --config is given.
const DefaultConfigFile = ".scramble.yaml"

// settingsValidate carries the custom "glob" and "stage" rules used by m.Settings.
var settingsValidate *validator.Validate

func init() {
	settingsValidate = validator.New()

	_ = settingsValidate.RegisterValidation("glob", validateGlob)
	_ = settingsValidate.RegisterValidation("stage", validateStage)
}

func validateGlob(fl validator.FieldLevel) bool {
	return doublestar.ValidatePattern(fl.Field().String())
}

func validateStage(fl validator.FieldLevel) bool {
	return m.IsKnownStage(m.StageName(fl.Field().String()))
}

// ConfigLoader reads settings from a config file.
type ConfigLoader interface {
	// Load overlays the file at path onto m.DefaultSettings. A missing file is
	// an error only when required is set.
	Load(path m.Path, required bool) (m.Settings, error)
}

// YAMLConfigLoader loads .scramble.yaml files.
type YAMLConfigLoader struct{}

// NewYAMLConfigLoader constructs a YAMLConfigLoader.
func NewYAMLConfigLoader() *YAMLConfigLoader {
	return &YAMLConfigLoader{}
}

// Load implements ConfigLoader.
func (l *YAMLConfigLoader) Load(path m.Path, required bool) (m.Settings, error) {
	settings := m.DefaultSettings()

	// #nosec G304 - config path is chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) && !required {
			return settings, nil
		}

		return m.Settings{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return m.Settings{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := ValidateSettings(settings); err != nil {
		return m.Settings{}, fmt.Errorf("config %s: %w", path, err)
	}

	return settings, nil
}

// ValidateSettings checks settings against their validate tags. The chaos
// level is not validated because it is always clamped.
func ValidateSettings(settings m.Settings) error {
	if err := settingsValidate.Struct(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}
