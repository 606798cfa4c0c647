package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alejandrodnm/montecarlo/internal/application/simulation"
	"github.com/alejandrodnm/montecarlo/internal/domain"
)

// DefaultPath es la ruta del archivo de configuración si no se pasa -config.
const DefaultPath = "config/config.yaml"

// Config es la configuración completa del simulador.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	OptionA    OptionConfig     `yaml:"option_a" envPrefix:"MC_OPTION_A_"`
	OptionB    OptionConfig     `yaml:"option_b" envPrefix:"MC_OPTION_B_"`
	Utility    UtilityConfig    `yaml:"utility"`
	Plot       PlotConfig       `yaml:"plot"`
	Report     ReportConfig     `yaml:"report"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig controla el tamaño y la reproducibilidad del run.
type SimulationConfig struct {
	Count    int    `yaml:"count" env:"MC_SIMULATION_COUNT"`
	Seed     uint64 `yaml:"seed" env:"MC_SEED"` // 0 = semilla derivada del reloj
	Parallel bool   `yaml:"parallel" env:"MC_PARALLEL"`
}

// OptionConfig describe la distribución normal asumida para una opción.
type OptionConfig struct {
	Label  string  `yaml:"label" env:"LABEL"`
	Mean   float64 `yaml:"mean" env:"MEAN"`
	StdDev float64 `yaml:"std_dev" env:"STD_DEV"`
}

// UtilityConfig controla el análisis de log-utilidad.
type UtilityConfig struct {
	Epsilon float64 `yaml:"epsilon" env:"MC_UTILITY_EPSILON"` // piso antes de log(); debe ser > 0
}

// PlotConfig controla el histograma.
type PlotConfig struct {
	Enabled *bool  `yaml:"enabled" env:"MC_PLOT_ENABLED"` // nil = default (true)
	Path    string `yaml:"path" env:"MC_PLOT_PATH"`
	Bins    int    `yaml:"bins" env:"MC_PLOT_BINS"`
}

// ReportConfig controla el formato del reporte en consola.
type ReportConfig struct {
	Table *bool `yaml:"table" env:"MC_REPORT_TABLE"` // nil = default (true)
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // debug | info | warn | error
	Format string `yaml:"format" env:"LOG_FORMAT"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Las variables de entorno sobreescriben los valores del YAML.
// Si path es DefaultPath y el archivo no existe se usan los defaults.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		// sin archivo: defaults + env
	default:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config.Load: parse env: %w", err)
	}
	return nil
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
// Una opción sin ningún campo toma el perfil por defecto completo; std_dev = 0
// explícito es una opción degenerada válida.
func setDefaults(cfg *Config) {
	if cfg.Simulation.Count == 0 {
		cfg.Simulation.Count = simulation.DefaultCount
	}
	cfg.OptionA = optionDefaults(cfg.OptionA, simulation.DefaultOptionA)
	cfg.OptionB = optionDefaults(cfg.OptionB, simulation.DefaultOptionB)
	if cfg.Utility.Epsilon == 0 {
		cfg.Utility.Epsilon = simulation.DefaultEpsilon
	}
	if cfg.Plot.Enabled == nil {
		cfg.Plot.Enabled = boolPtr(true)
	}
	if cfg.Plot.Path == "" {
		cfg.Plot.Path = "monte_carlo_simulation_plot.png"
	}
	if cfg.Plot.Bins == 0 {
		cfg.Plot.Bins = 50
	}
	if cfg.Report.Table == nil {
		cfg.Report.Table = boolPtr(true)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func optionDefaults(o OptionConfig, def domain.OptionProfile) OptionConfig {
	if o == (OptionConfig{}) {
		return OptionConfig{Label: def.Label, Mean: def.Mean, StdDev: def.StdDev}
	}
	if o.Label == "" {
		o.Label = def.Label
	}
	return o
}

// Validate devuelve un error envuelto en domain.ErrInvalidParameter si algún
// valor es inutilizable.
func (c *Config) Validate() error {
	if c.Simulation.Count <= 0 {
		return fmt.Errorf("config: %w: simulation.count %d must be > 0", domain.ErrInvalidParameter, c.Simulation.Count)
	}
	if err := c.OptionA.Profile().Validate(); err != nil {
		return fmt.Errorf("config: option_a: %w", err)
	}
	if err := c.OptionB.Profile().Validate(); err != nil {
		return fmt.Errorf("config: option_b: %w", err)
	}
	if math.IsNaN(c.Utility.Epsilon) || c.Utility.Epsilon <= 0 {
		return fmt.Errorf("config: %w: utility.epsilon %v must be > 0", domain.ErrInvalidParameter, c.Utility.Epsilon)
	}
	if c.Plot.Bins <= 0 {
		return fmt.Errorf("config: %w: plot.bins %d must be > 0", domain.ErrInvalidParameter, c.Plot.Bins)
	}
	return nil
}

// Profile convierte la opción al tipo de dominio.
func (o OptionConfig) Profile() domain.OptionProfile {
	return domain.OptionProfile{Label: o.Label, Mean: o.Mean, StdDev: o.StdDev}
}

// PlotEnabled devuelve si el histograma está habilitado.
func (c *Config) PlotEnabled() bool {
	return c.Plot.Enabled == nil || *c.Plot.Enabled
}

// ReportTable devuelve si el reporte usa el modo tabla completo.
func (c *Config) ReportTable() bool {
	return c.Report.Table == nil || *c.Report.Table
}

// EngineConfig construye la configuración del engine.
func (c *Config) EngineConfig() simulation.Config {
	return simulation.Config{
		Count:    c.Simulation.Count,
		OptionA:  c.OptionA.Profile(),
		OptionB:  c.OptionB.Profile(),
		Epsilon:  c.Utility.Epsilon,
		Seed:     c.Simulation.Seed,
		Parallel: c.Simulation.Parallel,
	}
}

// PlotSettings construye la configuración del plot para el Runner.
func (c *Config) PlotSettings() simulation.PlotConfig {
	return simulation.PlotConfig{
		Enabled: c.PlotEnabled(),
		Path:    c.Plot.Path,
		Bins:    c.Plot.Bins,
	}
}

func boolPtr(b bool) *bool { return &b }
