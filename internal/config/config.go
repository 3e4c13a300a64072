// Package config defines the data structures related to configuration and
// includes functions for loading, normalizing and validating it.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/production-optimizer/pkg/constants"
	"github.com/iwvelando/production-optimizer/pkg/mathutil"
	"github.com/iwvelando/production-optimizer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for production-optimizer.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty" mapstructure:"logging"`
	Output   OutputConfig   `yaml:"output,omitempty" mapstructure:"output"`
	Products ProductsConfig `yaml:"products" mapstructure:"products"`
	Limits   LimitsConfig   `yaml:"limits" mapstructure:"limits"`
	Policy   PolicyConfig   `yaml:"policy" mapstructure:"policy"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
	CurrencySymbol string `yaml:"currencySymbol,omitempty" mapstructure:"currencySymbol"`
	MaxRows        int    `yaml:"maxRows,omitempty" mapstructure:"maxRows"`
}

// ProductsConfig holds the two products. Table is the x axis, Chair the y axis.
type ProductsConfig struct {
	Table ProductConfig `yaml:"table" mapstructure:"table"`
	Chair ProductConfig `yaml:"chair" mapstructure:"chair"`
}

// ProductConfig describes one product's profit and per-unit resource usage.
type ProductConfig struct {
	Name         string  `yaml:"name,omitempty" mapstructure:"name"`
	Profit       float64 `yaml:"profit" mapstructure:"profit"`
	HoursPerUnit float64 `yaml:"hoursPerUnit" mapstructure:"hoursPerUnit"`
	WoodPerUnit  float64 `yaml:"woodPerUnit" mapstructure:"woodPerUnit"`
}

// LimitsConfig holds the weekly resource totals.
type LimitsConfig struct {
	TotalHours float64 `yaml:"totalHours" mapstructure:"totalHours"`
	TotalWood  float64 `yaml:"totalWood" mapstructure:"totalWood"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with PRODUCTION_ override
// file values, e.g. PRODUCTION_LIMITS_TOTALHOURS=300.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r. It is used by the
// HTTP server for uploaded and editor-provided configurations.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// Default returns the configuration of the "Jati Indah" workshop case study,
// with environment overrides applied.
func Default() (*Configuration, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")

	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.currencySymbol", constants.DefaultCurrencySymbol)
	v.SetDefault("output.maxRows", constants.DefaultMaxRows)

	v.SetDefault("products.table.name", "Meja")
	v.SetDefault("products.table.profit", 750000)
	v.SetDefault("products.table.hoursPerUnit", 6.0)
	v.SetDefault("products.table.woodPerUnit", 4.0)
	v.SetDefault("products.chair.name", "Kursi")
	v.SetDefault("products.chair.profit", 300000)
	v.SetDefault("products.chair.hoursPerUnit", 2.0)
	v.SetDefault("products.chair.woodPerUnit", 1.5)

	v.SetDefault("limits.totalHours", 240.0)
	v.SetDefault("limits.totalWood", 120.0)

	v.SetDefault("policy.kind", constants.PolicyGrid)
	v.SetDefault("policy.preferMultipleTables", false)
	v.SetDefault("policy.preferWhen", "")
	v.SetDefault("policy.cornerProfit", constants.CornerProfitFloored)
	v.SetDefault("policy.maxGridCells", constants.DefaultMaxGridCells)

	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.Policy.Normalize()
	return &configuration, nil
}

// Validate returns an error when the configuration cannot be optimized at all.
func (c *Configuration) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			return err
		}
	}
	for _, product := range []struct {
		role string
		cfg  ProductConfig
	}{{"table", c.Products.Table}, {"chair", c.Products.Chair}} {
		for _, value := range []float64{product.cfg.Profit, product.cfg.HoursPerUnit, product.cfg.WoodPerUnit} {
			if !mathutil.IsFinite(value) {
				return fmt.Errorf("product %s has a non-finite value", product.role)
			}
		}
		if product.cfg.HoursPerUnit < 0 || product.cfg.WoodPerUnit < 0 {
			return fmt.Errorf("product %s has negative resource usage", product.role)
		}
	}
	if !mathutil.IsFinite(c.Limits.TotalHours) || c.Limits.TotalHours <= 0 {
		return fmt.Errorf("limits.totalHours must be positive, got %v", c.Limits.TotalHours)
	}
	if !mathutil.IsFinite(c.Limits.TotalWood) || c.Limits.TotalWood <= 0 {
		return fmt.Errorf("limits.totalWood must be positive, got %v", c.Limits.TotalWood)
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	hasPreference := c.Policy.PreferMultipleTables || strings.TrimSpace(c.Policy.PreferWhen) != ""
	validator := validation.ProblemValidator{
		Products: []validation.ProductInfo{
			c.Products.Table.info("table"),
			c.Products.Chair.info("chair"),
		},
		TotalHours:    c.Limits.TotalHours,
		TotalWood:     c.Limits.TotalWood,
		Policy:        CanonicalPolicyKind(c.Policy.Kind),
		HasPreference: hasPreference,
		MaxGridCells:  c.Policy.MaxGridCells,
	}
	return validator.ValidateAll()
}

func (p ProductConfig) info(role string) validation.ProductInfo {
	name := p.Name
	if name == "" {
		name = role
	}
	return validation.ProductInfo{
		Name:         name,
		Profit:       p.Profit,
		HoursPerUnit: p.HoursPerUnit,
		WoodPerUnit:  p.WoodPerUnit,
	}
}
