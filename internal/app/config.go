package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"boardlife/internal/core"
	"boardlife/internal/seed"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigFile string `json:"-"`

	SeedFile string `json:"seed_file"`
	Pattern  string `json:"pattern"`

	BoardW   int `json:"board_w"`
	BoardH   int `json:"board_h"`
	SurfaceW int `json:"surface_w"`
	SurfaceH int `json:"surface_h"`

	TPS int `json:"tps"`
	GPS int `json:"gps"`

	Density float64 `json:"density"`
	RNGSeed int64   `json:"rng_seed"`

	HUD     bool `json:"hud"`
	Verbose bool `json:"verbose"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		BoardW:   400,
		BoardH:   300,
		SurfaceW: 800,
		SurfaceH: 600,
		TPS:      30,
		GPS:      30,
		Density:  0.2,
		RNGSeed:  42,
		HUD:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON config file")
	fs.StringVar(&c.SeedFile, "seed", c.SeedFile, "text seed file ('x' marks a live cell)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to start from")
	fs.IntVar(&c.BoardW, "board-w", c.BoardW, "board width in cells")
	fs.IntVar(&c.BoardH, "board-h", c.BoardH, "board height in cells")
	fs.IntVar(&c.SurfaceW, "surface-w", c.SurfaceW, "surface width in pixels")
	fs.IntVar(&c.SurfaceH, "surface-h", c.SurfaceH, "surface height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while running")
	fs.Float64Var(&c.Density, "random", c.Density, "live density for random boards")
	fs.Int64Var(&c.RNGSeed, "rng-seed", c.RNGSeed, "seed for random boards")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status line")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every toggle")
}

// LoadFile overlays the JSON object in path onto c. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Parse binds c to fs, parses args and applies the -config file if one is
// named. Flags given on the command line win over the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigFile == "" {
		return nil
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.LoadFile(c.ConfigFile); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "reapply -%s", name)
		}
	}
	return nil
}

// Geometry returns the board/surface mapping described by c.
func (c *Config) Geometry() (core.Geometry, error) {
	return core.NewGeometry(core.C(c.BoardW, c.BoardH), core.C(c.SurfaceW, c.SurfaceH))
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := c.Geometry(); err != nil {
		return err
	}
	if c.TPS <= 0 || c.GPS <= 0 {
		return errors.Errorf("tps and gps must be positive, got %d and %d", c.TPS, c.GPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("random density %g outside [0, 1]", c.Density)
	}
	if c.Pattern != "" {
		if _, err := seed.Pattern(c.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// InitialCells returns the starting generation: the seed file if set, else
// the named pattern centred on the board, else an empty board. A seed file
// that cannot be read is reported to log and yields an empty board.
func (c *Config) InitialCells(log core.Logger) core.CellSet {
	if c.SeedFile != "" {
		cells, err := seed.LoadFile(c.SeedFile)
		if err != nil {
			log.Printf("starting empty: %v", err)
			return core.NewCellSet()
		}
		return cells
	}
	if c.Pattern != "" {
		cells, err := seed.Pattern(c.Pattern)
		if err != nil {
			log.Printf("starting empty: %v", err)
			return core.NewCellSet()
		}
		return seed.Center(cells, core.C(c.BoardW, c.BoardH))
	}
	return core.NewCellSet()
}
