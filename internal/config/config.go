// Package config loads pathviz settings from defaults, an optional config
// file, a .env file and PATHVIZ_* environment variables, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathviz/board"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/playback"
	"github.com/katalvlaran/pathviz/search"
)

// EnvPrefix prefixes every environment override, e.g. PATHVIZ_HTTP_ADDR.
const EnvPrefix = "PATHVIZ"

// Keys understood by Load.
const (
	KeyRows       = "board.rows"
	KeyCols       = "board.cols"
	KeyMaxCells   = "board.max_cells"
	KeyStartRow   = "board.start_row"
	KeyStartCol   = "board.start_col"
	KeyEndRow     = "board.end_row"
	KeyEndCol     = "board.end_col"
	KeyFrontier   = "search.frontier"
	KeyVisitDelay = "playback.visit_delay"
	KeyPathDelay  = "playback.path_delay"
	KeyHTTPAddr   = "http.addr"
	KeyGinMode    = "http.gin_mode"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
)

// ErrInvalid indicates a setting that parses but makes no sense.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the application's configuration values.
type Config struct {
	Board    board.Settings
	HTTPAddr string // address the API listens on
	GinMode  string // gin mode: release, debug or test
	LogLevel string // logrus level name
	LogJSON  bool   // JSON log output instead of text
}

// New returns a viper instance with every default registered and
// environment overrides enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRows, grid.DefaultRows)
	v.SetDefault(KeyCols, grid.DefaultCols)
	v.SetDefault(KeyMaxCells, board.DefaultMaxCells)
	v.SetDefault(KeyStartRow, grid.DefaultStart.Row)
	v.SetDefault(KeyStartCol, grid.DefaultStart.Col)
	v.SetDefault(KeyEndRow, grid.DefaultEnd.Row)
	v.SetDefault(KeyEndCol, grid.DefaultEnd.Col)
	v.SetDefault(KeyFrontier, search.FrontierScan.String())
	v.SetDefault(KeyVisitDelay, playback.DefaultVisitDelay)
	v.SetDefault(KeyPathDelay, playback.DefaultPathDelay)
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyGinMode, "release")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional .env file, then file (if non-empty), and decodes
// the result. A missing .env is not an error; a missing config file is.
func Load(v *viper.Viper, file string) (Config, error) {
	// Best effort: the environment may be fully provided by the caller.
	_ = godotenv.Load()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	return Decode(v)
}

// Decode validates and converts the values held by v.
func Decode(v *viper.Viper) (Config, error) {
	frontier, err := search.ParseFrontier(v.GetString(KeyFrontier))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, KeyFrontier, err)
	}

	visit, path := v.GetDuration(KeyVisitDelay), v.GetDuration(KeyPathDelay)
	if visit < 0 || path < 0 {
		return Config{}, fmt.Errorf("%w: playback delays must be non-negative", ErrInvalid)
	}

	maxCells := v.GetInt(KeyMaxCells)
	if maxCells <= 0 || maxCells > grid.MaxCells {
		return Config{}, fmt.Errorf("%w: %s must be in [1, %d], got %d", ErrInvalid, KeyMaxCells, grid.MaxCells, maxCells)
	}

	settings := board.Settings{
		Rows:       v.GetInt(KeyRows),
		Cols:       v.GetInt(KeyCols),
		MaxCells:   maxCells,
		Start:      grid.Coord{Row: v.GetInt(KeyStartRow), Col: v.GetInt(KeyStartCol)},
		End:        grid.Coord{Row: v.GetInt(KeyEndRow), Col: v.GetInt(KeyEndCol)},
		Frontier:   frontier,
		VisitDelay: visit,
		PathDelay:  path,
	}
	// Reject an impossible default board up front rather than on first use.
	if settings.Rows > 0 && settings.Cols > 0 && settings.Rows > maxCells/settings.Cols {
		return Config{}, fmt.Errorf("%w: default %dx%d board exceeds %s=%d",
			ErrInvalid, settings.Rows, settings.Cols, KeyMaxCells, maxCells)
	}
	if _, err := grid.New(settings.Rows, settings.Cols, settings.Start, settings.End); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	format := strings.ToLower(v.GetString(KeyLogFormat))
	if format != "text" && format != "json" {
		return Config{}, fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalid, KeyLogFormat, format)
	}

	return Config{
		Board:    settings,
		HTTPAddr: v.GetString(KeyHTTPAddr),
		GinMode:  v.GetString(KeyGinMode),
		LogLevel: v.GetString(KeyLogLevel),
		LogJSON:  format == "json",
	}, nil
}

// Timing returns the playback delays as options.
func (c Config) Timing() []playback.Option {
	return []playback.Option{
		playback.WithVisitDelay(c.Board.VisitDelay),
		playback.WithPathDelay(c.Board.PathDelay),
	}
}

// Describe renders the effective settings on one line for startup logs.
func (c Config) Describe() string {
	b := c.Board
	return fmt.Sprintf("board=%dx%d max_cells=%d start=%v end=%v frontier=%s visit=%s path=%s",
		b.Rows, b.Cols, b.MaxCells, b.Start, b.End, b.Frontier, b.VisitDelay, b.PathDelay)
}
