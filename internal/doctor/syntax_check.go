package doctor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/minnote/internal/config"
)

// ConfigSyntaxCheck validates the app config file: its syntax, and then
// its values against the same rules config.Load applies.
type ConfigSyntaxCheck struct {
	path func() string
}

var _ Check = (*ConfigSyntaxCheck)(nil)

// NewConfigSyntaxCheck creates a check of the file path returns.
// An empty path means no config file is in use.
func NewConfigSyntaxCheck(path func() string) *ConfigSyntaxCheck {
	return &ConfigSyntaxCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigSyntaxCheck) Name() string {
	return "config-syntax"
}

// Category returns the grouping for this check.
func (c *ConfigSyntaxCheck) Category() string {
	return "config"
}

// syntaxFileResult represents the validation result for a single file.
type syntaxFileResult struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Run executes the config file check.
func (c *ConfigSyntaxCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  make(map[string]any),
	}

	path := ""
	if c.path != nil {
		path = c.path()
	}
	if path == "" {
		result.Status = SeverityInfo
		result.Message = "no config file found; defaults are in use"
		result.FixHint = "run: minnote init"
		return result
	}

	fr := c.validateFile(path)
	result.Details["file"] = fr

	switch fr.Status {
	case "error":
		result.Status = SeverityError
		result.Message = fr.Message
		result.FixHint = "fix the file, or run: minnote config edit"
	case "info":
		result.Status = SeverityInfo
		result.Message = fr.Message
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("config file %s is valid", path)
	}
	return result
}

// validateFile checks that a file parses and holds valid settings.
func (c *ConfigSyntaxCheck) validateFile(filePath string) syntaxFileResult {
	fr := syntaxFileResult{Path: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fr.Status = "info"
			fr.Message = "file does not exist (not configured)"
			return fr
		}
		if errors.Is(err, os.ErrPermission) {
			fr.Status = "error"
			fr.Message = fmt.Sprintf("permission denied: %v", err)
			return fr
		}
		fr.Status = "error"
		fr.Message = fmt.Sprintf("read error: %v", err)
		return fr
	}

	// Empty files are valid (defaults apply)
	if len(bytes.TrimSpace(data)) == 0 {
		fr.Status = "pass"
		fr.Message = "empty file"
		return fr
	}

	cfg := config.Default()
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		err = decodeJSON(data, cfg)
	case ".toml":
		err = decodeTOML(data, cfg)
	default:
		err = decodeYAML(data, cfg)
	}
	if err != nil {
		fr.Status = "error"
		fr.Message = err.Error()
		return fr
	}

	if err := cfg.Validate(); err != nil {
		fr.Status = "error"
		fr.Message = fmt.Sprintf("invalid settings: %v", err)
		return fr
	}

	fr.Status = "pass"
	return fr
}

func decodeJSON(data []byte, cfg *config.Config) error {
	err := json.Unmarshal(data, cfg)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(data, int(syntaxErr.Offset))
		return fmt.Errorf("JSON syntax error at line %d, column %d: %s", line, col, syntaxErr.Error())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(data, int(typeErr.Offset))
		return fmt.Errorf("JSON type error at line %d, column %d: %s", line, col, typeErr.Error())
	}

	return fmt.Errorf("JSON error: %w", err)
}

func decodeTOML(data []byte, cfg *config.Config) error {
	err := toml.Unmarshal(data, cfg)
	if err == nil {
		return nil
	}

	// go-toml/v2 DecodeError includes line/column via Position() method
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Errorf("TOML syntax error at line %d, column %d: %s", row, col, decodeErr.Error())
	}

	return fmt.Errorf("TOML error: %w", err)
}

func decodeYAML(data []byte, cfg *config.Config) error {
	// yaml.v3 errors already carry "line N" positions
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("YAML error: %w", err)
	}
	return nil
}

// offsetToLineCol converts a byte offset to line and column numbers.
// Lines and columns are 1-indexed.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	if offset > len(data) {
		offset = len(data)
	}
	if offset < 0 {
		offset = 0
	}

	line = 1
	lineStart := 0

	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	col = offset - lineStart + 1
	return line, col
}
