package cocoacanvas

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Spinnernicholas/cocoa-canvas/profile/dsv"
)

// DefaultPath is the placeholder location of the county export used
// during calibration runs.
const DefaultPath = "tmp/0_20230424_092505_SpinnerNicholas.txt"

// DefaultRecordNum is the record dumped by default. Record 1 is a
// known simple case used for calibration, so the second data row is
// the first interesting one.
const DefaultRecordNum = 2

// Config holds the optional .env configuration. Flags take
// precedence over it, and it over the built-in defaults.
type Config struct {
	Path       string
	SampleSize int
	RecordNum  int
}

// LoadConfig reads an optional .env file. A missing file yields the
// defaults.
func LoadConfig(envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	c := &Config{
		Path:       DefaultPath,
		SampleSize: dsv.DefaultSampleSize,
		RecordNum:  DefaultRecordNum,
	}

	if v := os.Getenv("COCOA_FILE"); v != "" {
		c.Path = v
	}

	if v := os.Getenv("COCOA_SAMPLE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid COCOA_SAMPLE_SIZE: %q", v)
		}
		c.SampleSize = n
	}

	if v := os.Getenv("COCOA_RECORD_NUM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid COCOA_RECORD_NUM: %q", v)
		}
		c.RecordNum = n
	}

	return c, nil
}
