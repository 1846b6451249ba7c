package reader

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// UniversalReader wraps an io.Reader to replace carriage returns with
// newlines and strip a leading byte order mark. This lets the line
// scanners delimit records regardless of the platform that produced
// the export.
type UniversalReader struct {
	r       io.Reader
	scanned bool
}

func (r *UniversalReader) Read(buf []byte) (int, error) {
	n, err := r.r.Read(buf)

	// Detect and remove a BOM at the start of the stream.
	if !r.scanned {
		r.scanned = true

		if n >= len(bom) && bytes.HasPrefix(buf, bom) {
			copy(buf, buf[len(bom):n])
			n -= len(bom)
		}
	}

	// Replace carriage returns with newlines.
	for i := 0; i < n; i++ {
		if buf[i] == '\r' {
			buf[i] = '\n'
		}
	}

	return n, err
}

func (r *UniversalReader) Close() error {
	if rc, ok := r.r.(io.Closer); ok {
		return rc.Close()
	}
	return nil
}

func NewUniversalReader(r io.Reader) *UniversalReader {
	return &UniversalReader{r: r}
}

// Decompress takes a compression type and a reader and returns a
// reader that will be decompressed if the type is supported.
func Decompress(t string, r io.Reader) (io.Reader, error) {
	if t == "" {
		return r, nil
	}

	switch t {
	case "gzip", "gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gr, nil

	case "bz2", "bzip2":
		return bzip2.NewReader(r), nil

	case "sz", "snappy":
		return snappy.NewReader(r), nil
	}

	return nil, fmt.Errorf("compression type not supported: %s", t)
}

// DetectType attempts to detect the file format and compression type
// by looking at the file path extensions.
func DetectType(url string) (string, string) {
	_, name := path.Split(url)

	// Split up extensions.
	exts := strings.Split(name, ".")[1:]

	var (
		compression string
		format      string
	)

	for _, ext := range exts {
		switch ext {
		case "gz", "gzip":
			compression = "gzip"

		case "bz2", "bzip2":
			compression = "bzip2"

		case "sz", "snappy":
			compression = "snappy"

		case "csv":
			format = "csv"

		case "tsv", "tab", "txt":
			format = "tsv"
		}
	}

	return format, compression
}

func detectCompression(name string) string {
	switch filepath.Ext(name) {
	case ".gzip", ".gz":
		return "gzip"
	case ".bzip2", ".bz2":
		return "bzip2"
	case ".snappy", ".sz":
		return "snappy"
	}

	return ""
}

// Reader encapsulates an input stream, either a file or stdin.
type Reader struct {
	Name        string
	Compression string

	reader io.Reader
	file   *os.File
}

// Read implements the io.Reader interface.
func (r *Reader) Read(buf []byte) (int, error) {
	return r.reader.Read(buf)
}

// Close implements the io.Closer interface.
func (r *Reader) Close() {
	if r.file != nil {
		r.file.Close()
	}
}

// Size returns the on-disk size of the input in bytes, or -1 when
// the input is stdin or cannot be stat'ed.
func (r *Reader) Size() int64 {
	if r.Name == "" {
		return -1
	}

	stat, err := os.Stat(r.Name)
	if err != nil {
		return -1
	}

	return stat.Size()
}

// Open a reader by name with optional compression. If no name is
// specified, stdin is used. The returned stream is decompressed,
// newline-normalized, and decoded as UTF-8 with malformed bytes
// replaced by U+FFFD rather than surfacing an error.
func Open(name, compr string) (*Reader, error) {
	r := new(Reader)

	if compr == "" {
		compr = detectCompression(name)
	}

	// Validate the compression method before touching files.
	switch compr {
	case "bzip2", "gzip", "snappy", "":
	default:
		return nil, fmt.Errorf("unknown compression type %s", compr)
	}

	if name == "" {
		r.reader = os.Stdin
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}

		r.file = file
		r.reader = file
		r.Name = name
	}

	// Apply the compression decoder.
	switch compr {
	case "gzip":
		reader, err := gzip.NewReader(r.reader)
		if err != nil {
			r.Close()
			return nil, err
		}

		r.reader = reader
	case "bzip2":
		r.reader = bzip2.NewReader(r.reader)
	case "snappy":
		r.reader = snappy.NewReader(r.reader)
	}

	r.Compression = compr

	// Tolerant decode: malformed bytes become replacement runes.
	r.reader = transform.NewReader(
		NewUniversalReader(r.reader),
		unicode.UTF8.NewDecoder(),
	)

	return r, nil
}
