package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	// Packages
	uuid "github.com/google/uuid"
	"github.com/mutablelogic/go-scribe/pkg/schema"
	zerolog "github.com/rs/zerolog"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Stager writes uploads into a directory under per-request names, and
// removes them when the request completes
type Stager struct {
	dir      string
	limit    int64
	log      zerolog.Logger
	removefn func(string) error
}

// File is an upload staged on the local filesystem
type File struct {
	Path string // Location of the staged file
	Name string // Name supplied by the client
	Size int64  // Number of bytes staged
}

// Opt configures a Stager
type Opt func(*Stager) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultMaxSize = 512 << 20 // 512MB
)

var (
	reExt = regexp.MustCompile(`^\.[a-zA-Z0-9]{1,8}$`)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewStager creates the staging directory if necessary
func NewStager(dir string, opts ...Opt) (*Stager, error) {
	self := &Stager{
		dir:      dir,
		limit:    DefaultMaxSize,
		log:      zerolog.Nop(),
		removefn: os.Remove,
	}
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}
	if self.dir == "" {
		self.dir = filepath.Join(os.TempDir(), "scribe")
	}
	if err := os.MkdirAll(self.dir, 0o755); err != nil {
		return nil, err
	}

	// Return success
	return self, nil
}

// OptMaxSize sets the largest upload accepted, zero means no limit
func OptMaxSize(v int64) Opt {
	return func(s *Stager) error {
		if v < 0 {
			return fmt.Errorf("invalid maximum upload size %d", v)
		}
		s.limit = v
		return nil
	}
}

// OptLogger sets the logger used for cleanup warnings
func OptLogger(log zerolog.Logger) Opt {
	return func(s *Stager) error {
		s.log = log
		return nil
	}
}

// OptRemove replaces the function used to remove staged files
func OptRemove(fn func(string) error) Opt {
	return func(s *Stager) error {
		if fn == nil {
			return errors.New("remove function is nil")
		}
		s.removefn = fn
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Dir returns the staging directory
func (s *Stager) Dir() string {
	return s.dir
}

// Stage copies an upload into a new file. On error, nothing is left behind.
func (s *Stager) Stage(name string, r io.Reader) (*File, error) {
	path := filepath.Join(s.dir, uuid.NewString()+extension(name))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	// Copy at most one byte over the limit, to detect oversized uploads
	src := r
	if s.limit > 0 {
		src = io.LimitReader(r, s.limit+1)
	}
	n, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && s.limit > 0 && n > s.limit {
		err = fmt.Errorf("%w: exceeds %d bytes", schema.ErrFileTooLarge, s.limit)
	}
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	// Return success
	return &File{
		Path: path,
		Name: filepath.Base(name),
		Size: n,
	}, nil
}

// Cleanup removes a staged file. A file that is already gone is logged and
// otherwise ignored, so cleanup never fails a job.
func (s *Stager) Cleanup(file *File) {
	if file == nil {
		return
	}
	err := s.removefn(file.Path)
	switch {
	case err == nil:
		s.log.Debug().Str("path", file.Path).Msg("removed staged upload")
	case errors.Is(err, fs.ErrNotExist):
		s.log.Warn().Str("path", file.Path).Msg("staged upload already removed")
	default:
		s.log.Warn().Err(err).Str("path", file.Path).Msg("failed to remove staged upload")
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// extension returns a safe lowercase file extension for a client filename
func extension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if reExt.MatchString(ext) {
		return ext
	}
	return ""
}
