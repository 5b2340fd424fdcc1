package datastore

import (
	"os"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/filesystem"
	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/plist"
	"github.com/rs/zerolog"
)

const (
	unreadableHint = "run with sudo, or set spotlightPList in the config file if the store lives elsewhere"
	storePerm      = 0600
)

// Options tunes the filesystem store
type Options struct {
	// LockFile is the advisory lock held while replacing the store
	LockFile string

	// VerifyUnchanged refuses to write when the store changed since it was read
	VerifyUnchanged bool
}

type filesystemDataStore struct {
	fs     filesystem.FS
	path   string
	opts   Options
	logger zerolog.Logger
}

// New creates a DataStore backed by the property list at path
func New(fs filesystem.FS, path string, opts Options) DataStore {
	return &filesystemDataStore{
		fs:     fs,
		path:   path,
		opts:   opts,
		logger: logging.GetLogger("datastore"),
	}
}

func (s *filesystemDataStore) Path() string { return s.path }

func (s *filesystemDataStore) Read() (*plist.Document, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreUnreadable, "cannot read exclusion store %s", s.path).
			WithDetail("path", s.path).
			WithHint(unreadableHint)
	}

	doc, err := plist.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreUnreadable, "cannot parse exclusion store %s", s.path).
			WithDetail("path", s.path).
			WithHint(unreadableHint)
	}

	s.logger.Debug().
		Str("path", s.path).
		Str("format", doc.Format().String()).
		Int("exclusions", len(doc.Exclusions())).
		Msg("Exclusion store read")
	return doc, nil
}

func (s *filesystemDataStore) Write(doc *plist.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "cannot encode exclusion store").
			WithDetail("path", s.path)
	}

	err = filesystem.WithLock(s.opts.LockFile, func() error {
		if s.opts.VerifyUnchanged && doc.Revision() != "" {
			if err := s.verifyUnchanged(doc.Revision()); err != nil {
				return err
			}
		}
		if err := s.fs.WriteFileAtomic(s.path, data, storePerm); err != nil {
			return errors.Wrapf(err, errors.ErrStoreWrite, "cannot write exclusion store %s", s.path).
				WithDetail("path", s.path).
				WithHint(unreadableHint)
		}
		return nil
	})
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return errors.Wrapf(err, errors.ErrStoreWrite, "cannot lock exclusion store %s", s.path)
		}
		return err
	}

	s.logger.Info().
		Str("path", s.path).
		Int("exclusions", len(doc.Exclusions())).
		Msg("Exclusion store written")
	return nil
}

func (s *filesystemDataStore) verifyUnchanged(revision string) error {
	current, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrStoreConflict, "exclusion store %s disappeared since it was read", s.path)
		}
		return errors.Wrapf(err, errors.ErrStoreWrite, "cannot re-read exclusion store %s", s.path)
	}
	if plist.Revision(current) != revision {
		return errors.Newf(errors.ErrStoreConflict, "exclusion store %s changed since it was read", s.path).
			WithHint("run the command again")
	}
	return nil
}
