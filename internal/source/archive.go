package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/mholt/archiver/v4"

	"subtext/internal/services"
)

// errStopWalk aborts an archive walk once the wanted entry is consumed.
var errStopWalk = errors.New("stop archive walk")

// walkArchive opens a caption bundle and invokes fn for every regular
// file inside, identified by base name. Files in formats the archiver
// does not recognize are skipped rather than reported.
func walkArchive(ctx context.Context, bundle string, fn func(name string, open func() (io.ReadCloser, error)) error) error {
	file, err := os.Open(bundle)
	if err != nil {
		return services.Wrap(services.ErrSourceUnavailable, "source", "open archive", bundle, err)
	}
	defer file.Close()

	format, input, err := archiver.Identify(bundle, file)
	if errors.Is(err, archiver.ErrNoMatch) {
		return nil
	}
	if err != nil {
		return services.Wrap(services.ErrSourceUnavailable, "source", "identify archive", bundle, err)
	}
	extractor, ok := format.(archiver.Extractor)
	if !ok {
		return nil
	}
	err = extractor.Extract(ctx, input, nil, func(_ context.Context, f archiver.File) error {
		if f.IsDir() {
			return nil
		}
		return fn(path.Base(f.NameInArchive), f.Open)
	})
	if err != nil && !errors.Is(err, errStopWalk) {
		return services.Wrap(services.ErrSourceUnavailable, "source", "read archive", bundle, err)
	}
	return nil
}

// readArchiveEntry pulls one named file out of a caption bundle.
func readArchiveEntry(ctx context.Context, bundle, entry string) ([]byte, error) {
	var data []byte
	found := false
	err := walkArchive(ctx, bundle, func(name string, open func() (io.ReadCloser, error)) error {
		if name != entry {
			return nil
		}
		rc, err := open()
		if err != nil {
			return err
		}
		defer rc.Close()
		payload, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		data = payload
		found = true
		return errStopWalk
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, services.Wrap(services.ErrSourceUnavailable, "source", "read archive", fmt.Sprintf("%s missing from %s", entry, bundle), nil)
	}
	return data, nil
}
