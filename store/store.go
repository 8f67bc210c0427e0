// Package store opens benchmark inputs and creates outputs either on local
// disk or in a Google Cloud Storage bucket (gs://bucket/object).
package store

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"github.com/charlieparkes/wordbench/app"
)

// Reader is an opened input. Close releases the file or object reader and,
// for bucket objects, the storage client behind it.
type Reader struct {
	r       io.Reader
	size    int64
	closers []io.Closer
}

func (r *Reader) Read(p []byte) (int, error) { return r.r.Read(p) }

// Size is the input length in bytes, or -1 when unknown.
func (r *Reader) Size() int64 { return r.size }

func (r *Reader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	return first
}

// bucketPath reports whether path is a valid google storage url (gs://) and
// splits it into bucket and object name.
func bucketPath(path string) (bucket, object string, ok bool) {
	u, err := url.Parse(path)
	if err != nil || u.Scheme != "gs" || u.Host == "" {
		return "", "", false
	}
	return u.Host, strings.TrimLeft(u.Path, "/"), true
}

func Open(ctx context.Context, path string) (*Reader, error) {
	if bucket, object, ok := bucketPath(path); ok {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		obj, err := client.Bucket(bucket).Object(object).NewReader(ctx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		app.Log.Debug("reading from google storage", zap.String("bucket", bucket), zap.String("object", object), zap.Int64("size", obj.Attrs.Size))
		return &Reader{r: obj, size: obj.Attrs.Size, closers: []io.Closer{obj, client}}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	size := int64(-1)
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}
	app.Log.Debug("reading from disk", zap.String("path", path), zap.Int64("size", size))
	return &Reader{r: file, size: size, closers: []io.Closer{file}}, nil
}

type clientWriter struct {
	*storage.Writer
	client *storage.Client
}

// Close commits the object and then releases the client.
func (w *clientWriter) Close() error {
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// Create opens path for writing. Bucket objects are only committed once the
// returned writer is closed without error.
func Create(ctx context.Context, path string) (io.WriteCloser, error) {
	if bucket, object, ok := bucketPath(path); ok {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		w := client.Bucket(bucket).Object(object).NewWriter(ctx)
		app.Log.Info("writing to google storage", zap.String("bucket", bucket), zap.String("object", object))
		return &clientWriter{Writer: w, client: client}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	app.Log.Info("writing to disk", zap.String("path", path))
	return file, nil
}
