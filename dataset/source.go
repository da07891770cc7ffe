package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/midbel/scatter"
)

const DefaultUrl = "https://s3-us-west-2.amazonaws.com/s.cdpn.io/2004014/iris.json"

var ErrStatus = errors.New("unexpected status")

type Source interface {
	Load(context.Context) ([]scatter.Record, error)
}

type HttpFile struct {
	Url     string
	Timeout time.Duration
	Client  *http.Client
}

func (f HttpFile) Load(ctx context.Context) ([]scatter.Record, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.Url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", f.Url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %w (%s)", f.Url, ErrStatus, res.Status)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", f.Url, err)
	}
	return decodeFrom(f.Url, data)
}

type LocalFile struct {
	File string
}

func (f LocalFile) Load(_ context.Context) ([]scatter.Record, error) {
	data, err := os.ReadFile(f.File)
	if err != nil {
		return nil, err
	}
	return decodeFrom(f.File, data)
}

// New returns the source of the dataset: the local file when one is given,
// the url otherwise.
func New(url, file string, timeout time.Duration) Source {
	if file != "" {
		return LocalFile{File: file}
	}
	if url == "" {
		url = DefaultUrl
	}
	return HttpFile{
		Url:     url,
		Timeout: timeout,
	}
}

func decodeFrom(where string, data []byte) ([]scatter.Record, error) {
	list, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}
	return list, nil
}
