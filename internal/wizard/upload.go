package wizard

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/neuroad/neuroad-cli/internal/media"
)

// UploadResult is the outcome for one selected file.
type UploadResult struct {
	Path string
	URL  string
	Err  error
}

// Upload inspects and uploads each file independently. A batch that would
// push the image count past MaxImages is rejected before any request is
// made. Successful uploads are attached in selection order; failures are
// reported per file and do not affect the others.
func (w *Wizard) Upload(ctx context.Context, paths []string) ([]UploadResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if len(paths) > w.RemainingImages() {
		return nil, ErrTooManyImages
	}

	pool, err := ants.NewPool(min(w.workers, len(paths)), ants.WithPanicHandler(func(v any) {
		w.logger.Error("upload worker panicked", "panic", v)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to start upload pool: %w", err)
	}
	defer pool.Release()

	results := make([]UploadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		results[i].Path = path
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i].URL, results[i].Err = w.uploadOne(ctx, path)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			results[i].Err = err
		}
	}
	wg.Wait()

	var urls []string
	for _, r := range results {
		if r.Err == nil {
			urls = append(urls, r.URL)
		} else {
			w.logger.Warn("image upload failed", "path", r.Path, "error", r.Err)
		}
	}
	if len(urls) > 0 {
		if err := w.AttachImages(urls...); err != nil {
			return results, err
		}
	}
	return results, nil
}

func (w *Wizard) uploadOne(ctx context.Context, path string) (string, error) {
	f, err := media.Open(path)
	if err != nil {
		return "", err
	}
	resp, err := w.backend.Upload(ctx, f.Name, bytes.NewReader(f.Data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", f.Name, err)
	}
	return resp.URL, nil
}

// Failed returns the results that did not upload.
func Failed(results []UploadResult) []UploadResult {
	var out []UploadResult
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
