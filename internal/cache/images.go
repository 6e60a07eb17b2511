package cache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "golang.org/x/image/webp"
)

// ErrOffline is returned when a URL is not cached and network loading is off.
var ErrOffline = errors.New("image cache: offline")

const (
	defaultTimeout     = 10 * time.Second
	defaultConcurrency = 6
)

// Options tunes an ImageCache. Zero values pick the defaults.
type Options struct {
	Timeout     time.Duration
	Concurrency int
	// Offline serves only what is already on disk.
	Offline bool
	Client  *http.Client
}

// ImageCache provides disk + memory caching for decoded images.
type ImageCache struct {
	cacheDir string
	offline  bool
	client   *http.Client
	memory   sync.Map // url -> image.Image
	loading  sync.Map // url -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

// loadEntry tracks in-flight downloads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	done      bool
	callbacks []func(image.Image, error)
}

// NewImageCache creates a new image cache with the given disk directory.
func NewImageCache(cacheDir string, opts Options) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("image cache: %w", err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &ImageCache{
		cacheDir: cacheDir,
		offline:  opts.Offline,
		client:   client,
		sem:      make(chan struct{}, opts.Concurrency),
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(url string) image.Image {
	if v, ok := ic.memory.Load(url); ok {
		return v.(image.Image)
	}
	return nil
}

// LoadAsync starts loading an image from URL in the background.
// The callback runs exactly once, possibly on another goroutine.
func (ic *ImageCache) LoadAsync(url string, callback func(image.Image, error)) {
	if v, ok := ic.memory.Load(url); ok {
		callback(v.(image.Image), nil)
		return
	}

	entry := &loadEntry{callbacks: []func(image.Image, error){callback}}
	if existing, loaded := ic.loading.LoadOrStore(url, entry); loaded {
		// Another goroutine is already downloading this URL
		e := existing.(*loadEntry)
		e.mu.Lock()
		if !e.done {
			e.callbacks = append(e.callbacks, callback)
			e.mu.Unlock()
			return
		}
		e.mu.Unlock()
		// finished between the two lookups
		ic.LoadAsync(url, callback)
		return
	}

	go func() {
		ic.sem <- struct{}{}
		img, err := ic.loadImage(url)
		<-ic.sem

		if err == nil {
			ic.memory.Store(url, img)
		}
		ic.loading.Delete(url)

		entry.mu.Lock()
		entry.done = true
		cbs := entry.callbacks
		entry.callbacks = nil
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(img, err)
		}
	}()
}

// Load fetches an image synchronously through the same disk cache.
func (ic *ImageCache) Load(url string) (image.Image, error) {
	if img := ic.Get(url); img != nil {
		return img, nil
	}
	img, err := ic.loadImage(url)
	if err != nil {
		return nil, err
	}
	ic.memory.Store(url, img)
	return img, nil
}

func (ic *ImageCache) loadImage(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	// Try disk cache first
	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	if ic.offline {
		return nil, ErrOffline
	}

	resp, err := ic.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	if err == nil {
		// drain so the disk copy is complete
		_, err = io.Copy(io.Discard, tee)
	}
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}
	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
