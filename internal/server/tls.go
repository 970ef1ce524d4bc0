package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"resumeforge/internal/errors"
	"resumeforge/internal/observability"

	"github.com/fsnotify/fsnotify"
)

// certReloader keeps the server certificate loaded and, when auto-reload is
// enabled, watches the cert and key files with fsnotify and swaps the
// certificate in place when they change.
type certReloader struct {
	certFile string
	keyFile  string

	cert atomic.Pointer[tls.Certificate]

	mu            sync.Mutex
	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer
	stopChan      chan struct{}
	running       bool

	reloadCount atomic.Int64
	lastReload  atomic.Pointer[time.Time]
	lastError   atomic.Pointer[string]
	onReload    func(success bool)
	logger      *errors.Logger
}

// newCertReloader loads the initial certificate and returns a reloader. It
// does not start watching; call start for that.
func newCertReloader(certFile, keyFile string, debounceDelay time.Duration, logger *errors.Logger) (*certReloader, error) {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}

	cr := &certReloader{
		certFile:      certFile,
		keyFile:       keyFile,
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		logger:        logger,
	}

	if err := cr.reload(); err != nil {
		return nil, err
	}

	return cr, nil
}

// start begins watching the certificate files for changes
func (cr *certReloader) start() error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.running {
		return fmt.Errorf("certificate reloader is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	cr.fsWatcher = watcher

	// Watch the parent directories so atomic writes (rename over the
	// original file) are still observed.
	dirs := map[string]bool{}
	for _, file := range []string{cr.certFile, cr.keyFile} {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			cr.cleanupWatcher()
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	cr.running = true
	go cr.watchLoop()

	if cr.logger != nil {
		cr.logger.Info("Certificate file watcher started",
			"cert_file", cr.certFile,
			"key_file", cr.keyFile,
			"debounce_delay", cr.debounceDelay)
	}

	return nil
}

// stop terminates the watch loop and closes the file system watcher
func (cr *certReloader) stop() {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if !cr.running {
		return
	}

	close(cr.stopChan)
	if cr.debounceTimer != nil {
		cr.debounceTimer.Stop()
	}
	cr.cleanupWatcher()
	cr.running = false

	if cr.logger != nil {
		cr.logger.Info("Certificate file watcher stopped")
	}
}

func (cr *certReloader) cleanupWatcher() {
	if cr.fsWatcher != nil {
		if closeErr := cr.fsWatcher.Close(); closeErr != nil && cr.logger != nil {
			cr.logger.LogError(closeErr, "Failed to close file watcher")
		}
	}
}

// watchLoop is the main event loop for file watching
func (cr *certReloader) watchLoop() {
	for {
		select {
		case event, ok := <-cr.fsWatcher.Events:
			if !ok {
				return
			}
			if cr.shouldProcessEvent(event) {
				cr.scheduleReload()
			}

		case err, ok := <-cr.fsWatcher.Errors:
			if !ok {
				return
			}
			if cr.logger != nil {
				cr.logger.LogError(err, "File watcher error")
			}

		case <-cr.stopChan:
			return
		}
	}
}

// shouldProcessEvent determines if a file system event concerns our files
func (cr *certReloader) shouldProcessEvent(event fsnotify.Event) bool {
	watched := event.Name == cr.certFile || event.Name == cr.keyFile ||
		filepath.Base(event.Name) == filepath.Base(cr.certFile) ||
		filepath.Base(event.Name) == filepath.Base(cr.keyFile)
	if !watched {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// scheduleReload schedules a debounced reload. Cert and key are usually
// rotated as a pair, so waiting out the debounce window avoids loading a
// mismatched pair halfway through the rotation.
func (cr *certReloader) scheduleReload() {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.debounceTimer != nil {
		cr.debounceTimer.Stop()
	}
	cr.debounceTimer = time.AfterFunc(cr.debounceDelay, func() {
		if err := cr.reload(); err != nil {
			if cr.logger != nil {
				cr.logger.LogError(err, "Failed to reload TLS certificates")
			}
			if cr.onReload != nil {
				cr.onReload(false)
			}
			return
		}
		if cr.logger != nil {
			cr.logger.Info("TLS certificates reloaded successfully")
		}
		if cr.onReload != nil {
			cr.onReload(true)
		}
	})
}

// reload loads the certificate pair from disk and swaps it in
func (cr *certReloader) reload() error {
	cert, err := tls.LoadX509KeyPair(cr.certFile, cr.keyFile)
	if err != nil {
		msg := err.Error()
		cr.lastError.Store(&msg)
		return fmt.Errorf("failed to load server cert/key from files: %w", err)
	}

	cr.cert.Store(&cert)
	cr.reloadCount.Add(1)
	now := time.Now()
	cr.lastReload.Store(&now)
	cr.lastError.Store(nil)

	return nil
}

// getCertificate is the tls.Config.GetCertificate callback
func (cr *certReloader) getCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	cert := cr.cert.Load()
	if cert == nil {
		return nil, fmt.Errorf("no TLS certificate loaded")
	}
	return cert, nil
}

// Status reports reload state for the health endpoint
func (cr *certReloader) Status() map[string]any {
	status := map[string]any{
		"cert_file":    cr.certFile,
		"key_file":     cr.keyFile,
		"reload_count": cr.reloadCount.Load(),
	}
	if t := cr.lastReload.Load(); t != nil {
		status["last_reload"] = t.Format(time.RFC3339)
	}
	if msg := cr.lastError.Load(); msg != nil {
		status["last_error"] = *msg
	}
	return status
}

// configureTLS sets up TLS configuration based on the mode
func (s *Server) configureTLS(httpServer *http.Server, om *observability.Manager) error {
	addr := httpServer.Addr

	switch s.TLSConfig.Mode {
	case "server":
		fmt.Printf("Starting server with HTTPS (server-only TLS) on https://%s\n", addr)
		fmt.Println("TLS mode: Server-only (no client certificates required)")
	case "mutual":
		fmt.Printf("Starting server with mTLS (mutual TLS) on https://%s\n", addr)
		fmt.Println("TLS mode: Mutual (client certificates required)")
	case "disabled":
		fmt.Printf("Starting server on http://%s\n", addr)
		fmt.Println("TLS mode: Disabled (HTTP only)")
		return nil
	default:
		return fmt.Errorf("invalid TLS mode: %s (must be 'disabled', 'server', or 'mutual')", s.TLSConfig.Mode)
	}

	if err := s.setupCertReloader(om); err != nil {
		return err
	}

	tlsConfig, err := s.buildTLSConfig()
	if err != nil {
		return fmt.Errorf("failed to set up TLS: %w", err)
	}
	httpServer.TLSConfig = tlsConfig

	return nil
}

// setupCertReloader initializes certificate auto-reload when enabled.
// Auto-reload requires file-based certificates; inline content cannot be
// watched.
func (s *Server) setupCertReloader(om *observability.Manager) error {
	if !s.TLSConfig.AutoReload.Enabled {
		return nil
	}

	if s.TLSConfig.CertFile == "" || s.TLSConfig.KeyFile == "" {
		return fmt.Errorf("TLS auto-reload requires certFile and keyFile")
	}

	reloader, err := newCertReloader(s.TLSConfig.CertFile, s.TLSConfig.KeyFile,
		s.TLSConfig.AutoReload.DebounceDelay, s.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize certificate reloader: %w", err)
	}

	reloader.onReload = func(success bool) {
		metrics := om.GetMetrics()
		metrics.RecordOperation(context.Background(), metrics.CertReloadCount, success)
	}

	if err := reloader.start(); err != nil {
		return fmt.Errorf("failed to start certificate reloader: %w", err)
	}
	s.certReloader = reloader

	fmt.Println("TLS auto-reload: ENABLED")

	return nil
}

// buildTLSConfig creates the TLS configuration
func (s *Server) buildTLSConfig() (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: s.minTLSVersion(),
	}

	if s.certReloader != nil {
		tlsConfig.GetCertificate = s.certReloader.getCertificate
	} else {
		cert, err := s.loadServerCertificate()
		if err != nil {
			return nil, err
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if err := s.configureClientAuthentication(tlsConfig); err != nil {
		return nil, err
	}

	return tlsConfig, nil
}

// loadServerCertificate loads the server certificate from content or files
func (s *Server) loadServerCertificate() (tls.Certificate, error) {
	if s.TLSConfig.CertContent != "" && s.TLSConfig.KeyContent != "" {
		// Load from certificate content (preferred for Vault)
		cert, err := tls.X509KeyPair([]byte(s.TLSConfig.CertContent), []byte(s.TLSConfig.KeyContent))
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("failed to load server cert/key from content: %w", err)
		}
		return cert, nil
	}

	if s.TLSConfig.CertFile != "" && s.TLSConfig.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(s.TLSConfig.CertFile, s.TLSConfig.KeyFile)
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("failed to load server cert/key from files: %w", err)
		}
		return cert, nil
	}

	return tls.Certificate{}, fmt.Errorf("TLS certificate and key are required (provide either files or content)")
}

// minTLSVersion maps the configured minimum version string
func (s *Server) minTLSVersion() uint16 {
	switch s.TLSConfig.MinVersion {
	case "1.3":
		return tls.VersionTLS13
	default:
		return tls.VersionTLS12
	}
}

// configureClientAuthentication sets up client authentication for mutual TLS
func (s *Server) configureClientAuthentication(tlsConfig *tls.Config) error {
	if s.TLSConfig.Mode != "mutual" {
		tlsConfig.ClientAuth = tls.NoClientCert
		return nil
	}

	caCert, err := s.loadCACertificate()
	if err != nil {
		return err
	}

	caCertPool := x509.NewCertPool()
	if ok := caCertPool.AppendCertsFromPEM(caCert); !ok {
		return fmt.Errorf("failed to append CA cert")
	}

	tlsConfig.ClientCAs = caCertPool
	tlsConfig.ClientAuth = s.getClientAuthPolicy()

	return nil
}

// loadCACertificate loads the CA certificate from content or file
func (s *Server) loadCACertificate() ([]byte, error) {
	if s.TLSConfig.CAContent != "" {
		// Load CA from content (preferred for Vault)
		return []byte(s.TLSConfig.CAContent), nil
	}

	if s.TLSConfig.CAFile != "" {
		caCert, err := os.ReadFile(s.TLSConfig.CAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}
		return caCert, nil
	}

	return nil, fmt.Errorf("CA certificate is required for mutual TLS mode (provide either caFile or caContent)")
}

// getClientAuthPolicy returns the appropriate client authentication policy
func (s *Server) getClientAuthPolicy() tls.ClientAuthType {
	switch s.TLSConfig.ClientAuthPolicy {
	case "require":
		return tls.RequireAndVerifyClientCert
	case "request":
		return tls.RequestClientCert
	case "verify":
		return tls.VerifyClientCertIfGiven
	default:
		return tls.RequireAndVerifyClientCert // Default for mutual TLS
	}
}
