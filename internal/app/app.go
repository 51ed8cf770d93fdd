package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"cookbook-go/internal/config"
	"cookbook-go/internal/cookbook"
	"cookbook-go/internal/encryption"
	"cookbook-go/internal/model"
	"cookbook-go/internal/seed"
	"cookbook-go/internal/store"
)

// App is the application layer between the CLI and the service. It
// constructs all dependencies from config and manages the store lifecycle
// on Close.
type App struct {
	cfg     *config.Config
	store   cookbook.Store
	service *cookbook.Service
	clock   cookbook.Clock
	idgen   cookbook.IDGenerator
	logFile *os.File
}

// NewApp creates a fully wired App from the given config. operation
// identifies the CLI command being run (e.g. "AddRecipe", "PantryMix").
// The caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	st, err := store.NewStoreFromConfig(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	logger, logFile, err := newLogger(cfg.LogDir, operation)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	clock := cookbook.RealClock{}
	idgen := cookbook.UUIDGenerator{}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	svc := cookbook.NewService(st, &slogAdapter{l: logger}, clock, idgen, rng)

	return &App{
		cfg:     cfg,
		store:   st,
		service: svc,
		clock:   clock,
		idgen:   idgen,
		logFile: logFile,
	}, nil
}

// Service exposes the underlying service for CLI commands.
func (a *App) Service() *cookbook.Service {
	return a.service
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var firstErr error
	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}
	return firstErr
}

// Seed expands the embedded catalog into the recipe store when both
// collections are empty. Returns the number of recipes created; 0 with no
// error means the stores already held data and nothing was touched.
func (a *App) Seed(minCount int) (int, error) {
	if len(a.service.Recipes()) > 0 || len(a.service.Pantry()) > 0 {
		return 0, nil
	}

	catalog, err := seed.LoadCatalog()
	if err != nil {
		return 0, fmt.Errorf("loading catalog: %w", err)
	}

	if minCount <= 0 {
		minCount = a.cfg.Seed.MinCount
	}
	recipes := seed.Expand(catalog, minCount, a.clock.Now(), a.idgen.New)
	if err := a.service.ReplaceRecipes(recipes); err != nil {
		return 0, fmt.Errorf("seeding recipes: %w", err)
	}
	return len(recipes), nil
}

// archive is the export wire format: both collections in one document.
type archive struct {
	Recipes []model.Recipe     `json:"recipes"`
	Pantry  []model.PantryItem `json:"pantry"`
}

// InitKeys generates the export key pair, protecting the private key with
// the passphrase. Fails if keys already exist.
func (a *App) InitKeys(passphrase string) error {
	enc, err := encryption.NewEncryptorFromConfig(a.cfg.Encryption)
	if err != nil {
		return err
	}
	if enc.IsConfigured() {
		return fmt.Errorf("export keys already exist")
	}
	return enc.Setup(passphrase)
}

// Export writes an age-encrypted archive of both collections to path.
func (a *App) Export(path string) error {
	enc, err := encryption.NewEncryptorFromConfig(a.cfg.Encryption)
	if err != nil {
		return err
	}
	if !enc.IsConfigured() {
		return fmt.Errorf("export keys not set up (run: cookbook keys init)")
	}

	data, err := json.Marshal(archive{
		Recipes: a.service.Recipes(),
		Pantry:  a.service.Pantry(),
	})
	if err != nil {
		return fmt.Errorf("encoding archive: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating archive file: %w", err)
	}
	defer f.Close()

	if err := enc.Encrypt(bytes.NewReader(data), f); err != nil {
		return fmt.Errorf("encrypting archive: %w", err)
	}
	return nil
}

// Import decrypts an archive written by Export and replaces both stored
// collections with its contents.
func (a *App) Import(path string, passphrase string) error {
	enc, err := encryption.NewEncryptorFromConfig(a.cfg.Encryption)
	if err != nil {
		return err
	}

	dec, err := enc.Unlock(passphrase)
	if err != nil {
		return fmt.Errorf("unlocking keys: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening archive file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := dec.Decrypt(f, &buf); err != nil {
		return fmt.Errorf("decrypting archive: %w", err)
	}

	var arc archive
	if err := json.Unmarshal(buf.Bytes(), &arc); err != nil {
		return fmt.Errorf("decoding archive: %w", err)
	}

	if err := a.service.ReplaceRecipes(arc.Recipes); err != nil {
		return fmt.Errorf("importing recipes: %w", err)
	}
	if err := a.service.ReplacePantry(arc.Pantry); err != nil {
		return fmt.Errorf("importing pantry: %w", err)
	}
	return nil
}
