package repository

import (
	"context"
	"encoding/json"
	"errors"

	"reisemlak_backend/internal/model"
	apperrors "reisemlak_backend/pkg/errors"
	"reisemlak_backend/pkg/storage"
)

// Storage namespaces, storefront ile aynı anahtarlar
const (
	ListingsKey        = "properties"
	OffersKey          = "offers"
	FooterSettingsKey  = "footerSettings"
	AdminCredentialKey = "adminCredential"
)

type ListingRepository interface {
	Load(ctx context.Context) ([]model.Listing, error)
	Save(ctx context.Context, listings []model.Listing) error
}

type OfferRepository interface {
	Load(ctx context.Context) ([]model.Offer, error)
	Save(ctx context.Context, offers []model.Offer) error
}

type FooterSettingsRepository interface {
	// Load hiç kaydedilmemişse varsayılan ayarları döner
	Load(ctx context.Context) (model.FooterSettings, error)
	Save(ctx context.Context, settings model.FooterSettings) error
}

type CredentialRepository interface {
	// Load parola hiç ayarlanmamışsa NOT_FOUND döner
	Load(ctx context.Context) (*model.AdminCredential, error)
	Save(ctx context.Context, cred *model.AdminCredential) error
}

// Repositories uygulamanın bütün depoları
type Repositories struct {
	Listings    ListingRepository
	Offers      OfferRepository
	Footer      FooterSettingsRepository
	Credentials CredentialRepository
}

func New(store storage.Store) *Repositories {
	return &Repositories{
		Listings:    &listingRepository{store: store},
		Offers:      &offerRepository{store: store},
		Footer:      &footerSettingsRepository{store: store},
		Credentials: &credentialRepository{store: store},
	}
}

// loadJSON false döner ve dst'ye dokunmaz eğer anahtar yoksa
func loadJSON(ctx context.Context, store storage.Store, key string, dst interface{}) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func saveJSON(ctx context.Context, store storage.Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

type listingRepository struct {
	store storage.Store
}

func (r *listingRepository) Load(ctx context.Context) ([]model.Listing, error) {
	listings := []model.Listing{}
	if _, err := loadJSON(ctx, r.store, ListingsKey, &listings); err != nil {
		return nil, apperrors.Internal("Could not load listings", err)
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	return listings, nil
}

func (r *listingRepository) Save(ctx context.Context, listings []model.Listing) error {
	if listings == nil {
		listings = []model.Listing{}
	}
	if err := saveJSON(ctx, r.store, ListingsKey, listings); err != nil {
		return apperrors.Internal("Could not save listings", err)
	}
	return nil
}

type offerRepository struct {
	store storage.Store
}

func (r *offerRepository) Load(ctx context.Context) ([]model.Offer, error) {
	offers := []model.Offer{}
	if _, err := loadJSON(ctx, r.store, OffersKey, &offers); err != nil {
		return nil, apperrors.Internal("Could not load offers", err)
	}
	if offers == nil {
		offers = []model.Offer{}
	}
	return offers, nil
}

func (r *offerRepository) Save(ctx context.Context, offers []model.Offer) error {
	if offers == nil {
		offers = []model.Offer{}
	}
	if err := saveJSON(ctx, r.store, OffersKey, offers); err != nil {
		return apperrors.Internal("Could not save offers", err)
	}
	return nil
}

type footerSettingsRepository struct {
	store storage.Store
}

func (r *footerSettingsRepository) Load(ctx context.Context) (model.FooterSettings, error) {
	settings := model.DefaultFooterSettings()
	if _, err := loadJSON(ctx, r.store, FooterSettingsKey, &settings); err != nil {
		return model.FooterSettings{}, apperrors.Internal("Could not load footer settings", err)
	}
	return settings, nil
}

func (r *footerSettingsRepository) Save(ctx context.Context, settings model.FooterSettings) error {
	if err := saveJSON(ctx, r.store, FooterSettingsKey, settings); err != nil {
		return apperrors.Internal("Could not save footer settings", err)
	}
	return nil
}

type credentialRepository struct {
	store storage.Store
}

func (r *credentialRepository) Load(ctx context.Context) (*model.AdminCredential, error) {
	var cred model.AdminCredential
	found, err := loadJSON(ctx, r.store, AdminCredentialKey, &cred)
	if err != nil {
		return nil, apperrors.Internal("Could not load admin credential", err)
	}
	if !found || cred.PasswordHash == "" {
		return nil, apperrors.NotFound("Admin credential", nil)
	}
	return &cred, nil
}

func (r *credentialRepository) Save(ctx context.Context, cred *model.AdminCredential) error {
	if err := saveJSON(ctx, r.store, AdminCredentialKey, cred); err != nil {
		return apperrors.Internal("Could not save admin credential", err)
	}
	return nil
}
