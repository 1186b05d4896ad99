package seed

import (
	"context"
	"time"

	"reisemlak_backend/internal/model"
	"reisemlak_backend/internal/repository"
	apperrors "reisemlak_backend/pkg/errors"
	"reisemlak_backend/pkg/logger"
)

// SeedAdminCredential parola daha önce hiç ayarlanmadıysa ADMIN_PASSWORD ile oluşturur
func SeedAdminCredential(ctx context.Context, repo repository.CredentialRepository, initialPassword string) error {
	_, err := repo.Load(ctx)
	if err == nil {
		return nil
	}
	if !apperrors.Is(err, "NOT_FOUND") {
		return err
	}

	cred, err := model.NewAdminCredential(initialPassword)
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, cred); err != nil {
		return err
	}

	logger.Warnf("Admin credential initialised from ADMIN_PASSWORD, change it from the admin panel")
	return nil
}

// SeedListings koleksiyon boşsa vitrin için örnek ilanları yazar
func SeedListings(ctx context.Context, repo repository.ListingRepository, now time.Time) error {
	existing, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	listings := DemoListings(now)
	if err := repo.Save(ctx, listings); err != nil {
		return err
	}

	logger.Infof("Seeded %d demo listings", len(listings))
	return nil
}

func DemoListings(now time.Time) []model.Listing {
	newBuilding := 0
	fiveYears := 5

	listings := []model.Listing{
		{
			Title:       "Tepebaşı'nda Satılık 3+1 Daire",
			Images:      []string{"/modern-apartment-living.png"},
			Type:        model.PropertyTypeResidential,
			ListingType: model.ListingTypeForSale,
			Category:    model.PropertyCategoryApartment,
			Rooms:       "3+1",
			Area:        145,
			Price:       3250000,
			Address:     "Şirintepe Mah. Ertaş Cd.",
			City:        "Eskişehir",
			District:    "Tepebaşı",
			Location:    &model.GeoPoint{Lat: 39.7915, Lng: 30.4988},
			Features:    []string{"Asansör", "Otopark", "Doğalgaz"},
			Description: "Tramvay hattına yürüme mesafesinde, güney cephe geniş daire.",
			Floor:       "4",
			BuildingAge: &fiveYears,
		},
		{
			Title:       "Odunpazarı Kiralık 2+1",
			Images:      []string{"/cozy-apartment.png"},
			Type:        model.PropertyTypeResidential,
			ListingType: model.ListingTypeForRent,
			Category:    model.PropertyCategoryApartment,
			Rooms:       "2+1",
			Area:        95,
			Price:       18000,
			Address:     "Vişnelik Mah. Ahmet Kanatlı Cd.",
			City:        "Eskişehir",
			District:    "Odunpazarı",
			Features:    []string{"Eşyalı", "Balkon"},
			Description: "Öğrenciye ve aileye uygun, eşyalı kiralık daire.",
			Floor:       "2",
			BuildingAge: &newBuilding,
		},
		{
			Title:       "Sevinç'te İmarlı Arsa",
			Images:      []string{"/land-plot.png"},
			Type:        model.PropertyTypeLand,
			ListingType: model.ListingTypeForSale,
			Area:        620,
			Price:       4100000,
			Address:     "Sevinç Mah.",
			City:        "Eskişehir",
			District:    "Odunpazarı",
			Features:    []string{"Köşe parsel", "Villa imarlı"},
			Description: "Yola cepheli, altyapısı hazır villa imarlı arsa.",
		},
	}

	base := now.UnixMilli()
	for i := range listings {
		listings[i].ID = base + int64(i)
		listings[i].CreatedAt = model.Timestamp(now.Add(time.Duration(i) * time.Millisecond))
		listings[i].Normalize()
	}

	return listings
}
