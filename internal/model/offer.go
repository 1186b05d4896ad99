package model

type OfferStatus string

const (
	OfferStatusNew     OfferStatus = "yeni"
	OfferStatusRead    OfferStatus = "okundu"
	OfferStatusReplied OfferStatus = "yanitlandi"
)

// Offer bir ilana gelen müşteri teklifi/talebi. İlan bilgileri oluşturma
// anındaki kopyadır, ilan sonradan değişse de güncellenmez.
type Offer struct {
	ID              int64       `json:"id"`
	PropertyID      int64       `json:"propertyId"`
	PropertyTitle   string      `json:"propertyTitle"`
	PropertyAddress string      `json:"propertyAddress"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail"`
	Message         string      `json:"message"`
	OfferAmount     *int64      `json:"offerAmount,omitempty"`
	Currency        Currency    `json:"currency,omitempty"`
	CreatedAt       string      `json:"createdAt"`
	Status          OfferStatus `json:"status"`
}

// NewOffer ilanın anlık kopyasıyla yeni bir teklif oluşturur
func NewOffer(id int64, listing *Listing, createdAt string) Offer {
	return Offer{
		ID:              id,
		PropertyID:      listing.ID,
		PropertyTitle:   listing.Title,
		PropertyAddress: listing.Address,
		Currency:        listing.Currency,
		CreatedAt:       createdAt,
		Status:          OfferStatusNew,
	}
}

// MarkRead yalnızca "yeni" teklifleri "okundu" yapar
func (o *Offer) MarkRead() bool {
	if o.Status != OfferStatusNew {
		return false
	}
	o.Status = OfferStatusRead
	return true
}

// CountUnread durumu "yeni" olan teklif sayısı
func CountUnread(offers []Offer) int {
	n := 0
	for _, o := range offers {
		if o.Status == OfferStatusNew {
			n++
		}
	}
	return n
}
